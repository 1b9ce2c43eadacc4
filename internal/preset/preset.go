// Package preset provides named dice-notation presets loaded from YAML, so
// callers can roll "stats" instead of remembering "4d6kh3".
package preset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/roll/internal/dice"
)

// yamlPresetFile is the top-level YAML structure for preset files.
type yamlPresetFile struct {
	Presets []yamlPreset `yaml:"presets"`
}

// yamlPreset is the YAML representation of one preset.
type yamlPreset struct {
	Name        string `yaml:"name"`
	Notation    string `yaml:"notation"`
	Description string `yaml:"description"`
}

// Preset is a named notation string, validated against the grammar at load
// time.
type Preset struct {
	Name        string
	Notation    string
	Description string
}

// Library holds presets indexed by name.
type Library struct {
	byName map[string]Preset
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]Preset)}
}

// Add registers p in the library.
//
// Precondition: p.Name must be non-empty and unused; p.Notation must parse.
// Postcondition: Get(p.Name) returns p, or an error describing the violation.
func (l *Library) Add(p Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset: name must not be empty")
	}
	if _, exists := l.byName[p.Name]; exists {
		return fmt.Errorf("preset: duplicate name %q", p.Name)
	}
	if _, err := dice.Parse(p.Notation); err != nil {
		return fmt.Errorf("preset: invalid notation for %q: %w", p.Name, err)
	}
	l.byName[p.Name] = p
	return nil
}

// Get returns the preset registered under name.
func (l *Library) Get(name string) (Preset, bool) {
	p, ok := l.byName[name]
	return p, ok
}

// Names returns all preset names in sorted order.
func (l *Library) Names() []string {
	out := make([]string, 0, len(l.byName))
	for name := range l.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered presets.
func (l *Library) Len() int { return len(l.byName) }

// LoadFromBytes parses and validates a preset library from YAML bytes.
//
// Precondition: data must be valid YAML conforming to the preset schema.
// Postcondition: Returns a library with every notation parse-checked, or a
// non-nil error and no library.
func LoadFromBytes(data []byte) (*Library, error) {
	var file yamlPresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("preset: parsing YAML: %w", err)
	}

	lib := NewLibrary()
	for _, p := range file.Presets {
		if err := lib.Add(Preset{
			Name:        p.Name,
			Notation:    p.Notation,
			Description: p.Description,
		}); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// LoadFromFile reads and validates a single preset YAML file.
//
// Precondition: path must point to a valid YAML preset file.
// Postcondition: Returns a validated library or a non-nil error.
func LoadFromFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: reading file %s: %w", path, err)
	}
	return LoadFromBytes(data)
}
