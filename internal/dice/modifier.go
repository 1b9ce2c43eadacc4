package dice

import "strconv"

// Modifier is a constant numeric leaf. It has no faces to hit or miss, so it
// reports itself as both maximum and minimum.
type Modifier struct {
	value int
}

// NewModifier creates a modifier holding value. The value is immutable for
// the modifier's lifetime.
func NewModifier(value int) *Modifier {
	return &Modifier{value: value}
}

// Value returns the modifier's constant.
func (m *Modifier) Value() int { return m.value }

// Total returns the modifier's constant.
func (m *Modifier) Total() int { return m.value }

// IsAllMaximum always reports true for a modifier.
func (m *Modifier) IsAllMaximum() bool { return true }

// IsAllMinimum always reports true for a modifier.
func (m *Modifier) IsAllMinimum() bool { return true }

// Children returns nil: a modifier is a leaf.
func (m *Modifier) Children() []Rollable { return nil }

// Render returns the modifier's constant in decimal.
func (m *Modifier) Render() string { return strconv.Itoa(m.value) }
