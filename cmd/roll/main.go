// Package main provides the roll binary: it parses dice-notation arguments,
// rolls them, and prints the rendered result with per-expression totals.
//
// Arguments are notation strings ("4d20kh3+2"), preset names ("@stats"), or
// Lua macro invocations ("!smite").
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/internal/config"
	"github.com/cory-johannsen/roll/internal/dice"
	"github.com/cory-johannsen/roll/internal/observability"
	"github.com/cory-johannsen/roll/internal/preset"
	"github.com/cory-johannsen/roll/internal/scripting"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty = defaults")
	seed := flag.Int64("seed", 0, "roll with a fixed seed (0 = config-selected source)")
	presetsPath := flag.String("presets", "", "preset YAML file; overrides config")
	macrosDir := flag.String("macros", "", "Lua macro directory; overrides config")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: roll [flags] <notation|@preset|!macro> ...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	src := newSource(cfg.Dice, *seed)
	roller := dice.NewLoggedRoller(src, logger)

	var presets *preset.Library
	path := cfg.Presets.Path
	if *presetsPath != "" {
		path = *presetsPath
	}
	if path != "" {
		presets, err = preset.LoadFromFile(path)
		if err != nil {
			logger.Fatal("loading presets", zap.Error(err))
		}
		logger.Info("presets loaded",
			zap.String("path", path),
			zap.Int("count", presets.Len()),
		)
	}

	var macros *scripting.Macros
	dir := cfg.Scripting.Dir
	if *macrosDir != "" {
		dir = *macrosDir
	}
	if dir != "" {
		macros = scripting.NewMacros(src, logger)
		defer macros.Close()
		if err := macros.LoadDir(dir, cfg.Scripting.InstructionLimit); err != nil {
			logger.Fatal("loading macros", zap.Error(err))
		}
	}

	failed := false
	for _, arg := range flag.Args() {
		notation, err := resolve(arg, presets, macros)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", arg, err)
			failed = true
			continue
		}

		rs, err := roller.RollNotation(notation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed = true
			continue
		}

		totals := make([]string, 0, len(rs.GroupTotals()))
		for _, v := range rs.GroupTotals() {
			totals = append(totals, fmt.Sprintf("%d", v))
		}
		fmt.Printf("%s → %s = %s%s\n", notation, rs.Render(), strings.Join(totals, ", "), tag(rs))
	}
	if failed {
		os.Exit(1)
	}
}

// resolve maps an argument to a notation string: "@name" through the preset
// library, "!name" through the Lua macros, anything else as-is.
func resolve(arg string, presets *preset.Library, macros *scripting.Macros) (string, error) {
	switch {
	case strings.HasPrefix(arg, "@"):
		if presets == nil {
			return "", fmt.Errorf("no preset library configured")
		}
		p, ok := presets.Get(arg[1:])
		if !ok {
			return "", fmt.Errorf("unknown preset (have: %s)", strings.Join(presets.Names(), ", "))
		}
		return p.Notation, nil
	case strings.HasPrefix(arg, "!"):
		if macros == nil {
			return "", fmt.Errorf("no macro directory configured")
		}
		return macros.Expand(arg[1:])
	}
	return arg, nil
}

// tag annotates an overall crit or fumble.
func tag(rs *dice.RollSet) string {
	switch {
	case rs.IsAllMaximum():
		return " (crit!)"
	case rs.IsAllMinimum():
		return " (fumble)"
	}
	return ""
}

// newSource picks the randomness source: an explicit -seed wins, then the
// configured source.
func newSource(cfg config.DiceConfig, seed int64) dice.Source {
	if seed != 0 {
		return dice.NewSeededSource(seed)
	}
	if cfg.Source == "seeded" {
		return dice.NewSeededSource(cfg.Seed)
	}
	return dice.NewRandomSource()
}
