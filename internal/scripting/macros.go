package scripting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/roll/internal/dice"
)

// Macros owns one sandboxed LState holding user macro definitions and
// exposes them to Go callers. A macro is a Lua global function returning a
// notation string, e.g.
//
//	function stats() return "4d6kh3;4d6kh3;4d6kh3" end
//
// Lua code can also roll directly through the registered dice table.
//
// The LState is single-threaded; the mutex serializes concurrent calls.
type Macros struct {
	mu     sync.Mutex
	state  *lua.LState
	cancel context.CancelFunc
	src    dice.Source
	logger *zap.Logger
}

// NewMacros creates an empty macro host rolling with src.
//
// Precondition: src and logger must be non-nil.
// Postcondition: Returns a non-nil Macros with no macros loaded.
func NewMacros(src dice.Source, logger *zap.Logger) *Macros {
	return &Macros{src: src, logger: logger}
}

// LoadDir creates a fresh sandboxed VM, registers the dice table, then
// executes every *.lua file in dir in lexicographic order. Any previously
// loaded VM is replaced.
//
// Precondition: dir must be a readable directory.
// Postcondition: Macros from dir are callable; returns error on Lua load
// failure, leaving any previous VM in place.
func (m *Macros) LoadDir(dir string, instLimit int) error {
	L, cancel := newSandboxedState(instLimit)
	m.registerDiceTable(L)

	entries, err := os.ReadDir(dir)
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: reading macro dir %q: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
	}

	m.mu.Lock()
	if m.state != nil {
		m.cancel()
		m.state.Close()
	}
	m.state = L
	m.cancel = cancel
	m.mu.Unlock()

	m.logger.Info("macros loaded",
		zap.String("dir", dir),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// LoadString executes Lua source in a fresh sandboxed VM, replacing any
// previously loaded one. Intended for tests and inline macro definitions.
func (m *Macros) LoadString(source string, instLimit int) error {
	L, cancel := newSandboxedState(instLimit)
	m.registerDiceTable(L)

	if err := L.DoString(source); err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: loading inline macros: %w", err)
	}

	m.mu.Lock()
	if m.state != nil {
		m.cancel()
		m.state.Close()
	}
	m.state = L
	m.cancel = cancel
	m.mu.Unlock()
	return nil
}

// Expand calls the Lua global function name with no arguments and returns
// its string result, expected to be dice notation. The notation is not
// parse-checked here; the caller decides what to do with it.
//
// Postcondition: Returns the macro's notation string, or an error when the
// macro is missing, fails at runtime, or returns a non-string.
func (m *Macros) Expand(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == nil {
		return "", fmt.Errorf("scripting: no macros loaded")
	}

	fn := m.state.GetGlobal(name)
	if fn == lua.LNil {
		return "", fmt.Errorf("scripting: macro %q not defined", name)
	}

	if err := m.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}); err != nil {
		return "", fmt.Errorf("scripting: macro %q: %w", name, err)
	}

	ret := m.state.Get(-1)
	m.state.Pop(1)

	s, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("scripting: macro %q returned %s, want string", name, ret.Type())
	}
	return string(s), nil
}

// Close releases the Lua VM. Safe to call more than once.
func (m *Macros) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != nil {
		m.cancel()
		m.state.Close()
		m.state = nil
	}
}

// registerDiceTable defines the dice global in L:
//
//	dice.roll(notation)   -> total, rendered string
//	dice.totals(notation) -> table of per-expression totals
//
// Parse failures raise Lua errors, catchable with pcall.
func (m *Macros) registerDiceTable(L *lua.LState) {
	table := L.NewTable()

	L.SetField(table, "roll", L.NewFunction(func(L *lua.LState) int {
		notation := L.CheckString(1)
		rs, err := dice.RollNotation(notation, m.src)
		if err != nil {
			L.RaiseError("dice.roll: %v", err)
			return 0
		}
		m.logger.Debug("macro dice roll",
			zap.String("notation", notation),
			zap.String("result", rs.Render()),
		)
		L.Push(lua.LNumber(rs.Total()))
		L.Push(lua.LString(rs.Render()))
		return 2
	}))

	L.SetField(table, "totals", L.NewFunction(func(L *lua.LState) int {
		notation := L.CheckString(1)
		rs, err := dice.RollNotation(notation, m.src)
		if err != nil {
			L.RaiseError("dice.totals: %v", err)
			return 0
		}
		out := L.NewTable()
		for _, total := range rs.GroupTotals() {
			out.Append(lua.LNumber(total))
		}
		L.Push(out)
		return 1
	}))

	L.SetGlobal("dice", table)
}
