package dice_test

import (
	"fmt"

	"github.com/cory-johannsen/roll/internal/dice"
)

// scriptedSource replays a fixed queue of Intn results, letting tests pin
// exact die values. A d20 die asked to show 17 needs the script value 16:
// the die adds 1 to the drawn index.
type scriptedSource struct {
	values []int
	next   int
}

func scripted(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Intn(n int) int {
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("scriptedSource: exhausted after %d values", len(s.values)))
	}
	v := s.values[s.next]
	s.next++
	if v >= n {
		panic(fmt.Sprintf("scriptedSource: value %d out of range for Intn(%d)", v, n))
	}
	return v
}

// rollWith parses notation, rolls it with the scripted values, and returns
// the rolled set.
func rollWith(notation string, values ...int) *dice.RollSet {
	rs := dice.MustParse(notation)
	rs.Roll(scripted(values...))
	return rs
}

// firstRoll returns the first term of the first expression as a *Roll.
func firstRoll(rs *dice.RollSet) *dice.Roll {
	return rs.Expressions()[0].Terms()[0].Node.(*dice.Roll)
}
