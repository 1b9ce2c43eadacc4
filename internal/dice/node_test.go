package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cory-johannsen/roll/internal/dice"
)

// TestDie_Unrolled verifies an unrolled die contributes nothing and renders
// as notation.
func TestDie_Unrolled(t *testing.T) {
	d := dice.NewDie(20)
	assert.Equal(t, 0, d.Total(), "unrolled dice contribute nothing")
	assert.False(t, d.Rolled())
	assert.False(t, d.IsAllMaximum())
	assert.False(t, d.IsAllMinimum())
	assert.Equal(t, "(d20)", d.Render())
	assert.Nil(t, d.Children())
}

// TestDie_Rolled verifies value, predicates, and rendering after rolling.
func TestDie_Rolled(t *testing.T) {
	roll := firstRoll(rollWith("3d6", 5, 0, 2))
	d := roll.Dice()

	assert.Equal(t, 6, d[0].Value())
	assert.True(t, d[0].IsAllMaximum())
	assert.False(t, d[0].IsAllMinimum())
	assert.Equal(t, "[6]", d[0].Render())

	assert.Equal(t, 1, d[1].Value())
	assert.True(t, d[1].IsAllMinimum())
	assert.False(t, d[1].IsAllMaximum())

	assert.Equal(t, 3, d[2].Value())
	assert.False(t, d[2].IsAllMaximum())
	assert.False(t, d[2].IsAllMinimum())
}

// TestDie_SingleFace verifies a d1 is simultaneously maximum and minimum.
func TestDie_SingleFace(t *testing.T) {
	roll := firstRoll(rollWith("1d1", 0))
	d := roll.Dice()[0]
	assert.Equal(t, 1, d.Value())
	assert.True(t, d.IsAllMaximum())
	assert.True(t, d.IsAllMinimum())
}

// TestNewDie_PanicsOnZeroFaces verifies the constructor precondition.
func TestNewDie_PanicsOnZeroFaces(t *testing.T) {
	assert.Panics(t, func() { dice.NewDie(0) })
}

// TestModifier verifies a modifier is a constant that always reports itself
// as both maximum and minimum.
func TestModifier(t *testing.T) {
	m := dice.NewModifier(5)
	assert.Equal(t, 5, m.Total())
	assert.True(t, m.IsAllMaximum())
	assert.True(t, m.IsAllMinimum())
	assert.Equal(t, "5", m.Render())
	assert.Nil(t, m.Children())
}

// TestExpression_Arithmetic verifies the signed left-to-right fold:
// "2d6+5-1d4" with dice [3 4] and [2] totals 10.
func TestExpression_Arithmetic(t *testing.T) {
	rs := rollWith("2d6+5-1d4", 2, 3, 1)
	expr := rs.Expressions()[0]
	assert.Equal(t, 10, expr.Total(), "3+4+5-2")
	assert.Equal(t, []int{10}, rs.GroupTotals())
}

// TestExpression_RenderSigns verifies the leading "+" is omitted while every
// other sign prints.
func TestExpression_RenderSigns(t *testing.T) {
	rs := dice.MustParse("2d6+5-1d4")
	assert.Equal(t, "2d6+5-1d4", rs.Render())

	rs = dice.MustParse("-3+1d8")
	assert.Equal(t, "-3+1d8", rs.Render())

	rs = dice.MustParse("+7")
	assert.Equal(t, "7", rs.Render())
}

// TestExpression_UnknownSignPanics verifies the fail-fast invariant: a sign
// outside {+, -} is a programming error, never silently ignored.
func TestExpression_UnknownSignPanics(t *testing.T) {
	expr := dice.NewExpression([]dice.Term{
		{Sign: dice.Sign(99), Node: dice.NewModifier(1)},
	})
	assert.Panics(t, func() { expr.Total() })
	assert.Panics(t, func() { expr.Render() })
}

// TestRollSet_CritAndFumble verifies the all-maximum / all-minimum
// classification across rolls and expressions.
func TestRollSet_CritAndFumble(t *testing.T) {
	rs := rollWith("3d6", 5, 5, 5)
	assert.True(t, rs.IsAllMaximum())
	assert.False(t, rs.IsAllMinimum())

	rs = rollWith("3d6", 0, 0, 0)
	assert.True(t, rs.IsAllMinimum())
	assert.False(t, rs.IsAllMaximum())

	// Modifiers never spoil a crit: they have no faces to miss.
	rs = rollWith("3d6+2", 5, 5, 5)
	assert.True(t, rs.IsAllMaximum())

	// One non-maximum die in an unrelated expression spoils the overall crit.
	rs = rollWith("3d6;1d4", 5, 5, 5, 1)
	assert.False(t, rs.IsAllMaximum())
}

// TestRollSet_Render verifies expressions join with "; " and rolled output
// shows actual dice.
func TestRollSet_Render(t *testing.T) {
	rs := dice.MustParse("1d20;2d6+1")
	assert.Equal(t, "1d20; 2d6+1", rs.Render())

	rs.Roll(scripted(19, 2, 3))
	assert.Equal(t, "([20]); ([3] [4])+1", rs.Render())
}

// TestRollSet_Total sums across expressions as the default child fold.
func TestRollSet_Total(t *testing.T) {
	rs := rollWith("1d20;2d6+1", 19, 2, 3)
	assert.Equal(t, []int{20, 8}, rs.GroupTotals())
	assert.Equal(t, 28, rs.Total())
}
