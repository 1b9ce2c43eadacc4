package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/roll/internal/dice"
)

// activeValues returns the values of a roll's active dice in roll order.
func activeValues(r *dice.Roll) []int {
	out := make([]int, 0, len(r.Active()))
	for _, d := range r.Active() {
		out = append(out, d.Value())
	}
	return out
}

// TestSelector_KeepHighest verifies the kh3 scenario: rolled [5 20 1 17],
// active subset {20 17 5}, total 42.
func TestSelector_KeepHighest(t *testing.T) {
	rs := rollWith("4d20kh3", 4, 19, 0, 16)
	roll := firstRoll(rs)

	assert.ElementsMatch(t, []int{20, 17, 5}, activeValues(roll))
	assert.Equal(t, 42, roll.Total())
	assert.Equal(t, []int{42}, rs.GroupTotals())
}

// TestSelector_KeepLowest verifies kl2 on the same values keeps {1 5}.
func TestSelector_KeepLowest(t *testing.T) {
	rs := rollWith("4d20kl2", 4, 19, 0, 16)
	roll := firstRoll(rs)

	assert.ElementsMatch(t, []int{1, 5}, activeValues(roll))
	assert.Equal(t, 6, roll.Total())
}

// TestSelector_DropHighest verifies dh1 removes only the single highest die.
func TestSelector_DropHighest(t *testing.T) {
	rs := rollWith("4d20dh1", 4, 19, 0, 16)
	assert.Equal(t, 23, firstRoll(rs).Total(), "5+1+17 after dropping the 20")
}

// TestSelector_DropLowest verifies dl1 removes only the single lowest die.
func TestSelector_DropLowest(t *testing.T) {
	rs := rollWith("4d20dl1", 4, 19, 0, 16)
	assert.Equal(t, 42, firstRoll(rs).Total(), "5+20+17 after dropping the 1")
}

// TestSelector_TieBreakByRollOrder verifies that among tied values the
// earliest-rolled die is preferred when the cut falls on the tie.
func TestSelector_TieBreakByRollOrder(t *testing.T) {
	rs := rollWith("4d6kh2", 2, 2, 2, 0)
	roll := firstRoll(rs)

	require.Equal(t, 6, roll.Total())
	// Dice 0 and 1 are kept; dice 2 and 3 are marked dropped in the render.
	assert.Equal(t, "([3] [3] ~[3]~ ~[1]~)", roll.Render())
}

// TestSelector_Composition verifies selectors apply in parse order, each
// narrowing the previous result.
func TestSelector_Composition(t *testing.T) {
	rs := rollWith("6d6kh4kl2", 5, 4, 3, 2, 1, 0)
	roll := firstRoll(rs)

	// kh4 keeps {6 5 4 3}; kl2 of those keeps {4 3}.
	assert.ElementsMatch(t, []int{4, 3}, activeValues(roll))
	assert.Equal(t, 7, roll.Total())
}

// TestSelector_CountExceedingActiveIsNoOp verifies the clamp rule: a selector
// whose count meets or exceeds the active subset size changes nothing.
func TestSelector_CountExceedingActiveIsNoOp(t *testing.T) {
	rs := rollWith("2d6kh5", 3, 1)
	roll := firstRoll(rs)
	assert.Equal(t, 6, roll.Total(), "both dice still count")
	assert.Len(t, roll.Active(), 2)

	rs = rollWith("2d6dh2", 3, 1)
	roll = firstRoll(rs)
	assert.Equal(t, 6, roll.Total(), "drop of the entire subset is a no-op")
	assert.Len(t, roll.Active(), 2)
}

// TestSelector_ChildrenShowCompleteRoll verifies dropped dice remain visible
// through Children and Render even though they no longer count.
func TestSelector_ChildrenShowCompleteRoll(t *testing.T) {
	rs := rollWith("4d20kh3", 4, 19, 0, 16)
	roll := firstRoll(rs)

	require.Len(t, roll.Children(), 4, "Children returns every die, selected or not")
	assert.Equal(t, "([5] [20] ~[1]~ [17])", roll.Render())
}

// TestSelector_Render verifies notation form for each selector kind.
func TestSelector_Render(t *testing.T) {
	assert.Equal(t, "kh3", dice.Selector{Kind: dice.KeepHighest, Count: 3}.Render())
	assert.Equal(t, "kl1", dice.Selector{Kind: dice.KeepLowest, Count: 1}.Render())
	assert.Equal(t, "dh2", dice.Selector{Kind: dice.DropHighest, Count: 2}.Render())
	assert.Equal(t, "dl4", dice.Selector{Kind: dice.DropLowest, Count: 4}.Render())
}
