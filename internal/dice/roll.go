package dice

import (
	"fmt"
	"strings"
)

// Roll is a quantity of same-sided dice plus zero or more selectors applied
// after rolling. The die sequence length is fixed at construction; selectors
// run in parse order.
type Roll struct {
	quantity  int
	dice      []*Die
	selectors []Selector

	// active holds indexes into dice that count toward Total, in original
	// roll order. nil until the selectors have been applied.
	active []int
}

// NewRoll creates an unrolled Roll of quantity independent clones of
// template, with the given selectors.
//
// Precondition: quantity >= 1; template must be non-nil.
func NewRoll(quantity int, template *Die, selectors []Selector) *Roll {
	if quantity < 1 {
		panic(fmt.Sprintf("dice: NewRoll called with quantity %d, must be >= 1", quantity))
	}
	dice := make([]*Die, quantity)
	for i := range dice {
		dice[i] = template.Clone()
	}
	return &Roll{quantity: quantity, dice: dice, selectors: selectors}
}

// Quantity returns the number of dice in the roll.
func (r *Roll) Quantity() int { return r.quantity }

// Dice returns the roll's dice in roll order, selected or not.
func (r *Roll) Dice() []*Die { return r.dice }

// Selectors returns the roll's selectors in parse order.
func (r *Roll) Selectors() []Selector { return r.selectors }

// roll assigns every die a fresh value from src, then reapplies the
// selectors. Safe to call again on an already-rolled Roll: values are
// overwritten and the active subset is recomputed from scratch.
func (r *Roll) roll(src Source) {
	for _, d := range r.dice {
		d.roll(src)
	}
	r.applySelectors()
}

// applySelectors recomputes the active subset by running each selector in
// parse order against the result of the previous one.
func (r *Roll) applySelectors() {
	active := make([]int, len(r.dice))
	for i := range active {
		active[i] = i
	}
	for _, s := range r.selectors {
		active = s.apply(r.dice, active)
	}
	r.active = active
}

// Active returns the dice currently counting toward the total, in roll
// order. Before rolling, every die is considered active.
func (r *Roll) Active() []*Die {
	if r.active == nil {
		return r.dice
	}
	out := make([]*Die, len(r.active))
	for i, idx := range r.active {
		out[i] = r.dice[idx]
	}
	return out
}

// Total sums only the active subset of the roll's dice, overriding the
// default sum over all children.
func (r *Roll) Total() int {
	total := 0
	for _, d := range r.Active() {
		total += d.Total()
	}
	return total
}

// IsAllMaximum reports whether every die in the roll shows its highest face.
// Dropped dice count too: the roll is only "all maximum" when the complete
// roll was.
func (r *Roll) IsAllMaximum() bool { return allMaximum(r.Children()) }

// IsAllMinimum reports whether every die in the roll shows its lowest face.
func (r *Roll) IsAllMinimum() bool { return allMinimum(r.Children()) }

// Children returns every die in roll order, selected or not, so that Render
// always shows the complete roll.
func (r *Roll) Children() []Rollable {
	out := make([]Rollable, len(r.dice))
	for i, d := range r.dice {
		out[i] = d
	}
	return out
}

// Render returns the roll's notation ("4d20kh3") while unrolled. Once
// rolled, it shows every die in roll order inside parentheses, with dice
// excluded from the total wrapped in "~": "([20] [17] [5] ~[1]~)".
func (r *Roll) Render() string {
	if !r.dice[0].Rolled() {
		var b strings.Builder
		fmt.Fprintf(&b, "%dd%d", r.quantity, r.dice[0].Faces())
		for _, s := range r.selectors {
			b.WriteString(s.Render())
		}
		return b.String()
	}

	activeSet := make(map[int]bool, len(r.dice))
	if r.active == nil {
		for i := range r.dice {
			activeSet[i] = true
		}
	}
	for _, idx := range r.active {
		activeSet[idx] = true
	}
	parts := make([]string, len(r.dice))
	for i, d := range r.dice {
		if activeSet[i] {
			parts[i] = d.Render()
		} else {
			parts[i] = "~" + d.Render() + "~"
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}
