package dice

import "strings"

// RollSet is the top-level parse result: one or more Expressions, separated
// by ";" in the source notation.
type RollSet struct {
	expressions []*Expression
}

// NewRollSet creates a RollSet over the given expressions.
//
// Precondition: len(expressions) >= 1.
func NewRollSet(expressions []*Expression) *RollSet {
	if len(expressions) == 0 {
		panic("dice: NewRollSet called with no expressions")
	}
	return &RollSet{expressions: expressions}
}

// Expressions returns the contained expressions in source order.
func (rs *RollSet) Expressions() []*Expression { return rs.expressions }

// GroupTotals returns one total per contained Expression, in source order.
// This is the primary accessor: a RollSet does not naturally collapse to a
// single number.
func (rs *RollSet) GroupTotals() []int {
	out := make([]int, len(rs.expressions))
	for i, e := range rs.expressions {
		out[i] = e.Total()
	}
	return out
}

// Total returns the sum across all expressions (the default child-sum
// behavior). Most callers want GroupTotals instead.
func (rs *RollSet) Total() int { return sumTotals(rs.Children()) }

// IsAllMaximum reports whether every die in every expression shows its
// highest face, letting a caller classify the whole result as a crit.
func (rs *RollSet) IsAllMaximum() bool { return allMaximum(rs.Children()) }

// IsAllMinimum reports whether every die in every expression shows its
// lowest face, letting a caller classify the whole result as a fumble.
func (rs *RollSet) IsAllMinimum() bool { return allMinimum(rs.Children()) }

// Children returns the contained expressions in source order.
func (rs *RollSet) Children() []Rollable {
	out := make([]Rollable, len(rs.expressions))
	for i, e := range rs.expressions {
		out[i] = e
	}
	return out
}

// Render joins each expression's rendering with "; ".
func (rs *RollSet) Render() string {
	parts := make([]string, len(rs.expressions))
	for i, e := range rs.expressions {
		parts[i] = e.Render()
	}
	return strings.Join(parts, "; ")
}
