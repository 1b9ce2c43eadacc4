package dice

// Roll visits every Roll node in the set in structural order (expression
// order, then term order within each expression), rolls each of its dice
// exactly once using src, and applies that roll's selectors. Mutation is in
// place: the receiver is the RollSet rolled.
//
// Re-invoking on an already-rolled RollSet is permitted; die values are
// overwritten and selectors reapplied, the AST shape never changes.
//
// Precondition: src must be non-nil.
func (rs *RollSet) Roll(src Source) {
	for _, expr := range rs.expressions {
		for _, t := range expr.Terms() {
			if r, ok := t.Node.(*Roll); ok {
				r.roll(src)
			}
		}
	}
}

// RollNotation parses notation and rolls the result using src in a single
// call.
//
// Postcondition: Returns a fully rolled RollSet, or a *ParseError.
func RollNotation(notation string, src Source) (*RollSet, error) {
	rs, err := Parse(notation)
	if err != nil {
		return nil, err
	}
	rs.Roll(src)
	return rs, nil
}
