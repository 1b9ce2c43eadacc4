// Package dice implements the dice-notation mini-language: parsing notation
// strings such as "4d20kh3+2;2d6" into an AST of roll expressions and
// evaluating that AST by simulating random die rolls.
package dice

// Rollable is the capability shared by every node in the roll AST.
//
// Total, IsAllMaximum, and IsAllMinimum are only meaningful after the node
// has been rolled; Render is valid at any time and shows either notation
// (unrolled) or the actual rolled values.
type Rollable interface {
	// Total returns the node's numeric value: a die's face, a modifier's
	// constant, or the combined value of the node's children.
	Total() int
	// IsAllMaximum reports whether every die under this node shows its
	// highest face. Vacuously true for nodes with no dice.
	IsAllMaximum() bool
	// IsAllMinimum reports whether every die under this node shows its
	// lowest face. Vacuously true for nodes with no dice.
	IsAllMinimum() bool
	// Children returns the node's direct children in structural order,
	// or nil for a leaf.
	Children() []Rollable
	// Render returns the node's human-readable form.
	Render() string
}

// sumTotals is the default Total behavior: the sum of the children's totals.
func sumTotals(children []Rollable) int {
	total := 0
	for _, c := range children {
		total += c.Total()
	}
	return total
}

// allMaximum is the default IsAllMaximum behavior: the AND over all children.
// Vacuously true when children is empty.
func allMaximum(children []Rollable) bool {
	for _, c := range children {
		if !c.IsAllMaximum() {
			return false
		}
	}
	return true
}

// allMinimum is the default IsAllMinimum behavior: the AND over all children.
// Vacuously true when children is empty.
func allMinimum(children []Rollable) bool {
	for _, c := range children {
		if !c.IsAllMinimum() {
			return false
		}
	}
	return true
}
