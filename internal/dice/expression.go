package dice

import (
	"fmt"
	"strings"
)

// Sign is the combining operator in front of an expression term.
type Sign int

const (
	// Plus adds the term's total.
	Plus Sign = iota
	// Minus subtracts the term's total.
	Minus
)

// Render returns "+" or "-".
func (s Sign) Render() string {
	switch s {
	case Plus:
		return "+"
	case Minus:
		return "-"
	}
	// Only reachable through programmatic misuse; the grammar admits
	// exactly "+" and "-".
	panic(fmt.Sprintf("dice: unknown sign %d", int(s)))
}

// Term is one signed operand of an Expression. The operand is always a
// *Roll or a *Modifier.
type Term struct {
	Sign Sign
	Node Rollable
}

// Expression is an ordered sequence of signed terms combined by addition and
// subtraction. A leading omitted sign in notation parses as Plus.
type Expression struct {
	terms []Term
}

// NewExpression creates an expression over the given terms.
//
// Precondition: len(terms) >= 1; every term node must be non-nil.
func NewExpression(terms []Term) *Expression {
	if len(terms) == 0 {
		panic("dice: NewExpression called with no terms")
	}
	return &Expression{terms: terms}
}

// Terms returns the expression's signed terms in notation order.
func (e *Expression) Terms() []Term { return e.terms }

// Total folds the terms left to right, adding or subtracting each term's
// total according to its sign. Panics on a sign outside {Plus, Minus}.
func (e *Expression) Total() int {
	total := 0
	for _, t := range e.terms {
		switch t.Sign {
		case Plus:
			total += t.Node.Total()
		case Minus:
			total -= t.Node.Total()
		default:
			panic(fmt.Sprintf("dice: unknown sign %d in expression", int(t.Sign)))
		}
	}
	return total
}

// IsAllMaximum reports whether every die in the expression shows its highest
// face.
func (e *Expression) IsAllMaximum() bool { return allMaximum(e.Children()) }

// IsAllMinimum reports whether every die in the expression shows its lowest
// face.
func (e *Expression) IsAllMinimum() bool { return allMinimum(e.Children()) }

// Children returns the term nodes in notation order, without their signs.
func (e *Expression) Children() []Rollable {
	out := make([]Rollable, len(e.terms))
	for i, t := range e.terms {
		out[i] = t.Node
	}
	return out
}

// Render concatenates each term's rendering prefixed by its sign. The very
// first term omits a "+" prefix.
func (e *Expression) Render() string {
	var b strings.Builder
	for i, t := range e.terms {
		if i > 0 || t.Sign == Minus {
			b.WriteString(t.Sign.Render())
		}
		b.WriteString(t.Node.Render())
	}
	return b.String()
}
