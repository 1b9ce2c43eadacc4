package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes why a notation string failed to parse. No partial
// AST accompanies it: parsing is all or nothing.
type ParseError struct {
	Notation string // the full input
	Offset   int    // byte offset of the offending substring
	Found    string // the offending substring, or "end of input"
	Message  string // what was expected or violated
}

// Error formats the failure with the offending substring and its position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("dice: parsing %q: %s at offset %d (%q)",
		e.Notation, e.Message, e.Offset, e.Found)
}

// Parse turns a notation string into an unrolled RollSet.
//
// Grammar (case-sensitive):
//
//	notation   := expression (';' expression)* ';'?
//	expression := sign? term (sign term)*
//	sign       := '+' | '-'
//	term       := roll | modifier
//	roll       := quantity 'd' faces selector*
//	selector   := ('kh'|'kl'|'dh'|'dl') digit+
//	modifier   := digit+
//
// Whitespace is insignificant around ';' boundaries and at the ends of the
// input; none is permitted inside an expression. Zero values for quantity,
// faces, or a selector count are rejected.
//
// Postcondition: Returns a non-nil *RollSet, or a *ParseError and no AST.
func Parse(notation string) (*RollSet, error) {
	if strings.TrimSpace(notation) == "" {
		return nil, &ParseError{
			Notation: notation,
			Offset:   0,
			Found:    "end of input",
			Message:  "empty notation",
		}
	}

	var expressions []*Expression
	segments := strings.Split(notation, ";")
	offset := 0
	for i, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			// A trailing ';' leaves one empty final segment; that is the
			// grammar's optional terminator, not an empty expression.
			if i == len(segments)-1 && len(expressions) > 0 {
				break
			}
			return nil, &ParseError{
				Notation: notation,
				Offset:   offset,
				Found:    "end of input",
				Message:  "empty expression",
			}
		}

		segOffset := offset + strings.Index(seg, trimmed)
		p := &parser{notation: notation, input: trimmed, base: segOffset}
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		expressions = append(expressions, expr)

		offset += len(seg) + 1 // account for the ';' separator
	}

	return NewRollSet(expressions), nil
}

// MustParse parses notation and panics on error. Useful for fixtures and
// package-level constants.
func MustParse(notation string) *RollSet {
	rs, err := Parse(notation)
	if err != nil {
		panic("dice: MustParse failed for notation " + notation + ": " + err.Error())
	}
	return rs
}

// parser is a recursive-descent parser over one ';'-delimited expression
// segment. base is the segment's byte offset in the full notation, used to
// report positions against the original input.
type parser struct {
	notation string
	input    string
	base     int
	pos      int
}

func (p *parser) errorf(at int, format string, args ...any) *ParseError {
	found := "end of input"
	if at < len(p.input) {
		end := at
		for end < len(p.input) && !isBoundary(p.input[end]) {
			end++
		}
		if end == at {
			end = at + 1
		}
		found = p.input[at:end]
	}
	return &ParseError{
		Notation: p.notation,
		Offset:   p.base + at,
		Found:    found,
		Message:  fmt.Sprintf(format, args...),
	}
}

func isBoundary(c byte) bool {
	return c == '+' || c == '-' || c == ';' || c == ' ' || c == '\t'
}

// expression := sign? term (sign term)*
func (p *parser) expression() (*Expression, error) {
	var terms []Term

	sign := Plus
	if s, ok := p.peekSign(); ok {
		sign = s
		p.pos++
	}
	for {
		node, err := p.term()
		if err != nil {
			return nil, err
		}
		terms = append(terms, Term{Sign: sign, Node: node})

		if p.pos >= len(p.input) {
			return NewExpression(terms), nil
		}
		s, ok := p.peekSign()
		if !ok {
			return nil, p.errorf(p.pos, "expected '+', '-', or end of expression")
		}
		sign = s
		p.pos++
	}
}

func (p *parser) peekSign() (Sign, bool) {
	if p.pos >= len(p.input) {
		return Plus, false
	}
	switch p.input[p.pos] {
	case '+':
		return Plus, true
	case '-':
		return Minus, true
	}
	return Plus, false
}

// term := roll | modifier. Both start with digit+; a following 'd' commits
// to a roll.
func (p *parser) term() (Rollable, error) {
	start := p.pos
	value, err := p.number("die quantity or modifier")
	if err != nil {
		return nil, err
	}

	if p.pos >= len(p.input) || p.input[p.pos] != 'd' {
		return NewModifier(value), nil
	}
	p.pos++ // consume 'd'

	if value == 0 {
		return nil, p.errorf(start, "die quantity must be at least 1")
	}

	facesStart := p.pos
	faces, err := p.number("die faces")
	if err != nil {
		return nil, err
	}
	if faces == 0 {
		return nil, p.errorf(facesStart, "die faces must be at least 1")
	}

	selectors, err := p.selectors()
	if err != nil {
		return nil, err
	}

	return NewRoll(value, NewDie(faces), selectors), nil
}

// selectors := (('kh'|'kl'|'dh'|'dl') digit+)*
func (p *parser) selectors() ([]Selector, error) {
	var out []Selector
	for {
		kind, ok := p.peekSelectorKind()
		if !ok {
			return out, nil
		}
		p.pos += 2

		countStart := p.pos
		count, err := p.number("selector count")
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, p.errorf(countStart, "selector count must be at least 1")
		}
		out = append(out, Selector{Kind: kind, Count: count})
	}
}

func (p *parser) peekSelectorKind() (SelectorKind, bool) {
	if p.pos+1 >= len(p.input) {
		return 0, false
	}
	switch p.input[p.pos : p.pos+2] {
	case "kh":
		return KeepHighest, true
	case "kl":
		return KeepLowest, true
	case "dh":
		return DropHighest, true
	case "dl":
		return DropLowest, true
	}
	return 0, false
}

// number consumes digit+ and returns its integer value.
func (p *parser) number(what string) (int, error) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf(start, "expected %s", what)
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, p.errorf(start, "invalid %s: %v", what, err)
	}
	return n, nil
}
