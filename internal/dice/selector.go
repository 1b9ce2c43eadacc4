package dice

import (
	"fmt"
	"sort"
)

// SelectorKind identifies one of the four keep/drop transformations.
type SelectorKind int

const (
	// KeepHighest keeps only the N highest dice ("kh").
	KeepHighest SelectorKind = iota
	// KeepLowest keeps only the N lowest dice ("kl").
	KeepLowest
	// DropHighest drops the N highest dice ("dh").
	DropHighest
	// DropLowest drops the N lowest dice ("dl").
	DropLowest
)

// Code returns the two-letter notation code for the kind.
func (k SelectorKind) Code() string {
	switch k {
	case KeepHighest:
		return "kh"
	case KeepLowest:
		return "kl"
	case DropHighest:
		return "dh"
	case DropLowest:
		return "dl"
	}
	panic(fmt.Sprintf("dice: unknown selector kind %d", int(k)))
}

// Selector is a post-roll transformation narrowing which dice in a Roll count
// toward its total.
//
// Invariant: Count >= 1 after a successful Parse.
type Selector struct {
	Kind  SelectorKind
	Count int
}

// Render returns the selector in notation form, e.g. "kh3".
func (s Selector) Render() string {
	return fmt.Sprintf("%s%d", s.Kind.Code(), s.Count)
}

// apply narrows active to the subset surviving the selector and returns it.
// active holds indexes into dice, in original roll order, and only shrinks:
// a selector whose count equals or exceeds the active size is a no-op.
//
// Ties at the selection boundary resolve by original roll order (stable
// sort): the earliest-rolled die among equal values is considered "higher
// priority" for the cut.
func (s Selector) apply(dice []*Die, active []int) []int {
	if s.Count >= len(active) {
		return active
	}

	// Rank the active dice by value without disturbing roll order.
	ranked := make([]int, len(active))
	copy(ranked, active)
	switch s.Kind {
	case KeepHighest, DropHighest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return dice[ranked[i]].Value() > dice[ranked[j]].Value()
		})
	case KeepLowest, DropLowest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return dice[ranked[i]].Value() < dice[ranked[j]].Value()
		})
	default:
		panic(fmt.Sprintf("dice: unknown selector kind %d", int(s.Kind)))
	}

	var chosen []int
	switch s.Kind {
	case KeepHighest, KeepLowest:
		chosen = ranked[:s.Count]
	case DropHighest, DropLowest:
		chosen = ranked[s.Count:]
	}

	// Restore original roll order for the surviving subset.
	keep := make(map[int]bool, len(chosen))
	for _, idx := range chosen {
		keep[idx] = true
	}
	out := make([]int, 0, len(chosen))
	for _, idx := range active {
		if keep[idx] {
			out = append(out, idx)
		}
	}
	return out
}
