package dice

import "fmt"

// Die is a single polyhedron. Its value slot is the only mutable cell in the
// AST: it is unset after parsing and assigned by the Roller, possibly more
// than once when a RollSet is re-rolled.
//
// Invariant: once rolled, value is always a member of distribution.
type Die struct {
	faces        int
	distribution []int
	value        int
	rolled       bool
}

// NewDie creates an unrolled die whose distribution is 1..faces.
//
// Precondition: faces >= 1.
func NewDie(faces int) *Die {
	if faces < 1 {
		panic(fmt.Sprintf("dice: NewDie called with faces %d, must be >= 1", faces))
	}
	dist := make([]int, faces)
	for i := range dist {
		dist[i] = i + 1
	}
	return &Die{faces: faces, distribution: dist}
}

// Clone returns an independent unrolled copy of the die. Each clone owns its
// distribution and value slot; rolling one clone never affects another.
func (d *Die) Clone() *Die {
	dist := make([]int, len(d.distribution))
	copy(dist, d.distribution)
	return &Die{faces: d.faces, distribution: dist}
}

// Faces returns the die's face count.
func (d *Die) Faces() int { return d.faces }

// Rolled reports whether the die has been assigned a value.
func (d *Die) Rolled() bool { return d.rolled }

// Value returns the die's current face value, or 0 if unrolled.
func (d *Die) Value() int { return d.value }

// roll assigns a uniformly random element of the distribution as the die's
// value, overwriting any previous value.
//
// Precondition: src must be non-nil.
func (d *Die) roll(src Source) {
	d.value = d.distribution[src.Intn(len(d.distribution))]
	d.rolled = true
}

// Total returns the rolled value, or 0 for an unrolled die.
func (d *Die) Total() int {
	if !d.rolled {
		return 0
	}
	return d.value
}

// IsAllMaximum reports whether the die shows its highest face.
// Always false for an unrolled die.
func (d *Die) IsAllMaximum() bool {
	return d.rolled && d.value == d.distribution[len(d.distribution)-1]
}

// IsAllMinimum reports whether the die shows its lowest face.
// Always false for an unrolled die.
func (d *Die) IsAllMinimum() bool {
	return d.rolled && d.value == d.distribution[0]
}

// Children returns nil: a die is a leaf.
func (d *Die) Children() []Rollable { return nil }

// Render returns "[value]" once rolled, "(d<faces>)" before.
func (d *Die) Render() string {
	if !d.rolled {
		return fmt.Sprintf("(d%d)", d.faces)
	}
	return fmt.Sprintf("[%d]", d.value)
}
