// Package contact holds the collision records passed from the physics
// world to the collision router.
package contact

import (
	"fmt"

	"github.com/pthm-cable/plinko/body"
)

// Ref identifies one registered body: the ID it was registered under and
// its routing tag.
type Ref struct {
	ID  int
	Tag body.Tag
}

// Pair is two bodies that began or ceased touching. Either member may be
// the interesting one; consumers must check both.
type Pair struct {
	A, B Ref
}

func (p Pair) String() string {
	return fmt.Sprintf("%v<->%v", p.A.Tag, p.B.Tag)
}

// Batch collects the pairs reported during one physics step.
type Batch struct {
	Start []Pair
	End   []Pair
}

// Empty reports whether the batch carries no pairs.
func (b *Batch) Empty() bool {
	return len(b.Start) == 0 && len(b.End) == 0
}

// Reset clears the batch, keeping its capacity.
func (b *Batch) Reset() {
	b.Start = b.Start[:0]
	b.End = b.End[:0]
}

// Len returns the total number of pairs.
func (b *Batch) Len() int {
	return len(b.Start) + len(b.End)
}
