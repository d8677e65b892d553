package pointer

import (
	"sync/atomic"

	"seehuhn.de/go/geom/vec"
)

// Tracker holds the most recent pointer position in normalized viewport
// space, origin at the bottom-left. Every move replaces the slot; readers see
// whatever was stored last and intermediate positions are dropped.
//
// The zero value is ready to use and reports the origin until the first move.
type Tracker struct {
	latest atomic.Pointer[vec.Vec2]
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Normalize maps client pixel coordinates on a width x height viewport to
// [0,1]x[0,1] with y flipped. Values outside the viewport map outside the
// unit square and are not clamped.
func Normalize(clientX, clientY, width, height float64) vec.Vec2 {
	return vec.Vec2{
		X: clientX / width,
		Y: 1 - clientY/height,
	}
}

// Move records a pointer-move event given in client pixels. Events on an
// empty viewport are ignored.
func (t *Tracker) Move(clientX, clientY, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	p := Normalize(clientX, clientY, width, height)
	t.latest.Store(&p)
}

// Set publishes an already normalized position.
func (t *Tracker) Set(p vec.Vec2) {
	t.latest.Store(&p)
}

// Position returns the latest normalized position.
func (t *Tracker) Position() vec.Vec2 {
	if p := t.latest.Load(); p != nil {
		return *p
	}
	return vec.Vec2{}
}
