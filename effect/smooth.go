package effect

import "seehuhn.de/go/geom/vec"

// SmoothingFactor is the per-frame blend toward the raw pointer.
const SmoothingFactor = 0.1

// Smoother low-pass filters the pointer position. Until a position away from
// the origin has been seen it copies the raw value, so the filter does not
// sweep in from (0,0) on the first real move.
type Smoother struct {
	value        vec.Vec2
	bootstrapped bool
}

// Step feeds the raw position for one frame and returns the smoothed value.
func (s *Smoother) Step(raw vec.Vec2) vec.Vec2 {
	if !s.bootstrapped {
		s.value = raw
		s.bootstrapped = raw.X != 0 || raw.Y != 0
		return s.value
	}
	s.value = vec.Vec2{
		X: mix(s.value.X, raw.X, SmoothingFactor),
		Y: mix(s.value.Y, raw.Y, SmoothingFactor),
	}
	return s.value
}

// Value returns the current smoothed position.
func (s *Smoother) Value() vec.Vec2 {
	return s.value
}

// Bootstrapped reports whether the filter has seen a non-origin position.
func (s *Smoother) Bootstrapped() bool {
	return s.bootstrapped
}
