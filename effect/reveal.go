package effect

const (
	// DefaultPixelSize is the cell size the reveal starts from.
	DefaultPixelSize = 100.0

	// PixelSizeFloor is the terminal cell size. It is small enough that the
	// image shows unpixelated.
	PixelSizeFloor = 0.001

	revealInterval = 10   // frames between steps
	revealStep     = 10.0 // cell size removed per step
)

// Reveal is the one-shot staircase decay of the cell size. Once it reaches
// PixelSizeFloor it stays there; a new Reveal is needed to play it again.
type Reveal struct {
	size  float64
	frame int
}

// NewReveal starts a reveal at the given cell size. Sizes below the floor
// start at the floor.
func NewReveal(initial float64) *Reveal {
	return &Reveal{size: max(initial, PixelSizeFloor)}
}

// Step advances one frame and returns the cell size for that frame.
func (r *Reveal) Step() float64 {
	r.frame++
	if r.frame%revealInterval == 0 {
		if r.size > revealStep {
			r.size -= revealStep
		} else {
			r.size = PixelSizeFloor
		}
	}
	return r.size
}

// Size returns the current cell size without advancing.
func (r *Reveal) Size() float64 {
	return r.size
}

// Frame returns the number of frames stepped so far.
func (r *Reveal) Frame() int {
	return r.frame
}

// Done reports whether the reveal has reached its terminal state.
func (r *Reveal) Done() bool {
	return r.size == PixelSizeFloor
}
