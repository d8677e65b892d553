package effect

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Variant selects which fragment program the stage drives.
type Variant int

const (
	// Interactive pixelates with the reveal cell size and warps the grid
	// around the moving pointer.
	Interactive Variant = iota
	// Static only pixelates with the reveal cell size.
	Static
)

func (v Variant) String() string {
	switch v {
	case Interactive:
		return "interactive"
	case Static:
		return "static"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant converts a variant name as given on the command line.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "interactive", "":
		return Interactive, nil
	case "static":
		return Static, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want interactive or static)", s)
	}
}

// Uniforms is the per-frame input to the pixelation program.
type Uniforms struct {
	PixelSize   float64  // uPixelSize
	Resolution  vec.Vec2 // uResolution, in pixels
	Mouse       vec.Vec2 // uMouse, raw normalized pointer
	MouseSmooth vec.Vec2 // uMouseSmooth
}

// PointerSource yields the latest normalized pointer position.
type PointerSource interface {
	Position() vec.Vec2
}

// Stage owns the uniform state of the pixelation program and advances it
// once per rendered frame. It is not safe for concurrent use; only the render
// loop calls Update.
type Stage struct {
	variant   Variant
	pixelSize float64
	pointer   PointerSource
	reveal   *Reveal
	smoother Smoother
	uniforms Uniforms
}

// NewStage creates a stage whose reveal starts at pixelSize. The pointer may
// be nil for the static variant.
func NewStage(variant Variant, pixelSize float64, pointer PointerSource) *Stage {
	r := NewReveal(pixelSize)
	return &Stage{
		variant:   variant,
		pixelSize: pixelSize,
		pointer:   pointer,
		reveal:    r,
		uniforms: Uniforms{
			PixelSize: r.Size(),
		},
	}
}

// Restart returns a fresh stage with the same variant, starting cell size
// and pointer source. The reveal itself never rewinds; replaying it means
// swapping in the new stage.
func (s *Stage) Restart() *Stage {
	return NewStage(s.variant, s.pixelSize, s.pointer)
}

// Update runs one frame: resolution refresh, reveal step, pointer smoothing,
// then publishes the uniforms for this frame's draw call.
func (s *Stage) Update(width, height int) Uniforms {
	s.uniforms.Resolution = vec.Vec2{X: float64(width), Y: float64(height)}
	s.uniforms.PixelSize = s.reveal.Step()

	if s.variant == Interactive && s.pointer != nil {
		raw := s.pointer.Position()
		smooth := s.smoother.Step(raw)
		s.uniforms.Mouse = raw
		s.uniforms.MouseSmooth = smooth
	}
	return s.uniforms
}

// Uniforms returns the values published by the last Update.
func (s *Stage) Uniforms() Uniforms {
	return s.uniforms
}

// Variant returns the program variant this stage drives.
func (s *Stage) Variant() Variant {
	return s.variant
}

// Frame returns the number of frames updated so far.
func (s *Stage) Frame() int {
	return s.reveal.Frame()
}

// Revealed reports whether the reveal animation has finished.
func (s *Stage) Revealed() bool {
	return s.reveal.Done()
}
