package effect

import "seehuhn.de/go/geom/vec"

// CPU reference of the fragment programs in package shader. The GPU does the
// actual work; these functions exist so the math can be checked and reused
// off the render thread.

const (
	gridCellPixels = 30.0
	warpRadius     = 0.2
	warpStrength   = -300.0
	speedGain      = 5.0
	minSpeed       = 1e-6
)

// CellUV snaps uv to the center of its cell on a grid of resolution/30 cells
// per axis. Snapping a snapped coordinate returns it unchanged.
func CellUV(uv, resolution vec.Vec2) vec.Vec2 {
	nx := resolution.X / gridCellPixels
	ny := resolution.Y / gridCellPixels
	return vec.Vec2{
		X: floor(uv.X*nx)/nx + 0.5/nx,
		Y: floor(uv.Y*ny)/ny + 0.5/ny,
	}
}

// PixelatedUV quantizes uv to blocks of cellSize pixels.
func PixelatedUV(uv, resolution vec.Vec2, cellSize float64) vec.Vec2 {
	return vec.Vec2{
		X: round(uv.X*resolution.X/cellSize) * cellSize / resolution.X,
		Y: round(uv.Y*resolution.Y/cellSize) * cellSize / resolution.Y,
	}
}

// Displacement returns the pixel offset the pointer wake applies at the
// grid cell containing uv. It is zero when the pointer is at rest, whatever
// the distance, and zero outside the warp radius.
func Displacement(uv vec.Vec2, u Uniforms) vec.Vec2 {
	cell := CellUV(uv, u.Resolution)
	aspect := u.Resolution.X / u.Resolution.Y
	diff := cell.Sub(u.MouseSmooth)
	diff.X *= aspect
	dist := diff.Length()

	delta := u.Mouse.Sub(u.MouseSmooth)
	speed := delta.Length()
	speedDecay := clamp(speed*speedGain, 0, 1)
	influence := smoothstep(0, warpRadius, warpRadius-dist) * speedDecay

	if speed <= minSpeed {
		return vec.Vec2{}
	}
	direction := delta.Mul(1 / speed)
	return direction.Mul(warpStrength * influence * u.MouseSmooth.Length())
}

// SampleUV returns the texture coordinate the fragment at uv samples.
func SampleUV(v Variant, uv vec.Vec2, u Uniforms) vec.Vec2 {
	p := PixelatedUV(uv, u.Resolution, u.PixelSize)
	if v != Interactive {
		return p
	}
	d := Displacement(uv, u)
	return vec.Vec2{
		X: p.X + d.X/u.Resolution.X,
		Y: p.Y + d.Y/u.Resolution.Y,
	}
}
