package effect

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

var resolutions = []vec.Vec2{
	{X: 1920, Y: 1080},
	{X: 1280, Y: 720},
	{X: 1000, Y: 1000},
	{X: 333, Y: 777},
}

func TestCellUVIdempotent(t *testing.T) {
	for _, res := range resolutions {
		for i := 0; i <= 40; i++ {
			for j := 0; j <= 40; j++ {
				uv := vec.Vec2{X: float64(i) / 40, Y: float64(j) / 40}
				once := CellUV(uv, res)
				twice := CellUV(once, res)
				if once != twice {
					t.Fatalf("res %v uv %v: snap %v, snap twice %v", res, uv, once, twice)
				}
			}
		}
	}
}

func TestCellUVIsCellCenter(t *testing.T) {
	res := vec.Vec2{X: 300, Y: 300} // 10x10 cells
	got := CellUV(vec.Vec2{X: 0.01, Y: 0.99}, res)
	want := vec.Vec2{X: 0.05, Y: 0.95}
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
		t.Errorf("CellUV = %v, want %v", got, want)
	}
}

func TestDisplacementZeroWhenPointerAtRest(t *testing.T) {
	for _, res := range resolutions {
		u := Uniforms{
			PixelSize:   PixelSizeFloor,
			Resolution:  res,
			Mouse:       vec.Vec2{X: 0.5, Y: 0.5},
			MouseSmooth: vec.Vec2{X: 0.5, Y: 0.5},
		}
		for i := 0; i <= 20; i++ {
			for j := 0; j <= 20; j++ {
				uv := vec.Vec2{X: float64(i) / 20, Y: float64(j) / 20}
				if d := Displacement(uv, u); d != (vec.Vec2{}) {
					t.Fatalf("res %v uv %v: displacement %v with pointer at rest", res, uv, d)
				}
			}
		}
	}
}

func TestDisplacementNearMovingPointer(t *testing.T) {
	u := Uniforms{
		PixelSize:   PixelSizeFloor,
		Resolution:  vec.Vec2{X: 1000, Y: 1000},
		Mouse:       vec.Vec2{X: 0.6, Y: 0.5},
		MouseSmooth: vec.Vec2{X: 0.5, Y: 0.5},
	}

	near := Displacement(vec.Vec2{X: 0.5, Y: 0.5}, u)
	if near.X >= 0 {
		t.Errorf("near displacement X = %v, want negative (against the motion)", near.X)
	}
	if near.Y != 0 {
		t.Errorf("near displacement Y = %v, want 0 for horizontal motion", near.Y)
	}

	far := Displacement(vec.Vec2{X: 0.95, Y: 0.95}, u)
	if far != (vec.Vec2{}) {
		t.Errorf("displacement outside radius = %v, want zero", far)
	}
}

func TestSampleUVVariants(t *testing.T) {
	u := Uniforms{
		PixelSize:   20,
		Resolution:  vec.Vec2{X: 1000, Y: 1000},
		Mouse:       vec.Vec2{X: 0.6, Y: 0.5},
		MouseSmooth: vec.Vec2{X: 0.5, Y: 0.5},
	}
	uv := vec.Vec2{X: 0.5, Y: 0.5}
	base := PixelatedUV(uv, u.Resolution, u.PixelSize)

	if got := SampleUV(Static, uv, u); got != base {
		t.Errorf("static SampleUV = %v, want %v", got, base)
	}
	if got := SampleUV(Interactive, uv, u); got.X >= base.X {
		t.Errorf("interactive SampleUV.X = %v, want below %v", got.X, base.X)
	}
}

func TestPixelatedUVAtFloorIsNearIdentity(t *testing.T) {
	res := vec.Vec2{X: 1280, Y: 720}
	for i := 0; i <= 10; i++ {
		uv := vec.Vec2{X: float64(i) / 10, Y: 1 - float64(i)/10}
		got := PixelatedUV(uv, res, PixelSizeFloor)
		if math.Abs(got.X-uv.X) > PixelSizeFloor/res.X || math.Abs(got.Y-uv.Y) > PixelSizeFloor/res.Y {
			t.Errorf("PixelatedUV(%v) = %v at floor cell size", uv, got)
		}
	}
}

func TestPixelatedUVBlocks(t *testing.T) {
	res := vec.Vec2{X: 100, Y: 100}
	a := PixelatedUV(vec.Vec2{X: 0.41, Y: 0.41}, res, 10)
	b := PixelatedUV(vec.Vec2{X: 0.44, Y: 0.44}, res, 10)
	if a != b {
		t.Errorf("same block maps to %v and %v", a, b)
	}
}
