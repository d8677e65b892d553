package pointer

import (
	"sync"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestNormalizeExtremes(t *testing.T) {
	const w, h = 1280.0, 720.0

	tests := []struct {
		name   string
		cx, cy float64
		want   vec.Vec2
	}{
		{"top-left", 0, 0, vec.Vec2{X: 0, Y: 1}},
		{"bottom-right", w, h, vec.Vec2{X: 1, Y: 0}},
		{"center", w / 2, h / 2, vec.Vec2{X: 0.5, Y: 0.5}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.cx, tc.cy, w, h)
			if got != tc.want {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tc.cx, tc.cy, got, tc.want)
			}
		})
	}
}

func TestMoveDoesNotClamp(t *testing.T) {
	var tr Tracker
	tr.Move(-100, 300, 200, 100)

	got := tr.Position()
	want := vec.Vec2{X: -0.5, Y: -2}
	if got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestZeroValueReportsOrigin(t *testing.T) {
	var tr Tracker
	if got := tr.Position(); got != (vec.Vec2{}) {
		t.Errorf("Position() = %v, want origin", got)
	}
}

func TestLastMoveWins(t *testing.T) {
	tr := NewTracker()
	tr.Move(10, 10, 100, 100)
	tr.Move(20, 20, 100, 100)
	tr.Move(75, 25, 100, 100)

	want := vec.Vec2{X: 0.75, Y: 0.75}
	if got := tr.Position(); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestMoveIgnoresEmptyViewport(t *testing.T) {
	tr := NewTracker()
	tr.Set(vec.Vec2{X: 0.25, Y: 0.5})

	tr.Move(10, 10, 0, 100)
	tr.Move(10, 10, 100, -1)

	want := vec.Vec2{X: 0.25, Y: 0.5}
	if got := tr.Position(); got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestConcurrentMovesPublishWholeVectors(t *testing.T) {
	tr := NewTracker()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v := float64(i)
			for range 1000 {
				tr.Set(vec.Vec2{X: v, Y: v})
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		p := tr.Position()
		if p.X != p.Y {
			t.Fatalf("torn read: %v", p)
		}
		select {
		case <-done:
			return
		default:
		}
	}
}
