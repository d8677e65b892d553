package effect

import "testing"

func TestMeshScale(t *testing.T) {
	tests := []struct {
		name       string
		texW, texH float64
		viewW      float64
		viewH      float64
		want       [3]float64
	}{
		{"viewport wider", 200, 100, 400, 100, [3]float64{400, 200, 1}},
		{"viewport taller", 200, 100, 100, 100, [3]float64{200, 100, 1}},
		{"same aspect", 200, 100, 1280, 640, [3]float64{1280, 640, 1}},
		{"portrait image", 100, 200, 1920, 1080, [3]float64{1920, 3840, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MeshScale(tc.texW, tc.texH, tc.viewW, tc.viewH)
			if got != tc.want {
				t.Errorf("MeshScale = %v, want %v", got, tc.want)
			}
		})
	}
}
