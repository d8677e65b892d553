package shader

import (
	"strings"
	"testing"

	effect "github.com/richinsley/liquidpixel/effect"
)

func TestFragmentUniforms(t *testing.T) {
	tests := []struct {
		variant effect.Variant
		want    []string
		absent  []string
	}{
		{
			variant: effect.Interactive,
			want:    []string{UniformTexture, UniformPixelSize, UniformResolution, UniformMouse, UniformMouseSmooth},
		},
		{
			variant: effect.Static,
			want:    []string{UniformTexture, UniformPixelSize, UniformResolution},
			absent:  []string{UniformMouse, UniformMouseSmooth},
		},
	}
	for _, tc := range tests {
		t.Run(tc.variant.String(), func(t *testing.T) {
			src := GetFragmentShader(tc.variant)
			for _, name := range tc.want {
				if !strings.Contains(src, " "+name+";") {
					t.Errorf("missing uniform %s", name)
				}
			}
			for _, name := range tc.absent {
				if strings.Contains(src, name) {
					t.Errorf("unexpected uniform %s", name)
				}
			}
		})
	}
}

func TestSourcesTargetWebGL2(t *testing.T) {
	srcs := map[string]string{
		"vertex":      GenerateVertexShader(),
		"interactive": GetFragmentShader(effect.Interactive),
		"static":      GetFragmentShader(effect.Static),
	}
	for name, src := range srcs {
		if !strings.HasPrefix(src, "#version 300 es\n") {
			t.Errorf("%s: missing GLSL ES 3.00 version line", name)
		}
		if !strings.Contains(src, "vUv") {
			t.Errorf("%s: does not use the vUv varying", name)
		}
	}

	vs := GenerateVertexShader()
	for _, name := range []string{UniformScale, UniformViewport} {
		if !strings.Contains(vs, " "+name+";") {
			t.Errorf("vertex shader missing uniform %s", name)
		}
	}
}
