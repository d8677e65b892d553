package effect

import (
	"math"

	"golang.org/x/exp/constraints"
)

// The helpers below follow the GLSL builtins of the same name so the CPU
// reference reads like the fragment shader.

func clamp[T constraints.Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

func mix[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

func smoothstep[T constraints.Float](edge0, edge1, x T) T {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func round[T constraints.Float](x T) T {
	return T(math.Round(float64(x)))
}

func floor[T constraints.Float](x T) T {
	return T(math.Floor(float64(x)))
}
