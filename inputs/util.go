package inputs

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Filter is a texture sampling mode.
type Filter int

const (
	// FilterNearest returns the nearest texel, keeping block edges hard.
	FilterNearest Filter = iota
	FilterLinear
	FilterMipmap
)

func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	case FilterLinear:
		return "linear"
	case FilterMipmap:
		return "mipmap"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// ParseFilter converts a filter name as given on the command line.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "nearest", "":
		return FilterNearest, nil
	case "linear":
		return FilterLinear, nil
	case "mipmap":
		return FilterMipmap, nil
	default:
		return 0, fmt.Errorf("unknown texture filter %q", s)
	}
}

// Helper to convert a Filter to OpenGL constants.
func getFilterMode(filter Filter) (minFilter, magFilter int32) {
	switch filter {
	case FilterMipmap:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	case FilterLinear:
		return gl.LINEAR, gl.LINEAR
	default:
		return gl.NEAREST, gl.NEAREST
	}
}
