package options

// Options holds the command-line configuration. Fields are flag pointers so
// main can pass them around before and after flag.Parse.
type Options struct {
	Image      *string // path or http(s) URL of the source image
	Variant    *string // "interactive" or "static"
	Filter     *string // texture filter, "nearest" unless comparing
	PixelSize  *float64
	NoCache    *bool
	Help       *bool
	Width      *int
	Height     *int
	Record     *bool
	Duration   *float64
	FPS        *int
	OutputFile *string
	FFMPEGPath *string
	Codec      *string
}
