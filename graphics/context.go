package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	EndFrame()
	// GetFramebufferSize returns the drawable size in pixels.
	GetFramebufferSize() (int, int)
	Time() float64
}
