package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyCallbackDispatch(t *testing.T) {
	c := &Context{keyCallbacks: make(map[glfw.Key]func())}
	calls := 0
	c.RegisterKeyCallback(glfw.KeyR, func() { calls++ })

	c.glfwKeyCallback(nil, glfw.KeyR, 0, glfw.Release, 0)
	c.glfwKeyCallback(nil, glfw.KeyQ, 0, glfw.Press, 0)
	if calls != 0 {
		t.Fatalf("callback ran %d times before a press of R", calls)
	}

	c.glfwKeyCallback(nil, glfw.KeyR, 0, glfw.Press, 0)
	c.glfwKeyCallback(nil, glfw.KeyR, 0, glfw.Repeat, 0)
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
}
