package renderer

import (
	"fmt"
	"image"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	effect "github.com/richinsley/liquidpixel/effect"
	"github.com/richinsley/liquidpixel/graphics"
	inputs "github.com/richinsley/liquidpixel/inputs"
)

// Package-level guard so gl.Init() is called only once.
var glInitOnce sync.Once

// Renderer draws the source image through the pixelation program, driving
// the stage once per frame.
type Renderer struct {
	context graphics.Context
	stage   *effect.Stage
	texture *inputs.Texture
	quadVAO uint32
	quadVBO uint32
	program uint32
	locs    uniformLocations
}

// The unit plane, centered on the origin, as two triangles.
var quadVertices = []float32{
	-0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
}

func NewRenderer(ctx graphics.Context, stage *effect.Stage) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		stage:   stage,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return r, nil
}

// InitScene builds the mesh, uploads the image and compiles the program for
// the stage's variant.
func (r *Renderer) InitScene(img image.Image, filter inputs.Filter) error {
	var err error
	r.texture, err = inputs.NewTexture(img, filter)
	if err != nil {
		return fmt.Errorf("failed to create texture: %w", err)
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.program, r.locs, err = buildProgram(r.stage.Variant())
	if err != nil {
		return err
	}

	// The texture is sRGB; let the GPU encode the output back to sRGB.
	gl.Enable(gl.FRAMEBUFFER_SRGB)
	return nil
}

// RenderFrame advances the stage and draws one frame into the currently
// bound framebuffer. All uniforms are written before the draw call.
func (r *Renderer) RenderFrame(width, height int) effect.Uniforms {
	uniforms := r.stage.Update(width, height)

	texWidth, texHeight := r.texture.Size()
	scale := effect.MeshScale(float64(texWidth), float64(texHeight), float64(width), float64(height))

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	r.updateUniforms(uniforms, scale, width, height)
	r.texture.Bind(0)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	r.texture.Unbind(0)
	gl.UseProgram(0)

	return uniforms
}

func (r *Renderer) updateUniforms(u effect.Uniforms, scale [3]float64, width, height int) {
	if r.locs.texture != -1 {
		gl.Uniform1i(r.locs.texture, 0)
	}
	if r.locs.pixelSize != -1 {
		gl.Uniform1f(r.locs.pixelSize, float32(u.PixelSize))
	}
	if r.locs.resolution != -1 {
		gl.Uniform2f(r.locs.resolution, float32(u.Resolution.X), float32(u.Resolution.Y))
	}
	if r.locs.mouse != -1 {
		gl.Uniform2f(r.locs.mouse, float32(u.Mouse.X), float32(u.Mouse.Y))
	}
	if r.locs.mouseSmooth != -1 {
		gl.Uniform2f(r.locs.mouseSmooth, float32(u.MouseSmooth.X), float32(u.MouseSmooth.Y))
	}
	if r.locs.scale != -1 {
		gl.Uniform2f(r.locs.scale, float32(scale[0]), float32(scale[1]))
	}
	if r.locs.viewport != -1 {
		gl.Uniform2f(r.locs.viewport, float32(width), float32(height))
	}
}

// Run is the interactive loop. It renders one frame per swap until the
// window is closed.
func (r *Renderer) Run() {
	stage := r.stage
	revealed := false
	startTime := r.context.Time()

	for !r.context.ShouldClose() {
		if r.stage != stage {
			stage = r.stage
			revealed = false
			startTime = r.context.Time()
		}

		fbWidth, fbHeight := r.context.GetFramebufferSize()
		if fbWidth > 0 && fbHeight > 0 {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			r.RenderFrame(fbWidth, fbHeight)
		}

		if !revealed && stage.Revealed() {
			revealed = true
			log.Printf("Reveal finished after %d frames (%.2fs)", stage.Frame(), r.context.Time()-startTime)
		}

		r.context.EndFrame()
	}
}

// Replay restarts the reveal animation from its starting cell size. It must
// be called on the render thread, e.g. from a key callback during EndFrame.
func (r *Renderer) Replay() {
	r.stage = r.stage.Restart()
	log.Printf("Replaying reveal")
}

func (r *Renderer) Shutdown() {
	gl.DeleteProgram(r.program)
	if r.texture != nil {
		r.texture.Destroy()
	}
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}
