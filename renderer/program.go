package renderer

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	gst "github.com/richinsley/goshadertranslator"
	effect "github.com/richinsley/liquidpixel/effect"
	shader "github.com/richinsley/liquidpixel/shader"
	xlate "github.com/richinsley/liquidpixel/translator"
)

// uniformLocations caches the locations looked up after linking. Uniforms the
// program does not use are -1 and skipped on upload.
type uniformLocations struct {
	texture     int32
	pixelSize   int32
	resolution  int32
	mouse       int32
	mouseSmooth int32
	scale       int32
	viewport    int32
}

// buildProgram translates, compiles and links the program for variant.
func buildProgram(variant effect.Variant) (uint32, uniformLocations, error) {
	var locs uniformLocations

	translator, err := xlate.GetTranslator()
	if err != nil {
		return 0, locs, fmt.Errorf("failed to create shader translator: %w", err)
	}

	vsShader, err := translator.TranslateShader(shader.GenerateVertexShader(), "vertex", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return 0, locs, fmt.Errorf("vertex shader translation failed: %w", err)
	}
	fsShader, err := translator.TranslateShader(shader.GetFragmentShader(variant), "fragment", gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return 0, locs, fmt.Errorf("fragment shader translation failed: %w", err)
	}

	program, err := newProgram(vsShader.Code, fsShader.Code)
	if err != nil {
		return 0, locs, fmt.Errorf("failed to create shader program: %w", err)
	}

	gl.UseProgram(program)
	locs = uniformLocations{
		texture:     getUniformLocation(fsShader.Variables, program, shader.UniformTexture),
		pixelSize:   getUniformLocation(fsShader.Variables, program, shader.UniformPixelSize),
		resolution:  getUniformLocation(fsShader.Variables, program, shader.UniformResolution),
		mouse:       getUniformLocation(fsShader.Variables, program, shader.UniformMouse),
		mouseSmooth: getUniformLocation(fsShader.Variables, program, shader.UniformMouseSmooth),
		scale:       getUniformLocation(vsShader.Variables, program, shader.UniformScale),
		viewport:    getUniformLocation(vsShader.Variables, program, shader.UniformViewport),
	}
	gl.UseProgram(0)

	log.Printf("Created %s pixelation program %d", variant, program)
	return program, locs, nil
}

// getUniformLocation resolves a source-level uniform name through the
// translator's name mapping.
func getUniformLocation(uniformMap map[string]gst.ShaderVariable, program uint32, name string) int32 {
	v, ok := uniformMap[name]
	if !ok {
		return -1
	}
	return gl.GetUniformLocation(program, gl.Str(v.MappedName+"\x00"))
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
