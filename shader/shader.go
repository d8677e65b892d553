package shader

import (
	effect "github.com/richinsley/liquidpixel/effect"
)

// Sources are written against WebGL2 (GLSL ES 3.00) and go through the
// translator before compilation, so uniform and varying names are looked up
// through the translator's variable map.

// ─────────────────────────────────── Vertex ────────────────────────────────────

// The quad spans [-0.5, 0.5]; uScale is the mesh scale in pixels and
// uViewport the framebuffer size, so the plane covers the viewport.
const vertexShaderSource = `#version 300 es
precision highp float;

layout (location = 0) in vec2 in_vert;

uniform vec2 uScale;
uniform vec2 uViewport;

out vec2 vUv;

void main() {
    vUv = in_vert + 0.5;
    gl_Position = vec4(in_vert * uScale / uViewport * 2.0, 0.0, 1.0);
}
`

// ───────────────────────────────── Fragment ────────────────────────────────────

// Output goes to an sRGB framebuffer and uTexture is an sRGB texture, so the
// color space conversion happens in hardware on sample and on store.
const interactiveFragmentShaderSource = `#version 300 es
precision highp float;

uniform sampler2D uTexture;
uniform float uPixelSize;
uniform vec2 uResolution;
uniform vec2 uMouse;
uniform vec2 uMouseSmooth;

in vec2 vUv;
out vec4 fragColor;

void main() {
    vec2 cellCount = uResolution / 30.0;
    vec2 cellUv = floor(vUv * cellCount) / cellCount + (0.5 / cellCount);
    vec2 aspectRatio = vec2(uResolution.x / uResolution.y, 1.0);
    vec2 diff = (cellUv - uMouseSmooth) * aspectRatio;
    float dist = length(diff);
    vec2 mouseDelta = uMouse - uMouseSmooth;
    float speed = length(mouseDelta);
    float speedDecay = clamp(speed * 5.0, 0.0, 1.0);
    float radius = 0.2;
    float influence = smoothstep(0.0, radius, radius - dist) * speedDecay;
    vec2 direction = (speed > 0.000001) ? normalize(mouseDelta) : vec2(0.0);
    vec2 displacement = direction * (-300.0 * influence * length(uMouseSmooth));

    vec2 pixelatedUv = round(vUv * uResolution / uPixelSize) * uPixelSize / uResolution;
    vec2 finalUv = pixelatedUv + displacement / uResolution;
    fragColor = texture(uTexture, finalUv);
}
`

const staticFragmentShaderSource = `#version 300 es
precision highp float;

uniform sampler2D uTexture;
uniform float uPixelSize;
uniform vec2 uResolution;

in vec2 vUv;
out vec4 fragColor;

void main() {
    vec2 pixelatedUv = round(vUv * uResolution / uPixelSize) * uPixelSize / uResolution;
    fragColor = texture(uTexture, pixelatedUv);
}
`

// Uniform names shared by the programs. The static fragment program declares
// a subset; absent uniforms resolve to location -1.
const (
	UniformTexture     = "uTexture"
	UniformPixelSize   = "uPixelSize"
	UniformResolution  = "uResolution"
	UniformMouse       = "uMouse"
	UniformMouseSmooth = "uMouseSmooth"
	UniformScale       = "uScale"
	UniformViewport    = "uViewport"
)

// ────────────────────────────────── Public API ─────────────────────────────────

// GenerateVertexShader returns the vertex source that scales the unit quad
// to cover the viewport.
func GenerateVertexShader() string {
	return vertexShaderSource
}

// GetFragmentShader returns the fragment source for the given variant.
func GetFragmentShader(v effect.Variant) string {
	if v == effect.Static {
		return staticFragmentShaderSource
	}
	return interactiveFragmentShaderSource
}
