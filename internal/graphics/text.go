package graphics

import (
	"image"
	"image/color"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const textVertexShader = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 vUV;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	vUV = aUV;
}
`

const textFragmentShader = `#version 410 core
in vec2 vUV;

uniform sampler2D uText;

out vec4 FragColor;

void main() {
	FragColor = texture(uText, vUV);
}
`

const (
	textMargin     = 8
	textLineHeight = 16
)

// TextOverlay rasterizes the diagnostics readout into a texture with the
// fixed 7x13 bitmap face and blits it into the top-left window corner.
// Re-rasterizes only when the text changes.
type TextOverlay struct {
	shader *Shader

	vao uint32
	vbo uint32
	tex uint32

	lastText string
	imgW     int
	imgH     int
}

// NewTextOverlay compiles the overlay shader and allocates the quad buffers.
func NewTextOverlay() (*TextOverlay, error) {
	shader, err := NewShader(textVertexShader, textFragmentShader)
	if err != nil {
		return nil, err
	}

	t := &TextOverlay{shader: shader}
	gl.GenVertexArrays(1, &t.vao)
	gl.GenBuffers(1, &t.vbo)
	gl.GenTextures(1, &t.tex)

	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	// 6 vertices * (pos.xy + uv.xy), filled per draw
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.BindVertexArray(0)

	return t, nil
}

// Draw blits the given text over the scene.
func (t *TextOverlay) Draw(text string, winW, winH int) {
	if text != t.lastText {
		t.rasterize(text)
		t.lastText = text
	}
	if t.imgW == 0 || t.imgH == 0 {
		return
	}

	// Quad in NDC, anchored to the top-left corner at 1:1 pixel scale.
	x0 := float32(-1)
	y0 := float32(1)
	x1 := x0 + 2*float32(t.imgW)/float32(winW)
	y1 := y0 - 2*float32(t.imgH)/float32(winH)
	quad := []float32{
		x0, y0, 0, 0,
		x0, y1, 0, 1,
		x1, y1, 1, 1,
		x1, y1, 1, 1,
		x1, y0, 1, 0,
		x0, y0, 0, 0,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	t.shader.Use()
	t.shader.SetInt("uText", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)

	gl.BindVertexArray(t.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// rasterize renders the text lines into an RGBA image and uploads it.
func (t *TextOverlay) rasterize(text string) {
	lines := strings.Split(text, "\n")

	face := basicfont.Face7x13
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	if width == 0 {
		t.imgW, t.imgH = 0, 0
		return
	}
	t.imgW = width + 2*textMargin
	t.imgH = len(lines)*textLineHeight + 2*textMargin

	img := image.NewRGBA(image.Rect(0, 0, t.imgW, t.imgH))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(textMargin, textMargin+face.Ascent+i*textLineHeight)
		drawer.DrawString(line)
	}

	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(t.imgW), int32(t.imgH), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
}

// Dispose frees the overlay's GPU resources.
func (t *TextOverlay) Dispose() {
	gl.DeleteTextures(1, &t.tex)
	gl.DeleteBuffers(1, &t.vbo)
	gl.DeleteVertexArrays(1, &t.vao)
	t.shader.Dispose()
}
