package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelite/internal/profiling"
	"voxelite/internal/world"
)

const blockVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;
out vec3 vColor;

void main() {
	gl_Position = uProjection * uView * vec4(aPos, 1.0);
	vNormal = aNormal;
	vColor = aColor;
}
`

const blockFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vColor;

uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
	vec3 lit = vColor * (0.45 + 0.55 * diffuse);
	FragColor = vec4(lit, 1.0);
}
`

// meshBuffer is the GPU side of one chunk mesh.
type meshBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Renderer draws chunk meshes and the diagnostics readout. It owns the GPU
// buffers it uploads; each buffer's lifetime is tied to its mesh through the
// mesh's release hook, so replacing or evicting a chunk frees its buffers.
type Renderer struct {
	shader  *Shader
	buffers map[*world.Mesh]*meshBuffer
	text    *TextOverlay

	width  int
	height int
}

// NewRenderer compiles the block shader and sets up fixed GL state.
func NewRenderer() (*Renderer, error) {
	shader, err := NewShader(blockVertexShader, blockFragmentShader)
	if err != nil {
		return nil, err
	}
	text, err := NewTextOverlay()
	if err != nil {
		shader.Dispose()
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.ClearColor(0.53, 0.78, 0.92, 1.0)

	return &Renderer{
		shader:  shader,
		buffers: make(map[*world.Mesh]*meshBuffer),
		text:    text,
		width:   900,
		height:  600,
	}, nil
}

// UpdateViewport resizes the GL viewport and the projection aspect.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw renders every chunk that has a mesh, then the status text.
func (r *Renderer) Draw(chunks []*world.Chunk, view mgl32.Mat4, status string) {
	defer profiling.Track("graphics.Draw")()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := mgl32.Perspective(
		mgl32.DegToRad(70),
		float32(r.width)/float32(r.height),
		0.1, 1000,
	)

	r.shader.Use()
	r.shader.SetMatrix4("uView", &view[0])
	r.shader.SetMatrix4("uProjection", &projection[0])
	r.shader.SetVector3("uLightDir", -0.5, -0.8, -0.3)

	for _, c := range chunks {
		m := c.Mesh()
		if m == nil || m.VertexCount() == 0 {
			continue
		}
		buf := r.ensureUploaded(m)
		gl.BindVertexArray(buf.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, buf.count)
	}
	gl.BindVertexArray(0)

	if status != "" {
		r.text.Draw(status, r.width, r.height)
	}
}

// ensureUploaded uploads the mesh on first sight and binds a releaser so the
// buffers are freed exactly once when the mesh is replaced or dropped.
func (r *Renderer) ensureUploaded(m *world.Mesh) *meshBuffer {
	if buf, ok := r.buffers[m]; ok {
		return buf
	}

	buf := &meshBuffer{count: int32(m.VertexCount())}
	gl.GenVertexArrays(1, &buf.vao)
	gl.GenBuffers(1, &buf.vbo)

	gl.BindVertexArray(buf.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	stride := int32(world.MeshVertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 6*4)
	gl.BindVertexArray(0)

	r.buffers[m] = buf
	m.SetReleaser(func() {
		gl.DeleteVertexArrays(1, &buf.vao)
		gl.DeleteBuffers(1, &buf.vbo)
		delete(r.buffers, m)
	})
	return buf
}

// Dispose frees every GPU resource the renderer still holds.
func (r *Renderer) Dispose() {
	for m := range r.buffers {
		m.Release()
	}
	r.text.Dispose()
	r.shader.Dispose()
}
