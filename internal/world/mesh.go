package world

// MeshVertexStride is the number of float32 per mesh vertex:
// position.xyz + normal.xyz + color.rgb.
const MeshVertexStride = 9

// Mesh is the triangle soup built for one chunk. The CPU-side vertices are
// interleaved position+normal+color; once a renderer uploads them it installs
// a releaser so the GPU buffers are freed exactly once, before the mesh is
// replaced or dropped.
type Mesh struct {
	Vertices []float32

	release func()
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / MeshVertexStride
}

// SetReleaser installs the hook that frees the GPU-side resource.
// Replaces any previously installed hook without calling it; a renderer must
// only bind a releaser to a mesh it has not uploaded before.
func (m *Mesh) SetReleaser(fn func()) {
	m.release = fn
}

// Release frees the GPU-side resource, if any. Safe to call more than once.
func (m *Mesh) Release() {
	if m.release != nil {
		m.release()
		m.release = nil
	}
}
