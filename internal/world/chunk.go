package world

const (
	// Chunk dimensions. Chunks span the full world height, so they tile the
	// horizontal plane only.
	ChunkSizeX = 16
	ChunkSizeY = 64
	ChunkSizeZ = 16

	chunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkCoord addresses a chunk on the horizontal grid.
type ChunkCoord struct {
	X, Z int
}

// Chunk is a dense 16x64x16 slab of blocks. It exclusively owns at most one
// generated mesh; installing a new mesh releases the previous one.
type Chunk struct {
	X, Z int

	blocks    [chunkVolume]BlockType
	generated bool
	dirty     bool
	mesh      *Mesh
}

// NewChunk creates an empty, ungenerated chunk at the given chunk coordinates.
func NewChunk(x, z int) *Chunk {
	return &Chunk{X: x, Z: z}
}

// Coord returns the chunk's grid coordinate.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Z: c.Z}
}

func blockIndex(x, y, z int) int {
	return (x*ChunkSizeY+y)*ChunkSizeZ + z
}

// Block returns the block at local coordinates, Air when out of bounds.
func (c *Chunk) Block(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock writes a block at local coordinates and marks the chunk dirty when
// the contents actually change. Out-of-bounds writes are dropped.
func (c *Chunk) SetBlock(x, y, z int, b BlockType) {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return
	}
	idx := blockIndex(x, y, z)
	if c.blocks[idx] != b {
		c.blocks[idx] = b
		c.dirty = true
	}
}

// Generated reports whether terrain has been sampled into the block array.
func (c *Chunk) Generated() bool {
	return c.generated
}

// IsDirty reports whether block contents changed since the last mesh build.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty flags the chunk for remeshing.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// SetClean clears the dirty flag after a mesh build.
func (c *Chunk) SetClean() {
	c.dirty = false
}

// Mesh returns the chunk's current mesh, nil when none has been built.
func (c *Chunk) Mesh() *Mesh {
	return c.mesh
}

// SetMesh installs a freshly built mesh, releasing the previous one first so
// its GPU-side buffers never leak.
func (c *Chunk) SetMesh(m *Mesh) {
	if c.mesh != nil {
		c.mesh.Release()
	}
	c.mesh = m
}

// ReleaseMesh drops the chunk's mesh and frees its GPU-side resource.
func (c *Chunk) ReleaseMesh() {
	if c.mesh != nil {
		c.mesh.Release()
		c.mesh = nil
	}
}
