package meshing

import (
	"voxelite/internal/world"
)

// Face-culling chunk mesher. Every solid block contributes up to 6 faces;
// a face is emitted only where the visibility rule says the neighbor lets it
// show. Neighbor lookups go through the store so culling works across chunk
// borders, and a missing neighbor chunk reads as Air — the generation
// frontier renders as a solid wall until the neighbor streams in.

// faceDir describes one of the six cube face directions.
type faceDir struct {
	dx, dy, dz int
	// corners are the quad's 4 vertices as offsets from the cell origin,
	// wound counterclockwise seen from outside the block.
	corners [4][3]float32
}

var faceDirs = [6]faceDir{
	{dx: +1, corners: [4][3]float32{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}}},
	{dx: -1, corners: [4][3]float32{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}}},
	{dy: +1, corners: [4][3]float32{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}}},
	{dy: -1, corners: [4][3]float32{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}},
	{dz: +1, corners: [4][3]float32{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},
	{dz: -1, corners: [4][3]float32{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}},
}

// faceVisible implements the visibility rule: a face shows against Air, and
// against Glass unless the block itself is Glass. The asymmetry lets solid
// faces render behind glass while suppressing internal glass-glass faces.
func faceVisible(block, neighbor world.BlockType) bool {
	if neighbor == world.BlockTypeAir {
		return true
	}
	if neighbor == world.BlockTypeGlass && block != world.BlockTypeGlass {
		return true
	}
	return false
}

// BuildChunkMesh rebuilds the chunk's mesh if it is dirty. The previous mesh
// is released before the new one is installed, and the chunk comes out clean.
func BuildChunkMesh(s *world.Store, c *world.Chunk) {
	if c == nil || !c.IsDirty() {
		return
	}
	c.SetMesh(&world.Mesh{Vertices: buildVertices(s, c)})
	c.SetClean()
}

// buildVertices emits the chunk's visible faces as a flat triangle list,
// interleaved position+normal+color.
func buildVertices(s *world.Store, c *world.Chunk) []float32 {
	vertices := make([]float32, 0, 4096)

	baseX := c.X * world.ChunkSizeX
	baseZ := c.Z * world.ChunkSizeZ

	for lx := 0; lx < world.ChunkSizeX; lx++ {
		for ly := 0; ly < world.ChunkSizeY; ly++ {
			for lz := 0; lz < world.ChunkSizeZ; lz++ {
				block := c.Block(lx, ly, lz)
				if !block.IsSolid() {
					continue
				}
				wx := baseX + lx
				wz := baseZ + lz
				color := block.Color()

				for d := range faceDirs {
					dir := &faceDirs[d]
					neighbor := s.BlockAt(wx+dir.dx, ly+dir.dy, wz+dir.dz)
					if !faceVisible(block, neighbor) {
						continue
					}
					vertices = emitFace(vertices, float32(wx), float32(ly), float32(wz), dir, color[0], color[1], color[2])
				}
			}
		}
	}
	return vertices
}

// emitFace appends the two triangles of one face quad (v0,v1,v2 and v2,v3,v0).
func emitFace(vertices []float32, x, y, z float32, dir *faceDir, r, g, b float32) []float32 {
	nx := float32(dir.dx)
	ny := float32(dir.dy)
	nz := float32(dir.dz)

	push := func(i int) {
		vertices = append(vertices,
			x+dir.corners[i][0], y+dir.corners[i][1], z+dir.corners[i][2],
			nx, ny, nz,
			r, g, b,
		)
	}
	push(0)
	push(1)
	push(2)
	push(2)
	push(3)
	push(0)
	return vertices
}
