package world

// Store owns the sparse chunk map: at most one chunk per coordinate, created
// and populated lazily through Ensure. The store, like the rest of the
// simulation state, belongs to the single tick goroutine; nothing here locks.
type Store struct {
	chunks  map[ChunkCoord]*Chunk
	sampler HeightSampler
	queue   *BuildQueue
}

// NewStore creates an empty store generating terrain through sampler and
// reporting dirtied chunks into queue.
func NewStore(sampler HeightSampler, queue *BuildQueue) *Store {
	return &Store{
		chunks:  make(map[ChunkCoord]*Chunk),
		sampler: sampler,
		queue:   queue,
	}
}

// SetSampler swaps the terrain sampler. Only meaningful together with Reset;
// already generated chunks are never resampled.
func (s *Store) SetSampler(sampler HeightSampler) {
	s.sampler = sampler
}

// Queue returns the build queue the store reports edits into.
func (s *Store) Queue() *BuildQueue {
	return s.queue
}

// Ensure returns the chunk at (cx, cz), generating terrain into it on first
// access. Idempotent: later calls return the same chunk without resampling.
func (s *Store) Ensure(cx, cz int) *Chunk {
	coord := ChunkCoord{X: cx, Z: cz}
	if c, ok := s.chunks[coord]; ok {
		return c
	}
	c := NewChunk(cx, cz)
	s.populate(c)
	s.chunks[coord] = c
	return c
}

// populate samples terrain one column at a time: Grass on the surface row,
// Stone more than 3 blocks below it, Dirt between, Air above.
func (s *Store) populate(c *Chunk) {
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			worldX := c.X*ChunkSizeX + lx
			worldZ := c.Z*ChunkSizeZ + lz
			height := s.sampler.HeightAt(worldX, worldZ)
			if height > ChunkSizeY {
				height = ChunkSizeY
			}
			surface := height - 1
			for y := 0; y < height; y++ {
				switch {
				case y == surface:
					c.SetBlock(lx, y, lz, BlockTypeGrass)
				case surface-y > 3:
					c.SetBlock(lx, y, lz, BlockTypeStone)
				default:
					c.SetBlock(lx, y, lz, BlockTypeDirt)
				}
			}
		}
	}
	c.generated = true
	c.dirty = true
}

// Chunk returns the chunk at (cx, cz) without creating it, nil when absent.
func (s *Store) Chunk(cx, cz int) *Chunk {
	return s.chunks[ChunkCoord{X: cx, Z: cz}]
}

// BlockAt returns the block at world coordinates. Missing chunks and
// out-of-height coordinates read as Air; lookups never generate chunks.
func (s *Store) BlockAt(wx, wy, wz int) BlockType {
	if wy < 0 || wy >= ChunkSizeY {
		return BlockTypeAir
	}
	c := s.Chunk(floorDiv(wx, ChunkSizeX), floorDiv(wz, ChunkSizeZ))
	if c == nil {
		return BlockTypeAir
	}
	return c.Block(mod(wx, ChunkSizeX), wy, mod(wz, ChunkSizeZ))
}

// IsSolid reports whether the block at world coordinates blocks movement.
func (s *Store) IsSolid(wx, wy, wz int) bool {
	return s.BlockAt(wx, wy, wz).IsSolid()
}

// SetBlockAt writes a block at world coordinates. This is the only mutation
// path after initial generation: edits outside existing chunks or outside the
// vertical range are silently dropped, and a changed chunk is marked dirty
// and enqueued for remeshing. Edits on a border column also re-queue the
// touching neighbor so its culled faces get rebuilt.
func (s *Store) SetBlockAt(wx, wy, wz int, b BlockType) {
	if wy < 0 || wy >= ChunkSizeY {
		return
	}
	c := s.Chunk(floorDiv(wx, ChunkSizeX), floorDiv(wz, ChunkSizeZ))
	if c == nil {
		return
	}

	localX := mod(wx, ChunkSizeX)
	localZ := mod(wz, ChunkSizeZ)
	if c.Block(localX, wy, localZ) == b {
		return
	}
	c.SetBlock(localX, wy, localZ, b)
	s.queue.Push(c)

	if localX == 0 {
		s.requeueNeighbor(wx-1, wz)
	} else if localX == ChunkSizeX-1 {
		s.requeueNeighbor(wx+1, wz)
	}
	if localZ == 0 {
		s.requeueNeighbor(wx, wz-1)
	} else if localZ == ChunkSizeZ-1 {
		s.requeueNeighbor(wx, wz+1)
	}
}

func (s *Store) requeueNeighbor(wx, wz int) {
	nb := s.Chunk(floorDiv(wx, ChunkSizeX), floorDiv(wz, ChunkSizeZ))
	if nb != nil {
		nb.MarkDirty()
		s.queue.Push(nb)
	}
}

// Remove drops the chunk at (cx, cz), releasing its mesh and purging any
// pending build entry so a chunk recreated at the same coordinate can queue
// again. No-op when absent.
func (s *Store) Remove(cx, cz int) {
	coord := ChunkCoord{X: cx, Z: cz}
	if c, ok := s.chunks[coord]; ok {
		c.ReleaseMesh()
		delete(s.chunks, coord)
		s.queue.Remove(coord)
	}
}

// Reset releases every chunk's mesh and clears the store. Used only on
// full-parameter regeneration.
func (s *Store) Reset() {
	for coord, c := range s.chunks {
		c.ReleaseMesh()
		delete(s.chunks, coord)
	}
	s.queue.Clear()
}

// Len returns the number of loaded chunks.
func (s *Store) Len() int {
	return len(s.chunks)
}

// All returns every loaded chunk in unspecified order.
func (s *Store) All() []*Chunk {
	chunks := make([]*Chunk, 0, len(s.chunks))
	for _, c := range s.chunks {
		chunks = append(chunks, c)
	}
	return chunks
}

// ChunkCoordOf maps world block coordinates to the owning chunk coordinate.
func ChunkCoordOf(wx, wz int) (int, int) {
	return floorDiv(wx, ChunkSizeX), floorDiv(wz, ChunkSizeZ)
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
