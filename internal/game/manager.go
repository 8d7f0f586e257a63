package game

import (
	"voxelite/internal/config"
	"voxelite/internal/meshing"
	"voxelite/internal/profiling"
	"voxelite/internal/world"
)

// evictMargin keeps a ring of chunks loaded beyond the render radius so
// walking back and forth across a chunk border does not thrash generation.
const evictMargin = 2

// Manager maintains the set of chunks required around the moving actor and
// throttles their meshing work across frames.
type Manager struct {
	store *world.Store
	queue *world.BuildQueue

	lastCX, lastCZ int
	hasCenter      bool
}

// NewManager drives the given store and its build queue.
func NewManager(store *world.Store) *Manager {
	return &Manager{
		store: store,
		queue: store.Queue(),
	}
}

// UpdateVisibleGrid makes sure every chunk within the render radius of the
// reference point exists and is queued for meshing if dirty. Cheap fast path
// when the reference chunk has not changed since the last call; otherwise it
// also evicts chunks beyond radius+margin so the working set stays bounded.
func (m *Manager) UpdateVisibleGrid(x, z float32) {
	cx, cz := world.ChunkCoordOf(floorInt(x), floorInt(z))
	if m.hasCenter && cx == m.lastCX && cz == m.lastCZ {
		return
	}
	defer profiling.Track("game.UpdateVisibleGrid")()

	m.lastCX = cx
	m.lastCZ = cz
	m.hasCenter = true

	cfg := config.Current()
	m.loadAround(cx, cz, cfg.RenderRadius)
	m.evict(cx, cz, cfg.RenderRadius+evictMargin)
}

// loadAround ensures the Chebyshev square of chunks around the center.
func (m *Manager) loadAround(cx, cz, radius int) {
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			c := m.store.Ensure(cx+dx, cz+dz)
			if c.IsDirty() {
				m.queue.Push(c)
			}
		}
	}
}

// evict unloads chunks beyond the given Chebyshev radius, releasing their
// meshes and block storage. Returns the number of chunks removed.
func (m *Manager) evict(cx, cz, radius int) int {
	removed := 0
	for _, c := range m.store.All() {
		dx := c.X - cx
		dz := c.Z - cz
		if dx < -radius || dx > radius || dz < -radius || dz > radius {
			m.store.Remove(c.X, c.Z)
			removed++
		}
	}
	return removed
}

// DrainBuildQueue pops up to maxPerFrame chunks in FIFO order and rebuilds
// their meshes. This throttle bounds per-frame meshing cost no matter how
// many chunks became dirty at once. Returns the number of meshes built.
func (m *Manager) DrainBuildQueue(maxPerFrame int) int {
	defer profiling.Track("game.DrainBuildQueue")()
	built := 0
	for built < maxPerFrame {
		c := m.queue.Pop()
		if c == nil {
			break
		}
		meshing.BuildChunkMesh(m.store, c)
		built++
	}
	return built
}

// RegenerateAll throws away the whole world and reloads the grid around the
// reference point with a sampler built from the current terrain tunables.
// Triggered by terrain or radius changes and by the manual refresh action.
func (m *Manager) RegenerateAll(x, z float32) {
	defer profiling.Track("game.RegenerateAll")()
	cfg := config.Current()
	m.store.Reset()
	m.store.SetSampler(world.NewSampler(cfg.MaskScale, cfg.HillScale, cfg.DetailScale, cfg.MountainAmp))
	m.hasCenter = false
	m.UpdateVisibleGrid(x, z)
}

// QueueDepth reports how many chunks wait for meshing, for the diagnostics
// readout.
func (m *Manager) QueueDepth() int {
	return m.queue.Len()
}

// LoadedChunks reports the store's working-set size.
func (m *Manager) LoadedChunks() int {
	return m.store.Len()
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}
