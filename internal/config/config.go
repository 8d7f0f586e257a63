package config

import "sync"

// Tunable parameters for simulation, streaming and terrain. Process-wide,
// guarded by one RWMutex; the tick loop reads them once per frame through
// Current() so a whole tick sees a consistent snapshot.

// Snapshot is an immutable copy of every tunable, taken once per tick.
type Snapshot struct {
	// Physics. Velocities are blocks per 60 Hz tick; gravity is the per-tick
	// velocity increment (negative = down).
	Gravity     float32
	JumpSpeed   float32
	WalkSpeed   float32
	SprintSpeed float32

	// Streaming.
	RenderRadius int // Chebyshev radius, in chunks
	MeshBudget   int // chunk meshes built per frame

	// Terrain.
	MaskScale   float64
	HillScale   float64
	DetailScale float64
	MountainAmp float64

	// Glue.
	MouseSensitivity float64
	FPSLimit         int
}

// TerrainEquals reports whether the two snapshots generate identical terrain
// and cover the same radius — the fields whose change forces a full
// regeneration.
func (s Snapshot) TerrainEquals(o Snapshot) bool {
	return s.RenderRadius == o.RenderRadius &&
		s.MaskScale == o.MaskScale &&
		s.HillScale == o.HillScale &&
		s.DetailScale == o.DetailScale &&
		s.MountainAmp == o.MountainAmp
}

var (
	mu      sync.RWMutex
	current = Snapshot{
		Gravity:     -0.012,
		JumpSpeed:   0.2,
		WalkSpeed:   0.007,
		SprintSpeed: 0.011,

		RenderRadius: 6,
		MeshBudget:   8,

		MaskScale:   0.004,
		HillScale:   0.02,
		DetailScale: 0.09,
		MountainAmp: 40,

		MouseSensitivity: 0.1,
		FPSLimit:         120,
	}
)

// Current returns a copy of the tunables for this tick.
func Current() Snapshot {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// SetPhysics updates the physics constants. Takes effect on the next tick,
// no invalidation.
func SetPhysics(gravity, jumpSpeed, walkSpeed, sprintSpeed float32) {
	mu.Lock()
	defer mu.Unlock()
	current.Gravity = gravity
	current.JumpSpeed = jumpSpeed
	current.WalkSpeed = walkSpeed
	current.SprintSpeed = sprintSpeed
}

// SetRenderRadius sets the streaming radius in chunks. Clamped to >= 0;
// the world manager regenerates around the actor when it changes.
func SetRenderRadius(radius int) {
	if radius < 0 {
		radius = 0
	}
	mu.Lock()
	defer mu.Unlock()
	current.RenderRadius = radius
}

// SetMeshBudget sets the per-frame mesh build budget. Clamped to >= 1.
func SetMeshBudget(budget int) {
	if budget < 1 {
		budget = 1
	}
	mu.Lock()
	defer mu.Unlock()
	current.MeshBudget = budget
}

// SetTerrain updates the four terrain constants; the world manager
// regenerates around the actor when any of them changes.
func SetTerrain(maskScale, hillScale, detailScale, mountainAmp float64) {
	mu.Lock()
	defer mu.Unlock()
	current.MaskScale = maskScale
	current.HillScale = hillScale
	current.DetailScale = detailScale
	current.MountainAmp = mountainAmp
}

// SetMouseSensitivity sets look sensitivity in degrees per pixel.
func SetMouseSensitivity(s float64) {
	mu.Lock()
	defer mu.Unlock()
	current.MouseSensitivity = s
}

// SetFPSLimit sets the frame cap; <= 0 disables limiting.
func SetFPSLimit(limit int) {
	mu.Lock()
	defer mu.Unlock()
	current.FPSLimit = limit
}

// set replaces the whole snapshot; used by the file loader.
func set(s Snapshot) {
	mu.Lock()
	defer mu.Unlock()
	current = s
}
