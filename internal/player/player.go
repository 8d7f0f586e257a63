package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelite/internal/config"
	"voxelite/internal/input"
	"voxelite/internal/physics"
	"voxelite/internal/world"
)

const (
	// Bounding box half extents; Position is the box center.
	HalfWidth  = 0.3
	HalfHeight = 0.9

	// EyeOffset lifts the eye above the box center.
	EyeOffset = 0.6

	// Drag is the multiplicative horizontal friction per 60 Hz tick,
	// applied on the ground and in the air alike.
	Drag = 0.91

	// ReachDistance bounds the pick ray for block edits.
	ReachDistance = 6.0

	// velocityEpsilon zeroes residual horizontal drift.
	velocityEpsilon = 0.0005
)

// Player is the first-person actor: a gravity-bound AABB with a look
// direction and a selected block type for edits. Created once at world start
// and mutated every frame; never destroyed during a session.
type Player struct {
	Position mgl32.Vec3 // box center
	Velocity mgl32.Vec3
	Half     mgl32.Vec3
	OnGround bool

	Yaw   float64 // degrees, 0 looks along +X
	Pitch float64 // degrees, clamped to +-89

	Selected world.BlockType

	store *world.Store
}

// New creates the actor at a spawn position above the terrain.
func New(store *world.Store, spawn mgl32.Vec3) *Player {
	return &Player{
		Position: spawn,
		Half:     mgl32.Vec3{HalfWidth, HalfHeight, HalfWidth},
		Yaw:      -90,
		Selected: world.BlockTypeStone,
		store:    store,
	}
}

// ApplyLook turns the camera by a mouse delta, clamping pitch short of the
// poles to avoid gimbal flip.
func (p *Player) ApplyLook(dx, dy float64, sensitivity float64) {
	p.Yaw += dx * sensitivity
	p.Pitch += dy * sensitivity
	if p.Pitch > 89 {
		p.Pitch = 89
	}
	if p.Pitch < -89 {
		p.Pitch = -89
	}
}

// Update advances the actor one physics step: input acceleration, jump,
// gravity, per-axis collision, then drag.
func (p *Player) Update(dt float64, st input.State) {
	cfg := config.Current()
	dtFactor := physics.DTFactor(dt)

	// Movement input in the horizontal camera frame.
	forward := float32(0)
	strafe := float32(0)
	if st.Forward {
		forward++
	}
	if st.Backward {
		forward--
	}
	if st.Right {
		strafe++
	}
	if st.Left {
		strafe--
	}

	if forward != 0 || strafe != 0 {
		yawRad := float64(mgl32.DegToRad(float32(p.Yaw)))
		frontX := float32(math.Cos(yawRad))
		frontZ := float32(math.Sin(yawRad))
		strafeX := -frontZ
		strafeZ := frontX

		norm := float32(1)
		if forward != 0 && strafe != 0 {
			norm = 1 / float32(math.Sqrt2)
		}

		speed := cfg.WalkSpeed
		if st.Sprint && forward > 0 {
			speed = cfg.SprintSpeed
		}

		p.Velocity[0] += (forward*frontX + strafe*strafeX) * norm * speed * dtFactor
		p.Velocity[2] += (forward*frontZ + strafe*strafeZ) * norm * speed * dtFactor
	}

	// Jump gating: only off the ground state computed by the previous step.
	if st.Jump && p.OnGround {
		p.Velocity[1] = cfg.JumpSpeed
		p.OnGround = false
	}

	// Gravity, once per frame, before the solver.
	p.Velocity[1] += cfg.Gravity * dtFactor

	p.Position, p.Velocity, p.OnGround = physics.Step(p.store, p.Position, p.Velocity, p.Half, dtFactor)

	// Horizontal drag, unconditional.
	dragFactor := float32(math.Pow(Drag, float64(dtFactor)))
	p.Velocity[0] *= dragFactor
	p.Velocity[2] *= dragFactor
	if math.Abs(float64(p.Velocity[0])) < velocityEpsilon {
		p.Velocity[0] = 0
	}
	if math.Abs(float64(p.Velocity[2])) < velocityEpsilon {
		p.Velocity[2] = 0
	}
}

// FrontVector returns the unit look direction.
func (p *Player) FrontVector() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(float32(p.Yaw)))
	pitch := float64(mgl32.DegToRad(float32(p.Pitch)))
	return mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// EyePosition returns the point picks and the camera originate from.
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, EyeOffset, 0})
}

// ViewMatrix builds the camera view matrix for the render surface.
func (p *Player) ViewMatrix() mgl32.Mat4 {
	eye := p.EyePosition()
	return mgl32.LookAtV(eye, eye.Add(p.FrontVector()), mgl32.Vec3{0, 1, 0})
}

// CycleBlock advances the selected block type.
func (p *Player) CycleBlock() {
	p.Selected = world.NextPlaceable(p.Selected)
}

// Pick ray-marches from the eye along the look direction.
func (p *Player) Pick() physics.PickResult {
	return physics.Pick(p.store, p.EyePosition(), p.FrontVector(), ReachDistance)
}

// BreakBlock removes the block under the cursor. Returns false on a miss.
func (p *Player) BreakBlock() bool {
	res := p.Pick()
	if !res.Hit {
		return false
	}
	p.store.SetBlockAt(res.Block[0], res.Block[1], res.Block[2], world.BlockTypeAir)
	return true
}

// PlaceBlock puts the selected block into the placement cell next to the
// picked face, refusing cells that would overlap the actor.
func (p *Player) PlaceBlock() bool {
	res := p.Pick()
	if !res.Hit {
		return false
	}
	cellCenter := mgl32.Vec3{
		float32(res.Adjacent[0]) + 0.5,
		float32(res.Adjacent[1]) + 0.5,
		float32(res.Adjacent[2]) + 0.5,
	}
	if boxesOverlap(p.Position, p.Half, cellCenter, mgl32.Vec3{0.5, 0.5, 0.5}) {
		return false
	}
	p.store.SetBlockAt(res.Adjacent[0], res.Adjacent[1], res.Adjacent[2], p.Selected)
	return true
}

func boxesOverlap(aPos, aHalf, bPos, bHalf mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if aPos[i]-aHalf[i] >= bPos[i]+bHalf[i] || aPos[i]+aHalf[i] <= bPos[i]-bHalf[i] {
			return false
		}
	}
	return true
}
