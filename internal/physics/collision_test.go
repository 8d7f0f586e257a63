package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// gridSource is a sparse voxel stub for collision tests.
type gridSource map[[3]int]bool

func (g gridSource) IsSolid(x, y, z int) bool { return g[[3]int{x, y, z}] }

// floorSource is solid everywhere below the given height.
type floorSource struct {
	top int // first air row
}

func (f floorSource) IsSolid(x, y, z int) bool { return y < f.top }

var actorHalf = mgl32.Vec3{0.3, 0.9, 0.3}

// TestDTFactor verifies the 60 Hz scaling and its cap.
func TestDTFactor(t *testing.T) {
	if got := DTFactor(1.0 / 60.0); math.Abs(float64(got)-1.0) > 1e-6 {
		t.Errorf("DTFactor(1/60) = %v, want 1", got)
	}
	if got := DTFactor(0.5); got != MaxDTFactor {
		t.Errorf("DTFactor(0.5) = %v, want %v", got, MaxDTFactor)
	}
	if got := DTFactor(1.0 / 120.0); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("DTFactor(1/120) = %v, want 0.5", got)
	}
}

// TestFallAndSettle drops a box onto a flat floor under gravity and checks it
// comes to rest exactly ContactEpsilon above the surface, grounded with zero
// vertical velocity.
func TestFallAndSettle(t *testing.T) {
	ws := floorSource{top: 30}
	pos := mgl32.Vec3{0.5, 35, 0.5}
	vel := mgl32.Vec3{}
	const gravity = -0.012

	grounded := false
	for frame := 0; frame < 300; frame++ {
		vel[1] += gravity
		pos, vel, grounded = Step(ws, pos, vel, actorHalf, 1.0)
	}

	want := float32(30 + 0.9 + ContactEpsilon)
	if math.Abs(float64(pos.Y()-want)) > 1e-5 {
		t.Errorf("settled at y = %v, want %v", pos.Y(), want)
	}
	if !grounded {
		t.Error("box settled but is not grounded")
	}
	if vel.Y() != 0 {
		t.Errorf("settled vertical velocity = %v, want 0", vel.Y())
	}
}

// TestNoTunnelingAtMaxStep verifies a fast fall at the clamped time factor
// still ends on the correct side of the floor.
func TestNoTunnelingAtMaxStep(t *testing.T) {
	ws := floorSource{top: 30}
	pos := mgl32.Vec3{0.5, 31.2, 0.5}
	vel := mgl32.Vec3{0, -0.9, 0} // 1.8 blocks of displacement at the cap

	pos, vel, grounded := Step(ws, pos, vel, actorHalf, MaxDTFactor)

	want := float32(30 + 0.9 + ContactEpsilon)
	if math.Abs(float64(pos.Y()-want)) > 1e-5 {
		t.Errorf("resolved to y = %v, want %v", pos.Y(), want)
	}
	if !grounded || vel.Y() != 0 {
		t.Errorf("grounded = %v, vel.Y = %v after floor hit", grounded, vel.Y())
	}
}

// TestWallStopsHorizontal verifies a wall halts X movement without touching
// the other components.
func TestWallStopsHorizontal(t *testing.T) {
	ws := gridSource{}
	for y := 30; y < 34; y++ {
		for z := -2; z <= 2; z++ {
			ws[[3]int{2, y, z}] = true
		}
	}

	pos := mgl32.Vec3{1.4, 31, 0.5}
	vel := mgl32.Vec3{0.5, 0, 0.1}

	pos, vel, _ = Step(ws, pos, vel, actorHalf, 1.0)

	want := float32(2) - actorHalf.X() - ContactEpsilon
	if math.Abs(float64(pos.X()-want)) > 1e-5 {
		t.Errorf("stopped at x = %v, want %v", pos.X(), want)
	}
	if vel.X() != 0 {
		t.Errorf("vel.X = %v after wall hit, want 0", vel.X())
	}
	if vel.Z() != 0.1 {
		t.Errorf("vel.Z = %v, want 0.1 untouched", vel.Z())
	}
	if math.Abs(float64(pos.Z()-0.6)) > 1e-5 {
		t.Errorf("pos.Z = %v, want 0.6", pos.Z())
	}
}

// TestCeilingStopsJump verifies upward motion clamps below an overhead block.
func TestCeilingStopsJump(t *testing.T) {
	ws := gridSource{{0, 33, 0}: true}

	pos := mgl32.Vec3{0.5, 31.5, 0.5}
	vel := mgl32.Vec3{0, 0.8, 0}

	pos, vel, grounded := Step(ws, pos, vel, actorHalf, 1.0)

	want := float32(33) - actorHalf.Y() - ContactEpsilon
	if math.Abs(float64(pos.Y()-want)) > 1e-5 {
		t.Errorf("clamped at y = %v, want %v", pos.Y(), want)
	}
	if grounded {
		t.Error("ceiling hit reported as grounded")
	}
	if vel.Y() != 0 {
		t.Errorf("vel.Y = %v after ceiling hit, want 0", vel.Y())
	}
}

// TestStepFreeFlight verifies motion through empty space is unobstructed and
// scaled by the time factor.
func TestStepFreeFlight(t *testing.T) {
	ws := gridSource{}
	pos := mgl32.Vec3{0, 50, 0}
	vel := mgl32.Vec3{0.1, -0.2, 0.3}

	got, gotVel, grounded := Step(ws, pos, vel, actorHalf, 0.5)

	want := mgl32.Vec3{0.05, 49.9, 0.15}
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Errorf("pos[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if gotVel != vel {
		t.Errorf("free flight changed velocity: %v", gotVel)
	}
	if grounded {
		t.Error("free flight reported grounded")
	}
}

// TestIntersects verifies the placement-refusal overlap check, including the
// open boundary at a shared face.
func TestIntersects(t *testing.T) {
	ws := gridSource{{0, 30, 0}: true}

	if !Intersects(ws, mgl32.Vec3{0.5, 30.5, 0.5}, actorHalf) {
		t.Error("box centered in a solid cell does not intersect")
	}
	if Intersects(ws, mgl32.Vec3{0.5, 31 + 0.9 + ContactEpsilon, 0.5}, actorHalf) {
		t.Error("box resting on the cell face reports an intersection")
	}
	if Intersects(ws, mgl32.Vec3{5, 30.5, 5}, actorHalf) {
		t.Error("box far from the cell reports an intersection")
	}
}
