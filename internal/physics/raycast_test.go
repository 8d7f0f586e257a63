package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// TestPickStraightDown verifies the ray finds the surface block under the eye
// and reports the air cell above it as the placement cell.
func TestPickStraightDown(t *testing.T) {
	ws := floorSource{top: 30}

	r := Pick(ws, mgl32.Vec3{0.5, 33, 0.5}, mgl32.Vec3{0, -1, 0}, 6)

	if !r.Hit {
		t.Fatal("ray straight down at the floor missed")
	}
	if r.Block != [3]int{0, 29, 0} {
		t.Errorf("hit block = %v, want [0 29 0]", r.Block)
	}
	if r.Adjacent != [3]int{0, 30, 0} {
		t.Errorf("adjacent cell = %v, want [0 30 0]", r.Adjacent)
	}
	// eye at 33, surface face at 30.
	if r.Distance < 2.9 || r.Distance > 3.1 {
		t.Errorf("hit distance = %v, want about 3", r.Distance)
	}
}

// TestPickHorizontal verifies the adjacent cell is the face the ray entered
// through, not just any neighbor.
func TestPickHorizontal(t *testing.T) {
	ws := gridSource{{5, 31, 0}: true}

	r := Pick(ws, mgl32.Vec3{0.5, 31.5, 0.5}, mgl32.Vec3{1, 0, 0}, 6)

	if !r.Hit {
		t.Fatal("horizontal ray at the block missed")
	}
	if r.Block != [3]int{5, 31, 0} {
		t.Errorf("hit block = %v, want [5 31 0]", r.Block)
	}
	if r.Adjacent != [3]int{4, 31, 0} {
		t.Errorf("adjacent cell = %v, want [4 31 0]", r.Adjacent)
	}
}

// TestPickMiss verifies a ray through empty space reports no hit.
func TestPickMiss(t *testing.T) {
	ws := gridSource{}

	r := Pick(ws, mgl32.Vec3{0.5, 50, 0.5}, mgl32.Vec3{0, 1, 0}, 6)
	if r.Hit {
		t.Errorf("ray through empty space hit %v", r.Block)
	}
}

// TestPickRespectsRange verifies a block just beyond maxDist is not reported.
func TestPickRespectsRange(t *testing.T) {
	ws := gridSource{{8, 31, 0}: true}
	start := mgl32.Vec3{0.5, 31.5, 0.5}

	if r := Pick(ws, start, mgl32.Vec3{1, 0, 0}, 6); r.Hit {
		t.Errorf("block at distance 7.5 reported within range 6: %v", r.Block)
	}
	if r := Pick(ws, start, mgl32.Vec3{1, 0, 0}, 9); !r.Hit {
		t.Error("block at distance 7.5 missed with range 9")
	}
}

// TestPickFromInsideSolid verifies a ray starting inside a block hits it at
// distance zero with the start cell doubling as the adjacent cell.
func TestPickFromInsideSolid(t *testing.T) {
	ws := gridSource{{0, 31, 0}: true}

	r := Pick(ws, mgl32.Vec3{0.5, 31.5, 0.5}, mgl32.Vec3{1, 0, 0}, 6)
	if !r.Hit {
		t.Fatal("ray starting inside a solid cell missed")
	}
	if r.Block != [3]int{0, 31, 0} {
		t.Errorf("hit block = %v, want [0 31 0]", r.Block)
	}
	if r.Distance != 0 {
		t.Errorf("hit distance = %v, want 0", r.Distance)
	}
	if r.Adjacent != r.Block {
		t.Errorf("adjacent = %v, want the start cell %v", r.Adjacent, r.Block)
	}
}
