package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// BlockSource answers solidity queries against the voxel grid. Cell (x,y,z)
// occupies the unit cube [x,x+1) x [y,y+1) x [z,z+1).
type BlockSource interface {
	IsSolid(x, y, z int) bool
}

const (
	// ContactEpsilon is the separation left between a resolved box and the
	// block face it collided with.
	ContactEpsilon = 0.001

	// MaxDTFactor caps the per-step time scale at twice the 60 Hz baseline,
	// bounding single-step displacement against tunneling.
	MaxDTFactor = 2.0
)

// DTFactor scales elapsed frame time to the 60 Hz baseline and clamps it.
func DTFactor(dt float64) float32 {
	f := dt * 60.0
	if f > MaxDTFactor {
		f = MaxDTFactor
	}
	return float32(f)
}

// Step advances a box (pos is the box center, half its half extents) through
// the grid, resolving one axis at a time in Y, X, Z order so ground contact
// is settled before horizontal movement. Returns the new position, the new
// velocity and whether the box ended the step standing on something.
func Step(ws BlockSource, pos, vel mgl32.Vec3, half mgl32.Vec3, dtFactor float32) (mgl32.Vec3, mgl32.Vec3, bool) {
	grounded := false
	for _, axis := range [3]int{1, 0, 2} {
		if vel[axis] == 0 {
			continue
		}
		pos[axis] += vel[axis] * dtFactor
		var hit bool
		pos, vel, hit = resolveAxis(ws, pos, vel, half, axis)
		if hit && axis == 1 {
			grounded = true
		}
	}
	return pos, vel, grounded
}

// resolveAxis scans every cell overlapping the already-moved box and, for
// each solid one the box is moving into, clamps the position on the current
// axis to the block boundary plus ContactEpsilon and zeroes that velocity
// component. Reports a hit only for downward contact (ground detection).
func resolveAxis(ws BlockSource, pos, vel mgl32.Vec3, half mgl32.Vec3, axis int) (mgl32.Vec3, mgl32.Vec3, bool) {
	min := pos.Sub(half)
	max := pos.Add(half)

	minX := int(math.Floor(float64(min.X())))
	maxX := int(math.Floor(float64(max.X())))
	minY := int(math.Floor(float64(min.Y())))
	maxY := int(math.Floor(float64(max.Y())))
	minZ := int(math.Floor(float64(min.Z())))
	maxZ := int(math.Floor(float64(max.Z())))

	dir := vel[axis]
	groundHit := false
	hit := false
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !ws.IsSolid(x, y, z) {
					continue
				}
				cellMin := mgl32.Vec3{float32(x), float32(y), float32(z)}
				cellMax := cellMin.Add(mgl32.Vec3{1, 1, 1})
				if !overlaps(pos, half, cellMin, cellMax) {
					continue
				}
				// Clamp to the nearest face opposing the motion; with more
				// than one penetrated cell on this axis the furthest
				// push-back wins.
				if dir > 0 {
					if face := cellMin[axis] - half[axis] - ContactEpsilon; face < pos[axis] {
						pos[axis] = face
					}
					hit = true
				} else if dir < 0 {
					if face := cellMax[axis] + half[axis] + ContactEpsilon; face > pos[axis] {
						pos[axis] = face
					}
					hit = true
					if axis == 1 {
						groundHit = true
					}
				}
			}
		}
	}
	if hit {
		vel[axis] = 0
	}
	return pos, vel, groundHit
}

// overlaps tests a centered box against an AABB, open at the boundary so a
// box resting exactly on a face does not count as intersecting.
func overlaps(pos, half mgl32.Vec3, cellMin, cellMax mgl32.Vec3) bool {
	return pos.X()-half.X() < cellMax.X() && pos.X()+half.X() > cellMin.X() &&
		pos.Y()-half.Y() < cellMax.Y() && pos.Y()+half.Y() > cellMin.Y() &&
		pos.Z()-half.Z() < cellMax.Z() && pos.Z()+half.Z() > cellMin.Z()
}

// Intersects reports whether a centered box overlaps any solid cell.
// Used to refuse block placement inside the actor.
func Intersects(ws BlockSource, pos, half mgl32.Vec3) bool {
	minX := int(math.Floor(float64(pos.X() - half.X())))
	maxX := int(math.Floor(float64(pos.X() + half.X())))
	minY := int(math.Floor(float64(pos.Y() - half.Y())))
	maxY := int(math.Floor(float64(pos.Y() + half.Y())))
	minZ := int(math.Floor(float64(pos.Z() - half.Z())))
	maxZ := int(math.Floor(float64(pos.Z() + half.Z())))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !ws.IsSolid(x, y, z) {
					continue
				}
				cellMin := mgl32.Vec3{float32(x), float32(y), float32(z)}
				if overlaps(pos, half, cellMin, cellMin.Add(mgl32.Vec3{1, 1, 1})) {
					return true
				}
			}
		}
	}
	return false
}
