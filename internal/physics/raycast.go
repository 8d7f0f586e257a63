package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// PickStep is the ray-march increment in blocks. Small enough that thin
// diagonal gaps between blocks are not skipped over.
const PickStep = 0.02

// PickResult is the outcome of a pick ray. When Hit is false the ray reached
// maxDist without touching a solid cell.
type PickResult struct {
	Hit      bool
	Block    [3]int // first solid cell on the ray
	Adjacent [3]int // last empty cell before it, the placement cell
	Distance float32
}

// Pick marches a ray from start along dir (unit length expected) in fixed
// steps, flooring each sample into the voxel grid, and returns the first
// solid cell together with the empty cell sampled just before it.
func Pick(ws BlockSource, start, dir mgl32.Vec3, maxDist float32) PickResult {
	steps := int(maxDist / PickStep)

	lastEmpty := cellOf(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * PickStep
		p := start.Add(dir.Mul(dist))
		cell := cellOf(p)

		if ws.IsSolid(cell[0], cell[1], cell[2]) {
			return PickResult{
				Hit:      true,
				Block:    cell,
				Adjacent: lastEmpty,
				Distance: dist,
			}
		}
		lastEmpty = cell
	}
	return PickResult{}
}

func cellOf(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}
