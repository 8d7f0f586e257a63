package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// BlockType identifies the contents of a single voxel cell.
type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeStone
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeGlass

	blockTypeCount
)

// Closed lookup tables keyed by BlockType. Air is the only non-solid block;
// Glass is solid but counts as transparent for face culling.
var (
	blockSolid = [blockTypeCount]bool{
		BlockTypeAir:   false,
		BlockTypeStone: true,
		BlockTypeGrass: true,
		BlockTypeDirt:  true,
		BlockTypeGlass: true,
	}

	blockTransparent = [blockTypeCount]bool{
		BlockTypeAir:   true,
		BlockTypeStone: false,
		BlockTypeGrass: false,
		BlockTypeDirt:  false,
		BlockTypeGlass: true,
	}

	blockColors = [blockTypeCount]mgl32.Vec3{
		BlockTypeAir:   {0, 0, 0},
		BlockTypeStone: {0.55, 0.55, 0.58},
		BlockTypeGrass: {0.35, 0.65, 0.25},
		BlockTypeDirt:  {0.52, 0.38, 0.24},
		BlockTypeGlass: {0.65, 0.82, 0.92},
	}

	blockNames = [blockTypeCount]string{
		BlockTypeAir:   "air",
		BlockTypeStone: "stone",
		BlockTypeGrass: "grass",
		BlockTypeDirt:  "dirt",
		BlockTypeGlass: "glass",
	}
)

// IsSolid reports whether the block participates in collision and meshing.
func (b BlockType) IsSolid() bool {
	if b >= blockTypeCount {
		return false
	}
	return blockSolid[b]
}

// IsTransparent reports whether the block lets neighbor faces show through.
func (b BlockType) IsTransparent() bool {
	if b >= blockTypeCount {
		return true
	}
	return blockTransparent[b]
}

// Color returns the flat per-vertex color used when meshing this block type.
func (b BlockType) Color() mgl32.Vec3 {
	if b >= blockTypeCount {
		return mgl32.Vec3{1, 0, 1}
	}
	return blockColors[b]
}

func (b BlockType) String() string {
	if b >= blockTypeCount {
		return "unknown"
	}
	return blockNames[b]
}

// NextPlaceable cycles through the block types a player can place:
// Stone -> Grass -> Dirt -> Glass -> Stone.
func NextPlaceable(b BlockType) BlockType {
	switch b {
	case BlockTypeStone:
		return BlockTypeGrass
	case BlockTypeGrass:
		return BlockTypeDirt
	case BlockTypeDirt:
		return BlockTypeGlass
	default:
		return BlockTypeStone
	}
}
