package world

import (
	"math"
)

// Field seeds keep the three terrain fields statistically independent while
// staying reproducible across runs.
const (
	seedMask   = 101
	seedHills  = 211
	seedDetail = 331
)

// HeightSampler yields a deterministic column height for any world (x, z).
type HeightSampler interface {
	HeightAt(worldX, worldZ int) int
}

// Sampler combines three noise fields multiplicatively into a column height.
// The mask field decides where mountains happen at all, hills shape them and
// detail roughens them; multiplying the three keeps plains flat while the
// same fields produce sharp ranges elsewhere.
type Sampler struct {
	maskScale   float64
	hillScale   float64
	detailScale float64
	mountainAmp float64
}

// NewSampler builds a sampler from the four terrain tunables.
func NewSampler(maskScale, hillScale, detailScale, mountainAmp float64) *Sampler {
	return &Sampler{
		maskScale:   maskScale,
		hillScale:   hillScale,
		detailScale: detailScale,
		mountainAmp: mountainAmp,
	}
}

// HeightAt computes the world surface height (block Y) at world X,Z.
// Pure function of the inputs and the sampler's constants.
func (s *Sampler) HeightAt(worldX, worldZ int) int {
	fx := float64(worldX)
	fz := float64(worldZ)

	mask := fbm2D(fx*s.maskScale, fz*s.maskScale, seedMask)
	hills := fbm2D(fx*s.hillScale, fz*s.hillScale, seedHills)
	detail := fbm2D(fx*s.detailScale, fz*s.detailScale, seedDetail)

	mountains := hills * detail * (mask * 2.5)
	return int(math.Floor(30 + mask*10 + mountains*s.mountainAmp))
}
