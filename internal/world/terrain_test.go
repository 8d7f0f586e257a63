package world

import (
	"testing"
)

// TestHeightAtDeterministic verifies two samplers with identical parameters
// agree everywhere and repeated calls agree with themselves.
func TestHeightAtDeterministic(t *testing.T) {
	a := NewSampler(0.004, 0.02, 0.09, 40)
	b := NewSampler(0.004, 0.02, 0.09, 40)

	for x := -64; x <= 64; x += 7 {
		for z := -64; z <= 64; z += 7 {
			h1 := a.HeightAt(x, z)
			h2 := a.HeightAt(x, z)
			h3 := b.HeightAt(x, z)
			if h1 != h2 {
				t.Fatalf("HeightAt(%d,%d) unstable across calls: %d vs %d", x, z, h1, h2)
			}
			if h1 != h3 {
				t.Fatalf("HeightAt(%d,%d) differs across samplers with same params: %d vs %d", x, z, h1, h3)
			}
		}
	}
}

// TestHeightAtFloor verifies the composition's lower bound: mask, hills and
// detail are all non-negative, so height never drops below the 30 base.
func TestHeightAtFloor(t *testing.T) {
	s := NewSampler(0.004, 0.02, 0.09, 40)
	for x := -200; x <= 200; x += 13 {
		for z := -200; z <= 200; z += 13 {
			if h := s.HeightAt(x, z); h < 30 {
				t.Errorf("HeightAt(%d,%d) = %d, below the 30 base", x, z, h)
			}
		}
	}
}

// TestHeightAtParameterEffect verifies the tunables actually feed the result:
// a different mountain amplitude must change at least one sampled height.
func TestHeightAtParameterEffect(t *testing.T) {
	a := NewSampler(0.004, 0.02, 0.09, 40)
	b := NewSampler(0.004, 0.02, 0.09, 120)

	changed := false
	for x := 0; x < 256 && !changed; x += 5 {
		for z := 0; z < 256; z += 5 {
			if a.HeightAt(x, z) != b.HeightAt(x, z) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("mountain amplitude change produced identical heights everywhere")
	}
}

// TestHeightAtVaries guards against a degenerate constant field.
func TestHeightAtVaries(t *testing.T) {
	s := NewSampler(0.004, 0.02, 0.09, 40)
	first := s.HeightAt(0, 0)
	for x := 0; x < 512; x += 11 {
		for z := 0; z < 512; z += 11 {
			if s.HeightAt(x, z) != first {
				return
			}
		}
	}
	t.Error("terrain is flat everywhere; noise fields not wired in")
}

func BenchmarkHeightAt(b *testing.B) {
	s := NewSampler(0.004, 0.02, 0.09, 40)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.HeightAt(i%1024, (i*31)%1024)
	}
}
