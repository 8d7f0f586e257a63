package config

import (
	"os"
	"path/filepath"
	"testing"
)

// pinned restores the tunables after a test that mutates them.
func pinned(t *testing.T) {
	t.Helper()
	prev := Current()
	t.Cleanup(func() { set(prev) })
}

// TestDefaults spot-checks the shipped tunables.
func TestDefaults(t *testing.T) {
	s := Current()
	if s.Gravity >= 0 {
		t.Errorf("default gravity = %v, want negative", s.Gravity)
	}
	if s.SprintSpeed <= s.WalkSpeed {
		t.Errorf("sprint speed %v not above walk speed %v", s.SprintSpeed, s.WalkSpeed)
	}
	if s.RenderRadius < 1 {
		t.Errorf("default render radius = %d", s.RenderRadius)
	}
	if s.MeshBudget < 1 {
		t.Errorf("default mesh budget = %d", s.MeshBudget)
	}
}

// TestSetterClamps verifies the radius and budget floors.
func TestSetterClamps(t *testing.T) {
	pinned(t)

	SetRenderRadius(-5)
	if got := Current().RenderRadius; got != 0 {
		t.Errorf("RenderRadius after setting -5 = %d, want 0", got)
	}
	SetMeshBudget(0)
	if got := Current().MeshBudget; got != 1 {
		t.Errorf("MeshBudget after setting 0 = %d, want 1", got)
	}
}

// TestTerrainEquals verifies only regeneration-relevant fields participate.
func TestTerrainEquals(t *testing.T) {
	a := Current()
	b := a

	b.WalkSpeed = 99
	b.FPSLimit = 1
	if !a.TerrainEquals(b) {
		t.Error("physics and glue changes flagged as terrain changes")
	}

	b = a
	b.MountainAmp++
	if a.TerrainEquals(b) {
		t.Error("amplitude change not flagged")
	}

	b = a
	b.RenderRadius++
	if a.TerrainEquals(b) {
		t.Error("radius change not flagged")
	}
}

// TestSaveLoadRoundTrip verifies a saved settings file restores every field.
func TestSaveLoadRoundTrip(t *testing.T) {
	pinned(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")

	SetPhysics(-0.02, 0.25, 0.009, 0.014)
	SetTerrain(0.006, 0.03, 0.12, 55)
	SetRenderRadius(4)
	SetMeshBudget(12)
	SetMouseSensitivity(0.25)
	SetFPSLimit(60)
	want := Current()

	if err := SaveFile(path); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	set(Snapshot{}) // wipe, then reload
	SetRenderRadius(6)
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := Current(); got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

// TestLoadPartialFile verifies a file tuning a subset of fields leaves the
// rest untouched.
func TestLoadPartialFile(t *testing.T) {
	pinned(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("mountain_amplitude: 80\nfps_limit: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	before := Current()
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := Current()

	if got.MountainAmp != 80 {
		t.Errorf("MountainAmp = %v, want 80", got.MountainAmp)
	}
	if got.FPSLimit != 30 {
		t.Errorf("FPSLimit = %v, want 30", got.FPSLimit)
	}
	if got.WalkSpeed != before.WalkSpeed || got.RenderRadius != before.RenderRadius {
		t.Error("fields absent from the file were overwritten")
	}
}

// TestLoadClampsFileValues verifies bad values in the file hit the same
// floors as the setters.
func TestLoadClampsFileValues(t *testing.T) {
	pinned(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("render_radius: -3\nmesh_budget: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	s := Current()
	if s.RenderRadius != 0 {
		t.Errorf("RenderRadius from file -3 = %d, want 0", s.RenderRadius)
	}
	if s.MeshBudget != 1 {
		t.Errorf("MeshBudget from file 0 = %d, want 1", s.MeshBudget)
	}
}

// TestLoadMissingFile verifies the error surfaces so the caller can decide
// whether a missing optional file is fatal.
func TestLoadMissingFile(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadFile on a missing path returned nil")
	}
	if !os.IsNotExist(err) {
		t.Errorf("LoadFile error %v does not unwrap to not-exist", err)
	}
}
