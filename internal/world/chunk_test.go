package world

import (
	"testing"
)

// TestChunkBlockBounds verifies out-of-range local reads resolve to Air and
// out-of-range writes are dropped.
func TestChunkBlockBounds(t *testing.T) {
	c := NewChunk(0, 0)

	if got := c.Block(-1, 0, 0); got != BlockTypeAir {
		t.Errorf("Block(-1,0,0) = %v, want Air", got)
	}
	if got := c.Block(0, ChunkSizeY, 0); got != BlockTypeAir {
		t.Errorf("Block(0,%d,0) = %v, want Air", ChunkSizeY, got)
	}

	c.SetBlock(ChunkSizeX, 0, 0, BlockTypeStone)
	if c.IsDirty() {
		t.Error("out-of-bounds SetBlock marked the chunk dirty")
	}
}

// TestChunkDirtyOnChange verifies the dirty flag tracks actual content changes.
func TestChunkDirtyOnChange(t *testing.T) {
	c := NewChunk(0, 0)

	c.SetBlock(1, 2, 3, BlockTypeAir) // writing Air over Air is not a change
	if c.IsDirty() {
		t.Error("no-op write marked the chunk dirty")
	}

	c.SetBlock(1, 2, 3, BlockTypeStone)
	if !c.IsDirty() {
		t.Error("content change did not mark the chunk dirty")
	}

	c.SetClean()
	c.SetBlock(1, 2, 3, BlockTypeStone) // same value again
	if c.IsDirty() {
		t.Error("rewriting the same value marked the chunk dirty")
	}
}

// TestChunkMeshOwnership verifies the release-before-replace contract: every
// installed mesh's GPU hook fires exactly once, before its replacement lands.
func TestChunkMeshOwnership(t *testing.T) {
	c := NewChunk(0, 0)

	released := 0
	first := &Mesh{}
	first.SetReleaser(func() { released++ })
	c.SetMesh(first)

	if released != 0 {
		t.Fatal("mesh released at install time")
	}

	second := &Mesh{}
	c.SetMesh(second)
	if released != 1 {
		t.Fatalf("replacing the mesh released the old one %d times, want 1", released)
	}
	if c.Mesh() != second {
		t.Error("replacement mesh not installed")
	}

	c.ReleaseMesh()
	if c.Mesh() != nil {
		t.Error("ReleaseMesh left a mesh installed")
	}

	// Release hooks are one-shot.
	first.Release()
	if released != 1 {
		t.Errorf("release hook fired %d times, want 1", released)
	}
}
