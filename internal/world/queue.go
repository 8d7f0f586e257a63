package world

// BuildQueue is the FIFO of chunks pending mesh (re)generation. Insertion is
// deduplicated so a chunk appears at most once regardless of how many edits
// landed on it between drains.
type BuildQueue struct {
	items  []*Chunk
	queued map[ChunkCoord]struct{}
}

// NewBuildQueue creates an empty build queue.
func NewBuildQueue() *BuildQueue {
	return &BuildQueue{
		queued: make(map[ChunkCoord]struct{}),
	}
}

// Push appends a chunk unless it is already queued. Returns true if enqueued.
func (q *BuildQueue) Push(c *Chunk) bool {
	if c == nil {
		return false
	}
	coord := c.Coord()
	if _, ok := q.queued[coord]; ok {
		return false
	}
	q.queued[coord] = struct{}{}
	q.items = append(q.items, c)
	return true
}

// Pop removes and returns the oldest queued chunk, nil when empty.
func (q *BuildQueue) Pop() *Chunk {
	if len(q.items) == 0 {
		return nil
	}
	c := q.items[0]
	q.items = q.items[1:]
	delete(q.queued, c.Coord())
	return c
}

// Remove drops the queued chunk at coord, if any. Must be called when a
// chunk leaves the store, so a later chunk recreated at the same coordinate
// is not shadowed by the dead entry.
func (q *BuildQueue) Remove(coord ChunkCoord) {
	if _, ok := q.queued[coord]; !ok {
		return
	}
	delete(q.queued, coord)
	for i, c := range q.items {
		if c.Coord() == coord {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return
		}
	}
}

// Len returns the number of chunks waiting to be meshed.
func (q *BuildQueue) Len() int {
	return len(q.items)
}

// Clear empties the queue.
func (q *BuildQueue) Clear() {
	q.items = q.items[:0]
	for coord := range q.queued {
		delete(q.queued, coord)
	}
}
