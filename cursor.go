package roster

import (
	"iter"
)

var _ iCursor = &Cursor{}

// Cursor is a single-pass scan over the entities matching a query, yielded in
// registration order. Candidates are snapshotted on first advance and each is
// rechecked for liveness and match as it is reached, so despawning entities
// mid-scan skips them and entities spawned mid-scan are not yielded.
type Cursor struct {
	query *Query
	world *World

	// Iteration state
	candidates []Entity
	index      int
	current    Row

	initialized bool
}

func newCursor(query *Query, world *World) *Cursor {
	if query == nil {
		query = &Query{}
	}
	return &Cursor{
		query: query,
		world: world,
	}
}

// Next advances to the next matching entity, returning false when the scan is
// exhausted. An exhausted cursor resets, so the next Next begins a fresh scan.
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	}
	for c.index < len(c.candidates) {
		entity := c.candidates[c.index]
		c.index++

		rec, found := c.world.records[entity]
		if !found || !c.query.matches(rec) {
			continue
		}
		c.current = Row{entity: entity, rec: rec}
		return true
	}
	c.Reset()
	return false
}

// Entity returns the entity at the cursor position.
func (c *Cursor) Entity() Entity {
	return c.current.entity
}

// CurrentRow returns the row at the cursor position.
func (c *Cursor) CurrentRow() Row {
	return c.current
}

// Rows exposes the scan as a range-over sequence. Breaking out resets the
// cursor.
func (c *Cursor) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for c.Next() {
			if !yield(c.current) {
				c.Reset()
				return
			}
		}
	}
}

// TotalMatched counts the matching entities without consuming the scan.
func (c *Cursor) TotalMatched() int {
	if !c.initialized {
		c.initialize()
	}
	total := 0
	for _, entity := range c.candidates {
		rec, found := c.world.records[entity]
		if found && c.query.matches(rec) {
			total++
		}
	}
	return total
}

// Reset discards the snapshot and iteration state so the cursor can scan
// again from the world's current population.
func (c *Cursor) Reset() {
	c.candidates = nil
	c.index = 0
	c.current = Row{}
	c.initialized = false
}

func (c *Cursor) initialize() {
	c.candidates = make([]Entity, 0, len(c.world.records))
	for _, entity := range c.world.order {
		if _, found := c.world.records[entity]; found {
			c.candidates = append(c.candidates, entity)
		}
	}
	c.index = 0
	c.initialized = true
}
