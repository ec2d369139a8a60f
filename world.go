package roster

import (
	"iter"

	iter_util "github.com/TheBitDrifter/util/iter"
)

// World owns the identifier allocator and every per-entity component map.
// It is a plain mutable structure for exclusive use by one logical thread of
// control; see the package doc for the iteration-vs-mutation contract.
type World struct {
	nextID  uint64
	records map[Entity]*record

	// order preserves registration order for scans. Despawn leaves a hole
	// that iteration skips; holes are compacted once they outnumber live
	// entities.
	order []Entity
	holes int
}

func newWorld() *World {
	return &World{
		records: make(map[Entity]*record),
	}
}

// Spawn allocates a fresh entity, attaches the given components, and
// registers it. Duplicate component types collapse to the last value given.
func (w *World) Spawn(components ...Instance) Entity {
	entity := Entity(w.nextID)
	w.nextID++
	w.records[entity] = newRecord(components...)
	w.order = append(w.order, entity)
	return entity
}

// SpawnAt registers (or re-registers) a caller-supplied entity with a fresh
// component map built from components. A previous map for the entity is
// dropped, not merged. SpawnAt never consults or advances the allocator;
// avoiding collisions with allocator-issued identifiers is the caller's
// responsibility.
func (w *World) SpawnAt(entity Entity, components ...Instance) {
	if _, found := w.records[entity]; !found {
		w.order = append(w.order, entity)
	}
	w.records[entity] = newRecord(components...)
}

// Despawn removes the entity and drops all its components.
func (w *World) Despawn(entity Entity) error {
	if _, found := w.records[entity]; !found {
		return NoSuchEntityError{Entity: entity}
	}
	delete(w.records, entity)
	w.holes++
	w.compact()
	return nil
}

// Take removes the entity as Despawn does and returns every component it
// held, in unspecified order. An absent entity yields an empty result rather
// than an error: taking from elsewhere is a normal outcome when entities are
// handed between worlds.
func (w *World) Take(entity Entity) []Instance {
	rec, found := w.records[entity]
	if !found {
		return nil
	}
	components := iter_util.Collect(rec.instances())
	delete(w.records, entity)
	w.holes++
	w.compact()
	return components
}

// Clear removes all entities and their components. The allocator is
// untouched: the next Spawn continues from its prior value.
func (w *World) Clear() {
	w.records = make(map[Entity]*record)
	w.order = w.order[:0]
	w.holes = 0
}

// Contains reports whether the entity is currently registered.
func (w *World) Contains(entity Entity) bool {
	_, found := w.records[entity]
	return found
}

// Insert attaches components to an existing entity, overwriting any the
// entity already holds of the same types.
func (w *World) Insert(entity Entity, components ...Instance) error {
	rec, found := w.records[entity]
	if !found {
		return NoSuchEntityError{Entity: entity}
	}
	for _, inst := range components {
		rec.set(inst)
	}
	return nil
}

// Remove detaches the named component types from an existing entity. Types
// the entity lacks are ignored, so Remove is idempotent per type.
func (w *World) Remove(entity Entity, componentTypes ...Component) error {
	rec, found := w.records[entity]
	if !found {
		return NoSuchEntityError{Entity: entity}
	}
	for _, c := range componentTypes {
		rec.unset(c.TypeID())
	}
	return nil
}

// Get returns the boxed component pointer of the given type on the entity.
// A missing entity and a missing component both report absence; use the
// handle's FetchFromEntity to tell them apart.
func (w *World) Get(entity Entity, componentType Component) (any, bool) {
	rec, found := w.records[entity]
	if !found {
		return nil, false
	}
	inst, found := rec.get(componentType.TypeID())
	if !found {
		return nil, false
	}
	return inst.value, true
}

// IsEmpty reports whether the entity exists and holds no components.
func (w *World) IsEmpty(entity Entity) bool {
	rec, found := w.records[entity]
	return found && len(rec.components) == 0
}

// Len returns the number of registered entities.
func (w *World) Len() int {
	return len(w.records)
}

// Iter yields all registered entities in registration order.
func (w *World) Iter() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, entity := range w.order {
			if _, found := w.records[entity]; !found {
				continue
			}
			if !yield(entity) {
				return
			}
		}
	}
}

// IterEvery yields all registered entities in registration order, each paired
// with every component it currently holds (unordered within the slice).
func (w *World) IterEvery() iter.Seq2[Entity, []Instance] {
	return func(yield func(Entity, []Instance) bool) {
		for _, entity := range w.order {
			rec, found := w.records[entity]
			if !found {
				continue
			}
			if !yield(entity, iter_util.Collect(rec.instances())) {
				return
			}
		}
	}
}

// Find returns a single-pass cursor over entities matching the query, in
// registration order. Re-iterating requires a fresh Find (or Reset).
func (w *World) Find(query *Query) *Cursor {
	return newCursor(query, w)
}

// FindOn applies the query's matching rule to exactly one entity and returns
// the row for it, or false when the entity is absent or does not match.
func (w *World) FindOn(entity Entity, query *Query) (Row, bool) {
	if query == nil {
		query = &Query{}
	}
	rec, found := w.records[entity]
	if !found || !query.matches(rec) {
		return Row{}, false
	}
	return Row{entity: entity, rec: rec}, true
}

// Satisfies reports whether the entity exists and passes the query's
// has/without filters. The query's fetch list is ignored: a freshly spawned
// entity with no components satisfies an unfiltered query.
func (w *World) Satisfies(entity Entity, query *Query) bool {
	if query == nil {
		query = &Query{}
	}
	rec, found := w.records[entity]
	return found && query.filtersPass(rec)
}

func (w *World) compact() {
	if w.holes <= len(w.records) {
		return
	}
	live := w.order[:0]
	for _, entity := range w.order {
		if _, found := w.records[entity]; found {
			live = append(live, entity)
		}
	}
	w.order = live
	w.holes = 0
}
