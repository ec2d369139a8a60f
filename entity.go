package roster

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Entity is an opaque identifier referencing zero or more components.
// Identifiers are allocated monotonically per World and never reused, even
// across Despawn, so a stale Entity can never alias a newer one.
type Entity uint64

// record is the per-entity component map: one live value per type tag, plus a
// mask mirroring the tag set for constant-time filter checks. A record exists
// iff its entity is registered and is dropped atomically with it.
type record struct {
	mask       mask.Mask
	components map[TypeID]Instance
}

func newRecord(components ...Instance) *record {
	rec := &record{
		components: make(map[TypeID]Instance, len(components)),
	}
	for _, inst := range components {
		rec.set(inst)
	}
	return rec
}

// set inserts or overwrites; last write wins per type tag.
func (rec *record) set(inst Instance) {
	rec.components[inst.id] = inst
	rec.mask.Mark(uint32(inst.id))
}

func (rec *record) unset(id TypeID) {
	if _, found := rec.components[id]; !found {
		return
	}
	delete(rec.components, id)
	rec.mask.Unmark(uint32(id))
}

func (rec *record) get(id TypeID) (Instance, bool) {
	inst, found := rec.components[id]
	return inst, found
}

func (rec *record) instances() iter.Seq[Instance] {
	return func(yield func(Instance) bool) {
		for _, inst := range rec.components {
			if !yield(inst) {
				return
			}
		}
	}
}

// Row is a single query result: an entity plus access to its components at
// the moment it was yielded. Component values are read through typed handles,
// e.g. position.GetFromRow(row).
type Row struct {
	entity Entity
	rec    *record
}

func (r Row) Entity() Entity {
	return r.entity
}
