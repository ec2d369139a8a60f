package roster

import (
	"github.com/TheBitDrifter/mask"
)

// Query is the matching rule for Find/FindOn/Satisfies: a fetch list of
// component types the results must carry, plus optional has/without filter
// sets. The zero query matches every entity.
//
// Fetch, has, and without sets may overlap; the three checks apply
// independently, so redundant overlap is harmless.
type Query struct {
	fetch     []Component
	fetchMask mask.Mask
	has       mask.Mask
	without   mask.Mask
}

func newQuery(fetch ...Component) *Query {
	q := &Query{fetch: fetch}
	for _, c := range fetch {
		q.fetchMask.Mark(uint32(c.TypeID()))
	}
	return q
}

// Fetch returns the requested component types, in the order they were given.
func (q *Query) Fetch() []Component {
	return q.fetch
}

// Has adds presence requirements beyond the fetch list. Filters accumulate
// across calls, normalizing "one type or several" into a single set.
func (q *Query) Has(componentTypes ...Component) *Query {
	for _, c := range componentTypes {
		q.has.Mark(uint32(c.TypeID()))
	}
	return q
}

// Without adds exclusion requirements: matching entities must carry none of
// the given types.
func (q *Query) Without(componentTypes ...Component) *Query {
	for _, c := range componentTypes {
		q.without.Mark(uint32(c.TypeID()))
	}
	return q
}

// matches applies the full rule: all fetch types present, all has types
// present, no without types present.
func (q *Query) matches(rec *record) bool {
	return rec.mask.ContainsAll(q.fetchMask) && q.filtersPass(rec)
}

// filtersPass applies only the has/without portion (the Satisfies rule).
// ContainsNone reports false for an empty argument mask, so an unset without
// filter must short-circuit to stay vacuously true.
func (q *Query) filtersPass(rec *record) bool {
	if !rec.mask.ContainsAll(q.has) {
		return false
	}
	return q.without.IsEmpty() || rec.mask.ContainsNone(q.without)
}
