package roster

// GetFromCursor retrieves the component value for the entity at the cursor
// position. The pointer is a live handle into the store. The cursor holds a
// position only while Next() returns true; outside that window the result is
// nil.
func (c ComponentType[T]) GetFromCursor(cursor *Cursor) *T {
	return c.GetFromRow(cursor.current)
}

// GetFromCursorSafe safely retrieves a component value, checking if the
// component exists. Returns a boolean indicating success and the component
// pointer if found.
func (c ComponentType[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	if !c.CheckCursor(cursor) {
		return false, nil
	}
	return true, c.GetFromCursor(cursor)
}

// CheckCursor determines if the component exists on the entity at the cursor
// position. It reports false when the cursor holds no position.
func (c ComponentType[T]) CheckCursor(cursor *Cursor) bool {
	if cursor.current.rec == nil {
		return false
	}
	_, found := cursor.current.rec.get(c.id)
	return found
}

// GetFromRow retrieves the component value from a query row. Returns nil when
// the row's entity lacks the component or the row is the zero Row.
func (c ComponentType[T]) GetFromRow(row Row) *T {
	if row.rec == nil {
		return nil
	}
	inst, found := row.rec.get(c.id)
	if !found {
		return nil
	}
	return inst.value.(*T)
}

// GetFromEntity retrieves the component value for the specified entity,
// reporting absence when the entity is missing or lacks the component.
func (c ComponentType[T]) GetFromEntity(world *World, entity Entity) (*T, bool) {
	boxed, found := world.Get(entity, c)
	if !found {
		return nil, false
	}
	return boxed.(*T), true
}

// FetchFromEntity is GetFromEntity with the two absence cases split apart:
// it returns NoSuchEntityError for an unregistered entity and
// NoSuchComponentError for a registered entity lacking the component.
func (c ComponentType[T]) FetchFromEntity(world *World, entity Entity) (*T, error) {
	rec, found := world.records[entity]
	if !found {
		return nil, NoSuchEntityError{Entity: entity}
	}
	inst, found := rec.get(c.id)
	if !found {
		return nil, NoSuchComponentError{Entity: entity, ID: c.id}
	}
	return inst.value.(*T), nil
}
