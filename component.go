package roster

// ComponentType is the typed handle for a registered component Go type.
// Handles created for the same T share one TypeID, so they can be declared
// wherever convenient and used interchangeably.
type ComponentType[T any] struct {
	id TypeID
}

func (c ComponentType[T]) TypeID() TypeID {
	return c.id
}

// With boxes a value for Spawn/SpawnAt/Insert. The value is stored behind a
// pointer, so accessors later hand back live handles into the store.
func (c ComponentType[T]) With(v T) Instance {
	return Instance{id: c.id, value: &v}
}

// Instance is a component value paired with its type tag. Take and IterEvery
// return instances so their output can feed SpawnAt on another World.
type Instance struct {
	id    TypeID
	value any // always a *T for the registered type
}

func (i Instance) TypeID() TypeID {
	return i.id
}

// Value returns the boxed component pointer (*T).
func (i Instance) Value() any {
	return i.value
}
