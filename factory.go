package roster

import "reflect"

type factory struct{}

var Factory factory

func (f factory) NewWorld() *World {
	return newWorld()
}

func (f factory) NewQuery(fetch ...Component) *Query {
	return newQuery(fetch...)
}

func (f factory) NewCursor(query *Query, world *World) *Cursor {
	return newCursor(query, world)
}

// FactoryNewComponent registers T (first call per type only) and returns its
// typed handle. Panics once MaxComponentTypes distinct types exist.
func FactoryNewComponent[T any]() ComponentType[T] {
	rt := reflect.TypeFor[T]()
	return ComponentType[T]{id: registerType(rt)}
}
