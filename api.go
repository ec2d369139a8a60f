package roster

import "iter"

// TypeID is the stable discriminator a component Go type is registered under.
// It doubles as the type's bit index in record and filter masks.
type TypeID uint32

// Component identifies a component type for storage and queries without
// exposing the component's Go type. Both ComponentType[T] handles and boxed
// Instance values satisfy it.
type Component interface {
	TypeID() TypeID
}

type iCursor interface {
	Next() bool
	Rows() iter.Seq[Row]
}
