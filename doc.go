/*
Package roster provides a sparse entity-component store for games and simulations.

Roster keeps every entity's components in its own type-keyed map and answers
queries with a filtered linear scan. There is no archetype grouping and no
per-type index; the design trades raw iteration throughput for a tiny,
predictable core that behaves well at small-to-moderate entity counts.

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A data value attached to an entity, at most one per Go type.
  - World: The container owning all entities and their components.
  - Query: A fetch list plus has/without filters over component types.

Basic Usage:

	// Create a world
	world := roster.Factory.NewWorld()

	// Define components
	position := roster.FactoryNewComponent[Position]()
	velocity := roster.FactoryNewComponent[Velocity]()

	// Create an entity
	world.Spawn(position.With(Position{X: 1}), velocity.With(Velocity{X: 2}))

	// Query entities and mutate their components in place
	query := roster.Factory.NewQuery(position, velocity)
	cursor := world.Find(query)

	for cursor.Next() {
		pos := position.GetFromCursor(cursor)
		vel := velocity.GetFromCursor(cursor)
		pos.X += vel.X
		pos.Y += vel.Y
	}

Component pointers returned by accessors are live handles into the store;
writing through them updates the stored component without a write-back call.

The World is a plain single-threaded structure. Structural mutation while a
cursor is open is unsupported: cursors snapshot their candidates and recheck
liveness per step, so the scan never corrupts, but entities spawned mid-scan
are not yielded.
*/
package roster
