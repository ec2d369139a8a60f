package roster

import "fmt"

type NoSuchEntityError struct {
	Entity Entity
}

func (e NoSuchEntityError) Error() string {
	return fmt.Sprintf("no such entity: %d", uint64(e.Entity))
}

type NoSuchComponentError struct {
	Entity Entity
	ID     TypeID
}

func (e NoSuchComponentError) Error() string {
	return fmt.Sprintf("no component with type id %d on entity %d", e.ID, uint64(e.Entity))
}
