package roster

import (
	"fmt"
	"reflect"
	"sync"
)

// MaxComponentTypes is the number of distinct component Go types one process
// may register, limited by the default mask width.
const MaxComponentTypes = 64

// registry assigns each component Go type a stable bit index, once per
// process. Reflection happens here only; stored values are never inspected.
var registry = struct {
	mu  sync.Mutex
	ids map[reflect.Type]TypeID
}{
	ids: make(map[reflect.Type]TypeID),
}

func registerType(rt reflect.Type) TypeID {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if id, found := registry.ids[rt]; found {
		return id
	}
	if len(registry.ids) >= MaxComponentTypes {
		panic(fmt.Sprintf("roster: component type limit reached (%d): %v", MaxComponentTypes, rt))
	}
	id := TypeID(len(registry.ids))
	registry.ids[rt] = id
	return id
}
