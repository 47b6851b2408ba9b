package iterbench

import (
	"fmt"
	"sort"
	"sync"
)

var registry = struct {
	mu    sync.Mutex
	units map[string]Unit
}{units: map[string]Unit{}}

// Register links a unit into the binary under name. It is meant to be called
// from init and panics on duplicates.
func Register(name string, u Unit) {
	if u == nil {
		panic(fmt.Sprintf("iterbench: Register %q: %v", name, ErrValueCannotBeNil))
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, dup := registry.units[name]; dup {
		panic(fmt.Sprintf("iterbench: Register called twice for %q", name))
	}
	registry.units[name] = u
}

func Lookup(name string) (Unit, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	u, ok := registry.units[name]
	return u, ok
}

// Registered lists the linked-in unit names in sorted order.
func Registered() []string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	names := make([]string, 0, len(registry.units))
	for name := range registry.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
