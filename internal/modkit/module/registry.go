package module

import "sync"

// Process wide registry used once at bootstrap to cross wire port sets
// between modules by name. Single process composition only.
var (
	regMu sync.RWMutex
	reg   = map[string]any{}
)

// Register stores the port set published by the named module.
// A later Register for the same name replaces the earlier one.
func Register(name string, ports any) {
	regMu.Lock()
	defer regMu.Unlock()
	reg[name] = ports
}

// PortsAs looks up the named module's port set and asserts it to T.
func PortsAs[T any](name string) (T, bool) {
	regMu.RLock()
	v, found := reg[name]
	regMu.RUnlock()
	if !found {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset empties the registry. Test helper.
func Reset() {
	regMu.Lock()
	defer regMu.Unlock()
	reg = map[string]any{}
}
