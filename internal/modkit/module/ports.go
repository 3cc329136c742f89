package module

import "reflect"

// PortSet marks a module defined port bundle. Modules declare their own
// concrete struct or interface types and hand them back from Ports().
type PortSet = any

// PortsOf extracts an interface T from a module's Ports() bundle without
// touching the registry. The bundle may implement T directly or carry it
// in an exported struct field. ok is false when neither holds.
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	bundle := m.Ports()
	if bundle == nil {
		return zero, false
	}
	if v, hit := bundle.(T); hit {
		return v, true
	}
	rv := reflect.ValueOf(bundle)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, hit := f.Interface().(T); hit {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf but panics when the port is absent. Bootstrap only.
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}
