package typemap

import "reflect"

// Map stores at most one value per distinct Go type. The zero value is
// ready to use. Not safe for concurrent use: each Map belongs to
// exactly one request.
type Map struct {
	values map[reflect.Type]any
}

// New creates an empty Map.
func New() *Map {
	return &Map{}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Set stores v, replacing any previously stored value of type T.
func Set[T any](m *Map, v T) {
	if m.values == nil {
		m.values = make(map[reflect.Type]any)
	}
	// Values are boxed as *T so Mut can hand out a pointer to the
	// stored slot.
	m.values[typeOf[T]()] = &v
}

// Get returns the stored value of type T, or (zero, false) when no
// value of that type is present.
func Get[T any](m *Map) (T, bool) {
	if p, ok := m.values[typeOf[T]()].(*T); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// Mut returns a pointer to the stored value of type T for in-place
// mutation. Changes through the pointer are visible to later Get
// calls.
func Mut[T any](m *Map) (*T, bool) {
	p, ok := m.values[typeOf[T]()].(*T)
	return p, ok
}

// Remove deletes and returns the stored value of type T, or
// (zero, false) when no value of that type is present.
func Remove[T any](m *Map) (T, bool) {
	key := typeOf[T]()
	if p, ok := m.values[key].(*T); ok {
		delete(m.values, key)
		return *p, true
	}
	var zero T
	return zero, false
}

// Has reports whether a value of type T is present.
func Has[T any](m *Map) bool {
	_, ok := m.values[typeOf[T]()]
	return ok
}

// Len returns the number of stored values.
func (m *Map) Len() int {
	return len(m.values)
}

// Clear removes all stored values.
func (m *Map) Clear() {
	clear(m.values)
}
