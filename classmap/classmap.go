package classmap

import (
	"fmt"
	"maps"
	"reflect"
)

// ClassMap maps classes to values. A lookup answers with the value of the
// nearest registered ancestor.
type ClassMap[V any] struct {
	table[V]

	def    V
	hasDef bool
}

// New creates an empty ClassMap without a default value.
func New[V any](opts ...Option) *ClassMap[V] {
	return &ClassMap[V]{table: newTable[V](opts)}
}

// Register puts v under the class K.
func Register[K, V any](m *ClassMap[V], v V) (prev V, replaced bool) {
	return m.Put(reflect.TypeFor[K](), v)
}

// Put stores v under the exact class of key and returns the value it replaced.
// It does not look at the hierarchy.
func (m *ClassMap[V]) Put(key reflect.Type, v V) (prev V, replaced bool) {
	return m.put(key, v)
}

// Remove drops the exact class of key.
func (m *ClassMap[V]) Remove(key reflect.Type) bool {
	return m.remove(key)
}

// Get returns the value for the class of instance.
func (m *ClassMap[V]) Get(instance any) (V, error) {
	t, err := classOf(instance)
	if err != nil {
		var zero V
		return zero, err
	}

	return m.GetType(t)
}

// GetType returns the value registered for t or its nearest ancestor.
// Without a match it returns the default value, or ErrNotFound when none is set.
// A match holding a nil value fails with ErrMissingEntry.
func (m *ClassMap[V]) GetType(t reflect.Type) (V, error) {
	var zero V

	key, v, ok := m.resolve(t)
	if !ok {
		if m.hasDef {
			return m.def, nil
		}

		return zero, notFound(t)
	}

	if isNil(v) {
		return zero, fmt.Errorf("%w for %v", ErrMissingEntry, key)
	}

	return v, nil
}

// TryGet is Get without ErrNotFound: ok is false when nothing resolves.
func (m *ClassMap[V]) TryGet(instance any) (V, bool) {
	t, err := classOf(instance)
	if err != nil {
		var zero V
		return zero, false
	}

	return m.TryGetType(t)
}

// TryGetType is GetType without errors. The default value is still honored.
// A match holding a nil value reads as absent.
func (m *ClassMap[V]) TryGetType(t reflect.Type) (V, bool) {
	v, err := m.GetType(t)
	if err != nil {
		var zero V
		return zero, false
	}

	return v, true
}

// Entries returns a copy of the exact-key entries.
func (m *ClassMap[V]) Entries() map[reflect.Type]V {
	return maps.Clone(m.entries)
}

// Default returns the default value and whether one is set.
func (m *ClassMap[V]) Default() (V, bool) {
	return m.def, m.hasDef
}

// Copy returns an independent map with the same entries and default,
// walking the same lineage with an empty cache.
func (m *ClassMap[V]) Copy() *ClassMap[V] {
	return &ClassMap[V]{
		table:  m.clone(),
		def:    m.def,
		hasDef: m.hasDef,
	}
}

// WithDefault returns a copy of m answering v when nothing resolves.
func (m *ClassMap[V]) WithDefault(v V) *ClassMap[V] {
	cp := m.Copy()
	cp.def, cp.hasDef = v, true

	return cp
}
