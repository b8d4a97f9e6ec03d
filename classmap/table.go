package classmap

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"class-dispatch/lineage"
)

// table is the storage shared by every dispatch table: exact-key entries plus
// a memoizing resolver.
type table[H any] struct {
	entries  map[reflect.Type]H
	resolver *lineage.Resolver
}

func newTable[H any](opts []Option) table[H] {
	c := buildConfig(opts)

	return table[H]{
		entries:  make(map[reflect.Type]H),
		resolver: lineage.NewResolver(c.lineage),
	}
}

// put replaces the entry for the exact class of key.
func (t *table[H]) put(key reflect.Type, h H) (H, bool) {
	key = lineage.Normalize(key)
	if key == nil {
		panic("classmap: nil class key")
	}

	prev, ok := t.entries[key]
	t.entries[key] = h

	return prev, ok
}

// remove drops the exact entry and the whole cache, since cached answers may
// point at it.
func (t *table[H]) remove(key reflect.Type) bool {
	key = lineage.Normalize(key)
	if _, ok := t.entries[key]; !ok {
		return false
	}

	delete(t.entries, key)
	t.resolver.Forget()

	return true
}

func (t *table[H]) has(key reflect.Type) bool {
	_, ok := t.entries[key]
	return ok
}

// resolve finds the entry for query: exact class first, then the memoized
// ancestor walk.
func (t *table[H]) resolve(query reflect.Type) (reflect.Type, H, bool) {
	query = lineage.Normalize(query)
	if query == nil {
		var zero H
		return nil, zero, false
	}

	if h, ok := t.entries[query]; ok {
		return query, h, true
	}

	key, ok := t.resolver.Resolve(query, t.has)
	if !ok {
		var zero H
		return nil, zero, false
	}

	return key, t.entries[key], true
}

// clone copies the entries and starts an empty cache over the same lineage.
func (t *table[H]) clone() table[H] {
	return table[H]{
		entries:  maps.Clone(t.entries),
		resolver: t.resolver.Fresh(),
	}
}

// remap copies t converting each entry with fn.
func remap[H, H2 any](t *table[H], fn func(H) H2) table[H2] {
	entries := make(map[reflect.Type]H2, len(t.entries))
	for key, h := range t.entries {
		entries[key] = fn(h)
	}

	return table[H2]{
		entries:  entries,
		resolver: t.resolver.Fresh(),
	}
}

func (t *table[H]) keys() []reflect.Type {
	keys := slices.Collect(maps.Keys(t.entries))
	slices.SortFunc(keys, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return keys
}

// Len returns the number of registered classes.
func (t *table[H]) Len() int {
	return len(t.entries)
}

// Keys returns the registered classes sorted by name.
func (t *table[H]) Keys() []reflect.Type {
	return t.keys()
}

// Lineage returns the lineage the table walks.
func (t *table[H]) Lineage() *lineage.Lineage {
	return t.resolver.Lineage()
}

// notFound builds the error for a query with no entry and no default.
func notFound(query reflect.Type) error {
	return fmt.Errorf("%w %v", ErrNotFound, lineage.Normalize(query))
}

// isNil reports whether v is a nil interface, pointer, map, func or chan.
// Slices are values here: a nil slice is an empty one.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// classOf returns the class of v or ErrNilValue.
func classOf(v any) (reflect.Type, error) {
	t := lineage.TypeOf(v)
	if t == nil {
		return nil, ErrNilValue
	}

	return t, nil
}
