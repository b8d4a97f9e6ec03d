package lineage

import "reflect"

// Resolver memoizes nearest-ancestor lookups per query class.
//
// Only hits are cached. Cached answers are not revisited when new keys are
// registered, so a class resolved to Number keeps resolving to Number even
// after a closer ancestor gets registered; call Forget to start over.
// A Resolver is not safe for concurrent use.
type Resolver struct {
	lineage *Lineage
	cache   map[reflect.Type]reflect.Type
}

// NewResolver creates a resolver over l. A nil l means embedding-only.
func NewResolver(l *Lineage) *Resolver {
	return &Resolver{
		lineage: l,
		cache:   make(map[reflect.Type]reflect.Type),
	}
}

// Lineage returns the lineage the resolver walks.
func (r *Resolver) Lineage() *Lineage {
	return r.lineage
}

// Resolve returns the nearest class in the chain of query accepted by has.
func (r *Resolver) Resolve(query reflect.Type, has func(reflect.Type) bool) (reflect.Type, bool) {
	query = Normalize(query)
	if query == nil {
		return nil, false
	}

	if key, ok := r.cache[query]; ok {
		return key, true
	}

	key, ok := r.lineage.Nearest(query, has)
	if ok {
		r.cache[query] = key
	}

	return key, ok
}

// Forget drops every cached answer.
func (r *Resolver) Forget() {
	clear(r.cache)
}

// Len returns the number of cached answers.
func (r *Resolver) Len() int {
	return len(r.cache)
}

// Fresh returns a resolver over the same lineage with an empty cache.
func (r *Resolver) Fresh() *Resolver {
	return NewResolver(r.lineage)
}
