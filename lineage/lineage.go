package lineage

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrInvalidDeclaration = errors.New("invalid lineage declaration")

// Lineage holds explicit parent declarations. Classes without a declaration
// fall back to the embedding rule.
//
// A nil *Lineage is valid for reading and behaves as the embedding-only lineage.
type Lineage struct {
	parents map[reflect.Type]reflect.Type
}

// New creates a lineage with no declarations.
func New() *Lineage {
	return &Lineage{parents: make(map[reflect.Type]reflect.Type)}
}

// Normalize strips every pointer level from t.
func Normalize(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// TypeOf returns the class of v, or nil for a nil interface.
func TypeOf(v any) reflect.Type {
	return Normalize(reflect.TypeOf(v))
}

// Declare makes super the parent of sub.
// Re-declaring the same pair is a no-op; anything that would give sub a second
// parent, involve an interface, or close a cycle is rejected.
func (l *Lineage) Declare(sub, super reflect.Type) error {
	sub, super = Normalize(sub), Normalize(super)

	switch {
	case l == nil:
		return fmt.Errorf("%w: nil lineage", ErrInvalidDeclaration)
	case sub == nil || super == nil:
		return fmt.Errorf("%w: nil type", ErrInvalidDeclaration)
	case sub.Kind() == reflect.Interface:
		return fmt.Errorf("%w: interface %s cannot extend a class", ErrInvalidDeclaration, sub)
	case super.Kind() == reflect.Interface:
		return fmt.Errorf("%w: interface %s cannot be a parent class", ErrInvalidDeclaration, super)
	case sub == super:
		return fmt.Errorf("%w: %s cannot extend itself", ErrInvalidDeclaration, sub)
	}

	if prev, ok := l.parents[sub]; ok {
		if prev == super {
			return nil
		}

		return fmt.Errorf("%w: %s already extends %s", ErrInvalidDeclaration, sub, prev)
	}

	for _, ancestor := range l.Chain(super) {
		if ancestor == sub {
			return fmt.Errorf("%w: %s -> %s closes a cycle", ErrInvalidDeclaration, sub, super)
		}
	}

	if l.parents == nil {
		l.parents = make(map[reflect.Type]reflect.Type)
	}

	l.parents[sub] = super

	return nil
}

// Declared returns the number of explicit declarations.
func (l *Lineage) Declared() int {
	if l == nil {
		return 0
	}

	return len(l.parents)
}

// Parent returns the parent class of t and where it came from.
// Roots return nil and SourceNone.
func (l *Lineage) Parent(t reflect.Type) (reflect.Type, Source) {
	t = Normalize(t)
	if t == nil {
		return nil, SourceNone
	}

	if l != nil {
		if parent, ok := l.parents[t]; ok {
			return parent, SourceDeclared
		}
	}

	if i, ok := embeddedParentIndex(t); ok {
		return Normalize(t.Field(i).Type), SourceEmbedded
	}

	return nil, SourceNone
}

// Chain returns t followed by its ancestors, nearest first.
// The walk stops at the first repeated class, so self-referencing embeds
// like `type Node struct{ *Node }` terminate.
func (l *Lineage) Chain(t reflect.Type) []reflect.Type {
	var (
		chain []reflect.Type
		seen  = make(map[reflect.Type]struct{})
	)

	for t = Normalize(t); t != nil; t, _ = l.Parent(t) {
		if _, dup := seen[t]; dup {
			break
		}

		seen[t] = struct{}{}
		chain = append(chain, t)
	}

	return chain
}

// Nearest walks the chain of query and returns the first class accepted by has.
func (l *Lineage) Nearest(query reflect.Type, has func(reflect.Type) bool) (reflect.Type, bool) {
	for _, t := range l.Chain(query) {
		if has(t) {
			return t, true
		}
	}

	return nil, false
}

// Resolve returns the nearest ancestor of query (query included) that is a key of keys.
func Resolve[V any](l *Lineage, keys map[reflect.Type]V, query reflect.Type) (reflect.Type, bool) {
	return l.Nearest(query, func(t reflect.Type) bool {
		_, ok := keys[t]
		return ok
	})
}

// embeddedParentIndex finds the first embedded field of a struct whose
// pointer-stripped type is another struct.
func embeddedParentIndex(t reflect.Type) (int, bool) {
	if t.Kind() != reflect.Struct {
		return 0, false
	}

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}

		ft := Normalize(f.Type)
		if ft.Kind() == reflect.Struct && ft != t {
			return i, true
		}
	}

	return 0, false
}
