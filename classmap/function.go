package classmap

import (
	"errors"
	"fmt"
	"reflect"
)

// FunctionClassMap maps classes to one-argument functions over the family T.
type FunctionClassMap[T, R any] struct {
	table[func(T) (R, error)]

	def    func(T) (R, error)
	hasDef bool
}

// NewFunction creates an empty FunctionClassMap.
func NewFunction[T, R any](opts ...Option) *FunctionClassMap[T, R] {
	return &FunctionClassMap[T, R]{table: newTable[func(T) (R, error)](opts)}
}

// Handle registers fn for the class S. Values dispatched to fn are viewed
// as S through their embedded parents; a value that cannot be viewed that
// way fails with ErrConfiguration.
func Handle[S, T, R any](m *FunctionClassMap[T, R], fn func(S) (R, error)) bool {
	var h func(T) (R, error)
	if fn != nil {
		h = func(v T) (R, error) {
			s, err := typedArg[S](v)
			if err != nil {
				var zero R
				return zero, err
			}

			return fn(s)
		}
	}

	return m.Put(reflect.TypeFor[S](), h)
}

// Put registers fn for the exact class of key and reports whether it replaced
// an earlier handler. fn receives the dispatched value as is.
// A nil fn is accepted and fails with ErrConfiguration when dispatched to.
func (m *FunctionClassMap[T, R]) Put(key reflect.Type, fn func(T) (R, error)) bool {
	_, replaced := m.put(key, fn)
	return replaced
}

// Remove drops the exact class of key.
func (m *FunctionClassMap[T, R]) Remove(key reflect.Type) bool {
	return m.remove(key)
}

// Apply runs the handler of the nearest registered class of v, falling back
// to the default. Handler errors are returned unchanged.
func (m *FunctionClassMap[T, R]) Apply(v T) (R, error) {
	fn, err := m.lookup(v)
	if err != nil {
		var zero R
		return zero, err
	}

	return fn(v)
}

// ApplyTry is Apply where "nothing to answer" reads as ok == false: no
// handler and no default, or a handler or default returning a nil result.
// Other errors are still returned.
func (m *FunctionClassMap[T, R]) ApplyTry(v T) (R, bool, error) {
	var zero R

	fn, err := m.lookup(v)
	if errors.Is(err, ErrNotFound) {
		return zero, false, nil
	}

	if err != nil {
		return zero, false, err
	}

	r, err := fn(v)
	if err != nil {
		return zero, false, err
	}

	if isNil(r) {
		return zero, false, nil
	}

	return r, true, nil
}

func (m *FunctionClassMap[T, R]) lookup(v T) (func(T) (R, error), error) {
	t, err := classOf(v)
	if err != nil {
		return nil, err
	}

	key, fn, ok := m.resolve(t)

	switch {
	case ok && fn == nil:
		return nil, fmt.Errorf("%w: nil handler registered for %v", ErrConfiguration, key)
	case ok:
		return fn, nil
	case m.hasDef && m.def == nil:
		return nil, fmt.Errorf("%w: nil default function", ErrConfiguration)
	case m.hasDef:
		return m.def, nil
	default:
		return nil, notFound(t)
	}
}

// Copy returns an independent table with the same handlers and default.
func (m *FunctionClassMap[T, R]) Copy() *FunctionClassMap[T, R] {
	return &FunctionClassMap[T, R]{
		table:  m.clone(),
		def:    m.def,
		hasDef: m.hasDef,
	}
}

// WithDefault returns a copy of m answering r when nothing resolves.
func (m *FunctionClassMap[T, R]) WithDefault(r R) *FunctionClassMap[T, R] {
	return m.WithDefaultFunc(func(T) (R, error) { return r, nil })
}

// WithDefaultFunc returns a copy of m calling fn when nothing resolves.
func (m *FunctionClassMap[T, R]) WithDefaultFunc(fn func(T) (R, error)) *FunctionClassMap[T, R] {
	cp := m.Copy()
	cp.def, cp.hasDef = fn, true

	return cp
}

// CopyAs copies m into a table producing R2, which R must be assignable to.
func CopyAs[R2, T, R any](m *FunctionClassMap[T, R]) (*FunctionClassMap[T, R2], error) {
	widen, err := widener[R, R2]()
	if err != nil {
		return nil, err
	}

	lift := func(fn func(T) (R, error)) func(T) (R2, error) {
		if fn == nil {
			return nil
		}

		return func(v T) (R2, error) {
			r, err := fn(v)
			return widen(r), err
		}
	}

	out := &FunctionClassMap[T, R2]{
		table:  remap(&m.table, lift),
		def:    lift(m.def),
		hasDef: m.hasDef,
	}

	return out, nil
}
