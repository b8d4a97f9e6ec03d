package classmap

import (
	"fmt"
	"reflect"
)

// MultiFunc is a handler that also receives the table it was dispatched
// from, so it can dispatch again on child values.
type MultiFunc[T, R any] func(mf *MultiFunction[T, R], v T) (R, error)

// MultiFunction maps classes to self-aware handlers, enabling structural
// recursion over values of different classes. Recursion depth is the
// caller's concern.
type MultiFunction[T, R any] struct {
	table[MultiFunc[T, R]]

	def    MultiFunc[T, R]
	hasDef bool
}

// NewMulti creates an empty MultiFunction.
func NewMulti[T, R any](opts ...Option) *MultiFunction[T, R] {
	return &MultiFunction[T, R]{table: newTable[MultiFunc[T, R]](opts)}
}

// HandleMulti registers a self-aware fn for the class S, viewing dispatched values as S.
func HandleMulti[S, T, R any](m *MultiFunction[T, R], fn func(*MultiFunction[T, R], S) (R, error)) bool {
	var h MultiFunc[T, R]
	if fn != nil {
		h = func(mf *MultiFunction[T, R], v T) (R, error) {
			s, err := typedArg[S](v)
			if err != nil {
				var zero R
				return zero, err
			}

			return fn(mf, s)
		}
	}

	return m.Put(reflect.TypeFor[S](), h)
}

// HandlePlain registers fn for the class S; fn does not see the table.
func HandlePlain[S, T, R any](m *MultiFunction[T, R], fn func(S) (R, error)) bool {
	if fn == nil {
		return m.Put(reflect.TypeFor[S](), nil)
	}

	return HandleMulti(m, func(_ *MultiFunction[T, R], s S) (R, error) {
		return fn(s)
	})
}

// Put registers fn for the exact class of key and reports whether it replaced
// an earlier handler.
func (m *MultiFunction[T, R]) Put(key reflect.Type, fn MultiFunc[T, R]) bool {
	_, replaced := m.put(key, fn)
	return replaced
}

// PutPlain registers a handler for the exact class of key that does not see the table.
func (m *MultiFunction[T, R]) PutPlain(key reflect.Type, fn func(T) (R, error)) bool {
	return m.Put(key, plain(fn))
}

// Remove drops the exact class of key.
func (m *MultiFunction[T, R]) Remove(key reflect.Type) bool {
	return m.remove(key)
}

// Apply runs the handler of the nearest registered class of v, passing m
// itself as the dispatcher.
func (m *MultiFunction[T, R]) Apply(v T) (R, error) {
	var zero R

	t, err := classOf(v)
	if err != nil {
		return zero, err
	}

	key, fn, ok := m.resolve(t)

	switch {
	case ok && fn == nil:
		return zero, fmt.Errorf("%w: nil handler registered for %v", ErrConfiguration, key)
	case ok:
		return fn(m, v)
	case m.hasDef && m.def == nil:
		return zero, fmt.Errorf("%w: nil default function", ErrConfiguration)
	case m.hasDef:
		return m.def(m, v)
	default:
		return zero, notFound(t)
	}
}

// Copy returns an independent MultiFunction. Handlers dispatched from the
// copy receive the copy.
func (m *MultiFunction[T, R]) Copy() *MultiFunction[T, R] {
	return &MultiFunction[T, R]{
		table:  m.clone(),
		def:    m.def,
		hasDef: m.hasDef,
	}
}

// WithDefault returns a copy of m answering r when nothing resolves.
func (m *MultiFunction[T, R]) WithDefault(r R) *MultiFunction[T, R] {
	return m.WithDefaultMulti(func(*MultiFunction[T, R], T) (R, error) { return r, nil })
}

// WithDefaultFunc returns a copy of m calling fn when nothing resolves.
func (m *MultiFunction[T, R]) WithDefaultFunc(fn func(T) (R, error)) *MultiFunction[T, R] {
	return m.WithDefaultMulti(plain(fn))
}

// WithDefaultMulti returns a copy of m calling the self-aware fn when nothing resolves.
func (m *MultiFunction[T, R]) WithDefaultMulti(fn MultiFunc[T, R]) *MultiFunction[T, R] {
	cp := m.Copy()
	cp.def, cp.hasDef = fn, true

	return cp
}

func plain[T, R any](fn func(T) (R, error)) MultiFunc[T, R] {
	if fn == nil {
		return nil
	}

	return func(_ *MultiFunction[T, R], v T) (R, error) {
		return fn(v)
	}
}
