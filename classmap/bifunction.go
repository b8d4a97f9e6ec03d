package classmap

import (
	"errors"
	"fmt"
	"reflect"
)

// BiFunctionClassMap maps classes to two-argument functions. Dispatch is on
// the first argument only.
type BiFunctionClassMap[T, U, R any] struct {
	table[func(T, U) (R, error)]

	def    func(T, U) (R, error)
	hasDef bool
}

// NewBiFunction creates an empty BiFunctionClassMap.
func NewBiFunction[T, U, R any](opts ...Option) *BiFunctionClassMap[T, U, R] {
	return &BiFunctionClassMap[T, U, R]{table: newTable[func(T, U) (R, error)](opts)}
}

// HandleBi registers fn for the class S, viewing dispatched values as S.
func HandleBi[S, T, U, R any](m *BiFunctionClassMap[T, U, R], fn func(S, U) (R, error)) bool {
	var h func(T, U) (R, error)
	if fn != nil {
		h = func(v T, u U) (R, error) {
			s, err := typedArg[S](v)
			if err != nil {
				var zero R
				return zero, err
			}

			return fn(s, u)
		}
	}

	return m.Put(reflect.TypeFor[S](), h)
}

// Put registers fn for the exact class of key and reports whether it replaced
// an earlier handler.
func (m *BiFunctionClassMap[T, U, R]) Put(key reflect.Type, fn func(T, U) (R, error)) bool {
	_, replaced := m.put(key, fn)
	return replaced
}

// Remove drops the exact class of key.
func (m *BiFunctionClassMap[T, U, R]) Remove(key reflect.Type) bool {
	return m.remove(key)
}

// Apply runs the handler of the nearest registered class of v with (v, u).
func (m *BiFunctionClassMap[T, U, R]) Apply(v T, u U) (R, error) {
	fn, err := m.lookup(v)
	if err != nil {
		var zero R
		return zero, err
	}

	return fn(v, u)
}

// ApplyTry is Apply with ok == false instead of ErrNotFound or a nil result.
func (m *BiFunctionClassMap[T, U, R]) ApplyTry(v T, u U) (R, bool, error) {
	var zero R

	fn, err := m.lookup(v)
	if errors.Is(err, ErrNotFound) {
		return zero, false, nil
	}

	if err != nil {
		return zero, false, err
	}

	r, err := fn(v, u)
	if err != nil {
		return zero, false, err
	}

	if isNil(r) {
		return zero, false, nil
	}

	return r, true, nil
}

func (m *BiFunctionClassMap[T, U, R]) lookup(v T) (func(T, U) (R, error), error) {
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
func (m *BiFunctionClassMap[T, U, R]) Copy() *BiFunctionClassMap[T, U, R] {
	return &BiFunctionClassMap[T, U, R]{
		table:  m.clone(),
		def:    m.def,
		hasDef: m.hasDef,
	}
}

// WithDefault returns a copy of m answering r when nothing resolves.
func (m *BiFunctionClassMap[T, U, R]) WithDefault(r R) *BiFunctionClassMap[T, U, R] {
	return m.WithDefaultFunc(func(T, U) (R, error) { return r, nil })
}

// WithDefaultFunc returns a copy of m calling fn when nothing resolves.
func (m *BiFunctionClassMap[T, U, R]) WithDefaultFunc(fn func(T, U) (R, error)) *BiFunctionClassMap[T, U, R] {
	cp := m.Copy()
	cp.def, cp.hasDef = fn, true

	return cp
}

// CopyBiAs copies m into a table producing R2, which R must be assignable to.
func CopyBiAs[R2, T, U, R any](m *BiFunctionClassMap[T, U, R]) (*BiFunctionClassMap[T, U, R2], error) {
	widen, err := widener[R, R2]()
	if err != nil {
		return nil, err
	}

	lift := func(fn func(T, U) (R, error)) func(T, U) (R2, error) {
		if fn == nil {
			return nil
		}

		return func(v T, u U) (R2, error) {
			r, err := fn(v, u)
			return widen(r), err
		}
	}

	return &BiFunctionClassMap[T, U, R2]{
		table:  remap(&m.table, lift),
		def:    lift(m.def),
		hasDef: m.hasDef,
	}, nil
}
