package classmap

import (
	"fmt"
	"reflect"
)

// BiConsumerClassMap maps classes to two-argument consumers.
//
// A map built with ignoreNotFound treats a value with no handler as a no-op
// instead of failing. The flag is fixed at construction.
type BiConsumerClassMap[T, U any] struct {
	table[func(T, U) error]

	def            func(T, U) error
	hasDef         bool
	ignoreNotFound bool
}

// NewBiConsumer creates an empty consumer map that fails on unmatched classes.
func NewBiConsumer[T, U any](opts ...Option) *BiConsumerClassMap[T, U] {
	return NewBiConsumerInstance[T, U](false, opts...)
}

// NewBiConsumerInstance creates an empty consumer map; with ignoreNotFound,
// unmatched classes are silently skipped.
func NewBiConsumerInstance[T, U any](ignoreNotFound bool, opts ...Option) *BiConsumerClassMap[T, U] {
	return &BiConsumerClassMap[T, U]{
		table:          newTable[func(T, U) error](opts),
		ignoreNotFound: ignoreNotFound,
	}
}

// HandleConsumer registers fn for the class S, viewing dispatched values as S.
func HandleConsumer[S, T, U any](m *BiConsumerClassMap[T, U], fn func(S, U) error) bool {
	var h func(T, U) error
	if fn != nil {
		h = func(v T, u U) error {
			s, err := typedArg[S](v)
			if err != nil {
				return err
			}

			return fn(s, u)
		}
	}

	return m.Put(reflect.TypeFor[S](), h)
}

// Put registers fn for the exact class of key and reports whether it replaced
// an earlier consumer.
func (m *BiConsumerClassMap[T, U]) Put(key reflect.Type, fn func(T, U) error) bool {
	_, replaced := m.put(key, fn)
	return replaced
}

// Remove drops the exact class of key.
func (m *BiConsumerClassMap[T, U]) Remove(key reflect.Type) bool {
	return m.remove(key)
}

// IgnoresNotFound reports whether unmatched classes are skipped.
func (m *BiConsumerClassMap[T, U]) IgnoresNotFound() bool {
	return m.ignoreNotFound
}

// Accept runs the consumer of the nearest registered class of v with (v, u).
// Consumer errors are returned unchanged.
func (m *BiConsumerClassMap[T, U]) Accept(v T, u U) error {
	t, err := classOf(v)
	if err != nil {
		return err
	}

	key, fn, ok := m.resolve(t)

	switch {
	case ok && fn == nil:
		return fmt.Errorf("%w: nil consumer registered for %v", ErrConfiguration, key)
	case ok:
		return fn(v, u)
	case m.hasDef && m.def == nil:
		return fmt.Errorf("%w: nil default consumer", ErrConfiguration)
	case m.hasDef:
		return m.def(v, u)
	case m.ignoreNotFound:
		return nil
	default:
		return notFound(t)
	}
}

// Copy returns an independent map with the same consumers, default and flag.
func (m *BiConsumerClassMap[T, U]) Copy() *BiConsumerClassMap[T, U] {
	return &BiConsumerClassMap[T, U]{
		table:          m.clone(),
		def:            m.def,
		hasDef:         m.hasDef,
		ignoreNotFound: m.ignoreNotFound,
	}
}

// WithDefaultFunc returns a copy of m calling fn when nothing resolves.
// The default takes precedence over ignoreNotFound.
func (m *BiConsumerClassMap[T, U]) WithDefaultFunc(fn func(T, U) error) *BiConsumerClassMap[T, U] {
	cp := m.Copy()
	cp.def, cp.hasDef = fn, true

	return cp
}
