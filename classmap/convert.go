package classmap

import (
	"fmt"
	"reflect"

	"class-dispatch/lineage"
)

// widener converts results of type R to R2 for covariant copies.
// It fails when R is not assignable to R2.
func widener[R, R2 any]() (func(R) R2, error) {
	from, to := reflect.TypeFor[R](), reflect.TypeFor[R2]()
	if !from.AssignableTo(to) {
		return nil, fmt.Errorf("%w: result %s is not assignable to %s", ErrConfiguration, from, to)
	}

	return func(r R) R2 {
		var out R2
		reflect.ValueOf(&out).Elem().Set(reflect.ValueOf(&r).Elem())

		return out
	}, nil
}

// typedArg views v as S for handlers registered on a subclass S.
func typedArg[S any](v any) (S, error) {
	s, ok := lineage.As[S](v)
	if !ok {
		return s, fmt.Errorf("%w: %T cannot be viewed as %s", ErrConfiguration, v, reflect.TypeFor[S]())
	}

	return s, nil
}
