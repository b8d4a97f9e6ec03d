package lineage

import "reflect"

// As views v as S by walking its embedded parent fields.
// S may be a class or a pointer to one. A pointer view of a value reached
// without an addressable path is taken on a copy.
// Declared parents carry no data and cannot be viewed.
func As[S any](v any) (S, bool) {
	if s, ok := v.(S); ok {
		return s, true
	}

	var zero S

	target := reflect.TypeFor[S]()
	if target.Kind() == reflect.Pointer && target.Elem().Kind() == reflect.Pointer {
		return zero, false
	}

	want := Normalize(target)
	rv := reflect.ValueOf(v)

	for rv.IsValid() {
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return zero, false
			}

			rv = rv.Elem()
		}

		if !rv.CanInterface() {
			return zero, false
		}

		if rv.Type() == want {
			return view[S](rv, target)
		}

		i, ok := embeddedParentIndex(rv.Type())
		if !ok {
			break
		}

		rv = rv.Field(i)
	}

	return zero, false
}

func view[S any](rv reflect.Value, target reflect.Type) (S, bool) {
	if target.Kind() == reflect.Pointer {
		if rv.CanAddr() {
			rv = rv.Addr()
		} else {
			cp := reflect.New(rv.Type())
			cp.Elem().Set(rv)
			rv = cp
		}
	}

	s, ok := rv.Interface().(S)

	return s, ok
}
