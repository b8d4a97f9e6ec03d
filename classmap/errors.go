package classmap

import "errors"

var (
	ErrNotFound      = errors.New("handler not defined for class")
	ErrMissingEntry  = errors.New("expected table to contain a non-nil entry")
	ErrNilValue      = errors.New("cannot dispatch on a nil value")
	ErrConfiguration = errors.New("dispatch table misconfigured")
)
