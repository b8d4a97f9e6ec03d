package zoo

// Exception is the root of the exception family.
type Exception struct {
	Message string
}

func (e *Exception) Error() string { return e.Message }

type RuntimeException struct {
	Exception
}

type IllegalArgumentException struct {
	RuntimeException
}

// NewIllegalArgument builds an IllegalArgumentException carrying msg.
func NewIllegalArgument(msg string) *IllegalArgumentException {
	return &IllegalArgumentException{RuntimeException{Exception{Message: msg}}}
}
