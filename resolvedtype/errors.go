package resolvedtype

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation is returned when a class cannot be turned into a
	// ClassType, such as an array class or a generic class without bindings
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrIllegalArgument is returned when a caller asks for a type parameter
	// the ClassType has no binding for
	ErrIllegalArgument = errors.New("illegal argument")
)

// UnresolvableTypeVariableError is returned when a type variable is met during
// resolution, but the context it is resolved in has no binding for it
type UnresolvableTypeVariableError struct {
	Name TypeVariableName
}

func (e *UnresolvableTypeVariableError) Error() string {
	return fmt.Sprintf("no type variable with name '%s'", e.Name.Name())
}
