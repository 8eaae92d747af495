// Package validate holds the argument checks shared by the public entry points
package validate

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilArgument is returned when a required argument is nil
var ErrNilArgument = errors.New("nil argument")

// NotNil fails with ErrNilArgument, naming the parameter, when value is nil.
// Typed nil pointers, maps, slices, funcs and channels held in an interface
// count as nil
func NotNil(value any, name string) error {
	if value == nil {
		return fmt.Errorf("%w: %s must not be nil", ErrNilArgument, name)
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return fmt.Errorf("%w: %s must not be nil", ErrNilArgument, name)
		}
	}
	return nil
}
