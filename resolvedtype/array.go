package resolvedtype

import (
	"fmt"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
)

// ArrayType is an array of a resolved component type
type ArrayType struct {
	component ResolvedType
}

// ArrayTypeOf wraps a resolved component type into an array type
func ArrayTypeOf(component ResolvedType) (*ArrayType, error) {
	if err := validate.NotNil(component, "componentType"); err != nil {
		return nil, err
	}
	return &ArrayType{component: component}, nil
}

// FromArrayClass resolves a raw array class, such as `String[][]`
func FromArrayClass(class introspect.Class) (*ArrayType, error) {
	if err := validate.NotNil(class, "class"); err != nil {
		return nil, err
	}
	if !class.IsArray() {
		return nil, fmt.Errorf("%w: %s is not an array class", ErrUnsupportedOperation, class.Name())
	}
	component, err := fromRawClass(class.ComponentType())
	if err != nil {
		return nil, err
	}
	return &ArrayType{component: component}, nil
}

// fromRawClass resolves a class that needs no bindings, array or not
func fromRawClass(class introspect.Class) (ResolvedType, error) {
	if class.IsArray() {
		return FromArrayClass(class)
	}
	return FromClassWithoutGenerics(class)
}

func (a *ArrayType) ComponentType() ResolvedType {
	return a.component
}

func (a *ArrayType) Description() string {
	return a.component.Description() + "[]"
}

func (a *ArrayType) SimpleDescription() string {
	return a.component.SimpleDescription() + "[]"
}

// Array classes take the access of their component
func (a *ArrayType) IsPublic() bool { return a.component.IsPublic() }

func (a *ArrayType) IsAbstract() bool       { return false }
func (a *ArrayType) IsInterface() bool      { return false }
func (a *ArrayType) IsAnonymousClass() bool { return false }
func (a *ArrayType) IsInnerClass() bool     { return false }
func (a *ArrayType) IsLocalClass() bool     { return false }
func (a *ArrayType) IsStatic() bool         { return false }
func (a *ArrayType) IsAnnotation() bool     { return false }
func (a *ArrayType) IsWildcard() bool       { return false }

// AssignableType is the array class of the component's assignable type, or
// nil when the component has none
func (a *ArrayType) AssignableType() introspect.Class {
	component := a.component.AssignableType()
	if component == nil {
		return nil
	}
	return introspect.ArrayOf(component)
}

// TypeParameters of an array is its component type
func (a *ArrayType) TypeParameters() []ResolvedType {
	return []ResolvedType{a.component}
}
