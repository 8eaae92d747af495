// Package javatype holds Java type syntax as written in source, before any
// name is linked to a class or a type variable.
package javatype

import "strings"

// Kind distinguishes the syntactic shapes a Java type can take
type Kind int

const (
	// Primitive is one of the eight primitive keywords
	Primitive Kind = iota
	// Void is the `void` return type
	Void
	// Reference is a named type, optionally applied to type arguments.
	// Whether the name denotes a class or a type variable is decided at link time
	Reference
	// Wildcard is `?`, `? extends Bound` or `? super Bound`
	Wildcard
	// Array is a component type followed by `[]`
	Array
)

func (k Kind) String() string {
	switch k {
	case Primitive:
		return "primitive"
	case Void:
		return "void"
	case Reference:
		return "reference"
	case Wildcard:
		return "wildcard"
	case Array:
		return "array"
	}
	return "unknown"
}

// Type is a single node of parsed Java type syntax
type Type struct {
	Kind Kind
	// Name is the primitive keyword or the (possibly dotted) referenced name
	Name string
	// Args are the type arguments of a parameterized reference, e.g. `List<T>`
	Args []*Type
	// Upper and Lower are the wildcard bounds; at most one of them is set
	Upper *Type
	Lower *Type
	// Component is the element type of an array
	Component *Type
}

// PrimitiveOf returns the syntax for a primitive keyword such as `int`
func PrimitiveOf(keyword string) *Type {
	return &Type{Kind: Primitive, Name: keyword}
}

// VoidType returns the syntax for `void`
func VoidType() *Type {
	return &Type{Kind: Void, Name: "void"}
}

// Ref returns a reference to a named type, applied to the given arguments
func Ref(name string, args ...*Type) *Type {
	return &Type{Kind: Reference, Name: name, Args: args}
}

// ArrayOf wraps the component in the given number of array dimensions
func ArrayOf(component *Type, dimensions int) *Type {
	result := component
	for i := 0; i < dimensions; i++ {
		result = &Type{Kind: Array, Component: result}
	}
	return result
}

// IsParameterized reports whether the type is a reference with type arguments
func (t *Type) IsParameterized() bool {
	return t.Kind == Reference && len(t.Args) > 0
}

// String renders the type back into Java syntax
func (t *Type) String() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case Primitive, Void:
		return t.Name
	case Reference:
		if len(t.Args) == 0 {
			return t.Name
		}
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = arg.String()
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	case Wildcard:
		if t.Upper != nil {
			return "? extends " + t.Upper.String()
		}
		if t.Lower != nil {
			return "? super " + t.Lower.String()
		}
		return "?"
	case Array:
		return t.Component.String() + "[]"
	}
	return ""
}

// IsPrimitiveKeyword reports whether name is one of Java's primitive type keywords
func IsPrimitiveKeyword(name string) bool {
	switch name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}
