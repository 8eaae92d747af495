// Package resolvedtype resolves the generic types of a class's members against
// concrete bindings for the class's type parameters.
//
// A ClassType pairs a raw class with a binding for each of its type variables.
// Its fields, methods and constructors are resolved on first access by walking
// each declared type expression and substituting the variables it mentions.
package resolvedtype

import "github.com/NickyBoy89/genresolve/introspect"

// ResolvedType is a type with its type variables substituted. It is one of
// *ClassType, *WildcardType, *ArrayType or *UnboundType
type ResolvedType interface {
	// Description is the binary class name, followed by the described type
	// arguments in angle brackets when there are any
	Description() string
	// SimpleDescription is Description with unqualified class names
	SimpleDescription() string

	IsPublic() bool
	IsAbstract() bool
	IsInterface() bool
	IsAnonymousClass() bool
	IsInnerClass() bool
	IsLocalClass() bool
	IsStatic() bool
	IsAnnotation() bool
	IsWildcard() bool

	// AssignableType is the raw class that values of the type are instances
	// of, or nil when there is none
	AssignableType() introspect.Class
	// TypeParameters lists the resolved type arguments in declaration order
	TypeParameters() []ResolvedType
}
