// Package introspect is the reflective capability that generic resolution is
// built on. It mirrors the shape of Java's runtime reflection: classes, their
// declared members and modifiers, and the generic type expressions of every
// declaration site.
package introspect

import "strings"

// Type is a generic type expression as it appears at a declaration site. It is
// one of Class, *ParameterizedType, *TypeVariable, *WildcardType or
// *GenericArrayType
type Type interface {
	// TypeName renders the expression the way Java's Type.getTypeName does
	TypeName() string
}

// Class is a raw class, interface, enum, annotation, record, primitive or array
type Class interface {
	Type

	// Name is the binary name: `pkg.Outer$Inner`, `int`, `[Ljava.lang.String;`
	Name() string
	// SimpleName is the unqualified source name, empty for anonymous classes
	SimpleName() string
	PackageName() string
	Modifiers() Modifier

	// TypeParameters lists the declared type variables in declaration order
	TypeParameters() []*TypeVariable
	GenericSuperclass() Type
	GenericInterfaces() []Type

	IsArray() bool
	// ComponentType is the element class of an array, nil otherwise
	ComponentType() Class
	IsPrimitive() bool
	IsInterface() bool
	IsAnnotation() bool
	IsEnum() bool
	IsAnonymousClass() bool
	IsLocalClass() bool
	// EnclosingClass is the lexically enclosing class, nil for top-level classes
	EnclosingClass() Class

	DeclaredFields() []*Field
	DeclaredMethods() []*Method
	DeclaredConstructors() []*Constructor
}

// ParameterizedType is a generic class applied to type arguments, e.g. `List<T>`
type ParameterizedType struct {
	Raw  Class
	Args []Type
}

func (p *ParameterizedType) TypeName() string {
	args := make([]string, len(p.Args))
	for i, arg := range p.Args {
		args[i] = arg.TypeName()
	}
	return p.Raw.Name() + "<" + strings.Join(args, ", ") + ">"
}

// TypeVariable is a named type parameter introduced by a class or a method.
// Bounds may refer back to the variable itself, as in `T extends Comparable<T>`
type TypeVariable struct {
	Name   string
	Bounds []Type
	// Declaration names the class or method that declares the variable
	Declaration string
}

func (v *TypeVariable) TypeName() string {
	return v.Name
}

// BoundsString renders the variable with its bounds, e.g. `T extends java.lang.Number`.
// Bounds of exactly java.lang.Object are omitted
func (v *TypeVariable) BoundsString() string {
	var bounds []string
	for _, bound := range v.Bounds {
		if isObject(bound) {
			continue
		}
		bounds = append(bounds, bound.TypeName())
	}
	if len(bounds) == 0 {
		return v.Name
	}
	return v.Name + " extends " + strings.Join(bounds, " & ")
}

// WildcardType is `?`, `? extends Upper` or `? super Lower`
type WildcardType struct {
	Upper []Type
	Lower []Type
}

func (w *WildcardType) TypeName() string {
	if len(w.Lower) > 0 {
		return "? super " + joinTypeNames(w.Lower, " & ")
	}
	if len(w.Upper) == 0 || (len(w.Upper) == 1 && isObject(w.Upper[0])) {
		return "?"
	}
	return "? extends " + joinTypeNames(w.Upper, " & ")
}

// GenericArrayType is an array whose component is parameterized or a type
// variable, e.g. `T[]` or `List<String>[]`
type GenericArrayType struct {
	Component Type
}

func (a *GenericArrayType) TypeName() string {
	return a.Component.TypeName() + "[]"
}

func joinTypeNames(types []Type, sep string) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.TypeName()
	}
	return strings.Join(names, sep)
}

func isObject(t Type) bool {
	class, ok := t.(Class)
	return ok && class.Name() == ObjectClassName
}

// ObjectClassName is the root of the class hierarchy
const ObjectClassName = "java.lang.Object"
