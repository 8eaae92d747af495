package reflector

import (
	"strings"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/resolvedtype"
)

// GenericType describes a type to resolve: a class with its type arguments,
// a wildcard, an array, or a type that was already resolved
type GenericType interface {
	// Key identifies the described type; equal keys resolve to equal types
	Key() string
}

type classType struct {
	class introspect.Class
	args  []GenericType
}

type namedType struct {
	name string
	args []GenericType
}

type wildcardType struct{}

type arrayType struct {
	component GenericType
}

type resolvedType struct {
	resolved resolvedtype.ResolvedType
}

type reflectionType struct {
	declared introspect.Type
	context  *resolvedtype.ClassType
}

// Of describes a class applied to type arguments, in declaration order
func Of(class introspect.Class, args ...GenericType) GenericType {
	return &classType{class: class, args: args}
}

// Named describes a class looked up by name, applied to type arguments
func Named(name string, args ...GenericType) GenericType {
	return &namedType{name: name, args: args}
}

func Wildcard() GenericType {
	return wildcardType{}
}

// ArrayOf describes an array of the component type
func ArrayOf(component GenericType) GenericType {
	return &arrayType{component: component}
}

// FromResolved wraps a type that is already resolved
func FromResolved(resolved resolvedtype.ResolvedType) GenericType {
	return &resolvedType{resolved: resolved}
}

// FromReflection describes a declared type expression, to be resolved in the
// context of the class that declares it
func FromReflection(declared introspect.Type, context *resolvedtype.ClassType) GenericType {
	return &reflectionType{declared: declared, context: context}
}

func argumentKeys(name string, args []GenericType) string {
	if len(args) == 0 {
		return name
	}
	keys := make([]string, len(args))
	for i, arg := range args {
		keys[i] = arg.Key()
	}
	return name + "<" + strings.Join(keys, ", ") + ">"
}

func (c *classType) Key() string    { return argumentKeys(c.class.Name(), c.args) }
func (n *namedType) Key() string    { return argumentKeys(n.name, n.args) }
func (wildcardType) Key() string    { return "?" }
func (a *arrayType) Key() string    { return a.component.Key() + "[]" }
func (r *resolvedType) Key() string { return r.resolved.Description() }

func (r *reflectionType) Key() string {
	return r.declared.TypeName() + " in " + r.context.Description()
}
