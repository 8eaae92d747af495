package resolvedtype

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
)

// ClassType is a raw class together with the bindings of its own type
// variables. Its members are resolved lazily and cached; a ClassType is safe
// to share between goroutines
type ClassType struct {
	class    introspect.Class
	bindings map[TypeVariableName]ResolvedType

	methods      lazy[[]*ResolvedMethod]
	constructors lazy[[]*ResolvedConstructor]
	fields       lazy[[]*ResolvedField]
	superclass   lazy[ResolvedType]
	interfaces   lazy[[]ResolvedType]
}

// FromClassWithoutGenerics creates the ClassType of a class that declares no
// type parameters
func FromClassWithoutGenerics(class introspect.Class) (*ClassType, error) {
	if err := validate.NotNil(class, "type"); err != nil {
		return nil, err
	}
	if class.IsArray() {
		return nil, fmt.Errorf("%w: array class %s cannot be resolved as a class type", ErrUnsupportedOperation, class.Name())
	}
	if len(class.TypeParameters()) != 0 {
		return nil, fmt.Errorf("%w: type variables of '%s' cannot be resolved", ErrUnsupportedOperation, class.Name())
	}
	return FromClassWithGenerics(class, map[TypeVariableName]ResolvedType{})
}

// FromClassWithGenerics creates the ClassType of a class with the given
// bindings. The bindings do not have to cover every declared variable; a
// missing binding only fails once something needs it
func FromClassWithGenerics(class introspect.Class, bindings map[TypeVariableName]ResolvedType) (*ClassType, error) {
	if err := validate.NotNil(class, "type"); err != nil {
		return nil, err
	}
	if err := validate.NotNil(bindings, "typeParameters"); err != nil {
		return nil, err
	}
	if class.IsArray() {
		return nil, fmt.Errorf("%w: array class %s cannot be resolved as a class type", ErrUnsupportedOperation, class.Name())
	}

	copied := make(map[TypeVariableName]ResolvedType, len(bindings))
	for name, value := range bindings {
		copied[name] = value
	}
	return &ClassType{class: class, bindings: copied}, nil
}

// TypeParameter returns the binding of one of the class's type variables
func (c *ClassType) TypeParameter(name TypeVariableName) (ResolvedType, error) {
	value, ok := c.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: no type parameter with the name: %s", ErrIllegalArgument, name.Name())
	}
	return value, nil
}

// resolveTypeVariable is the lookup used while resolving member types
func (c *ClassType) resolveTypeVariable(name TypeVariableName) (ResolvedType, error) {
	value, ok := c.bindings[name]
	if !ok {
		return nil, &UnresolvableTypeVariableError{Name: name}
	}
	return value, nil
}

// TypeParameters lists the bindings in declaration order. Declared variables
// without a binding are returned as *UnboundType
func (c *ClassType) TypeParameters() []ResolvedType {
	names := TypeVariableNamesOf(c.class)
	parameters := make([]ResolvedType, len(names))
	for i, name := range names {
		value, ok := c.bindings[name]
		if !ok {
			value = &UnboundType{variable: name}
		}
		parameters[i] = value
	}
	return parameters
}

// BoundTypeParameters is TypeParameters, but fails on the first declared
// variable without a binding
func (c *ClassType) BoundTypeParameters() ([]ResolvedType, error) {
	names := TypeVariableNamesOf(c.class)
	parameters := make([]ResolvedType, len(names))
	for i, name := range names {
		value, err := c.resolveTypeVariable(name)
		if err != nil {
			return nil, err
		}
		parameters[i] = value
	}
	return parameters, nil
}

// Methods resolves the class's declared methods. The result is computed once
// and the same slice is returned on every call; it must not be modified
func (c *ClassType) Methods() ([]*ResolvedMethod, error) {
	return c.methods.get(func() ([]*ResolvedMethod, error) {
		return ResolveMethods(c)
	})
}

// Constructors resolves the class's declared constructors, once
func (c *ClassType) Constructors() ([]*ResolvedConstructor, error) {
	return c.constructors.get(func() ([]*ResolvedConstructor, error) {
		return ResolveConstructors(c)
	})
}

// Fields resolves the class's declared fields, once
func (c *ClassType) Fields() ([]*ResolvedField, error) {
	return c.fields.get(func() ([]*ResolvedField, error) {
		return ResolveFields(c)
	})
}

// Superclass resolves the generic superclass against this class's bindings.
// It is nil for interfaces, primitives and java.lang.Object
func (c *ClassType) Superclass() (ResolvedType, error) {
	return c.superclass.get(func() (ResolvedType, error) {
		super := c.class.GenericSuperclass()
		if super == nil {
			return nil, nil
		}
		return ResolveType(super, c)
	})
}

// Interfaces resolves the directly implemented interfaces against this
// class's bindings
func (c *ClassType) Interfaces() ([]ResolvedType, error) {
	return c.interfaces.get(func() ([]ResolvedType, error) {
		declared := c.class.GenericInterfaces()
		interfaces := make([]ResolvedType, len(declared))
		for i, iface := range declared {
			resolved, err := ResolveType(iface, c)
			if err != nil {
				return nil, fmt.Errorf("resolving interface %s of %s: %w", iface.TypeName(), c.class.Name(), err)
			}
			interfaces[i] = resolved
		}
		return interfaces, nil
	})
}

func (c *ClassType) Description() string {
	return c.describe(c.class.Name(), ResolvedType.Description)
}

func (c *ClassType) SimpleDescription() string {
	return c.describe(c.class.SimpleName(), ResolvedType.SimpleDescription)
}

func (c *ClassType) describe(name string, describe func(ResolvedType) string) string {
	if len(c.bindings) == 0 {
		return name
	}
	parameters := c.TypeParameters()
	descriptions := make([]string, len(parameters))
	for i, parameter := range parameters {
		descriptions[i] = describe(parameter)
	}
	return name + "<" + strings.Join(descriptions, ", ") + ">"
}

func (c *ClassType) IsPublic() bool {
	return c.class.Modifiers().IsPublic()
}

// IsAbstract is false for primitives, whatever their modifiers say
func (c *ClassType) IsAbstract() bool {
	if c.class.IsPrimitive() {
		return false
	}
	return c.class.Modifiers().IsAbstract()
}

func (c *ClassType) IsInterface() bool      { return c.class.IsInterface() }
func (c *ClassType) IsAnonymousClass() bool { return c.class.IsAnonymousClass() }
func (c *ClassType) IsInnerClass() bool     { return c.class.EnclosingClass() != nil }
func (c *ClassType) IsLocalClass() bool     { return c.class.IsLocalClass() }
func (c *ClassType) IsStatic() bool         { return c.class.Modifiers().IsStatic() }
func (c *ClassType) IsAnnotation() bool     { return c.class.IsAnnotation() }
func (c *ClassType) IsWildcard() bool       { return false }

// AssignableType is the raw class
func (c *ClassType) AssignableType() introspect.Class {
	return c.class
}
