package resolvedtype

import (
	"fmt"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
)

// ResolveType substitutes the type variables in a declared type expression
// with their bindings in ctx, the ClassType that declares the expression.
//
// Only type arguments are resolved recursively; the bounds of variables and
// wildcards are never resolved, so self-referential bounds such as
// `T extends Comparable<T>` cannot recurse
func ResolveType(expr introspect.Type, ctx *ClassType) (ResolvedType, error) {
	if err := validate.NotNil(expr, "type"); err != nil {
		return nil, err
	}
	if err := validate.NotNil(ctx, "context"); err != nil {
		return nil, err
	}

	switch t := expr.(type) {
	case introspect.Class:
		return resolveClass(t, ctx)
	case *introspect.ParameterizedType:
		return resolveParameterizedType(t, ctx)
	case *introspect.TypeVariable:
		return ctx.resolveTypeVariable(TypeVariableNameOf(t.Name))
	case *introspect.WildcardType:
		return wildcardOf(t), nil
	case *introspect.GenericArrayType:
		component, err := ResolveType(t.Component, ctx)
		if err != nil {
			return nil, err
		}
		return ArrayTypeOf(component)
	}
	return nil, fmt.Errorf("%w: unknown type expression %T", ErrUnsupportedOperation, expr)
}

// resolveClass resolves a class written without type arguments. A generic
// class used this way takes the bindings of its variables from ctx
func resolveClass(class introspect.Class, ctx *ClassType) (ResolvedType, error) {
	if class.IsArray() {
		component, err := resolveClass(class.ComponentType(), ctx)
		if err != nil {
			return nil, err
		}
		return ArrayTypeOf(component)
	}

	names := TypeVariableNamesOf(class)
	if len(names) == 0 {
		return FromClassWithoutGenerics(class)
	}
	bindings := make(map[TypeVariableName]ResolvedType, len(names))
	for _, name := range names {
		value, err := ctx.resolveTypeVariable(name)
		if err != nil {
			return nil, err
		}
		bindings[name] = value
	}
	return FromClassWithGenerics(class, bindings)
}

func resolveParameterizedType(t *introspect.ParameterizedType, ctx *ClassType) (ResolvedType, error) {
	names := TypeVariableNamesOf(t.Raw)
	if len(names) != len(t.Args) {
		return nil, fmt.Errorf("%w: %s declares %d type variables but %d arguments were given",
			ErrUnsupportedOperation, t.Raw.Name(), len(names), len(t.Args))
	}

	bindings := make(map[TypeVariableName]ResolvedType, len(names))
	for i, arg := range t.Args {
		value, err := ResolveType(arg, ctx)
		if err != nil {
			return nil, err
		}
		bindings[names[i]] = value
	}
	return FromClassWithGenerics(t.Raw, bindings)
}
