// Package reflector is the entry point for resolving types: it turns a
// description of a generic type into a resolved type, and remembers every type
// it resolved.
package reflector

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/resolvedtype"
	"github.com/NickyBoy89/genresolve/validate"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ErrGenericType is returned when a generic type cannot describe a class,
// such as when the number of type arguments does not match the class
var ErrGenericType = errors.New("invalid generic type")

// ClassLoader finds classes by name
type ClassLoader interface {
	ForName(name string) (introspect.Class, error)
}

// Reflector resolves generic types and caches the results. It is safe for
// concurrent use
type Reflector struct {
	loader ClassLoader

	mu         sync.Mutex
	cache      map[string]resolvedtype.ResolvedType
	registered []resolvedtype.ResolvedType
}

func New(loader ClassLoader) *Reflector {
	return &Reflector{
		loader: loader,
		cache:  make(map[string]resolvedtype.ResolvedType),
	}
}

// Resolve resolves a generic type. Resolving the same type twice returns the
// same ResolvedType
func (r *Reflector) Resolve(generic GenericType) (resolvedtype.ResolvedType, error) {
	if err := validate.NotNil(generic, "genericType"); err != nil {
		return nil, err
	}
	generic, err := r.normalize(generic)
	if err != nil {
		return nil, err
	}
	key := generic.Key()

	r.mu.Lock()
	cached, ok := r.cache[key]
	r.mu.Unlock()
	if ok {
		log.WithField("type", key).Debug("Resolved type found in cache")
		return cached, nil
	}

	resolved, err := r.resolve(generic)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another goroutine may have resolved the same type meanwhile; keep the first
	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}
	r.cache[key] = resolved
	r.registered = append(r.registered, resolved)
	log.WithField("type", resolved.Description()).Debug("Registered resolved type")
	return resolved, nil
}

// ResolveClass resolves a class that declares no type parameters, or an array class
func (r *Reflector) ResolveClass(class introspect.Class) (resolvedtype.ResolvedType, error) {
	if err := validate.NotNil(class, "type"); err != nil {
		return nil, err
	}
	return r.Resolve(Of(class))
}

// ResolveName parses and resolves a type written as text, see ParseGenericType
func (r *Reflector) ResolveName(text string) (resolvedtype.ResolvedType, error) {
	generic, err := ParseGenericType(text)
	if err != nil {
		return nil, err
	}
	return r.Resolve(generic)
}

// RegisteredTypes lists every type resolved so far, in the order they were
// first resolved
func (r *Reflector) RegisteredTypes() []resolvedtype.ResolvedType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.registered)
}

// normalize looks up named classes, so that a class has the same key whether
// it was given by name or directly
func (r *Reflector) normalize(generic GenericType) (GenericType, error) {
	switch typed := generic.(type) {
	case *namedType:
		if r.loader == nil {
			return nil, fmt.Errorf("%w: no class loader to look up %s", ErrGenericType, typed.name)
		}
		class, err := r.loader.ForName(typed.name)
		if err != nil {
			return nil, err
		}
		args, err := r.normalizeAll(typed.args)
		if err != nil {
			return nil, err
		}
		return Of(class, args...), nil
	case *classType:
		args, err := r.normalizeAll(typed.args)
		if err != nil {
			return nil, err
		}
		return Of(typed.class, args...), nil
	case *arrayType:
		component, err := r.normalize(typed.component)
		if err != nil {
			return nil, err
		}
		return ArrayOf(component), nil
	}
	return generic, nil
}

func (r *Reflector) normalizeAll(args []GenericType) ([]GenericType, error) {
	normalized := make([]GenericType, len(args))
	for i, arg := range args {
		if err := validate.NotNil(arg, "typeVariable"); err != nil {
			return nil, err
		}
		var err error
		if normalized[i], err = r.normalize(arg); err != nil {
			return nil, err
		}
	}
	return normalized, nil
}

func (r *Reflector) resolve(generic GenericType) (resolvedtype.ResolvedType, error) {
	switch typed := generic.(type) {
	case *classType:
		return r.resolveClass(typed)
	case wildcardType:
		return resolvedtype.Wildcard(), nil
	case *arrayType:
		component, err := r.resolve(typed.component)
		if err != nil {
			return nil, err
		}
		return resolvedtype.ArrayTypeOf(component)
	case *resolvedType:
		return typed.resolved, nil
	case *reflectionType:
		return resolvedtype.ResolveType(typed.declared, typed.context)
	}
	return nil, fmt.Errorf("%w: unsupported generic type %T", ErrGenericType, generic)
}

func (r *Reflector) resolveClass(generic *classType) (resolvedtype.ResolvedType, error) {
	class := generic.class
	if class.IsArray() {
		if len(generic.args) != 0 {
			return nil, fmt.Errorf("%w: array class '%s' takes no type arguments", ErrGenericType, class.Name())
		}
		return resolvedtype.FromArrayClass(class)
	}

	names := resolvedtype.TypeVariableNamesOf(class)
	if len(names) != len(generic.args) {
		variables := make([]string, len(names))
		for i, name := range names {
			variables[i] = name.Name()
		}
		return nil, fmt.Errorf(
			"%w: type '%s' contains the following type variables that need to be filled in in order to create a generic type: [%s]",
			ErrGenericType, class.Name(), strings.Join(variables, ", "))
	}
	if len(names) == 0 {
		return resolvedtype.FromClassWithoutGenerics(class)
	}

	bindings := make(map[resolvedtype.TypeVariableName]resolvedtype.ResolvedType, len(names))
	for i, arg := range generic.args {
		value, err := r.resolve(arg)
		if err != nil {
			return nil, err
		}
		bindings[names[i]] = value
	}
	return resolvedtype.FromClassWithGenerics(class, bindings)
}
