package resolvedtype

import (
	"fmt"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// ResolvedMethod is a declared method with its parameters and return type resolved
type ResolvedMethod struct {
	returnType ResolvedType
	parameters []*ResolvedParameter
	method     *introspect.Method
}

// ResolveMethods resolves the non-synthetic methods the class declares.
// Methods that declare type variables of their own cannot be resolved from the
// class's bindings, and are left out
func ResolveMethods(fullType *ClassType) ([]*ResolvedMethod, error) {
	if err := validate.NotNil(fullType, "fullType"); err != nil {
		return nil, err
	}
	var methods []*ResolvedMethod
	for _, method := range fullType.AssignableType().DeclaredMethods() {
		if method.Synthetic {
			continue
		}
		if len(method.TypeParameters) > 0 {
			log.WithFields(log.Fields{
				"class":  fullType.Description(),
				"method": method.Name,
			}).Debug("Skipping generic method")
			continue
		}
		resolved, err := ResolveMethod(method, fullType)
		if err != nil {
			return nil, err
		}
		methods = append(methods, resolved)
	}
	return slices.Clip(methods), nil
}

func ResolveMethod(method *introspect.Method, fullType *ClassType) (*ResolvedMethod, error) {
	if err := validate.NotNil(method, "method"); err != nil {
		return nil, err
	}
	if err := validate.NotNil(fullType, "fullType"); err != nil {
		return nil, err
	}
	parameters, err := ResolveParameters(&method.Executable, fullType)
	if err != nil {
		return nil, fmt.Errorf("resolving method %s: %w", method.ToGenericString(), err)
	}

	var returnType ResolvedType
	if !isVoid(method.GenericReturnType) {
		returnType, err = ResolveType(method.GenericReturnType, fullType)
		if err != nil {
			return nil, fmt.Errorf("resolving return type of %s: %w", method.ToGenericString(), err)
		}
	}
	return &ResolvedMethod{returnType: returnType, parameters: parameters, method: method}, nil
}

func isVoid(t introspect.Type) bool {
	class, ok := t.(introspect.Class)
	return ok && class.IsPrimitive() && class.Name() == "void"
}

func (m *ResolvedMethod) Name() string {
	return m.method.Name
}

// ReturnType is the resolved return type, or false for void methods
func (m *ResolvedMethod) ReturnType() (ResolvedType, bool) {
	return m.returnType, m.returnType != nil
}

// Parameters returns a copy of the resolved parameters, in declaration order
func (m *ResolvedMethod) Parameters() []*ResolvedParameter {
	return slices.Clone(m.parameters)
}

// ParameterTypes lists the resolved type of every parameter
func (m *ResolvedMethod) ParameterTypes() []ResolvedType {
	types := make([]ResolvedType, len(m.parameters))
	for i, parameter := range m.parameters {
		types[i] = parameter.Type()
	}
	return types
}

func (m *ResolvedMethod) Method() *introspect.Method {
	return m.method
}

func (m *ResolvedMethod) IsPublic() bool {
	return m.method.Modifiers.IsPublic()
}

func (m *ResolvedMethod) IsStatic() bool {
	return m.method.Modifiers.IsStatic()
}

// Describe renders the declared signature, for diagnostics
func (m *ResolvedMethod) Describe() string {
	return m.method.ToGenericString()
}
