package resolvedtype

import (
	"fmt"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
)

// ResolvedParameter is a declared parameter with its resolved type
type ResolvedParameter struct {
	resolved  ResolvedType
	parameter *introspect.Parameter
}

// ResolveParameters resolves every parameter of a method or constructor, in order
func ResolveParameters(executable *introspect.Executable, declaringType *ClassType) ([]*ResolvedParameter, error) {
	if err := validate.NotNil(executable, "executable"); err != nil {
		return nil, err
	}
	parameters := make([]*ResolvedParameter, len(executable.Parameters))
	for i, parameter := range executable.Parameters {
		resolved, err := ResolveParameter(declaringType, parameter)
		if err != nil {
			return nil, err
		}
		parameters[i] = resolved
	}
	return parameters, nil
}

func ResolveParameter(declaringType *ClassType, parameter *introspect.Parameter) (*ResolvedParameter, error) {
	if err := validate.NotNil(declaringType, "declaringType"); err != nil {
		return nil, err
	}
	if err := validate.NotNil(parameter, "parameter"); err != nil {
		return nil, err
	}
	resolved, err := ResolveType(parameter.GenericType, declaringType)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", parameter.Name, err)
	}
	return &ResolvedParameter{resolved: resolved, parameter: parameter}, nil
}

func (p *ResolvedParameter) Type() ResolvedType {
	return p.resolved
}

// Name is the declared name of the parameter
func (p *ResolvedParameter) Name() string {
	return p.parameter.Name
}

func (p *ResolvedParameter) Parameter() *introspect.Parameter {
	return p.parameter
}
