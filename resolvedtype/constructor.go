package resolvedtype

import (
	"fmt"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/validate"
	"golang.org/x/exp/slices"
)

// ResolvedConstructor is a declared constructor with its parameters resolved
type ResolvedConstructor struct {
	parameters  []*ResolvedParameter
	constructor *introspect.Constructor
}

// ResolveConstructors resolves the non-synthetic constructors the class declares
func ResolveConstructors(fullType *ClassType) ([]*ResolvedConstructor, error) {
	if err := validate.NotNil(fullType, "fullType"); err != nil {
		return nil, err
	}
	var constructors []*ResolvedConstructor
	for _, constructor := range fullType.AssignableType().DeclaredConstructors() {
		if constructor.Synthetic {
			continue
		}
		resolved, err := ResolveConstructor(constructor, fullType)
		if err != nil {
			return nil, err
		}
		constructors = append(constructors, resolved)
	}
	return slices.Clip(constructors), nil
}

func ResolveConstructor(constructor *introspect.Constructor, fullType *ClassType) (*ResolvedConstructor, error) {
	if err := validate.NotNil(constructor, "constructor"); err != nil {
		return nil, err
	}
	if err := validate.NotNil(fullType, "fullType"); err != nil {
		return nil, err
	}
	parameters, err := ResolveParameters(&constructor.Executable, fullType)
	if err != nil {
		return nil, fmt.Errorf("resolving constructor %s: %w", constructor.ToGenericString(), err)
	}
	return &ResolvedConstructor{parameters: parameters, constructor: constructor}, nil
}

// Parameters returns a copy of the resolved parameters, in declaration order
func (c *ResolvedConstructor) Parameters() []*ResolvedParameter {
	return slices.Clone(c.parameters)
}

func (c *ResolvedConstructor) Constructor() *introspect.Constructor {
	return c.constructor
}

func (c *ResolvedConstructor) IsPublic() bool {
	return c.constructor.Modifiers.IsPublic()
}

// Describe renders the declared signature, for diagnostics
func (c *ResolvedConstructor) Describe() string {
	return c.constructor.ToGenericString()
}
