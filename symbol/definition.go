package symbol

import (
	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/javatype"
)

// Definition represents the name and type of a single declared member: a field,
// a method, a constructor or one of their parameters
type Definition struct {
	Name string
	// Declared type of a field or parameter, or the return type of a method.
	// Constructors have no type
	Type      *javatype.Type
	Modifiers introspect.Modifier
	// Type parameters declared on this definition (methods/constructors)
	TypeParameters []TypeParam

	// If the definition is a constructor
	Constructor bool
	// Default marks an interface method with a body
	Default bool
	// Synthetic members are generated by the compiler rather than written in source
	Synthetic bool
	// VarArgs marks a trailing `T...` parameter; Type is then the array type
	VarArgs bool
	// If the object is a function, it has parameters
	Parameters []*Definition
}

// IsStatic reports whether the definition carries the static modifier
func (d *Definition) IsStatic() bool {
	return d.Modifiers.IsStatic()
}

// ParameterByName returns a parameter's definition, given its name
func (d *Definition) ParameterByName(name string) *Definition {
	for _, param := range d.Parameters {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// ParameterTypes returns the source text of every parameter type
func (d *Definition) ParameterTypes() []string {
	types := make([]string, len(d.Parameters))
	for ind, param := range d.Parameters {
		types[ind] = param.Type.String()
	}
	return types
}
