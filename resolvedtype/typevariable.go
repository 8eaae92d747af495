package resolvedtype

import "github.com/NickyBoy89/genresolve/introspect"

// TypeVariableName identifies a type parameter slot of a class. Two names are
// equal when their strings are, so it can be used directly as a map key
type TypeVariableName struct {
	name string
}

func TypeVariableNameOf(name string) TypeVariableName {
	return TypeVariableName{name: name}
}

func (n TypeVariableName) Name() string {
	return n.name
}

func (n TypeVariableName) String() string {
	return n.name
}

// TypeVariableNamesOf lists the type parameters declared by the class, in
// declaration order
func TypeVariableNamesOf(class introspect.Class) []TypeVariableName {
	variables := class.TypeParameters()
	names := make([]TypeVariableName, len(variables))
	for i, variable := range variables {
		names[i] = TypeVariableNameOf(variable.Name)
	}
	return names
}
