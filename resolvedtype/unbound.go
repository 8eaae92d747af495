package resolvedtype

import "github.com/NickyBoy89/genresolve/introspect"

// UnboundType stands in for a declared type variable that a ClassType has no
// binding for. It is only produced by ClassType.TypeParameters
type UnboundType struct {
	variable TypeVariableName
}

// Variable is the name of the missing binding
func (u *UnboundType) Variable() TypeVariableName {
	return u.variable
}

func (u *UnboundType) Description() string       { return u.variable.Name() }
func (u *UnboundType) SimpleDescription() string { return u.variable.Name() }

func (u *UnboundType) IsPublic() bool                   { return false }
func (u *UnboundType) IsAbstract() bool                 { return false }
func (u *UnboundType) IsInterface() bool                { return false }
func (u *UnboundType) IsAnonymousClass() bool           { return false }
func (u *UnboundType) IsInnerClass() bool               { return false }
func (u *UnboundType) IsLocalClass() bool               { return false }
func (u *UnboundType) IsStatic() bool                   { return false }
func (u *UnboundType) IsAnnotation() bool               { return false }
func (u *UnboundType) IsWildcard() bool                 { return false }
func (u *UnboundType) AssignableType() introspect.Class { return nil }
func (u *UnboundType) TypeParameters() []ResolvedType   { return nil }
