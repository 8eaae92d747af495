package resolvedtype

import (
	"strings"

	"github.com/NickyBoy89/genresolve/introspect"
)

// WildcardType is an unresolved `?` type argument. Its bounds are kept as
// declared and only used for its description
type WildcardType struct {
	upper []introspect.Type
	lower []introspect.Type
}

// Wildcard returns the unbounded wildcard `?`
func Wildcard() *WildcardType {
	return &WildcardType{}
}

func wildcardOf(declared *introspect.WildcardType) *WildcardType {
	return &WildcardType{upper: declared.Upper, lower: declared.Lower}
}

func (w *WildcardType) Description() string {
	return w.describe(func(t introspect.Type) string { return t.TypeName() })
}

func (w *WildcardType) SimpleDescription() string {
	return w.describe(func(t introspect.Type) string {
		name := t.TypeName()
		if class, ok := t.(introspect.Class); ok {
			name = class.SimpleName()
		}
		return name
	})
}

func (w *WildcardType) describe(name func(introspect.Type) string) string {
	bound := func(types []introspect.Type) string {
		names := make([]string, len(types))
		for i, t := range types {
			names[i] = name(t)
		}
		return strings.Join(names, " & ")
	}
	if len(w.lower) > 0 {
		return "? super " + bound(w.lower)
	}
	if len(w.upper) == 0 || (len(w.upper) == 1 && isObject(w.upper[0])) {
		return "?"
	}
	return "? extends " + bound(w.upper)
}

func isObject(t introspect.Type) bool {
	class, ok := t.(introspect.Class)
	return ok && class.Name() == introspect.ObjectClassName
}

func (w *WildcardType) IsPublic() bool                   { return false }
func (w *WildcardType) IsAbstract() bool                 { return false }
func (w *WildcardType) IsInterface() bool                { return false }
func (w *WildcardType) IsAnonymousClass() bool           { return false }
func (w *WildcardType) IsInnerClass() bool               { return false }
func (w *WildcardType) IsLocalClass() bool               { return false }
func (w *WildcardType) IsStatic() bool                   { return false }
func (w *WildcardType) IsAnnotation() bool               { return false }
func (w *WildcardType) IsWildcard() bool                 { return true }
func (w *WildcardType) AssignableType() introspect.Class { return nil }
func (w *WildcardType) TypeParameters() []ResolvedType   { return nil }
