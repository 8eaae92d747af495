package classpath

import (
	"strings"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/symbol"
)

// sourceClass is a class declared in Java source, linked against the rest of
// the class path
type sourceClass struct {
	scope *symbol.ClassScope
	file  *symbol.FileScope
	outer *sourceClass

	typeParameters []*introspect.TypeVariable
	superclass     introspect.Type
	interfaces     []introspect.Type

	fields       []*introspect.Field
	methods      []*introspect.Method
	constructors []*introspect.Constructor
}

func (c *sourceClass) TypeName() string { return c.scope.BinaryName }
func (c *sourceClass) Name() string     { return c.scope.BinaryName }
func (c *sourceClass) SimpleName() string {
	return c.scope.Class.Name
}
func (c *sourceClass) PackageName() string { return c.scope.Package }

func (c *sourceClass) Modifiers() introspect.Modifier {
	return c.scope.Class.Modifiers
}

func (c *sourceClass) TypeParameters() []*introspect.TypeVariable {
	return c.typeParameters
}

func (c *sourceClass) GenericSuperclass() introspect.Type {
	return c.superclass
}

func (c *sourceClass) GenericInterfaces() []introspect.Type {
	return c.interfaces
}

func (c *sourceClass) IsArray() bool                    { return false }
func (c *sourceClass) ComponentType() introspect.Class { return nil }
func (c *sourceClass) IsPrimitive() bool                { return false }

func (c *sourceClass) IsInterface() bool {
	return c.scope.IsInterfaceLike()
}

func (c *sourceClass) IsAnnotation() bool {
	return c.scope.Kind == symbol.KindAnnotation
}

func (c *sourceClass) IsEnum() bool {
	return c.scope.Kind == symbol.KindEnum
}

func (c *sourceClass) IsAnonymousClass() bool { return c.scope.Anonymous }
func (c *sourceClass) IsLocalClass() bool     { return c.scope.Local }

func (c *sourceClass) EnclosingClass() introspect.Class {
	if c.outer == nil {
		return nil
	}
	return c.outer
}

func (c *sourceClass) DeclaredFields() []*introspect.Field {
	return c.fields
}

func (c *sourceClass) DeclaredMethods() []*introspect.Method {
	return c.methods
}

func (c *sourceClass) DeclaredConstructors() []*introspect.Constructor {
	return c.constructors
}

// canonicalName is the dotted source name, or empty for local and anonymous
// classes (and classes nested in them)
func (c *sourceClass) canonicalName() string {
	if c.scope.Local || c.scope.Anonymous {
		return ""
	}
	if c.outer == nil {
		if c.scope.Package == "" {
			return c.scope.Class.Name
		}
		return c.scope.Package + "." + c.scope.Class.Name
	}
	outer := c.outer.canonicalName()
	if outer == "" {
		return ""
	}
	return outer + "." + c.scope.Class.Name
}

// missingClass stands in for a class that is referenced but was never loaded.
// It has no members and no type parameters
type missingClass struct {
	name string
}

func (m *missingClass) TypeName() string { return m.name }
func (m *missingClass) Name() string     { return m.name }
func (m *missingClass) SimpleName() string {
	return m.name[strings.LastIndexAny(m.name, ".$")+1:]
}
func (m *missingClass) PackageName() string {
	if index := strings.LastIndexByte(m.name, '.'); index >= 0 {
		return m.name[:index]
	}
	return ""
}
func (m *missingClass) Modifiers() introspect.Modifier                  { return introspect.Public }
func (m *missingClass) TypeParameters() []*introspect.TypeVariable      { return nil }
func (m *missingClass) GenericSuperclass() introspect.Type              { return nil }
func (m *missingClass) GenericInterfaces() []introspect.Type            { return nil }
func (m *missingClass) IsArray() bool                                   { return false }
func (m *missingClass) ComponentType() introspect.Class                 { return nil }
func (m *missingClass) IsPrimitive() bool                               { return false }
func (m *missingClass) IsInterface() bool                               { return false }
func (m *missingClass) IsAnnotation() bool                              { return false }
func (m *missingClass) IsEnum() bool                                    { return false }
func (m *missingClass) IsAnonymousClass() bool                          { return false }
func (m *missingClass) IsLocalClass() bool                              { return false }
func (m *missingClass) EnclosingClass() introspect.Class                { return nil }
func (m *missingClass) DeclaredFields() []*introspect.Field             { return nil }
func (m *missingClass) DeclaredMethods() []*introspect.Method           { return nil }
func (m *missingClass) DeclaredConstructors() []*introspect.Constructor { return nil }
