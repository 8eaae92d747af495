package symbol

import (
	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/javatype"
)

// ClassKind is the kind of type declaration a class scope was parsed from
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnum
	KindAnnotation
	KindRecord
)

// EnumConstant represents a single enum constant with its name and optional arguments
type EnumConstant struct {
	// Name is the constant's identifier (e.g., "NORTH", "PENDING")
	Name string
	// Arguments are the literal values passed to the enum constructor
	// For example, in PENDING("pending", 1), Arguments = ["\"pending\"", "1"]
	Arguments []string
}

// ClassScope represents a single defined class, and the declarations in it
type ClassScope struct {
	// The definition for the class itself; anonymous classes have an empty name
	Class *Definition
	// BinaryName is the fully qualified name with `$` separating nesting levels
	BinaryName string
	Package    string
	Kind       ClassKind
	// Local classes are declared inside a method or initializer body
	Local     bool
	Anonymous bool
	// The lexically enclosing class, nil for top-level classes
	Outer *ClassScope
	// EnclosingMethod is set for local and anonymous classes declared in a method
	EnclosingMethod *Definition

	Superclass *javatype.Type
	Interfaces []*javatype.Type

	// Every member class that is nested within the class
	Subclasses []*ClassScope
	// Local and anonymous classes declared in method bodies
	LocalClasses []*ClassScope

	// Any normal and static fields associated with the class
	Fields       []*Definition
	Methods      []*Definition
	Constructors []*Definition

	// Enum constants, in declaration order (only populated for enums)
	EnumConstants []*EnumConstant
	// RecordComponents are the components of a record header, in order
	RecordComponents []*Definition
	// Type parameters declared by this class itself (e.g. ["T", "U"] for class Foo<T, U>)
	TypeParameters []TypeParam

	anonymousCount int
	lambdaCount    int
	localCounts    map[string]int
}

// IsTypeParameter checks if a given name is a type parameter of this class
func (cs *ClassScope) IsTypeParameter(name string) bool {
	for _, tp := range cs.TypeParameters {
		if tp.Name == name {
			return true
		}
	}
	return false
}

// IsStatic reports whether the class is a static nested class, or a top-level class
func (cs *ClassScope) IsStatic() bool {
	return cs.Outer == nil || cs.Class.Modifiers.IsStatic()
}

// VisibleTypeParameters lists every type parameter that can be referenced from
// inside the class body: its own, plus those of enclosing instance scopes.
// Static nested classes cannot see the type parameters of their outer classes
func (cs *ClassScope) VisibleTypeParameters() []TypeParam {
	if cs.Outer == nil || (cs.Class.Modifiers.IsStatic() && !cs.Local) {
		return append([]TypeParam{}, cs.TypeParameters...)
	}
	outer := cs.Outer.VisibleTypeParameters()
	if cs.EnclosingMethod != nil {
		if cs.EnclosingMethod.IsStatic() {
			outer = nil
		}
		outer = MergeTypeParams(outer, cs.EnclosingMethod.TypeParameters)
	}
	return MergeTypeParams(outer, cs.TypeParameters)
}

// IsInterfaceLike reports whether members declared in the class take the
// implicit modifiers of interface members
func (cs *ClassScope) IsInterfaceLike() bool {
	return cs.Kind == KindInterface || cs.Kind == KindAnnotation
}

// FindMethod searches through the immediate class's methods find a specific method
func (cs *ClassScope) FindMethod() Finder {
	cm := definitionFinder(cs.Methods)
	return &cm
}

// FindField searches through the immediate class's fields to find a specific field
func (cs *ClassScope) FindField() Finder {
	cf := definitionFinder(cs.Fields)
	return &cf
}

// FindConstructor searches through the immediate class's constructors
func (cs *ClassScope) FindConstructor() Finder {
	cc := definitionFinder(cs.Constructors)
	return &cc
}

type definitionFinder []*Definition

func (df *definitionFinder) By(criteria func(d *Definition) bool) []*Definition {
	results := []*Definition{}
	for _, def := range *df {
		if criteria(def) {
			results = append(results, def)
		}
	}
	return results
}

func (df *definitionFinder) ByName(name string) []*Definition {
	return df.By(func(d *Definition) bool {
		return d.Name == name
	})
}

// FindMethodByName searches for a given method by its name.
// If some parameter types are specified as non-nil, only a method whose
// parameter types match them exactly is returned
func (cs *ClassScope) FindMethodByName(name string, parameterTypes []string) *Definition {
	for _, method := range cs.Methods {
		if method.Name != name {
			continue
		}
		// If no parameters were specified, then return the first match
		if parameterTypes == nil {
			return method
		}
		if len(method.Parameters) != len(parameterTypes) {
			continue
		}
		matches := true
		for index, declared := range method.ParameterTypes() {
			if declared != parameterTypes[index] {
				matches = false
				break
			}
		}
		if matches {
			return method
		}
	}

	// Not found
	return nil
}

// FindClassScope searches the class and its nested classes for the scope with
// the given simple name
func (cs *ClassScope) FindClassScope(name string) *ClassScope {
	if cs.Class.Name == name {
		return cs
	}
	for _, subclass := range cs.Subclasses {
		if scope := subclass.FindClassScope(name); scope != nil {
			return scope
		}
	}
	return nil
}

// MemberClass returns the directly nested member class with the given simple name
func (cs *ClassScope) MemberClass(name string) *ClassScope {
	for _, subclass := range cs.Subclasses {
		if subclass.Class.Name == name {
			return subclass
		}
	}
	return nil
}

// FindFieldByName searches for a field by its name, and returns its definition
// or nil if none was found
func (cs *ClassScope) FindFieldByName(name string) *Definition {
	for _, field := range cs.Fields {
		if field.Name == name {
			return field
		}
	}
	return nil
}

// AllClasses returns the class and every class declared within it, member,
// local and anonymous, in declaration order
func (cs *ClassScope) AllClasses() []*ClassScope {
	all := []*ClassScope{cs}
	for _, subclass := range cs.Subclasses {
		all = append(all, subclass.AllClasses()...)
	}
	for _, local := range cs.LocalClasses {
		all = append(all, local.AllClasses()...)
	}
	return all
}

// FindEnumConstant returns the EnumConstant with the given name, or nil if not found
func (cs *ClassScope) FindEnumConstant(name string) *EnumConstant {
	for _, ec := range cs.EnumConstants {
		if ec.Name == name {
			return ec
		}
	}
	return nil
}

// Finder represents an object that can search through its contents for a given
// list of definitions that match a certian criteria
type Finder interface {
	By(criteria func(d *Definition) bool) []*Definition
	ByName(name string) []*Definition
}

func classModifierFor(kind ClassKind) introspect.Modifier {
	switch kind {
	case KindInterface, KindAnnotation:
		return introspect.Interface | introspect.Abstract
	case KindEnum, KindRecord:
		return introspect.Final
	}
	return 0
}
