package introspect

import "sync"

type primitiveClass struct {
	name       string
	descriptor string
}

var primitives = map[string]*primitiveClass{
	"boolean": {"boolean", "Z"},
	"byte":    {"byte", "B"},
	"char":    {"char", "C"},
	"short":   {"short", "S"},
	"int":     {"int", "I"},
	"long":    {"long", "J"},
	"float":   {"float", "F"},
	"double":  {"double", "D"},
	"void":    {"void", "V"},
}

// Primitive returns the class of a primitive keyword, including `void`
func Primitive(keyword string) (Class, bool) {
	class, ok := primitives[keyword]
	if !ok {
		return nil, false
	}
	return class, true
}

func (p *primitiveClass) TypeName() string   { return p.name }
func (p *primitiveClass) Name() string       { return p.name }
func (p *primitiveClass) SimpleName() string { return p.name }
func (p *primitiveClass) PackageName() string {
	return "java.lang"
}

// Modifiers matches what the JVM reports for primitive classes
func (p *primitiveClass) Modifiers() Modifier {
	return Public | Final | Abstract
}

func (p *primitiveClass) TypeParameters() []*TypeVariable      { return nil }
func (p *primitiveClass) GenericSuperclass() Type              { return nil }
func (p *primitiveClass) GenericInterfaces() []Type            { return nil }
func (p *primitiveClass) IsArray() bool                        { return false }
func (p *primitiveClass) ComponentType() Class                 { return nil }
func (p *primitiveClass) IsPrimitive() bool                    { return true }
func (p *primitiveClass) IsInterface() bool                    { return false }
func (p *primitiveClass) IsAnnotation() bool                   { return false }
func (p *primitiveClass) IsEnum() bool                         { return false }
func (p *primitiveClass) IsAnonymousClass() bool               { return false }
func (p *primitiveClass) IsLocalClass() bool                   { return false }
func (p *primitiveClass) EnclosingClass() Class                { return nil }
func (p *primitiveClass) DeclaredFields() []*Field             { return nil }
func (p *primitiveClass) DeclaredMethods() []*Method           { return nil }
func (p *primitiveClass) DeclaredConstructors() []*Constructor { return nil }

type arrayClass struct {
	component Class
}

var arrayClasses sync.Map

// ArrayOf returns the array class whose elements are of the component class.
// Repeated calls with the same component return the same Class
func ArrayOf(component Class) Class {
	if cached, ok := arrayClasses.Load(component); ok {
		return cached.(Class)
	}
	class, _ := arrayClasses.LoadOrStore(component, &arrayClass{component: component})
	return class.(Class)
}

func descriptorOf(class Class) string {
	if primitive, ok := class.(*primitiveClass); ok {
		return primitive.descriptor
	}
	if class.IsArray() {
		return class.Name()
	}
	return "L" + class.Name() + ";"
}

func (a *arrayClass) TypeName() string   { return a.component.TypeName() + "[]" }
func (a *arrayClass) Name() string       { return "[" + descriptorOf(a.component) }
func (a *arrayClass) SimpleName() string { return a.component.SimpleName() + "[]" }
func (a *arrayClass) PackageName() string {
	return a.component.PackageName()
}

// Modifiers keeps the component's access flags and marks the array final and abstract
func (a *arrayClass) Modifiers() Modifier {
	return a.component.Modifiers()&(Public|Private|Protected) | Final | Abstract
}

func (a *arrayClass) TypeParameters() []*TypeVariable      { return nil }
func (a *arrayClass) GenericSuperclass() Type              { return nil }
func (a *arrayClass) GenericInterfaces() []Type            { return nil }
func (a *arrayClass) IsArray() bool                        { return true }
func (a *arrayClass) ComponentType() Class                 { return a.component }
func (a *arrayClass) IsPrimitive() bool                    { return false }
func (a *arrayClass) IsInterface() bool                    { return false }
func (a *arrayClass) IsAnnotation() bool                   { return false }
func (a *arrayClass) IsEnum() bool                         { return false }
func (a *arrayClass) IsAnonymousClass() bool               { return false }
func (a *arrayClass) IsLocalClass() bool                   { return false }
func (a *arrayClass) EnclosingClass() Class                { return nil }
func (a *arrayClass) DeclaredFields() []*Field             { return nil }
func (a *arrayClass) DeclaredMethods() []*Method           { return nil }
func (a *arrayClass) DeclaredConstructors() []*Constructor { return nil }
