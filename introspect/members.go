package introspect

import "strings"

// Field is a declared field
type Field struct {
	DeclaringClass Class
	Name           string
	Modifiers      Modifier
	// Synthetic fields are emitted by the compiler, such as `this$0`
	Synthetic   bool
	GenericType Type
}

// Parameter is a single declared parameter of a method or constructor
type Parameter struct {
	Name        string
	Index       int
	Modifiers   Modifier
	GenericType Type
	// VarArgs marks the trailing `T...` parameter; its GenericType is the array type
	VarArgs bool
}

// Executable holds what methods and constructors have in common
type Executable struct {
	DeclaringClass Class
	Name           string
	Modifiers      Modifier
	Synthetic      bool
	TypeParameters []*TypeVariable
	Parameters     []*Parameter
}

// IsVarArgs reports whether the last parameter is variable arity
func (e *Executable) IsVarArgs() bool {
	return len(e.Parameters) > 0 && e.Parameters[len(e.Parameters)-1].VarArgs
}

func (e *Executable) genericHeader(sb *strings.Builder, extra string) {
	mods := e.Modifiers.String()
	if extra != "" {
		if mods != "" {
			mods += " "
		}
		mods += extra
	}
	if mods != "" {
		sb.WriteString(mods)
		sb.WriteByte(' ')
	}
	if len(e.TypeParameters) > 0 {
		bounds := make([]string, len(e.TypeParameters))
		for i, variable := range e.TypeParameters {
			bounds[i] = variable.BoundsString()
		}
		sb.WriteString("<" + strings.Join(bounds, ",") + "> ")
	}
}

func (e *Executable) genericParameters(sb *strings.Builder) {
	sb.WriteByte('(')
	for i, param := range e.Parameters {
		if i > 0 {
			sb.WriteByte(',')
		}
		if param.VarArgs {
			sb.WriteString(componentTypeName(param.GenericType) + "...")
		} else {
			sb.WriteString(param.GenericType.TypeName())
		}
	}
	sb.WriteByte(')')
}

// Method is a declared method
type Method struct {
	Executable
	GenericReturnType Type
	// Default marks an interface method with a body
	Default bool
}

// ToGenericString renders the method signature with its generic types, the
// way Java's Method.toGenericString does
func (m *Method) ToGenericString() string {
	var sb strings.Builder
	extra := ""
	if m.Default {
		extra = "default"
	}
	m.genericHeader(&sb, extra)
	sb.WriteString(m.GenericReturnType.TypeName())
	sb.WriteByte(' ')
	sb.WriteString(m.DeclaringClass.TypeName() + "." + m.Name)
	m.genericParameters(&sb)
	return sb.String()
}

// Constructor is a declared constructor
type Constructor struct {
	Executable
}

// ToGenericString renders the constructor signature with its generic types
func (c *Constructor) ToGenericString() string {
	var sb strings.Builder
	c.genericHeader(&sb, "")
	sb.WriteString(c.DeclaringClass.TypeName())
	c.genericParameters(&sb)
	return sb.String()
}

func componentTypeName(t Type) string {
	switch array := t.(type) {
	case *GenericArrayType:
		return array.Component.TypeName()
	case Class:
		if array.IsArray() {
			return array.ComponentType().TypeName()
		}
	}
	return t.TypeName()
}
