package classpath

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/javatype"
	"github.com/NickyBoy89/genresolve/symbol"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// linker resolves the names written in one class's declarations
type linker struct {
	loader *Loader
	class  *sourceClass
	// type variables of the method being linked, if any
	method []*introspect.TypeVariable
}

// link fills in the class's supertypes, type variable bounds and members.
// Callers hold l.mu
func (l *Loader) link(class *sourceClass) {
	lk := &linker{loader: l, class: class}
	scope := class.scope

	for i, param := range scope.TypeParameters {
		class.typeParameters[i].Bounds = lk.bounds(param)
	}

	if scope.Superclass != nil {
		super := lk.typeOf(scope.Superclass)
		if scope.Anonymous && rawClass(super).IsInterface() {
			class.interfaces = append(class.interfaces, super)
			class.superclass = lk.object()
		} else {
			class.superclass = super
		}
	} else if !scope.IsInterfaceLike() && class.Name() != introspect.ObjectClassName {
		class.superclass = lk.object()
	}
	for _, iface := range scope.Interfaces {
		class.interfaces = append(class.interfaces, lk.typeOf(iface))
	}

	for _, def := range scope.Fields {
		class.fields = append(class.fields, &introspect.Field{
			DeclaringClass: class,
			Name:           def.Name,
			Modifiers:      def.Modifiers,
			Synthetic:      def.Synthetic,
			GenericType:    lk.typeOf(def.Type),
		})
	}
	for _, def := range scope.Methods {
		executable := lk.executable(def, def.Name)
		class.methods = append(class.methods, &introspect.Method{
			Executable:        executable,
			GenericReturnType: lk.withMethod(executable.TypeParameters).typeOf(def.Type),
			Default:           def.Default,
		})
	}
	for _, def := range scope.Constructors {
		class.constructors = append(class.constructors, &introspect.Constructor{
			Executable: lk.executable(def, class.Name()),
		})
	}
}

func (lk *linker) withMethod(variables []*introspect.TypeVariable) *linker {
	return &linker{loader: lk.loader, class: lk.class, method: variables}
}

func (lk *linker) executable(def *symbol.Definition, name string) introspect.Executable {
	variables := lk.loader.variablesOf(lk.class, def)
	inner := lk.withMethod(variables)
	for i, param := range def.TypeParameters {
		variables[i].Bounds = inner.bounds(param)
	}

	parameters := make([]*introspect.Parameter, len(def.Parameters))
	for i, param := range def.Parameters {
		parameters[i] = &introspect.Parameter{
			Name:        param.Name,
			Index:       i,
			Modifiers:   param.Modifiers,
			GenericType: inner.typeOf(param.Type),
			VarArgs:     param.VarArgs,
		}
	}
	return introspect.Executable{
		DeclaringClass: lk.class,
		Name:           name,
		Modifiers:      def.Modifiers,
		Synthetic:      def.Synthetic,
		TypeParameters: variables,
		Parameters:     parameters,
	}
}

// bounds links the declared bounds of a type parameter, defaulting to Object
func (lk *linker) bounds(param symbol.TypeParam) []introspect.Type {
	if len(param.Bounds) == 0 {
		return []introspect.Type{lk.object()}
	}
	bounds := make([]introspect.Type, len(param.Bounds))
	for i, bound := range param.Bounds {
		bounds[i] = lk.typeOf(bound)
	}
	return bounds
}

func (lk *linker) object() introspect.Class {
	return lk.classNamed(introspect.ObjectClassName)
}

// typeOf links a syntactic type into a generic type expression
func (lk *linker) typeOf(t *javatype.Type) introspect.Type {
	switch t.Kind {
	case javatype.Primitive, javatype.Void:
		primitive, _ := introspect.Primitive(t.Name)
		return primitive
	case javatype.Array:
		component := lk.typeOf(t.Component)
		if class, ok := component.(introspect.Class); ok {
			return introspect.ArrayOf(class)
		}
		return &introspect.GenericArrayType{Component: component}
	case javatype.Wildcard:
		wildcard := &introspect.WildcardType{Upper: []introspect.Type{lk.object()}}
		if t.Upper != nil {
			wildcard.Upper = []introspect.Type{lk.typeOf(t.Upper)}
		}
		if t.Lower != nil {
			wildcard.Lower = []introspect.Type{lk.typeOf(t.Lower)}
		}
		return wildcard
	}

	if len(t.Args) == 0 && !strings.ContainsAny(t.Name, ".$") {
		if variable := lk.variable(t.Name); variable != nil {
			return variable
		}
	}

	class := lk.classNamed(t.Name)
	if len(t.Args) == 0 {
		return class
	}
	if _, missing := class.(*missingClass); missing {
		return class
	}

	args := make([]introspect.Type, len(t.Args))
	for i, arg := range t.Args {
		args[i] = lk.typeOf(arg)
	}
	if len(args) != len(class.TypeParameters()) {
		log.WithFields(log.Fields{
			"class":    lk.class.Name(),
			"type":     t.String(),
			"expected": len(class.TypeParameters()),
		}).Warn("Wrong number of type arguments, using the raw type")
		return class
	}
	return &introspect.ParameterizedType{Raw: class, Args: args}
}

// variable finds the type variable in scope with the given name: the current
// method's, then the class's own, then those of enclosing instance scopes
func (lk *linker) variable(name string) *introspect.TypeVariable {
	for _, variable := range lk.method {
		if variable.Name == name {
			return variable
		}
	}
	if !slices.ContainsFunc(lk.class.scope.VisibleTypeParameters(), func(param symbol.TypeParam) bool {
		return param.Name == name
	}) {
		return nil
	}
	for class := lk.class; class != nil; class = class.outer {
		for _, variable := range class.typeParameters {
			if variable.Name == name {
				return variable
			}
		}
		scope := class.scope
		if scope.Outer == nil || (scope.Class.Modifiers.IsStatic() && !scope.Local) {
			return nil
		}
		if method := scope.EnclosingMethod; method != nil {
			for _, variable := range lk.loader.variablesOf(class.outer, method) {
				if variable.Name == name {
					return variable
				}
			}
			if method.IsStatic() {
				return nil
			}
		}
	}
	return nil
}

// classNamed resolves a class name as written in source. Names that cannot be
// resolved become missing classes, and are logged once
func (lk *linker) classNamed(name string) introspect.Class {
	if class := lk.resolve(name); class != nil {
		return class
	}
	if missing, ok := lk.loader.missing[name]; ok {
		return missing
	}
	log.WithFields(log.Fields{
		"class": lk.class.Name(),
		"name":  name,
	}).Warn("Unresolved class name")
	missing := &missingClass{name: name}
	lk.loader.missing[name] = missing
	return missing
}

func (lk *linker) resolve(name string) introspect.Class {
	if strings.Contains(name, "$") {
		if class, ok := lk.loader.classes[name]; ok {
			return class
		}
	}

	segments := strings.Split(name, ".")
	if class := lk.resolveSimple(segments[0]); class != nil {
		if member := memberPath(lk.loader, class, segments[1:]); member != nil {
			return member
		}
	}
	// A qualified name: find the longest known package or class prefix
	for i := len(segments); i > 1; i-- {
		if class, ok := lk.loader.canonical[strings.Join(segments[:i], ".")]; ok {
			if member := memberPath(lk.loader, class, segments[i:]); member != nil {
				return member
			}
		}
	}
	return nil
}

func memberPath(loader *Loader, class *sourceClass, path []string) *sourceClass {
	for _, name := range path {
		scope := class.scope.MemberClass(name)
		if scope == nil {
			return nil
		}
		class = loader.byScope[scope]
	}
	return class
}

// resolveSimple resolves an unqualified class name, in the order the Java
// compiler searches scopes
func (lk *linker) resolveSimple(name string) *sourceClass {
	loader := lk.loader
	for class := lk.class; class != nil; class = class.outer {
		if class.scope.Class.Name == name {
			return class
		}
		if member := loader.inheritedMember(class, name, map[*sourceClass]bool{}); member != nil {
			return member
		}
		for _, local := range class.scope.LocalClasses {
			if local.Local && local.Class.Name == name {
				return loader.byScope[local]
			}
		}
	}

	file := lk.class.file
	if imported, ok := file.Imports[name]; ok {
		if class, ok := loader.canonical[imported]; ok {
			return class
		}
	}
	qualified := name
	if file.Package != "" {
		qualified = file.Package + "." + name
	}
	if class, ok := loader.canonical[qualified]; ok {
		return class
	}
	if class, ok := loader.canonical["java.lang."+name]; ok {
		return class
	}
	for _, pkg := range file.WildcardImports {
		if class, ok := loader.canonical[pkg+"."+name]; ok {
			return class
		}
	}
	return nil
}

// inheritedMember finds a member class declared by the class or any of its
// supertypes that are declared in source. Supertypes of the class may not be
// linked yet, so they are resolved from their declarations
func (l *Loader) inheritedMember(class *sourceClass, name string, seen map[*sourceClass]bool) *sourceClass {
	if seen[class] {
		return nil
	}
	seen[class] = true
	if scope := class.scope.MemberClass(name); scope != nil {
		return l.byScope[scope]
	}

	supertypes := append([]*javatype.Type{}, class.scope.Interfaces...)
	if class.scope.Superclass != nil {
		supertypes = append(supertypes, class.scope.Superclass)
	}
	for _, supertype := range supertypes {
		lk := &linker{loader: l, class: class}
		// Resolve against the enclosing scope to avoid looking up the class's own members
		if class.outer != nil {
			lk.class = class.outer
		}
		super := lk.resolveDeclared(supertype.Name)
		if super == nil {
			continue
		}
		if member := l.inheritedMember(super, name, seen); member != nil {
			return member
		}
	}
	return nil
}

// resolveDeclared resolves a supertype name without consulting inherited
// members of the classes already being searched
func (lk *linker) resolveDeclared(name string) *sourceClass {
	if strings.Contains(name, "$") {
		return lk.loader.classes[name]
	}
	segments := strings.Split(name, ".")
	file := lk.class.file
	var class *sourceClass
	if imported, ok := file.Imports[segments[0]]; ok {
		class = lk.loader.canonical[imported]
	}
	if class == nil {
		qualified := segments[0]
		if file.Package != "" {
			qualified = file.Package + "." + segments[0]
		}
		class = lk.loader.canonical[qualified]
	}
	if class == nil {
		class = lk.loader.canonical["java.lang."+segments[0]]
	}
	if class == nil {
		for outer := lk.class; outer != nil && class == nil; outer = outer.outer {
			if outer.scope.Class.Name == segments[0] {
				class = outer
			} else if scope := outer.scope.MemberClass(segments[0]); scope != nil {
				class = lk.loader.byScope[scope]
			}
		}
	}
	if class != nil {
		if member := memberPath(lk.loader, class, segments[1:]); member != nil {
			return member
		}
	}
	return lk.loader.canonical[name]
}

func rawClass(t introspect.Type) introspect.Class {
	switch typed := t.(type) {
	case introspect.Class:
		return typed
	case *introspect.ParameterizedType:
		return typed.Raw
	}
	panic(fmt.Sprintf("unexpected supertype %s", t.TypeName()))
}
