package symbol

import (
	"strconv"
	"strings"

	"github.com/NickyBoy89/genresolve/astutil"
	"github.com/NickyBoy89/genresolve/introspect"
	"github.com/NickyBoy89/genresolve/javatype"
	"github.com/NickyBoy89/genresolve/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

// Pseudo-definitions standing in for initializer blocks when a local class or
// lambda is declared outside of a method
var (
	instanceInitializer = &Definition{Name: "new"}
	staticInitializer   = &Definition{Name: "static", Modifiers: introspect.Static}
)

func extractTypeParameterBounds(param *sitter.Node, source []byte) []*javatype.Type {
	if param == nil {
		return nil
	}

	var bounds []*javatype.Type
	var collectFrom func(n *sitter.Node)
	collectFrom = func(n *sitter.Node) {
		for _, child := range nodeutil.NamedChildrenOf(n) {
			// If the child is a type node at this level, keep it as a whole bound.
			if astutil.IsTypeNode(child) {
				bounds = append(bounds, astutil.ParseType(child, source))
				continue
			}
			// Otherwise recurse; this covers containers like type_bound/type_bounds.
			collectFrom(child)
		}
	}

	for _, child := range nodeutil.NamedChildrenOf(param) {
		if child.Type() == "type_bound" {
			collectFrom(child)
		}
	}
	return bounds
}

func extractTypeParameters(node *sitter.Node, source []byte) []TypeParam {
	if node == nil {
		return nil
	}

	var params []TypeParam
	for _, param := range nodeutil.NamedChildrenOf(node) {
		if param.Type() != "type_parameter" {
			continue
		}
		// Annotations may precede the name
		nameNode := nodeutil.FirstNamedChildOfType(param, "type_identifier")
		if nameNode == nil {
			nameNode = nodeutil.FirstNamedChildOfType(param, "identifier")
		}
		if nameNode == nil {
			continue
		}
		params = append(params, TypeParam{
			Name:   nameNode.Content(source),
			Bounds: extractTypeParameterBounds(param, source),
		})
	}
	return params
}

// parseModifiers reads the modifier keywords of a declaration. The `default`
// keyword of interface methods carries no flag and is reported separately
func parseModifiers(node *sitter.Node, source []byte) (introspect.Modifier, bool) {
	var mods introspect.Modifier
	var isDefault bool
	modifiers := nodeutil.FirstNamedChildOfType(node, "modifiers")
	for _, modifier := range nodeutil.UnnamedChildrenOf(modifiers) {
		if mod, ok := introspect.ModifierOf(modifier.Type()); ok {
			mods |= mod
		} else if modifier.Type() == "default" {
			isDefault = true
		}
	}
	return mods, isDefault
}

func isClassDeclaration(nodeType string) bool {
	switch nodeType {
	case "class_declaration", "interface_declaration", "enum_declaration",
		"annotation_type_declaration", "record_declaration":
		return true
	}
	return false
}

func kindOf(nodeType string) ClassKind {
	switch nodeType {
	case "interface_declaration":
		return KindInterface
	case "enum_declaration":
		return KindEnum
	case "annotation_type_declaration":
		return KindAnnotation
	case "record_declaration":
		return KindRecord
	}
	return KindClass
}

// ParseSymbols generates a symbol table for a single class file.
func ParseSymbols(root *sitter.Node, source []byte) *FileScope {
	var filePackage string

	var topLevelNodes []*sitter.Node

	imports := make(map[string]string)
	var wildcards []string
	for _, node := range nodeutil.NamedChildrenOf(root) {
		switch node.Type() {
		case "package_declaration":
			for _, child := range nodeutil.NamedChildrenOf(node) {
				if child.Type() == "scoped_identifier" || child.Type() == "identifier" {
					filePackage = child.Content(source)
				}
			}
		case "import_declaration":
			var static, onDemand bool
			var imported string
			for _, child := range nodeutil.ChildrenOf(node) {
				switch child.Type() {
				case "static":
					static = true
				case "asterisk":
					onDemand = true
				case "scoped_identifier", "identifier":
					imported = child.Content(source)
				}
			}
			if static {
				// Static imports bring members into scope, not types
				log.WithField("import", imported).Debug("Ignoring static import")
				continue
			}
			if onDemand {
				wildcards = append(wildcards, imported)
				continue
			}
			imports[imported[strings.LastIndex(imported, ".")+1:]] = imported
		default:
			if isClassDeclaration(node.Type()) {
				topLevelNodes = append(topLevelNodes, node)
			}
		}
	}

	classScopes := make([]*ClassScope, 0, len(topLevelNodes))
	for _, decl := range topLevelNodes {
		name := decl.ChildByFieldName("name").Content(source)
		binaryName := name
		if filePackage != "" {
			binaryName = filePackage + "." + name
		}
		classScopes = append(classScopes, parseClassScope(decl, source, filePackage, nil, binaryName))
	}

	return &FileScope{
		Imports:         imports,
		WildcardImports: wildcards,
		Package:         filePackage,
		TopLevelClasses: classScopes,
	}
}

func parseClassScope(root *sitter.Node, source []byte, pkg string, outer *ClassScope, binaryName string) *ClassScope {
	nodeutil.AssertTypeIs(root.ChildByFieldName("name"), "identifier")

	kind := kindOf(root.Type())
	modifiers, _ := parseModifiers(root, source)
	modifiers |= classModifierFor(kind)
	if outer != nil {
		// Nested interfaces, enums, records and annotations are implicitly static
		if kind != KindClass {
			modifiers |= introspect.Static
		}
		if outer.IsInterfaceLike() {
			modifiers |= introspect.Public | introspect.Static
		}
	}

	scope := &ClassScope{
		Class: &Definition{
			Name:      root.ChildByFieldName("name").Content(source),
			Modifiers: modifiers,
		},
		BinaryName:     binaryName,
		Package:        pkg,
		Kind:           kind,
		Outer:          outer,
		TypeParameters: extractTypeParameters(root.ChildByFieldName("type_parameters"), source),
	}

	for _, node := range nodeutil.NamedChildrenOf(root) {
		switch node.Type() {
		case "superclass":
			for _, child := range nodeutil.NamedChildrenOf(node) {
				if astutil.IsTypeNode(child) {
					scope.Superclass = astutil.ParseType(child, source)
				}
			}
		case "super_interfaces", "extends_interfaces":
			for _, child := range nodeutil.NamedChildrenOf(nodeutil.FirstNamedChildOfType(node, "type_list")) {
				if astutil.IsTypeNode(child) {
					scope.Interfaces = append(scope.Interfaces, astutil.ParseType(child, source))
				}
			}
		}
	}

	switch kind {
	case KindEnum:
		scope.Superclass = javatype.Ref("java.lang.Enum", javatype.Ref(binaryName))
	case KindRecord:
		scope.Superclass = javatype.Ref("java.lang.Record")
		scope.RecordComponents = parseParameters(root.ChildByFieldName("parameters"), source)
		for _, component := range scope.RecordComponents {
			scope.Fields = append(scope.Fields, &Definition{
				Name:      component.Name,
				Type:      component.Type,
				Modifiers: introspect.Private | introspect.Final,
			})
		}
	case KindAnnotation:
		scope.Interfaces = append(scope.Interfaces, javatype.Ref("java.lang.annotation.Annotation"))
	}

	parseClassBody(scope, root.ChildByFieldName("body"), source)
	return scope
}

// parseClassBody parses the members declared in a class body, then adds the
// members the compiler declares implicitly
func parseClassBody(scope *ClassScope, body *sitter.Node, source []byte) {
	for _, node := range nodeutil.NamedChildrenOf(body) {
		switch node.Type() {
		case "enum_constant":
			parseEnumConstant(scope, node, source)
		case "enum_body_declarations":
			// Parse the methods and constructors inside the enum
			for _, declNode := range nodeutil.NamedChildrenOf(node) {
				parseClassMember(scope, declNode, source)
			}
		default:
			parseClassMember(scope, node, source)
		}
	}

	addImplicitMembers(scope)
}

func parseEnumConstant(scope *ClassScope, node *sitter.Node, source []byte) {
	constant := &EnumConstant{Name: node.ChildByFieldName("name").Content(source)}
	for _, arg := range nodeutil.NamedChildrenOf(node.ChildByFieldName("arguments")) {
		constant.Arguments = append(constant.Arguments, arg.Content(source))
	}
	scope.EnumConstants = append(scope.EnumConstants, constant)

	scope.Fields = append(scope.Fields, &Definition{
		Name:      constant.Name,
		Type:      javatype.Ref(scope.BinaryName),
		Modifiers: introspect.Public | introspect.Static | introspect.Final,
	})

	if body := node.ChildByFieldName("body"); body != nil {
		// A constant with a body is an anonymous subclass of the enum, which
		// keeps the enum itself from being final
		scope.Class.Modifiers &^= introspect.Final
		anonymous := newAnonymousScope(scope, javatype.Ref(scope.BinaryName), staticInitializer)
		parseClassBody(anonymous, body, source)
	}
}

// parseClassMember parses a single class member (field, method, constructor, or nested class)
func parseClassMember(scope *ClassScope, node *sitter.Node, source []byte) {
	switch node.Type() {
	case "field_declaration", "constant_declaration":
		modifiers, _ := parseModifiers(node, source)
		if scope.IsInterfaceLike() {
			modifiers |= introspect.Public | introspect.Static | introspect.Final
		}

		// The node that the field's type comes from
		fieldType := astutil.ParseType(node.ChildByFieldName("type"), source)

		context := instanceInitializer
		if modifiers.IsStatic() {
			context = staticInitializer
		}

		// A single declaration can declare several fields, e.g. `int a, b[];`
		for _, declarator := range nodeutil.NamedChildrenOf(node) {
			if declarator.Type() != "variable_declarator" {
				continue
			}
			fieldNameNode := declarator.ChildByFieldName("name")
			nodeutil.AssertTypeIs(fieldNameNode, "identifier")

			declaredType := fieldType
			if dims := declarator.ChildByFieldName("dimensions"); dims != nil {
				declaredType = javatype.ArrayOf(fieldType, astutil.CountDimensions(dims, source))
			}

			scope.Fields = append(scope.Fields, &Definition{
				Name:      fieldNameNode.Content(source),
				Type:      declaredType,
				Modifiers: modifiers,
			})

			// Initializers may create anonymous classes or lambdas
			collectBodyDeclarations(scope, declarator, source, context)
		}
	case "method_declaration", "annotation_type_element_declaration":
		declaration, isDefault := parseExecutable(scope, node, source, false)
		declaration.Type = astutil.ParseType(node.ChildByFieldName("type"), source)
		if dims := node.ChildByFieldName("dimensions"); dims != nil {
			declaration.Type = javatype.ArrayOf(declaration.Type, astutil.CountDimensions(dims, source))
		}

		if scope.IsInterfaceLike() && !declaration.Modifiers.IsPrivate() {
			declaration.Modifiers |= introspect.Public
			switch {
			case isDefault:
				declaration.Default = true
			case !declaration.IsStatic() && node.ChildByFieldName("body") == nil:
				declaration.Modifiers |= introspect.Abstract
			}
		}

		scope.Methods = append(scope.Methods, declaration)
	case "constructor_declaration":
		declaration, _ := parseExecutable(scope, node, source, true)
		scope.Constructors = append(scope.Constructors, declaration)
	case "compact_constructor_declaration":
		// The canonical constructor of a record, with its parameters left implicit
		declaration, _ := parseExecutable(scope, node, source, true)
		declaration.Parameters = copyParameters(scope.RecordComponents)
		scope.Constructors = append(scope.Constructors, declaration)
	case "static_initializer":
		collectBodyDeclarations(scope, node, source, staticInitializer)
	case "block":
		collectBodyDeclarations(scope, node, source, instanceInitializer)
	default:
		if isClassDeclaration(node.Type()) {
			name := node.ChildByFieldName("name").Content(source)
			nested := parseClassScope(node, source, scope.Package, scope, scope.BinaryName+"$"+name)
			scope.Subclasses = append(scope.Subclasses, nested)
		}
	}
}

// parseExecutable parses what methods and constructors have in common. The
// returned flag reports whether the `default` keyword was present
func parseExecutable(scope *ClassScope, node *sitter.Node, source []byte, constructor bool) (*Definition, bool) {
	modifiers, isDefault := parseModifiers(node, source)

	nodeutil.AssertTypeIs(node.ChildByFieldName("name"), "identifier")

	declaration := &Definition{
		Name:           node.ChildByFieldName("name").Content(source),
		Modifiers:      modifiers,
		TypeParameters: extractTypeParameters(node.ChildByFieldName("type_parameters"), source),
		Parameters:     parseParameters(node.ChildByFieldName("parameters"), source),
		Constructor:    constructor,
	}

	if body := node.ChildByFieldName("body"); body != nil {
		collectBodyDeclarations(scope, body, source, declaration)
	}
	return declaration, isDefault
}

func parseParameters(node *sitter.Node, source []byte) []*Definition {
	parameters := []*Definition{}
	for _, parameter := range nodeutil.NamedChildrenOf(node) {
		modifiers, _ := parseModifiers(parameter, source)

		switch parameter.Type() {
		case "formal_parameter":
			paramType := astutil.ParseType(parameter.ChildByFieldName("type"), source)
			if dims := parameter.ChildByFieldName("dimensions"); dims != nil {
				paramType = javatype.ArrayOf(paramType, astutil.CountDimensions(dims, source))
			}
			parameters = append(parameters, &Definition{
				Name:      parameter.ChildByFieldName("name").Content(source),
				Type:      paramType,
				Modifiers: modifiers,
			})
		case "spread_parameter":
			// If this is a spread parameter, then it will be in the format:
			// (type) (variable_declarator name: (name))
			var paramName string
			var paramType *javatype.Type
			for _, child := range nodeutil.NamedChildrenOf(parameter) {
				switch {
				case child.Type() == "variable_declarator":
					paramName = child.ChildByFieldName("name").Content(source)
				case astutil.IsTypeNode(child):
					paramType = astutil.ParseType(child, source)
				}
			}
			parameters = append(parameters, &Definition{
				Name:      paramName,
				Type:      javatype.ArrayOf(paramType, 1),
				Modifiers: modifiers,
				VarArgs:   true,
			})
		}
	}
	return parameters
}

func copyParameters(params []*Definition) []*Definition {
	copied := make([]*Definition, len(params))
	for i, param := range params {
		clone := *param
		copied[i] = &clone
	}
	return copied
}

// collectBodyDeclarations walks a method, initializer or expression body for
// the classes and compiler-generated methods it introduces: local classes,
// anonymous classes and lambda bodies
func collectBodyDeclarations(scope *ClassScope, node *sitter.Node, source []byte, context *Definition) {
	for _, child := range nodeutil.NamedChildrenOf(node) {
		switch {
		case isClassDeclaration(child.Type()) || child.Type() == "local_class_declaration":
			name := child.ChildByFieldName("name").Content(source)
			if scope.localCounts == nil {
				scope.localCounts = make(map[string]int)
			}
			scope.localCounts[name]++
			binaryName := scope.BinaryName + "$" + strconv.Itoa(scope.localCounts[name]) + name
			local := parseClassScope(child, source, scope.Package, scope, binaryName)
			local.Local = true
			local.EnclosingMethod = context
			local.Class.Modifiers &^= introspect.Static
			scope.LocalClasses = append(scope.LocalClasses, local)
		case child.Type() == "object_creation_expression":
			body := nodeutil.FirstNamedChildOfType(child, "class_body")
			for _, part := range nodeutil.NamedChildrenOf(child) {
				if part != body {
					collectBodyDeclarations(scope, part, source, context)
				}
			}
			if body != nil {
				anonymous := newAnonymousScope(scope, astutil.ParseType(child.ChildByFieldName("type"), source), context)
				parseClassBody(anonymous, body, source)
			}
		case child.Type() == "lambda_expression":
			enclosing := context.Name
			if context.Constructor {
				enclosing = "new"
			}
			modifiers := introspect.Private | introspect.Static
			scope.Methods = append(scope.Methods, &Definition{
				Name:       "lambda$" + enclosing + "$" + strconv.Itoa(scope.lambdaCount),
				Type:       javatype.VoidType(),
				Modifiers:  modifiers,
				Synthetic:  true,
				Parameters: []*Definition{},
			})
			scope.lambdaCount++
			collectBodyDeclarations(scope, child, source, context)
		default:
			collectBodyDeclarations(scope, child, source, context)
		}
	}
}

// newAnonymousScope registers an anonymous class created inside scope. The
// supertype is either its superclass or the single interface it implements,
// which is only known once names are linked
func newAnonymousScope(scope *ClassScope, supertype *javatype.Type, context *Definition) *ClassScope {
	scope.anonymousCount++
	anonymous := &ClassScope{
		Class:           &Definition{},
		BinaryName:      scope.BinaryName + "$" + strconv.Itoa(scope.anonymousCount),
		Package:         scope.Package,
		Kind:            KindClass,
		Anonymous:       true,
		Outer:           scope,
		EnclosingMethod: context,
		Superclass:      supertype,
	}
	scope.LocalClasses = append(scope.LocalClasses, anonymous)
	return anonymous
}

// addImplicitMembers declares the members that the compiler adds to a class
// without them appearing in source
func addImplicitMembers(scope *ClassScope) {
	// Default (or canonical) constructor
	if len(scope.Constructors) == 0 && !scope.IsInterfaceLike() {
		constructor := &Definition{
			Name:        scope.Class.Name,
			Constructor: true,
			Modifiers:   scope.Class.Modifiers & (introspect.Public | introspect.Protected | introspect.Private),
			Parameters:  []*Definition{},
		}
		switch scope.Kind {
		case KindEnum:
			constructor.Modifiers = introspect.Private
		case KindRecord:
			constructor.Parameters = copyParameters(scope.RecordComponents)
		}
		if scope.Anonymous {
			constructor.Modifiers = 0
		}
		scope.Constructors = append(scope.Constructors, constructor)
	}

	switch scope.Kind {
	case KindEnum:
		self := javatype.Ref(scope.BinaryName)
		scope.Fields = append(scope.Fields, &Definition{
			Name:      "$VALUES",
			Type:      javatype.ArrayOf(self, 1),
			Modifiers: introspect.Private | introspect.Static | introspect.Final,
			Synthetic: true,
		})
		if scope.FindMethodByName("values", []string{}) == nil {
			scope.Methods = append(scope.Methods, &Definition{
				Name:       "values",
				Type:       javatype.ArrayOf(self, 1),
				Modifiers:  introspect.Public | introspect.Static,
				Parameters: []*Definition{},
			})
		}
		if scope.FindMethodByName("valueOf", []string{"String"}) == nil {
			scope.Methods = append(scope.Methods, &Definition{
				Name:      "valueOf",
				Type:      self,
				Modifiers: introspect.Public | introspect.Static,
				Parameters: []*Definition{
					{Name: "name", Type: javatype.Ref("java.lang.String")},
				},
			})
		}
	case KindRecord:
		for _, component := range scope.RecordComponents {
			if scope.FindMethodByName(component.Name, []string{}) != nil {
				continue
			}
			scope.Methods = append(scope.Methods, &Definition{
				Name:       component.Name,
				Type:       component.Type,
				Modifiers:  introspect.Public,
				Parameters: []*Definition{},
			})
		}
	}

	// Inner classes hold a reference to the enclosing instance
	if scope.Outer != nil && scope.Kind == KindClass && !scope.Class.Modifiers.IsStatic() &&
		!scope.Outer.IsInterfaceLike() && (scope.EnclosingMethod == nil || !scope.EnclosingMethod.IsStatic()) {
		scope.Fields = append(scope.Fields, &Definition{
			Name:      "this$0",
			Type:      javatype.Ref(scope.Outer.BinaryName),
			Modifiers: introspect.Final,
			Synthetic: true,
		})
	}
}
