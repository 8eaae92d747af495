package astutil

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/genresolve/javatype"
	"github.com/NickyBoy89/genresolve/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
)

// IsTypeNode reports whether a tree-sitter node is one of the Java type nodes
// that ParseType understands
func IsTypeNode(node *sitter.Node) bool {
	if node == nil {
		return false
	}
	switch node.Type() {
	case "integral_type", "floating_point_type", "void_type", "boolean_type",
		"generic_type", "array_type", "type_identifier", "scoped_type_identifier",
		"annotated_type":
		return true
	default:
		return false
	}
}

// ParseType parses a Java type node into its unlinked syntax tree
func ParseType(node *sitter.Node, source []byte) *javatype.Type {
	switch node.Type() {
	case "integral_type":
		switch node.Child(0).Type() {
		case "int", "short", "long", "char", "byte":
			return javatype.PrimitiveOf(node.Child(0).Type())
		}

		panic(fmt.Errorf("Unknown integral type: %v", node.Child(0).Type()))
	case "floating_point_type": // Can be either `float` or `double`
		switch node.Child(0).Type() {
		case "float", "double":
			return javatype.PrimitiveOf(node.Child(0).Type())
		}

		panic(fmt.Errorf("Unknown float type: %v", node.Child(0).Type()))
	case "void_type":
		return javatype.VoidType()
	case "boolean_type":
		return javatype.PrimitiveOf("boolean")
	case "generic_type":
		// A generic type is any type that is of the form GenericType<T>
		base := ParseType(node.NamedChild(0), source)

		for _, child := range nodeutil.NamedChildrenOf(node) {
			if child.Type() == "type_arguments" {
				for _, argNode := range nodeutil.NamedChildrenOf(child) {
					base.Args = append(base.Args, parseTypeArgument(argNode, source))
				}
				break
			}
		}

		return base
	case "array_type":
		element := node.ChildByFieldName("element")
		if element == nil {
			element = node.NamedChild(0)
		}
		dimensions := 1
		if dims := node.ChildByFieldName("dimensions"); dims != nil {
			dimensions = CountDimensions(dims, source)
		}
		return javatype.ArrayOf(ParseType(element, source), dimensions)
	case "type_identifier": // Any reference type
		return javatype.Ref(node.Content(source))
	case "scoped_type_identifier":
		// This contains a reference to the type of a nested class
		// Ex: LinkedList.Node
		name := node.Content(source)
		if strings.ContainsRune(name, '<') {
			// Ex: Outer<String>.Inner, the owner's arguments are not kept
			log.WithField("type", name).Warn("Dropping type arguments of a qualifying type")
			name = stripTypeArguments(name)
		}
		return javatype.Ref(strings.Join(strings.Fields(name), ""))
	case "annotated_type":
		// Annotations on a type use do not change the type itself
		for _, child := range nodeutil.NamedChildrenOf(node) {
			if IsTypeNode(child) {
				return ParseType(child, source)
			}
		}
	}
	panic("Unknown type to convert: " + node.Type())
}

func parseTypeArgument(node *sitter.Node, source []byte) *javatype.Type {
	if node.Type() != "wildcard" {
		return ParseType(node, source)
	}

	wildcard := &javatype.Type{Kind: javatype.Wildcard, Name: "?"}
	// The bound is preceded by either an `extends` or a `super` keyword
	var lower bool
	for _, child := range nodeutil.ChildrenOf(node) {
		switch {
		case child.Type() == "extends":
			lower = false
		case child.Type() == "super":
			lower = true
		case IsTypeNode(child):
			if lower {
				wildcard.Lower = ParseType(child, source)
			} else {
				wildcard.Upper = ParseType(child, source)
			}
		}
	}
	return wildcard
}

// CountDimensions counts the `[]` pairs in a dimensions node
func CountDimensions(dims *sitter.Node, source []byte) int {
	return strings.Count(dims.Content(source), "[")
}

func stripTypeArguments(name string) string {
	var out strings.Builder
	depth := 0
	for _, ch := range name {
		switch ch {
		case '<':
			depth++
		case '>':
			depth--
		default:
			if depth == 0 {
				out.WriteRune(ch)
			}
		}
	}
	return out.String()
}
