package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildrenOf returns every named child of a node, in source order
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// UnnamedChildrenOf returns the anonymous children of a node, such as keywords
// and punctuation
func UnnamedChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.ChildCount())
	children := []*sitter.Node{}
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			children = append(children, child)
		}
	}
	return children
}

// ChildrenOf returns both the named and anonymous children of a node
func ChildrenOf(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.ChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.Child(i))
	}
	return children
}

// FirstNamedChildOfType returns the first named child with the given node type,
// or nil if there is none
func FirstNamedChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for _, child := range NamedChildrenOf(node) {
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}

// AssertTypeIs panics if the node is missing or is not of the expected type.
// This signals a mismatch between the parser and the grammar, not bad input
func AssertTypeIs(node *sitter.Node, expectedType string) {
	if node == nil {
		panic(fmt.Errorf("expected node of type %v, got nil", expectedType))
	}
	if node.Type() != expectedType {
		panic(fmt.Errorf("expected node of type %v, got %v", expectedType, node.Type()))
	}
}
