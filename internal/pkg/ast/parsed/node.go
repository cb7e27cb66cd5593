package parsed

import "kronkc/internal/pkg/ast"

// Node is one of the closed set of kronk syntax tree variants. Every node owns its children.
type Node interface {
	_node()
	Location() ast.Location
	clone() Node
}

type nodeBase struct {
	location ast.Location
}

func newNodeBase(location ast.Location) *nodeBase {
	return &nodeBase{location: location}
}

func (*nodeBase) _node() {}

func (n *nodeBase) Location() ast.Location {
	return n.location
}

// Clone returns a deep copy of n that shares no node with it. A nil node clones to nil.
func Clone(n Node) Node {
	if n == nil {
		return nil
	}
	return n.clone()
}

func cloneAll(xs []Node) []Node {
	if xs == nil {
		return nil
	}
	result := make([]Node, len(xs))
	for i, x := range xs {
		result[i] = Clone(x)
	}
	return result
}
