package parsed

import "kronkc/internal/pkg/ast"

type ListLiteral struct {
	*nodeBase
	Elements []Node
}

func NewListLiteral(location ast.Location, elements []Node) Node {
	return &ListLiteral{nodeBase: newNodeBase(location), Elements: elements}
}

func (e *ListLiteral) clone() Node {
	return NewListLiteral(e.location, cloneAll(e.Elements))
}

type ListIndex struct {
	*nodeBase
	List  Node
	Index Node
}

func NewListIndex(location ast.Location, list, index Node) Node {
	return &ListIndex{nodeBase: newNodeBase(location), List: list, Index: index}
}

func (e *ListIndex) clone() Node {
	return NewListIndex(e.location, Clone(e.List), Clone(e.Index))
}

// ListSlice is `list[start:end]`; a nil bound means the start or the end of the list.
type ListSlice struct {
	*nodeBase
	List  Node
	Start Node
	End   Node
}

func NewListSlice(location ast.Location, list, start, end Node) Node {
	return &ListSlice{nodeBase: newNodeBase(location), List: list, Start: start, End: end}
}

func (e *ListSlice) clone() Node {
	return NewListSlice(e.location, Clone(e.List), Clone(e.Start), Clone(e.End))
}
