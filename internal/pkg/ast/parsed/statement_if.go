package parsed

import "kronkc/internal/pkg/ast"

// If is `Si cond { ... } [Sinon { ... } | Sinon Si ...]`. Else is nil, a *CompoundStatement
// or a nested *If.
type If struct {
	*nodeBase
	Condition Node
	Then      *CompoundStatement
	Else      Node
}

func NewIf(location ast.Location, condition Node, then *CompoundStatement, otherwise Node) Node {
	return &If{nodeBase: newNodeBase(location), Condition: condition, Then: then, Else: otherwise}
}

func (s *If) clone() Node {
	return NewIf(s.location, Clone(s.Condition), s.Then.cloneCompound(), Clone(s.Else))
}
