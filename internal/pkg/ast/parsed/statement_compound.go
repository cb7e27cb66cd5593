package parsed

import "kronkc/internal/pkg/ast"

type CompoundStatement struct {
	*nodeBase
	Statements []Node
}

func NewCompoundStatement(location ast.Location, statements []Node) *CompoundStatement {
	return &CompoundStatement{nodeBase: newNodeBase(location), Statements: statements}
}

func (s *CompoundStatement) clone() Node {
	return s.cloneCompound()
}

func (s *CompoundStatement) cloneCompound() *CompoundStatement {
	if s == nil {
		return nil
	}
	return NewCompoundStatement(s.location, cloneAll(s.Statements))
}
