package parsed

import "kronkc/internal/pkg/ast"

type While struct {
	*nodeBase
	Condition Node
	Body      *CompoundStatement
}

func NewWhile(location ast.Location, condition Node, body *CompoundStatement) Node {
	return &While{nodeBase: newNodeBase(location), Condition: condition, Body: body}
}

func (s *While) clone() Node {
	return NewWhile(s.location, Clone(s.Condition), s.Body.cloneCompound())
}
