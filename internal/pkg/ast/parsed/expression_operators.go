package parsed

import "kronkc/internal/pkg/ast"

type BinaryExpr struct {
	*nodeBase
	Op          string
	Left, Right Node
}

func NewBinaryExpr(location ast.Location, op string, left, right Node) Node {
	return &BinaryExpr{nodeBase: newNodeBase(location), Op: op, Left: left, Right: right}
}

func (e *BinaryExpr) clone() Node {
	return NewBinaryExpr(e.location, e.Op, Clone(e.Left), Clone(e.Right))
}

type UnaryExpr struct {
	*nodeBase
	Op      string
	Operand Node
}

func NewUnaryExpr(location ast.Location, op string, operand Node) Node {
	return &UnaryExpr{nodeBase: newNodeBase(location), Op: op, Operand: operand}
}

func (e *UnaryExpr) clone() Node {
	return NewUnaryExpr(e.location, e.Op, Clone(e.Operand))
}

type Assignment struct {
	*nodeBase
	Target Node
	Value  Node
}

func NewAssignment(location ast.Location, target, value Node) Node {
	return &Assignment{nodeBase: newNodeBase(location), Target: target, Value: value}
}

func (e *Assignment) clone() Node {
	return NewAssignment(e.location, Clone(e.Target), Clone(e.Value))
}
