package parsed

import "kronkc/internal/pkg/ast"

type BooleanLiteral struct {
	*nodeBase
	Value bool
}

func NewBooleanLiteral(location ast.Location, value bool) Node {
	return &BooleanLiteral{nodeBase: newNodeBase(location), Value: value}
}

func (e *BooleanLiteral) clone() Node {
	return NewBooleanLiteral(e.location, e.Value)
}

type NumericLiteral struct {
	*nodeBase
	Value float64
}

func NewNumericLiteral(location ast.Location, value float64) Node {
	return &NumericLiteral{nodeBase: newNodeBase(location), Value: value}
}

func (e *NumericLiteral) clone() Node {
	return NewNumericLiteral(e.location, e.Value)
}

type StringLiteral struct {
	*nodeBase
	Value string
}

func NewStringLiteral(location ast.Location, value string) Node {
	return &StringLiteral{nodeBase: newNodeBase(location), Value: value}
}

func (e *StringLiteral) clone() Node {
	return NewStringLiteral(e.location, e.Value)
}
