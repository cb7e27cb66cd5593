package parsed

import (
	"kronkc/internal/pkg/ast"
	"slices"
)

type Prototype struct {
	*nodeBase
	Name       string
	Symbol     string
	ParamNames []string
	ParamTypes []TypeId
	ReturnType TypeId
}

func NewPrototype(
	location ast.Location, name, symbol string, paramNames []string, paramTypes []TypeId, returnType TypeId,
) *Prototype {
	return &Prototype{
		nodeBase:   newNodeBase(location),
		Name:       name,
		Symbol:     symbol,
		ParamNames: paramNames,
		ParamTypes: paramTypes,
		ReturnType: returnType,
	}
}

func (s *Prototype) clone() Node {
	return s.cloneProto()
}

func (s *Prototype) cloneProto() *Prototype {
	return NewPrototype(
		s.location, s.Name, s.Symbol, slices.Clone(s.ParamNames), slices.Clone(s.ParamTypes), s.ReturnType)
}

type FunctionDefinition struct {
	*nodeBase
	Prototype *Prototype
	Body      *CompoundStatement
}

func NewFunctionDefinition(location ast.Location, prototype *Prototype, body *CompoundStatement) Node {
	return &FunctionDefinition{nodeBase: newNodeBase(location), Prototype: prototype, Body: body}
}

func (s *FunctionDefinition) clone() Node {
	return NewFunctionDefinition(s.location, s.Prototype.cloneProto(), s.Body.cloneCompound())
}

type Return struct {
	*nodeBase
	Value Node
}

func NewReturn(location ast.Location, value Node) Node {
	return &Return{nodeBase: newNodeBase(location), Value: value}
}

func (s *Return) clone() Node {
	return NewReturn(s.location, Clone(s.Value))
}
