package parsed

import "kronkc/internal/pkg/ast"

// Declaration is `soit name: Type`.
type Declaration struct {
	*nodeBase
	Name string
	Type TypeId
}

func NewDeclaration(location ast.Location, name string, typeId TypeId) Node {
	return &Declaration{nodeBase: newNodeBase(location), Name: name, Type: typeId}
}

func (s *Declaration) clone() Node {
	return NewDeclaration(s.location, s.Name, s.Type)
}

// InitDeclaration is `soit name = value`.
type InitDeclaration struct {
	*nodeBase
	Name  string
	Value Node
}

func NewInitDeclaration(location ast.Location, name string, value Node) Node {
	return &InitDeclaration{nodeBase: newNodeBase(location), Name: name, Value: value}
}

func (s *InitDeclaration) clone() Node {
	return NewInitDeclaration(s.location, s.Name, Clone(s.Value))
}
