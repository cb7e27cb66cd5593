package parsed

import "kronkc/internal/pkg/ast"

type Identifier struct {
	*nodeBase
	Name string
}

func NewIdentifier(location ast.Location, name string) Node {
	return &Identifier{nodeBase: newNodeBase(location), Name: name}
}

func (e *Identifier) clone() Node {
	return NewIdentifier(e.location, e.Name)
}
