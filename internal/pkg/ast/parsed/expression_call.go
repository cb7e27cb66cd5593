package parsed

import "kronkc/internal/pkg/ast"

// Call invokes a function by its mangled name.
type Call struct {
	*nodeBase
	Callee string
	Args   []Node
}

func NewCall(location ast.Location, callee string, args []Node) Node {
	return &Call{nodeBase: newNodeBase(location), Callee: callee, Args: args}
}

func (e *Call) clone() Node {
	return NewCall(e.location, e.Callee, cloneAll(e.Args))
}
