package parsed

import (
	"kronkc/internal/pkg/ast"
	"slices"
)

// Include is either `inclu a.b.c [as x]` (Path set) or `inclu :rt [as x]` (RuntimeModule set).
type Include struct {
	*nodeBase
	Path          []string
	RuntimeModule string
	Alias         string
}

func NewInclude(location ast.Location, path []string, runtimeModule string, alias string) Node {
	return &Include{
		nodeBase:      newNodeBase(location),
		Path:          path,
		RuntimeModule: runtimeModule,
		Alias:         alias,
	}
}

func (s *Include) clone() Node {
	return NewInclude(s.location, slices.Clone(s.Path), s.RuntimeModule, s.Alias)
}

// IncludeId is the name the including module uses to refer to the included one.
func (s *Include) IncludeId() string {
	if s.Alias != "" {
		return s.Alias
	}
	if s.RuntimeModule != "" {
		return s.RuntimeModule
	}
	return s.Path[len(s.Path)-1]
}
