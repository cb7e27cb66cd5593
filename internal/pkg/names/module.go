package names

import (
	"github.com/llir/llvm/ir"
	"kronkc/internal/pkg/ast/typed"
	"slices"
)

// ModuleAttrs holds everything other modules may need from a compiled (or compiling) module.
// Runtime modules only carry RuntimeModule.
type ModuleAttrs struct {
	ID            string
	File          string
	RuntimeModule string
	IR            *ir.Module

	EntitySignatures map[string][]string
	EntityTypes      map[string]*typed.Entity
	Functions        map[string]*typed.Function

	// Dependencies are the include ids used by this module.
	Dependencies []string
}

func NewModuleAttrs(id, file string) *ModuleAttrs {
	m := ir.NewModule()
	m.SourceFilename = file
	return &ModuleAttrs{
		ID:               id,
		File:             file,
		IR:               m,
		EntitySignatures: map[string][]string{},
		EntityTypes:      map[string]*typed.Entity{},
		Functions:        map[string]*typed.Function{},
	}
}

func NewRuntimeModuleAttrs(id, runtimeModule string) *ModuleAttrs {
	return &ModuleAttrs{ID: id, RuntimeModule: runtimeModule}
}

func (m *ModuleAttrs) IsRuntime() bool {
	return m.RuntimeModule != ""
}

func (m *ModuleAttrs) HasDependency(includeId string) bool {
	return slices.Contains(m.Dependencies, includeId)
}
