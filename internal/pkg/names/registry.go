package names

import (
	"fmt"
	"kronkc/internal/pkg/ast/typed"
	"kronkc/internal/pkg/common"
	"slices"
)

// Registry is the compilation-wide view of modules. A module compiled under one include id and
// included again under another is known by its first (primordial) id.
type Registry struct {
	modules    map[string]*ModuleAttrs
	duplicates map[string]string
	files      map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		modules:    map[string]*ModuleAttrs{},
		duplicates: map[string]string{},
		files:      map[string]string{},
	}
}

func (r *Registry) Register(m *ModuleAttrs) {
	r.modules[m.ID] = m
}

func (r *Registry) Module(id string) (*ModuleAttrs, bool) {
	m, ok := r.modules[r.Primordial(id)]
	return m, ok
}

// Modules returns every registered module sorted by id.
func (r *Registry) Modules() []*ModuleAttrs {
	result := make([]*ModuleAttrs, 0, len(r.modules))
	for _, id := range common.SortedKeys(r.modules) {
		result = append(result, r.modules[id])
	}
	return result
}

// BindFile associates path with id unless path is already bound, in which case the existing id
// is returned with false.
func (r *Registry) BindFile(path, id string) (string, bool) {
	if existing, ok := r.files[path]; ok {
		return existing, false
	}
	r.files[path] = id
	return id, true
}

func (r *Registry) ModuleFile(id string) (string, bool) {
	for path, bound := range r.files {
		if bound == id {
			return path, true
		}
	}
	return "", false
}

func (r *Registry) MarkDuplicate(id, primordial string) {
	r.duplicates[id] = r.Primordial(primordial)
}

func (r *Registry) Primordial(id string) string {
	for {
		next, ok := r.duplicates[id]
		if !ok {
			return id
		}
		id = next
	}
}

// Canonical rewrites a mangled name so that it refers to the primordial module id.
func (r *Registry) Canonical(mangled string) string {
	d, err := Demangle(mangled)
	if err != nil {
		return mangled
	}
	primordial := r.Primordial(d.Module)
	if primordial == d.Module {
		return mangled
	}
	return Mangle(d.Kind, primordial, d.Symbol)
}

func (r *Registry) owner(current *ModuleAttrs, mangled string) (*ModuleAttrs, Demangled, bool) {
	d, err := Demangle(mangled)
	if err != nil {
		return nil, Demangled{}, false
	}
	if d.Module == current.ID {
		return current, d, true
	}
	m, ok := r.Module(d.Module)
	return m, d, ok
}

func (r *Registry) EntityType(current *ModuleAttrs, mangled string) (*typed.Entity, bool) {
	m, _, ok := r.owner(current, mangled)
	if !ok {
		return nil, false
	}
	t, ok := m.EntityTypes[r.Canonical(mangled)]
	return t, ok
}

func (r *Registry) EntitySignature(current *ModuleAttrs, mangled string) ([]string, bool) {
	m, _, ok := r.owner(current, mangled)
	if !ok {
		return nil, false
	}
	fields, ok := m.EntitySignatures[r.Canonical(mangled)]
	return fields, ok
}

// Function resolves a mangled function name against the module it was mangled with. Runtime
// modules resolve against the runtime catalog, and direct functions are visible from every module.
func (r *Registry) Function(current *ModuleAttrs, mangled string) (*typed.Function, bool) {
	m, d, ok := r.owner(current, mangled)
	if !ok {
		return nil, false
	}
	if m.IsRuntime() {
		return RuntimeFunction(m.RuntimeModule, d.Symbol)
	}
	if fn, ok := m.Functions[r.Canonical(mangled)]; ok {
		return fn, true
	}
	if m == current {
		if module, ok := common.DirectFunctions[d.Symbol]; ok {
			return RuntimeFunction(module, d.Symbol)
		}
	}
	return nil, false
}

// RuntimeFunction converts a runtime catalog entry into a function signature.
func RuntimeFunction(module, symbol string) (*typed.Function, bool) {
	sig, ok := common.RuntimeModules[module][symbol]
	if !ok {
		return nil, false
	}
	params := make([]typed.Type, len(sig.Params))
	paramNames := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = builtinType(p)
		paramNames[i] = fmt.Sprintf("p%d", i)
	}
	var result typed.Type
	if sig.Result != "" {
		result = builtinType(sig.Result)
	}
	return &typed.Function{
		Name:       common.RuntimeSymbol(module, symbol),
		Module:     module,
		Symbol:     symbol,
		ParamNames: paramNames,
		Params:     params,
		Result:     result,
		Variadic:   sig.Variadic,
	}, true
}

func builtinType(name string) typed.Type {
	switch name {
	case "bool":
		return typed.TBool
	case "str":
		return typed.TStr
	default:
		return typed.TReal
	}
}

// CreatesCircularDependency reports whether id is one of the suspended modules.
func CreatesCircularDependency(suspended []string, id string) bool {
	return slices.Contains(suspended, id)
}
