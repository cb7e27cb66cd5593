package processors

import (
	"fmt"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast/typed"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
	"path/filepath"
)

// moduleContext is the IR side of the module being compiled.
type moduleContext struct {
	attrs    *names.ModuleAttrs
	module   *ir.Module
	main     *ir.Func
	structs  map[string]*types.StructType
	funcs    map[string]*ir.Func
	strings  map[string]constant.Constant
	blocks   map[string]int
	fileName constant.Constant
}

func newModuleContext(attrs *names.ModuleAttrs) *moduleContext {
	mc := &moduleContext{
		attrs:   attrs,
		module:  attrs.IR,
		structs: map[string]*types.StructType{},
		funcs:   map[string]*ir.Func{},
		strings: map[string]constant.Constant{},
		blocks:  map[string]int{},
	}
	mc.fileName = mc.stringConstant(filepath.Base(attrs.File))
	return mc
}

// stringConstant returns an i8* to a private null terminated copy of s.
func (mc *moduleContext) stringConstant(s string) constant.Constant {
	if c, ok := mc.strings[s]; ok {
		return c
	}
	data := constant.NewCharArrayFromString(s + "\x00")
	name := ".str"
	if n := len(mc.strings); n > 0 {
		name = fmt.Sprintf(".str.%d", n)
	}
	g := mc.module.NewGlobalDef(name, data)
	g.Immutable = true
	g.Linkage = enum.LinkagePrivate
	zero := constant.NewInt(types.I64, 0)
	c := constant.NewGetElementPtr(data.Typ, g, zero, zero)
	mc.strings[s] = c
	return c
}

// declare returns the function called name, adding an external declaration on first use.
func (mc *moduleContext) declare(name string, ret types.Type, variadic bool, params ...*ir.Param) *ir.Func {
	if f, ok := mc.funcs[name]; ok {
		return f
	}
	f := mc.module.NewFunc(name, ret, params...)
	f.Sig.Variadic = variadic
	mc.funcs[name] = f
	return f
}

func (mc *moduleContext) blockName(name string) string {
	n := mc.blocks[name]
	mc.blocks[name]++
	if n == 0 {
		return name
	}
	return fmt.Sprintf("%s%d", name, n)
}

// irType is the type of a value of t once loaded. Lists and entities are structs.
func (mc *moduleContext) irType(t typed.Type) types.Type {
	switch t := t.(type) {
	case *typed.Bool:
		return types.I1
	case *typed.Real:
		return types.Double
	case *typed.Int:
		return types.I64
	case *typed.Char:
		return types.I8
	case *typed.List:
		return types.NewStruct(types.I64, types.NewPointer(mc.slotType(t.Elem)))
	case *typed.Entity:
		return mc.structType(t)
	}
	panic(common.NewCompilerError(fmt.Sprintf("type %v has no lowered form", t)))
}

// slotType is the type that holds t inside fields, list elements, parameters and results.
// Aggregates are held by pointer.
func (mc *moduleContext) slotType(t typed.Type) types.Type {
	if typed.IsAggregate(t) {
		return types.NewPointer(mc.irType(t))
	}
	return mc.irType(t)
}

// structType defines the named struct of e in this module, including entities of other modules.
func (mc *moduleContext) structType(e *typed.Entity) *types.StructType {
	if st, ok := mc.structs[e.Name]; ok {
		return st
	}
	st := types.NewStruct()
	mc.module.NewTypeDef(e.Name, st)
	mc.structs[e.Name] = st
	fields := make([]types.Type, len(e.FieldTypes))
	for i, ft := range e.FieldTypes {
		fields[i] = mc.slotType(ft)
	}
	st.Fields = fields
	return st
}

// sizeOf is the allocation size of t in bytes as an i64 constant expression.
func sizeOf(t types.Type) constant.Constant {
	null := constant.NewNull(types.NewPointer(t))
	end := constant.NewGetElementPtr(t, null, constant.NewInt(types.I32, 1))
	return constant.NewPtrToInt(end, types.I64)
}

type symbol struct {
	// address points at the slot of a primitive or at the aggregate itself.
	address value.Value
	t       typed.Type
}

type scope struct {
	symbols     map[string]symbol
	heapAllocas []value.Value

	function   bool
	returnType typed.Type
	returnSlot value.Value
	exit       *ir.Block
}

func newScope() *scope {
	return &scope{symbols: map[string]symbol{}}
}

func (s *scope) isHeapAlloca(v value.Value) bool {
	for _, a := range s.heapAllocas {
		if a == v {
			return true
		}
	}
	return false
}

func (s *scope) isBound(v value.Value) bool {
	for _, sym := range s.symbols {
		if sym.address == v {
			return true
		}
	}
	return false
}

// suspendedModuleState is everything an include puts aside while the included file compiles.
type suspendedModuleState struct {
	module      *moduleContext
	scopes      []*scope
	function    *ir.Func
	block       *ir.Block
	parser      *parser
	includeMode bool
}
