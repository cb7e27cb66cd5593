package processors

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast"
)

// Support routines of the kronk runtime called by the emitted code.
const (
	rtListIndexCheck = "_kronk_list_idx_check"
	rtListSliceCheck = "_kronk_list_slice_check"
	rtListFixIndex   = "_kronk_list_fix_idx"
	rtZeroDivCheck   = "_kronk_zero_div_check"
	rtMemcpy         = "_kronk_memcpy"

	// rtAlloc comes from the C library the runtime links against.
	rtAlloc = "malloc"
)

func (c *Compiler) runtimeRoutine(name string) *ir.Func {
	mc := c.current
	switch name {
	case rtListIndexCheck:
		return mc.declare(name, types.Void, false,
			ir.NewParam("idx", types.I64), ir.NewParam("size", types.I64),
			ir.NewParam("file", types.I8Ptr), ir.NewParam("line", types.I64))
	case rtListSliceCheck:
		return mc.declare(name, types.Void, false,
			ir.NewParam("start", types.I64), ir.NewParam("end", types.I64), ir.NewParam("size", types.I64),
			ir.NewParam("file", types.I8Ptr), ir.NewParam("line", types.I64))
	case rtListFixIndex:
		return mc.declare(name, types.I64, false, ir.NewParam("idx", types.I64), ir.NewParam("size", types.I64))
	case rtZeroDivCheck:
		return mc.declare(name, types.Void, false,
			ir.NewParam("x", types.Double), ir.NewParam("file", types.I8Ptr), ir.NewParam("line", types.I64))
	case rtAlloc:
		return mc.declare(name, types.I8Ptr, false, ir.NewParam("bytes", types.I64))
	default:
		return mc.declare(rtMemcpy, types.Void, false,
			ir.NewParam("src", types.I8Ptr), ir.NewParam("dst", types.I8Ptr), ir.NewParam("bytes", types.I64))
	}
}

// emitCheck calls a runtime check with the source position appended to args.
func (c *Compiler) emitCheck(name string, loc ast.Location, args ...value.Value) {
	args = append(args, c.current.fileName, c.lineConstant(loc))
	c.block.NewCall(c.runtimeRoutine(name), args...)
}

func (c *Compiler) fixIndex(idx, size value.Value) value.Value {
	return c.block.NewCall(c.runtimeRoutine(rtListFixIndex), idx, size)
}

// memcpy copies count elements of type elem from src to dst.
func (c *Compiler) memcpy(dst, src value.Value, elem types.Type, count value.Value) {
	bytes := c.block.NewMul(count, sizeOf(elem))
	c.block.NewCall(c.runtimeRoutine(rtMemcpy),
		c.block.NewBitCast(src, types.I8Ptr), c.block.NewBitCast(dst, types.I8Ptr), bytes)
}
