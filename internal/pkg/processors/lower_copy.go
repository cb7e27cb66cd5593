package processors

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast/typed"
)

type allocator func(t types.Type, count value.Value) value.Value

// duplicate returns a structural copy of the aggregate at src in new storage.
func (c *Compiler) duplicate(src value.Value, t typed.Type) value.Value {
	dst := c.block.NewAlloca(c.current.irType(t))
	c.copyAggregate(dst, src, t)
	return dst
}

// copyAggregate overwrites dst with a structural copy of src. Lists get their own data block but
// share their elements. Entities are copied by their copy routine.
func (c *Compiler) copyAggregate(dst, src value.Value, t typed.Type) {
	switch t := t.(type) {
	case *typed.List:
		c.copyList(dst, src, t, c.stackAlloc)
	case *typed.Entity:
		c.block.NewCall(c.copyRoutine(t), dst, src)
	}
}

func (c *Compiler) copyList(dst, src value.Value, t *typed.List, alloc allocator) {
	mc := c.current
	st := mc.irType(t)
	c.memcpy(dst, src, st, constant.NewInt(types.I64, 1))
	size := c.listSize(src, t)
	data := alloc(mc.slotType(t.Elem), size)
	c.memcpy(data, c.listData(src, t), mc.slotType(t.Elem), size)
	c.block.NewStore(data, c.fieldAddress(dst, st, 1))
}

// copyRoutine returns `copy.<entity>`, which copies an entity field by field. Non-null entity
// fields are copied into heap storage by a call to their own routine, so recursive types recurse
// at run time and stop at the first null field.
func (c *Compiler) copyRoutine(e *typed.Entity) *ir.Func {
	mc := c.current
	name := "copy." + e.Name
	if f, ok := mc.funcs[name]; ok {
		return f
	}
	st := mc.irType(e)
	dst := ir.NewParam("dst", types.NewPointer(st))
	src := ir.NewParam("src", types.NewPointer(st))
	f := mc.module.NewFunc(name, types.Void, dst, src)
	f.Linkage = enum.LinkageInternal
	mc.funcs[name] = f

	function, block := c.function, c.block
	defer func() { c.function, c.block = function, block }()
	c.function = f
	c.block = f.NewBlock("entry")

	c.memcpy(dst, src, st, constant.NewInt(types.I64, 1))
	for i, ft := range e.FieldTypes {
		if !typed.IsAggregate(ft) {
			continue
		}
		address := c.fieldAddress(dst, st, i)
		field := c.block.NewLoad(mc.slotType(ft), address)
		isNull := c.block.NewICmp(enum.IPredEQ, field, constant.NewNull(types.NewPointer(mc.irType(ft))))

		copyBlock := f.NewBlock(mc.blockName("copy.field"))
		done := f.NewBlock(mc.blockName("copy.cont"))
		c.block.NewCondBr(isNull, done, copyBlock)

		c.block = copyBlock
		c.block.NewStore(c.copyField(field, ft), address)
		c.block.NewBr(done)
		c.block = done
	}
	c.block.NewRet(nil)
	return f
}

func (c *Compiler) copyField(src value.Value, t typed.Type) value.Value {
	dst := c.heapAlloc(c.current.irType(t), constant.NewInt(types.I64, 1))
	switch t := t.(type) {
	case *typed.List:
		c.copyList(dst, src, t, c.heapAlloc)
	case *typed.Entity:
		c.block.NewCall(c.copyRoutine(t), dst, src)
	}
	return dst
}

func (c *Compiler) stackAlloc(t types.Type, count value.Value) value.Value {
	a := c.block.NewAlloca(t)
	a.NElems = count
	return a
}

// heapAlloc allocates count values of t that outlive the current frame.
func (c *Compiler) heapAlloc(t types.Type, count value.Value) value.Value {
	bytes := c.block.NewMul(count, sizeOf(t))
	raw := c.block.NewCall(c.runtimeRoutine(rtAlloc), bytes)
	return c.block.NewBitCast(raw, types.NewPointer(t))
}
