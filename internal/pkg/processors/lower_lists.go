package processors

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
)

// newList allocates a list of t with a fresh data block of size elements.
func (c *Compiler) newList(t *typed.List, size value.Value) (list value.Value, data value.Value) {
	mc := c.current
	alloca := c.block.NewAlloca(mc.slotType(t.Elem))
	alloca.NElems = size
	st := mc.irType(t)
	list = c.block.NewAlloca(st)
	c.block.NewStore(size, c.fieldAddress(list, st, 0))
	c.block.NewStore(alloca, c.fieldAddress(list, st, 1))
	return list, alloca
}

func (c *Compiler) listSize(list value.Value, t *typed.List) value.Value {
	return c.block.NewLoad(types.I64, c.fieldAddress(list, c.current.irType(t), 0))
}

func (c *Compiler) listData(list value.Value, t *typed.List) value.Value {
	return c.block.NewLoad(types.NewPointer(c.current.slotType(t.Elem)), c.fieldAddress(list, c.current.irType(t), 1))
}

func (c *Compiler) elementAddress(data value.Value, t *typed.List, idx value.Value) value.Value {
	return c.block.NewGetElementPtr(c.current.slotType(t.Elem), data, idx)
}

// fresh records v as an aggregate constructed in the current scope.
func (c *Compiler) fresh(v value.Value, t typed.Type) operand {
	top := c.top()
	top.heapAllocas = append(top.heapAllocas, v)
	return operand{value: v, t: t}
}

func (c *Compiler) lowerStringLiteral(e *parsed.StringLiteral) (operand, error) {
	size := constant.NewInt(types.I64, int64(len(e.Value)))
	list, data := c.newList(typed.TStr, size)
	if len(e.Value) > 0 {
		c.memcpy(data, c.current.stringConstant(e.Value), types.I8, size)
	}
	return c.fresh(list, typed.TStr), nil
}

func (c *Compiler) lowerListLiteral(e *parsed.ListLiteral) (operand, error) {
	var elements []operand
	for i, element := range e.Elements {
		op, err := c.lowerValue(element)
		if err != nil {
			return operand{}, err
		}
		if i > 0 && !typed.Equal(op.t, elements[i-1].t) {
			return operand{}, c.newError(e, "Element #%d in initializer list different from previous elements", i+1)
		}
		elements = append(elements, op)
	}

	var elem typed.Type = typed.TReal
	if len(elements) > 0 {
		elem = elements[0].t
	}
	t := typed.NewList(elem)

	list, data := c.newList(t, constant.NewInt(types.I64, int64(len(elements))))
	for i, op := range elements {
		c.block.NewStore(op.value, c.elementAddress(data, t, constant.NewInt(types.I64, int64(i))))
	}
	return c.fresh(list, t), nil
}

func (c *Compiler) lowerListOperand(n parsed.Node) (operand, *typed.List, error) {
	op, err := c.lowerValue(n)
	if err != nil {
		return operand{}, nil, err
	}
	t, ok := op.t.(*typed.List)
	if !ok {
		return operand{}, nil, c.newError(n, "Trying to perform a list operation on a value that is not a liste !!")
	}
	return op, t, nil
}

func (c *Compiler) lowerListIndex(e *parsed.ListIndex, mode accessMode) (operand, error) {
	list, t, err := c.lowerListOperand(e.List)
	if err != nil {
		return operand{}, err
	}
	size := c.listSize(list.value, t)

	index, err := c.lowerValue(e.Index)
	if err != nil {
		return operand{}, err
	}
	idx, err := c.toInt(e.Index, index)
	if err != nil {
		return operand{}, err
	}

	c.emitCheck(rtListIndexCheck, e.Location(), idx, size)
	idx = c.fixIndex(idx, size)
	address := c.elementAddress(c.listData(list.value, t), t, idx)

	if mode == storeMode {
		return operand{value: address, t: t.Elem}, nil
	}

	if t.IsString() {
		// a character is read as a new string of length one
		one := constant.NewInt(types.I64, 1)
		str, data := c.newList(typed.TStr, one)
		c.block.NewStore(c.block.NewLoad(types.I8, address), data)
		return c.fresh(str, typed.TStr), nil
	}
	return operand{value: c.block.NewLoad(c.current.slotType(t.Elem), address), t: t.Elem}, nil
}

func (c *Compiler) lowerListSlice(e *parsed.ListSlice) (operand, error) {
	list, t, err := c.lowerListOperand(e.List)
	if err != nil {
		return operand{}, err
	}
	size := c.listSize(list.value, t)

	var start, end value.Value = constant.NewInt(types.I64, 0), size
	if e.Start != nil {
		op, err := c.lowerValue(e.Start)
		if err != nil {
			return operand{}, err
		}
		if start, err = c.toInt(e.Start, op); err != nil {
			return operand{}, err
		}
	}
	if e.End != nil {
		op, err := c.lowerValue(e.End)
		if err != nil {
			return operand{}, err
		}
		if end, err = c.toInt(e.End, op); err != nil {
			return operand{}, err
		}
	}

	c.emitCheck(rtListSliceCheck, e.Location(), start, end, size)
	start = c.fixIndex(start, size)
	end = c.fixIndex(end, size)

	count := c.block.NewSub(end, start)
	slice, data := c.newList(t, count)
	from := c.elementAddress(c.listData(list.value, t), t, start)
	c.memcpy(data, from, c.current.slotType(t.Elem), count)
	return c.fresh(slice, t), nil
}

// lowerConcatenation builds a new list holding the elements of lhs followed by those of rhs.
func (c *Compiler) lowerConcatenation(e *parsed.BinaryExpr, lhs, rhs operand) (operand, error) {
	lt, rt := lhs.t.(*typed.List), rhs.t.(*typed.List)
	if !typed.Equal(lt.Elem, rt.Elem) {
		return operand{}, c.newError(e, "Trying to concatenate lists with unequal types")
	}
	elem := c.current.slotType(lt.Elem)

	lsize, rsize := c.listSize(lhs.value, lt), c.listSize(rhs.value, rt)
	list, data := c.newList(lt, c.block.NewAdd(lsize, rsize))
	c.memcpy(data, c.listData(lhs.value, lt), elem, lsize)
	c.memcpy(c.elementAddress(data, lt, lsize), c.listData(rhs.value, rt), elem, rsize)
	return c.fresh(list, lt), nil
}
