package processors

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
)

// bind points name at sym. Declaring a name again rebinds it.
func (c *Compiler) bind(name string, sym symbol) {
	c.top().symbols[name] = sym
}

func (c *Compiler) lowerDeclaration(s *parsed.Declaration) error {
	t, err := c.resolveType(s, s.Type)
	if err != nil {
		return err
	}

	switch t := t.(type) {
	case *typed.Entity:
		ptr := c.fresh(c.newEntity(t), t)
		c.bind(s.Name, symbol{address: ptr.value, t: t})
		return nil
	case *typed.List:
		list, _ := c.newList(t, constant.NewInt(types.I64, 0))
		c.fresh(list, t)
		c.bind(s.Name, symbol{address: list, t: t})
		return nil
	}

	slot := c.block.NewAlloca(c.current.irType(t))
	c.block.NewStore(zeroValue(t), slot)
	c.bind(s.Name, symbol{address: slot, t: t})
	return nil
}

func zeroValue(t typed.Type) constant.Constant {
	if t == typed.TBool {
		return constant.False
	}
	return constant.NewFloat(types.Double, 0)
}

// lowerInitDeclaration binds a freshly built aggregate to the name directly and copies any other.
func (c *Compiler) lowerInitDeclaration(s *parsed.InitDeclaration) error {
	op, err := c.lowerValue(s.Value)
	if err != nil {
		return err
	}
	top := c.top()

	if typed.IsAggregate(op.t) {
		address := op.value
		if !top.isHeapAlloca(address) || top.isBound(address) {
			address = c.fresh(c.duplicate(op.value, op.t), op.t).value
		}
		c.bind(s.Name, symbol{address: address, t: op.t})
		return nil
	}

	op, _ = c.convert(op, typed.TReal)
	slot := c.block.NewAlloca(c.current.irType(op.t))
	c.block.NewStore(op.value, slot)
	c.bind(s.Name, symbol{address: slot, t: op.t})
	return nil
}
