package processors

import (
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
)

func (c *Compiler) lowerCondition(n parsed.Node) (operand, error) {
	op, err := c.lowerValue(n)
	if err != nil {
		return operand{}, err
	}
	if op.t != typed.TBool {
		return operand{}, c.newError(n, "Condition must be a boolean")
	}
	return op, nil
}

func (c *Compiler) lowerIf(s *parsed.If) error {
	cond, err := c.lowerCondition(s.Condition)
	if err != nil {
		return err
	}
	mc := c.current
	then := c.function.NewBlock(mc.blockName("if.then"))
	otherwise := c.function.NewBlock(mc.blockName("if.else"))
	cont := c.function.NewBlock(mc.blockName("if.cont"))
	c.block.NewCondBr(cond.value, then, otherwise)

	c.block = then
	if err := c.lowerCompound(s.Then); err != nil {
		return err
	}
	if c.block.Term == nil {
		c.block.NewBr(cont)
	}

	c.block = otherwise
	if s.Else != nil {
		if err := c.lowerStatement(s.Else); err != nil {
			return err
		}
	}
	if c.block.Term == nil {
		c.block.NewBr(cont)
	}

	c.block = cont
	return nil
}

func (c *Compiler) lowerWhile(s *parsed.While) error {
	mc := c.current
	condBlock := c.function.NewBlock(mc.blockName("while.cond"))
	body := c.function.NewBlock(mc.blockName("while.body"))
	exit := c.function.NewBlock(mc.blockName("while.exit"))
	c.block.NewBr(condBlock)

	c.block = condBlock
	cond, err := c.lowerCondition(s.Condition)
	if err != nil {
		return err
	}
	c.block.NewCondBr(cond.value, body, exit)

	c.block = body
	if err := c.lowerCompound(s.Body); err != nil {
		return err
	}
	if c.block.Term == nil {
		c.block.NewBr(condBlock)
	}

	c.block = exit
	return nil
}
