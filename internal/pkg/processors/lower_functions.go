package processors

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
)

// declareFunction returns the IR function of fn, declaring it external when it is defined
// elsewhere.
func (c *Compiler) declareFunction(fn *typed.Function) *ir.Func {
	mc := c.current
	params := make([]*ir.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = ir.NewParam(fn.ParamNames[i], mc.slotType(p))
	}
	var ret types.Type = types.Void
	if fn.Result != nil {
		ret = mc.slotType(fn.Result)
	}
	return mc.declare(fn.Name, ret, fn.Variadic, params...)
}

func (c *Compiler) resolvePrototype(proto *parsed.Prototype) (*typed.Function, error) {
	fn := &typed.Function{
		Name:       proto.Name,
		Module:     c.current.attrs.ID,
		Symbol:     proto.Symbol,
		ParamNames: proto.ParamNames,
	}
	for _, id := range proto.ParamTypes {
		t, err := c.resolveType(proto, id)
		if err != nil {
			return nil, err
		}
		fn.Params = append(fn.Params, t)
	}
	if proto.ReturnType != nil {
		t, err := c.resolveType(proto, proto.ReturnType)
		if err != nil {
			return nil, err
		}
		fn.Result = t
	}
	return fn, nil
}

func (c *Compiler) lowerFunctionDefinition(s *parsed.FunctionDefinition) error {
	if c.function != c.current.main || len(c.scopes) > 1 {
		return c.newError(s, "kronk doesn't allow nesting of function definitions")
	}
	attrs := c.current.attrs
	if _, ok := attrs.Functions[s.Prototype.Name]; ok {
		return c.newError(s, "The function << %s >> is already defined in this module", s.Prototype.Symbol)
	}

	fn, err := c.resolvePrototype(s.Prototype)
	if err != nil {
		return err
	}
	attrs.Functions[fn.Name] = fn
	f := c.declareFunction(fn)
	c.log.Trace("Creating function definition %s", fn)

	savedFunction, savedBlock := c.function, c.block
	defer func() {
		c.scopes = c.scopes[:len(c.scopes)-1]
		c.function, c.block = savedFunction, savedBlock
	}()

	fs := newScope()
	fs.function = true
	fs.returnType = fn.Result
	fs.exit = ir.NewBlock("FunctionExit")
	c.scopes = append(c.scopes, fs)
	c.function = f
	c.block = f.NewBlock("FunctionEntry")

	mc := c.current
	if fn.Result != nil {
		slot := c.block.NewAlloca(mc.slotType(fn.Result))
		slot.SetName("ReturnValue")
		fs.returnSlot = slot
	}
	for i, param := range f.Params {
		t := fn.Params[i]
		if typed.IsAggregate(t) {
			fs.symbols[fn.ParamNames[i]] = symbol{address: param, t: t}
			continue
		}
		slot := c.block.NewAlloca(mc.slotType(t))
		c.block.NewStore(param, slot)
		fs.symbols[fn.ParamNames[i]] = symbol{address: slot, t: t}
	}

	if err := c.lowerCompound(s.Body); err != nil {
		return err
	}
	if c.block.Term == nil {
		c.block.NewBr(fs.exit)
	}

	fs.exit.Parent = f
	f.Blocks = append(f.Blocks, fs.exit)
	if fn.Result == nil {
		fs.exit.NewRet(nil)
	} else {
		fs.exit.NewRet(fs.exit.NewLoad(mc.slotType(fn.Result), fs.returnSlot))
	}
	return nil
}

func (c *Compiler) functionScope() (*scope, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if c.scopes[i].function {
			return c.scopes[i], true
		}
	}
	return nil, false
}

func (c *Compiler) lowerReturn(s *parsed.Return) error {
	fs, ok := c.functionScope()
	if !ok {
		return c.newError(s, "return statements must only be in function definitions")
	}

	if s.Value == nil {
		if fs.returnType != nil {
			return c.newError(s, "Return value type does not correspond to function return type")
		}
		c.block.NewBr(fs.exit)
		return nil
	}
	if fs.returnType == nil {
		return c.newError(s, "Return value type does not correspond to function return type")
	}

	op, err := c.lowerValue(s.Value)
	if err != nil {
		return err
	}
	converted, ok := c.convert(op, fs.returnType)
	if !ok {
		return c.newError(s, "Return value type does not correspond to function return type")
	}
	c.block.NewStore(converted.value, fs.returnSlot)
	c.block.NewBr(fs.exit)
	return nil
}

func (c *Compiler) lowerCall(e *parsed.Call) (operand, error) {
	fn, ok := c.registry.Function(c.current.attrs, e.Callee)
	if !ok {
		d, _ := names.Demangle(e.Callee)
		return operand{}, c.newError(e, "No function in the module << %s >> matches the name << %s >>", d.Module, d.Symbol)
	}

	if fn.Variadic && fn.Symbol == common.RuntimePrint {
		return c.lowerPrint(e, fn)
	}

	if len(e.Args) < len(fn.Params) {
		return operand{}, c.newError(e, "Too few arguments in the function call to << %s >>", fn.Symbol)
	}
	if len(e.Args) > len(fn.Params) {
		return operand{}, c.newError(e, "Too many arguments in the function call to << %s >>", fn.Symbol)
	}

	args := make([]value.Value, len(e.Args))
	for i, arg := range e.Args {
		op, err := c.lowerValue(arg)
		if err != nil {
			return operand{}, err
		}
		converted, ok := c.convert(op, fn.Params[i])
		if !ok {
			return operand{}, c.newError(arg,
				"Type mismatch for argument #%d in function call to << %s >>", i+1, fn.Symbol)
		}
		args[i] = converted.value
	}

	call := c.block.NewCall(c.declareFunction(fn), args...)
	return operand{value: call, t: fn.Result}, nil
}
