package processors

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
)

var realComparisons = map[string]enum.FPred{
	ast.OpLess:      enum.FPredOLT,
	ast.OpGreater:   enum.FPredOGT,
	ast.OpLessEq:    enum.FPredOLE,
	ast.OpGreaterEq: enum.FPredOGE,
	ast.OpEqual:     enum.FPredOEQ,
	ast.OpNotEqual:  enum.FPredONE,
}

func (c *Compiler) lowerAssignment(e *parsed.Assignment) (operand, error) {
	target, err := c.lowerExpression(e.Target, storeMode)
	if err != nil {
		return operand{}, err
	}
	source, err := c.lowerValue(e.Value)
	if err != nil {
		return operand{}, err
	}

	if typed.IsAggregate(target.t) {
		if !typed.IsAggregate(source.t) {
			return operand{}, c.newError(e, "Trying to assign a primitive to an entity")
		}
		if !typed.Equal(target.t, source.t) {
			return operand{}, c.newError(e, "Assignment operand types do not match")
		}
		if target.inPlace {
			c.copyAggregate(target.value, source.value, target.t)
			return operand{value: target.value, t: target.t}, nil
		}
		copied := c.duplicate(source.value, target.t)
		c.block.NewStore(copied, target.value)
		return operand{value: copied, t: target.t}, nil
	}

	if target.t == typed.TChar {
		if !typed.IsString(source.t) {
			return operand{}, c.newError(e, "Trying to replace a character of a string with a non-string value")
		}
		char := c.block.NewLoad(types.I8, c.listData(source.value, typed.TStr))
		c.block.NewStore(char, target.value)
		return source, nil
	}

	converted, ok := c.convert(source, target.t)
	if !ok {
		return operand{}, c.newError(e, "Assignment operand types do not match")
	}
	c.block.NewStore(converted.value, target.value)
	return converted, nil
}

func (c *Compiler) lowerBinary(e *parsed.BinaryExpr) (operand, error) {
	lhs, err := c.lowerValue(e.Left)
	if err != nil {
		return operand{}, err
	}
	rhs, err := c.lowerValue(e.Right)
	if err != nil {
		return operand{}, err
	}

	if typed.IsAggregate(lhs.t) || typed.IsAggregate(rhs.t) {
		_, leftList := lhs.t.(*typed.List)
		_, rightList := rhs.t.(*typed.List)
		if !leftList || !rightList {
			return operand{}, c.newError(e,
				"Your trying to perform a binary operation on two entities that are not both listes !!")
		}
		if e.Op != ast.OpAdd {
			return operand{}, c.newError(e,
				"The only binary operation allowed between two entities is list concatenation")
		}
		return c.lowerConcatenation(e, lhs, rhs)
	}

	if lhs.t == typed.TBool && rhs.t == typed.TBool {
		return c.lowerBooleanBinary(e, lhs.value, rhs.value)
	}

	if typed.IsNumeric(lhs.t) && typed.IsNumeric(rhs.t) {
		lhs, _ = c.convert(lhs, typed.TReal)
		rhs, _ = c.convert(rhs, typed.TReal)
		return c.lowerRealBinary(e, lhs.value, rhs.value)
	}

	return operand{}, c.newError(e, "Incompatible operand types for the binary operator << %s >>", e.Op)
}

func (c *Compiler) lowerBooleanBinary(e *parsed.BinaryExpr, lhs, rhs value.Value) (operand, error) {
	var v value.Value
	switch e.Op {
	case ast.OpEqual:
		v = c.block.NewICmp(enum.IPredEQ, lhs, rhs)
	case ast.OpNotEqual:
		v = c.block.NewICmp(enum.IPredNE, lhs, rhs)
	case ast.OpAnd:
		v = c.block.NewAnd(lhs, rhs)
	case ast.OpOr:
		v = c.block.NewOr(lhs, rhs)
	default:
		return operand{}, c.newError(e, "Undefined binary operator << %s >> between two booleans", e.Op)
	}
	return operand{value: v, t: typed.TBool}, nil
}

func (c *Compiler) lowerRealBinary(e *parsed.BinaryExpr, lhs, rhs value.Value) (operand, error) {
	if pred, ok := realComparisons[e.Op]; ok {
		return operand{value: c.block.NewFCmp(pred, lhs, rhs), t: typed.TBool}, nil
	}

	var v value.Value
	switch e.Op {
	case ast.OpPower:
		v = c.block.NewCall(c.mathRoutine("puiss"), lhs, rhs)
	case ast.OpMul:
		v = c.block.NewFMul(lhs, rhs)
	case ast.OpDiv:
		c.emitCheck(rtZeroDivCheck, e.Location(), rhs)
		v = c.block.NewFDiv(lhs, rhs)
	case ast.OpMod:
		v = c.block.NewFRem(lhs, rhs)
	case ast.OpAdd:
		v = c.block.NewFAdd(lhs, rhs)
	case ast.OpSub:
		v = c.block.NewFSub(lhs, rhs)
	case ast.OpShl, ast.OpShr, ast.OpBitAnd, ast.OpBitXor, ast.OpBitOr:
		v = c.lowerBitwise(e.Op, lhs, rhs)
	default:
		return operand{}, c.newError(e, "Undefined binary operator << %s >> between two real numbers", e.Op)
	}
	return operand{value: v, t: typed.TReal}, nil
}

// lowerBitwise applies op to the integer parts of two reels.
func (c *Compiler) lowerBitwise(op string, lhs, rhs value.Value) value.Value {
	l := c.block.NewFPToSI(lhs, types.I64)
	r := c.block.NewFPToSI(rhs, types.I64)
	var v value.Value
	switch op {
	case ast.OpShl:
		v = c.block.NewShl(l, r)
	case ast.OpShr:
		v = c.block.NewAShr(l, r)
	case ast.OpBitAnd:
		v = c.block.NewAnd(l, r)
	case ast.OpBitXor:
		v = c.block.NewXor(l, r)
	default:
		v = c.block.NewOr(l, r)
	}
	return c.block.NewSIToFP(v, types.Double)
}

func (c *Compiler) lowerUnary(e *parsed.UnaryExpr) (operand, error) {
	op, err := c.lowerValue(e.Operand)
	if err != nil {
		return operand{}, err
	}

	switch {
	case op.t == typed.TBool:
		if e.Op != ast.OpNot {
			return operand{}, c.newError(e, "Undefined unary operator << %s >> for a boolean", e.Op)
		}
		return operand{value: c.block.NewXor(op.value, constant.True), t: typed.TBool}, nil

	case typed.IsNumeric(op.t):
		op, _ = c.convert(op, typed.TReal)
		switch e.Op {
		case ast.OpSub:
			return operand{value: c.block.NewFNeg(op.value), t: typed.TReal}, nil
		case ast.OpBitNot:
			i := c.block.NewFPToSI(op.value, types.I64)
			not := c.block.NewXor(i, constant.NewInt(types.I64, -1))
			return operand{value: c.block.NewSIToFP(not, types.Double), t: typed.TReal}, nil
		}
		return operand{}, c.newError(e, "Undefined unary operator << %s >> for a real number", e.Op)
	}

	return operand{}, c.newError(e, "Incompatible operand type for the unary operator << %s >>", e.Op)
}

func (c *Compiler) mathRoutine(symbol string) value.Value {
	fn, ok := names.RuntimeFunction(common.RuntimeModuleMath, symbol)
	if !ok {
		panic(common.NewCompilerError("math runtime has no " + symbol))
	}
	return c.declareFunction(fn)
}
