package processors

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
	"kronkc/internal/pkg/common"
)

type accessMode int

const (
	loadMode accessMode = iota
	storeMode
)

// operand is the result of lowering an expression. In load mode value is the value itself, or
// the pointer to it for aggregates. In store mode value is the address to write to: the slot of a
// primitive, or the slot holding an aggregate pointer unless inPlace is set, in which case value
// is the aggregate to overwrite. A nil t is the result of a call that returns nothing.
type operand struct {
	value   value.Value
	t       typed.Type
	inPlace bool
}

func (c *Compiler) newError(n parsed.Node, format string, args ...any) error {
	return common.NewErrorAt(common.ErrorCodeGeneration, n.Location(), format, args...)
}

func (c *Compiler) top() *scope {
	return c.scopes[len(c.scopes)-1]
}

func (c *Compiler) lowerStatement(n parsed.Node) error {
	switch s := n.(type) {
	case *parsed.Declaration:
		return c.lowerDeclaration(s)
	case *parsed.InitDeclaration:
		return c.lowerInitDeclaration(s)
	case *parsed.EntityDefinition:
		return c.lowerEntityDefinition(s)
	case *parsed.FunctionDefinition:
		return c.lowerFunctionDefinition(s)
	case *parsed.Return:
		return c.lowerReturn(s)
	case *parsed.If:
		return c.lowerIf(s)
	case *parsed.While:
		return c.lowerWhile(s)
	case *parsed.CompoundStatement:
		return c.lowerCompound(s)
	case *parsed.Include:
		return c.lowerInclude(s)
	default:
		_, err := c.lowerExpression(n, loadMode)
		return err
	}
}

func (c *Compiler) lowerExpression(n parsed.Node, mode accessMode) (operand, error) {
	switch e := n.(type) {
	case *parsed.Identifier:
		return c.lowerIdentifier(e, mode)
	case *parsed.FieldSelect:
		return c.lowerFieldSelect(e, mode)
	case *parsed.ListIndex:
		return c.lowerListIndex(e, mode)
	}

	if mode == storeMode {
		return operand{}, c.newError(n, "Invalid expression on the left hand side of assigment")
	}

	switch e := n.(type) {
	case *parsed.BooleanLiteral:
		return operand{value: constant.NewBool(e.Value), t: typed.TBool}, nil
	case *parsed.NumericLiteral:
		return operand{value: constant.NewFloat(types.Double, e.Value), t: typed.TReal}, nil
	case *parsed.StringLiteral:
		return c.lowerStringLiteral(e)
	case *parsed.ListLiteral:
		return c.lowerListLiteral(e)
	case *parsed.ListSlice:
		return c.lowerListSlice(e)
	case *parsed.EntityLiteral:
		return c.lowerEntityLiteral(e)
	case *parsed.BinaryExpr:
		return c.lowerBinary(e)
	case *parsed.UnaryExpr:
		return c.lowerUnary(e)
	case *parsed.Assignment:
		return c.lowerAssignment(e)
	case *parsed.Call:
		return c.lowerCall(e)
	}
	return operand{}, c.newError(n, "Malformed Expression")
}

// lowerValue lowers n in load mode and rejects calls that return nothing.
func (c *Compiler) lowerValue(n parsed.Node) (operand, error) {
	op, err := c.lowerExpression(n, loadMode)
	if err != nil {
		return operand{}, err
	}
	if op.t == nil {
		return operand{}, c.newError(n, "This expression doesn't produce a value")
	}
	return op, nil
}

func (c *Compiler) lowerCompound(s *parsed.CompoundStatement) error {
	for _, stmt := range s.Statements {
		if err := c.lowerStatement(stmt); err != nil {
			return err
		}
		if _, ok := stmt.(*parsed.Return); ok {
			break
		}
	}
	return nil
}

func (c *Compiler) lowerIdentifier(e *parsed.Identifier, mode accessMode) (operand, error) {
	sym, ok := c.top().symbols[e.Name]
	if !ok {
		return operand{}, c.newError(e, "Unknown Identifier << %s >>", e.Name)
	}
	if typed.IsAggregate(sym.t) {
		return operand{value: sym.address, t: sym.t, inPlace: mode == storeMode}, nil
	}
	if mode == storeMode {
		return operand{value: sym.address, t: sym.t}, nil
	}
	return operand{value: c.block.NewLoad(c.current.irType(sym.t), sym.address), t: sym.t}, nil
}

// convert applies the implicit numeric conversions between the internal integer and reel.
func (c *Compiler) convert(op operand, target typed.Type) (operand, bool) {
	if typed.Equal(op.t, target) {
		return op, true
	}
	switch {
	case op.t == typed.TInt && target == typed.TReal:
		return operand{value: c.block.NewSIToFP(op.value, types.Double), t: typed.TReal}, true
	case op.t == typed.TReal && target == typed.TInt:
		return operand{value: c.block.NewFPToSI(op.value, types.I64), t: typed.TInt}, true
	}
	return op, false
}

// toInt turns a numeric operand into an i64 index.
func (c *Compiler) toInt(n parsed.Node, op operand) (value.Value, error) {
	converted, ok := c.convert(op, typed.TInt)
	if !ok {
		return nil, c.newError(n, "List indices must be real numbers")
	}
	return converted.value, nil
}

func (c *Compiler) fieldAddress(ptr value.Value, st types.Type, index int) value.Value {
	return c.block.NewGetElementPtr(st, ptr, constant.NewInt(types.I32, 0), constant.NewInt(types.I32, int64(index)))
}

func (c *Compiler) lineConstant(loc ast.Location) constant.Constant {
	return constant.NewInt(types.I64, int64(loc.Line()))
}
