package processors

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
	"strings"
)

// Format letters understood by the print routine of the io runtime.
const (
	printBool   = 'b'
	printReal   = 'r'
	printString = 's'
	printSize   = 'd'
)

// lowerPrint passes every argument to the variadic print routine behind a format string that
// describes them. Strings are passed as their data and size, other aggregates as the name of
// their type.
func (c *Compiler) lowerPrint(e *parsed.Call, fn *typed.Function) (operand, error) {
	mc := c.current
	var format strings.Builder
	var args []value.Value

	for _, arg := range e.Args {
		op, err := c.lowerValue(arg)
		if err != nil {
			return operand{}, err
		}
		op, _ = c.convert(op, typed.TReal)

		switch {
		case op.t == typed.TBool:
			format.WriteByte(printBool)
			args = append(args, c.block.NewZExt(op.value, types.I32))
		case op.t == typed.TReal:
			format.WriteByte(printReal)
			args = append(args, op.value)
		case typed.IsString(op.t):
			format.WriteByte(printString)
			format.WriteByte(printSize)
			args = append(args, c.listData(op.value, typed.TStr), c.listSize(op.value, typed.TStr))
		default:
			format.WriteByte(printString)
			args = append(args, mc.stringConstant("<"+op.t.String()+">"))
		}
	}

	args = append([]value.Value{mc.stringConstant(format.String())}, args...)
	printer := mc.declare(fn.Name, types.Void, true, ir.NewParam("fmt", types.I8Ptr))
	c.block.NewCall(printer, args...)
	return operand{t: fn.Result}, nil
}
