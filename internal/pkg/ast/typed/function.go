package typed

import "kronkc/internal/pkg/common"

// Function is a resolved function signature. Name is the symbol the IR refers to.
type Function struct {
	Name       string
	Module     string
	Symbol     string
	ParamNames []string
	Params     []Type
	Result     Type
	Variadic   bool
}

func (f *Function) String() string {
	s := f.Symbol + "(" + common.Join(f.Params, ", ") + ")"
	if f.Result != nil {
		s += " " + f.Result.String()
	}
	return s
}
