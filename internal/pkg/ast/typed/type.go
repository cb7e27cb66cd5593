package typed

import (
	"fmt"
	"kronkc/internal/pkg/ast"
)

// Type is a resolved kronk type. Primitives are singletons, lists are structural and entities
// are nominal.
type Type interface {
	_type()
	String() string
}

type Bool struct{}

func (*Bool) _type() {}

func (*Bool) String() string {
	return ast.TypeBool
}

type Real struct{}

func (*Real) _type() {}

func (*Real) String() string {
	return ast.TypeReal
}

// Int is the 64-bit integer used for list sizes and indices. It has no source spelling.
type Int struct{}

func (*Int) _type() {}

func (*Int) String() string {
	return "int"
}

// Char is a single byte of a string. It has no source spelling.
type Char struct{}

func (*Char) _type() {}

func (*Char) String() string {
	return "char"
}

var (
	TBool = &Bool{}
	TReal = &Real{}
	TInt  = &Int{}
	TChar = &Char{}
	TStr  = NewList(TChar)
)

type List struct {
	Elem Type
}

func NewList(elem Type) *List {
	return &List{Elem: elem}
}

func (*List) _type() {}

func (t *List) String() string {
	if t.IsString() {
		return ast.TypeString
	}
	return fmt.Sprintf("%s(%s)", ast.KwList, t.Elem)
}

func (t *List) IsString() bool {
	_, ok := t.Elem.(*Char)
	return ok
}

type Entity struct {
	Name       string
	Module     string
	Symbol     string
	FieldNames []string
	FieldTypes []Type
}

func NewEntity(name, module, symbol string) *Entity {
	return &Entity{Name: name, Module: module, Symbol: symbol}
}

func (*Entity) _type() {}

func (t *Entity) String() string {
	return t.Symbol
}

func (t *Entity) FieldIndex(name string) (int, bool) {
	for i, f := range t.FieldNames {
		if f == name {
			return i, true
		}
	}
	return -1, false
}

func Equal(a, b Type) bool {
	switch x := a.(type) {
	case *Bool, *Real, *Int, *Char:
		return a == b
	case *List:
		if y, ok := b.(*List); ok {
			return Equal(x.Elem, y.Elem)
		}
	case *Entity:
		if y, ok := b.(*Entity); ok {
			return x.Name == y.Name
		}
	}
	return false
}

// IsAggregate reports whether values of t live behind a pointer (lists, strings, entities).
func IsAggregate(t Type) bool {
	switch t.(type) {
	case *List, *Entity:
		return true
	}
	return false
}

func IsNumeric(t Type) bool {
	switch t.(type) {
	case *Real, *Int:
		return true
	}
	return false
}

func IsString(t Type) bool {
	l, ok := t.(*List)
	return ok && l.IsString()
}
