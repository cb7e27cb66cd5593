package parsed

import "fmt"

// TypeId is the syntactic description of a type as written in source.
type TypeId interface {
	_typeId()
	String() string
}

type BuiltinTypeId struct {
	Name string
}

func NewBuiltinTypeId(name string) TypeId {
	return &BuiltinTypeId{Name: name}
}

func (*BuiltinTypeId) _typeId() {}

func (t *BuiltinTypeId) String() string {
	return t.Name
}

// EntityTypeId refers to an entity by its canonical mangled name.
type EntityTypeId struct {
	Name   string
	Symbol string
}

func NewEntityTypeId(name, symbol string) TypeId {
	return &EntityTypeId{Name: name, Symbol: symbol}
}

func (*EntityTypeId) _typeId() {}

func (t *EntityTypeId) String() string {
	return t.Symbol
}

type ListTypeId struct {
	Elem TypeId
}

func NewListTypeId(elem TypeId) TypeId {
	return &ListTypeId{Elem: elem}
}

func (*ListTypeId) _typeId() {}

func (t *ListTypeId) String() string {
	return fmt.Sprintf("liste(%s)", t.Elem)
}
