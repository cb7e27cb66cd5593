package processors

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/ast/typed"
	"kronkc/internal/pkg/names"
)

const listSizeField = "size"

func (c *Compiler) resolveType(n parsed.Node, id parsed.TypeId) (typed.Type, error) {
	switch t := id.(type) {
	case *parsed.BuiltinTypeId:
		switch t.Name {
		case "bool":
			return typed.TBool, nil
		case "reel":
			return typed.TReal, nil
		case "str":
			return typed.TStr, nil
		}
	case *parsed.ListTypeId:
		elem, err := c.resolveType(n, t.Elem)
		if err != nil {
			return nil, err
		}
		return typed.NewList(elem), nil
	case *parsed.EntityTypeId:
		if e, ok := c.registry.EntityType(c.current.attrs, t.Name); ok {
			return e, nil
		}
	}
	return nil, c.newError(n, "The type << %s >> doesn't exist !!", id)
}

func (c *Compiler) lowerEntityDefinition(s *parsed.EntityDefinition) error {
	if c.function != c.current.main || len(c.scopes) > 1 {
		return c.newError(s, "Kronk doesn't allow nesting of entity type definitions")
	}
	attrs := c.current.attrs

	e := typed.NewEntity(s.Type.Name, attrs.ID, s.Type.Symbol)
	e.FieldNames = s.FieldNames
	attrs.EntityTypes[e.Name] = e
	attrs.EntitySignatures[e.Name] = s.FieldNames

	for _, id := range s.FieldTypes {
		ft, err := c.resolveType(s, id)
		if err != nil {
			delete(attrs.EntityTypes, e.Name)
			return err
		}
		e.FieldTypes = append(e.FieldTypes, ft)
	}

	c.current.structType(e)
	c.log.Trace("Created entity type %s", e.Name)
	return nil
}

// initEntity zeroes the entity at ptr and gives each of its list fields an empty list.
// Entity fields stay null until assigned.
func (c *Compiler) initEntity(ptr value.Value, e *typed.Entity) {
	st := c.current.irType(e)
	c.block.NewStore(constant.NewZeroInitializer(st), ptr)
	for i, ft := range e.FieldTypes {
		if lt, ok := ft.(*typed.List); ok {
			list, _ := c.newList(lt, constant.NewInt(types.I64, 0))
			c.block.NewStore(list, c.fieldAddress(ptr, st, i))
		}
	}
}

func (c *Compiler) newEntity(e *typed.Entity) value.Value {
	ptr := c.block.NewAlloca(c.current.irType(e))
	c.initEntity(ptr, e)
	return ptr
}

func (c *Compiler) lowerEntityLiteral(e *parsed.EntityLiteral) (operand, error) {
	t, ok := c.registry.EntityType(c.current.attrs, e.Type.Name)
	if !ok {
		return operand{}, c.newError(e, "The type << %s >> doesn't exist !!", e.Type.Symbol)
	}
	st := c.current.irType(t)
	ptr := c.newEntity(t)

	for i, field := range e.Fields {
		if field == nil {
			continue
		}
		op, err := c.lowerValue(field)
		if err != nil {
			return operand{}, err
		}
		converted, ok := c.convert(op, t.FieldTypes[i])
		if !ok {
			d, _ := names.Demangle(t.Name)
			return operand{}, c.newError(field,
				"Trying to assign wrong type to << %s >> in creation of entity of type << %s >> defined in the module %s",
				t.FieldNames[i], t.Symbol, d.Module)
		}
		v := converted.value
		if typed.IsAggregate(t.FieldTypes[i]) {
			v = c.duplicate(op.value, t.FieldTypes[i])
		}
		c.block.NewStore(v, c.fieldAddress(ptr, st, i))
	}

	return c.fresh(ptr, t), nil
}

func (c *Compiler) lowerFieldSelect(e *parsed.FieldSelect, mode accessMode) (operand, error) {
	target, err := c.lowerValue(e.Entity)
	if err != nil {
		return operand{}, err
	}

	switch t := target.t.(type) {
	case *typed.List:
		if e.Field != listSizeField {
			return operand{}, c.newError(e, "<< %s >> is not a valid field of entity type << %s >>", e.Field, t)
		}
		if mode == storeMode {
			return operand{}, c.newError(e, "kronk can't allow you to modify the size property of a liste")
		}
		size := c.listSize(target.value, t)
		return operand{value: c.block.NewSIToFP(size, types.Double), t: typed.TReal}, nil

	case *typed.Entity:
		index, ok := t.FieldIndex(e.Field)
		if !ok {
			d, _ := names.Demangle(t.Name)
			return operand{}, c.newError(e,
				"<< %s >> is not a valid field of entity type << %s >> defined in the module %s",
				e.Field, t.Symbol, d.Module)
		}
		ft := t.FieldTypes[index]
		address := c.fieldAddress(target.value, c.current.irType(t), index)
		if mode == storeMode {
			return operand{value: address, t: ft}, nil
		}
		return operand{value: c.block.NewLoad(c.current.slotType(ft), address), t: ft}, nil
	}

	return operand{}, c.newError(e, "Trying to access a field of a value that is not an entity !!")
}
