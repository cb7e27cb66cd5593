package parsed

import "kronkc/internal/pkg/ast"

// EntityLiteral constructs an entity. Fields is indexed by field position in the entity
// signature, unset fields are nil.
type EntityLiteral struct {
	*nodeBase
	Type   *EntityTypeId
	Fields []Node
}

func NewEntityLiteral(location ast.Location, entityType *EntityTypeId, fields []Node) Node {
	return &EntityLiteral{nodeBase: newNodeBase(location), Type: entityType, Fields: fields}
}

func (e *EntityLiteral) clone() Node {
	return NewEntityLiteral(e.location, &EntityTypeId{Name: e.Type.Name, Symbol: e.Type.Symbol}, cloneAll(e.Fields))
}

type FieldSelect struct {
	*nodeBase
	Entity Node
	Field  string
}

func NewFieldSelect(location ast.Location, entity Node, field string) Node {
	return &FieldSelect{nodeBase: newNodeBase(location), Entity: entity, Field: field}
}

func (e *FieldSelect) clone() Node {
	return NewFieldSelect(e.location, Clone(e.Entity), e.Field)
}
