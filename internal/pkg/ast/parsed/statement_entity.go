package parsed

import (
	"kronkc/internal/pkg/ast"
	"slices"
)

type EntityDefinition struct {
	*nodeBase
	Type       *EntityTypeId
	FieldNames []string
	FieldTypes []TypeId
}

func NewEntityDefinition(
	location ast.Location, entityType *EntityTypeId, fieldNames []string, fieldTypes []TypeId,
) Node {
	return &EntityDefinition{
		nodeBase:   newNodeBase(location),
		Type:       entityType,
		FieldNames: fieldNames,
		FieldTypes: fieldTypes,
	}
}

func (s *EntityDefinition) clone() Node {
	return NewEntityDefinition(
		s.location,
		&EntityTypeId{Name: s.Type.Name, Symbol: s.Type.Symbol},
		slices.Clone(s.FieldNames),
		slices.Clone(s.FieldTypes))
}
