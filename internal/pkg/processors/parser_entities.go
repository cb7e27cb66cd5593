package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/names"
	"slices"
)

func (p *parser) parseEntityDefinition() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}
	name, err := p.readIdentifier("Expected identifier string for the name of the entity type")
	if err != nil {
		return nil, err
	}

	mangled := names.LocalType(p.module.ID, name)
	if _, ok := p.module.EntitySignatures[mangled]; ok {
		return nil, p.newError("Entity type << %s >> already exists", name)
	}

	if !p.tok.IsChar(ast.SmbBracesOpen) {
		return nil, p.newError("Expected '{' to follow << %s >>", name)
	}
	if err := p.nextSkipNewLines(); err != nil {
		return nil, err
	}
	if p.tok.IsChar(ast.SmbBracesClose) {
		return nil, p.newError("kronk cannot create an entity with zero fields")
	}

	p.definedEntity = mangled
	defer func() { p.definedEntity = "" }()

	var fieldNames []string
	var fieldTypes []parsed.TypeId
	for !p.tok.IsChar(ast.SmbBracesClose) {
		field, err := p.readIdentifier("Expected an identifer string for a field")
		if err != nil {
			return nil, err
		}
		if slices.Contains(fieldNames, field) {
			return nil, p.newError("<< %s >> is already a field of << %s >>", field, name)
		}
		if err := p.expectChar(ast.SmbColon, "Expected ':' after << %s >>", field); err != nil {
			return nil, err
		}
		fieldType, err := p.parseTypeId()
		if err != nil {
			return nil, err
		}
		fieldNames = append(fieldNames, field)
		fieldTypes = append(fieldTypes, fieldType)

		if p.tok.IsChar(ast.SmbBracesClose) {
			break
		}
		if !p.isTerminator() {
			return nil, p.newError("A statment must end with a new line or semi-colon !!")
		}
		if err := p.nextSkipNewLines(); err != nil {
			return nil, err
		}
		if p.tok.Is(ast.TokenEOF) {
			return nil, p.newError("Expected '}' ")
		}
	}

	p.module.EntitySignatures[mangled] = fieldNames
	entityType := &parsed.EntityTypeId{Name: mangled, Symbol: name}
	return parsed.NewEntityDefinition(loc, entityType, fieldNames, fieldTypes), p.next()
}

// parseEntityLiteral matches `Name(field = value, ...)` keyword arguments against the signature
// of the entity by position.
func (p *parser) parseEntityLiteral(loc ast.Location, typeName, symbol string) (parsed.Node, error) {
	if err := p.expectChar(ast.SmbParenOpen, "Expected '('"); err != nil {
		return nil, err
	}

	signature, _ := p.registry.EntitySignature(p.module, typeName)
	entityType := &parsed.EntityTypeId{Name: typeName, Symbol: symbol}
	fields := make([]parsed.Node, len(signature))

	if p.tok.IsChar(ast.SmbParenClose) {
		return parsed.NewEntityLiteral(loc, entityType, fields), p.next()
	}
	if !p.tok.Is(ast.TokenIdentifier) {
		return nil, p.newError("Unexpected character after '('")
	}

	for count := 1; ; count++ {
		field, err := p.readIdentifier("Expected a field after ',' ")
		if err != nil {
			return nil, err
		}
		index := slices.Index(signature, field)
		if index < 0 {
			return nil, p.newError("<< %s >> is not a valid field of << %s >>", field, symbol)
		}
		if !p.tok.IsOperator(ast.OpAssignment) {
			return nil, p.newError("Expected '=' after << %s >>", field)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if fields[index] != nil {
			return nil, p.newError("<< %s >> already has a value", field)
		}
		fields[index] = value

		if p.tok.IsChar(ast.SmbParenClose) {
			break
		}
		if err := p.expectChar(ast.SmbComma, "Expected ',' "); err != nil {
			return nil, err
		}
		if count == len(signature) {
			return nil, p.newError("Definition is too long for entityType << %s >>", symbol)
		}
	}

	return parsed.NewEntityLiteral(loc, entityType, fields), p.next()
}
