package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/names"
)

func (p *parser) parseFunctionDefinition() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}
	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}
	if !p.tok.IsChar(ast.SmbBracesOpen) {
		return nil, p.newError("Expected '{' ")
	}
	body, err := p.parseCompoundStatement()
	if err != nil {
		return nil, err
	}
	return parsed.NewFunctionDefinition(loc, proto, body), nil
}

// parsePrototype parses `name(p: Type, ...) [ReturnType]`. A function without a return type
// returns nothing.
func (p *parser) parsePrototype() (*parsed.Prototype, error) {
	loc := p.location()
	name, err := p.readIdentifier("Expected an identifier for the function name")
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(ast.SmbParenOpen, "Expected '(' after function name"); err != nil {
		return nil, err
	}

	var paramNames []string
	var paramTypes []parsed.TypeId
	for !p.tok.IsChar(ast.SmbParenClose) {
		param, err := p.readIdentifier("Expected an identifier string for a parameter")
		if err != nil {
			return nil, err
		}
		if err := p.expectChar(ast.SmbColon, "Expected ':' after parameter << %s >>", param); err != nil {
			return nil, err
		}
		paramType, err := p.parseTypeId()
		if err != nil {
			return nil, err
		}
		paramNames = append(paramNames, param)
		paramTypes = append(paramTypes, paramType)

		if p.tok.IsChar(ast.SmbParenClose) {
			break
		}
		if err := p.expectChar(ast.SmbComma, "Expected ',' or ')' after parameter type"); err != nil {
			return nil, err
		}
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	var returnType parsed.TypeId
	if !p.tok.IsChar(ast.SmbBracesOpen) {
		if returnType, err = p.parseTypeId(); err != nil {
			return nil, err
		}
	}

	return parsed.NewPrototype(
		loc, names.LocalFunction(p.module.ID, name), name, paramNames, paramTypes, returnType), nil
}

func (p *parser) parseReturn() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.isTerminator() || p.tok.Is(ast.TokenEOF) || p.tok.IsChar(ast.SmbBracesClose) {
		return parsed.NewReturn(loc, nil), nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return parsed.NewReturn(loc, value), nil
}
