package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
)

func (p *parser) parseListLiteral() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}

	var elements []parsed.Node
	if p.tok.IsChar(ast.SmbBracketsClose) {
		return parsed.NewListLiteral(loc, elements), p.next()
	}

	for i := 1; ; i++ {
		element, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
		if p.tok.IsChar(ast.SmbBracketsClose) {
			break
		}
		if err := p.expectChar(ast.SmbComma, "Expected ',' after list element number << %d >>", i); err != nil {
			return nil, err
		}
	}

	return parsed.NewListLiteral(loc, elements), p.next()
}

// parseListAccess parses what follows `[`: an index `i]` or a slice `i:j]`, `:j]`, `i:]`, `:]`.
func (p *parser) parseListAccess(loc ast.Location, list parsed.Node) (parsed.Node, error) {
	if p.tok.IsChar(ast.SmbBracketsClose) {
		return nil, p.newError("How are you trying to access the list ??")
	}

	var start parsed.Node
	if !p.tok.IsChar(ast.SmbColon) {
		var err error
		if start, err = p.parseExpression(); err != nil {
			return nil, err
		}
		if p.tok.IsChar(ast.SmbBracketsClose) {
			return parsed.NewListIndex(loc, list, start), p.next()
		}
		if !p.tok.IsChar(ast.SmbColon) {
			return nil, p.newError("Malformed expression")
		}
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	var end parsed.Node
	if !p.tok.IsChar(ast.SmbBracketsClose) {
		var err error
		if end, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	if err := p.expectChar(ast.SmbBracketsClose, "Expected ']' "); err != nil {
		return nil, err
	}
	return parsed.NewListSlice(loc, list, start, end), nil
}
