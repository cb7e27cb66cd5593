package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/names"
	"slices"
)

func (p *parser) parseExpression() (parsed.Node, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRhs(0, lhs)
}

func (p *parser) precedence() int {
	if !p.tok.Is(ast.TokenOperator) {
		return -1
	}
	if prec, ok := ast.Operators[p.tok.Text]; ok {
		return prec
	}
	return -1
}

// parseBinaryRhs is precedence climbing over `(op primary)*`, consuming only operators that bind
// at least as tightly as minPrec.
func (p *parser) parseBinaryRhs(minPrec int, lhs parsed.Node) (parsed.Node, error) {
	for {
		var err error
		if lhs, err = p.parseAccess(lhs); err != nil {
			return nil, err
		}

		prec := p.precedence()
		if prec < minPrec {
			return lhs, nil
		}
		op := p.tok.Text
		loc := p.location()
		if err := p.next(); err != nil {
			return nil, err
		}

		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if rhs, err = p.parseAccess(rhs); err != nil {
			return nil, err
		}

		nextPrec := p.precedence()
		if prec < nextPrec {
			if rhs, err = p.parseBinaryRhs(prec+1, rhs); err != nil {
				return nil, err
			}
			nextPrec = p.precedence()
		}

		if prec == nextPrec {
			if slices.Contains(ast.RightAssociativeOperators, op) {
				if rhs, err = p.parseBinaryRhs(prec, rhs); err != nil {
					return nil, err
				}
			} else if slices.Contains(ast.RelationalOperators, op) {
				// a < b < c is (a < b) et (b < c)
				shared := parsed.Clone(rhs)
				if lhs, err = p.makeBinary(loc, op, lhs, rhs); err != nil {
					return nil, err
				}
				rest, err := p.parseBinaryRhs(prec, shared)
				if err != nil {
					return nil, err
				}
				lhs = parsed.NewBinaryExpr(loc, ast.OpAnd, lhs, rest)
				continue
			}
		}

		if lhs, err = p.makeBinary(loc, op, lhs, rhs); err != nil {
			return nil, err
		}
	}
}

func (p *parser) makeBinary(loc ast.Location, op string, lhs, rhs parsed.Node) (parsed.Node, error) {
	if op != ast.OpAssignment {
		return parsed.NewBinaryExpr(loc, op, lhs, rhs), nil
	}
	switch lhs.(type) {
	case *parsed.Identifier, *parsed.FieldSelect, *parsed.ListIndex:
		return parsed.NewAssignment(loc, lhs, rhs), nil
	}
	return nil, p.newError("Invalid expression on the left hand side of assigment")
}

func (p *parser) parsePrimary() (parsed.Node, error) {
	loc := p.location()
	switch p.tok.Kind {
	case ast.TokenIdentifier:
		return p.parseIdentifierExpression()
	case ast.TokenBoolean:
		value := p.tok.Text == ast.KwTrue
		return parsed.NewBooleanLiteral(loc, value), p.next()
	case ast.TokenNumeric:
		value := p.tok.Number
		return parsed.NewNumericLiteral(loc, value), p.next()
	case ast.TokenString:
		value := p.tok.Text
		return parsed.NewStringLiteral(loc, value), p.next()
	case ast.TokenOperator:
		return p.parseUnary()
	case ast.TokenChar:
		if p.tok.IsChar(ast.SmbParenOpen) {
			return p.parseParenthesized()
		}
		if p.tok.IsChar(ast.SmbBracketsOpen) {
			return p.parseListLiteral()
		}
	}
	return nil, p.newError("Malformed Expression")
}

func (p *parser) parseUnary() (parsed.Node, error) {
	loc := p.location()
	op := p.tok.Text
	if !slices.Contains(ast.UnaryOperators, op) {
		return nil, p.newError("<< %s >> is not a unary operator", op)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if operand, err = p.parseAccess(operand); err != nil {
		return nil, err
	}
	return parsed.NewUnaryExpr(loc, op, operand), nil
}

func (p *parser) parseParenthesized() (parsed.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expectChar(ast.SmbParenClose, "expected ')' "); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIdentifierExpression resolves a name to an entity construction, a function call or a
// variable reference. `alias::name` refers to the module included under alias.
func (p *parser) parseIdentifierExpression() (parsed.Node, error) {
	loc := p.location()
	name := p.tok.Text
	if err := p.next(); err != nil {
		return nil, err
	}

	if p.tok.IsScope() {
		alias := name
		if !p.module.HasDependency(alias) {
			return nil, p.newError("No module is included under the name << %s >>", alias)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		symbol, err := p.readIdentifier("Expected an identifier after << %s:: >>", alias)
		if err != nil {
			return nil, err
		}

		typeName := names.ForeignType(p.module.ID, alias, symbol)
		if _, ok := p.registry.EntitySignature(p.module, typeName); ok {
			return p.parseEntityLiteral(loc, p.registry.Canonical(typeName), symbol)
		}
		if !p.tok.IsChar(ast.SmbParenOpen) {
			return nil, p.newError("Expected '(' after << %s::%s >>", alias, symbol)
		}
		return p.parseCall(loc, names.ForeignFunction(p.module.ID, alias, symbol))
	}

	typeName := names.LocalType(p.module.ID, name)
	if _, ok := p.module.EntitySignatures[typeName]; ok {
		return p.parseEntityLiteral(loc, typeName, name)
	}
	if p.tok.IsChar(ast.SmbParenOpen) {
		return p.parseCall(loc, names.LocalFunction(p.module.ID, name))
	}
	return parsed.NewIdentifier(loc, name), nil
}

func (p *parser) parseCall(loc ast.Location, callee string) (parsed.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	var args []parsed.Node
	if p.tok.IsChar(ast.SmbParenClose) {
		return parsed.NewCall(loc, callee, args), p.next()
	}

	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.tok.IsChar(ast.SmbParenClose) {
			break
		}
		if err := p.expectChar(ast.SmbComma, "Expected ','"); err != nil {
			return nil, err
		}
	}

	return parsed.NewCall(loc, callee, args), p.next()
}

// parseAccess attaches any chain of `.field`, `[i]` and `[i:j]` suffixes to target.
func (p *parser) parseAccess(target parsed.Node) (parsed.Node, error) {
	for {
		loc := p.location()
		switch {
		case p.tok.IsChar(ast.SmbBracketsOpen):
			if err := p.next(); err != nil {
				return nil, err
			}
			var err error
			if target, err = p.parseListAccess(loc, target); err != nil {
				return nil, err
			}
		case p.tok.IsChar(ast.SmbDot):
			if err := p.next(); err != nil {
				return nil, err
			}
			field, err := p.readIdentifier("Expected alphanumeric string for a field")
			if err != nil {
				return nil, err
			}
			target = parsed.NewFieldSelect(loc, target, field)
		default:
			return target, nil
		}
	}
}
