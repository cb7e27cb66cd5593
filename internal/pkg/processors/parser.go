package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
)

// parser pulls tokens from the lexer and produces one statement at a time. The current token is
// always the first token not yet consumed.
type parser struct {
	lex      *lexer
	tok      ast.Token
	module   *names.ModuleAttrs
	registry *names.Registry
	log      *common.LogWriter

	// definedEntity is the entity whose fields are being parsed, visible to its own field types.
	definedEntity string
}

func newParser(lex *lexer, module *names.ModuleAttrs, registry *names.Registry, log *common.LogWriter) (*parser, error) {
	p := &parser{lex: lex, module: module, registry: registry, log: log}
	if err := p.next(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) location() ast.Location {
	return ast.NewLocationLine(p.lex.filePath, p.tok.Line)
}

func (p *parser) newError(format string, args ...any) error {
	return common.NewErrorAt(common.ErrorParse, p.location(), format, args...)
}

// next moves to the following token. A `\` followed by a new line joins the two lines.
func (p *parser) next() error {
	tok, err := p.lex.scan()
	if err != nil {
		return err
	}
	p.tok = tok

	if p.tok.IsChar(ast.SmbContinuation) {
		tok, err = p.lex.scan()
		if err != nil {
			return err
		}
		if !tok.Is(ast.TokenNewLine) {
			p.tok = tok
			return p.newError("Expected newline after \\")
		}
		return p.nextSkipNewLines()
	}
	return nil
}

func (p *parser) nextSkipNewLines() error {
	if err := p.next(); err != nil {
		return err
	}
	return p.skipNewLines()
}

func (p *parser) skipNewLines() error {
	for p.tok.Is(ast.TokenNewLine) {
		if err := p.next(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) expectChar(c rune, format string, args ...any) error {
	if !p.tok.IsChar(c) {
		return p.newError(format, args...)
	}
	return p.next()
}

func (p *parser) readIdentifier(format string, args ...any) (string, error) {
	if !p.tok.Is(ast.TokenIdentifier) {
		return "", p.newError(format, args...)
	}
	name := p.tok.Text
	return name, p.next()
}

func (p *parser) isTerminator() bool {
	return p.tok.Is(ast.TokenNewLine) || p.tok.IsChar(ast.SmbSemicolon)
}

// parseStatement returns the next statement of the file or nil at the end of the file.
func (p *parser) parseStatement() (parsed.Node, error) {
	if err := p.skipNewLines(); err != nil {
		return nil, err
	}

	var stmt parsed.Node
	var err error
	terminated := false

	switch p.tok.Kind {
	case ast.TokenEOF:
		return nil, nil
	case ast.TokenFunction:
		stmt, err = p.parseFunctionDefinition()
		p.log.Trace("Read Function Definition")
	case ast.TokenEntity:
		stmt, err = p.parseEntityDefinition()
		p.log.Trace("Read Entity Definition")
	case ast.TokenDeclare:
		stmt, err = p.parseDeclaration()
		p.log.Trace("Read Declaration")
	case ast.TokenIf:
		stmt, terminated, err = p.parseIf()
		p.log.Trace("Read if statement")
	case ast.TokenWhile:
		stmt, err = p.parseWhile()
		p.log.Trace("Read while statement")
	case ast.TokenReturn:
		stmt, err = p.parseReturn()
		p.log.Trace("Read return statement")
	case ast.TokenInclude:
		stmt, err = p.parseInclude()
		p.log.Trace("Read include statement")
	default:
		stmt, err = p.parseExpression()
		p.log.Trace("Read an Expression")
	}
	if err != nil {
		return nil, err
	}

	switch {
	case terminated, p.tok.Is(ast.TokenEOF), p.tok.IsChar(ast.SmbBracesClose):
		return stmt, nil
	case p.isTerminator():
		return stmt, p.nextSkipNewLines()
	default:
		return nil, p.newError("A statment must end with a new line or semi-colon !!")
	}
}

func (p *parser) parseCompoundStatement() (*parsed.CompoundStatement, error) {
	loc := p.location()
	if err := p.expectChar(ast.SmbBracesOpen, "Expected '{' "); err != nil {
		return nil, err
	}
	if err := p.skipNewLines(); err != nil {
		return nil, err
	}

	var stmts []parsed.Node
	for !p.tok.IsChar(ast.SmbBracesClose) {
		if p.tok.Is(ast.TokenEOF) {
			return nil, p.newError("Expected '}' ")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if err := p.next(); err != nil {
		return nil, err
	}
	return parsed.NewCompoundStatement(loc, stmts), nil
}

func (p *parser) parseDeclaration() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}
	name, err := p.readIdentifier("Expected identifier string for the name of the variable to be declared ")
	if err != nil {
		return nil, err
	}

	if p.tok.IsChar(ast.SmbColon) {
		if err := p.next(); err != nil {
			return nil, err
		}
		typeId, err := p.parseTypeId()
		if err != nil {
			return nil, err
		}
		return parsed.NewDeclaration(loc, name, typeId), nil
	}

	if p.tok.IsOperator(ast.OpAssignment) {
		if err := p.next(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return parsed.NewInitDeclaration(loc, name, value), nil
	}

	return nil, p.newError("Expected either ':' or '=' after start of declaration")
}

// parseIf also reports whether it consumed the statement terminator while looking for `Sinon`.
func (p *parser) parseIf() (parsed.Node, bool, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, false, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, false, err
	}
	then, err := p.parseCompoundStatement()
	if err != nil {
		return nil, false, err
	}

	terminated := false
	if p.isTerminator() {
		if err := p.nextSkipNewLines(); err != nil {
			return nil, false, err
		}
		terminated = true
	}

	if !p.tok.Is(ast.TokenElse) {
		return parsed.NewIf(loc, cond, then, nil), terminated, nil
	}
	if err := p.next(); err != nil {
		return nil, false, err
	}

	if p.tok.Is(ast.TokenIf) {
		nested, terminated, err := p.parseIf()
		if err != nil {
			return nil, false, err
		}
		return parsed.NewIf(loc, cond, then, nested), terminated, nil
	}

	otherwise, err := p.parseCompoundStatement()
	if err != nil {
		return nil, false, err
	}
	return parsed.NewIf(loc, cond, then, otherwise), false, nil
}

func (p *parser) parseWhile() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.tok.IsChar(ast.SmbBracesOpen) {
		return nil, p.newError("Expected '{' after loop declaration")
	}
	body, err := p.parseCompoundStatement()
	if err != nil {
		return nil, err
	}
	return parsed.NewWhile(loc, cond, body), nil
}

func (p *parser) parseInclude() (parsed.Node, error) {
	loc := p.location()
	if err := p.next(); err != nil {
		return nil, err
	}

	var path []string
	var runtimeModule string

	if p.tok.IsChar(ast.SmbColon) {
		if err := p.next(); err != nil {
			return nil, err
		}
		name, err := p.readIdentifier("Expected identifier for standard library module to be included")
		if err != nil {
			return nil, err
		}
		runtimeModule = name
	} else {
		for {
			name, err := p.readIdentifier("Expected identifier for module to be included")
			if err != nil {
				return nil, err
			}
			path = append(path, name)
			if !p.tok.IsChar(ast.SmbDot) {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	var alias string
	if p.tok.Is(ast.TokenIdentifier) {
		if p.tok.Text != ast.KwAs {
			return nil, p.newError("Expected alias keyword 'as' ")
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		subject := runtimeModule
		if len(path) > 0 {
			subject = path[0]
		}
		name, err := p.readIdentifier("Expected an identifier aliasing the module << %s >>", subject)
		if err != nil {
			return nil, err
		}
		alias = name
	}

	return parsed.NewInclude(loc, path, runtimeModule, alias), nil
}
