package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/common"
	"slices"
	"strconv"
)

// lexer turns kronk source into tokens one at a time. It only ever looks one character ahead.
type lexer struct {
	filePath string
	text     []rune
	cursor   uint32
	line     uint32
}

func newLexer(filePath string, content string) *lexer {
	return &lexer{filePath: filePath, text: []rune(content), line: 1}
}

func (lex *lexer) isOk() bool {
	return lex.cursor < uint32(len(lex.text))
}

func (lex *lexer) current() rune {
	if !lex.isOk() {
		return 0
	}
	return lex.text[lex.cursor]
}

func (lex *lexer) lookahead() rune {
	if lex.cursor+1 >= uint32(len(lex.text)) {
		return 0
	}
	return lex.text[lex.cursor+1]
}

func (lex *lexer) location() ast.Location {
	return ast.NewLocationLine(lex.filePath, lex.line)
}

func (lex *lexer) newError(format string, args ...any) error {
	return common.NewErrorAt(common.ErrorTokenRead, lex.location(), format, args...)
}

func isIdentStart(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

func (lex *lexer) skipBlanks() {
	for lex.isOk() && isBlank(lex.current()) {
		lex.cursor++
	}
}

func (lex *lexer) scan() (ast.Token, error) {
	lex.skipBlanks()

	if !lex.isOk() {
		return ast.Token{Kind: ast.TokenEOF, Line: lex.line}, nil
	}

	c := lex.current()
	switch {
	case isIdentStart(c):
		return lex.readWord(), nil
	case c == ast.SmbQuoteString:
		return lex.readString()
	case isDigit(c):
		return lex.readNumber()
	case c == ast.SmbComment:
		for lex.isOk() && lex.current() != ast.SmbNewLine {
			lex.cursor++
		}
		if !lex.isOk() {
			return ast.Token{Kind: ast.TokenEOF, Line: lex.line}, nil
		}
		return lex.readCommentEnd(), nil
	case c == ast.SmbNewLine:
		tok := ast.Token{Kind: ast.TokenNewLine, Line: lex.line}
		lex.cursor++
		lex.line++
		return tok, nil
	case c == ast.SmbColon && lex.lookahead() == ast.SmbColon:
		lex.cursor += 2
		return ast.Token{Kind: ast.TokenChar, Text: ast.SeqScope, Line: lex.line}, nil
	case isOperatorStart(c):
		return lex.readOperator(), nil
	}

	lex.cursor++
	return ast.Token{Kind: ast.TokenChar, Char: c, Line: lex.line}, nil
}

func (lex *lexer) readWord() ast.Token {
	start := lex.cursor
	for lex.isOk() && isIdentChar(lex.current()) {
		lex.cursor++
	}
	word := string(lex.text[start:lex.cursor])

	if kind, ok := ast.Keywords[word]; ok {
		return ast.Token{Kind: kind, Text: word, Line: lex.line}
	}
	if _, ok := ast.Operators[word]; ok {
		return ast.Token{Kind: ast.TokenOperator, Text: word, Line: lex.line}
	}
	return ast.Token{Kind: ast.TokenIdentifier, Text: word, Line: lex.line}
}

func (lex *lexer) readString() (ast.Token, error) {
	line := lex.line
	lex.cursor++ // opening quote
	start := lex.cursor
	for lex.isOk() && lex.current() != ast.SmbQuoteString {
		if lex.current() == ast.SmbNewLine {
			lex.line++
		}
		lex.cursor++
	}
	if !lex.isOk() {
		return ast.Token{}, lex.newError("Incomplete string !!")
	}
	text := string(lex.text[start:lex.cursor])
	lex.cursor++ // closing quote
	return ast.Token{Kind: ast.TokenString, Text: text, Line: line}, nil
}

func (lex *lexer) readNumber() (ast.Token, error) {
	start := lex.cursor
	var prev rune
	for lex.isOk() {
		c := lex.current()
		if c == '-' && prev != 'e' {
			break
		}
		if !isDigit(c) && c != '.' && c != 'e' && c != '-' {
			break
		}
		prev = c
		lex.cursor++
	}

	text := string(lex.text[start:lex.cursor])
	if !isValidNumber(text) {
		return ast.Token{}, lex.newError("Error reading Number %s", text)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ast.Token{}, lex.newError("Error reading Number %s", text)
	}
	return ast.Token{Kind: ast.TokenNumeric, Text: text, Number: value, Line: lex.line}, nil
}

// isValidNumber accepts forms like 12, 1.5, 10.1e2 and 1e-2. The leading sign of a negative
// number is the unary operator, not part of the literal.
func isValidNumber(s string) bool {
	dot, exp, hyphen := false, false, false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.':
			if dot || exp {
				return false
			}
			dot = true
		case '-':
			if hyphen || i == 0 || s[i-1] != 'e' {
				return false
			}
			hyphen = true
		case 'e':
			if exp || i == 0 || !isDigit(rune(s[i-1])) {
				return false
			}
			if i+1 == len(s) {
				return false
			}
			if next := s[i+1]; !isDigit(rune(next)) && next != '-' {
				return false
			}
			exp = true
		}
	}
	return true
}

func isOperatorStart(c rune) bool {
	if c == ast.SmbBang {
		return true
	}
	_, ok := ast.Operators[string(c)]
	return ok
}

func (lex *lexer) readOperator() ast.Token {
	op := string(lex.current())
	lex.cursor++
	if lex.isOk() && slices.Contains(ast.OperatorSuffixes, lex.current()) {
		op += string(lex.current())
		lex.cursor++
	}
	return ast.Token{Kind: ast.TokenOperator, Text: op, Line: lex.line}
}

// readCommentEnd turns the end of a comment line and the blank lines right after it into a
// single new line token.
func (lex *lexer) readCommentEnd() ast.Token {
	tok := ast.Token{Kind: ast.TokenNewLine, Line: lex.line}
	for lex.isOk() {
		c := lex.current()
		if c == ast.SmbNewLine {
			lex.line++
		} else if !isBlank(c) {
			break
		}
		lex.cursor++
	}
	return tok
}
