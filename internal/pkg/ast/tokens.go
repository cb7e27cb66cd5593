package ast

import "fmt"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInclude
	TokenFunction
	TokenReturn
	TokenEntity
	TokenDeclare
	TokenIf
	TokenElse
	TokenWhile
	TokenIdentifier
	TokenBoolean
	TokenNumeric
	TokenString
	TokenOperator
	TokenNewLine
	TokenChar
)

var tokenKindNames = []string{
	"end of file",
	"include",
	"function",
	"return",
	"entity",
	"declaration",
	"if",
	"else",
	"while",
	"identifier",
	"boolean literal",
	"numeric literal",
	"string literal",
	"operator",
	"new line",
	"character",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Token is produced one at a time by the lexer. At most one of Text, Number and Char is
// meaningful, depending on Kind.
type Token struct {
	Kind   TokenKind
	Text   string
	Number float64
	Char   rune
	Line   uint32
}

func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// IsChar reports whether t is the structural character c.
func (t Token) IsChar(c rune) bool {
	return t.Kind == TokenChar && t.Text == "" && t.Char == c
}

// IsScope reports whether t is the `::` separator of a foreign reference.
func (t Token) IsScope() bool {
	return t.Kind == TokenChar && t.Text == SeqScope
}

func (t Token) IsOperator(op string) bool {
	return t.Kind == TokenOperator && t.Text == op
}

func (t Token) String() string {
	switch t.Kind {
	case TokenIdentifier, TokenOperator, TokenBoolean:
		return fmt.Sprintf("%s `%s`", t.Kind, t.Text)
	case TokenString:
		return fmt.Sprintf("%s \"%s\"", t.Kind, t.Text)
	case TokenNumeric:
		return fmt.Sprintf("%s %g", t.Kind, t.Number)
	case TokenChar:
		if t.Text != "" {
			return fmt.Sprintf("`%s`", t.Text)
		}
		return fmt.Sprintf("`%c`", t.Char)
	default:
		return t.Kind.String()
	}
}
