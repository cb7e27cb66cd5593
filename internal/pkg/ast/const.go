package ast

const (
	KwInclude  = "inclu"
	KwFunction = "fn"
	KwReturn   = "ret"
	KwEntity   = "Entite"
	KwDeclare  = "soit"
	KwIf       = "Si"
	KwElse     = "Sinon"
	KwWhile    = "Tantque"
	KwTrue     = "vrai"
	KwFalse    = "faux"
	KwAs       = "as"
	KwList     = "liste"

	TypeBool   = "bool"
	TypeReal   = "reel"
	TypeString = "str"

	OpNot        = "non"
	OpBitNot     = "~"
	OpPower      = "**"
	OpMul        = "*"
	OpDiv        = "/"
	OpMod        = "mod"
	OpAdd        = "+"
	OpSub        = "-"
	OpShl        = "<<"
	OpShr        = ">>"
	OpBitAnd     = "&"
	OpBitXor     = "^"
	OpBitOr      = "|"
	OpLess       = "<"
	OpGreater    = ">"
	OpLessEq     = "<="
	OpGreaterEq  = ">="
	OpEqual      = "=="
	OpNotEqual   = "!="
	OpAnd        = "et"
	OpOr         = "ou"
	OpAssignment = "="

	SeqScope = "::"

	SmbNewLine       = '\n'
	SmbQuoteString   = '"'
	SmbComment       = '#'
	SmbContinuation  = '\\'
	SmbColon         = ':'
	SmbSemicolon     = ';'
	SmbComma         = ','
	SmbDot           = '.'
	SmbParenOpen     = '('
	SmbParenClose    = ')'
	SmbBracketsOpen  = '['
	SmbBracketsClose = ']'
	SmbBracesOpen    = '{'
	SmbBracesClose   = '}'
	SmbBang          = '!'
)

var Keywords = map[string]TokenKind{
	KwInclude:  TokenInclude,
	KwFunction: TokenFunction,
	KwReturn:   TokenReturn,
	KwEntity:   TokenEntity,
	KwDeclare:  TokenDeclare,
	KwIf:       TokenIf,
	KwElse:     TokenElse,
	KwWhile:    TokenWhile,
	KwTrue:     TokenBoolean,
	KwFalse:    TokenBoolean,
}

var BuiltinTypes = []string{TypeBool, TypeReal, TypeString}

// Operators maps every kronk operator to its binding precedence.
var Operators = map[string]int{
	OpNot:    100,
	OpBitNot: 100,

	OpPower: 90,

	OpMul: 80,
	OpDiv: 80,
	OpMod: 80,

	OpAdd: 70,
	OpSub: 70,

	OpShl: 60,
	OpShr: 60,

	OpBitAnd: 50,
	OpBitXor: 40,
	OpBitOr:  30,

	OpLess:      20,
	OpGreater:   20,
	OpLessEq:    20,
	OpGreaterEq: 20,
	OpEqual:     20,
	OpNotEqual:  20,

	OpAnd: 10,
	OpOr:  8,

	OpAssignment: 1,
}

var UnaryOperators = []string{OpSub, OpNot, OpBitNot}

var RelationalOperators = []string{OpLess, OpGreater, OpLessEq, OpGreaterEq, OpEqual, OpNotEqual}

var RightAssociativeOperators = []string{OpPower, OpAssignment}

// OperatorSuffixes extend a one character operator into a two character one.
var OperatorSuffixes = []rune{'*', '=', '<', '>'}
