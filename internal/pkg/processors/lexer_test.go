package processors

import (
	"kronkc/internal/pkg/ast"
	"strings"
	"testing"
)

func scanAll(t *testing.T, src string) []ast.Token {
	t.Helper()
	lex := newLexer("test.krk", src)
	var tokens []ast.Token
	for {
		tok, err := lex.scan()
		if err != nil {
			t.Fatalf("scan(%q): %v", src, err)
		}
		tokens = append(tokens, tok)
		if tok.Is(ast.TokenEOF) {
			return tokens
		}
	}
}

func TestScanKinds(t *testing.T) {
	tokens := scanAll(t, "soit x = 3.5e2\nSi vrai { ret \"ok\" }")
	want := []ast.TokenKind{
		ast.TokenDeclare, ast.TokenIdentifier, ast.TokenOperator, ast.TokenNumeric, ast.TokenNewLine,
		ast.TokenIf, ast.TokenBoolean, ast.TokenChar, ast.TokenReturn, ast.TokenString, ast.TokenChar,
		ast.TokenEOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, kind := range want {
		if tokens[i].Kind != kind {
			t.Errorf("token #%d is %s, want %s", i, tokens[i], kind)
		}
	}
	if tokens[3].Number != 350 {
		t.Errorf("number = %g, want 350", tokens[3].Number)
	}
	if tokens[9].Text != "ok" {
		t.Errorf("string = %q, want ok", tokens[9].Text)
	}
}

func TestScanOperators(t *testing.T) {
	tokens := scanAll(t, "a ** b <= c != d >> e mod f et non g == h")
	var ops []string
	for _, tok := range tokens {
		if tok.Is(ast.TokenOperator) {
			ops = append(ops, tok.Text)
		}
	}
	want := "** <= != >> mod et non =="
	if got := strings.Join(ops, " "); got != want {
		t.Errorf("operators = %q, want %q", got, want)
	}
}

func TestScanScopeSeparator(t *testing.T) {
	tokens := scanAll(t, "geo::aire x: reel")
	if !tokens[1].IsScope() {
		t.Errorf("token %s is not the scope separator", tokens[1])
	}
	if !tokens[4].IsChar(ast.SmbColon) || tokens[4].IsScope() {
		t.Errorf("token %s is not a colon", tokens[4])
	}
}

func TestScanNumbers(t *testing.T) {
	valid := map[string]float64{"12": 12, "1.5": 1.5, "10.1e2": 1010, "1e-2": 0.01}
	for src, want := range valid {
		tokens := scanAll(t, src)
		if tokens[0].Number != want {
			t.Errorf("%s scanned as %g, want %g", src, tokens[0].Number, want)
		}
	}

	for _, src := range []string{"1.2.3", "1e", "1e2.5", "2e--1"} {
		_, err := newLexer("test.krk", src).scan()
		if err == nil || !strings.Contains(err.Error(), "Error reading Number") {
			t.Errorf("%s: got error %v", src, err)
		}
	}
}

func TestScanNegativeNumberIsUnary(t *testing.T) {
	tokens := scanAll(t, "3-1")
	if len(tokens) != 4 || !tokens[1].IsOperator(ast.OpSub) {
		t.Errorf("3-1 scanned as %v", tokens)
	}
}

func TestScanIncompleteString(t *testing.T) {
	_, err := newLexer("test.krk", "\"never closed").scan()
	if err == nil {
		t.Fatal("expected an error")
	}
	if want := "Token Read Error in test.krk\n[Line 1]: Incomplete string !!"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestScanCommentFoldsBlankLines(t *testing.T) {
	tokens := scanAll(t, "a # comment\n\n  \nb")
	if len(tokens) != 4 {
		t.Fatalf("got tokens %v", tokens)
	}
	if !tokens[1].Is(ast.TokenNewLine) {
		t.Errorf("token %s is not a new line", tokens[1])
	}
	if tokens[2].Text != "b" || tokens[2].Line != 4 {
		t.Errorf("b scanned as %s on line %d", tokens[2], tokens[2].Line)
	}
}
