package processors

import (
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
	"strconv"
	"strings"
	"testing"
)

func parseSource(src string) ([]parsed.Node, error) {
	module := names.NewModuleAttrs("main", "main.krk")
	p, err := newParser(newLexer("main.krk", src), module, names.NewRegistry(), common.NewLogWriter(false))
	if err != nil {
		return nil, err
	}
	var stmts []parsed.Node
	for {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return stmts, nil
		}
		stmts = append(stmts, stmt)
	}
}

func mustParse(t *testing.T, src string) []parsed.Node {
	t.Helper()
	stmts, err := parseSource(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return stmts
}

func mustParseExpression(t *testing.T, src string) parsed.Node {
	t.Helper()
	stmts := mustParse(t, src)
	if len(stmts) != 1 {
		t.Fatalf("parse %q: got %d statements", src, len(stmts))
	}
	return stmts[0]
}

// render prints an expression tree in a fully parenthesized form.
func render(n parsed.Node) string {
	switch e := n.(type) {
	case *parsed.Identifier:
		return e.Name
	case *parsed.NumericLiteral:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *parsed.BooleanLiteral:
		if e.Value {
			return ast.KwTrue
		}
		return ast.KwFalse
	case *parsed.BinaryExpr:
		return "(" + render(e.Left) + " " + e.Op + " " + render(e.Right) + ")"
	case *parsed.UnaryExpr:
		return "(" + e.Op + " " + render(e.Operand) + ")"
	case *parsed.Assignment:
		return "(" + render(e.Target) + " = " + render(e.Value) + ")"
	case *parsed.FieldSelect:
		return render(e.Entity) + "." + e.Field
	case *parsed.ListIndex:
		return render(e.List) + "[" + render(e.Index) + "]"
	case *parsed.ListSlice:
		s := render(e.List) + "["
		if e.Start != nil {
			s += render(e.Start)
		}
		s += ":"
		if e.End != nil {
			s += render(e.End)
		}
		return s + "]"
	case *parsed.Call:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = render(arg)
		}
		return e.Callee + "(" + strings.Join(args, ", ") + ")"
	}
	return "?"
}

func TestParseExpressions(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 + 2 * 3 - 4", "((1 + (2 * 3)) - 4)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"2 ** 3 ** 2", "(2 ** (3 ** 2))"},
		{"a = b = c", "(a = (b = c))"},
		{"a = b + c", "(a = (b + c))"},
		{"a < b < c", "((a < b) et (b < c))"},
		{"a == b et c ou d", "(((a == b) et c) ou d)"},
		{"x & 1 | y ^ 2", "((x & 1) | (y ^ 2))"},
		{"-a[1]", "(- a[1])"},
		{"non vrai et faux", "((non vrai) et faux)"},
		{"s.p[1].x + 1", "(s.p[1].x + 1)"},
		{"l[1:] + l[:2] + l[:]", "((l[1:] + l[:2]) + l[:])"},
		{"f(1, g(2)) * 3", "(_Z4main1f(1, _Z4main1g(2)) * 3)"},
	}
	for _, tc := range cases {
		if got := render(mustParseExpression(t, tc.src)); got != tc.want {
			t.Errorf("%s parsed as %s, want %s", tc.src, got, tc.want)
		}
	}
}

func TestRelationalChainingClonesSharedOperand(t *testing.T) {
	and := mustParseExpression(t, "a < b[1] < c").(*parsed.BinaryExpr)
	left := and.Left.(*parsed.BinaryExpr).Right
	right := and.Right.(*parsed.BinaryExpr).Left
	if left == right {
		t.Fatal("the middle operand is shared between both comparisons")
	}
	if render(left) != render(right) {
		t.Errorf("middle operands differ: %s and %s", render(left), render(right))
	}
}

func TestParseStatements(t *testing.T) {
	stmts := mustParse(t, `
# a program
soit x: reel
soit y = 3; soit l: liste(liste(reel))
Si x < y {
	x = y
} Sinon Si x > y {
	y = x
} Sinon {
	afficher(x)
}
Tantque x < 10 { x = x + 1 }
fn carre(r: reel) reel {
	ret r * r
}
fn rien() {
	ret
}
inclu :math as m
`)
	kinds := make([]string, len(stmts))
	for i, s := range stmts {
		kinds[i] = typeName(s)
	}
	want := "Declaration InitDeclaration Declaration If While FunctionDefinition FunctionDefinition Include"
	if got := strings.Join(kinds, " "); got != want {
		t.Fatalf("statements = %s, want %s", got, want)
	}

	if l := stmts[2].(*parsed.Declaration); l.Type.String() != "liste(liste(reel))" {
		t.Errorf("list type = %s", l.Type)
	}
	ifStmt := stmts[3].(*parsed.If)
	if _, ok := ifStmt.Else.(*parsed.If); !ok {
		t.Errorf("else branch is %T, want a nested if", ifStmt.Else)
	}
	proto := stmts[5].(*parsed.FunctionDefinition).Prototype
	if proto.Name != "_Z4main5carre" || proto.Symbol != "carre" || proto.ReturnType.String() != "reel" {
		t.Errorf("prototype = %+v", proto)
	}
	if stmts[6].(*parsed.FunctionDefinition).Prototype.ReturnType != nil {
		t.Error("rien should return nothing")
	}
	if include := stmts[7].(*parsed.Include); include.RuntimeModule != "math" || include.IncludeId() != "m" {
		t.Errorf("include = %+v", include)
	}
}

func typeName(n parsed.Node) string {
	switch n.(type) {
	case *parsed.Declaration:
		return "Declaration"
	case *parsed.InitDeclaration:
		return "InitDeclaration"
	case *parsed.If:
		return "If"
	case *parsed.While:
		return "While"
	case *parsed.FunctionDefinition:
		return "FunctionDefinition"
	case *parsed.Include:
		return "Include"
	case *parsed.EntityDefinition:
		return "EntityDefinition"
	}
	return "?"
}

func TestParseEntities(t *testing.T) {
	stmts := mustParse(t, `
Entite Noeud { valeur: reel; suivant: Noeud }
Entite Point {
	x: reel
	y: reel
}
soit p = Point(y = 2, x = 1)
soit q = Point()
`)
	def := stmts[0].(*parsed.EntityDefinition)
	if def.Type.Name != "Entity.main::Noeud" || strings.Join(def.FieldNames, ",") != "valeur,suivant" {
		t.Errorf("definition = %+v", def)
	}
	literal := stmts[2].(*parsed.InitDeclaration).Value.(*parsed.EntityLiteral)
	if render(literal.Fields[0]) != "1" || render(literal.Fields[1]) != "2" {
		t.Errorf("fields are not matched by name: %s, %s", render(literal.Fields[0]), render(literal.Fields[1]))
	}
	empty := stmts[3].(*parsed.InitDeclaration).Value.(*parsed.EntityLiteral)
	if len(empty.Fields) != 2 || empty.Fields[0] != nil || empty.Fields[1] != nil {
		t.Errorf("default construction fields = %v", empty.Fields)
	}
}

func TestParseErrors(t *testing.T) {
	const point = "Entite P { x: reel; y: reel }\n"
	cases := []struct {
		src  string
		want string
	}{
		{"a b", "A statment must end with a new line or semi-colon !!"},
		{"1 = 2", "Invalid expression on the left hand side of assigment"},
		{"l[]", "How are you trying to access the list ??"},
		{"soit x", "Expected either ':' or '=' after start of declaration"},
		{"soit x: Inconnu", "The type << Inconnu >> doesn't exist !!"},
		{"geo::aire(1)", "No module is included under the name << geo >>"},
		{"Entite P { }", "kronk cannot create an entity with zero fields"},
		{"Entite P { x: reel; x: bool }", "<< x >> is already a field of << P >>"},
		{point + "Entite P { z: reel }", "Entity type << P >> already exists"},
		{point + "soit p = P(z = 1)", "<< z >> is not a valid field of << P >>"},
		{point + "soit p = P(x = 1, x = 2)", "<< x >> already has a value"},
		{point + "soit p = P(x = 1, y = 2, x = 3)", "Definition is too long for entityType << P >>"},
		{point + "soit p = P(x 1)", "Expected '=' after << x >>"},
		{"* 2", "<< * >> is not a unary operator"},
		{"soit x = (1 + 2", "expected ')' "},
		{"fn f(a: reel { }", "Expected ',' or ')' after parameter type"},
		{"x = 1 \\ 2", "Expected newline after \\"},
	}
	for _, tc := range cases {
		_, err := parseSource(tc.src)
		if err == nil {
			t.Errorf("%q: expected error %q", tc.src, tc.want)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%q: error %q does not mention %q", tc.src, err, tc.want)
		}
		if !strings.HasPrefix(err.Error(), "Parse Error in main.krk") {
			t.Errorf("%q: error %q is not a parse error", tc.src, err)
		}
	}
}

func TestLineContinuation(t *testing.T) {
	stmts := mustParse(t, "soit x = 1 + \\\n  2\nsoit y = x")
	if len(stmts) != 2 {
		t.Fatalf("got %d statements", len(stmts))
	}
	if got := render(stmts[0].(*parsed.InitDeclaration).Value); got != "(1 + 2)" {
		t.Errorf("continued expression = %s", got)
	}
}
