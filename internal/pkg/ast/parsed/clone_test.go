package parsed

import (
	"kronkc/internal/pkg/ast"
	"reflect"
	"testing"
)

func TestCloneIsDeep(t *testing.T) {
	loc := ast.NewLocationLine("main.krk", 3)
	original := NewBinaryExpr(loc, ast.OpAdd,
		NewListIndex(loc, NewIdentifier(loc, "l"), NewNumericLiteral(loc, 1)),
		NewCall(loc, "_Z4main1f", []Node{NewFieldSelect(loc, NewIdentifier(loc, "p"), "x")}))

	clone := Clone(original)
	if !reflect.DeepEqual(original, clone) {
		t.Fatal("clone differs from the original")
	}

	a, b := original.(*BinaryExpr), clone.(*BinaryExpr)
	if a == b || a.Left == b.Left || a.Right == b.Right {
		t.Fatal("clone shares nodes with the original")
	}
	if a.Right.(*Call).Args[0] == b.Right.(*Call).Args[0] {
		t.Error("clone shares call arguments with the original")
	}

	b.Left.(*ListIndex).List.(*Identifier).Name = "m"
	if a.Left.(*ListIndex).List.(*Identifier).Name != "l" {
		t.Error("renaming in the clone changed the original")
	}
}

func TestCloneStatements(t *testing.T) {
	loc := ast.NewLocationLine("main.krk", 1)
	body := NewCompoundStatement(loc, []Node{NewReturn(loc, NewIdentifier(loc, "x"))})
	proto := NewPrototype(loc, "_Z4main1f", "f", []string{"x"}, []TypeId{NewBuiltinTypeId("reel")}, nil)
	stmts := []Node{
		NewFunctionDefinition(loc, proto, body),
		NewIf(loc, NewBooleanLiteral(loc, true), body, nil),
		NewWhile(loc, NewBooleanLiteral(loc, false), body),
		NewInclude(loc, []string{"a", "b"}, "", "c"),
		NewListSlice(loc, NewIdentifier(loc, "l"), nil, NewNumericLiteral(loc, 2)),
	}
	for _, stmt := range stmts {
		if clone := Clone(stmt); !reflect.DeepEqual(stmt, clone) {
			t.Errorf("clone of %T differs from the original", stmt)
		}
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) is not nil")
	}
}
