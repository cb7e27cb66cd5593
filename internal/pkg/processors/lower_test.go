package processors

import (
	"strings"
	"testing"
)

func mainIR(t *testing.T, src string) string {
	t.Helper()
	return moduleIR(t, map[string]string{"main.krk": src}, "main")
}

func TestLowerNumericWidening(t *testing.T) {
	ir := mainIR(t, "soit x = 3\nsoit y = x + 2.0\n")
	assertContains(t, ir, "fadd double")
}

func TestLowerListIndexIsChecked(t *testing.T) {
	ir := mainIR(t, "soit l = [1, 2, 3]\nsoit a = l[1]\nl[0] = a\n")
	assertContains(t, ir,
		"call void @_kronk_list_idx_check(",
		"call i64 @_kronk_list_fix_idx(",
		"fptosi double")
	if n := strings.Count(ir, "call void @_kronk_list_idx_check("); n != 2 {
		t.Errorf("%d index checks, want 2", n)
	}
}

func TestLowerSliceAllocatesNewStorage(t *testing.T) {
	ir := mainIR(t, "soit l = [1, 2, 3]\nsoit s = l[1:]\nsoit d = l[:-1]\n")
	assertContains(t, ir, "call void @_kronk_list_slice_check(", "call void @_kronk_memcpy(")
	if n := strings.Count(ir, "call void @_kronk_list_slice_check("); n != 2 {
		t.Errorf("%d slice checks, want 2", n)
	}
}

func TestLowerDivisionIsChecked(t *testing.T) {
	ir := mainIR(t, "soit x = 1 / 0\nsoit y = 7 mod 2\n")
	assertContains(t, ir, "call void @_kronk_zero_div_check(double ", "fdiv double", "frem double")
}

func TestLowerConcatenation(t *testing.T) {
	ir := mainIR(t, "soit a = [1, 2] + [3]\nsoit s = \"ab\" + \"c\"\n")
	assertContains(t, ir, "add i64")
}

func TestLowerEntityAssignmentCopies(t *testing.T) {
	ir := mainIR(t, `
Entite Point { x: reel; y: reel }
Entite Forme { centre: Point; noms: liste(str) }
soit a = Forme(centre = Point(x = 1, y = 2))
soit b: Forme
b = a
b.centre.x = 5
`)
	assertContains(t, ir,
		`%"Entity.main::Point" = type { double, double }`,
		`%"Entity.main::Forme" = type { %"Entity.main::Point"*, { i64, { i64, i8* }** }* }`,
		`define internal void @"copy.Entity.main::Forme"(`,
		"copy.field:",
		"copy.cont:")
}

func TestLowerRecursiveEntity(t *testing.T) {
	ir := mainIR(t, `
Entite Noeud { valeur: reel; suivant: Noeud }
soit n = Noeud(valeur = 1)
soit m = Noeud(valeur = 2, suivant = n)
soit c = m
`)
	assertContains(t, ir, `%"Entity.main::Noeud" = type { double, %"Entity.main::Noeud"* }`)
}

func TestLowerFunctions(t *testing.T) {
	ir := mainIR(t, `
fn carre(x: reel) reel {
	ret x * x
	afficher(x)
}
fn montre(l: liste(reel)) {
	afficher(l.size)
}
soit y = carre(2)
montre([y])
`)
	assertContains(t, ir,
		"define double @_Z4main5carre(double %x)",
		"FunctionEntry:",
		"%ReturnValue = alloca double",
		"FunctionExit:",
		"define void @_Z4main6montre({ i64, double* }* %l)",
		"ret void",
		"call double @_Z4main5carre(double ")
	if strings.Count(ir, "@_kio_afficher(i8*") != 2 {
		t.Errorf("statements after ret were lowered:\n%s", ir)
	}
}

func TestLowerPrintFormat(t *testing.T) {
	ir := mainIR(t, "soit l = [vrai]\nafficher(\"x = \", 1, vrai, l)\n")
	assertContains(t, ir,
		`c"sdrbs\00"`,
		`c"<liste(bool)>\00"`,
		"zext i1 true to i32",
		"declare void @_kio_afficher(i8*")
}

func TestLowerControlFlow(t *testing.T) {
	ir := mainIR(t, `
soit i = 0
Tantque i < 10 {
	Si i == 5 {
		i = i + 2
	} Sinon {
		i = i + 1
	}
}
`)
	assertContains(t, ir,
		"while.cond:", "while.body:", "while.exit:",
		"if.then:", "if.else:", "if.cont:",
		"fcmp olt double", "fcmp oeq double")
}

func TestLowerOperators(t *testing.T) {
	ir := mainIR(t, "soit a = 6 << 1 | 3 & ~2\nsoit b = non (a > 1 et a != 3)\nsoit c = -a\n")
	assertContains(t, ir, "shl i64", "or i64", "and i64", "xor i64", "xor i1", "and i1", "fneg double")
}

func TestLowerStringCharacterAssignment(t *testing.T) {
	ir := mainIR(t, "soit s = \"abc\"\ns[0] = \"z\"\nsoit c = s[1]\n")
	assertContains(t, ir, `c"abc\00"`, "load i8")
}

func TestLowerRedeclarationRebinds(t *testing.T) {
	ir := mainIR(t, `
soit a = vrai
Si a {
	soit tmp = 1
} Sinon {
	soit tmp = 2
}
soit x = 1
soit x = faux
x = vrai
`)
	assertContains(t, ir, "if.then:", "if.else:", "store i1 true")
	if n := strings.Count(ir, "alloca double"); n < 3 {
		t.Errorf("%d double slots, want one per declaration", n)
	}
}

func TestLowerErrors(t *testing.T) {
	const point = "Entite P { x: reel }\n"
	cases := []struct {
		src  string
		want string
	}{
		{"soit x = y\n", "Unknown Identifier << y >>"},
		{"soit a = [1, vrai]\n", "Element #2 in initializer list different from previous elements"},
		{"soit a = [1] + [vrai]\n", "Trying to concatenate lists with unequal types"},
		{"soit a = [1] - [2]\n", "The only binary operation allowed between two entities is list concatenation"},
		{"soit a = [1] + 2\n", "not both listes"},
		{"soit a = vrai + faux\n", "Undefined binary operator << + >> between two booleans"},
		{"soit a = 1 et 2\n", "Undefined binary operator << et >> between two real numbers"},
		{"soit a = vrai + 1\n", "Incompatible operand types for the binary operator << + >>"},
		{"soit a = -vrai\n", "Undefined unary operator << - >> for a boolean"},
		{"soit a = non 1\n", "Undefined unary operator << non >> for a real number"},
		{"soit l = [1]\nl.size = 2\n", "kronk can't allow you to modify the size property of a liste"},
		{"soit l = [1]\nsoit a = l.long\n", "<< long >> is not a valid field"},
		{"soit x = 1\nsoit a = x.y\n", "Trying to access a field of a value that is not an entity !!"},
		{"soit x = 1\nsoit a = x[0]\n", "Trying to perform a list operation on a value that is not a liste !!"},
		{"soit l = [1]\nsoit a = l[vrai]\n", "List indices must be real numbers"},
		{point + "soit p = P(x = vrai)\n", "Trying to assign wrong type to << x >> in creation of entity of type << P >> defined in the module main"},
		{point + "soit p = P()\np = 1\n", "Trying to assign a primitive to an entity"},
		{point + "soit p = P()\np = [1]\n", "Assignment operand types do not match"},
		{point + "soit p = P()\nsoit a = p.z\n", "<< z >> is not a valid field of entity type << P >> defined in the module main"},
		{"soit x = 1\nx = vrai\n", "Assignment operand types do not match"},
		{"soit s = \"ab\"\ns[0] = 1\n", "Trying to replace a character of a string with a non-string value"},
		{"Si 1 { }\n", "Condition must be a boolean"},
		{"Tantque \"a\" { }\n", "Condition must be a boolean"},
		{"ret 1\n", "return statements must only be in function definitions"},
		{"fn f() reel { ret vrai }\n", "Return value type does not correspond to function return type"},
		{"fn f() { ret 1 }\n", "Return value type does not correspond to function return type"},
		{"fn f() reel { ret }\n", "Return value type does not correspond to function return type"},
		{"fn f() {\n\tfn g() { }\n}\n", "kronk doesn't allow nesting of function definitions"},
		{"fn f() {\n\tEntite Q { x: reel }\n}\n", "Kronk doesn't allow nesting of entity type definitions"},
		{"fn f() { }\nfn f() { }\n", "The function << f >> is already defined in this module"},
		{"fn f(a: reel) { }\nf()\n", "Too few arguments in the function call to << f >>"},
		{"fn f(a: reel) { }\nf(1, 2)\n", "Too many arguments in the function call to << f >>"},
		{"fn f(a: reel) { }\nf(vrai)\n", "Type mismatch for argument #1 in function call to << f >>"},
		{"fn f() { }\nsoit x = f()\n", "This expression doesn't produce a value"},
		{"inconnue(1)\n", "No function in the module << main >> matches the name << inconnue >>"},
	}
	for _, tc := range cases {
		msg := compileError(t, map[string]string{"main.krk": tc.src})
		if !strings.Contains(msg, tc.want) {
			t.Errorf("%q: error %q does not mention %q", tc.src, msg, tc.want)
		}
	}
}

func TestLowerErrorReportsLine(t *testing.T) {
	msg := compileError(t, map[string]string{"main.krk": "soit x = 1\n\nsoit y = z\n"})
	if want := "Code Generation Error in main.krk\n[Line 3]: Unknown Identifier << z >>"; msg != want {
		t.Errorf("error = %q, want %q", msg, want)
	}
}
