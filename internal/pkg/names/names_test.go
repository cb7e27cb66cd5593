package names

import (
	"kronkc/internal/pkg/ast/typed"
	"testing"
)

func TestMangle(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{LocalType("main", "Point"), "Entity.main::Point"},
		{ForeignType("main", "l", "Point"), "Entity.main_l::Point"},
		{LocalFunction("main", "rotate"), "_Z4main6rotate"},
		{ForeignFunction("main", "geo", "aire"), "_Z8main_geo4aire"},
		{IncludeId("main_a", "b"), "main_a_b"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}

func TestDemangle(t *testing.T) {
	d, err := Demangle("_Z8main_geo4aire")
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != KindFunction || d.Module != "main_geo" || d.Symbol != "aire" {
		t.Errorf("unexpected %+v", d)
	}

	d, err = Demangle("Entity.main_l::Point")
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind != KindType || d.Module != "main_l" || d.Symbol != "Point" {
		t.Errorf("unexpected %+v", d)
	}

	for _, bad := range []string{"Point", "_Z4mai", "_Z4main6rot", "_Z4main6rotatex", "Entity.main"} {
		if _, err := Demangle(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}

func TestCanonicalFollowsDuplicates(t *testing.T) {
	r := NewRegistry()
	r.MarkDuplicate("main_c_l", "main_l")
	r.MarkDuplicate("main_d_x", "main_c_l")

	if got := r.Primordial("main_d_x"); got != "main_l" {
		t.Errorf("primordial: got %q", got)
	}
	if got := r.Canonical("Entity.main_d_x::Point"); got != "Entity.main_l::Point" {
		t.Errorf("type: got %q", got)
	}
	if got := r.Canonical("_Z8main_c_l4aire"); got != "_Z6main_l4aire" {
		t.Errorf("function: got %q", got)
	}
	if got := r.Canonical("_Z4main4aire"); got != "_Z4main4aire" {
		t.Errorf("local: got %q", got)
	}
}

func TestBindFile(t *testing.T) {
	r := NewRegistry()
	if id, ok := r.BindFile("/p/l.krk", "main_l"); !ok || id != "main_l" {
		t.Fatalf("first bind: %q %v", id, ok)
	}
	if id, ok := r.BindFile("/p/l.krk", "main_c_l"); ok || id != "main_l" {
		t.Fatalf("second bind: %q %v", id, ok)
	}
	if path, ok := r.ModuleFile("main_l"); !ok || path != "/p/l.krk" {
		t.Fatalf("module file: %q %v", path, ok)
	}
}

func TestLookups(t *testing.T) {
	r := NewRegistry()

	lib := NewModuleAttrs("main_l", "l.krk")
	point := typed.NewEntity(LocalType("main_l", "Point"), "main_l", "Point")
	point.FieldNames = []string{"x", "y"}
	point.FieldTypes = []typed.Type{typed.TReal, typed.TReal}
	lib.EntityTypes[point.Name] = point
	lib.EntitySignatures[point.Name] = point.FieldNames
	norm := &typed.Function{Name: LocalFunction("main_l", "norme"), Params: []typed.Type{point}, Result: typed.TReal}
	lib.Functions[norm.Name] = norm
	r.Register(lib)
	r.MarkDuplicate("main_c_l", "main_l")

	r.Register(NewRuntimeModuleAttrs("main_m", "math"))

	current := NewModuleAttrs("main", "main.krk")

	if got, ok := r.EntityType(current, ForeignType("main", "c_l", "Point")); !ok || got != point {
		t.Errorf("entity through duplicate: %v %v", got, ok)
	}
	if fields, ok := r.EntitySignature(current, ForeignType("main", "l", "Point")); !ok || len(fields) != 2 {
		t.Errorf("signature: %v %v", fields, ok)
	}
	if got, ok := r.Function(current, ForeignFunction("main", "l", "norme")); !ok || got != norm {
		t.Errorf("function: %v %v", got, ok)
	}
	if _, ok := r.Function(current, ForeignFunction("main", "l", "absent")); ok {
		t.Error("absent function resolved")
	}
	if _, ok := r.Function(current, ForeignFunction("main", "q", "norme")); ok {
		t.Error("function of unknown module resolved")
	}

	sin, ok := r.Function(current, ForeignFunction("main", "m", "sin"))
	if !ok {
		t.Fatal("runtime function not resolved")
	}
	if sin.Name != "_kmath_sin" || len(sin.Params) != 1 || sin.Result != typed.TReal {
		t.Errorf("runtime function: %+v", sin)
	}

	show, ok := r.Function(current, LocalFunction("main", "afficher"))
	if !ok || show.Name != "_kio_afficher" || !show.Variadic || show.Result != nil {
		t.Errorf("direct function: %+v %v", show, ok)
	}
}

func TestCreatesCircularDependency(t *testing.T) {
	stack := []string{"main", "main_b"}
	if !CreatesCircularDependency(stack, "main") {
		t.Error("expected main to be circular")
	}
	if CreatesCircularDependency(stack, "main_c") {
		t.Error("main_c is not suspended")
	}
}
