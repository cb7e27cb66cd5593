package processors

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeManifest(t *testing.T) {
	m, err := DecodeManifest(strings.NewReader(`
name: formes
version: 1.2.0
sources: [lib]
dependencies:
  maths:
    git: https://example.com/kronk/maths.git
    tag: v1.0.0
  outils:
    path: ../outils
out: sortie
`))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "formes" || m.Version != "1.2.0" || m.Main != "main.krk" || m.Out != "sortie" {
		t.Errorf("manifest = %+v", m)
	}
	if dep := m.Dependencies["maths"]; dep.Tag != "v1.0.0" || dep.Git == "" {
		t.Errorf("maths = %+v", dep)
	}
	if dep := m.Dependencies["outils"]; dep.Path != "../outils" {
		t.Errorf("outils = %+v", dep)
	}
}

func TestDecodeManifestErrors(t *testing.T) {
	cases := map[string]string{
		"nom: x\n":                                         "field nom not found",
		"dependencies:\n  a: {}\n":                         "needs exactly one of `git` and `path`",
		"dependencies:\n  a: {path: x, git: y}\n":          "needs exactly one of `git` and `path`",
		"dependencies:\n  a: {git: y, tag: t, branch: b}\n": "cannot have both a tag and a branch",
	}
	for src, want := range cases {
		_, err := DecodeManifest(strings.NewReader(src))
		if err == nil || !strings.Contains(err.Error(), want) {
			t.Errorf("%q: error %v does not mention %q", src, err, want)
		}
	}
}

func TestLoadProjectDirectory(t *testing.T) {
	root := t.TempDir()
	dir := writeProject(t, map[string]string{
		"kronk.yml":           "main: app.krk\nsources: [lib]\nout: sortie\ndependencies:\n  outils:\n    path: vendor/outils\n",
		"app.krk":             "soit x = 1\n",
		"lib/a.krk":           "",
		"vendor/outils/b.krk": "",
	})

	project, err := LoadProject(dir, root, false, func(float32, string) {})
	if err != nil {
		t.Fatal(err)
	}
	if project.Entry != filepath.Join(dir, "app.krk") {
		t.Errorf("entry = %s", project.Entry)
	}
	if project.OutDir != filepath.Join(dir, "sortie") {
		t.Errorf("out = %s", project.OutDir)
	}
	want := []string{filepath.Join(dir, "lib"), filepath.Join(dir, "vendor", "outils")}
	if strings.Join(project.SearchPaths, "|") != strings.Join(want, "|") {
		t.Errorf("search paths = %v, want %v", project.SearchPaths, want)
	}
}

func TestLoadProjectFileWithoutManifest(t *testing.T) {
	dir := writeProject(t, map[string]string{"prog.krk": "afficher(1)\n"})
	project, err := LoadProject(filepath.Join(dir, "prog.krk"), t.TempDir(), false, func(float32, string) {})
	if err != nil {
		t.Fatal(err)
	}
	if project.Entry != filepath.Join(dir, "prog.krk") || project.Dir != dir || len(project.SearchPaths) != 0 {
		t.Errorf("project = %+v", project)
	}
}

func TestLoadProjectMissingPathDependency(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"kronk.yml": "dependencies:\n  absent:\n    path: nulle/part\n",
		"main.krk":  "",
	})
	_, err := LoadProject(dir, t.TempDir(), false, func(float32, string) {})
	if err == nil || !strings.Contains(err.Error(), "dependency `absent` not found") {
		t.Errorf("error = %v", err)
	}
}

func TestDependencyDirName(t *testing.T) {
	cases := map[string]Dependency{
		"maths":           {Git: "x"},
		"maths@v1.0":      {Git: "x", Tag: "v1.0"},
		"maths@feature_b": {Git: "x", Branch: "feature/b"},
	}
	for want, dep := range cases {
		if got := dependencyDirName("maths", dep); got != want {
			t.Errorf("dependencyDirName(%+v) = %s, want %s", dep, got, want)
		}
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if m.Main != "main.krk" || len(m.Dependencies) != 0 {
		t.Errorf("manifest = %+v", m)
	}
}
