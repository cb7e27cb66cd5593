package processors

import (
	"bytes"
	"fmt"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v3"
	"io"
	"kronkc/internal/pkg/common"
	"os"
	"path/filepath"
	"strings"
)

type Progress func(value float32, message string)

const defaultEntry = "main" + common.SourceExtension

// Manifest is the optional kronk.yml at the root of a project.
type Manifest struct {
	Name         string                `yaml:"name"`
	Version      string                `yaml:"version"`
	Main         string                `yaml:"main"`
	Sources      []string              `yaml:"sources"`
	Dependencies map[string]Dependency `yaml:"dependencies"`
	Out          string                `yaml:"out"`
}

// Dependency is either a git repository checked out at Tag or Branch, or a local Path.
type Dependency struct {
	Git    string `yaml:"git"`
	Tag    string `yaml:"tag"`
	Branch string `yaml:"branch"`
	Path   string `yaml:"path"`
}

func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil && err != io.EOF {
		return nil, err
	}
	if m.Main == "" {
		m.Main = defaultEntry
	}
	for name, dep := range m.Dependencies {
		if (dep.Git == "") == (dep.Path == "") {
			return nil, fmt.Errorf("dependency `%s` needs exactly one of `git` and `path`", name)
		}
		if dep.Tag != "" && dep.Branch != "" {
			return nil, fmt.Errorf("dependency `%s` cannot have both a tag and a branch", name)
		}
	}
	return &m, nil
}

// LoadManifest reads dir/kronk.yml. A missing manifest yields the defaults.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, common.ManifestName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Manifest{Main: defaultEntry}, nil
	}
	if err != nil {
		return nil, common.WrapSystemError(err, "failed to read project manifest `%s`", path)
	}
	m, err := DecodeManifest(bytes.NewReader(data))
	if err != nil {
		return nil, common.WrapSystemError(err, "failed to parse project manifest `%s`", path)
	}
	return m, nil
}

// Project is what the compiler needs to know before compiling the entry file.
type Project struct {
	Dir         string
	Manifest    *Manifest
	Entry       string
	SearchPaths []string
	OutDir      string
}

// LoadProject accepts either a kronk source file or a project directory. Git dependencies are
// cloned into cacheDir, and pulled again when upgrade is set.
func LoadProject(target, cacheDir string, upgrade bool, progress Progress) (*Project, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, common.NewSystemError(err)
	}
	info, err := os.Stat(absTarget)
	if err != nil {
		return nil, common.WrapSystemError(err, "failed to open `%s`", target)
	}

	dir, entry := absTarget, ""
	if !info.IsDir() {
		dir, entry = filepath.Dir(absTarget), absTarget
	}

	manifest, err := LoadManifest(dir)
	if err != nil {
		return nil, err
	}
	if entry == "" {
		entry = filepath.Join(dir, manifest.Main)
	}

	project := &Project{Dir: dir, Manifest: manifest, Entry: entry}
	if manifest.Out != "" {
		project.OutDir = filepath.Join(dir, manifest.Out)
	}
	for _, src := range manifest.Sources {
		project.SearchPaths = append(project.SearchPaths, filepath.Join(dir, src))
	}

	for _, name := range common.SortedKeys(manifest.Dependencies) {
		depDir, err := fetchDependency(name, manifest.Dependencies[name], dir, cacheDir, upgrade, progress)
		if err != nil {
			return nil, err
		}
		project.SearchPaths = append(project.SearchPaths, depDir)
	}
	return project, nil
}

func fetchDependency(
	name string, dep Dependency, projectDir, cacheDir string, upgrade bool, progress Progress,
) (string, error) {
	if dep.Path != "" {
		path := dep.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", common.WrapSystemError(err, "dependency `%s` not found", name)
		}
		return path, nil
	}

	dir := filepath.Join(cacheDir, dependencyDirName(name, dep))
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		progress(0, fmt.Sprintf("downloading dependency `%s`", name))
		w := bytes.NewBufferString("")
		options := &git.CloneOptions{URL: dep.Git, Progress: w}
		switch {
		case dep.Tag != "":
			options.ReferenceName = plumbing.NewTagReferenceName(dep.Tag)
			options.SingleBranch = true
		case dep.Branch != "":
			options.ReferenceName = plumbing.NewBranchReferenceName(dep.Branch)
			options.SingleBranch = true
		}
		if _, err := git.PlainClone(dir, false, options); err != nil {
			_ = os.RemoveAll(dir)
			return "", common.WrapSystemError(err, "failed to download dependency `%s`\n%s", name, w.String())
		}
		progress(1, fmt.Sprintf("%s\ndependency `%s` downloaded", w.String(), name))
		return dir, nil
	}

	if upgrade && dep.Tag == "" {
		r, err := git.PlainOpen(dir)
		if err != nil {
			return "", common.WrapSystemError(err, "failed to open dependency `%s`", name)
		}
		worktree, err := r.Worktree()
		if err != nil {
			return "", common.WrapSystemError(err, "failed to update dependency `%s`", name)
		}
		w := bytes.NewBufferString("")
		options := &git.PullOptions{Progress: w}
		if dep.Branch != "" {
			options.ReferenceName = plumbing.NewBranchReferenceName(dep.Branch)
		}
		err = worktree.Pull(options)
		switch {
		case err == git.NoErrAlreadyUpToDate:
			progress(1, fmt.Sprintf("dependency `%s` is up to date", name))
		case err != nil:
			return "", common.WrapSystemError(err, "failed to update dependency `%s`\n%s", name, w.String())
		default:
			progress(1, fmt.Sprintf("%s\ndependency `%s` updated", w.String(), name))
		}
	}
	return dir, nil
}

// dependencyDirName keeps checkouts of different refs of one dependency apart.
func dependencyDirName(name string, dep Dependency) string {
	ref := dep.Tag
	if ref == "" {
		ref = dep.Branch
	}
	if ref == "" {
		return name
	}
	return name + "@" + strings.ReplaceAll(ref, "/", "_")
}
