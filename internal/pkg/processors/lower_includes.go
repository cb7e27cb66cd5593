package processors

import (
	"kronkc/internal/pkg/ast/parsed"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
	"os"
	"path/filepath"
)

func (c *Compiler) lowerInclude(s *parsed.Include) error {
	attrs := c.current.attrs
	includeId := s.IncludeId()
	if attrs.HasDependency(includeId) {
		return c.newError(s, "An included module is already identified by << %s >> !!", includeId)
	}
	moduleId := names.IncludeId(attrs.ID, includeId)

	if s.RuntimeModule != "" {
		if _, ok := common.RuntimeModules[s.RuntimeModule]; !ok {
			return c.newError(s, "<< %s >> is not a kronk runtime module !!", s.RuntimeModule)
		}
		c.registry.Register(names.NewRuntimeModuleAttrs(moduleId, s.RuntimeModule))
		attrs.Dependencies = append(attrs.Dependencies, includeId)
		return nil
	}

	path := c.resolveInclude(attrs.File, s.Path)
	c.log.Trace("Starting compilation of included file %s", path)

	c.suspend()
	c.includeMode = true
	_, err := c.compileFile(path, moduleId, s.Location())
	c.resume()
	if err != nil {
		return err
	}

	attrs.Dependencies = append(attrs.Dependencies, includeId)
	c.log.Trace("Successfully compiled included module %s", moduleId)
	return nil
}

// resolveInclude maps `a.b.c` to `a/b/c.krk` next to the including file, or else in the first
// search path that has it. A path found nowhere is returned relative to the including file.
func (c *Compiler) resolveInclude(includingFile string, path []string) string {
	rel := filepath.Join(path...) + common.SourceExtension
	local := filepath.Join(filepath.Dir(includingFile), rel)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	for _, dir := range c.searchPaths {
		candidate := filepath.Join(dir, rel)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return local
}
