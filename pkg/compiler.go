package kronk

import (
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/processors"
	"path/filepath"
)

const defaultOutDir = "build"

type Options struct {
	// OutDir overrides the output directory of the manifest. Both empty means `build` in the
	// project directory.
	OutDir   string
	CacheDir string
	Upgrade  bool
}

// Compile loads the project at target (a source file or a project directory), compiles its entry
// file together with everything it includes and writes one `.ll` file per module. Failures are
// recorded in log. The paths of the written files are returned.
func Compile(target string, options Options, log *common.LogWriter) []string {
	project, err := processors.LoadProject(target, options.CacheDir, options.Upgrade,
		func(value float32, message string) {
			log.Trace("%s", message)
		})
	if log.Err(err) {
		return nil
	}
	log.Dump("project", project)

	outDir := options.OutDir
	if outDir == "" {
		outDir = project.OutDir
	}
	if outDir == "" {
		outDir = filepath.Join(project.Dir, defaultOutDir)
	}

	compiler := processors.NewCompiler(log, project.SearchPaths)
	if _, err := compiler.CompileFile(project.Entry, ""); log.Err(err) {
		return nil
	}

	written, err := compiler.WriteArtifacts(outDir)
	if log.Err(err) {
		return nil
	}
	for _, path := range written {
		log.Info("wrote %s", path)
	}
	return written
}
