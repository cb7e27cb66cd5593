package processors

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"kronkc/internal/pkg/ast"
	"kronkc/internal/pkg/common"
	"kronkc/internal/pkg/names"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var Version = strconv.Itoa(int(common.CompilerVersion)/100) + "." + strconv.Itoa(int(common.CompilerVersion)%100)

// Compiler owns the whole compilation: the module registry, the module being compiled and the
// stack of modules suspended by includes.
type Compiler struct {
	registry    *names.Registry
	log         *common.LogWriter
	searchPaths []string

	current     *moduleContext
	scopes      []*scope
	function    *ir.Func
	block       *ir.Block
	parser      *parser
	includeMode bool
	suspended   []*suspendedModuleState
}

// NewCompiler creates a compiler resolving includes against the directory of the including file
// first and then against searchPaths.
func NewCompiler(log *common.LogWriter, searchPaths []string) *Compiler {
	return &Compiler{
		registry:    names.NewRegistry(),
		log:         log,
		searchPaths: searchPaths,
	}
}

func (c *Compiler) Registry() *names.Registry {
	return c.registry
}

// CompileFile compiles the program entry file and everything it includes. An empty moduleId
// means the file name without extension.
func (c *Compiler) CompileFile(path string, moduleId string) (string, error) {
	return c.compileFile(path, moduleId, ast.Location{})
}

func (c *Compiler) compileFile(path string, moduleId string, includedAt ast.Location) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", common.NewSystemError(err)
	}
	if info, err := os.Stat(absPath); err != nil || info.IsDir() {
		return "", common.NewErrorAt(common.ErrorModuleInclude, includedAt, "The file '%s' doesn't exist !! ", path)
	}

	if moduleId == "" {
		moduleId = strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath))
	}

	if primordial, bound := c.registry.BindFile(absPath, moduleId); !bound {
		if c.includeMode && names.CreatesCircularDependency(c.suspendedIds(), primordial) {
			return "", common.NewErrorAt(common.ErrorModuleInclude, includedAt, "Circular dependency detected!! Aborting..")
		}
		c.registry.MarkDuplicate(moduleId, primordial)
		c.log.Trace("%s is already compiled as %s", moduleId, primordial)
		return moduleId, nil
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", common.WrapSystemError(err, "failed to read module `%s`", path)
	}

	attrs := names.NewModuleAttrs(moduleId, absPath)
	c.current = newModuleContext(attrs)
	c.current.main = attrs.IR.NewFunc("main", types.I32)
	c.function = c.current.main
	c.block = c.function.NewBlock("ProgramEntry")
	c.scopes = []*scope{newScope()}

	if c.parser, err = newParser(newLexer(absPath, string(content)), attrs, c.registry, c.log); err != nil {
		return "", err
	}
	if err := c.pump(); err != nil {
		return "", err
	}
	c.scopes = nil

	exit := c.function.NewBlock("ProgramExit")
	if c.block.Term == nil {
		c.block.NewBr(exit)
	}
	exit.NewRet(constant.NewInt(types.I32, 0))

	if c.includeMode {
		c.removeMain()
	}

	c.registry.Register(attrs)
	c.log.Trace("Compile Sucess!! (%s)", moduleId)
	return moduleId, nil
}

// pump parses and lowers the statements of the current file one at a time.
func (c *Compiler) pump() error {
	for {
		stmt, err := c.parser.parseStatement()
		if err != nil {
			return err
		}
		if stmt == nil {
			return nil
		}
		c.log.Dump("statement", stmt)
		if err := c.lowerStatement(stmt); err != nil {
			return err
		}
	}
}

func (c *Compiler) removeMain() {
	m := c.current.module
	funcs := m.Funcs[:0]
	for _, f := range m.Funcs {
		if f != c.current.main {
			funcs = append(funcs, f)
		}
	}
	m.Funcs = funcs
}

func (c *Compiler) suspendedIds() []string {
	return common.Map(func(s *suspendedModuleState) string { return s.module.attrs.ID }, c.suspended)
}

func (c *Compiler) suspend() {
	c.suspended = append(c.suspended, &suspendedModuleState{
		module:      c.current,
		scopes:      c.scopes,
		function:    c.function,
		block:       c.block,
		parser:      c.parser,
		includeMode: c.includeMode,
	})
	c.current, c.scopes, c.function, c.block, c.parser = nil, nil, nil, nil, nil
}

func (c *Compiler) resume() {
	last := c.suspended[len(c.suspended)-1]
	c.suspended = c.suspended[:len(c.suspended)-1]
	c.current = last.module
	c.scopes = last.scopes
	c.function = last.function
	c.block = last.block
	c.parser = last.parser
	c.includeMode = last.includeMode
}

// Modules returns the compiled source modules sorted by id.
func (c *Compiler) Modules() []*names.ModuleAttrs {
	var result []*names.ModuleAttrs
	for _, m := range c.registry.Modules() {
		if !m.IsRuntime() {
			result = append(result, m)
		}
	}
	return result
}

// WriteArtifacts writes `<id>.ll` for every compiled module into dir.
func (c *Compiler) WriteArtifacts(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, common.WrapSystemError(err, "failed to create output directory `%s`", dir)
	}
	var written []string
	for _, m := range c.Modules() {
		path := filepath.Join(dir, m.ID+".ll")
		if err := os.WriteFile(path, []byte(m.IR.String()), 0644); err != nil {
			return nil, common.WrapSystemError(err, "failed to write `%s`", path)
		}
		written = append(written, path)
	}
	return written, nil
}
