package common

const CompilerVersion = 100

const (
	RuntimeModuleIO   = "io"
	RuntimeModuleMath = "math"

	RuntimePrint = "afficher"

	SourceExtension = ".krk"
	ManifestName    = "kronk.yml"
)

// RuntimeSignature describes a kronk runtime routine with builtin type names.
// An empty Result means the routine returns nothing.
type RuntimeSignature struct {
	Params   []string
	Result   string
	Variadic bool
}

// RuntimeModules lists the symbols each kronk runtime module exposes.
var RuntimeModules = map[string]map[string]RuntimeSignature{
	RuntimeModuleIO: {
		RuntimePrint: {Variadic: true},
	},
	RuntimeModuleMath: {
		"puiss": {Params: []string{"reel", "reel"}, Result: "reel"},
		"exp":   {Params: []string{"reel"}, Result: "reel"},
		"mod":   {Params: []string{"reel", "reel"}, Result: "reel"},
		"sin":   {Params: []string{"reel"}, Result: "reel"},
		"cos":   {Params: []string{"reel"}, Result: "reel"},
		"tan":   {Params: []string{"reel"}, Result: "reel"},
	},
}

// DirectFunctions can be called from any module without including their runtime module.
var DirectFunctions = map[string]string{
	RuntimePrint: RuntimeModuleIO,
}

// RuntimeSymbol is the link name of symbol in the runtime module.
func RuntimeSymbol(module, symbol string) string {
	return "_k" + module + "_" + symbol
}
