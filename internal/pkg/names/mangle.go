package names

import (
	"fmt"
	"strconv"
	"strings"
)

type SymbolKind int

const (
	KindType SymbolKind = iota
	KindFunction
)

const (
	typePrefix     = "Entity."
	typeSeparator  = "::"
	functionPrefix = "_Z"
)

// LocalType mangles an entity type defined in module, e.g. `Entity.main::Point`.
func LocalType(module, name string) string {
	return typePrefix + module + typeSeparator + name
}

// ForeignType mangles an entity type referenced through the include alias of module,
// e.g. `l::Point` in main gives `Entity.main_l::Point`.
func ForeignType(module, alias, name string) string {
	return LocalType(IncludeId(module, alias), name)
}

// LocalFunction mangles a function defined in module, e.g. rotate in main gives `_Z4main6rotate`.
func LocalFunction(module, name string) string {
	return functionPrefix + strconv.Itoa(len(module)) + module + strconv.Itoa(len(name)) + name
}

func ForeignFunction(module, alias, name string) string {
	return LocalFunction(IncludeId(module, alias), name)
}

// IncludeId is the module id used to compile a module included by module under alias.
func IncludeId(module, alias string) string {
	return module + "_" + alias
}

func Mangle(kind SymbolKind, module, name string) string {
	if kind == KindType {
		return LocalType(module, name)
	}
	return LocalFunction(module, name)
}

type Demangled struct {
	Kind   SymbolKind
	Module string
	Symbol string
}

// Demangle splits a mangled name into the module it was mangled with and its raw name.
func Demangle(name string) (Demangled, error) {
	if strings.HasPrefix(name, typePrefix) {
		str := name[len(typePrefix):]
		idx := strings.Index(str, typeSeparator)
		if idx < 0 {
			return Demangled{}, fmt.Errorf("malformed type name `%s`", name)
		}
		return Demangled{Kind: KindType, Module: str[:idx], Symbol: str[idx+len(typeSeparator):]}, nil
	}

	if strings.HasPrefix(name, functionPrefix) {
		str := name[len(functionPrefix):]
		module, rest, ok := readLengthPrefixed(str)
		if !ok {
			return Demangled{}, fmt.Errorf("malformed function name `%s`", name)
		}
		symbol, rest, ok := readLengthPrefixed(rest)
		if !ok || rest != "" {
			return Demangled{}, fmt.Errorf("malformed function name `%s`", name)
		}
		return Demangled{Kind: KindFunction, Module: module, Symbol: symbol}, nil
	}

	return Demangled{}, fmt.Errorf("`%s` is not a mangled name", name)
}

func readLengthPrefixed(s string) (value string, rest string, ok bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil || i+n > len(s) {
		return "", "", false
	}
	return s[i : i+n], s[i+n:], true
}
