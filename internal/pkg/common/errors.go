package common

import (
	"fmt"
	"github.com/pkg/errors"
	"kronkc/internal/pkg/ast"
	"runtime"
)

type ErrorKind string

const (
	ErrorTokenRead      ErrorKind = "Token Read"
	ErrorParse          ErrorKind = "Parse"
	ErrorCodeGeneration ErrorKind = "Code Generation"
	ErrorModuleInclude  ErrorKind = "Module Include"
)

// Error is a fatal compilation error attributed to a source position.
type Error struct {
	Kind     ErrorKind
	Location ast.Location
	Message  string
}

func (e Error) Error() string {
	if e.Location.IsEmpty() {
		return fmt.Sprintf("%s Error\n%s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s Error in %s\n[Line %d]: %s", e.Kind, e.Location.FileName(), e.Location.Line(), e.Message)
}

func NewErrorAt(kind ErrorKind, location ast.Location, format string, args ...any) error {
	return Error{Kind: kind, Location: location, Message: fmt.Sprintf(format, args...)}
}

func NewSystemError(err error) error {
	return systemError{inner: errors.WithStack(err)}
}

func NewSystemErrorf(format string, args ...any) error {
	return systemError{inner: errors.Errorf(format, args...)}
}

func WrapSystemError(err error, format string, args ...any) error {
	return systemError{inner: errors.Wrapf(err, format, args...)}
}

type systemError struct {
	inner error
}

func (e systemError) Error() string {
	return fmt.Sprintf("system error: %v", e.inner)
}

func (e systemError) Unwrap() error {
	return e.inner
}

func NewCompilerError(message string) error {
	_, file, line, _ := runtime.Caller(1)
	return compilerError{message: message, file: file, line: line}
}

type compilerError struct {
	message string
	file    string
	line    int
}

func (e compilerError) Error() string {
	return fmt.Sprintf("%s at %s:%d", e.message, e.file, e.line)
}
