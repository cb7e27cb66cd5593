package ast

import (
	"fmt"
	"path/filepath"
)

type Location struct {
	filePath string
	line     uint32
	column   uint32
}

func NewLocation(filePath string, line uint32, column uint32) Location {
	return Location{
		filePath: filePath,
		line:     line,
		column:   column,
	}
}

func NewLocationLine(filePath string, line uint32) Location {
	return NewLocation(filePath, line, 0)
}

func (loc Location) EqualsTo(other Location) bool {
	return loc.filePath == other.filePath && loc.line == other.line && loc.column == other.column
}

func (loc Location) IsEmpty() bool {
	return loc.filePath == ""
}

func (loc Location) CursorString() string {
	if loc.IsEmpty() {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", loc.filePath, loc.line, loc.column)
}

func (loc Location) FilePath() string {
	return loc.filePath
}

// FileName is the base name of the file, used in user facing diagnostics.
func (loc Location) FileName() string {
	return filepath.Base(loc.filePath)
}

func (loc Location) Line() uint32 {
	return loc.line
}

func (loc Location) Column() uint32 {
	return loc.column
}
