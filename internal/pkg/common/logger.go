package common

import (
	"fmt"
	"github.com/sanity-io/litter"
	"io"
	"strings"
)

const debugPrefix = "[ Debug Info ]: "

// LogWriter collects errors, warnings and (in debug mode) progress messages until flushed.
type LogWriter struct {
	Debug    bool
	errors   []error
	messages []string
}

func NewLogWriter(debug bool) *LogWriter {
	return &LogWriter{Debug: debug}
}

// Err records errs and reports whether any error has been recorded so far.
func (w *LogWriter) Err(errs ...error) bool {
	for _, err := range errs {
		if err != nil {
			w.errors = append(w.errors, err)
		}
	}
	return len(w.errors) > 0
}

func (w *LogWriter) Trace(format string, args ...any) {
	if w == nil || !w.Debug {
		return
	}
	w.messages = append(w.messages, debugPrefix+fmt.Sprintf(format, args...))
}

// Dump records a structural dump of v in debug mode.
func (w *LogWriter) Dump(title string, v any) {
	if w == nil || !w.Debug {
		return
	}
	w.messages = append(w.messages, debugPrefix+title+"\n"+dumper.Sdump(v))
}

func (w *LogWriter) Info(format string, args ...any) {
	w.messages = append(w.messages, fmt.Sprintf(format, args...))
}

func (w *LogWriter) HasErrors() bool {
	return len(w.errors) > 0
}

func (w *LogWriter) Errors() []error {
	return w.errors
}

func (w *LogWriter) Messages() []string {
	return w.messages
}

func (w *LogWriter) Flush(out io.Writer) {
	for _, msg := range w.messages {
		_, _ = fmt.Fprintln(out, msg)
	}
	for _, err := range w.errors {
		_, _ = fmt.Fprintln(out, strings.TrimRight(err.Error(), "\n"))
	}
	w.messages = nil
	w.errors = nil
}

var dumper = litter.Options{
	StripPackageNames: true,
	HideZeroValues:    true,
}
