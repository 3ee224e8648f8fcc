// Package diag collects diagnostics reported by the compiler stages.
//
// Every stage reports and continues: a List accumulates errors and
// warnings so that a single pass can surface all of them.
package diag

import (
	"errors"
	"fmt"
)

// Severity classifies a diagnostic.
type Severity uint8

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	}
	return fmt.Sprintf("Severity(%d)", s)
}

// Stage identifies the pipeline stage that produced a diagnostic.
type Stage uint8

const (
	Lex Stage = iota
	Syntax
	Runtime
	Semantic
)

var stageNames = [...]string{
	Lex:      "lex",
	Syntax:   "syntax",
	Runtime:  "runtime",
	Semantic: "semantic",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", s)
}

// Diagnostic is a single reported problem.
// Line and Col are 1-based; Col is 0 when only the line is known.
type Diagnostic struct {
	Line     int
	Col      int
	Severity Severity
	Stage    Stage
	Msg      string
}

// Error implements the error interface.
func (d Diagnostic) Error() string {
	return d.String()
}

// String formats the diagnostic as "line:col: severity: msg".
func (d Diagnostic) String() string {
	switch {
	case d.Line > 0 && d.Col > 0:
		return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Col, d.Severity, d.Msg)
	case d.Line > 0:
		return fmt.Sprintf("line %d: %s: %s", d.Line, d.Severity, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Msg)
}

// List accumulates diagnostics. The zero value is ready to use.
type List struct {
	items    []Diagnostic
	errors   int
	warnings int
}

// Add appends d to the list.
func (l *List) Add(d Diagnostic) {
	l.items = append(l.items, d)
	if d.Severity == Error {
		l.errors++
	} else {
		l.warnings++
	}
}

// Errorf records an error.
func (l *List) Errorf(stage Stage, line, col int, format string, args ...interface{}) {
	l.Add(Diagnostic{Line: line, Col: col, Severity: Error, Stage: stage, Msg: fmt.Sprintf(format, args...)})
}

// Warnf records a warning.
func (l *List) Warnf(stage Stage, line, col int, format string, args ...interface{}) {
	l.Add(Diagnostic{Line: line, Col: col, Severity: Warning, Stage: stage, Msg: fmt.Sprintf(format, args...)})
}

// Errors returns the number of errors recorded.
func (l *List) Errors() int { return l.errors }

// Warnings returns the number of warnings recorded.
func (l *List) Warnings() int { return l.warnings }

// HasErrors reports whether any error was recorded.
func (l *List) HasErrors() bool { return l.errors > 0 }

// Len returns the number of diagnostics recorded.
func (l *List) Len() int { return len(l.items) }

// Items returns a copy of the recorded diagnostics in report order.
func (l *List) Items() []Diagnostic {
	out := make([]Diagnostic, len(l.items))
	copy(out, l.items)
	return out
}

// Err returns the recorded errors joined into one error, or nil if there
// are none. Warnings are not included.
func (l *List) Err() error {
	var errs []error
	for _, d := range l.items {
		if d.Severity == Error {
			errs = append(errs, d)
		}
	}
	return errors.Join(errs...)
}

// Reset discards all recorded diagnostics.
func (l *List) Reset() {
	l.items = nil
	l.errors = 0
	l.warnings = 0
}
