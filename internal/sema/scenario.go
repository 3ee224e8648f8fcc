package sema

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/types"
)

// A Scenario is a scripted sequence of symbol table and checker operations,
// for exercising the semantic rules without source text.
//
//	name: shadowing
//	steps:
//	  - {op: declare, name: x, type: int, init: true, line: 1}
//	  - {op: push}
//	  - {op: declare, name: x, type: float, line: 2}
//	  - {op: lookup, name: x}
//	  - {op: pop}
type Scenario struct {
	Name   string  `yaml:"name"`
	Steps  []Step  `yaml:"steps"`
	Expect *Expect `yaml:"expect,omitempty"`
}

// Step is one scenario operation. Op is one of declare, assign, use, init,
// push, pop and lookup.
//
// For declare, Type is the declared type. For assign, Type is the type of
// the assigned value and LHS, when empty, defaults to the declared type of
// Name.
type Step struct {
	Op   string `yaml:"op"`
	Name string `yaml:"name,omitempty"`
	Type string `yaml:"type,omitempty"`
	LHS  string `yaml:"lhs,omitempty"`
	Init bool   `yaml:"init,omitempty"`
	Line int    `yaml:"line,omitempty"`
}

// Expect holds the counts a scenario should produce.
type Expect struct {
	Errors   int `yaml:"errors"`
	Warnings int `yaml:"warnings"`
}

// Lookup is the outcome of a lookup step.
type Lookup struct {
	Name  string
	Found bool
	Type  types.Type
	Scope int
}

func (l Lookup) String() string {
	if !l.Found {
		return fmt.Sprintf("lookup(%s) -> not found", l.Name)
	}
	return fmt.Sprintf("lookup(%s) -> %s (scope %d)", l.Name, l.Type, l.Scope)
}

// Report summarizes a scenario run.
type Report struct {
	Errors      int
	Warnings    int
	Diagnostics []diag.Diagnostic
	Lookups     []Lookup
}

// Matches reports whether r has the counts in e. A nil Expect matches any
// report.
func (r *Report) Matches(e *Expect) bool {
	return e == nil || (r.Errors == e.Errors && r.Warnings == e.Warnings)
}

// LoadScenario decodes a YAML scenario and validates its steps.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

func (st Step) validate() error {
	switch st.Op {
	case "declare", "assign":
		if st.Name == "" {
			return fmt.Errorf("%s needs a name", st.Op)
		}
		if _, ok := types.LookupType(st.Type); !ok {
			return fmt.Errorf("%s %s: unknown type %q", st.Op, st.Name, st.Type)
		}
		if st.LHS != "" {
			if _, ok := types.LookupType(st.LHS); !ok {
				return fmt.Errorf("%s %s: unknown type %q", st.Op, st.Name, st.LHS)
			}
		}
	case "use", "init", "lookup":
		if st.Name == "" {
			return fmt.Errorf("%s needs a name", st.Op)
		}
	case "push", "pop":
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}

// RunScenario executes sc on a fresh Checker.
func RunScenario(sc *Scenario) (*Report, error) {
	c := NewChecker()
	rep := new(Report)
	for i, st := range sc.Steps {
		if err := c.step(st, rep); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	rep.Errors = c.Errors()
	rep.Warnings = c.Warnings()
	rep.Diagnostics = c.diags.Items()
	return rep, nil
}

func (c *Checker) step(st Step, rep *Report) error {
	if err := st.validate(); err != nil {
		return err
	}
	switch st.Op {
	case "declare":
		typ, _ := types.LookupType(st.Type)
		// Redeclarations are recorded as diagnostics.
		_, _ = c.Declare(st.Name, typ, st.Init, st.Line)

	case "assign":
		rhs, _ := types.LookupType(st.Type)
		lhs, ok := types.LookupType(st.LHS)
		if !ok {
			sym := c.table.Lookup(st.Name)
			if sym == nil {
				c.CheckUse(st.Name, st.Line)
				return nil
			}
			lhs = sym.Type
		}
		c.CheckAssignment(st.Name, lhs, rhs, st.Line)

	case "use":
		c.CheckUse(st.Name, st.Line)

	case "init":
		c.MarkInitialized(st.Name)

	case "push":
		c.PushScope()

	case "pop":
		c.PopScope()

	case "lookup":
		l := Lookup{Name: st.Name}
		if sym := c.table.Lookup(st.Name); sym != nil {
			l.Found, l.Type, l.Scope = true, sym.Type, sym.Scope
		}
		rep.Lookups = append(rep.Lookups, l)
	}
	return nil
}
