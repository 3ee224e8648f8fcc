package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/minic/internal/diag"
)

// NumBuckets is the number of hash buckets in a SymbolTable.
const NumBuckets = 64

// hashName is the djb2 hash of name reduced to a bucket index.
func hashName(name string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(name); i++ {
		h = h<<5 + h + uint32(name[i])
	}
	return h % NumBuckets
}

// SymbolTable maps names to symbols across nested block scopes.
//
// Symbols live in a fixed array of hash buckets with separate chaining.
// Every symbol records the scope level it was declared at; Lookup returns
// the same-named symbol with the highest level, so inner declarations
// shadow outer ones. PopScope evicts the innermost level.
//
// Problems are reported and counted in the table's diagnostic list rather
// than aborting, so the table stays usable after an error.
type SymbolTable struct {
	buckets [NumBuckets]*Symbol
	current int   // current scope level, 0 is global
	saved   []int // scope levels to restore on PopScope
	count   int   // number of live symbols
	diags   *diag.List
}

// NewSymbolTable returns an empty table at scope level 0 that records
// diagnostics in dl. If dl is nil the table allocates its own list.
func NewSymbolTable(dl *diag.List) *SymbolTable {
	if dl == nil {
		dl = new(diag.List)
	}
	return &SymbolTable{diags: dl}
}

// Scope returns the current scope level.
func (st *SymbolTable) Scope() int { return st.current }

// Depth returns the number of scopes pushed and not yet popped.
func (st *SymbolTable) Depth() int { return len(st.saved) }

// Len returns the number of live symbols.
func (st *SymbolTable) Len() int { return st.count }

// Diagnostics returns the list the table reports into.
func (st *SymbolTable) Diagnostics() *diag.List { return st.diags }

// Errors returns the number of errors reported so far.
func (st *SymbolTable) Errors() int { return st.diags.Errors() }

// Warnings returns the number of warnings reported so far.
func (st *SymbolTable) Warnings() int { return st.diags.Warnings() }

// Lookup returns the innermost visible symbol called name, or nil.
func (st *SymbolTable) Lookup(name string) *Symbol {
	var best *Symbol
	for sym := st.buckets[hashName(name)]; sym != nil; sym = sym.next {
		if sym.Name == name && (best == nil || sym.Scope > best.Scope) {
			best = sym
		}
	}
	return best
}

// LookupCurrent returns the symbol called name declared at the current
// scope level, or nil.
func (st *SymbolTable) LookupCurrent(name string) *Symbol {
	for sym := st.buckets[hashName(name)]; sym != nil; sym = sym.next {
		if sym.Name == name && sym.Scope == st.current {
			return sym
		}
	}
	return nil
}

// Insert declares name at the current scope level.
//
// A second declaration of the same name in the same scope is an error: the
// existing symbol is left unchanged and a *RedeclaredError is returned.
// Declaring a name that is visible from an outer scope succeeds with a
// shadowing warning.
func (st *SymbolTable) Insert(name string, typ Type, initialized bool, line int) (*Symbol, error) {
	if prev := st.LookupCurrent(name); prev != nil {
		err := &RedeclaredError{Name: name, Line: line, Previous: prev}
		st.diags.Errorf(diag.Semantic, line, 0, "%s", err.Error())
		return nil, err
	}

	if outer := st.Lookup(name); outer != nil && outer.Scope < st.current {
		st.diags.Warnf(diag.Semantic, line, 0, "'%s' shadows declaration from scope %d (line %d)",
			name, outer.Scope, outer.Line)
	}

	sym := &Symbol{
		Name:        name,
		Type:        typ,
		Scope:       st.current,
		Initialized: initialized,
		Line:        line,
	}
	idx := hashName(name)
	sym.next = st.buckets[idx]
	st.buckets[idx] = sym
	st.count++
	return sym, nil
}

// PushScope enters a new, deeper scope.
func (st *SymbolTable) PushScope() {
	st.saved = append(st.saved, st.current)
	st.current++
}

// PopScope removes every symbol declared at the current level and returns
// to the enclosing scope. At the global level there is nothing to return to:
// global symbols are evicted and the level stays 0.
func (st *SymbolTable) PopScope() {
	st.evict(func(sym *Symbol) bool { return sym.Scope == st.current })

	if n := len(st.saved); n > 0 {
		st.current = st.saved[n-1]
		st.saved = st.saved[:n-1]
	}
}

// Reset drops every symbol. The scope level and diagnostics are kept.
func (st *SymbolTable) Reset() {
	for i := range st.buckets {
		st.buckets[i] = nil
	}
	st.count = 0
}

func (st *SymbolTable) evict(doomed func(*Symbol) bool) {
	for i := range st.buckets {
		pp := &st.buckets[i]
		for *pp != nil {
			if doomed(*pp) {
				*pp = (*pp).next
				st.count--
			} else {
				pp = &(*pp).next
			}
		}
	}
}

// Symbols returns the live symbols ordered by scope level, then declaration
// line, then name.
func (st *SymbolTable) Symbols() []*Symbol {
	syms := make([]*Symbol, 0, st.count)
	for _, head := range st.buckets {
		for sym := head; sym != nil; sym = sym.next {
			syms = append(syms, sym)
		}
	}
	sort.Slice(syms, func(i, j int) bool {
		a, b := syms[i], syms[j]
		if a.Scope != b.Scope {
			return a.Scope < b.Scope
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Name < b.Name
	})
	return syms
}

// String returns a nested dump of the live symbols for debugging.
func (st *SymbolTable) String() string {
	var buf strings.Builder
	syms := st.Symbols()
	i := 0
	for level := 0; level <= st.current; level++ {
		prefix := strings.Repeat("  ", level)
		fmt.Fprintf(&buf, "%sscope %d {\n", prefix, level)
		for ; i < len(syms) && syms[i].Scope == level; i++ {
			fmt.Fprintf(&buf, "%s  %s\n", prefix, syms[i])
		}
	}
	for level := st.current; level >= 0; level-- {
		fmt.Fprintf(&buf, "%s}\n", strings.Repeat("  ", level))
	}
	return buf.String()
}
