package syntax

import "fmt"

// Pos is a position in a source buffer.
// The zero value is an invalid position.
type Pos struct {
	filename string // source name, may be empty
	offs     int    // 0-based byte offset
	line     uint32 // 1-based line number
	col      uint32 // 1-based column number (character count in line)
}

// NewPos creates a Pos with the given filename, line, and column.
// The byte offset is left at zero.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String returns "filename:line:col", or "line:col" if the filename is empty.
func (p Pos) String() string {
	if p.filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position is valid (line > 0).
func (p Pos) IsValid() bool {
	return p.line > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 { return p.line }

// Col returns the 1-based column number.
func (p Pos) Col() uint32 { return p.col }

// Offset returns the 0-based byte offset into the source buffer.
func (p Pos) Offset() int { return p.offs }

// Filename returns the source name.
func (p Pos) Filename() string { return p.filename }
