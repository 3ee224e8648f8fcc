package syntax

import (
	"io"
	"unicode/utf8"
)

// ErrorHandler is called for each error reported while scanning or parsing.
type ErrorHandler func(pos Pos, msg string)

// source is a character reader with position tracking over an in-memory buffer.
type source struct {
	buf      []byte
	filename string

	// Position of ch.
	offs int
	line uint32
	col  uint32

	ch    rune // current character, -1 at end of input
	width int  // byte width of ch

	errh ErrorHandler
}

func newSource(filename string, src io.Reader, errh ErrorHandler) source {
	s := source{filename: filename, line: 1, col: 1, errh: errh}
	buf, err := io.ReadAll(src)
	if err != nil {
		s.errorf("error reading source: " + err.Error())
	}
	s.buf = buf
	s.decode()
	return s
}

// decode loads the rune at offs into ch without moving the position.
func (s *source) decode() {
	if s.offs >= len(s.buf) {
		s.ch, s.width = -1, 0
		return
	}
	r, w := utf8.DecodeRune(s.buf[s.offs:])
	s.ch, s.width = r, w
}

// nextch advances past the current character.
// A newline increments the line and resets the column to 1.
func (s *source) nextch() {
	if s.ch < 0 {
		return
	}
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.offs += s.width
	s.decode()
}

// peek returns the byte after the current character, or 0 at end of input.
func (s *source) peek() byte {
	if i := s.offs + s.width; i < len(s.buf) {
		return s.buf[i]
	}
	return 0
}

// pos returns the position of the current character.
func (s *source) pos() Pos {
	return Pos{filename: s.filename, offs: s.offs, line: s.line, col: s.col}
}

func (s *source) errorf(msg string) {
	s.errorAt(s.pos(), msg)
}

func (s *source) errorAt(pos Pos, msg string) {
	if s.errh != nil {
		s.errh(pos, msg)
	}
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
