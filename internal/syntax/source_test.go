package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceNextch(t *testing.T) {
	src := newSource("test", strings.NewReader("a\nbc"), nil)

	want := []struct {
		ch        rune
		line, col uint32
	}{
		{'a', 1, 1},
		{'\n', 1, 2},
		{'b', 2, 1},
		{'c', 2, 2},
		{-1, 2, 3},
	}
	for _, w := range want {
		assert.Equal(t, w.ch, src.ch)
		assert.Equal(t, w.line, src.line, "line of %q", w.ch)
		assert.Equal(t, w.col, src.col, "col of %q", w.ch)
		src.nextch()
	}

	// nextch at end of input is a no-op.
	assert.Equal(t, rune(-1), src.ch)
	assert.Equal(t, uint32(3), src.col)
}

func TestSourceMultibyte(t *testing.T) {
	src := newSource("", strings.NewReader("é+"), nil)
	assert.Equal(t, 'é', src.ch)
	assert.Equal(t, byte('+'), src.peek())

	src.nextch()
	assert.Equal(t, '+', src.ch)
	assert.Equal(t, 2, src.offs)
	assert.Equal(t, uint32(2), src.col)
	assert.Equal(t, byte(0), src.peek())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestSourceReadError(t *testing.T) {
	var msgs []string
	src := newSource("bad.mc", failingReader{}, func(pos Pos, msg string) {
		msgs = append(msgs, pos.String()+": "+msg)
	})
	assert.Equal(t, rune(-1), src.ch)
	assert.Equal(t, []string{"bad.mc:1:1: error reading source: disk on fire"}, msgs)
}
