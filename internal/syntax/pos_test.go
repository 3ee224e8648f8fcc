package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPos(t *testing.T) {
	var zero Pos
	assert.False(t, zero.IsValid())

	p := NewPos("calc.c", 3, 14)
	assert.True(t, p.IsValid())
	assert.Equal(t, "calc.c:3:14", p.String())
	assert.Equal(t, uint32(3), p.Line())
	assert.Equal(t, uint32(14), p.Col())
	assert.Equal(t, "calc.c", p.Filename())

	assert.Equal(t, "2:1", NewPos("", 2, 1).String())
}
