package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCounts(t *testing.T) {
	var l List
	assert.False(t, l.HasErrors())
	assert.NoError(t, l.Err())

	l.Errorf(Syntax, 1, 3, "unexpected %s", ")")
	l.Warnf(Semantic, 4, 0, "'x' shadows declaration from scope 0")
	l.Errorf(Runtime, 1, 5, "division by zero")

	assert.Equal(t, 2, l.Errors())
	assert.Equal(t, 1, l.Warnings())
	assert.Equal(t, 3, l.Len())
	assert.True(t, l.HasErrors())

	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "unexpected )", items[0].Msg)
	assert.Equal(t, Warning, items[1].Severity)
	assert.Equal(t, Runtime, items[2].Stage)

	// Items returns a copy.
	items[0].Msg = "changed"
	assert.Equal(t, "unexpected )", l.Items()[0].Msg)
}

func TestListErrJoinsErrorsOnly(t *testing.T) {
	var l List
	l.Warnf(Semantic, 2, 0, "uninitialised")
	assert.NoError(t, l.Err())

	l.Errorf(Lex, 1, 1, "unexpected character '@'")
	err := l.Err()
	require.Error(t, err)
	assert.Equal(t, "1:1: error: unexpected character '@'", err.Error())

	var d Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Equal(t, Lex, d.Stage)
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{Diagnostic{Line: 3, Col: 7, Severity: Error, Msg: "boom"}, "3:7: error: boom"},
		{Diagnostic{Line: 12, Severity: Warning, Msg: "shadow"}, "line 12: warning: shadow"},
		{Diagnostic{Severity: Error, Msg: "no position"}, "error: no position"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.String())
	}
}

func TestReset(t *testing.T) {
	var l List
	l.Errorf(Lex, 1, 1, "x")
	l.Reset()
	assert.Zero(t, l.Len())
	assert.Zero(t, l.Errors())
}

func TestStageAndSeverityNames(t *testing.T) {
	assert.Equal(t, "semantic", Semantic.String())
	assert.Equal(t, "Stage(9)", Stage(9).String())
	assert.Equal(t, "warning", Warning.String())
}
