package syntax

import (
	"strings"

	"github.com/you-not-fish/minic/internal/diag"
)

// Tokenize scans src completely and returns every token up to and
// including the terminating EOF, together with any lexical diagnostics.
func Tokenize(src string) ([]Token, []diag.Diagnostic) {
	var dl diag.List
	s := NewScanner("", strings.NewReader(src), stageHandler(&dl, diag.Lex))
	var toks []Token
	for {
		s.Next()
		toks = append(toks, s.Token())
		if s.Kind() == EOF {
			break
		}
	}
	return toks, dl.Items()
}

// stageHandler returns an ErrorHandler that records errors into dl.
func stageHandler(dl *diag.List, stage diag.Stage) ErrorHandler {
	return func(pos Pos, msg string) {
		dl.Errorf(stage, int(pos.Line()), int(pos.Col()), "%s", msg)
	}
}

// tokenSource is the token stream a Parser reads from.
// Scanner implements it; sliceSource replays an already scanned stream.
type tokenSource interface {
	Next()
	Token() Token
}

type sliceSource struct {
	toks []Token
	i    int
	tok  Token
}

func (s *sliceSource) Next() {
	if s.i < len(s.toks) {
		s.tok = s.toks[s.i]
		s.i++
		return
	}
	// Past the end (or no EOF in the slice): keep producing EOF.
	s.tok = Token{Kind: EOF, Text: "<EOF>", Pos: s.tok.Pos}
}

func (s *sliceSource) Token() Token { return s.tok }
