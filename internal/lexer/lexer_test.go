package lexer

import (
	"bufio"
	"strings"
	"testing"

	"mc/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(bufio.NewReader(strings.NewReader(src)))
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, "int x_1 float while")
	got := kinds(toks)
	want := []token.Kind{token.INT, token.IDENT, token.FLOAT, token.WHILE, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
	if toks[1].Lexeme != "x_1" {
		t.Errorf("lexeme = %q, want x_1", toks[1].Lexeme)
	}
}

func TestLexBoolLiterals(t *testing.T) {
	toks := lexAll(t, "true false")
	if toks[0].Kind != token.BOOL_LIT || toks[1].Kind != token.BOOL_LIT {
		t.Fatalf("got kinds %v %v, want BOOL_LIT twice", toks[0].Kind, toks[1].Kind)
	}
}

func TestLexNumbers(t *testing.T) {
	toks := lexAll(t, "42 3.14 .5")
	if toks[0].Kind != token.INT_LIT || toks[0].Lexeme != "42" {
		t.Errorf("got %v %q, want INT_LIT 42", toks[0].Kind, toks[0].Lexeme)
	}
	if toks[1].Kind != token.FLOAT_LIT || toks[1].Lexeme != "3.14" {
		t.Errorf("got %v %q, want FLOAT_LIT 3.14", toks[1].Kind, toks[1].Lexeme)
	}
	if toks[2].Kind != token.FLOAT_LIT || toks[2].Lexeme != ".5" {
		t.Errorf("got %v %q, want FLOAT_LIT .5", toks[2].Kind, toks[2].Lexeme)
	}
}

func TestLexOperators(t *testing.T) {
	toks := lexAll(t, "== != <= >= && || < > = ! + - * / %")
	want := []token.Kind{
		token.EQ, token.NE, token.LE, token.GE, token.AND, token.OR,
		token.LT, token.GT, token.ASSIGN, token.NOT,
		token.PLUS, token.MINUS, token.STAR, token.DIV, token.MOD, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLexLineComment(t *testing.T) {
	toks := lexAll(t, "int x; // trailing comment\nfloat y;")
	got := kinds(toks)
	want := []token.Kind{
		token.INT, token.IDENT, token.SEMI,
		token.FLOAT, token.IDENT, token.SEMI, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestLexTracksLineAndColumn(t *testing.T) {
	toks := lexAll(t, "int x\nfloat y")
	// "float" begins line 2, column 1.
	for _, tok := range toks {
		if tok.Lexeme == "float" {
			if tok.Pos.Line != 2 || tok.Pos.Col != 1 {
				t.Errorf("float at %+v, want line 2 col 1", tok.Pos)
			}
			return
		}
	}
	t.Fatal("float token not found")
}

func TestLexEOFRepeats(t *testing.T) {
	l := New(bufio.NewReader(strings.NewReader("")))
	for i := 0; i < 3; i++ {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		if tok.Kind != token.EOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok.Kind)
		}
	}
}
