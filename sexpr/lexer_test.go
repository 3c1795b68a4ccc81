package sexpr

import (
	"strings"
	"testing"
)

func lexString(t *testing.T, src string) []Token {
	toks, err := Lex(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Lex(%q): unexpected error: %v", src, err)
	}
	return toks
}

func TestLexParensAndAtoms(t *testing.T) {
	toks := lexString(t, "(assert (= f.a b))")
	want := []TokenKind{TokenLParen, TokenAtom, TokenLParen, TokenAtom, TokenAtom, TokenAtom, TokenRParen, TokenRParen}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected kind %d, got %d (%q)", i, k, toks[i].Kind, toks[i].Text)
		}
	}
	if toks[4].Text != "f.a" {
		t.Errorf("expected atom %q, got %q", "f.a", toks[4].Text)
	}
}

func TestLexTracksLineNumbers(t *testing.T) {
	toks := lexString(t, "(ty U)\n(fun a U)")
	if toks[0].Line != 1 {
		t.Errorf("expected first token on line 1, got %d", toks[0].Line)
	}
	last := toks[len(toks)-1]
	if last.Line != 2 {
		t.Errorf("expected last token on line 2, got %d", last.Line)
	}
}

func TestLexComment(t *testing.T) {
	toks := lexString(t, "(ty U) ; a comment with (parens) inside\n(fun a U)")
	if len(toks) != 9 {
		t.Fatalf("expected the comment to be skipped entirely, got %d tokens: %+v", len(toks), toks)
	}
}

func TestLexArrowAndEqualsAreOrdinaryAtoms(t *testing.T) {
	toks := lexString(t, "(-> U U) (= a b)")
	if toks[1].Text != "->" {
		t.Errorf("expected atom %q, got %q", "->", toks[1].Text)
	}
	if toks[6].Text != "=" {
		t.Errorf("expected atom %q, got %q", "=", toks[6].Text)
	}
}

func TestLexEmptyInput(t *testing.T) {
	toks := lexString(t, "   \n\n ; only a comment\n")
	if len(toks) != 0 {
		t.Errorf("expected no tokens, got %+v", toks)
	}
}
