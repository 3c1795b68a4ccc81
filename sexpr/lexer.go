package sexpr

import (
	"bufio"
	"fmt"
	"io"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDelim(b byte) bool {
	return b == '(' || b == ')' || isSpace(b)
}

// Lex tokenizes r into a flat token stream. Comments run from ';' to
// end of line, matching the convention read across the retrieved
// corpus's own line-oriented input formats.
func Lex(r io.Reader) ([]Token, error) {
	br := bufio.NewReader(r)
	var toks []Token
	line := 1
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("sexpr: read error: %w", err)
		}
		switch {
		case b == '\n':
			line++
		case isSpace(b):
			// skip
		case b == ';':
			for {
				b, err = br.ReadByte()
				if err == io.EOF {
					return toks, nil
				}
				if err != nil {
					return nil, fmt.Errorf("sexpr: read error: %w", err)
				}
				if b == '\n' {
					line++
					break
				}
			}
		case b == '(':
			toks = append(toks, Token{Kind: TokenLParen, Text: "(", Line: line})
		case b == ')':
			toks = append(toks, Token{Kind: TokenRParen, Text: ")", Line: line})
		default:
			atom := []byte{b}
			for {
				nb, err := br.Peek(1)
				if err != nil || isDelim(nb[0]) {
					break
				}
				c, _ := br.ReadByte()
				atom = append(atom, c)
			}
			toks = append(toks, Token{Kind: TokenAtom, Text: string(atom), Line: line})
		}
	}
}
