package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ignis/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanBasicTokens(t *testing.T) {
	tokens, diagnostics := Scan(`let mut x: int = 1 + 2;`, "a.ign")
	assert.False(t, diagnostics.HasErrors())
	assert.Equal(t, []token.Kind{
		token.Let, token.Mut, token.Identifier, token.Colon, token.Int,
		token.Equal, token.IntLiteral, token.Plus, token.IntLiteral, token.Semicolon,
		token.Eof,
	}, kinds(tokens))
	assert.True(t, tokens[len(tokens)-1].IsEof())
}

func TestScanCoversEverySpan(t *testing.T) {
	source := "let x = 1; // trailing comment\n"
	tokens, diagnostics := Scan(source, "a.ign")
	assert.False(t, diagnostics.HasErrors())
	assert.True(t, tokens[len(tokens)-1].IsEof())
}

func TestNumberCanonicalization(t *testing.T) {
	tests := []struct {
		description string
		source      string
		wantLiteral string
		wantBad     bool
	}{
		{"plain separators", "1_000_000", "1000000", false},
		{"double separator rejected", "1__0", "", true},
		{"leading separator rejected", "_1", "", true},
		{"trailing separator rejected", "1_", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			tokens, diagnostics := Scan(tc.source, "a.ign")
			if tc.wantBad {
				if tc.source == "_1" {
					// '_' starts an identifier, not a number; only the
					// trailing digits ever reach scanNumber.
					assert.Equal(t, token.Identifier, tokens[0].Kind)
					return
				}
				assert.True(t, diagnostics.HasErrors())
				assert.Equal(t, token.Bad, tokens[0].Kind)
				return
			}
			assert.False(t, diagnostics.HasErrors())
			assert.Equal(t, token.IntLiteral, tokens[0].Kind)
			assert.Equal(t, tc.wantLiteral, tokens[0].Lexeme())
		})
	}
}

func TestScanString(t *testing.T) {
	tokens, diagnostics := Scan(`"hello"`, "a.ign")
	assert.False(t, diagnostics.HasErrors())
	assert.Equal(t, token.StringLiteral, tokens[0].Kind)
	assert.Equal(t, "hello", tokens[0].Lexeme())
}

func TestScanUnterminatedString(t *testing.T) {
	_, diagnostics := Scan(`"hello`, "a.ign")
	assert.True(t, diagnostics.HasErrors())
}

func TestScanBadCharacter(t *testing.T) {
	tokens, diagnostics := Scan("let x = `;", "a.ign")
	assert.True(t, diagnostics.HasErrors())
	var sawBad bool
	for _, tok := range tokens {
		if tok.Kind == token.Bad {
			sawBad = true
		}
	}
	assert.True(t, sawBad)
}

func TestScanKeywordsAndOperators(t *testing.T) {
	tokens, diagnostics := Scan(`class Foo extends Bar { static readonly x: int; }`, "a.ign")
	assert.False(t, diagnostics.HasErrors())
	assert.Equal(t, token.Class, tokens[0].Kind)
	assert.Equal(t, token.Extends, tokens[2].Kind)
	assert.Equal(t, token.Static, tokens[5].Kind)
	assert.Equal(t, token.Readonly, tokens[6].Kind)
}

func TestScanMultiCharOperators(t *testing.T) {
	tokens, diagnostics := Scan(`a == b != c <= d >= e && f || g => h += 1 -= 1`, "a.ign")
	assert.False(t, diagnostics.HasErrors())
	want := []token.Kind{
		token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual,
		token.AmpAmp, token.PipePipe, token.FatArrow, token.PlusEqual, token.MinusEqual,
	}
	var got []token.Kind
	for _, tok := range tokens {
		switch tok.Kind {
		case token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual,
			token.AmpAmp, token.PipePipe, token.FatArrow, token.PlusEqual, token.MinusEqual:
			got = append(got, tok.Kind)
		}
	}
	assert.Equal(t, want, got)
}
