package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenLexeme(t *testing.T) {
	span := NewTextSpan(0, 3, 1, 1, "let", "main.ign")
	tok := New(Let, span)
	assert.Equal(t, "let", tok.Lexeme())
	assert.False(t, tok.IsEof())
}

func TestTokenIsEof(t *testing.T) {
	tok := New(Eof, NewTextSpan(3, 3, 1, 4, "", "main.ign"))
	assert.True(t, tok.IsEof())
	assert.Equal(t, "Eof at main.ign:1:4", tok.String())
}

func TestTextSpanString(t *testing.T) {
	span := NewTextSpan(0, 1, 5, 9, "x", "a.ign")
	assert.Equal(t, "a.ign:5:9", span.String())
}

func TestLookupIdentifier(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"function", Function},
		{"let", Let},
		{"mut", Mut},
		{"class", Class},
		{"extends", Extends},
		{"this", This},
		{"new", New},
		{"hello", Identifier},
		{"println", Identifier},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, LookupIdentifier(tc.text))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Function", Function.String())
	assert.Equal(t, "Unknown", Kind(9999).String())
}
