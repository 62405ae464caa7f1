package token

import "fmt"

// TextSpan is the byte range plus human-facing line/column a Token occupies
// in its source file, and the canonicalized literal text the lexer
// extracted for it (unescaped for strings, underscore-stripped for
// numbers). File carries the originating path so diagnostics and import
// resolution can report "file:line" without any external bookkeeping.
type TextSpan struct {
	Start   int
	End     int
	Line    int
	Column  int
	Literal string
	File    string
}

// NewTextSpan builds a span from rune-counted column width, matching the
// "Column Position and Unicode" convention: multi-byte runes count as one
// column, independent of their display width or byte length.
func NewTextSpan(start, end, line, column int, literal, file string) TextSpan {
	return TextSpan{Start: start, End: end, Line: line, Column: column, Literal: literal, File: file}
}

// String renders "file:line:column" for error messages.
func (s TextSpan) String() string {
	return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
}
