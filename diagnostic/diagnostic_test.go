package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{Info, "Info"},
		{Warning, "Warning"},
		{Error, "Error"},
		{Hint, "Hint"},
		{Severity(99), "Unknown"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.severity.String())
	}
}

func TestNewAndWithHint(t *testing.T) {
	d := New(Error, CodeTypeMismatch, "boom", "a.ign", 3, 5, "x")
	assert.Equal(t, "boom", d.Message)
	assert.Equal(t, CodeTypeMismatch, d.Code)
	assert.Equal(t, Error, d.Level)
	assert.Empty(t, d.Hint)

	hinted := d.WithHint("did you mean y?")
	assert.Equal(t, "did you mean y?", hinted.Hint)
	assert.Empty(t, d.Hint, "WithHint must not mutate the receiver")
}

func TestDiagnosticString(t *testing.T) {
	d := New(Error, CodeUndeclaredVariable, "undeclared variable 'x'", "a.ign", 2, 7, "x")
	assert.Equal(t, "Error IA0001: undeclared variable 'x' (a.ign:2:7)", d.String())
}

func TestLocateRendersCaretUnderColumn(t *testing.T) {
	source := "let x: int = 1;\nlet y: int = x + z;"
	d := New(Error, CodeUndeclaredVariable, "undeclared variable 'z'", "a.ign", 2, 18, "z")
	located := d.Locate(source)
	assert.Equal(t, "let y: int = x + z;\n"+"                 ^", located)
}

func TestLocateOutOfRangeLineReturnsEmpty(t *testing.T) {
	d := New(Error, CodeUndeclaredVariable, "x", "a.ign", 99, 1, "x")
	assert.Empty(t, d.Locate("let x: int = 1;"))
}

func TestLocateClampsColumnToLineBounds(t *testing.T) {
	d := New(Error, CodeUndeclaredVariable, "x", "a.ign", 1, 0, "x")
	located := d.Locate("abc")
	assert.Equal(t, "abc\n^", located)

	d2 := New(Error, CodeUndeclaredVariable, "x", "a.ign", 1, 999, "x")
	located2 := d2.Locate("abc")
	assert.Equal(t, "abc\n   ^", located2)
}

func TestReportAddHasErrorsAndMerge(t *testing.T) {
	var r Report
	assert.False(t, r.HasErrors())

	r.Add(New(Warning, CodeTypeMismatch, "heads up", "a.ign", 1, 1, ""))
	assert.False(t, r.HasErrors())

	r.Add(New(Error, CodeUndeclaredVariable, "bad", "a.ign", 2, 2, ""))
	assert.True(t, r.HasErrors())
	assert.Len(t, r.Diagnostics, 2)

	var other Report
	other.Add(New(Error, CodeImportCycle, "cycle", "b.ign", 1, 1, ""))
	r.Merge(other)
	assert.Len(t, r.Diagnostics, 3)
	assert.Equal(t, CodeImportCycle, r.Diagnostics[2].Code)
}
