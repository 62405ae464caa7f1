package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsAndString(t *testing.T) {
	tests := []struct {
		description string
		dt          DataType
		want        string
	}{
		{"int", Int(), "int"},
		{"float", Float(), "float"},
		{"boolean", Boolean(), "boolean"},
		{"string", String(), "string"},
		{"char", Char(), "char"},
		{"void", Void(), "void"},
		{"null", Null(), "null"},
		{"array of int", NewArray(Int()), "array<int>"},
		{"callable", NewCallable([]DataType{Int(), String()}, Boolean()), "(int,string)->boolean"},
		{"class", NewClass("Animal"), "class:Animal"},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dt.String())
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Int().Equal(Int()))
	assert.False(t, Int().Equal(Float()))
	assert.True(t, NewArray(Int()).Equal(NewArray(Int())))
	assert.False(t, NewArray(Int()).Equal(NewArray(String())))
	assert.True(t, NewClass("Foo").Equal(NewClass("Foo")))
}

func TestIsPending(t *testing.T) {
	assert.True(t, Pending().IsPending())
	assert.False(t, Int().IsPending())
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, Int().IsNumeric())
	assert.True(t, Float().IsNumeric())
	assert.False(t, String().IsNumeric())
	assert.False(t, Boolean().IsNumeric())
}

func TestIsScalarPrimitive(t *testing.T) {
	assert.True(t, Boolean().IsScalarPrimitive())
	assert.False(t, NewArray(Int()).IsScalarPrimitive())
}
