package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinaryResult(t *testing.T) {
	tests := []struct {
		description string
		op          BinaryOp
		left        DataType
		right       DataType
		want        DataType
		ok          bool
	}{
		{"int plus int", Add, Int(), Int(), Int(), true},
		{"int plus float promotes", Add, Int(), Float(), Float(), true},
		{"string concat", Add, String(), String(), String(), true},
		{"string plus int rejected", Add, String(), Int(), DataType{}, false},
		{"mod requires ints", Mod, Int(), Int(), Int(), true},
		{"mod rejects float", Mod, Float(), Int(), DataType{}, false},
		{"less than numeric", Lt, Int(), Float(), Boolean(), true},
		{"less than non numeric", Lt, String(), String(), DataType{}, false},
		{"equality matching primitives", Eq, Int(), Int(), Boolean(), true},
		{"equality against null", Eq, String(), Null(), Boolean(), true},
		{"equality mismatched primitives", Eq, Int(), String(), DataType{}, false},
		{"and requires booleans", And, Boolean(), Boolean(), Boolean(), true},
		{"and rejects non boolean", And, Boolean(), Int(), DataType{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got, ok := BinaryResult(tc.op, tc.left, tc.right)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.want.Equal(got))
			}
		})
	}
}

func TestUnaryResult(t *testing.T) {
	tests := []struct {
		description string
		isNegate    bool
		operand     DataType
		want        DataType
		ok          bool
	}{
		{"negate int", true, Int(), Int(), true},
		{"negate string rejected", true, String(), DataType{}, false},
		{"not boolean", false, Boolean(), Boolean(), true},
		{"not string", false, String(), Boolean(), true},
		{"not array rejected", false, NewArray(Int()), DataType{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got, ok := UnaryResult(tc.isNegate, tc.operand)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.want.Equal(got))
			}
		})
	}
}
