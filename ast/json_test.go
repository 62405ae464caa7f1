package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/token"
)

func ident(text string) token.Token {
	return token.New(token.Identifier, token.NewTextSpan(0, len(text), 1, 1, text, "a.ign"))
}

func op(kind token.Kind, text string) token.Token {
	return token.New(kind, token.NewTextSpan(0, len(text), 1, 1, text, "a.ign"))
}

func TestDumpRendersBinaryExpressionStatement(t *testing.T) {
	program := []Statement{
		&ExpressionStmt{Expr: &Binary{
			Left:       &Literal{Tok: op(token.IntLiteral, "1"), Value: int64(1), Type: datatype.Int()},
			Operator:   op(token.Plus, "+"),
			Right:      &Literal{Tok: op(token.IntLiteral, "2"), Value: int64(2), Type: datatype.Int()},
			ResultType: datatype.Int(),
		}},
	}

	raw, err := Dump(program)
	assert.NoError(t, err)

	var decoded []any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	if !assert.Len(t, decoded, 1) {
		return
	}
	exprStmt := decoded[0].(map[string]any)
	assert.Equal(t, "ExpressionStmt", exprStmt["type"])
	binary := exprStmt["expression"].(map[string]any)
	assert.Equal(t, "Binary", binary["type"])
	assert.Equal(t, "+", binary["operator"])
	assert.Equal(t, "int", binary["dataType"])
}

func TestDumpRendersVariableDeclaration(t *testing.T) {
	program := []Statement{
		&VariableStmt{
			Name: ident("x"),
			Type: datatype.Int(),
			Initializer: &Literal{Tok: op(token.IntLiteral, "1"), Value: int64(1), Type: datatype.Int()},
			Metadata: VariableMetadata{IsMutable: true},
		},
	}

	raw, err := Dump(program)
	assert.NoError(t, err)
	var decoded []any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	decl := decoded[0].(map[string]any)
	assert.Equal(t, "Variable", decl["type"])
	assert.Equal(t, "x", decl["name"])
	assert.Equal(t, "int", decl["dataType"])
	assert.Equal(t, true, decl["isMutable"])
}

func TestDumpRendersFunctionWithNilBody(t *testing.T) {
	program := []Statement{
		&Function{
			Name:       ident("println"),
			ReturnType: datatype.Void(),
			IsExtern:   true,
			IsExported: true,
		},
	}

	raw, err := Dump(program)
	assert.NoError(t, err)
	var decoded []any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	fn := decoded[0].(map[string]any)
	assert.Equal(t, "Function", fn["type"])
	assert.Nil(t, fn["body"])
	assert.Equal(t, true, fn["isExtern"])
}

func TestDumpRendersImportWithAlias(t *testing.T) {
	program := []Statement{
		&Import{
			Symbols: []ImportedSymbol{{Name: ident("sum"), Alias: func() *token.Token { a := ident("add"); return &a }()}},
			Path:    op(token.StringLiteral, "./a"),
			IsStd:   false,
		},
	}

	raw, err := Dump(program)
	assert.NoError(t, err)
	var decoded []any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	imp := decoded[0].(map[string]any)
	assert.Equal(t, "Import", imp["type"])
	symbols := imp["symbols"].([]any)
	if !assert.Len(t, symbols, 1) {
		return
	}
	sym := symbols[0].(map[string]any)
	assert.Equal(t, "sum", sym["name"])
	assert.Equal(t, "add", sym["alias"])
}

func TestDumpRendersClassWithSuperclassName(t *testing.T) {
	superName := ident("Animal")
	program := []Statement{
		&Class{
			Name:       ident("Dog"),
			Superclass: &superName,
			IsExported: true,
		},
	}

	raw, err := Dump(program)
	assert.NoError(t, err)
	var decoded []any
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	class := decoded[0].(map[string]any)
	assert.Equal(t, "Dog", class["name"])
	assert.Equal(t, "Animal", class["superclass"])
	assert.Equal(t, true, class["isExported"])
}

func TestDumpNilExpressionIsNilInOutput(t *testing.T) {
	d := &jsonDumper{}
	assert.Nil(t, d.expr(nil))
	assert.Nil(t, d.stmt(nil))
}
