package lua

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/ignis/backend"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/ir"
)

func TestEmitImplementsBackendEmitter(t *testing.T) {
	var _ backend.Emitter = New()
}

func TestEmitRendersExportedFunctionAndReturnTable(t *testing.T) {
	forest := ir.NewForest()
	forest.Add("a.ign", &ir.Function{
		Name: "add",
		Parameters: []*ir.Variable{
			{Name: "a", Type: datatype.Int()},
			{Name: "b", Type: datatype.Int()},
		},
		ReturnType: datatype.Int(),
		Body: &ir.Block{
			Instructions: []ir.Node{
				&ir.Return{Value: &ir.Binary{
					Op:    ir.Add,
					Left:  &ir.Variable{Name: "a", Type: datatype.Int()},
					Right: &ir.Variable{Name: "b", Type: datatype.Int()},
					Type:  datatype.Int(),
				}},
			},
		},
		Metadata: ir.FunctionMetadata{IsExported: true},
	})

	targets, err := New().Emit(forest)
	assert.NoError(t, err)
	if !assert.Len(t, targets, 1) {
		return
	}
	assert.Equal(t, "a.lua", targets[0].Path)
	source := string(targets[0].Source)
	assert.Contains(t, source, "local function add(a, b)")
	assert.Contains(t, source, "return (a + b)")
	assert.Contains(t, source, "end")
	assert.Contains(t, source, "return {\n  add = add,\n}")
}

func TestEmitExternFunctionProducesNoDefinition(t *testing.T) {
	forest := ir.NewForest()
	forest.Add("std:io", &ir.Function{
		Name:       "println",
		Parameters: []*ir.Variable{{Name: "message", Type: datatype.None()}},
		ReturnType: datatype.Void(),
		Metadata:   ir.FunctionMetadata{IsExtern: true, IsExported: true},
	})

	targets, err := New().Emit(forest)
	assert.NoError(t, err)
	source := string(targets[0].Source)
	assert.NotContains(t, source, "local function println")
}

func TestEmitCallRewritesPrintlnAndToString(t *testing.T) {
	println_ := &ir.Function{Name: "println", ReturnType: datatype.Void(), Metadata: ir.FunctionMetadata{IsExtern: true}}
	forest := ir.NewForest()
	forest.Add("a.ign", &ir.Function{
		Name:       "main",
		ReturnType: datatype.Void(),
		Body: &ir.Block{
			Instructions: []ir.Node{
				&ir.Call{Callee: println_, Arguments: []ir.Node{&ir.Literal{Value: "hi", Type: datatype.String()}}, Type: datatype.Void()},
			},
		},
	})

	targets, err := New().Emit(forest)
	assert.NoError(t, err)
	source := string(targets[0].Source)
	assert.Contains(t, source, `print("hi")`)
}

func TestEmitImportedCallRoutesThroughRequire(t *testing.T) {
	add := &ir.Function{
		Name:       "add",
		ReturnType: datatype.Int(),
		Metadata:   ir.FunctionMetadata{IsImported: true, IsExported: true},
	}
	forest := ir.NewForest()
	forest.Add("b.ign", &ir.Function{
		Name:       "main",
		ReturnType: datatype.Int(),
		Body: &ir.Block{
			Instructions: []ir.Node{
				&ir.Return{Value: &ir.Call{Callee: add, Arguments: []ir.Node{
					&ir.Literal{Value: int64(1), Type: datatype.Int()},
					&ir.Literal{Value: int64(2), Type: datatype.Int()},
				}, Type: datatype.Int()}},
			},
		},
	})

	targets, err := New().Emit(forest)
	assert.NoError(t, err)
	source := string(targets[0].Source)
	assert.Contains(t, source, `require("add").add(1, 2)`)
}

func TestEmitForInUsesIpairsAndOneBasedIndex(t *testing.T) {
	forest := ir.NewForest()
	forest.Add("a.ign", &ir.Function{
		Name:       "main",
		ReturnType: datatype.Void(),
		Body: &ir.Block{
			Instructions: []ir.Node{
				&ir.ForIn{
					Variable: &ir.Variable{Name: "n", Type: datatype.Int()},
					Iterable: &ir.Variable{Name: "items", Type: datatype.NewArray(datatype.Int())},
					Body: &ir.Block{Instructions: []ir.Node{
						&ir.IndexSet{Object: &ir.Variable{Name: "items"}, At: &ir.Literal{Value: int64(0), Type: datatype.Int()}, Value: &ir.Variable{Name: "n"}},
					}},
				},
			},
		},
	})

	targets, err := New().Emit(forest)
	assert.NoError(t, err)
	source := string(targets[0].Source)
	assert.Contains(t, source, "for _, n in ipairs(items) do")
	assert.Contains(t, source, "items[0 + 1] = n")
}

func TestEmitClassRendersMetatableAndConstructor(t *testing.T) {
	class := &ir.Class{
		Name:       "Counter",
		Properties: []*ir.Variable{{Name: "count", Type: datatype.Int()}},
	}
	class.Methods = []*ir.Function{
		{Name: "Counter", Parameters: []*ir.Variable{{Name: "start", Type: datatype.Int()}}, ReturnType: datatype.Void(), Body: &ir.Block{}},
	}
	forest := ir.NewForest()
	forest.Add("a.ign", class)

	targets, err := New().Emit(forest)
	assert.NoError(t, err)
	source := string(targets[0].Source)
	assert.Contains(t, source, "local Counter = {}")
	assert.Contains(t, source, "Counter.__index = Counter")
	assert.Contains(t, source, "function Counter.new(start)")
	assert.True(t, strings.Contains(source, "return self"))
}
