package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/ir"
	"github.com/viant/ignis/lexer"
	"github.com/viant/ignis/parser"
)

func analyze(t *testing.T, source string) *Result {
	t.Helper()
	tokens, lexDiagnostics := lexer.Scan(source, "a.ign")
	assert.False(t, lexDiagnostics.HasErrors(), "lex diagnostics: %+v", lexDiagnostics)
	statements, parseDiagnostics := parser.Parse(tokens, "a.ign")
	assert.False(t, parseDiagnostics.HasErrors(), "parse diagnostics: %+v", parseDiagnostics)
	return New("a.ign").Analyze(statements)
}

func findFunction(nodes []ir.Node, name string) *ir.Function {
	for _, n := range nodes {
		if f, ok := n.(*ir.Function); ok && f.Name == name {
			return f
		}
	}
	return nil
}

// S1. Hello-world via std.
func TestScenarioHelloWorldViaStd(t *testing.T) {
	result := analyze(t, `import { println } from "std:io"; function main(): void { println("hi"); }`)
	assert.False(t, result.Diagnostics.HasErrors())
	nodes := result.Forest["a.ign"]
	println_ := findFunction(nodes, "println")
	if assert.NotNil(t, println_) {
		assert.True(t, println_.Metadata.IsExtern)
	}
	main := findFunction(nodes, "main")
	assert.NotNil(t, main)
}

// S2. Type mismatch on binary.
func TestScenarioTypeMismatchOnBinary(t *testing.T) {
	result := analyze(t, `let x: int = 1 + "a";`)
	if !assert.True(t, result.Diagnostics.HasErrors()) {
		return
	}
	assert.Equal(t, diagnostic.CodeTypeMismatch, result.Diagnostics.Diagnostics[0].Code)
	assert.Empty(t, result.Forest["a.ign"])
}

// S3. Immutable reassignment.
func TestScenarioImmutableReassignment(t *testing.T) {
	result := analyze(t, `let x: int = 1; x = 2;`)
	if !assert.True(t, result.Diagnostics.HasErrors()) {
		return
	}
	var sawCode bool
	for _, d := range result.Diagnostics.Diagnostics {
		if d.Code == diagnostic.CodeInvalidReassignedVariable {
			sawCode = true
		}
	}
	assert.True(t, sawCode)
}

// S4. Recursive function detection.
func TestScenarioRecursiveFunctionDetection(t *testing.T) {
	result := analyze(t, `function f(n: int): int { return f(n); }`)
	assert.False(t, result.Diagnostics.HasErrors())
	f := findFunction(result.Forest["a.ign"], "f")
	if assert.NotNil(t, f) {
		assert.True(t, f.Metadata.IsRecursive)
	}
}

// S6. Ternary type coherence.
func TestScenarioTernaryTypeCoherence(t *testing.T) {
	result := analyze(t, `let cond: boolean = true; let x: int = cond ? 1 : "a";`)
	if !assert.True(t, result.Diagnostics.HasErrors()) {
		return
	}
	var sawCode bool
	for _, d := range result.Diagnostics.Diagnostics {
		if d.Code == diagnostic.CodeTypeMismatch {
			sawCode = true
		}
	}
	assert.True(t, sawCode)
}

// 8.1 Type soundness (local): no Pending DataType leaks into IR.
func TestInvariantNoPendingTypesInIR(t *testing.T) {
	result := analyze(t, `
function add(a: int, b: int): int {
  let total: int = a + b;
  let flag: boolean = !false;
  let items: int[] = [1, 2, 3];
  let chosen: int = flag ? total : items[0];
  return chosen;
}
`)
	assert.False(t, result.Diagnostics.HasErrors())
	f := findFunction(result.Forest["a.ign"], "add")
	if !assert.NotNil(t, f) {
		return
	}
	for _, instr := range f.Body.Instructions {
		if v, ok := instr.(*ir.Variable); ok {
			assert.False(t, v.Type.IsPending(), "variable %s has pending type", v.Name)
		}
	}
}

// 8.1 Scope safety: reading an undefined name is a diagnostic.
func TestInvariantScopeSafety(t *testing.T) {
	result := analyze(t, `function main(): void { let y: int = x; }`)
	if !assert.True(t, result.Diagnostics.HasErrors()) {
		return
	}
	assert.Equal(t, diagnostic.CodeUndeclaredVariable, result.Diagnostics.Diagnostics[0].Code)
}

// 8.1 Context correctness: return/break/continue outside their contexts.
func TestInvariantContextCorrectness(t *testing.T) {
	tests := []struct {
		description string
		source      string
		code        string
	}{
		{"return outside function", `return 1;`, diagnostic.CodeReturnOutsideFunction},
		{"break outside loop", `function main(): void { break; }`, diagnostic.CodeBreakOutsideLoop},
		{"continue outside loop", `function main(): void { continue; }`, diagnostic.CodeContinueOutsideLoop},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			result := analyze(t, tc.source)
			if !assert.True(t, result.Diagnostics.HasErrors()) {
				return
			}
			assert.Equal(t, tc.code, result.Diagnostics.Diagnostics[0].Code)
		})
	}
}

// 8.1 Arity: call argument count must match parameter count.
func TestInvariantArity(t *testing.T) {
	result := analyze(t, `
function add(a: int, b: int): int { return a + b; }
function main(): void { add(1); }
`)
	assert.True(t, result.Diagnostics.HasErrors())
}

func TestBlockScopingShadowsOuterVariable(t *testing.T) {
	result := analyze(t, `
function main(): void {
  let x: int = 1;
  if (true) {
    let x: int = 2;
  }
}
`)
	assert.False(t, result.Diagnostics.HasErrors())
}

func TestMutableParameterRequiresMutableArgument(t *testing.T) {
	result := analyze(t, `
function bump(mut n: int): void {
  n = n + 1;
}
function main(): void {
  let x: int = 1;
  bump(x);
}
`)
	assert.True(t, result.Diagnostics.HasErrors())
}

func TestClassWithConstructorAndMethod(t *testing.T) {
	result := analyze(t, `
class Counter {
  public count: int;
  public function Counter(start: int): void {
    this.count = start;
  }
  public function increment(): void {
    this.count = this.count + 1;
  }
}
`)
	assert.False(t, result.Diagnostics.HasErrors())
	nodes := result.Forest["a.ign"]
	var class *ir.Class
	for _, n := range nodes {
		if c, ok := n.(*ir.Class); ok {
			class = c
		}
	}
	if !assert.NotNil(t, class) {
		return
	}
	assert.Len(t, class.Methods, 2)
}

// A method reading this.<property> must see the enclosing class's own
// properties even though the class itself isn't in the forest yet while
// its methods are still being analyzed.
func TestMethodCanReadOwnClassPropertyViaThis(t *testing.T) {
	result := analyze(t, `
class Box {
  public value: int;
  public function total(): int {
    return this.value;
  }
}
`)
	assert.False(t, result.Diagnostics.HasErrors(), "diagnostics: %+v", result.Diagnostics)
}

func TestRedeclarationDiagnostics(t *testing.T) {
	tests := []struct {
		description string
		source      string
		code        string
	}{
		{
			"duplicate top-level function",
			`function add(a: int): int { return a; } function add(b: int): int { return b; }`,
			diagnostic.CodeFunctionAlreadyDefined,
		},
		{
			"duplicate top-level class",
			`class Box { } class Box { }`,
			diagnostic.CodeClassAlreadyDefined,
		},
		{
			"duplicate method in same class",
			`class Box { public function run(): void { } public function run(): void { } }`,
			diagnostic.CodeMethodAlreadyDefined,
		},
		{
			"duplicate property in same class",
			`class Box { public value: int; public value: int; }`,
			diagnostic.CodePropertyAlreadyDefined,
		},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			result := analyze(t, tc.source)
			if !assert.True(t, result.Diagnostics.HasErrors()) {
				return
			}
			assert.Equal(t, tc.code, result.Diagnostics.Diagnostics[0].Code)
		})
	}
}

// A constructor's name equals its class's name by construction; that must
// not be flagged as MethodAlreadyDefined against the class declaration.
func TestConstructorNameDoesNotCollideWithClassName(t *testing.T) {
	result := analyze(t, `class Box { public function Box(): void { } }`)
	assert.False(t, result.Diagnostics.HasErrors(), "diagnostics: %+v", result.Diagnostics)
}

// Two different classes may each declare a method with the same name
// without colliding: redeclaration checks are scoped to one class body.
func TestSameMethodNameAcrossDifferentClassesIsAllowed(t *testing.T) {
	result := analyze(t, `class A { public function run(): void { } } class B { public function run(): void { } }`)
	assert.False(t, result.Diagnostics.HasErrors(), "diagnostics: %+v", result.Diagnostics)
}

func TestWithFSOptionOverridesDefaultFS(t *testing.T) {
	type markedFS struct{ afs.Service }
	service := &markedFS{Service: afs.New()}
	a := New("a.ign", WithFS(service))
	assert.NotNil(t, a)
	assert.Same(t, service, a.fs)
	_ = datatype.Int()
}
