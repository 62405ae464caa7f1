// Package ir is the typed intermediate representation SPEC_FULL.md §3.6
// sits between the analyzer and the backend emitters. Every analyzer pass
// over an *ast.Class/*ast.Function/*ast.Block produces one ir.Node tree;
// backends never see the AST.
//
// The sum mirrors the original analyzer's IRInstruction enum (21 variants)
// one for one, translated into a closed Go interface in the same style as
// ast.Expression/ast.Statement: Accept gives backends exhaustiveness
// checking in place of the original's match on an enum discriminant.
package ir

import (
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/token"
)

// Node is the closed IR sum. Unlike ast.Expression/ast.Statement there is
// no separate expression/statement split: the original IR flattens both
// into one instruction enum, and backends want one dispatch surface.
type Node interface {
	Accept(v Visitor) any
}

// Visitor double-dispatches over the closed Node sum, one method per
// IRInstruction variant in the original analyzer's ir::instruction::mod.
type Visitor interface {
	VisitBinary(n *Binary) any
	VisitBlock(n *Block) any
	VisitLiteral(n *Literal) any
	VisitUnary(n *Unary) any
	VisitVariable(n *Variable) any
	VisitLogical(n *Logical) any
	VisitIf(n *If) any
	VisitWhile(n *While) any
	VisitFunction(n *Function) any
	VisitCall(n *Call) any
	VisitReturn(n *Return) any
	VisitAssign(n *Assign) any
	VisitClass(n *Class) any
	VisitGet(n *Get) any
	VisitSet(n *Set) any
	VisitTernary(n *Ternary) any
	VisitForIn(n *ForIn) any
	VisitArray(n *Array) any
	VisitImport(n *Import) any
	VisitBreak(n *Break) any
	VisitContinue(n *Continue) any
	VisitClassInstance(n *ClassInstance) any
	VisitIndex(n *Index) any
	VisitIndexSet(n *IndexSet) any
}

// InstructionType names the operator carried by Binary/Unary/Logical,
// mirroring the original's IRInstructionType enum and its
// from_token_kind/to_string pair.
type InstructionType int

const (
	Add InstructionType = iota
	Sub
	Mul
	Div
	Mod
	GreaterEqual
	Greater
	LessEqual
	Less
	Equal
	NotEqual
	And
	Or
	Not
	Negate
	AssignOp
	AssignAdd
	AssignSub
)

var instructionTypeNames = map[InstructionType]string{
	Add: "add", Sub: "sub", Mul: "mul", Div: "div", Mod: "mod",
	GreaterEqual: "greater_equal", Greater: "greater",
	LessEqual: "less_equal", Less: "less",
	Equal: "equal", NotEqual: "not_equal",
	And: "and", Or: "or", Not: "not", Negate: "negate",
	AssignOp: "assign", AssignAdd: "assign_add", AssignSub: "assign_sub",
}

func (t InstructionType) String() string {
	if name, ok := instructionTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// InstructionTypeFromToken maps a binary/unary operator token to its
// InstructionType, the Go analogue of IRInstructionType::from_token_kind.
func InstructionTypeFromToken(k token.Kind) InstructionType {
	switch k {
	case token.Plus:
		return Add
	case token.Minus:
		return Sub
	case token.Star:
		return Mul
	case token.Slash:
		return Div
	case token.Percent:
		return Mod
	case token.GreaterEqual:
		return GreaterEqual
	case token.Greater:
		return Greater
	case token.LessEqual:
		return LessEqual
	case token.Less:
		return Less
	case token.EqualEqual:
		return Equal
	case token.BangEqual:
		return NotEqual
	case token.AmpAmp:
		return And
	case token.PipePipe:
		return Or
	case token.Bang:
		return Not
	case token.Equal:
		return AssignOp
	case token.PlusEqual:
		return AssignAdd
	case token.MinusEqual:
		return AssignSub
	default:
		return AssignOp
	}
}

// VariableMetadata is the IR-level counterpart of ast.VariableMetadata,
// carried forward unchanged by the analyzer (IRVariableMetadata in the
// original, field for field).
type VariableMetadata struct {
	IsMutable     bool
	IsReference   bool
	IsParameter   bool
	IsFunction    bool
	IsClass       bool
	IsDeclaration bool
	IsStatic      bool
	IsPublic      bool
	IsConstructor bool
}

// FunctionMetadata is the IR-level counterpart of the original's
// IRFunctionMetadata, adding the is_recursive flag the analyzer computes
// by checking whether a function's body calls its own name (SPEC_FULL.md
// §8.2 scenario S4).
type FunctionMetadata struct {
	IsRecursive bool
	IsExported  bool
	IsImported  bool
	IsExtern    bool
	IsStatic    bool
	IsPublic    bool
}

// --- node definitions, one struct per IRInstruction variant ---

type Binary struct {
	Op    InstructionType
	Left  Node
	Right Node
	Type  datatype.DataType
}

func (n *Binary) Accept(v Visitor) any { return v.VisitBinary(n) }

type Block struct {
	Instructions    []Node
	ScopeVariables  []*Variable
}

func (n *Block) Accept(v Visitor) any { return v.VisitBlock(n) }

type Literal struct {
	Value any
	Type  datatype.DataType
}

func (n *Literal) Accept(v Visitor) any { return v.VisitLiteral(n) }

type Unary struct {
	Op    InstructionType
	Right Node
	Type  datatype.DataType
}

func (n *Unary) Accept(v Visitor) any { return v.VisitUnary(n) }

// Variable is both a declaration site and a bound occurrence; Value is nil
// for a parameter or an occurrence that merely reads the name.
type Variable struct {
	Name     string
	Type     datatype.DataType
	Value    Node
	Metadata VariableMetadata
}

func (n *Variable) Accept(v Visitor) any { return v.VisitVariable(n) }

type Logical struct {
	Op    InstructionType
	Left  Node
	Right Node
}

func (n *Logical) Accept(v Visitor) any { return v.VisitLogical(n) }

type If struct {
	Condition  Node
	ThenBranch Node
	ElseBranch Node // nil when absent
}

func (n *If) Accept(v Visitor) any { return v.VisitIf(n) }

type While struct {
	Condition Node
	Body      Node
}

func (n *While) Accept(v Visitor) any { return v.VisitWhile(n) }

type Function struct {
	Name       string
	Parameters []*Variable
	ReturnType datatype.DataType
	Body       *Block // nil iff Metadata.IsExtern
	Metadata   FunctionMetadata
}

func (n *Function) Accept(v Visitor) any { return v.VisitFunction(n) }

type Call struct {
	Callee    Node
	Arguments []Node
	Type      datatype.DataType
}

func (n *Call) Accept(v Visitor) any { return v.VisitCall(n) }

type Return struct {
	Value Node // nil for a bare `return;`
}

func (n *Return) Accept(v Visitor) any { return v.VisitReturn(n) }

type Assign struct {
	Name  string
	Value Node
}

func (n *Assign) Accept(v Visitor) any { return v.VisitAssign(n) }

type Class struct {
	Name       string
	Properties []*Variable
	Methods    []*Function
	Superclass *Class // nil when the class has no parent
}

func (n *Class) Accept(v Visitor) any { return v.VisitClass(n) }

type Get struct {
	Name   string
	Object Node
	Type   datatype.DataType
}

func (n *Get) Accept(v Visitor) any { return v.VisitGet(n) }

type Set struct {
	Name   string
	Value  Node
	Object Node
}

func (n *Set) Accept(v Visitor) any { return v.VisitSet(n) }

type Ternary struct {
	Condition  Node
	ThenBranch Node
	ElseBranch Node
	Type       datatype.DataType
}

func (n *Ternary) Accept(v Visitor) any { return v.VisitTernary(n) }

type ForIn struct {
	Variable *Variable
	Iterable Node
	Body     Node
}

func (n *ForIn) Accept(v Visitor) any { return v.VisitForIn(n) }

type Array struct {
	Elements []Node
	Type     datatype.DataType
}

func (n *Array) Accept(v Visitor) any { return v.VisitArray(n) }

// ImportedName is one `name (as alias)?` clause, the Go analogue of the
// original's `type ImportName = Vec<(Token, Option<Token>)>`.
type ImportedName struct {
	Name  string
	Alias string // empty when absent
}

type Import struct {
	Names []ImportedName
	Path  string
}

func (n *Import) Accept(v Visitor) any { return v.VisitImport(n) }

type Break struct{}

func (n *Break) Accept(v Visitor) any { return v.VisitBreak(n) }

type Continue struct{}

func (n *Continue) Accept(v Visitor) any { return v.VisitContinue(n) }

type ClassInstance struct {
	Class            *Class
	Name             string
	ConstructorArgs  []Node
}

func (n *ClassInstance) Accept(v Visitor) any { return v.VisitClassInstance(n) }

// Index and IndexSet are the IR counterparts of ast.Index/ast.IndexSet,
// supplementing the original's instruction set the same way the AST layer
// does (SPEC_FULL.md §3.3): array indexing has no dedicated IR node
// upstream, so without these two the backends would have nothing to emit
// for `a[i]` / `a[i] = v`.
type Index struct {
	Object Node
	At     Node
	Type   datatype.DataType
}

func (n *Index) Accept(v Visitor) any { return v.VisitIndex(n) }

type IndexSet struct {
	Object Node
	At     Node
	Value  Node
	Type   datatype.DataType
}

func (n *IndexSet) Accept(v Visitor) any { return v.VisitIndexSet(n) }
