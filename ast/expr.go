package ast

import (
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/token"
)

// Expression is the closed sum from SPEC_FULL.md §3.3. Accept implements
// double dispatch against an ExprVisitor — the systems-language analogue of
// the teacher corpus's node.Type() switch, kept as an exhaustive interface
// so the compiler enforces every visitor implements every case.
type Expression interface {
	Accept(v ExprVisitor) any
	// Token returns the token that anchors this node's span, used to build
	// diagnostics that point precisely at the offending expression.
	Token() token.Token
}

// Binary is `left OP right` for arithmetic, comparison, and equality
// operators. ResultType is the parser's inline inference (SPEC_FULL.md
// §4.2) and is advisory: the analyzer recomputes it authoritatively.
type Binary struct {
	Left       Expression
	Operator   token.Token
	Right      Expression
	ResultType datatype.DataType
}

func (b *Binary) Accept(v ExprVisitor) any  { return v.VisitBinary(b) }
func (b *Binary) Token() token.Token        { return b.Operator }

// Grouping is a parenthesized sub-expression, kept as its own node so the
// AST (and any pretty-printer built on it) preserves explicit grouping.
type Grouping struct {
	Paren      token.Token
	Expression Expression
}

func (g *Grouping) Accept(v ExprVisitor) any { return v.VisitGrouping(g) }
func (g *Grouping) Token() token.Token       { return g.Paren }

// Literal is a number/string/char/bool/null constant.
type Literal struct {
	Tok   token.Token
	Value any
	Type  datatype.DataType
}

func (l *Literal) Accept(v ExprVisitor) any { return v.VisitLiteral(l) }
func (l *Literal) Token() token.Token       { return l.Tok }

// Unary is `-expr` or `!expr`.
type Unary struct {
	Operator   token.Token
	Right      Expression
	ResultType datatype.DataType
}

func (u *Unary) Accept(v ExprVisitor) any { return v.VisitUnary(u) }
func (u *Unary) Token() token.Token       { return u.Operator }

// Variable is a read reference to a name. The parser leaves Metadata at
// its zero value and the analyzer does not update it: resolving the name
// against the scope stack yields an ir.Variable carrying the declaration's
// metadata instead.
type Variable struct {
	Name     token.Token
	Metadata VariableMetadata
	Type     datatype.DataType
}

func (v *Variable) Accept(vis ExprVisitor) any { return vis.VisitVariable(v) }
func (v *Variable) Token() token.Token         { return v.Name }

// Assign is `target = value`. The parser builds an Assign only for a
// *Variable target; `object.name = value` becomes a Set and
// `object[i] = value` an IndexSet (SPEC_FULL.md §4.2 assignment-target
// rule), and any other target is rejected with InvalidAssignmentTarget.
type Assign struct {
	Equals token.Token
	Target Expression
	Value  Expression
	Type   datatype.DataType
}

func (a *Assign) Accept(v ExprVisitor) any { return v.VisitAssign(a) }
func (a *Assign) Token() token.Token       { return a.Equals }

// Logical is `left && right` / `left || right`, kept distinct from Binary
// so the analyzer and backends can short-circuit it.
type Logical struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (l *Logical) Accept(v ExprVisitor) any { return v.VisitLogical(l) }
func (l *Logical) Token() token.Token       { return l.Operator }

// Ternary is `condition ? then : else`.
type Ternary struct {
	Question token.Token
	Condition Expression
	Then      Expression
	Else      Expression
	Type      datatype.DataType
}

func (t *Ternary) Accept(v ExprVisitor) any { return v.VisitTernary(t) }
func (t *Ternary) Token() token.Token       { return t.Question }

// Call is `callee(arguments...)`.
type Call struct {
	Callee       Expression
	Paren        token.Token
	Arguments    []Expression
	ReturnType   datatype.DataType
	IsConstructor bool
}

func (c *Call) Accept(v ExprVisitor) any { return v.VisitCall(c) }
func (c *Call) Token() token.Token       { return c.Paren }

// Array is an array literal `[e1, e2, ...]`. ElementType is filled by the
// parser from the enclosing declaration's annotation where available.
type Array struct {
	Bracket     token.Token
	Elements    []Expression
	ElementType datatype.DataType
}

func (a *Array) Accept(v ExprVisitor) any { return v.VisitArray(a) }
func (a *Array) Token() token.Token       { return a.Bracket }

// Get is `object.name` member access.
type Get struct {
	Object Expression
	Name   token.Token
}

func (g *Get) Accept(v ExprVisitor) any { return v.VisitGet(g) }
func (g *Get) Token() token.Token       { return g.Name }

// Set is `object.name = value`.
type Set struct {
	Object Expression
	Name   token.Token
	Value  Expression
	Type   datatype.DataType
}

func (s *Set) Accept(v ExprVisitor) any { return v.VisitSet(s) }
func (s *Set) Token() token.Token       { return s.Name }

// Index is `object[indexExpr]`, the array-element counterpart of Get/Set.
// The grammar in SPEC_FULL.md §4.2 admits `[` expr `]` as a call-postfix and
// lists indexed-access among valid assignment targets; the original source
// left this case merged into ad-hoc handling, so this is a first-class node
// here for both reads (via Index) and writes (via IndexSet).
type Index struct {
	Object  Expression
	Bracket token.Token
	At      Expression
	Type    datatype.DataType
}

func (i *Index) Accept(v ExprVisitor) any { return v.VisitIndex(i) }
func (i *Index) Token() token.Token       { return i.Bracket }

// IndexSet is `object[indexExpr] = value`.
type IndexSet struct {
	Object  Expression
	Bracket token.Token
	At      Expression
	Value   Expression
	Type    datatype.DataType
}

func (i *IndexSet) Accept(v ExprVisitor) any { return v.VisitIndexSet(i) }
func (i *IndexSet) Token() token.Token       { return i.Bracket }

// New is `new ClassName(arguments...)`.
type New struct {
	Keyword   token.Token
	ClassName token.Token
	Arguments []Expression
	Type      datatype.DataType
}

func (n *New) Accept(v ExprVisitor) any { return v.VisitNew(n) }
func (n *New) Token() token.Token       { return n.Keyword }
