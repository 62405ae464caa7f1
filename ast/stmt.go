package ast

import (
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/token"
)

// Statement is the closed sum from SPEC_FULL.md §3.3.
type Statement interface {
	Accept(v StmtVisitor) any
	Token() token.Token
}

// ExpressionStmt wraps an Expression evaluated for its side effect.
type ExpressionStmt struct {
	Expr Expression
}

func (s *ExpressionStmt) Accept(v StmtVisitor) any { return v.VisitExpressionStmt(s) }
func (s *ExpressionStmt) Token() token.Token       { return s.Expr.Token() }

// VariableStmt is `let [mut] IDENT : TYPE ('[]')? ('=' expr)? ';'`
// (SPEC_FULL.md §4.2). Type is mandatory in source; Initializer may be nil.
type VariableStmt struct {
	Name        token.Token
	Type        datatype.DataType
	Initializer Expression
	Metadata    VariableMetadata
}

func (s *VariableStmt) Accept(v StmtVisitor) any { return v.VisitVariableStmt(s) }
func (s *VariableStmt) Token() token.Token       { return s.Name }

// Block is `{ statement* }`.
type Block struct {
	LeftBrace  token.Token
	Statements []Statement
}

func (s *Block) Accept(v StmtVisitor) any { return v.VisitBlock(s) }
func (s *Block) Token() token.Token       { return s.LeftBrace }

// If is `if (cond) thenBranch (else elseBranch)?`. ElseBranch is nil when
// absent.
type If struct {
	Keyword     token.Token
	Condition   Expression
	ThenBranch  Statement
	ElseBranch  Statement
}

func (s *If) Accept(v StmtVisitor) any { return v.VisitIf(s) }
func (s *If) Token() token.Token       { return s.Keyword }

// While is `while (cond) body`.
type While struct {
	Keyword   token.Token
	Condition Expression
	Body      Statement
}

func (s *While) Accept(v StmtVisitor) any { return v.VisitWhile(s) }
func (s *While) Token() token.Token       { return s.Keyword }

// ForIn is `for (let IDENT in iterable) body`.
type ForIn struct {
	Keyword      token.Token
	Variable     token.Token
	VariableType datatype.DataType
	Iterable     Expression
	Body         Statement
}

func (s *ForIn) Accept(v StmtVisitor) any { return v.VisitForIn(s) }
func (s *ForIn) Token() token.Token       { return s.Keyword }

// Parameter is a function/method formal parameter.
type Parameter struct {
	Name      token.Token
	Type      datatype.DataType
	IsMutable bool
}

// Function is a top-level function declaration. Body is nil only for an
// @extern declaration written without a body.
type Function struct {
	Keyword    token.Token
	Name       token.Token
	Params     []Parameter
	ReturnType datatype.DataType
	Body       *Block
	IsExported bool
	IsExtern   bool
	ExternName string
}

func (s *Function) Accept(v StmtVisitor) any { return v.VisitFunction(s) }
func (s *Function) Token() token.Token       { return s.Name }

// Method is a class member function.
type Method struct {
	Keyword       token.Token
	Name          token.Token
	Params        []Parameter
	ReturnType    datatype.DataType
	Body          *Block
	IsStatic      bool
	IsPublic      bool
	IsConstructor bool
}

func (s *Method) Accept(v StmtVisitor) any { return v.VisitMethod(s) }
func (s *Method) Token() token.Token       { return s.Name }

// Property is a class field declaration.
type Property struct {
	Name       token.Token
	Type       datatype.DataType
	Initializer Expression
	IsStatic   bool
	IsReadonly bool
	IsPublic   bool
}

func (s *Property) Accept(v StmtVisitor) any { return v.VisitProperty(s) }
func (s *Property) Token() token.Token       { return s.Name }

// Return is `return expr? ;`. Value is nil for a bare `return;`.
type Return struct {
	Keyword token.Token
	Value   Expression
}

func (s *Return) Accept(v StmtVisitor) any { return v.VisitReturn(s) }
func (s *Return) Token() token.Token       { return s.Keyword }

// Class is a class declaration with its properties and methods.
type Class struct {
	Keyword    token.Token
	Name       token.Token
	Superclass *token.Token
	Properties []*Property
	Methods    []*Method
	IsExported bool
}

func (s *Class) Accept(v StmtVisitor) any { return v.VisitClass(s) }
func (s *Class) Token() token.Token       { return s.Name }

// ImportedSymbol is one `IDENT ('as' IDENT)?` clause within an import list.
type ImportedSymbol struct {
	Name  token.Token
	Alias *token.Token
}

// Import is `import { sym (as alias)?, ... } from "path" ;`. IsStd marks a
// path containing "std" (SPEC_FULL.md §4.2), resolved against built-in
// stubs instead of the filesystem.
type Import struct {
	Keyword token.Token
	Symbols []ImportedSymbol
	Path    token.Token
	IsStd   bool
}

func (s *Import) Accept(v StmtVisitor) any { return v.VisitImport(s) }
func (s *Import) Token() token.Token       { return s.Keyword }

// Break is `break ;`, valid only inside a Loop or Switch context.
type Break struct {
	Keyword token.Token
}

func (s *Break) Accept(v StmtVisitor) any { return v.VisitBreak(s) }
func (s *Break) Token() token.Token       { return s.Keyword }

// Continue is `continue ;`, valid only inside a Loop context.
type Continue struct {
	Keyword token.Token
}

func (s *Continue) Accept(v StmtVisitor) any { return v.VisitContinue(s) }
func (s *Continue) Token() token.Token       { return s.Keyword }
