package ast

// ExprVisitor double-dispatches over the closed Expression sum. Every
// concrete expression type's Accept calls exactly one of these methods,
// giving the compiler exhaustiveness checking in place of the original's
// runtime node.Type() switch.
type ExprVisitor interface {
	VisitBinary(e *Binary) any
	VisitGrouping(e *Grouping) any
	VisitLiteral(e *Literal) any
	VisitUnary(e *Unary) any
	VisitVariable(e *Variable) any
	VisitAssign(e *Assign) any
	VisitLogical(e *Logical) any
	VisitTernary(e *Ternary) any
	VisitCall(e *Call) any
	VisitArray(e *Array) any
	VisitGet(e *Get) any
	VisitSet(e *Set) any
	VisitIndex(e *Index) any
	VisitIndexSet(e *IndexSet) any
	VisitNew(e *New) any
}

// StmtVisitor double-dispatches over the closed Statement sum.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) any
	VisitVariableStmt(s *VariableStmt) any
	VisitBlock(s *Block) any
	VisitIf(s *If) any
	VisitWhile(s *While) any
	VisitForIn(s *ForIn) any
	VisitFunction(s *Function) any
	VisitMethod(s *Method) any
	VisitProperty(s *Property) any
	VisitReturn(s *Return) any
	VisitClass(s *Class) any
	VisitImport(s *Import) any
	VisitBreak(s *Break) any
	VisitContinue(s *Continue) any
}
