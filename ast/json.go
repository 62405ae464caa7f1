package ast

import "encoding/json"

// jsonDumper implements both ExprVisitor and StmtVisitor, converting each
// node into a plain map so Dump's output is a pure function of the AST
// (SPEC_FULL.md §8.1 "parse round-trip" invariant): same tree in, same
// JSON bytes out, no nondeterminism from map iteration order because
// encoding/json sorts object keys.
type jsonDumper struct{}

// Dump renders a parsed program as JSON. It is the Go analogue of the
// original's `Expression::to_json` / `Statement::to_json` pair, unified
// into one visitor since Go doesn't need two inherent traits for it.
func Dump(program []Statement) ([]byte, error) {
	d := &jsonDumper{}
	nodes := make([]any, len(program))
	for i, stmt := range program {
		nodes[i] = stmt.Accept(d)
	}
	return json.MarshalIndent(nodes, "", "  ")
}

func (d *jsonDumper) node(kind string, fields map[string]any) map[string]any {
	out := map[string]any{"type": kind}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func (d *jsonDumper) expr(e Expression) any {
	if e == nil {
		return nil
	}
	return e.Accept(d)
}

func (d *jsonDumper) exprs(es []Expression) []any {
	out := make([]any, len(es))
	for i, e := range es {
		out[i] = d.expr(e)
	}
	return out
}

func (d *jsonDumper) stmt(s Statement) any {
	if s == nil {
		return nil
	}
	return s.Accept(d)
}

// --- ExprVisitor ---

func (d *jsonDumper) VisitBinary(e *Binary) any {
	return d.node("Binary", map[string]any{
		"left":     d.expr(e.Left),
		"operator": e.Operator.Lexeme(),
		"right":    d.expr(e.Right),
		"dataType": e.ResultType.String(),
	})
}

func (d *jsonDumper) VisitGrouping(e *Grouping) any {
	return d.node("Grouping", map[string]any{"expression": d.expr(e.Expression)})
}

func (d *jsonDumper) VisitLiteral(e *Literal) any {
	return d.node("Literal", map[string]any{"value": e.Value, "dataType": e.Type.String()})
}

func (d *jsonDumper) VisitUnary(e *Unary) any {
	return d.node("Unary", map[string]any{
		"operator": e.Operator.Lexeme(),
		"right":    d.expr(e.Right),
		"dataType": e.ResultType.String(),
	})
}

func (d *jsonDumper) VisitVariable(e *Variable) any {
	return d.node("Variable", map[string]any{"name": e.Name.Lexeme(), "dataType": e.Type.String()})
}

func (d *jsonDumper) VisitAssign(e *Assign) any {
	return d.node("Assign", map[string]any{
		"target":   d.expr(e.Target),
		"value":    d.expr(e.Value),
		"dataType": e.Type.String(),
	})
}

func (d *jsonDumper) VisitLogical(e *Logical) any {
	return d.node("Logical", map[string]any{
		"left":     d.expr(e.Left),
		"operator": e.Operator.Lexeme(),
		"right":    d.expr(e.Right),
	})
}

func (d *jsonDumper) VisitTernary(e *Ternary) any {
	return d.node("Ternary", map[string]any{
		"condition":  d.expr(e.Condition),
		"thenBranch": d.expr(e.Then),
		"elseBranch": d.expr(e.Else),
		"dataType":   e.Type.String(),
	})
}

func (d *jsonDumper) VisitCall(e *Call) any {
	return d.node("Call", map[string]any{
		"callee":       d.expr(e.Callee),
		"arguments":    d.exprs(e.Arguments),
		"returnType":   e.ReturnType.String(),
		"isConstructor": e.IsConstructor,
	})
}

func (d *jsonDumper) VisitArray(e *Array) any {
	return d.node("Array", map[string]any{
		"elements": d.exprs(e.Elements),
		"dataType": e.ElementType.String(),
	})
}

func (d *jsonDumper) VisitGet(e *Get) any {
	return d.node("Get", map[string]any{"object": d.expr(e.Object), "name": e.Name.Lexeme()})
}

func (d *jsonDumper) VisitSet(e *Set) any {
	return d.node("Set", map[string]any{
		"object":   d.expr(e.Object),
		"name":     e.Name.Lexeme(),
		"value":    d.expr(e.Value),
		"dataType": e.Type.String(),
	})
}

func (d *jsonDumper) VisitIndex(e *Index) any {
	return d.node("Index", map[string]any{
		"object":   d.expr(e.Object),
		"at":       d.expr(e.At),
		"dataType": e.Type.String(),
	})
}

func (d *jsonDumper) VisitIndexSet(e *IndexSet) any {
	return d.node("IndexSet", map[string]any{
		"object":   d.expr(e.Object),
		"at":       d.expr(e.At),
		"value":    d.expr(e.Value),
		"dataType": e.Type.String(),
	})
}

func (d *jsonDumper) VisitNew(e *New) any {
	return d.node("New", map[string]any{
		"className": e.ClassName.Lexeme(),
		"arguments": d.exprs(e.Arguments),
		"dataType":  e.Type.String(),
	})
}

// --- StmtVisitor ---

func (d *jsonDumper) VisitExpressionStmt(s *ExpressionStmt) any {
	return d.node("ExpressionStmt", map[string]any{"expression": d.expr(s.Expr)})
}

func (d *jsonDumper) VisitVariableStmt(s *VariableStmt) any {
	return d.node("Variable", map[string]any{
		"name":        s.Name.Lexeme(),
		"dataType":    s.Type.String(),
		"initializer": d.expr(s.Initializer),
		"isMutable":   s.Metadata.IsMutable,
	})
}

func (d *jsonDumper) VisitBlock(s *Block) any {
	stmts := make([]any, len(s.Statements))
	for i, st := range s.Statements {
		stmts[i] = d.stmt(st)
	}
	return d.node("Block", map[string]any{"statements": stmts})
}

func (d *jsonDumper) VisitIf(s *If) any {
	return d.node("If", map[string]any{
		"condition":  d.expr(s.Condition),
		"thenBranch": d.stmt(s.ThenBranch),
		"elseBranch": d.stmt(s.ElseBranch),
	})
}

func (d *jsonDumper) VisitWhile(s *While) any {
	return d.node("While", map[string]any{"condition": d.expr(s.Condition), "body": d.stmt(s.Body)})
}

func (d *jsonDumper) VisitForIn(s *ForIn) any {
	return d.node("ForIn", map[string]any{
		"variable": s.Variable.Lexeme(),
		"dataType": s.VariableType.String(),
		"iterable": d.expr(s.Iterable),
		"body":     d.stmt(s.Body),
	})
}

func (d *jsonDumper) paramsJSON(params []Parameter) []any {
	out := make([]any, len(params))
	for i, p := range params {
		out[i] = map[string]any{"name": p.Name.Lexeme(), "dataType": p.Type.String(), "isMutable": p.IsMutable}
	}
	return out
}

func (d *jsonDumper) VisitFunction(s *Function) any {
	var body any
	if s.Body != nil {
		body = d.stmt(s.Body)
	}
	return d.node("Function", map[string]any{
		"name":       s.Name.Lexeme(),
		"parameters": d.paramsJSON(s.Params),
		"returnType": s.ReturnType.String(),
		"body":       body,
		"isExported": s.IsExported,
		"isExtern":   s.IsExtern,
	})
}

func (d *jsonDumper) VisitMethod(s *Method) any {
	var body any
	if s.Body != nil {
		body = d.stmt(s.Body)
	}
	return d.node("Method", map[string]any{
		"name":          s.Name.Lexeme(),
		"parameters":    d.paramsJSON(s.Params),
		"returnType":    s.ReturnType.String(),
		"body":          body,
		"isStatic":      s.IsStatic,
		"isPublic":      s.IsPublic,
		"isConstructor": s.IsConstructor,
	})
}

func (d *jsonDumper) VisitProperty(s *Property) any {
	return d.node("Property", map[string]any{
		"name":        s.Name.Lexeme(),
		"dataType":    s.Type.String(),
		"initializer": d.expr(s.Initializer),
		"isStatic":    s.IsStatic,
		"isReadonly":  s.IsReadonly,
		"isPublic":    s.IsPublic,
	})
}

func (d *jsonDumper) VisitReturn(s *Return) any {
	return d.node("Return", map[string]any{"value": d.expr(s.Value)})
}

func (d *jsonDumper) VisitClass(s *Class) any {
	props := make([]any, len(s.Properties))
	for i, p := range s.Properties {
		props[i] = d.stmt(p)
	}
	methods := make([]any, len(s.Methods))
	for i, m := range s.Methods {
		methods[i] = d.stmt(m)
	}
	var super any
	if s.Superclass != nil {
		super = s.Superclass.Lexeme()
	}
	return d.node("Class", map[string]any{
		"name":       s.Name.Lexeme(),
		"superclass": super,
		"properties": props,
		"methods":    methods,
		"isExported": s.IsExported,
	})
}

func (d *jsonDumper) VisitImport(s *Import) any {
	symbols := make([]any, len(s.Symbols))
	for i, sym := range s.Symbols {
		entry := map[string]any{"name": sym.Name.Lexeme()}
		if sym.Alias != nil {
			entry["alias"] = sym.Alias.Lexeme()
		}
		symbols[i] = entry
	}
	return d.node("Import", map[string]any{
		"symbols": symbols,
		"path":    s.Path.Lexeme(),
		"isStd":   s.IsStd,
	})
}

func (d *jsonDumper) VisitBreak(s *Break) any    { return d.node("Break", nil) }
func (d *jsonDumper) VisitContinue(s *Continue) any { return d.node("Continue", nil) }
