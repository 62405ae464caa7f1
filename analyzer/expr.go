package analyzer

import (
	"github.com/viant/ignis/ast"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/ir"
	"github.com/viant/ignis/token"
)

// exprResult is what every ExprVisitor method actually returns, boxed as
// `any` to satisfy ast.ExprVisitor's signature; analyzeExpr unwraps it.
// This plays the role the original's Result<IRInstruction, Diagnostic>
// return type plays in Rust, where Go's visitor contract only allows one
// return value.
type exprResult struct {
	node ir.Node
	err  error
}

func (a *Analyzer) analyzeExpr(e ast.Expression) (ir.Node, error) {
	if e == nil {
		return nil, nil
	}
	res := e.Accept(a).(exprResult)
	return res.node, res.err
}

func ok(n ir.Node) exprResult    { return exprResult{node: n} }
func fail(err error) exprResult { return exprResult{err: err} }

func dataTypeOf(n ir.Node) datatype.DataType {
	switch v := n.(type) {
	case *ir.Binary:
		return v.Type
	case *ir.Unary:
		return v.Type
	case *ir.Literal:
		return v.Type
	case *ir.Variable:
		return v.Type
	case *ir.Ternary:
		return v.Type
	case *ir.Call:
		return v.Type
	case *ir.Array:
		return v.Type
	case *ir.Logical:
		return datatype.Boolean()
	case *ir.Get:
		return v.Type
	case *ir.Index:
		return v.Type
	case *ir.ClassInstance:
		return datatype.NewClass(v.Class.Name)
	default:
		return datatype.None()
	}
}

func toBinaryOp(t ir.InstructionType) (datatype.BinaryOp, bool) {
	switch t {
	case ir.Add:
		return datatype.Add, true
	case ir.Sub:
		return datatype.Sub, true
	case ir.Mul:
		return datatype.Mul, true
	case ir.Div:
		return datatype.Div, true
	case ir.Mod:
		return datatype.Mod, true
	case ir.Less:
		return datatype.Lt, true
	case ir.LessEqual:
		return datatype.Le, true
	case ir.Greater:
		return datatype.Gt, true
	case ir.GreaterEqual:
		return datatype.Ge, true
	case ir.Equal:
		return datatype.Eq, true
	case ir.NotEqual:
		return datatype.Ne, true
	case ir.And:
		return datatype.And, true
	case ir.Or:
		return datatype.Or, true
	default:
		return 0, false
	}
}

func (a *Analyzer) VisitBinary(e *ast.Binary) any {
	left, err := a.analyzeExpr(e.Left)
	if err != nil {
		return fail(err)
	}
	right, err := a.analyzeExpr(e.Right)
	if err != nil {
		return fail(err)
	}
	opType := ir.InstructionTypeFromToken(e.Operator.Kind)
	binOp, known := toBinaryOp(opType)
	if !known {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "unsupported binary operator '"+e.Operator.Lexeme()+"'", e.Operator))
	}
	leftType, rightType := dataTypeOf(left), dataTypeOf(right)
	resultType, compatible := datatype.BinaryResult(binOp, leftType, rightType)
	if !compatible {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "type mismatch: "+leftType.String()+" and "+rightType.String()+" are not compatible with '"+e.Operator.Lexeme()+"'", e.Operator))
	}
	return ok(&ir.Binary{Op: opType, Left: left, Right: right, Type: resultType})
}

func (a *Analyzer) VisitGrouping(e *ast.Grouping) any {
	node, err := a.analyzeExpr(e.Expression)
	if err != nil {
		return fail(err)
	}
	return ok(node)
}

func (a *Analyzer) VisitLiteral(e *ast.Literal) any {
	return ok(&ir.Literal{Value: e.Value, Type: e.Type})
}

func (a *Analyzer) VisitUnary(e *ast.Unary) any {
	right, err := a.analyzeExpr(e.Right)
	if err != nil {
		return fail(err)
	}
	opType := ir.InstructionTypeFromToken(e.Operator.Kind)
	isNegate := e.Operator.Kind == token.Minus
	resultType, compatible := datatype.UnaryResult(isNegate, dataTypeOf(right))
	if !compatible {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "operator '"+e.Operator.Lexeme()+"' is not compatible with type "+dataTypeOf(right).String(), e.Operator))
	}
	return ok(&ir.Unary{Op: opType, Right: right, Type: resultType})
}

func (a *Analyzer) VisitVariable(e *ast.Variable) any {
	name := e.Name.Lexeme()
	if f := a.findFunction(name); f != nil {
		return ok(f)
	}
	if a.currentFunction != nil && a.currentFunction.Name == name {
		a.currentFunction.Metadata.IsRecursive = true
		return ok(a.currentFunction)
	}
	if !a.isDefined(name) {
		return fail(a.errorAt(diagnostic.CodeUndeclaredVariable, "undeclared variable '"+name+"'", e.Name))
	}
	variable := a.lookupVariable(name)
	if variable == nil {
		return fail(a.errorAt(diagnostic.CodeUndeclaredVariable, "undeclared variable '"+name+"'", e.Name))
	}
	occurrence := *variable
	occurrence.Metadata.IsDeclaration = false
	return ok(&occurrence)
}

func (a *Analyzer) VisitAssign(e *ast.Assign) any {
	target, ok2 := e.Target.(*ast.Variable)
	if !ok2 {
		return fail(a.errorAt(diagnostic.CodeInvalidAssignmentTarget, "invalid assignment target", e.Equals))
	}
	name := target.Name.Lexeme()
	if !a.isDefined(name) {
		return fail(a.errorAt(diagnostic.CodeUndeclaredVariable, "undeclared variable '"+name+"'", target.Name))
	}
	value, err := a.analyzeExpr(e.Value)
	if err != nil {
		return fail(err)
	}
	variable := a.lookupVariable(name)
	if variable == nil || !variable.Metadata.IsMutable {
		return fail(a.errorAt(diagnostic.CodeInvalidReassignedVariable, "cannot reassign immutable variable '"+name+"'", target.Name))
	}
	return ok(&ir.Assign{Name: name, Value: value})
}

func (a *Analyzer) VisitLogical(e *ast.Logical) any {
	left, err := a.analyzeExpr(e.Left)
	if err != nil {
		return fail(err)
	}
	right, err := a.analyzeExpr(e.Right)
	if err != nil {
		return fail(err)
	}
	opType := ir.InstructionTypeFromToken(e.Operator.Kind)
	binOp, _ := toBinaryOp(opType)
	if _, compatible := datatype.BinaryResult(binOp, dataTypeOf(left), dataTypeOf(right)); !compatible {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "type mismatch in logical expression", e.Operator))
	}
	return ok(&ir.Logical{Op: opType, Left: left, Right: right})
}

func (a *Analyzer) VisitTernary(e *ast.Ternary) any {
	condition, err := a.analyzeExpr(e.Condition)
	if err != nil {
		return fail(err)
	}
	thenBranch, err := a.analyzeExpr(e.Then)
	if err != nil {
		return fail(err)
	}
	elseBranch, err := a.analyzeExpr(e.Else)
	if err != nil {
		return fail(err)
	}
	if !dataTypeOf(condition).Equal(datatype.Boolean()) {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "ternary condition must be boolean", e.Question))
	}
	thenType, elseType := dataTypeOf(thenBranch), dataTypeOf(elseBranch)
	if !thenType.Equal(elseType) {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "ternary branches have mismatched types "+thenType.String()+" and "+elseType.String(), e.Question))
	}
	return ok(&ir.Ternary{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch, Type: thenType})
}

func (a *Analyzer) VisitCall(e *ast.Call) any {
	callee, err := a.analyzeExpr(e.Callee)
	if err != nil {
		return fail(err)
	}
	function, isFunction := callee.(*ir.Function)
	if !isFunction {
		return fail(a.errorAt(diagnostic.CodeUndefinedMethods, "callee is not callable", e.Paren))
	}
	if len(function.Parameters) != len(e.Arguments) {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "expected argument count to match parameter count", e.Paren))
	}
	arguments := make([]ir.Node, 0, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		argNode, err := a.analyzeExpr(argExpr)
		if err != nil {
			return fail(err)
		}
		param := function.Parameters[i]
		argType := dataTypeOf(argNode)
		if !argType.Equal(param.Type) && !param.Type.Equal(datatype.None()) {
			return fail(a.errorAt(diagnostic.CodeTypeMismatch, "argument "+param.Name+" expects "+param.Type.String()+", got "+argType.String(), e.Paren))
		}
		if variable, isVariable := argNode.(*ir.Variable); isVariable && param.Metadata.IsMutable && !variable.Metadata.IsMutable {
			return fail(a.errorAt(diagnostic.CodeInvalidReassignedVariable, "parameter '"+param.Name+"' requires a mutable argument, got immutable '"+variable.Name+"'", e.Paren))
		}
		arguments = append(arguments, argNode)
	}
	return ok(&ir.Call{Callee: function, Arguments: arguments, Type: function.ReturnType})
}

func (a *Analyzer) VisitArray(e *ast.Array) any {
	elements := make([]ir.Node, 0, len(e.Elements))
	var elementType datatype.DataType
	for i, elExpr := range e.Elements {
		node, err := a.analyzeExpr(elExpr)
		if err != nil {
			return fail(err)
		}
		t := dataTypeOf(node)
		if i == 0 {
			elementType = t
		} else if !t.Equal(elementType) {
			return fail(a.errorAt(diagnostic.CodeTypeMismatch, "array elements must share a single type, found "+elementType.String()+" and "+t.String(), e.Bracket))
		}
		elements = append(elements, node)
	}
	if len(elements) == 0 {
		elementType = datatype.Pending()
	}
	return ok(&ir.Array{Elements: elements, Type: datatype.NewArray(elementType)})
}

func (a *Analyzer) VisitGet(e *ast.Get) any {
	object, err := a.analyzeExpr(e.Object)
	if err != nil {
		return fail(err)
	}
	objectType := dataTypeOf(object)
	if objectType.Kind != datatype.ClassType {
		return fail(a.errorAt(diagnostic.CodeUndeclaredVariable, "cannot access property '"+e.Name.Lexeme()+"' on non-class type "+objectType.String(), e.Name))
	}
	class := a.findClass(objectType.Name)
	if class == nil || !hasProperty(class, e.Name.Lexeme()) {
		return fail(a.errorAt(diagnostic.CodeUndeclaredVariable, "class '"+objectType.Name+"' has no property '"+e.Name.Lexeme()+"'", e.Name))
	}
	return ok(&ir.Get{Name: e.Name.Lexeme(), Object: object, Type: propertyType(class, e.Name.Lexeme())})
}

func (a *Analyzer) VisitSet(e *ast.Set) any {
	object, err := a.analyzeExpr(e.Object)
	if err != nil {
		return fail(err)
	}
	value, err := a.analyzeExpr(e.Value)
	if err != nil {
		return fail(err)
	}
	return ok(&ir.Set{Name: e.Name.Lexeme(), Object: object, Value: value})
}

func (a *Analyzer) VisitIndex(e *ast.Index) any {
	object, err := a.analyzeExpr(e.Object)
	if err != nil {
		return fail(err)
	}
	at, err := a.analyzeExpr(e.At)
	if err != nil {
		return fail(err)
	}
	objectType := dataTypeOf(object)
	if objectType.Kind != datatype.Array {
		return fail(a.errorAt(diagnostic.CodeTypeMismatch, "cannot index non-array type "+objectType.String(), e.Bracket))
	}
	return ok(&ir.Index{Object: object, At: at, Type: *objectType.Element})
}

func (a *Analyzer) VisitIndexSet(e *ast.IndexSet) any {
	object, err := a.analyzeExpr(e.Object)
	if err != nil {
		return fail(err)
	}
	at, err := a.analyzeExpr(e.At)
	if err != nil {
		return fail(err)
	}
	value, err := a.analyzeExpr(e.Value)
	if err != nil {
		return fail(err)
	}
	return ok(&ir.IndexSet{Object: object, At: at, Value: value})
}

func (a *Analyzer) VisitNew(e *ast.New) any {
	className := e.ClassName.Lexeme()
	class := a.findClass(className)
	if class == nil {
		return fail(a.errorAt(diagnostic.CodeUndefinedMethods, "undefined class '"+className+"'", e.ClassName))
	}
	arguments := make([]ir.Node, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		node, err := a.analyzeExpr(argExpr)
		if err != nil {
			return fail(err)
		}
		arguments = append(arguments, node)
	}
	if findConstructor(class, arguments) == nil {
		return fail(a.errorAt(diagnostic.CodeUndefinedMethods, "class '"+className+"' has no constructor matching the supplied arguments", e.ClassName))
	}
	return ok(&ir.ClassInstance{Class: class, Name: className, ConstructorArgs: arguments})
}

func hasProperty(class *ir.Class, name string) bool {
	for _, p := range class.Properties {
		if p.Name == name {
			return true
		}
	}
	if class.Superclass != nil {
		return hasProperty(class.Superclass, name)
	}
	return false
}

func propertyType(class *ir.Class, name string) datatype.DataType {
	for _, p := range class.Properties {
		if p.Name == name {
			return p.Type
		}
	}
	if class.Superclass != nil {
		return propertyType(class.Superclass, name)
	}
	return datatype.Pending()
}

// findConstructor looks up the non-static method named after the class
// (the parser's constructor rule) whose parameter count matches the
// supplied arguments (SPEC_FULL.md §4.3 "new Class(args)"); argument types
// are not compared.
func findConstructor(class *ir.Class, arguments []ir.Node) *ir.Function {
	for _, m := range class.Methods {
		if !m.Metadata.IsStatic && len(m.Parameters) == len(arguments) && isConstructorName(m, class.Name) {
			return m
		}
	}
	return nil
}

func isConstructorName(m *ir.Function, className string) bool {
	return m.Name == className
}

func (a *Analyzer) errorAt(code, message string, tok token.Token) error {
	a.reportAt(code, message, a.currentFile, tok.Span.Line, tok.Span.Column, tok.Lexeme())
	return &analysisError{msg: message}
}

type analysisError struct{ msg string }

func (e *analysisError) Error() string { return e.msg }
