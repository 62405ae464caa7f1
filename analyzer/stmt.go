package analyzer

import (
	"github.com/viant/ignis/ast"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/ir"
)

type stmtResult struct {
	node ir.Node
	err  error
}

func (a *Analyzer) analyzeStmt(s ast.Statement) (ir.Node, error) {
	if s == nil {
		return nil, nil
	}
	res := s.Accept(a).(stmtResult)
	return res.node, res.err
}

func okS(n ir.Node) stmtResult    { return stmtResult{node: n} }
func failS(err error) stmtResult { return stmtResult{err: err} }

func (a *Analyzer) VisitExpressionStmt(s *ast.ExpressionStmt) any {
	node, err := a.analyzeExpr(s.Expr)
	if err != nil {
		return failS(err)
	}
	return okS(node)
}

func (a *Analyzer) VisitVariableStmt(s *ast.VariableStmt) any {
	declaredType := s.Type
	var value ir.Node
	if s.Initializer != nil {
		v, err := a.analyzeExpr(s.Initializer)
		if err != nil {
			return failS(err)
		}
		value = v
		initType := dataTypeOf(v)
		if declaredType.IsPending() {
			declaredType = initType
		} else if !declaredType.Equal(initType) {
			return failS(a.errorAt(diagnostic.CodeTypeMismatch, "cannot assign "+initType.String()+" to variable of type "+declaredType.String(), s.Name))
		}
	}
	variable := &ir.Variable{
		Name:  s.Name.Lexeme(),
		Type:  declaredType,
		Value: value,
		Metadata: ir.VariableMetadata{
			IsMutable:     s.Metadata.IsMutable,
			IsReference:   s.Metadata.IsReference,
			IsParameter:   s.Metadata.IsParameter,
			IsFunction:    s.Metadata.IsFunction,
			IsClass:       s.Metadata.IsClass,
			IsDeclaration: true,
			IsStatic:      s.Metadata.IsStatic,
			IsPublic:      s.Metadata.IsPublic,
			IsConstructor: s.Metadata.IsConstructor,
		},
	}
	a.declare(variable.Name)
	a.define(variable.Name)
	a.scopeVariables = append(a.scopeVariables, variable)
	return okS(variable)
}

func (a *Analyzer) VisitBlock(s *ast.Block) any {
	a.beginScope()
	start := len(a.scopeVariables)
	var instructions []ir.Node
	for _, stmt := range s.Statements {
		node, err := a.analyzeStmt(stmt)
		if err != nil {
			continue
		}
		if node != nil {
			instructions = append(instructions, node)
		}
	}
	locals := append([]*ir.Variable(nil), a.scopeVariables[start:]...)
	a.scopeVariables = a.scopeVariables[:start]
	a.endScope()
	return okS(&ir.Block{Instructions: instructions, ScopeVariables: locals})
}

func (a *Analyzer) VisitIf(s *ast.If) any {
	condition, err := a.analyzeExpr(s.Condition)
	if err != nil {
		return failS(err)
	}
	if !dataTypeOf(condition).Equal(datatype.Boolean()) {
		return failS(a.errorAt(diagnostic.CodeTypeMismatch, "if condition must be boolean", s.Keyword))
	}
	thenBranch, err := a.analyzeStmt(s.ThenBranch)
	if err != nil {
		return failS(err)
	}
	var elseBranch ir.Node
	if s.ElseBranch != nil {
		elseBranch, err = a.analyzeStmt(s.ElseBranch)
		if err != nil {
			return failS(err)
		}
	}
	return okS(&ir.If{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch})
}

func (a *Analyzer) VisitWhile(s *ast.While) any {
	condition, err := a.analyzeExpr(s.Condition)
	if err != nil {
		return failS(err)
	}
	if !dataTypeOf(condition).Equal(datatype.Boolean()) {
		return failS(a.errorAt(diagnostic.CodeTypeMismatch, "while condition must be boolean", s.Keyword))
	}
	a.pushContext(ContextLoop)
	body, err := a.analyzeStmt(s.Body)
	a.popContext()
	if err != nil {
		return failS(err)
	}
	return okS(&ir.While{Condition: condition, Body: body})
}

func (a *Analyzer) VisitForIn(s *ast.ForIn) any {
	iterable, err := a.analyzeExpr(s.Iterable)
	if err != nil {
		return failS(err)
	}
	iterableType := dataTypeOf(iterable)
	if iterableType.Kind != datatype.Array {
		return failS(a.errorAt(diagnostic.CodeTypeMismatch, "for-in iterable must be an array, found "+iterableType.String(), s.Keyword))
	}
	elementType := datatype.Pending()
	if iterableType.Element != nil {
		elementType = *iterableType.Element
	}
	loopVariable := &ir.Variable{
		Name:     s.Variable.Lexeme(),
		Type:     elementType,
		Metadata: ir.VariableMetadata{IsDeclaration: true},
	}
	a.pushContext(ContextLoop)
	a.beginScope()
	start := len(a.scopeVariables)
	a.declare(loopVariable.Name)
	a.define(loopVariable.Name)
	a.scopeVariables = append(a.scopeVariables, loopVariable)
	body, err := a.analyzeStmt(s.Body)
	a.scopeVariables = a.scopeVariables[:start]
	a.endScope()
	a.popContext()
	if err != nil {
		return failS(err)
	}
	return okS(&ir.ForIn{Variable: loopVariable, Iterable: iterable, Body: body})
}

func (a *Analyzer) VisitFunction(s *ast.Function) any {
	name := s.Name.Lexeme()
	if a.isDeclared(name) {
		return failS(a.errorAt(diagnostic.CodeFunctionAlreadyDefined, "function '"+name+"' is already declared", s.Name))
	}
	a.declare(name)
	a.define(name)
	parameters := make([]*ir.Variable, 0, len(s.Params))
	for _, p := range s.Params {
		parameters = append(parameters, &ir.Variable{
			Name:     p.Name.Lexeme(),
			Type:     p.Type,
			Metadata: ir.VariableMetadata{IsMutable: p.IsMutable, IsParameter: true, IsDeclaration: true},
		})
	}
	function := &ir.Function{
		Name:       s.Name.Lexeme(),
		Parameters: parameters,
		ReturnType: s.ReturnType,
		Metadata:   ir.FunctionMetadata{IsExported: s.IsExported, IsExtern: s.IsExtern},
	}
	if s.IsExtern {
		return okS(function)
	}
	previousFunction := a.currentFunction
	a.currentFunction = function
	a.pushContext(ContextFunction)
	a.beginScope()
	start := len(a.scopeVariables)
	for _, param := range parameters {
		a.declare(param.Name)
		a.define(param.Name)
		a.scopeVariables = append(a.scopeVariables, param)
	}
	var instructions []ir.Node
	for _, stmt := range s.Body.Statements {
		node, err := a.analyzeStmt(stmt)
		if err != nil {
			continue
		}
		if node != nil {
			instructions = append(instructions, node)
		}
	}
	locals := append([]*ir.Variable(nil), a.scopeVariables[start:]...)
	a.scopeVariables = a.scopeVariables[:start]
	a.endScope()
	a.popContext()
	a.currentFunction = previousFunction
	function.Body = &ir.Block{Instructions: instructions, ScopeVariables: locals}
	return okS(function)
}

func (a *Analyzer) VisitMethod(s *ast.Method) any {
	name := s.Name.Lexeme()
	if !s.IsConstructor && a.isDeclared(name) {
		return failS(a.errorAt(diagnostic.CodeMethodAlreadyDefined, "method '"+name+"' is already declared", s.Name))
	}
	if !s.IsConstructor {
		a.declare(name)
		a.define(name)
	}
	parameters := make([]*ir.Variable, 0, len(s.Params))
	for _, p := range s.Params {
		parameters = append(parameters, &ir.Variable{
			Name:     p.Name.Lexeme(),
			Type:     p.Type,
			Metadata: ir.VariableMetadata{IsMutable: p.IsMutable, IsParameter: true, IsDeclaration: true},
		})
	}
	method := &ir.Function{
		Name:       s.Name.Lexeme(),
		Parameters: parameters,
		ReturnType: s.ReturnType,
		Metadata:   ir.FunctionMetadata{IsStatic: s.IsStatic, IsPublic: s.IsPublic},
	}
	previousFunction := a.currentFunction
	a.currentFunction = method
	a.pushContext(ContextMethod)
	a.beginScope()
	start := len(a.scopeVariables)
	if a.currentClass != nil {
		thisVariable := &ir.Variable{
			Name:     "this",
			Type:     datatype.NewClass(a.currentClass.Name),
			Metadata: ir.VariableMetadata{IsDeclaration: true},
		}
		a.declare(thisVariable.Name)
		a.define(thisVariable.Name)
		a.scopeVariables = append(a.scopeVariables, thisVariable)
	}
	for _, param := range parameters {
		a.declare(param.Name)
		a.define(param.Name)
		a.scopeVariables = append(a.scopeVariables, param)
	}
	var instructions []ir.Node
	if s.Body != nil {
		for _, stmt := range s.Body.Statements {
			node, err := a.analyzeStmt(stmt)
			if err != nil {
				continue
			}
			if node != nil {
				instructions = append(instructions, node)
			}
		}
	}
	locals := append([]*ir.Variable(nil), a.scopeVariables[start:]...)
	a.scopeVariables = a.scopeVariables[:start]
	a.endScope()
	a.popContext()
	a.currentFunction = previousFunction
	method.Body = &ir.Block{Instructions: instructions, ScopeVariables: locals}
	return okS(method)
}

func (a *Analyzer) VisitProperty(s *ast.Property) any {
	name := s.Name.Lexeme()
	if a.isDeclared(name) {
		return failS(a.errorAt(diagnostic.CodePropertyAlreadyDefined, "property '"+name+"' is already declared", s.Name))
	}
	a.declare(name)
	a.define(name)
	declaredType := s.Type
	var value ir.Node
	if s.Initializer != nil {
		v, err := a.analyzeExpr(s.Initializer)
		if err != nil {
			return failS(err)
		}
		value = v
		initType := dataTypeOf(v)
		if declaredType.IsPending() {
			declaredType = initType
		} else if !declaredType.Equal(initType) {
			return failS(a.errorAt(diagnostic.CodeTypeMismatch, "cannot assign "+initType.String()+" to property of type "+declaredType.String(), s.Name))
		}
	}
	return okS(&ir.Variable{
		Name:  s.Name.Lexeme(),
		Type:  declaredType,
		Value: value,
		Metadata: ir.VariableMetadata{
			IsMutable:     !s.IsReadonly,
			IsStatic:      s.IsStatic,
			IsPublic:      s.IsPublic,
			IsDeclaration: true,
		},
	})
}

func (a *Analyzer) VisitReturn(s *ast.Return) any {
	if !a.inContext(ContextFunction, ContextMethod) {
		return failS(a.errorAt(diagnostic.CodeReturnOutsideFunction, "return outside function", s.Keyword))
	}
	var value ir.Node
	if s.Value != nil {
		v, err := a.analyzeExpr(s.Value)
		if err != nil {
			return failS(err)
		}
		value = v
	}
	return okS(&ir.Return{Value: value})
}

func (a *Analyzer) VisitClass(s *ast.Class) any {
	name := s.Name.Lexeme()
	if a.isDeclared(name) {
		return failS(a.errorAt(diagnostic.CodeClassAlreadyDefined, "class '"+name+"' is already declared", s.Name))
	}
	class := &ir.Class{Name: name}
	if s.Superclass != nil {
		class.Superclass = a.findClass(s.Superclass.Lexeme())
	}
	a.declare(name)
	a.define(name)
	previousClass := a.currentClass
	a.currentClass = class
	a.pushContext(ContextClass)
	// A class body is its own scope, inherited from the copy beginScope
	// takes of the enclosing one: since that copy already carries name ->
	// true, a constructor (whose name equals the class name) finds itself
	// "already declared" and VisitMethod skips the check for it, while two
	// properties or methods sharing a name within this class still collide.
	a.beginScope()
	for _, prop := range s.Properties {
		node, err := a.analyzeStmt(prop)
		if err != nil {
			continue
		}
		if v, ok := node.(*ir.Variable); ok {
			class.Properties = append(class.Properties, v)
		}
	}
	for _, method := range s.Methods {
		node, err := a.analyzeStmt(method)
		if err != nil {
			continue
		}
		if f, ok := node.(*ir.Function); ok {
			class.Methods = append(class.Methods, f)
		}
	}
	a.endScope()
	a.popContext()
	a.currentClass = previousClass
	return okS(class)
}

// VisitImport binds each imported symbol into the importing file's own
// forest entry under its local name (the alias when one is given, otherwise
// the symbol's original name), so findFunction/findClass resolve it exactly
// like a declaration native to this file. The imported module's own nodes
// already live under its own path (resolveImport shares the forest with the
// recursive analyzer), so only the bound symbols themselves are copied here
// — copied, not moved, since the same module may be imported elsewhere
// under a different alias.
func (a *Analyzer) VisitImport(s *ast.Import) any {
	nodes, err := a.resolveImport(s)
	if err != nil {
		return failS(err)
	}
	names := make([]ir.ImportedName, 0, len(s.Symbols))
	for _, sym := range s.Symbols {
		symbolName := sym.Name.Lexeme()
		alias := ""
		if sym.Alias != nil {
			alias = sym.Alias.Lexeme()
		}
		localName := symbolName
		if alias != "" {
			localName = alias
		}
		switch original := findNodeNamed(nodes, symbolName).(type) {
		case *ir.Function:
			if !original.Metadata.IsExported && !s.IsStd {
				return failS(a.errorAt(diagnostic.CodeImportedFunctionIsNotExported, "'"+symbolName+"' is not exported from '"+s.Path.Lexeme()+"'", sym.Name))
			}
			bound := *original
			bound.Name = localName
			bound.Metadata.IsImported = true
			a.forest.Add(a.currentFile, &bound)
		case *ir.Class:
			bound := *original
			bound.Name = localName
			a.forest.Add(a.currentFile, &bound)
		}
		names = append(names, ir.ImportedName{Name: symbolName, Alias: alias})
	}
	return okS(&ir.Import{Names: names, Path: s.Path.Lexeme()})
}

func findNodeNamed(nodes []ir.Node, name string) ir.Node {
	for _, n := range nodes {
		switch v := n.(type) {
		case *ir.Function:
			if v.Name == name {
				return v
			}
		case *ir.Class:
			if v.Name == name {
				return v
			}
		}
	}
	return nil
}

func (a *Analyzer) VisitBreak(s *ast.Break) any {
	if !a.inContext(ContextLoop, ContextSwitch) {
		return failS(a.errorAt(diagnostic.CodeBreakOutsideLoop, "break outside loop", s.Keyword))
	}
	return okS(&ir.Break{})
}

func (a *Analyzer) VisitContinue(s *ast.Continue) any {
	if !a.inContext(ContextLoop) {
		return failS(a.errorAt(diagnostic.CodeContinueOutsideLoop, "continue outside loop", s.Keyword))
	}
	return okS(&ir.Continue{})
}
