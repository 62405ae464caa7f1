package parser

import (
	"strings"

	"github.com/viant/ignis/ast"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/token"
)

// declaration := varDecl | classDecl | fnDecl | returnStmt | whileStmt
//              | forInStmt | importStmt | exportStmt | decoratorStmt
//              | statement
func (p *Parser) declaration() (ast.Statement, error) {
	switch {
	case p.match(token.Let, token.Const):
		return p.variableDeclaration()
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Function):
		return p.functionDeclaration(false, "")
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forInStatement()
	case p.match(token.Import):
		return p.importStatement()
	case p.match(token.Export):
		return p.exportStatement()
	case p.match(token.At):
		return p.decoratorStatement()
	}
	return p.statement()
}

// statement := block | ifStmt | expressionStmt | break | continue
func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(token.LeftBrace):
		return p.block()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.Break):
		keyword := p.previous()
		if _, err := p.consume(token.Semicolon, "after 'break'"); err != nil {
			return nil, err
		}
		return &ast.Break{Keyword: keyword}, nil
	case p.match(token.Continue):
		keyword := p.previous()
		if _, err := p.consume(token.Semicolon, "after 'continue'"); err != nil {
			return nil, err
		}
		return &ast.Continue{Keyword: keyword}, nil
	}
	return p.expressionStatement()
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "after expression statement"); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expr: expr}, nil
}

func (p *Parser) block() (*ast.Block, error) {
	leftBrace := p.previous()
	var statements []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(token.RightBrace, "to close block"); err != nil {
		return nil, err
	}
	return &ast.Block{LeftBrace: leftBrace, Statements: statements}, nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LeftParen, "after 'if'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "after if condition"); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Keyword: keyword, Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LeftParen, "after 'while'"); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Keyword: keyword, Condition: condition, Body: body}, nil
}

func (p *Parser) forInStatement() (ast.Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LeftParen, "after 'for'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Let, "introducing the loop variable"); err != nil {
		return nil, err
	}
	name, err := p.consume(token.Identifier, "as the loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.In, "after loop variable"); err != nil {
		return nil, err
	}
	iterable, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "after for-in iterable"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.ForIn{Keyword: keyword, Variable: name, Iterable: iterable, Body: body}, nil
}

func (p *Parser) returnStatement() (ast.Statement, error) {
	keyword := p.previous()
	if p.match(token.Semicolon) {
		return &ast.Return{Keyword: keyword}, nil
	}
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "after return value"); err != nil {
		return nil, err
	}
	return &ast.Return{Keyword: keyword, Value: value}, nil
}

// variableDeclaration := 'let' [mut] IDENT : TYPE ( '[' ']' )? ( '=' expr )? ';'
func (p *Parser) variableDeclaration() (ast.Statement, error) {
	isConst := p.previous().Kind == token.Const
	mutable := false
	if p.match(token.Mut) {
		mutable = true
	}
	name, err := p.consume(token.Identifier, "as variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon, "after variable name"); err != nil {
		return nil, err
	}
	typeAnnotation, err := p.typeFromAnnotation()
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(token.Equal) {
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		if arr, ok := value.(*ast.Array); ok {
			value = &ast.Array{Bracket: arr.Bracket, Elements: arr.Elements, ElementType: typeAnnotation}
		}
		initializer = value
	}
	if _, err := p.consume(token.Semicolon, "after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.VariableStmt{
		Name:        name,
		Type:        typeAnnotation,
		Initializer: initializer,
		Metadata:    ast.VariableMetadata{IsMutable: mutable && !isConst, IsDeclaration: true},
	}, nil
}

// functionDeclaration := [@extern(STRING)] [export] 'function' IDENT
//   '(' params ')' ':' RETTYPE ( block | ';' )
func (p *Parser) functionDeclaration(isExported bool, externName string) (ast.Statement, error) {
	keyword := p.previous()
	name, err := p.consume(token.Identifier, "as function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "after function name"); err != nil {
		return nil, err
	}
	params, err := p.parameterList(name)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "after parameter list"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon, "before return type"); err != nil {
		return nil, err
	}
	returnType, err := p.typeFromAnnotation()
	if err != nil {
		return nil, err
	}
	isExtern := externName != ""
	var body *ast.Block
	if p.match(token.Semicolon) {
		if !isExtern {
			return nil, p.errorAt(p.previous(), diagnostic.CodeExpectedToken, "function body required unless declared @extern")
		}
	} else {
		if _, err := p.consume(token.LeftBrace, "to open function body"); err != nil {
			return nil, err
		}
		body, err = p.block()
		if err != nil {
			return nil, err
		}
	}
	return &ast.Function{
		Keyword: keyword, Name: name, Params: params, ReturnType: returnType,
		Body: body, IsExported: isExported, IsExtern: isExtern, ExternName: externName,
	}, nil
}

func (p *Parser) parameterList(owner token.Token) ([]ast.Parameter, error) {
	var params []ast.Parameter
	if p.check(token.RightParen) {
		return params, nil
	}
	for {
		if len(params) >= maxArguments {
			return nil, p.errorAt(owner, diagnostic.CodeTooManyArguments, "function declares more than 255 parameters")
		}
		mutable := p.match(token.Mut)
		name, err := p.consume(token.Identifier, "as parameter name")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Colon, "after parameter name"); err != nil {
			return nil, err
		}
		paramType, err := p.typeFromAnnotation()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Parameter{Name: name, Type: paramType, IsMutable: mutable})
		if !p.match(token.Comma) {
			break
		}
	}
	return params, nil
}

// classDeclaration := 'class' IDENT ( 'extends' IDENT )? '{' member* '}'
// member := property | method, following the analyzer's "properties first,
// then methods" processing order from SPEC_FULL.md §4.3.
func (p *Parser) classDeclaration() (ast.Statement, error) {
	keyword := p.previous()
	name, err := p.consume(token.Identifier, "as class name")
	if err != nil {
		return nil, err
	}
	var superclass *token.Token
	if p.match(token.Extends) {
		super, err := p.consume(token.Identifier, "after 'extends'")
		if err != nil {
			return nil, err
		}
		superclass = &super
	}
	if _, err := p.consume(token.LeftBrace, "to open class body"); err != nil {
		return nil, err
	}
	var properties []*ast.Property
	var methods []*ast.Method
	for !p.check(token.RightBrace) && !p.atEnd() {
		isStatic := p.match(token.Static)
		isPublic := !p.match(token.Private)
		isReadonly := p.match(token.Readonly)
		p.match(token.Public)

		if p.match(token.Function) {
			method, err := p.methodDeclaration(name, isStatic, isPublic)
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)
			continue
		}
		property, err := p.propertyDeclaration(isStatic, isReadonly, isPublic)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	if _, err := p.consume(token.RightBrace, "to close class body"); err != nil {
		return nil, err
	}
	return &ast.Class{Keyword: keyword, Name: name, Superclass: superclass, Properties: properties, Methods: methods}, nil
}

// methodDeclaration parses a class member function. IsConstructor is
// decided here (method name equals the enclosing class's name) since it
// is purely syntactic; SPEC_FULL.md §4.3 resolves the Open Question this
// way.
func (p *Parser) methodDeclaration(className token.Token, isStatic, isPublic bool) (*ast.Method, error) {
	keyword := p.previous()
	name, err := p.consume(token.Identifier, "as method name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "after method name"); err != nil {
		return nil, err
	}
	params, err := p.parameterList(name)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "after parameter list"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon, "before return type"); err != nil {
		return nil, err
	}
	returnType, err := p.typeFromAnnotation()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "to open method body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Method{
		Keyword: keyword, Name: name, Params: params, ReturnType: returnType, Body: body,
		IsStatic: isStatic, IsPublic: isPublic, IsConstructor: name.Lexeme() == className.Lexeme(),
	}, nil
}

func (p *Parser) propertyDeclaration(isStatic, isReadonly, isPublic bool) (*ast.Property, error) {
	name, err := p.consume(token.Identifier, "as property name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon, "after property name"); err != nil {
		return nil, err
	}
	propertyType, err := p.typeFromAnnotation()
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "after property declaration"); err != nil {
		return nil, err
	}
	return &ast.Property{Name: name, Type: propertyType, Initializer: initializer, IsStatic: isStatic, IsReadonly: isReadonly, IsPublic: isPublic}, nil
}

// importStatement := 'import' '{' IDENT ('as' IDENT)? (',' IDENT ('as' IDENT)?)* '}' 'from' STRING ';'
func (p *Parser) importStatement() (ast.Statement, error) {
	keyword := p.previous()
	if _, err := p.consume(token.LeftBrace, "after 'import'"); err != nil {
		return nil, err
	}
	var symbols []ast.ImportedSymbol
	for !p.check(token.RightBrace) && !p.atEnd() {
		if p.match(token.Comma) {
			continue
		}
		symbolName, err := p.consume(token.Identifier, "as imported symbol name")
		if err != nil {
			return nil, err
		}
		symbol := ast.ImportedSymbol{Name: symbolName}
		if p.match(token.As) {
			alias, err := p.consume(token.Identifier, "after 'as'")
			if err != nil {
				return nil, err
			}
			symbol.Alias = &alias
		}
		symbols = append(symbols, symbol)
	}
	if _, err := p.consume(token.RightBrace, "to close import list"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.From, "after import list"); err != nil {
		return nil, err
	}
	path, err := p.consume(token.StringLiteral, "as import path")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "after import statement"); err != nil {
		return nil, err
	}
	isStd := strings.Contains(path.Lexeme(), "std")
	return &ast.Import{Keyword: keyword, Symbols: symbols, Path: path, IsStd: isStd}, nil
}

// exportStatement := 'export' 'function' ... (only function exports today,
// matching the original's export_statement).
func (p *Parser) exportStatement() (ast.Statement, error) {
	if !p.match(token.Function) {
		return nil, p.errorAt(p.peek(), diagnostic.CodeExpectedToken, "expected 'function' after 'export'")
	}
	return p.functionDeclaration(true, "")
}

// decoratorStatement := '@' ( 'extern' '(' STRING ')' | 'function' ) ...
func (p *Parser) decoratorStatement() (ast.Statement, error) {
	switch {
	case p.match(token.Extern):
		if _, err := p.consume(token.LeftParen, "after '@extern'"); err != nil {
			return nil, err
		}
		path, err := p.consume(token.StringLiteral, "as extern binding path")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "after extern binding path"); err != nil {
			return nil, err
		}
		isExported := p.match(token.Export)
		if _, err := p.consume(token.Function, "after '@extern(...)'"); err != nil {
			return nil, err
		}
		return p.functionDeclaration(isExported, path.Lexeme())
	case p.match(token.Function):
		return p.functionDeclaration(false, "")
	default:
		return nil, p.errorAt(p.peek(), diagnostic.CodeExpectedToken, "unsupported decorator")
	}
}
