// Package parser implements the recursive-descent parser described in
// SPEC_FULL.md §4.2: one-token lookahead over the lexer's token stream,
// precedence climbing through a chain of grammar-level methods, and
// diagnostic collection instead of panicking on the first error.
package parser

import (
	"github.com/viant/ignis/ast"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/token"
)

// Parser consumes a token slice produced by lexer.Scan and produces an
// ast.Statement slice plus any diagnostics. It never panics; a malformed
// construct is recorded as a diagnostic and parsing resumes at the next
// statement boundary via synchronize.
type Parser struct {
	tokens      []token.Token
	current     int
	diagnostics diagnostic.Report
	file        string
}

// New constructs a Parser over tokens. file tags diagnostics for reporting.
func New(tokens []token.Token, file string) *Parser {
	return &Parser{tokens: tokens, file: file}
}

// Parse runs the Go analogue of the original's top-level parse(): it
// returns the full statement list iff no diagnostics were recorded,
// otherwise nil and the collected Report.
func Parse(tokens []token.Token, file string) ([]ast.Statement, diagnostic.Report) {
	p := New(tokens, file)
	statements := p.parseProgram()
	if p.diagnostics.HasErrors() {
		return nil, p.diagnostics
	}
	return statements, p.diagnostics
}

func (p *Parser) parseProgram() []ast.Statement {
	var statements []ast.Statement
	for !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// --- token cursor primitives ---

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) atEnd() bool { return p.peek().Kind == token.Eof }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

func (p *Parser) errorAt(tok token.Token, code, message string) error {
	p.diagnostics.Add(diagnostic.New(diagnostic.Error, code, message, p.file, tok.Span.Line, tok.Span.Column, tok.Lexeme()))
	return &parseError{msg: message}
}

// consume requires the next token to be kind, advancing past it, or
// records ExpectedToken and returns an error that the caller propagates
// up to declaration(), where synchronize() takes over.
func (p *Parser) consume(kind token.Kind, context string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	tok := p.peek()
	return token.Token{}, p.errorAt(tok, diagnostic.CodeExpectedToken, "expected "+kind.String()+" "+context+", found "+tok.Kind.String())
}

// synchronize discards tokens until the start of the next statement,
// keeping a single parse error local (SPEC_FULL.md §4.2).
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Function, token.Let, token.Const, token.For, token.If, token.Return:
			return
		}
		p.advance()
	}
}

// inferBinaryType is the parser's advisory type table (SPEC_FULL.md §4.2
// "Inline type inference"); the analyzer is the authority and may revise
// it entirely.
func inferBinaryType(left, right datatype.DataType, op token.Kind) datatype.DataType {
	switch {
	case left.Kind == datatype.Scalar && right.Kind == datatype.Scalar && left.Primitive == datatype.IntP && right.Primitive == datatype.IntP:
		switch op {
		case token.Plus, token.Minus, token.Star, token.Slash, token.Percent:
			return datatype.Int()
		}
	case left.Kind == datatype.Scalar && right.Kind == datatype.Scalar && left.Primitive == datatype.FloatP && right.Primitive == datatype.FloatP:
		switch op {
		case token.Plus, token.Minus, token.Star, token.Slash:
			return datatype.Float()
		}
	case left.Kind == datatype.Scalar && right.Kind == datatype.Scalar && left.Primitive == datatype.StringP && right.Primitive == datatype.StringP:
		if op == token.Plus {
			return datatype.String()
		}
	}
	switch op {
	case token.EqualEqual, token.BangEqual, token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		return datatype.Boolean()
	}
	return datatype.Pending()
}

func inferUnaryType(right datatype.DataType, op token.Kind) datatype.DataType {
	if op == token.Bang {
		return datatype.Boolean()
	}
	if op == token.Minus && right.Kind == datatype.Scalar && (right.Primitive == datatype.IntP || right.Primitive == datatype.FloatP) {
		return right
	}
	return datatype.Pending()
}

// expressionType recovers the advisory DataType a parsed Expression already
// carries, the Go analogue of the original's get_expression_type.
func expressionType(e ast.Expression) datatype.DataType {
	switch n := e.(type) {
	case *ast.Binary:
		return n.ResultType
	case *ast.Unary:
		return n.ResultType
	case *ast.Literal:
		return n.Type
	case *ast.Grouping:
		return expressionType(n.Expression)
	case *ast.Variable:
		return n.Type
	case *ast.Assign:
		return n.Type
	case *ast.Logical:
		return datatype.Boolean()
	case *ast.Ternary:
		return n.Type
	case *ast.Call:
		return n.ReturnType
	case *ast.Array:
		return n.ElementType
	case *ast.Get:
		return datatype.Pending()
	case *ast.Index:
		return n.Type
	case *ast.New:
		return n.Type
	default:
		return datatype.Pending()
	}
}

// dataTypeFromToken maps a primitive type-annotation token to a DataType,
// mirroring the original's DataType::from_token_type for the scalar cases.
func dataTypeFromToken(k token.Kind) (datatype.DataType, bool) {
	switch k {
	case token.Int:
		return datatype.Int(), true
	case token.Float:
		return datatype.Float(), true
	case token.StringType:
		return datatype.String(), true
	case token.Boolean:
		return datatype.Boolean(), true
	case token.Char:
		return datatype.Char(), true
	case token.Void:
		return datatype.Void(), true
	case token.Identifier:
		return datatype.DataType{}, false
	default:
		return datatype.DataType{}, false
	}
}
