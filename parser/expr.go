package parser

import (
	"strconv"

	"github.com/viant/ignis/ast"
	"github.com/viant/ignis/datatype"
	"github.com/viant/ignis/diagnostic"
	"github.com/viant/ignis/token"
)

const maxArguments = 255

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

// assignment := ternary ( '=' assignment )?
func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Equal) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	switch target := expr.(type) {
	case *ast.Variable:
		return &ast.Assign{Equals: equals, Target: target, Value: value, Type: target.Type}, nil
	case *ast.Get:
		return &ast.Set{Object: target.Object, Name: target.Name, Value: value, Type: datatype.Pending()}, nil
	case *ast.Index:
		return &ast.IndexSet{Object: target.Object, Bracket: target.Bracket, At: target.At, Value: value, Type: target.Type}, nil
	default:
		return nil, p.errorAt(equals, diagnostic.CodeInvalidAssignmentTarget, "invalid assignment target")
	}
}

// ternary := logicOr ( '?' expression ':' expression )?
func (p *Parser) ternary() (ast.Expression, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Question) {
		return expr, nil
	}
	question := p.previous()
	thenBranch, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Colon, "after ternary then-branch"); err != nil {
		return nil, err
	}
	elseBranch, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.Ternary{Question: question, Condition: expr, Then: thenBranch, Else: elseBranch, Type: datatype.Pending()}, nil
}

// logicOr := logicAnd ( '||' logicAnd )*
func (p *Parser) logicOr() (ast.Expression, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(token.PipePipe) {
		operator := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// logicAnd := equality ( '&&' equality )*
func (p *Parser) logicAnd() (ast.Expression, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.AmpAmp) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// equality := comparison ( ('!='|'==') comparison )*
func (p *Parser) equality() (ast.Expression, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, ResultType: datatype.Boolean()}
	}
	return expr, nil
}

// comparison := term ( ('>'|'>='|'<'|'<=') term )*
func (p *Parser) comparison() (ast.Expression, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, ResultType: datatype.Boolean()}
	}
	return expr, nil
}

// term := factor ( ('+'|'-') factor )*
func (p *Parser) term() (ast.Expression, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Plus, token.Minus) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		resultType := inferBinaryType(expressionType(expr), expressionType(right), operator.Kind)
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, ResultType: resultType}
	}
	return expr, nil
}

// factor := unary ( ('*'|'/'|'%') unary )*
func (p *Parser) factor() (ast.Expression, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Star, token.Slash, token.Percent) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		resultType := inferBinaryType(expressionType(expr), expressionType(right), operator.Kind)
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right, ResultType: resultType}
	}
	return expr, nil
}

// unary := ('!'|'-') unary | call
func (p *Parser) unary() (ast.Expression, error) {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		resultType := inferUnaryType(expressionType(right), operator.Kind)
		return &ast.Unary{Operator: operator, Right: right, ResultType: resultType}, nil
	}
	return p.call()
}

// call := primary ( '(' args? ')' | '.' IDENT | '[' expr ']' )*
func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(token.LeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.Dot):
			name, err := p.consume(token.Identifier, "after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		case p.match(token.LeftBracket):
			bracket := p.previous()
			at, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RightBracket, "after index expression"); err != nil {
				return nil, err
			}
			expr = &ast.Index{Object: expr, Bracket: bracket, At: at, Type: datatype.Pending()}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expression) (ast.Expression, error) {
	var arguments []ast.Expression
	if !p.check(token.RightParen) {
		for {
			if len(arguments) >= maxArguments {
				tok := p.peek()
				return nil, p.errorAt(tok, diagnostic.CodeTooManyArguments, "call exceeds the maximum of 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, "after call arguments")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Paren: paren, Arguments: arguments, ReturnType: datatype.Pending()}, nil
}

// primary := literal | '(' expression ')' | '[' arrayLit ']' | IDENT
//          | 'new' IDENT '(' args? ')'
func (p *Parser) primary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.True, token.False, token.Null, token.IntLiteral, token.FloatLiteral, token.StringLiteral, token.CharLiteral:
		p.advance()
		return p.literalFromToken(tok)
	case token.LeftBracket:
		p.advance()
		bracket := tok
		var elements []ast.Expression
		if !p.check(token.RightBracket) {
			for {
				el, err := p.expression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, el)
				if !p.match(token.Comma) {
					break
				}
			}
		}
		if _, err := p.consume(token.RightBracket, "after array literal"); err != nil {
			return nil, err
		}
		return &ast.Array{Bracket: bracket, Elements: elements, ElementType: datatype.NewArray(datatype.Pending())}, nil
	case token.LeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "after grouped expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Paren: tok, Expression: inner}, nil
	case token.New:
		p.advance()
		className, err := p.consume(token.Identifier, "after 'new'")
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.LeftParen, "after class name in 'new' expression"); err != nil {
			return nil, err
		}
		var arguments []ast.Expression
		if !p.check(token.RightParen) {
			for {
				arg, err := p.expression()
				if err != nil {
					return nil, err
				}
				arguments = append(arguments, arg)
				if !p.match(token.Comma) {
					break
				}
			}
		}
		if _, err := p.consume(token.RightParen, "after 'new' arguments"); err != nil {
			return nil, err
		}
		return &ast.New{Keyword: tok, ClassName: className, Arguments: arguments, Type: datatype.NewClass(className.Lexeme())}, nil
	case token.Identifier, token.This:
		p.advance()
		return &ast.Variable{Name: tok, Type: datatype.NewVariable(tok.Lexeme())}, nil
	default:
		return nil, p.errorAt(tok, diagnostic.CodeExpectedExpression, "expected expression, found "+tok.Kind.String())
	}
}

func (p *Parser) literalFromToken(tok token.Token) (ast.Expression, error) {
	switch tok.Kind {
	case token.True:
		return &ast.Literal{Tok: tok, Value: true, Type: datatype.Boolean()}, nil
	case token.False:
		return &ast.Literal{Tok: tok, Value: false, Type: datatype.Boolean()}, nil
	case token.Null:
		return &ast.Literal{Tok: tok, Value: nil, Type: datatype.Null()}, nil
	case token.IntLiteral:
		v, err := strconv.ParseInt(tok.Lexeme(), 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, diagnostic.CodeExpectedExpression, "malformed integer literal '"+tok.Lexeme()+"'")
		}
		return &ast.Literal{Tok: tok, Value: v, Type: datatype.Int()}, nil
	case token.FloatLiteral:
		v, err := strconv.ParseFloat(tok.Lexeme(), 64)
		if err != nil {
			return nil, p.errorAt(tok, diagnostic.CodeExpectedExpression, "malformed float literal '"+tok.Lexeme()+"'")
		}
		return &ast.Literal{Tok: tok, Value: v, Type: datatype.Float()}, nil
	case token.StringLiteral:
		return &ast.Literal{Tok: tok, Value: tok.Lexeme(), Type: datatype.String()}, nil
	case token.CharLiteral:
		runes := []rune(tok.Lexeme())
		var r rune
		if len(runes) > 0 {
			r = runes[0]
		}
		return &ast.Literal{Tok: tok, Value: r, Type: datatype.Char()}, nil
	default:
		return nil, p.errorAt(tok, diagnostic.CodeExpectedExpression, "expected literal, found "+tok.Kind.String())
	}
}

// typeFromAnnotation parses a type annotation starting at the current
// token: a scalar keyword, an identifier (class/generic name), optionally
// followed by '[]' to wrap it as an Array(T) (SPEC_FULL.md §4.2 "Variable
// declarations").
func (p *Parser) typeFromAnnotation() (datatype.DataType, error) {
	tok := p.peek()
	var base datatype.DataType
	if dt, ok := dataTypeFromToken(tok.Kind); ok {
		base = dt
		p.advance()
	} else if tok.Kind == token.Identifier {
		base = datatype.NewClass(tok.Lexeme())
		p.advance()
	} else {
		return datatype.DataType{}, p.errorAt(tok, diagnostic.CodeExpectedToken, "expected type annotation, found "+tok.Kind.String())
	}
	if p.match(token.LeftBracket) {
		if _, err := p.consume(token.RightBracket, "after '[' in array type annotation"); err != nil {
			return datatype.DataType{}, err
		}
		base = datatype.NewArray(base)
	}
	return base, nil
}
