// The recursive-descent expression grammar (§4.2): one function per
// precedence level, lowest to highest, each parsing its left-hand side
// at the next level and folding while the current token matches one of
// the level's operators.
package parser

import (
	"github.com/orizon-lang/dbgexpr/internal/ast"
	"github.com/orizon-lang/dbgexpr/internal/diag"
	"github.com/orizon-lang/dbgexpr/internal/lexer"
)

func (p *Parser) parseExpression() ast.Node {
	return p.parseAssignmentExpression()
}

// parseAssignmentExpression is a passthrough: this dialect routes
// assignment straight to conditional-expression with no assignment
// productions (§1 Non-goals, §4.2 level 2).
func (p *Parser) parseAssignmentExpression() ast.Node {
	return p.parseConditionalExpression()
}

// parseConditionalExpression implements the right-associative `? :`
// (§4.2 level 3): the then-arm is a full expression, the else-arm is
// only an assignment-expression.
func (p *Parser) parseConditionalExpression() ast.Node {
	cond := p.parseLogicalOrExpression()
	if p.current().Kind != lexer.Question {
		return cond
	}
	p.advance()
	then := p.parseExpression()
	if _, ok := p.expect(lexer.Colon, "':'"); !ok {
		return ast.NewErrorNode(cond.Span())
	}
	els := p.parseAssignmentExpression()
	return ast.NewTernaryOpNode(cond, then, els, cond.Span().Merge(els.Span()))
}

func (p *Parser) parseLogicalOrExpression() ast.Node {
	return p.parseBinaryLevel(p.parseLogicalAndExpression, lexer.PipePipe)
}

func (p *Parser) parseLogicalAndExpression() ast.Node {
	return p.parseBinaryLevel(p.parseInclusiveOrExpression, lexer.AmpAmp)
}

func (p *Parser) parseInclusiveOrExpression() ast.Node {
	return p.parseBinaryLevel(p.parseExclusiveOrExpression, lexer.Pipe)
}

func (p *Parser) parseExclusiveOrExpression() ast.Node {
	return p.parseBinaryLevel(p.parseAndExpression, lexer.Caret)
}

func (p *Parser) parseAndExpression() ast.Node {
	return p.parseBinaryLevel(p.parseEqualityExpression, lexer.Amp)
}

func (p *Parser) parseEqualityExpression() ast.Node {
	return p.parseBinaryLevel(p.parseRelationalExpression, lexer.EqualEqual, lexer.ExclaimEqual)
}

func (p *Parser) parseRelationalExpression() ast.Node {
	return p.parseBinaryLevel(p.parseShiftExpression, lexer.Less, lexer.Greater, lexer.LessEqual, lexer.GreaterEqual)
}

func (p *Parser) parseShiftExpression() ast.Node {
	return p.parseBinaryLevel(p.parseAdditiveExpression, lexer.LessLess, lexer.GreaterGreater)
}

func (p *Parser) parseAdditiveExpression() ast.Node {
	return p.parseBinaryLevel(p.parseMultiplicativeExpression, lexer.Plus, lexer.Minus)
}

func (p *Parser) parseMultiplicativeExpression() ast.Node {
	return p.parseBinaryLevel(p.parseCastExpression, lexer.Star, lexer.Slash, lexer.Percent)
}

// parseBinaryLevel is the shared left-associative fold used by every
// binary-operator level (§4.2: "within a level, binary operators are
// left-associative").
func (p *Parser) parseBinaryLevel(next func() ast.Node, ops ...lexer.Kind) ast.Node {
	left := next()
	for matchesAny(p.current().Kind, ops) {
		opTok := p.advance()
		right := next()
		left = ast.NewBinaryOpNode(opTok.Kind, left, right, left.Span().Merge(right.Span()))
	}
	return left
}

func matchesAny(k lexer.Kind, ops []lexer.Kind) bool {
	for _, op := range ops {
		if k == op {
			return true
		}
	}
	return false
}

// parseCastExpression disambiguates a C-style cast from a parenthesized
// expression (§4.2 level 14, "Cast vs parenthesized"). The entire
// type-id attempt, including its declarators' tokens, lives in one
// tentative scope; only once the base name resolves to a type do we
// commit and apply the declarators semantically (which may now bail
// out, since that path is committed).
func (p *Parser) parseCastExpression() ast.Node {
	if p.current().Kind != lexer.LParen {
		return p.parseUnaryExpression()
	}

	var decl TypeDeclaration
	lparenTok := p.current()

	matched := p.tentative(func() bool {
		p.advance() // consume '('
		d, ok := p.parseTypeId()
		if !ok || !d.Valid() {
			return false
		}
		if _, resolved := p.ctx.ResolveTypeByName(d.GetBaseName()); !resolved {
			return false
		}
		decl = d
		return true
	})
	if !matched {
		return p.parseUnaryExpression()
	}

	handle, ok := p.resolveType(decl, lparenTok)
	if !ok {
		return ast.NewErrorNode(lparenTok.Span)
	}
	if _, ok := p.expect(lexer.RParen, "')'"); !ok {
		return ast.NewErrorNode(lparenTok.Span)
	}
	operand := p.parseCastExpression()
	return ast.NewCStyleCastNode(handle, operand, lparenTok.Span.Merge(operand.Span()))
}

var unaryOpKinds = []lexer.Kind{
	lexer.PlusPlus, lexer.MinusMinus,
	lexer.Amp, lexer.Star, lexer.Plus, lexer.Minus, lexer.Exclaim, lexer.Tilde,
}

// parseUnaryExpression (§4.2 level 15): prefix operators all bind to a
// recursive cast-expression. Unary `*`/`&` share token kinds with their
// binary counterparts; precedence ordering (this level sits strictly
// above the binary levels in the call chain) resolves the ambiguity.
func (p *Parser) parseUnaryExpression() ast.Node {
	if matchesAny(p.current().Kind, unaryOpKinds) {
		opTok := p.advance()
		operand := p.parseCastExpression()
		return ast.NewUnaryOpNode(opTok.Kind, operand, opTok.Span.Merge(operand.Span()))
	}
	return p.parsePostfixExpression()
}

// parsePostfixExpression (§4.2 level 16): `.`/`->` member access, `[ ]`
// indexing. Postfix `++`/`--` tokenize but are rejected with
// kNotImplemented, per §1 Non-goals and §9's open question.
func (p *Parser) parsePostfixExpression() ast.Node {
	left := p.parsePrimaryExpression()
	for {
		switch p.current().Kind {
		case lexer.Dot, lexer.Arrow:
			opTok := p.advance()
			kind := ast.OfObject
			if opTok.Kind == lexer.Arrow {
				kind = ast.OfPointer
			}
			memberName, ok := p.parseIdExpression()
			if !ok {
				p.bailOut(diag.InvalidExpressionSyntax, "expected member name after '"+opTok.Spelling+"'", p.current())
				return ast.NewErrorNode(opTok.Span)
			}
			left = ast.NewMemberOfNode(kind, left, memberName, left.Span().Merge(opTok.Span))
		case lexer.LSquare:
			p.advance()
			index := p.parseExpression()
			if _, ok := p.expect(lexer.RSquare, "']'"); !ok {
				return ast.NewErrorNode(left.Span())
			}
			left = ast.NewBinaryOpNode(lexer.LSquare, left, index, left.Span().Merge(index.Span()))
		case lexer.PlusPlus, lexer.MinusMinus:
			tok := p.current()
			p.bailOut(diag.NotImplemented, "postfix '"+tok.Spelling+"' is not implemented", tok)
			return ast.NewErrorNode(tok.Span)
		default:
			return left
		}
	}
}

// parsePrimaryExpression (§4.2 level 17).
func (p *Parser) parsePrimaryExpression() ast.Node {
	tok := p.current()
	switch tok.Kind {
	case lexer.NumericConstant:
		return p.parseNumericLiteral()

	case lexer.KwTrue:
		p.advance()
		return ast.NewLiteralNode(p.ctx.ValueFromBool(true), tok.Span)

	case lexer.KwFalse:
		p.advance()
		return ast.NewLiteralNode(p.ctx.ValueFromBool(false), tok.Span)

	case lexer.KwNullptr:
		p.advance()
		return ast.NewLiteralNode(p.ctx.ValueNullPointer(), tok.Span)

	case lexer.KwThis:
		p.advance()
		val, ok := p.ctx.LookupIdentifier("this")
		if !ok {
			p.bailOut(diag.UndeclaredIdentifier, "invalid use of 'this' outside of a member context", tok)
			return ast.NewErrorNode(tok.Span)
		}
		return ast.NewIdentifierNode("this", val, tok.Span)

	case lexer.ColonColon, lexer.Identifier:
		name, ok := p.parseIdExpression()
		if !ok {
			p.bailOut(diag.InvalidExpressionSyntax, "expected expression", tok)
			return ast.NewErrorNode(tok.Span)
		}
		val, found := p.ctx.LookupIdentifier(name)
		if !found {
			p.bailOut(diag.UndeclaredIdentifier, "use of undeclared identifier '"+name+"'", tok)
			return ast.NewErrorNode(tok.Span)
		}
		return ast.NewIdentifierNode(name, val, tok.Span)

	case lexer.LParen:
		p.advance()
		inner := p.parseExpression()
		if _, ok := p.expect(lexer.RParen, "')'"); !ok {
			return ast.NewErrorNode(tok.Span)
		}
		return inner

	default:
		p.bailOut(diag.InvalidExpressionSyntax, "expected expression", tok)
		return ast.NewErrorNode(tok.Span)
	}
}
