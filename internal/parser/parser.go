// Package parser implements the Type Parser (spec.md §4.3–4.4) and
// Expression Parser (§4.2) as one recursive-descent driver sharing a
// single Parser per spec.md §3's "Parser state": one instance parses
// one expression string to completion, with a token cursor, a first-
// error-wins diagnostic slot, and the embedder's Context.
//
// Function names mirror original_source's Parse*Expression family
// one-to-one (parseLogicalOrExpression, parseCastExpression, ...).
package parser

import (
	"github.com/orizon-lang/dbgexpr/internal/ast"
	"github.com/orizon-lang/dbgexpr/internal/diag"
	"github.com/orizon-lang/dbgexpr/internal/evalctx"
	"github.com/orizon-lang/dbgexpr/internal/lexer"
	"github.com/orizon-lang/dbgexpr/internal/position"
)

// Parser parses one expression string to completion. It is not safe for
// concurrent use by multiple goroutines and is not reusable after Run:
// construct a new Parser per parse (§5).
type Parser struct {
	cursor *lexer.Cursor
	src    *position.SourceFile
	ctx    evalctx.Context

	firstError *diag.Error
}

// New tokenizes src and constructs a Parser over the resulting tokens for
// the given Context. filename is attached to diagnostics' SourceLoc.
func New(filename, src string, ctx evalctx.Context) *Parser {
	toks := lexer.Tokenize(filename, src)
	return &Parser{
		cursor: lexer.NewCursor(toks),
		src:    position.NewSourceFile(filename, src),
		ctx:    ctx,
	}
}

// Run parses the full expression and returns its AST plus any recorded
// error. The returned AST is an *ast.ErrorNode iff Error is non-nil
// (§8 property 1). Run is one-shot; construct a new Parser to parse
// again.
func (p *Parser) Run() (ast.Node, *diag.Error) {
	node := p.parseExpression()
	if p.firstError == nil && !p.cursor.AtEOF() {
		p.bailOut(diag.InvalidExpressionSyntax, "unexpected trailing tokens", p.current())
	}
	if p.firstError != nil {
		return ast.NewErrorNode(p.current().Span), p.firstError
	}
	return node, nil
}

// current returns the token under the cursor without consuming it.
func (p *Parser) current() lexer.Token {
	return p.cursor.Current()
}

// peek looks k tokens ahead without consuming (peek(1) is the token
// after current).
func (p *Parser) peek(k int) lexer.Token {
	return p.cursor.Peek(k)
}

// advance consumes and returns the current token. Advancing past eof is
// a no-op that keeps returning the eof token (§4.1), which is what keeps
// the parser quiescent after BailOut forces the cursor to eof.
func (p *Parser) advance() lexer.Token {
	return p.cursor.Advance()
}

// bailOut records the first error and forces the cursor to eof so that
// all pending recursive levels fall through cheaply without producing
// further diagnostics (§7). Only committed code paths may call this —
// never from inside a tentative scope whose outcome is undecided.
func (p *Parser) bailOut(kind diag.Kind, message string, at lexer.Token) {
	if p.firstError != nil {
		return
	}
	loc := at.Loc()
	p.firstError = &diag.Error{Kind: kind, Message: message, Loc: loc, SourceLine: p.sourceLine(loc)}
	p.cursor.SeekToEOF()
}

// hasError reports whether an error has already been recorded.
func (p *Parser) hasError() bool {
	return p.firstError != nil
}

// expect consumes the current token if it matches kind, else bails out
// with kUnknown (an unexpected token in an expect check, per §7's
// taxonomy) and returns the zero Token.
func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, bool) {
	tok := p.current()
	if tok.Kind != kind {
		p.bailOut(diag.Unknown, "expected "+what+", got '"+tokenText(tok)+"'", tok)
		return lexer.Token{}, false
	}
	return p.advance(), true
}

// expectOneOf consumes the current token if its kind is among kinds,
// else bails out.
func (p *Parser) expectOneOf(what string, kinds ...lexer.Kind) (lexer.Token, bool) {
	tok := p.current()
	for _, k := range kinds {
		if tok.Kind == k {
			return p.advance(), true
		}
	}
	p.bailOut(diag.Unknown, "expected "+what+", got '"+tokenText(tok)+"'", tok)
	return lexer.Token{}, false
}

func tokenText(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "<eof>"
	}
	return tok.Spelling
}

// tentative runs fn inside a scoped snapshot. If fn returns true it
// commits; if false, it rolls back. fn must never call bailOut on a
// path that can still return false (§4.1, §7 "tentative-scope
// discipline") — failure inside a tentative attempt is signaled purely
// by the returned bool, never by recording an error.
func (p *Parser) tentative(fn func() bool) bool {
	p.cursor.Snapshot()
	ok := fn()
	if ok {
		p.cursor.Commit()
	} else {
		p.cursor.Rollback()
	}
	return ok
}

func (p *Parser) sourceLine(loc position.Position) string {
	return p.src.GetLine(loc.Line)
}
