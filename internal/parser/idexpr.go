package parser

import "github.com/orizon-lang/dbgexpr/internal/lexer"

// parseIdExpression parses an id-expression (§4.4) and returns its
// rendered name, e.g. "::ns::Outer<T>::inner". Reuses the
// nested-name-specifier routine from the type parser. Never bails out:
// callers decide whether a failure here is a hard error (primary
// expression position) or a soft one (a tentative template-argument
// attempt).
func (p *Parser) parseIdExpression() (string, bool) {
	globalScope := false
	if p.current().Kind == lexer.ColonColon {
		p.advance()
		globalScope = true
	}
	nested := p.parseNestedNameSpecifier()

	name, ok := p.parseUnqualifiedId()
	if !ok {
		return "", false
	}

	prefix := ""
	if globalScope {
		prefix = "::"
	}
	return prefix + nested + name, true
}

// parseUnqualifiedId parses `unqualified-id := identifier` (§4.4).
func (p *Parser) parseUnqualifiedId() (string, bool) {
	if p.current().Kind != lexer.Identifier {
		return "", false
	}
	name := p.current().Spelling
	p.advance()
	return name, true
}
