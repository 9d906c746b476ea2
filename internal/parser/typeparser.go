package parser

import (
	"strings"

	"github.com/orizon-lang/dbgexpr/internal/lexer"
)

var builtinTypeKeyword = map[lexer.Kind]string{
	lexer.KwChar:     "char",
	lexer.KwChar16T:  "char16_t",
	lexer.KwChar32T:  "char32_t",
	lexer.KwWcharT:   "wchar_t",
	lexer.KwBool:     "bool",
	lexer.KwShort:    "short",
	lexer.KwInt:      "int",
	lexer.KwLong:     "long",
	lexer.KwSigned:   "signed",
	lexer.KwUnsigned: "unsigned",
	lexer.KwFloat:    "float",
	lexer.KwDouble:   "double",
	lexer.KwVoid:     "void",
}

func isCvQualifier(k lexer.Kind) bool {
	return k == lexer.KwConst || k == lexer.KwVolatile
}

// parseTypeId parses `type-specifier-seq ptr-operator*` (§4.3). It never
// bails out; an invalid (empty typenames) TypeDeclaration just means no
// type-id was present, for the caller (always a tentative context) to
// roll back on.
func (p *Parser) parseTypeId() (TypeDeclaration, bool) {
	seq, ok := p.parseTypeSpecifierSeq()
	if !ok {
		return TypeDeclaration{}, false
	}
	seq.PtrOperators = p.parsePtrOperators()
	return seq, true
}

// parseTypeSpecifierSeq greedily consumes cv-qualifiers (discarded),
// built-in type keywords, and user-defined simple type specifiers until
// an iteration contributes nothing (§4.3).
func (p *Parser) parseTypeSpecifierSeq() (TypeDeclaration, bool) {
	var decl TypeDeclaration
	for {
		if isCvQualifier(p.current().Kind) {
			p.advance()
			continue
		}
		if frag, ok := builtinTypeKeyword[p.current().Kind]; ok {
			decl.Typenames = append(decl.Typenames, frag)
			p.advance()
			continue
		}
		frag, ok := p.tryParseUserTypeSpecifier()
		if !ok {
			break
		}
		decl.Typenames = append(decl.Typenames, frag)
	}
	return decl, decl.Valid()
}

// tryParseUserTypeSpecifier attempts the "otherwise" branch of
// type-specifier-seq: an optional leading `::`, an optional
// nested-name-specifier, and a required type-name. The whole attempt is
// one tentative scope: if the required type-name is absent, none of it
// counts ("this iteration contributes nothing", §4.3) and nothing is
// recorded as an error.
func (p *Parser) tryParseUserTypeSpecifier() (string, bool) {
	var fragment string
	ok := p.tentative(func() bool {
		globalScope := false
		if p.current().Kind == lexer.ColonColon {
			p.advance()
			globalScope = true
		}
		nested := p.parseNestedNameSpecifier()
		name, ok := p.parseTypeName()
		if !ok {
			return false
		}
		prefix := ""
		if globalScope {
			prefix = "::"
		}
		fragment = prefix + nested + name
		return true
	})
	return fragment, ok
}

// parseNestedNameSpecifier parses a repeated sequence of
// `identifier ::` or `simple-template-id ::`, returning the rendered
// prefix (e.g. "ns::Outer<T>::"). Zero components is a valid result; it
// never fails, since callers treat an empty prefix as "no nested part".
func (p *Parser) parseNestedNameSpecifier() string {
	var b strings.Builder
	for {
		if p.current().Kind == lexer.Identifier && p.peek(1).Kind == lexer.ColonColon {
			b.WriteString(p.current().Spelling)
			b.WriteString("::")
			p.advance()
			p.advance()
			continue
		}
		if p.current().Kind == lexer.Identifier && p.peek(1).Kind == lexer.Less {
			var rendered string
			matched := p.tentative(func() bool {
				name, ok := p.parseTypeName()
				if !ok {
					return false
				}
				if p.current().Kind != lexer.ColonColon {
					return false
				}
				p.advance()
				rendered = name
				return true
			})
			if !matched {
				break
			}
			b.WriteString(rendered)
			b.WriteString("::")
			continue
		}
		break
	}
	return b.String()
}

// parseTypeName parses an identifier optionally followed by a
// simple-template-id (§4.3 "Required: type-name"). Never bails out.
func (p *Parser) parseTypeName() (string, bool) {
	if p.current().Kind != lexer.Identifier {
		return "", false
	}
	name := p.current().Spelling
	p.advance()
	if p.current().Kind != lexer.Less {
		return name, true
	}
	return p.parseSimpleTemplateId(name)
}

// parseSimpleTemplateId parses the `< template-argument-list? >` suffix
// after name (already consumed). `>>` is never split into two `>`
// tokens here (SPEC_FULL.md §9: splitting is not implemented, as in
// original_source).
func (p *Parser) parseSimpleTemplateId(name string) (string, bool) {
	if p.current().Kind != lexer.Less {
		return "", false
	}
	p.advance()
	if p.current().Kind == lexer.Greater {
		p.advance()
		return name + "<>", true
	}
	args, ok := p.parseTemplateArgumentList()
	if !ok {
		return "", false
	}
	if p.current().Kind != lexer.Greater {
		return "", false
	}
	p.advance()

	joined := strings.Join(args, ", ")
	if len(args) > 0 && strings.HasSuffix(args[len(args)-1], ">") {
		joined += " "
	}
	return name + "<" + joined + ">", true
}

func (p *Parser) parseTemplateArgumentList() ([]string, bool) {
	var args []string
	for {
		arg, ok := p.parseTemplateArgument()
		if !ok {
			return nil, false
		}
		args = append(args, arg)
		if p.current().Kind == lexer.Comma {
			p.advance()
			continue
		}
		return args, true
	}
}

// parseTemplateArgument tries a type-id (resolved through Context) first,
// then an id-expression, each in its own tentative scope, each required
// to be followed by `,` or `>` to count as accepted (§4.3).
func (p *Parser) parseTemplateArgument() (string, bool) {
	var rendered string

	matched := p.tentative(func() bool {
		decl, ok := p.parseTypeId()
		if !ok || !decl.Valid() {
			return false
		}
		if _, resolved := p.ctx.ResolveTypeByName(decl.GetBaseName()); !resolved {
			return false
		}
		if p.current().Kind != lexer.Comma && p.current().Kind != lexer.Greater {
			return false
		}
		rendered = decl.GetName()
		return true
	})
	if matched {
		return rendered, true
	}

	matched = p.tentative(func() bool {
		name, ok := p.parseIdExpression()
		if !ok {
			return false
		}
		if p.current().Kind != lexer.Comma && p.current().Kind != lexer.Greater {
			return false
		}
		rendered = name
		return true
	})
	return rendered, matched
}

// parsePtrOperators parses a run of `*`/`&` declarators; a trailing
// cv-qualifier run after `*` is silently discarded (GLOSSARY
// "Ptr-operator"). Never fails — zero declarators is valid.
func (p *Parser) parsePtrOperators() []PtrOp {
	var ops []PtrOp
	for {
		switch p.current().Kind {
		case lexer.Star:
			p.advance()
			ops = append(ops, Star)
			for isCvQualifier(p.current().Kind) {
				p.advance()
			}
		case lexer.Amp:
			p.advance()
			ops = append(ops, Amp)
		default:
			return ops
		}
	}
}
