package parser

import (
	"strings"

	"github.com/orizon-lang/dbgexpr/internal/diag"
	"github.com/orizon-lang/dbgexpr/internal/evalctx"
	"github.com/orizon-lang/dbgexpr/internal/lexer"
)

// PtrOp is one declarator in a TypeDeclaration's ptr-operator sequence.
type PtrOp int

const (
	Star PtrOp = iota
	Amp
)

// TypeDeclaration is the Type Parser's output before Context resolution
// (spec.md §3): an ordered sequence of textual type-specifier fragments
// plus an ordered sequence of `*`/`&` declarators.
type TypeDeclaration struct {
	Typenames    []string
	PtrOperators []PtrOp
}

// Valid reports spec.md §3's invariant: valid iff typenames non-empty.
func (t TypeDeclaration) Valid() bool {
	return len(t.Typenames) > 0
}

// GetBaseName joins the type-specifier fragments with single spaces,
// applying the `short int → short` and `long int → long` substitutions
// once to the first such occurrence each — not a per-token rule, and not
// a global replace (SPEC_FULL.md §3, grounded on original_source's
// StringReplace, which only ever touches the first match).
func (t TypeDeclaration) GetBaseName() string {
	name := strings.Join(t.Typenames, " ")
	name = replaceFirst(name, "short int", "short")
	name = replaceFirst(name, "long int", "long")
	return name
}

// replaceFirst replaces only the first occurrence of old in s, unlike
// strings.ReplaceAll.
func replaceFirst(s, old, new string) string {
	idx := strings.Index(s, old)
	if idx < 0 {
		return s
	}
	return s[:idx] + new + s[idx+len(old):]
}

// GetName renders the full textual type name: GetBaseName() followed by
// a space and the declarators in order as `*` or `&`.
func (t TypeDeclaration) GetName() string {
	name := t.GetBaseName()
	for _, op := range t.PtrOperators {
		name += " "
		switch op {
		case Star:
			name += "*"
		case Amp:
			name += "&"
		}
	}
	return name
}

// ResolveType resolves t against ctx in two stages (§4.3 "Type
// resolution"): first the base name via ResolveTypeByName, then the
// declarators left-to-right. badTok is used only to attach a location
// to a declarator-application error.
func (p *Parser) resolveType(t TypeDeclaration, badTok lexer.Token) (evalctx.TypeHandle, bool) {
	handle, ok := p.ctx.ResolveTypeByName(t.GetBaseName())
	if !ok {
		return nil, false
	}
	for _, op := range t.PtrOperators {
		switch op {
		case Star:
			if handle.IsReference() {
				p.bailOut(diag.InvalidOperandType,
					"'"+t.GetBaseName()+"' declared as a pointer to a reference of type '"+handle.Name()+"'",
					badTok)
				return nil, false
			}
			handle = handle.PointerType()
		case Amp:
			if handle.IsReference() {
				p.bailOut(diag.InvalidOperandType,
					"'"+t.GetBaseName()+"' declared as a reference to a reference",
					badTok)
				return nil, false
			}
			handle = handle.ReferenceType()
		}
	}
	return handle, true
}
