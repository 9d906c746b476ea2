package parser

import (
	"math/big"

	"github.com/orizon-lang/dbgexpr/internal/ast"
	"github.com/orizon-lang/dbgexpr/internal/diag"
	"github.com/orizon-lang/dbgexpr/internal/evalctx"
	"github.com/orizon-lang/dbgexpr/internal/literal"
)

// parseNumericLiteral (§4.5) delegates lexical classification to the
// Literal Analyzer and applies the integer-literal type-selection rule.
func (p *Parser) parseNumericLiteral() ast.Node {
	tok := p.current()
	p.advance()

	desc, err := literal.Analyze(tok.Spelling)
	if err != nil {
		p.bailOut(diag.InvalidNumericLiteral, err.Error(), tok)
		return ast.NewErrorNode(tok.Span)
	}

	if desc.IsFloat {
		// literal.Analyze already rejects both failure modes in §4.5:
		// overflow (strconv.ParseFloat's ErrRange) and underflow to
		// exactly zero (checked explicitly there, since ParseFloat alone
		// doesn't report that case). A nonzero denormal reaches here
		// without error, matching "plain denormal underflow is accepted".
		basic := evalctx.Double
		if desc.IsFloat32 {
			basic = evalctx.Float
		}
		return ast.NewLiteralNode(p.ctx.ValueFromFloat(desc.FloatValue, basic), tok.Span)
	}

	basic, isUnsigned := p.selectIntegerType(desc.IntValue, desc.Suffix, desc.Radix)
	return ast.NewLiteralNode(p.ctx.ValueFromInteger(desc.IntValue, basic, isUnsigned), tok.Span)
}

type integerCandidate struct {
	bits         int
	signedType   evalctx.BasicType
	unsignedType evalctx.BasicType
}

// selectIntegerType implements §4.5's integer-literal type-selection
// rule against the Context's platform-dependent widths, trying int, long,
// then long long in order and falling back to unsigned long long when no
// candidate fits ("too-large, interpret as unsigned").
func (p *Parser) selectIntegerType(v *big.Int, suf literal.Suffix, radix literal.Radix) (evalctx.BasicType, bool) {
	target := p.ctx.Target()
	unsignedAllowed := suf.Unsigned || radix != literal.Decimal

	var candidates []integerCandidate
	if !suf.Long && !suf.LongLong {
		candidates = append(candidates, integerCandidate{target.IntBits, evalctx.Int, evalctx.UnsignedInt})
	}
	if !suf.LongLong {
		candidates = append(candidates, integerCandidate{target.LongBits, evalctx.Long, evalctx.UnsignedLong})
	}
	candidates = append(candidates, integerCandidate{target.LongLongBits, evalctx.LongLong, evalctx.UnsignedLongLong})

	for _, c := range candidates {
		if fitsUnsignedBits(v, c.bits) && !suf.Unsigned && fitsUnsignedBits(v, c.bits-1) {
			return c.signedType, false
		}
		if fitsUnsignedBits(v, c.bits) && unsignedAllowed {
			return c.unsignedType, true
		}
	}
	return evalctx.UnsignedLongLong, true
}

func fitsUnsignedBits(v *big.Int, bits int) bool {
	if bits <= 0 {
		return false
	}
	return v.Sign() >= 0 && v.BitLen() <= bits
}
