// Package diag implements the Error Sink & Diagnostics component
// (spec.md §3, §6, §7): the stable ErrorKind tags, the first-error-wins
// Error value, and the byte-exact caret-line formatter grounded on
// original_source's FormatDiagnostics.
package diag

import (
	"strings"

	"github.com/orizon-lang/dbgexpr/internal/position"
)

// Kind is a stable error tag (spec.md §6 "Error codes").
type Kind int

const (
	Unknown Kind = iota
	InvalidExpressionSyntax
	InvalidNumericLiteral
	InvalidOperandType
	UndeclaredIdentifier
	NotImplemented
)

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "kUnknown"
	case InvalidExpressionSyntax:
		return "kInvalidExpressionSyntax"
	case InvalidNumericLiteral:
		return "kInvalidNumericLiteral"
	case InvalidOperandType:
		return "kInvalidOperandType"
	case UndeclaredIdentifier:
		return "kUndeclaredIdentifier"
	case NotImplemented:
		return "kNotImplemented"
	default:
		return "kUnknown"
	}
}

// Error is the parser's single recorded diagnostic. At most one is
// produced per parse invocation (first-wins, §7). SourceLine is the raw
// text of Loc's line, stamped by the parser at the point the error is
// recorded (it already has the source in hand); Error() and callers that
// just want the formatted message never need to re-derive it themselves.
type Error struct {
	Kind       Kind
	Message    string
	Loc        position.Position
	SourceLine string
}

func (e *Error) Error() string {
	return Format(*e, e.SourceLine)
}

// Format renders e in the byte-exact three-line caret convention of
// spec.md §6:
//
//	<file>:<line>:<col>: <message>
//	<source-line-text-padded>
//	<caret-with-leading-spaces>
//
// sourceLine is the raw text of the offending line with no trailing
// newline; it may be shorter than e.Loc.Column (e.g. on an unexpected-EOF
// diagnostic), in which case it is right-padded with spaces so the caret
// still lands under the intended column, matching original_source's
// llvm::formatv right/left padding of the source and caret lines.
func Format(e Error, sourceLine string) string {
	var b strings.Builder

	b.WriteString(e.Loc.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	b.WriteByte('\n')

	col := e.Loc.Column
	if col < 1 {
		col = 1
	}
	padded := sourceLine
	if len(padded) < col {
		padded += strings.Repeat(" ", col-len(padded))
	}
	b.WriteString(padded)
	b.WriteByte('\n')

	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteByte('^')
	if rest := len(padded) - col; rest > 0 {
		b.WriteString(strings.Repeat(" ", rest))
	}

	return b.String()
}
