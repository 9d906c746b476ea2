// Package literal classifies numeric_constant token spellings into a
// radix, a suffix set, and an extracted value. It is the default,
// in-module implementation of the host "literal analyzer" collaborator
// spec.md treats as an external dependency of the lexer.
package literal

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Radix is the base a numeric_constant's digit sequence was written in.
type Radix int

const (
	Decimal     Radix = 10
	Octal       Radix = 8
	Hex         Radix = 16
	Binary      Radix = 2 // documented extension, see SPEC_FULL.md §4.5
)

// Suffix records which integer-literal suffix letters were present,
// independent of their case or order in the source spelling.
type Suffix struct {
	Unsigned bool
	Long     bool
	LongLong bool
}

// Descriptor is the result of analyzing one numeric_constant spelling.
type Descriptor struct {
	IsFloat bool
	Radix   Radix   // meaningless when IsFloat
	Suffix  Suffix  // meaningless when IsFloat
	IsFloat32 bool  // true when a float literal carried an f/F suffix

	IntValue   *big.Int // set when !IsFloat
	FloatValue float64  // set when IsFloat
}

// Analyze classifies spelling, the exact source text of a numeric_constant
// token as scanned by internal/lexer. It returns an error when the digits
// don't fit the detected radix (e.g. "0b12"), when a floating constant
// overflows, or when a nonzero floating constant underflows to zero; the
// caller decides how to report it (there is no BailOut here, mirroring
// original_source: numeric-constant parsing failures are plain errors,
// not exceptions).
func Analyze(spelling string) (Descriptor, error) {
	if isFloatSpelling(spelling) {
		return analyzeFloat(spelling)
	}
	return analyzeInteger(spelling)
}

func isFloatSpelling(s string) bool {
	if strings.ContainsAny(s, ".") {
		return true
	}
	// An exponent marks a float only when not part of a hex literal
	// (0x1p3 is not supported by this dialect; 0x prefixed spellings are
	// always integers here).
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return false
	}
	return strings.ContainsAny(s, "eE")
}

func analyzeFloat(spelling string) (Descriptor, error) {
	body := spelling
	isF32 := false
	if n := len(body); n > 0 {
		switch body[n-1] {
		case 'f', 'F':
			isF32 = true
			body = body[:n-1]
		case 'l', 'L':
			body = body[:n-1]
		}
	}
	bitSize := 64
	if isF32 {
		bitSize = 32
	}
	v, err := strconv.ParseFloat(body, bitSize)
	if err != nil {
		return Descriptor{}, fmt.Errorf("literal: invalid floating constant %q: %w", spelling, err)
	}
	// strconv.ParseFloat only reports ErrRange on overflow (rounds to
	// ±Inf); a value that rounds to exactly zero because the true
	// magnitude is below the smallest representable denormal comes back
	// as (0, nil), with no error at all. lldb-eval's APFloat-based parser
	// (original_source/lldb-eval/parser.cc) treats that case —
	// opUnderflow with an exactly-zero result — as invalid, distinct from
	// a literal that spells zero outright; match that here since Go's
	// standard conversion won't.
	if v == 0 && !isLiteralZero(body) {
		return Descriptor{}, fmt.Errorf("literal: floating constant %q underflows to zero", spelling)
	}
	return Descriptor{IsFloat: true, IsFloat32: isF32, FloatValue: v}, nil
}

// isLiteralZero reports whether body's mantissa digits (everything before
// an exponent marker) are all zero, i.e. the spelling denotes zero
// outright rather than a nonzero value too small to represent.
func isLiteralZero(body string) bool {
	mantissa := body
	if i := strings.IndexAny(body, "eE"); i >= 0 {
		mantissa = body[:i]
	}
	sawDigit := false
	for _, c := range mantissa {
		if c >= '0' && c <= '9' {
			sawDigit = true
			if c != '0' {
				return false
			}
		}
	}
	return sawDigit
}

func analyzeInteger(spelling string) (Descriptor, error) {
	digits, radix := splitRadixPrefix(spelling)
	digits, suffix := splitSuffix(digits)

	base := int(radix)
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Descriptor{}, fmt.Errorf("literal: invalid integer constant %q", spelling)
	}
	return Descriptor{Radix: radix, Suffix: suffix, IntValue: v}, nil
}

// splitRadixPrefix detects and strips a 0x/0X/0b/0B/0 prefix, returning
// the remaining digit string (still in that radix) and the Radix.
func splitRadixPrefix(s string) (digits string, radix Radix) {
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return s[2:], Hex
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		return s[2:], Binary
	case len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9':
		return s[1:], Octal
	default:
		return s, Decimal
	}
}

// splitSuffix strips a trailing run of u/U/l/L letters (in any order,
// any case, lldb-eval accepts up to "ULL"/"LLU"/etc.) and reports which
// flags were present.
func splitSuffix(s string) (string, Suffix) {
	end := len(s)
	var suf Suffix
	for end > 0 {
		c := s[end-1]
		switch c {
		case 'u', 'U':
			suf.Unsigned = true
		case 'l', 'L':
			if suf.Long {
				suf.Long = false
				suf.LongLong = true
			} else if !suf.LongLong {
				suf.Long = true
			}
		default:
			return s[:end], suf
		}
		end--
	}
	return s[:end], suf
}
