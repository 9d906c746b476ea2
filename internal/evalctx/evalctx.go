// Package evalctx defines the Context interface the parser consumes to
// resolve identifiers and type names against a debugger's live symbol
// table, plus the Value/TypeHandle/BasicType vocabulary those lookups
// traffic in. It also ships SimpleContext, an in-memory reference
// implementation an embedder can use directly or wrap.
package evalctx

import "math/big"

// BasicType tags the concrete arithmetic type selected for a literal or
// carried by a resolved Value.
type BasicType int

const (
	Bool BasicType = iota
	Char
	Char16T
	Char32T
	WCharT
	Short
	UnsignedShort
	Int
	UnsignedInt
	Long
	UnsignedLong
	LongLong
	UnsignedLongLong
	Float
	Double
	Void
	NullPtrT
)

// TargetProfile captures the platform-dependent integer widths spec.md
// §4.5 requires threading through literal type selection, instead of
// assuming a fixed C-style model.
type TargetProfile struct {
	Name         string
	IntBits      int
	LongBits     int
	LongLongBits int
}

// DefaultTargetProfile is the LP64 profile (64-bit long, matching most
// debugger hosts: Linux/macOS x86_64 and arm64).
var DefaultTargetProfile = TargetProfile{
	Name:         "lp64",
	IntBits:      32,
	LongBits:     64,
	LongLongBits: 64,
}

// TypeHandle is an opaque reference to a concrete type in the embedder's
// type system.
type TypeHandle interface {
	Name() string
	IsReference() bool
	PointerType() TypeHandle
	ReferenceType() TypeHandle
}

// Value is an opaque handle to a resolved value: an identifier lookup
// result or a literal's constructed value.
type Value interface {
	Type() TypeHandle
	IsRvalue() bool
}

// Context is the embedder-supplied symbol and type resolver; the
// parser's only external dependency besides the source text (GLOSSARY).
// Implementations must be safe for concurrent reads if the embedder
// intends to run multiple Parser instances over the same Context in
// parallel (§5).
type Context interface {
	// LookupIdentifier resolves name (including "this"); ok is false
	// when not found.
	LookupIdentifier(name string) (val Value, ok bool)

	// ResolveTypeByName resolves a base type name to a TypeHandle; ok is
	// false when qualifiedName does not name a type.
	ResolveTypeByName(qualifiedName string) (handle TypeHandle, ok bool)

	// Value constructors.
	ValueFromBool(b bool) Value
	ValueNullPointer() Value
	ValueFromInteger(v *big.Int, basic BasicType, isUnsigned bool) Value
	ValueFromFloat(v float64, basic BasicType) Value

	// Target describes the platform word widths literal type selection
	// must use (§4.5, §9 "Integer type widths").
	Target() TargetProfile
}
