package evalctx

import "math/big"

// simpleType is SimpleContext's TypeHandle implementation: a named type
// plus lazily-created pointer/reference siblings, so that
// `int` → `int*` → `int**` chains share structure instead of allocating
// a fresh handle graph per declarator application.
type simpleType struct {
	name      string
	isRef     bool
	ptrOf     *simpleType // cached PointerType() result
	refOf     *simpleType // cached ReferenceType() result
	pointee   *simpleType
}

func (t *simpleType) Name() string     { return t.name }
func (t *simpleType) IsReference() bool { return t.isRef }

func (t *simpleType) PointerType() TypeHandle {
	if t.ptrOf == nil {
		t.ptrOf = &simpleType{name: t.name + "*", pointee: t}
	}
	return t.ptrOf
}

func (t *simpleType) ReferenceType() TypeHandle {
	if t.refOf == nil {
		t.refOf = &simpleType{name: t.name + "&", isRef: true, pointee: t}
	}
	return t.refOf
}

// simpleValue is SimpleContext's Value implementation.
type simpleValue struct {
	typ     TypeHandle
	rvalue  bool
}

func (v simpleValue) Type() TypeHandle { return v.typ }
func (v simpleValue) IsRvalue() bool   { return v.rvalue }

// SimpleContext is an in-memory reference Context: a fixed symbol table
// of named values plus a fixed set of known type names, each resolved to
// a simpleType. It exists so the parser is runnable and testable
// end-to-end without an embedder's real debugger backend; a production
// embedder is expected to supply its own Context backed by live DWARF or
// process memory.
type SimpleContext struct {
	target  TargetProfile
	idents  map[string]simpleValue
	types   map[string]*simpleType
}

// NewSimpleContext creates an empty context for the given target. Use
// DefaultTargetProfile for a typical 64-bit host.
func NewSimpleContext(target TargetProfile) *SimpleContext {
	c := &SimpleContext{
		target: target,
		idents: make(map[string]simpleValue),
		types:  make(map[string]*simpleType),
	}
	for _, name := range []string{
		"bool", "char", "char16_t", "char32_t", "wchar_t",
		"short", "unsigned short", "int", "unsigned int",
		"long", "unsigned long", "long long", "unsigned long long",
		"float", "double", "void",
	} {
		c.types[name] = &simpleType{name: name}
	}
	return c
}

// DeclareIdentifier registers name as resolvable to a value of typeName.
// A typeName not yet known to the context (via DeclareType or the
// built-ins seeded by NewSimpleContext) is registered as a type too. It
// is the embedding test's way of populating a fake symbol table.
func (c *SimpleContext) DeclareIdentifier(name, typeName string, isRvalue bool) {
	t, ok := c.types[typeName]
	if !ok {
		t = &simpleType{name: typeName}
		c.types[typeName] = t
	}
	c.idents[name] = simpleValue{typ: t, rvalue: isRvalue}
}

// DeclareType registers typeName as a resolvable type, independent of
// any identifier naming it.
func (c *SimpleContext) DeclareType(typeName string) {
	if _, ok := c.types[typeName]; !ok {
		c.types[typeName] = &simpleType{name: typeName}
	}
}

func (c *SimpleContext) LookupIdentifier(name string) (Value, bool) {
	v, ok := c.idents[name]
	return v, ok
}

func (c *SimpleContext) ResolveTypeByName(qualifiedName string) (TypeHandle, bool) {
	t, ok := c.types[qualifiedName]
	return t, ok
}

func (c *SimpleContext) ValueFromBool(b bool) Value {
	return simpleValue{typ: c.types["bool"], rvalue: true}
}

func (c *SimpleContext) ValueNullPointer() Value {
	t, ok := c.types["nullptr_t"]
	if !ok {
		t = &simpleType{name: "nullptr_t"}
		c.types["nullptr_t"] = t
	}
	return simpleValue{typ: t, rvalue: true}
}

func (c *SimpleContext) ValueFromInteger(v *big.Int, basic BasicType, isUnsigned bool) Value {
	return simpleValue{typ: c.types[basicTypeName(basic)], rvalue: true}
}

func (c *SimpleContext) ValueFromFloat(v float64, basic BasicType) Value {
	return simpleValue{typ: c.types[basicTypeName(basic)], rvalue: true}
}

func (c *SimpleContext) Target() TargetProfile { return c.target }

func basicTypeName(b BasicType) string {
	switch b {
	case Bool:
		return "bool"
	case Char:
		return "char"
	case Char16T:
		return "char16_t"
	case Char32T:
		return "char32_t"
	case WCharT:
		return "wchar_t"
	case Short:
		return "short"
	case UnsignedShort:
		return "unsigned short"
	case Int:
		return "int"
	case UnsignedInt:
		return "unsigned int"
	case Long:
		return "long"
	case UnsignedLong:
		return "unsigned long"
	case LongLong:
		return "long long"
	case UnsignedLongLong:
		return "unsigned long long"
	case Float:
		return "float"
	case Double:
		return "double"
	case Void:
		return "void"
	default:
		return "int"
	}
}
