// Package ast defines the parser's output: a closed sum type of
// expression nodes traversed by an external Visitor, never deep virtual
// inheritance (SPEC_FULL.md §9 "AST polymorphism"). Every non-leaf node
// exclusively owns its children; the tree has no cycles.
package ast

import (
	"github.com/orizon-lang/dbgexpr/internal/evalctx"
	"github.com/orizon-lang/dbgexpr/internal/lexer"
	"github.com/orizon-lang/dbgexpr/internal/position"
)

// Node is the sum type every AST node implements. Accept dispatches to
// the matching Visitor method; Span reports the node's source extent for
// diagnostics that need to point back into an already-parsed subtree.
type Node interface {
	Accept(v Visitor)
	Span() position.Span
	isNode()
}

// Visitor is the external traversal interface (one method per closed
// sum-type member).
type Visitor interface {
	VisitError(*ErrorNode)
	VisitLiteral(*LiteralNode)
	VisitIdentifier(*IdentifierNode)
	VisitBinaryOp(*BinaryOpNode)
	VisitUnaryOp(*UnaryOpNode)
	VisitTernaryOp(*TernaryOpNode)
	VisitCStyleCast(*CStyleCastNode)
	VisitMemberOf(*MemberOfNode)
}

// ErrorNode is the sentinel root returned whenever a parse records an
// error: the AST is an ErrorNode iff the returned Error is non-empty
// (spec.md §8 property 1).
type ErrorNode struct {
	span position.Span
}

func NewErrorNode(span position.Span) *ErrorNode  { return &ErrorNode{span: span} }
func (n *ErrorNode) Accept(v Visitor)              { v.VisitError(n) }
func (n *ErrorNode) Span() position.Span           { return n.span }
func (*ErrorNode) isNode()                         {}

// LiteralNode holds a Value constructed by the Context from a literal
// token (numeric, bool, or nullptr).
type LiteralNode struct {
	Value evalctx.Value
	span  position.Span
}

func NewLiteralNode(value evalctx.Value, span position.Span) *LiteralNode {
	return &LiteralNode{Value: value, span: span}
}
func (n *LiteralNode) Accept(v Visitor)    { v.VisitLiteral(n) }
func (n *LiteralNode) Span() position.Span { return n.span }
func (*LiteralNode) isNode()               {}

// IdentifierNode is a resolved id-expression or `this`.
type IdentifierNode struct {
	Name  string
	Value evalctx.Value
	span  position.Span
}

func NewIdentifierNode(name string, value evalctx.Value, span position.Span) *IdentifierNode {
	return &IdentifierNode{Name: name, Value: value, span: span}
}
func (n *IdentifierNode) Accept(v Visitor)    { v.VisitIdentifier(n) }
func (n *IdentifierNode) Span() position.Span { return n.span }
func (*IdentifierNode) isNode()               {}

// BinaryOpNode covers every binary operator token kind plus LSquare for
// indexing (spec.md §3).
type BinaryOpNode struct {
	Op       lexer.Kind
	LHS, RHS Node
	span     position.Span
}

func NewBinaryOpNode(op lexer.Kind, lhs, rhs Node, span position.Span) *BinaryOpNode {
	return &BinaryOpNode{Op: op, LHS: lhs, RHS: rhs, span: span}
}
func (n *BinaryOpNode) Accept(v Visitor)    { v.VisitBinaryOp(n) }
func (n *BinaryOpNode) Span() position.Span { return n.span }
func (*BinaryOpNode) isNode()               {}

// UnaryOpNode covers prefix ++ -- & * + - ! ~.
type UnaryOpNode struct {
	Op      lexer.Kind
	Operand Node
	span    position.Span
}

func NewUnaryOpNode(op lexer.Kind, operand Node, span position.Span) *UnaryOpNode {
	return &UnaryOpNode{Op: op, Operand: operand, span: span}
}
func (n *UnaryOpNode) Accept(v Visitor)    { v.VisitUnaryOp(n) }
func (n *UnaryOpNode) Span() position.Span { return n.span }
func (*UnaryOpNode) isNode()               {}

// TernaryOpNode is the right-associative `? :` conditional.
type TernaryOpNode struct {
	Cond, Then, Else Node
	span             position.Span
}

func NewTernaryOpNode(cond, then, els Node, span position.Span) *TernaryOpNode {
	return &TernaryOpNode{Cond: cond, Then: then, Else: els, span: span}
}
func (n *TernaryOpNode) Accept(v Visitor)    { v.VisitTernaryOp(n) }
func (n *TernaryOpNode) Span() position.Span { return n.span }
func (*TernaryOpNode) isNode()               {}

// CStyleCastNode is a disambiguated `(type) operand` cast.
type CStyleCastNode struct {
	Type    evalctx.TypeHandle
	Operand Node
	span    position.Span
}

func NewCStyleCastNode(typ evalctx.TypeHandle, operand Node, span position.Span) *CStyleCastNode {
	return &CStyleCastNode{Type: typ, Operand: operand, span: span}
}
func (n *CStyleCastNode) Accept(v Visitor)    { v.VisitCStyleCast(n) }
func (n *CStyleCastNode) Span() position.Span { return n.span }
func (*CStyleCastNode) isNode()               {}

// MemberOfKind distinguishes `.` from `->` member access.
type MemberOfKind int

const (
	OfObject MemberOfKind = iota
	OfPointer
)

// MemberOfNode is `base.member` or `base->member`.
type MemberOfNode struct {
	Kind       MemberOfKind
	Base       Node
	MemberName string
	span       position.Span
}

func NewMemberOfNode(kind MemberOfKind, base Node, memberName string, span position.Span) *MemberOfNode {
	return &MemberOfNode{Kind: kind, Base: base, MemberName: memberName, span: span}
}
func (n *MemberOfNode) Accept(v Visitor)    { v.VisitMemberOf(n) }
func (n *MemberOfNode) Span() position.Span { return n.span }
func (*MemberOfNode) isNode()               {}
