package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"strings"

	"github.com/npillmayer/nedex"
)

// ErrIncomplete is returned by Builder.Finish if the expression under
// construction still contains holes. The builder is left untouched and may
// be finished again after the holes have been filled.
var ErrIncomplete = errors.New("expression has unfilled holes")

// BuilderType denotes the state a Builder node is in.
type BuilderType int8

// A Builder node is in one of four states.
const (
	HoleType      BuilderType = iota // nothing known yet
	TokenHoleType                    // children known, head token missing
	ExprType                         // a finished expression, wrapped as-is
	PartType                         // head known, children under construction
)

func (t BuilderType) String() string {
	switch t {
	case HoleType:
		return "Hole"
	case TokenHoleType:
		return "TokenHole"
	case ExprType:
		return "Expr"
	case PartType:
		return "Part"
	}
	return "<unknown builder type>"
}

// Builder represents an expression with holes to be filled.
//
// A Builder is a tree the same way an Expr is, except that any position may
// still be undecided: either a bare hole, or a node whose head token is
// missing while children already exist. Finished subtrees are carried as
// plain Exprs and only unwrapped into editable nodes when a mutation
// actually touches their children.
//
// Builders require exclusive access for mutation; they are not safe for
// concurrent use.
type Builder struct {
	typ      BuilderType
	expr     *Expr       // ExprType only
	head     nedex.Token // PartType only
	children []*Builder  // TokenHoleType, PartType
	format   Formatter   // TokenHoleType, PartType
}

// Hole constructs a Builder which is a bare hole to be filled.
func Hole() *Builder {
	return &Builder{typ: HoleType}
}

// FromExpr wraps a finished expression into a Builder, reopening it for
// further editing. The builder takes ownership of the expression.
func FromExpr(e *Expr) *Builder {
	return &Builder{typ: ExprType, expr: e}
}

// BuilderFromToken constructs a Builder holding a single-token leaf
// expression.
func BuilderFromToken(token nedex.Token) *Builder {
	return FromExpr(FromToken(token))
}

// HoleWithChildren constructs a Builder in token-hole state: the children
// are known already, the head token is not. Supplying the head later, via
// SetHead, promotes the node to a partial expression.
func HoleWithChildren(children ...*Builder) *Builder {
	return &Builder{
		typ:      TokenHoleType,
		children: children,
		format:   FormatExpr,
	}
}

// Type returns the state the Builder node is in.
func (b *Builder) Type() BuilderType {
	return b.typ
}

// IsHole is true for nodes with a missing head token, i.e. bare holes and
// token holes.
func (b *Builder) IsHole() bool {
	return b.typ == HoleType || b.typ == TokenHoleType
}

// HasChildren is true for every state that carries a child sequence, even an
// empty one. Only bare holes have no notion of children at all.
func (b *Builder) HasChildren() bool {
	return b.typ != HoleType
}

// promote unwraps a finished expression into an editable partial node,
// wrapping each child as a resolved Builder. It is the lazy Expr-to-Part
// transition; callers must have checked typ == ExprType.
func (b *Builder) promote() {
	e := b.expr
	children := make([]*Builder, len(e.Children))
	for i, child := range e.Children {
		children[i] = FromExpr(child)
	}
	b.typ = PartType
	b.expr = nil
	b.head = e.Head
	b.children = children
	b.format = e.format
}

// TakeHead removes and returns the head token, if the node has one. An Expr
// or Part node demotes in place to a token hole, preserving its children and
// formatter. Holes and token holes have no head; they are left untouched and
// (nil, false) is returned.
func (b *Builder) TakeHead() (nedex.Token, bool) {
	switch b.typ {
	case ExprType:
		b.promote()
		fallthrough
	case PartType:
		head := b.head
		b.typ = TokenHoleType
		b.head = nil
		return head, true
	}
	return nil, false
}

// SetHead installs a head token. A token hole is promoted to a partial
// expression with the same children; an Expr or Part node swaps heads and
// returns the previous one. On a bare hole SetHead is a no-op returning
// (nil, false): a childless hole is filled through Lens.Fill or replaced
// wholesale, not piecemeal.
func (b *Builder) SetHead(token nedex.Token) (nedex.Token, bool) {
	switch b.typ {
	case HoleType:
		return nil, false
	case TokenHoleType:
		b.typ = PartType
		b.head = token
		return nil, false
	case ExprType:
		b.promote()
	}
	prev := b.head
	b.head = token
	return prev, true
}

// Children returns the mutable child sequence of the node. An Expr node is
// first promoted to a partial expression, unwrapping each child into a
// resolved Builder. Children panics on a bare hole, which has no child
// sequence; this is a caller bug, test with HasChildren.
//
// The returned slice is a view into the builder: entries may be replaced in
// place, but appending must go through PushChild and friends.
func (b *Builder) Children() []*Builder {
	switch b.typ {
	case HoleType:
		panic("attempted to access children of a hole")
	case ExprType:
		b.promote()
	}
	return b.children
}

// PushChild appends a child builder at the end of the node's children,
// promoting an Expr node first. It panics on a bare hole. PushChild returns
// the receiver to allow for chaining.
func (b *Builder) PushChild(child *Builder) *Builder {
	switch b.typ {
	case HoleType:
		panic("attempted to add a child to a hole")
	case ExprType:
		b.promote()
	}
	b.children = append(b.children, child)
	return b
}

// PushExpr appends a finished expression as a child. If the node itself is
// still a wrapped expression, the child is attached directly without
// unwrapping the node.
func (b *Builder) PushExpr(e *Expr) *Builder {
	if b.typ == ExprType {
		b.expr.Push(e)
		return b
	}
	return b.PushChild(FromExpr(e))
}

// PushToken appends a single-token leaf expression as a child.
func (b *Builder) PushToken(token nedex.Token) *Builder {
	return b.PushExpr(FromToken(token))
}

// CanFinish reports whether the expression under construction contains no
// holes, i.e. whether Finish would succeed. The check is recursive and
// stops at the first hole found.
func (b *Builder) CanFinish() bool {
	switch b.typ {
	case HoleType, TokenHoleType:
		return false
	case ExprType:
		return true
	}
	for _, child := range b.children {
		if !child.CanFinish() {
			return false
		}
	}
	return true
}

// build assembles the finished expression. The caller must have verified
// CanFinish.
func (b *Builder) build() *Expr {
	if b.typ == ExprType {
		return b.expr
	}
	children := make([]*Expr, len(b.children))
	for i, child := range b.children {
		children[i] = child.build()
	}
	return FromParts(b.head, children, b.format)
}

// Finish converts a complete Builder into an expression. If any hole
// remains in the subtree, Finish returns ErrIncomplete and leaves the
// builder fully intact, so it can be finished again after more holes have
// been filled. On success the builder is reset to a bare hole and the
// finished expression is returned.
func (b *Builder) Finish() (*Expr, error) {
	if !b.CanFinish() {
		tracer().Debugf("cannot finish %s: unfilled holes remain", b)
		return nil, ErrIncomplete
	}
	e := b.build()
	*b = Builder{typ: HoleType}
	return e, nil
}

// MustFinish is the consuming variant of Finish: an unfilled hole is
// treated as a caller bug and panics. Test with CanFinish, or use Finish,
// if incompleteness is an expected condition.
func (b *Builder) MustFinish() *Expr {
	e, err := b.Finish()
	if err != nil {
		panic("called MustFinish on a Builder with holes")
	}
	return e
}

// Lens returns a cursor pointing at the root of the expression under
// construction.
func (b *Builder) Lens() *Lens {
	return &Lens{builder: b}
}

// --- Read-only inspection ---------------------------------------------------

// Head returns the resolved head token of the node, if it has one. Unlike
// TakeHead it does not mutate the builder.
func (b *Builder) Head() (nedex.Token, bool) {
	switch b.typ {
	case ExprType:
		return b.expr.Head, true
	case PartType:
		return b.head, true
	}
	return nil, false
}

// Expr returns the wrapped expression of a node in Expr state.
func (b *Builder) Expr() (*Expr, bool) {
	if b.typ != ExprType {
		return nil, false
	}
	return b.expr, true
}

// Child returns the child builder at the given index without promoting the
// node. It reports false on bare holes, on wrapped expressions, and for
// out-of-range indices.
func (b *Builder) Child(index int) (*Builder, bool) {
	if b.typ != TokenHoleType && b.typ != PartType {
		return nil, false
	}
	if index < 0 || index >= len(b.children) {
		return nil, false
	}
	return b.children[index], true
}

// --- Comparison -------------------------------------------------------------

// Equals compares two builders structurally. A hole or token hole carries
// no information and is never equal to anything, not even to itself.
// Resolved nodes compare by head and children, with wrapped expressions and
// partial nodes cross-comparable.
func (b *Builder) Equals(other *Builder) bool {
	if b == nil || other == nil {
		return false
	}
	if b.IsHole() || other.IsHole() {
		return false
	}
	if other.typ == ExprType {
		return b.EqualsExpr(other.expr)
	}
	// other is a partial node
	if b.typ == ExprType {
		return other.EqualsExpr(b.expr)
	}
	if !b.head.Equals(other.head) {
		return false
	}
	if len(b.children) != len(other.children) {
		return false
	}
	for i, child := range b.children {
		if !child.Equals(other.children[i]) {
			return false
		}
	}
	return true
}

// EqualsExpr compares a builder against a finished expression, under the
// same rules as Equals.
func (b *Builder) EqualsExpr(e *Expr) bool {
	if b == nil || e == nil {
		return false
	}
	switch b.typ {
	case HoleType, TokenHoleType:
		return false
	case ExprType:
		return b.expr.Equals(e)
	}
	if !b.head.Equals(e.Head) {
		return false
	}
	if len(b.children) != len(e.Children) {
		return false
	}
	for i, child := range b.children {
		if !child.EqualsExpr(e.Children[i]) {
			return false
		}
	}
	return true
}

// --- Copying and display ----------------------------------------------------

// Clone returns a deep copy of the builder, cloning tokens and wrapped
// expressions alike.
func (b *Builder) Clone() *Builder {
	switch b.typ {
	case HoleType:
		return Hole()
	case ExprType:
		return FromExpr(b.expr.Clone())
	}
	children := make([]*Builder, len(b.children))
	for i, child := range b.children {
		children[i] = child.Clone()
	}
	clone := &Builder{
		typ:      b.typ,
		children: children,
		format:   b.format,
	}
	if b.typ == PartType {
		clone.head = b.head.Clone()
	}
	return clone
}

// String renders the expression under construction for diagnostic output,
// with unresolved positions shown as '_':
//
//	_
//	a [_, b]
//	_ [a]
//
// The rendering bypasses custom formatters; it carries no semantic weight.
func (b *Builder) String() string {
	switch b.typ {
	case HoleType:
		return "_"
	case ExprType:
		return b.expr.String()
	}
	var sb strings.Builder
	if b.typ == TokenHoleType {
		sb.WriteString("_")
	} else {
		sb.WriteString(b.head.Lexeme())
	}
	if len(b.children) > 0 {
		sb.WriteString(" [")
		for i, child := range b.children {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(child.String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}
