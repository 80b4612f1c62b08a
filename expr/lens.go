package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/nedex"
)

// Lens is a view into the expression under construction by a Builder.
//
// A Lens points at exactly one builder node and supports point mutations
// there: filling a hole, appending children, or descending into a child
// position. Navigation is strictly downward; a cursor that has descended
// cannot return to its parent, a fresh Lens has to be derived from the root
// instead. A Lens is transient: it must not be retained across unrelated
// mutations of the builder it points into.
type Lens struct {
	builder *Builder // node being pointed at
}

// IsHole tests whether the Lens is pointing at a bare hole.
func (l *Lens) IsHole() bool {
	return l.builder.typ == HoleType
}

// Fill fills the hole with the given builder and returns the Lens, now
// pointing at the filled-in node. Filling a position that is not a bare
// hole is a caller bug and panics; test with IsHole.
func (l *Lens) Fill(b *Builder) *Lens {
	if l.builder.typ != HoleType {
		panic("attempted to fill a non-hole")
	}
	*l.builder = *b
	return l
}

// FillExpr fills the hole with a finished expression.
func (l *Lens) FillExpr(e *Expr) *Lens {
	return l.Fill(FromExpr(e))
}

// FillToken fills the hole with a single-token leaf expression.
func (l *Lens) FillToken(token nedex.Token) *Lens {
	return l.FillExpr(FromToken(token))
}

// PushChild appends a child builder at the position pointed at, with the
// same auto-promotion rules as Builder.PushChild. The Lens keeps pointing
// at the same position.
func (l *Lens) PushChild(b *Builder) *Lens {
	l.builder.PushChild(b)
	return l
}

// PushExpr appends a finished expression as a child at the position
// pointed at.
func (l *Lens) PushExpr(e *Expr) *Lens {
	l.builder.PushExpr(e)
	return l
}

// PushToken appends a single-token leaf expression as a child at the
// position pointed at.
func (l *Lens) PushToken(token nedex.Token) *Lens {
	l.builder.PushToken(token)
	return l
}

// VisitChild returns a Lens pointing at the child at the given index. A
// node in Expr state is promoted to a partial node first, under the same
// rule as Builder.Children. Visiting a child of a bare hole, or an index
// out of range, is a caller bug and panics.
func (l *Lens) VisitChild(index int) *Lens {
	switch l.builder.typ {
	case HoleType:
		panic("attempted to visit a child of a hole")
	case ExprType:
		l.builder.promote()
	}
	if index < 0 || index >= len(l.builder.children) {
		panic("child index out of range")
	}
	return &Lens{builder: l.builder.children[index]}
}
