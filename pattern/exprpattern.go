package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/nedex"
	"github.com/npillmayer/nedex/expr"
)

// Formatter is a customizable display method for expression patterns.
// FormatPattern is the default.
type Formatter func(p *ExprPattern) string

// FormatPattern is the default pattern Formatter. Declared child
// constraints are rendered in index order; every run of unconstrained
// positions, including the always-unconstrained tail, shows up as an
// elision marker:
//
//	a
//	a [b, c]
//	a [_, ..., b, ...]
//
// The rendering is diagnostic only and carries no semantic weight.
func FormatPattern(p *ExprPattern) string {
	var sb strings.Builder
	sb.WriteString(p.head.String())
	if p.childPatterns.Empty() {
		return sb.String()
	}
	sb.WriteString(" [")
	lastIndex := -1
	it := p.childPatterns.Iterator()
	for it.Next() {
		index := it.Key().(int)
		child := it.Value().(*ExprPattern)
		if lastIndex >= 0 {
			sb.WriteString(", ")
		}
		if index-lastIndex > 1 {
			sb.WriteString("..., ")
		}
		sb.WriteString(child.String())
		lastIndex = index
	}
	sb.WriteString(", ...]")
	return sb.String()
}

// ExprPattern is a pattern over expression trees: a constraint on the head
// token of a node, plus sparse per-index constraints on its children. The
// child container is sparse on purpose, large gaps between constrained
// positions cost nothing.
//
// Patterns are constructed once, then matched read-only any number of
// times.
type ExprPattern struct {
	head          TokenPattern // constraint on the head of the target node
	childPatterns *treemap.Map // child index -> *ExprPattern, iterated ascending
	format        Formatter
}

// New constructs a pattern from a head constraint, without child
// constraints.
func New(head TokenPattern) *ExprPattern {
	return FromParts(head, nil, nil)
}

// FromParts constructs a pattern from explicit parts. A nil format selects
// FormatPattern.
func FromParts(head TokenPattern, children map[int]*ExprPattern, format Formatter) *ExprPattern {
	if format == nil {
		format = FormatPattern
	}
	p := &ExprPattern{
		head:          head,
		childPatterns: treemap.NewWithIntComparator(),
		format:        format,
	}
	for index, child := range children {
		p.WithChild(index, child)
	}
	return p
}

// WithChild declares a constraint for the child at the given index and
// returns the receiver, to allow for chaining during construction.
// A negative index is a caller bug and panics.
func (p *ExprPattern) WithChild(index int, child *ExprPattern) *ExprPattern {
	if index < 0 {
		panic("child pattern index must not be negative")
	}
	p.childPatterns.Put(index, child)
	return p
}

// Head returns the head constraint of the pattern.
func (p *ExprPattern) Head() TokenPattern {
	return p.head
}

// MatchExpr matches the pattern against a finished expression. The head
// constraint must accept the expression's head token, and every declared
// child index must exist in the expression and match recursively.
// Positions without a declared constraint never reject.
func (p *ExprPattern) MatchExpr(e *expr.Expr) bool {
	if e == nil || !p.head.MatchToken(e.Head) {
		return false
	}
	it := p.childPatterns.Iterator()
	for it.Next() {
		index := it.Key().(int)
		child := it.Value().(*ExprPattern)
		if index >= len(e.Children) {
			tracer().Debugf("pattern %s: no child at index %d", p, index)
			return false
		}
		if !child.MatchExpr(e.Children[index]) {
			return false
		}
	}
	return true
}

// MatchBuilder matches the pattern against an expression under
// construction. A bare hole carries no information and never matches. A
// token hole matches if the head constraint accepts the no-information
// probe, which lets patterns that only constrain children match nodes with
// an undecided head. Wrapped expressions and partial nodes match by head
// and children as in MatchExpr.
func (p *ExprPattern) MatchBuilder(b *expr.Builder) bool {
	if b == nil {
		return false
	}
	switch b.Type() {
	case expr.HoleType:
		return false
	case expr.ExprType:
		e, _ := b.Expr()
		return p.MatchExpr(e)
	case expr.TokenHoleType:
		if !p.head.MatchAbsent() {
			return false
		}
	case expr.PartType:
		head, _ := b.Head()
		if !p.head.MatchToken(head) {
			return false
		}
	}
	it := p.childPatterns.Iterator()
	for it.Next() {
		index := it.Key().(int)
		child := it.Value().(*ExprPattern)
		target, ok := b.Child(index)
		if !ok {
			tracer().Debugf("pattern %s: no child builder at index %d", p, index)
			return false
		}
		if !child.MatchBuilder(target) {
			return false
		}
	}
	return true
}

// MatchToken matches the pattern against a bare token. Only a pattern
// without child constraints can match a token.
func (p *ExprPattern) MatchToken(token nedex.Token) bool {
	return p.childPatterns.Empty() && p.head.MatchToken(token)
}

func (p *ExprPattern) String() string {
	return p.format(p)
}
