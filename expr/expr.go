package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/nedex"
)

// Formatter is a customizable display method for expressions. Clients may
// install their own when constructing an Expr from parts; FormatExpr is the
// default.
type Formatter func(e *Expr) string

// FormatExpr is the default Formatter. It renders the head token, followed
// by the bracketed child list if there are any children:
//
//	a
//	a [b, c [d]]
//
func FormatExpr(e *Expr) string {
	var b strings.Builder
	b.WriteString(e.Head.Lexeme())
	if len(e.Children) > 0 {
		b.WriteString(" [")
		for i, child := range e.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(child.String())
		}
		b.WriteString("]")
	}
	return b.String()
}

// Expr is an expression tree of tokens. Every node owns its children
// exclusively; there is no sharing and no way to construct a cycle, since
// children are always strictly newly built subtrees.
//
// Expr values are to be treated as immutable once they are shared, compared,
// or matched against. Push is the only mutator and is intended for the
// construction phase.
type Expr struct {
	Head     nedex.Token // symbol at the head of this expression
	Children []*Expr     // child expressions, owned
	format   Formatter   // display method used by String
}

// FromToken wraps a single token into a leaf expression without children.
func FromToken(token nedex.Token) *Expr {
	return FromParts(token, nil, nil)
}

// FromParts constructs an expression from explicit parts. A nil format
// selects FormatExpr. No validation is performed; the expression takes
// ownership of the children.
func FromParts(head nedex.Token, children []*Expr, format Formatter) *Expr {
	if format == nil {
		format = FormatExpr
	}
	return &Expr{
		Head:     head,
		Children: children,
		format:   format,
	}
}

// Push appends a child at the end of the expression's children. It returns
// the receiver to allow for chaining.
func (e *Expr) Push(child *Expr) *Expr {
	e.Children = append(e.Children, child)
	return e
}

// Equals compares two expressions structurally: heads must be equal tokens
// and the child sequences pairwise equal in order. The two sides may be
// backed by different concrete token implementations, as long as their
// Equals methods are cross-compatible.
func (e *Expr) Equals(other *Expr) bool {
	if e == nil || other == nil {
		return e == other
	}
	if !e.Head.Equals(other.Head) {
		return false
	}
	if len(e.Children) != len(other.Children) {
		return false
	}
	for i, child := range e.Children {
		if !child.Equals(other.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the expression, cloning every token. The
// copy uses the same formatters as the original.
func (e *Expr) Clone() *Expr {
	if e == nil {
		return nil
	}
	var children []*Expr
	if len(e.Children) > 0 {
		children = make([]*Expr, len(e.Children))
		for i, child := range e.Children {
			children[i] = child.Clone()
		}
	}
	return FromParts(e.Head.Clone(), children, e.format)
}

func (e *Expr) String() string {
	return e.format(e)
}

// --- Fingerprinting ---------------------------------------------------------

// exprDigest is a hashable shadow of an expression tree. Formatters carry no
// structural information and are excluded.
type exprDigest struct {
	Head     string
	Children []exprDigest
}

func digestOf(e *Expr) exprDigest {
	d := exprDigest{Head: e.Head.Lexeme()}
	for _, child := range e.Children {
		d.Children = append(d.Children, digestOf(child))
	}
	return d
}

// Fingerprint returns a stable content hash of the expression. Two
// structurally equal trees produce the same fingerprint, regardless of
// which token implementation backs them. Rewriting engines use this for
// caching and cheap pre-checks before a full structural comparison.
func (e *Expr) Fingerprint() string {
	hash, err := structhash.Hash(digestOf(e), 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint expression: %v", err)
		return ""
	}
	return hash
}
