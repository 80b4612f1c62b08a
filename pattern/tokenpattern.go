package pattern

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/nedex"
)

// TokenPattern is the capability to accept or reject a single token. It is
// the leaf-level building block of expression patterns: every pattern node
// holds one TokenPattern for the head of the target node.
//
// Partially built expressions may have positions whose head token is not
// decided yet. Matching such a position probes the pattern with "no
// information" instead of a token; MatchAbsent is that probe. A pattern
// that only cares about the shape of the children answers true and matches
// a token hole, a pattern that pins the head down answers false.
type TokenPattern interface {
	MatchToken(token nedex.Token) bool // test a concrete token
	MatchAbsent() bool                 // test the no-information probe
	String() string                    // diagnostic rendering
}

// --- Equality pattern -------------------------------------------------------

// EqPattern matches a token iff it equals a stored token. It rejects the
// no-information probe: an undecided head cannot be known to be equal to
// anything.
type EqPattern struct {
	Token nedex.Token
}

// Eq constructs a TokenPattern matching tokens equal to the given one.
func Eq(token nedex.Token) EqPattern {
	return EqPattern{Token: token}
}

// MatchToken is part of the TokenPattern interface.
func (p EqPattern) MatchToken(token nedex.Token) bool {
	return p.Token.Equals(token)
}

// MatchAbsent is part of the TokenPattern interface.
func (p EqPattern) MatchAbsent() bool {
	return false
}

func (p EqPattern) String() string {
	return p.Token.Lexeme()
}

// --- Wildcard pattern -------------------------------------------------------

// WildcardPattern matches every token, and the no-information probe too.
type WildcardPattern struct{}

// Any constructs a wildcard TokenPattern.
func Any() WildcardPattern {
	return WildcardPattern{}
}

// MatchToken is part of the TokenPattern interface.
func (p WildcardPattern) MatchToken(token nedex.Token) bool {
	return true
}

// MatchAbsent is part of the TokenPattern interface.
func (p WildcardPattern) MatchAbsent() bool {
	return true
}

func (p WildcardPattern) String() string {
	return "_"
}
