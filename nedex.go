package nedex

// --- A general purpose interface for tokens --------------------------------

// Tokens are the symbols labelling expression-tree nodes. The expression core
// does not care where tokens come from nor what they carry beyond a display
// text; scanners, rewriting engines and printers will usually bring their own
// token type. The core requires three capabilities only: display, equality,
// and a cheap copy.
//
// Equality is intentionally a relation between possibly different concrete
// token types. Two trees holding different token implementations compare
// fine, as long as their Equals methods agree on a common notion of sameness
// (for text-backed tokens this is usually lexeme equality).
type Token interface {
	Lexeme() string          // display text of the token
	Equals(other Token) bool // cross-implementation equality
	Clone() Token            // cheap copy, preserving equality
}

// --- A reference token implementation ---------------------------------------

// Text is a string-backed Token. It is the vocabulary most clients will
// start out with, and the one the tests and the brepl explorer use.
type Text string

// T wraps a string into a Token.
func T(s string) Token {
	return Text(s)
}

// Lexeme returns the text of the token.
func (t Text) Lexeme() string {
	return string(t)
}

// Equals compares by lexeme, making Text cross-comparable to any other
// Token implementation with a sensible display text.
func (t Text) Equals(other Token) bool {
	if other == nil {
		return false
	}
	return string(t) == other.Lexeme()
}

// Clone returns a copy of the token.
func (t Text) Clone() Token {
	return t
}

func (t Text) String() string {
	return string(t)
}
