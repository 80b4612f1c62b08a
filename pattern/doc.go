/*
Package pattern implements structural matching against expression trees.

Patterns are themselves tree-shaped: a pattern node constrains the head
token of a target node and, sparsely, some of its child positions. Child
constraints are keyed by index; positions without a constraint always match,
whatever their content, and however many of them there are. A declared
position, on the other hand, has to exist in the target: constraining child
7 of a node with three children is a non-match.

Head constraints are pluggable through the TokenPattern capability. Two leaf
kinds are provided: equality against a stored token, and a wildcard that
matches everything. Wildcards also accept the "no information" probe, which
makes them match builder nodes whose head token has not been decided yet;
patterns that only constrain children thus work on partially built trees.

Patterns are built once and matched read-only any number of times, against
finished expressions and against builders alike.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>


*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nedex.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("nedex.pattern")
}
