/*
Package expr implements symbolic expression trees under construction.

An Expr is a finite, acyclic, ordered tree of tokens: every node carries one
head token and a sequence of child expressions, wholly owned by their parent.
Exprs are immutable once handed out. Incremental construction is the job of
the Builder type, which represents an expression where some positions may
still be holes, to be filled in any order. A Lens is a transient, strictly
downward cursor into a Builder, used to fill or extend a subtree without
re-traversing from the root.

Builders model four states: a bare hole (nothing known), a token hole
(children known, head still missing), a finished expression (fast path), and
a partial node (head known, children themselves under construction). State
transitions happen in place; converting a finished expression into an
editable node is lazy and triggered by the first child mutation.

The usual lifecycle is: start from a hole or a token, mutate through Builder
or Lens calls, ask CanFinish, and Finish into an Expr. A finished Expr may be
reopened into a Builder for further editing.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>


*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nedex.expr'.
func tracer() tracing.Trace {
	return tracing.Select("nedex.expr")
}
