/*
Package brepl/main provides an interactive command line tool (B.REPL)
for exploring expression builders. Users grow an expression tree
command by command — filling holes, pushing children, descending to
child positions — and watch the builder's state, completeness and
pattern behaviour along the way. B.REPL serves as a sandbox for
experiments during early stages of rewriting-engine development.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'nedex.expr'
func tracer() tracing.Trace {
	return tracing.Select("nedex.expr")
}
