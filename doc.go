/*
Package nedex is the expression-tree backbone for a natural-deduction style
rewriting runtime.

NeDEx ("Natural DEduction EXpressions") provides an immutable symbolic
expression tree together with an incremental builder for trees which are
only partially decided yet, and a structural pattern matcher which may be
applied to finished and unfinished trees alike. Package structure is
as follows:

■ expr: Package expr implements the expression tree proper: the Expr type,
the Builder state machine for trees with holes, and the Lens cursor for
filling holes out of order.

■ pattern: Package pattern implements structural matching against finished
and partially built expressions, with sparse per-position child constraints
and wildcard semantics.

■ brepl: An interactive explorer for expression builders.

The base package contains the token vocabulary which is used throughout all
the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nedex
