/*
Package texpr models LaTeX math formulas as an immutable expression tree.

Earlier revisions of this tool spliced raw LaTeX strings together and relied on
every call site remembering to add \left( \right) around embedded operands.
Forgetting the delimiters does not fail loudly; it silently changes the meaning
of the encoded predicate under arithmetic evaluation. This package removes that
failure mode by construction: formulas are trees of a small, closed set of node
types, and the single renderer in render.go is the only place delimiters are
emitted.

The node set is intentionally minimal: exactly what the indicator algebra in
the algebra package needs. Nodes are plain structs with exported fields; they
are treated as immutable once constructed and may be shared freely.
*/
package texpr
