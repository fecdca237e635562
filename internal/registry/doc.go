/*
Package registry is the name-indexed catalog of formula operations.

Every operation the builder can invoke dynamically is described by an explicit
descriptor: a globally unique name, an ordered parameter list where each
parameter is tagged with its kind (expression, expression list, or raw), and a
Call function from resolved arguments to an expression. Earlier revisions
discovered this catalog by reflecting over method sets and annotations at run
time; the descriptor table removes all runtime introspection and makes the set
of operations enumerable.

A Registry is populated exactly once, at application startup, and is treated
as immutable afterwards; it carries no locking and is safe for any number of
concurrent readers. Registering two distinct operations under one name is a
configuration defect of the catalog itself, reported as ErrDuplicateOperation
and treated as fatal by the application. Re-registering the identical
descriptor is a no-op.
*/
package registry
