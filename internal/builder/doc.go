/*
Package builder turns one call-graph value into one formula expression tree.

A call-graph node is a generic cty.Value: either a scalar (string or number)
or a single-entry mapping from an operation name to an argument mapping. The
builder resolves the name against the registry, materializes every argument
according to its declared parameter kind (lifting scalars into literal
leaves, recursing into nested single-entry mappings, or passing raw values
through verbatim), and invokes the resolved operation.

Builds are pure and re-entrant: once the registry is populated the builder
holds no mutable state, so independent call trees may be built concurrently.
Input nesting is the only recursion driver, and it is untrusted, so depth is
bounded; exceeding the limit aborts the build with ErrDepthExceeded. Every
error aborts with no partial result, so a truncated formula is never emitted.
*/
package builder
