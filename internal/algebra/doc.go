/*
Package algebra encodes logic and number theory as continuous arithmetic.

The target evaluation context understands closed-form math formulas only,
with no boolean operators, comparisons, or branching. Every predicate is therefore
expressed through arithmetic identities over indicators: expressions that are
asserted (never enforced) to evaluate to exactly 0 or 1. Examples: logical AND
is a product of indicators, inequality of a and b is the normalized square of
arctan(a-b) pushed to {0,1} with a ceiling, and integrality of a is the floor
of cos(pi*a)^2.

All builders are pure: they construct texpr trees and never evaluate anything.
Numeric preconditions (a nonzero divisor for divides, b >= 1 for the decimal
digit extractor) are documented caller contracts; violating one yields a
formula whose evaluation is undefined, not an error here.

catalog.go exposes the same builders as named, dynamically invocable
operations for the registry and builder packages.
*/
package algebra
