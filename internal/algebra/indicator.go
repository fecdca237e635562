package algebra

import (
	"errors"

	"github.com/vk/prog2math/internal/texpr"
)

// ErrNoIndicators is returned by the variadic connectives when called with an
// empty operand list.
var ErrNoIndicators = errors.New("at least one indicator is required")

// Indicator is an expression carrying the caller-asserted contract that it
// evaluates to exactly 0 or 1. The contract is not verifiable at construction
// time; operations that consume indicators assume it.
type Indicator struct {
	texpr.Expr
}

// LogicalAnd builds the conjunction of the given indicators as a product of
// delimited factors.
func LogicalAnd(indicators ...Indicator) (Indicator, error) {
	if len(indicators) == 0 {
		return Indicator{}, ErrNoIndicators
	}
	factors := make([]texpr.Expr, len(indicators))
	for i, ind := range indicators {
		factors[i] = ind.Expr
	}
	return Indicator{texpr.Mul{Factors: factors}}, nil
}

// LogicalNot negates an indicator: 1-(x).
func LogicalNot(x Indicator) Indicator {
	return Indicator{texpr.Diff{A: texpr.Int(1), B: x.Expr}}
}

// LogicalOr builds the disjunction by De Morgan's laws.
func LogicalOr(indicators ...Indicator) (Indicator, error) {
	if len(indicators) == 0 {
		return Indicator{}, ErrNoIndicators
	}
	negated := make([]Indicator, len(indicators))
	for i, ind := range indicators {
		negated[i] = LogicalNot(ind)
	}
	conj, err := LogicalAnd(negated...)
	if err != nil {
		return Indicator{}, err
	}
	return LogicalNot(conj), nil
}

// AreNotEqual indicates a != b. arctan((a)-(b))^2 is zero exactly when a = b
// and otherwise lands in (0, pi^2/4); normalizing by pi^2/4 and taking the
// ceiling collapses that open interval to 1.
func AreNotEqual(a, b texpr.Expr) Indicator {
	num := texpr.Mul{Factors: []texpr.Expr{
		texpr.Int(4),
		texpr.Pow{Base: texpr.Fn{Name: `\arctan`, X: texpr.Diff{A: a, B: b}}, Exp: texpr.Int(2)},
	}}
	den := texpr.Pow{Base: texpr.Pi, Exp: texpr.Int(2)}
	return Indicator{texpr.Ceil{X: texpr.Frac{Num: num, Den: den}}}
}

// AreEqual indicates a == b.
func AreEqual(a, b texpr.Expr) Indicator {
	return LogicalNot(AreNotEqual(a, b))
}

// IsNonNegative indicates a >= 0 by comparing a with its absolute value
// sqrt((a)^2).
func IsNonNegative(a texpr.Expr) Indicator {
	abs := texpr.Sqrt{X: texpr.Pow{Base: a, Exp: texpr.Int(2)}}
	return AreEqual(abs, a)
}

// LessThanOrEqual indicates a <= b.
func LessThanOrEqual(a, b texpr.Expr) Indicator {
	return IsNonNegative(texpr.Diff{A: b, B: a})
}

// LessThan indicates a < b.
func LessThan(a, b texpr.Expr) Indicator {
	return LogicalNot(LessThanOrEqual(b, a))
}

// BiggerThanOrEqual indicates a >= b.
func BiggerThanOrEqual(a, b texpr.Expr) Indicator {
	return LessThanOrEqual(b, a)
}

// BiggerThan indicates a > b.
func BiggerThan(a, b texpr.Expr) Indicator {
	return LessThan(b, a)
}
