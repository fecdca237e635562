package algebra

import "github.com/vk/prog2math/internal/texpr"

// IsInteger indicates that a is an integer. cos(pi*a)^2 equals 1 exactly at
// integers and is strictly below 1 everywhere else, so its floor is the
// integrality indicator.
func IsInteger(a texpr.Expr) Indicator {
	cos := texpr.Fn{Name: `\cos`, X: texpr.Mul{Factors: []texpr.Expr{texpr.Pi, a}}}
	return Indicator{texpr.Floor{X: texpr.Pow{Base: cos, Exp: texpr.Int(2)}}}
}

// IsNatural indicates that a is a natural number, counting from 0 when
// includeZero is set and from 1 otherwise.
func IsNatural(a texpr.Expr, includeZero bool) Indicator {
	var positive Indicator
	if includeZero {
		positive = IsNonNegative(a)
	} else {
		positive = BiggerThan(a, texpr.Int(0))
	}
	and, _ := LogicalAnd(IsInteger(a), positive)
	return and
}

// Divides indicates that a divides b. A zero a is an unchecked caller
// contract; the resulting formula divides by it.
func Divides(a, b texpr.Expr) Indicator {
	return IsInteger(texpr.Frac{Num: b, Den: a})
}

// DoesNotDivide indicates that a does not divide b, under the same nonzero
// contract as Divides.
func DoesNotDivide(a, b texpr.Expr) Indicator {
	return LogicalNot(Divides(a, b))
}

// GetMod builds a mod b as a - b*floor(a/b), assuming b is nonzero.
func GetMod(a, b texpr.Expr) texpr.Expr {
	floored := texpr.Floor{X: texpr.Frac{Num: a, Den: b}}
	return texpr.Diff{A: a, B: texpr.Mul{Factors: []texpr.Expr{b, floored}}}
}

// GetPostDecimalPointDigit extracts the b-th base-10 digit of a after the
// decimal point, for b >= 1: floor(10^b*a) - 10*floor(10^(b-1)*a).
func GetPostDecimalPointDigit(a, b texpr.Expr) texpr.Expr {
	ten := texpr.Int(10)
	shifted := texpr.Floor{X: texpr.Mul{Factors: []texpr.Expr{texpr.Pow{Base: ten, Exp: b}, a}}}
	prev := texpr.Floor{X: texpr.Mul{Factors: []texpr.Expr{
		texpr.Pow{Base: ten, Exp: texpr.Diff{A: b, B: texpr.Int(1)}}, a,
	}}}
	return texpr.Diff{A: shifted, B: texpr.Mul{Factors: []texpr.Expr{ten, prev}}}
}

// Compose builds the functional composition a(b).
func Compose(a, b texpr.Expr) texpr.Expr {
	return texpr.Apply{F: a, X: b}
}
