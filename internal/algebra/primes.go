package algebra

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/vk/prog2math/internal/texpr"
)

// ErrIndexLetter reports a bound-variable name that is not a single lowercase
// letter. The check is eager: a bad letter fails the operation immediately
// rather than producing an unparseable formula.
var ErrIndexLetter = errors.New("index letter must be a single lowercase letter")

// DefaultDivisorIndex is the bound variable used by IsPrimeDivisors when the
// caller does not pick one.
const DefaultDivisorIndex = "i"

// DefaultRangeIndex is the bound variable used by the ranged operations when
// the caller does not pick one.
const DefaultRangeIndex = "k"

func checkIndexLetter(letter string) error {
	r, size := utf8.DecodeRuneInString(letter)
	if size == 0 || size != len(letter) || !unicode.IsLower(r) {
		return fmt.Errorf("%w: %q", ErrIndexLetter, letter)
	}
	return nil
}

// IsPrimeDivisors indicates primality of a by trial division: a is prime iff
// a is natural and no integer strictly between 1 and a divides it. The inner
// product multiplies does-not-divide indicators for every candidate divisor,
// so it collapses to 0 as soon as one divides a. indexLetter names the bound
// variable and must be a single lowercase letter.
func IsPrimeDivisors(a texpr.Expr, indexLetter string) (Indicator, error) {
	if err := checkIndexLetter(indexLetter); err != nil {
		return Indicator{}, err
	}
	noDivisors := texpr.Prod{
		Index: indexLetter,
		From:  texpr.Int(2),
		To:    texpr.Diff{A: a, B: texpr.Int(1)},
		Body:  DoesNotDivide(texpr.Lit{Text: indexLetter}, a).Expr,
	}
	return LogicalAnd(IsNatural(a, false), IsNatural(noDivisors, false))
}

// IsPrimeWilson indicates primality of a by Wilson's theorem: a > 1 is prime
// iff a divides (a-1)!+1.
func IsPrimeWilson(a texpr.Expr) Indicator {
	quotient := texpr.Frac{
		Num: texpr.Add{A: texpr.Fact{X: texpr.Diff{A: a, B: texpr.Int(1)}}, B: texpr.Int(1)},
		Den: a,
	}
	and, _ := LogicalAnd(LessThan(texpr.Int(1), a), IsInteger(quotient))
	return and
}
