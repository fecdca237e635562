// Package testutil provides shared helpers for package tests. Its centerpiece
// is a numeric evaluator over the texpr tree: the production code only ever
// constructs formulas (evaluating them is an explicit non-goal), but the
// interesting correctness properties (truth tables, primality agreement,
// counting) are statements about what the formulas compute.
package testutil

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/vk/prog2math/internal/texpr"
)

// eps absorbs float64 noise at the floor/ceil cliffs the indicator encodings
// sit on: cos(pi*n)^2 lands at 1-2e-16 rather than 1, and arctan(0)^2 at a
// denormal rather than 0. The encodings keep true values at least ~1e-2 away
// from the cliff, so a 1e-9 tolerance cannot flip a genuine result.
const eps = 1e-9

// Eval numerically evaluates a formula tree, resolving free variables from
// vars. It exists for tests only.
func Eval(e texpr.Expr, vars map[string]float64) (float64, error) {
	switch n := e.(type) {
	case texpr.Lit:
		if n.Text == `\pi` {
			return math.Pi, nil
		}
		if v, err := strconv.ParseFloat(n.Text, 64); err == nil {
			return v, nil
		}
		if v, ok := vars[n.Text]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("unbound symbol %q", n.Text)

	case texpr.Add:
		return evalBinary(n.A, n.B, vars, func(a, b float64) float64 { return a + b })
	case texpr.Diff:
		return evalBinary(n.A, n.B, vars, func(a, b float64) float64 { return a - b })
	case texpr.Frac:
		return evalBinary(n.Num, n.Den, vars, func(a, b float64) float64 { return a / b })
	case texpr.Pow:
		return evalBinary(n.Base, n.Exp, vars, math.Pow)

	case texpr.Mul:
		product := 1.0
		for _, f := range n.Factors {
			v, err := Eval(f, vars)
			if err != nil {
				return 0, err
			}
			product *= v
		}
		return product, nil

	case texpr.Floor:
		v, err := Eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		return math.Floor(v + eps), nil

	case texpr.Ceil:
		v, err := Eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		return math.Ceil(v - eps), nil

	case texpr.Sqrt:
		v, err := Eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		if n.Deg == nil {
			return math.Sqrt(v), nil
		}
		deg, err := Eval(n.Deg, vars)
		if err != nil {
			return 0, err
		}
		return math.Pow(v, 1/deg), nil

	case texpr.Fn:
		return evalFn(n, vars)

	case texpr.Fact:
		v, err := Eval(n.X, vars)
		if err != nil {
			return 0, err
		}
		return factorial(v)

	case texpr.Sum:
		return evalRange(n.Index, n.From, n.To, n.Body, vars, 0, func(acc, v float64) float64 { return acc + v })
	case texpr.Prod:
		return evalRange(n.Index, n.From, n.To, n.Body, vars, 1, func(acc, v float64) float64 { return acc * v })

	case texpr.Apply:
		return 0, fmt.Errorf("cannot numerically evaluate a composition")

	default:
		return 0, fmt.Errorf("unknown node %T", e)
	}
}

// MustEval evaluates e and fails the test on error.
func MustEval(t *testing.T, e texpr.Expr, vars map[string]float64) float64 {
	t.Helper()
	v, err := Eval(e, vars)
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	return v
}

// IsPrime is the reference primality check the formula encodings are tested
// against.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func evalBinary(a, b texpr.Expr, vars map[string]float64, op func(a, b float64) float64) (float64, error) {
	av, err := Eval(a, vars)
	if err != nil {
		return 0, err
	}
	bv, err := Eval(b, vars)
	if err != nil {
		return 0, err
	}
	return op(av, bv), nil
}

func evalFn(n texpr.Fn, vars map[string]float64) (float64, error) {
	// cos(pi*x) carries the integrality probe; for factorial-sized x the
	// product pi*x is far beyond float64 argument-reduction range. The
	// probe's value only depends on x mod 1, so reduce before multiplying.
	if n.Name == `\cos` {
		if m, ok := n.X.(texpr.Mul); ok && len(m.Factors) == 2 {
			if lit, ok := m.Factors[0].(texpr.Lit); ok && lit.Text == `\pi` {
				x, err := Eval(m.Factors[1], vars)
				if err != nil {
					return 0, err
				}
				return math.Cos(math.Pi * (x - math.Round(x))), nil
			}
		}
	}

	v, err := Eval(n.X, vars)
	if err != nil {
		return 0, err
	}
	switch n.Name {
	case `\arctan`:
		return math.Atan(v), nil
	case `\cos`:
		return math.Cos(v), nil
	default:
		return 0, fmt.Errorf("unknown function %q", n.Name)
	}
}

func factorial(v float64) (float64, error) {
	n := math.Round(v)
	if math.Abs(v-n) > eps || n < 0 {
		return 0, fmt.Errorf("factorial of non-natural %v", v)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

func evalRange(index string, from, to, body texpr.Expr, vars map[string]float64, init float64, fold func(acc, v float64) float64) (float64, error) {
	lo, err := Eval(from, vars)
	if err != nil {
		return 0, err
	}
	hi, err := Eval(to, vars)
	if err != nil {
		return 0, err
	}

	// The bound variable shadows any outer binding of the same name.
	scope := make(map[string]float64, len(vars)+1)
	for k, v := range vars {
		scope[k] = v
	}

	acc := init
	for i := math.Round(lo); i <= math.Round(hi); i++ {
		scope[index] = i
		v, err := Eval(body, scope)
		if err != nil {
			return 0, err
		}
		acc = fold(acc, v)
	}
	return acc, nil
}
