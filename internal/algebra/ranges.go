package algebra

import "github.com/vk/prog2math/internal/texpr"

// CountInRange counts how many integers in [lo, hi] satisfy the indicator:
// the sum of a 0/1 indicator over the range.
func CountInRange(lo, hi texpr.Expr, indicator Indicator, indexLetter string) texpr.Expr {
	return texpr.Sum{Index: indexLetter, From: lo, To: hi, Body: indicator.Expr}
}

// AllInRange indicates that every integer in [lo, hi] satisfies the
// indicator, as a product over the range: one factor of 0 zeroes the whole
// thing. An empty range yields the empty product, 1.
func AllInRange(lo, hi texpr.Expr, indicator Indicator, indexLetter string) Indicator {
	return Indicator{texpr.Prod{Index: indexLetter, From: lo, To: hi, Body: indicator.Expr}}
}

// IsRangeAtLeastExp probes, through an n-th root, whether [lo, hi] holds
// matches for the indicator relative to n: floor((n/count)^(1/n)). The count
// must be nonzero for the formula to be defined; that is a caller contract.
func IsRangeAtLeastExp(lo, hi, n texpr.Expr, indicator Indicator, indexLetter string) Indicator {
	ratio := texpr.Frac{Num: n, Den: CountInRange(lo, hi, indicator, indexLetter)}
	return Indicator{texpr.Floor{X: texpr.Sqrt{X: ratio, Deg: n}}}
}
