package algebra

import (
	"github.com/vk/prog2math/internal/registry"
	"github.com/vk/prog2math/internal/texpr"
)

// Register installs every operation of the indicator algebra, plus the
// expression-type constructors, into reg. The catalog is static; a duplicate
// here means two descriptors below share a name.
func Register(reg *registry.Registry) error {
	for _, t := range catalogTypes {
		if err := reg.RegisterType(t); err != nil {
			return err
		}
	}
	for _, op := range catalogOps {
		if err := reg.Register(op); err != nil {
			return err
		}
	}
	return nil
}

// indicatorArg reads an expression argument and re-asserts the 0/1 contract
// the caller attached to it.
func indicatorArg(args registry.Args, name string) (Indicator, error) {
	e, err := args.Expr(name)
	if err != nil {
		return Indicator{}, err
	}
	return Indicator{e}, nil
}

func indicatorListArg(args registry.Args, name string) ([]Indicator, error) {
	es, err := args.ExprList(name)
	if err != nil {
		return nil, err
	}
	inds := make([]Indicator, len(es))
	for i, e := range es {
		inds[i] = Indicator{e}
	}
	return inds, nil
}

// twoExprs is the shape shared by every binary (a, b) operation.
func twoExprs(args registry.Args) (a, b texpr.Expr, err error) {
	if a, err = args.Expr("a"); err != nil {
		return nil, nil, err
	}
	if b, err = args.Expr("b"); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func lift(args registry.Args) (texpr.Expr, error) {
	v, err := args.Raw("expression")
	if err != nil {
		return nil, err
	}
	return registry.LiftScalar(v)
}

var catalogTypes = []*registry.Type{
	{
		Name: "latex_expr",
		New: &registry.Operation{
			Name:   "latex_expr",
			Params: []registry.Param{{Name: "expression", Kind: registry.ParamRaw}},
			Call:   lift,
		},
	},
	{
		Name: "indicator",
		New: &registry.Operation{
			Name:   "indicator",
			Params: []registry.Param{{Name: "expression", Kind: registry.ParamRaw}},
			Call:   lift,
		},
	},
}

var catalogOps = []*registry.Operation{
	{
		Name:   "logical_and",
		Params: []registry.Param{{Name: "indicators", Kind: registry.ParamExprList}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			inds, err := indicatorListArg(args, "indicators")
			if err != nil {
				return nil, err
			}
			out, err := LogicalAnd(inds...)
			return out.Expr, err
		},
	},
	{
		Name:   "logical_or",
		Params: []registry.Param{{Name: "indicators", Kind: registry.ParamExprList}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			inds, err := indicatorListArg(args, "indicators")
			if err != nil {
				return nil, err
			}
			out, err := LogicalOr(inds...)
			return out.Expr, err
		},
	},
	{
		Name:   "logical_not",
		Params: []registry.Param{{Name: "indicator", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			ind, err := indicatorArg(args, "indicator")
			if err != nil {
				return nil, err
			}
			return LogicalNot(ind).Expr, nil
		},
	},
	{
		Name:   "are_not_equal",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return AreNotEqual(a, b).Expr, nil
		},
	},
	{
		Name:   "are_equal",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return AreEqual(a, b).Expr, nil
		},
	},
	{
		Name:   "is_non_negative",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, err := args.Expr("a")
			if err != nil {
				return nil, err
			}
			return IsNonNegative(a).Expr, nil
		},
	},
	{
		Name:   "less_than_or_equal",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return LessThanOrEqual(a, b).Expr, nil
		},
	},
	{
		Name:   "less_than",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return LessThan(a, b).Expr, nil
		},
	},
	{
		Name:   "bigger_than_or_equal",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return BiggerThanOrEqual(a, b).Expr, nil
		},
	},
	{
		Name:   "bigger_than",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return BiggerThan(a, b).Expr, nil
		},
	},
	{
		Name:   "is_integer",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, err := args.Expr("a")
			if err != nil {
				return nil, err
			}
			return IsInteger(a).Expr, nil
		},
	},
	{
		Name: "is_natural",
		Params: []registry.Param{
			{Name: "a", Kind: registry.ParamExpr},
			{Name: "include_zero", Kind: registry.ParamRaw},
		},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, err := args.Expr("a")
			if err != nil {
				return nil, err
			}
			includeZero, err := args.Bool("include_zero", false)
			if err != nil {
				return nil, err
			}
			return IsNatural(a, includeZero).Expr, nil
		},
	},
	{
		Name:   "divides",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return Divides(a, b).Expr, nil
		},
	},
	{
		Name:   "does_not_divide",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return DoesNotDivide(a, b).Expr, nil
		},
	},
	{
		Name:   "get_mod",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return GetMod(a, b), nil
		},
	},
	{
		Name: "is_prime_divisors",
		Params: []registry.Param{
			{Name: "a", Kind: registry.ParamExpr},
			{Name: "index_letter", Kind: registry.ParamRaw},
		},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, err := args.Expr("a")
			if err != nil {
				return nil, err
			}
			letter, err := args.String("index_letter", DefaultDivisorIndex)
			if err != nil {
				return nil, err
			}
			out, err := IsPrimeDivisors(a, letter)
			return out.Expr, err
		},
	},
	{
		Name:   "is_prime_wilson",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, err := args.Expr("a")
			if err != nil {
				return nil, err
			}
			return IsPrimeWilson(a).Expr, nil
		},
	},
	{
		Name:   "get_post_decimal_point_digit",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return GetPostDecimalPointDigit(a, b), nil
		},
	},
	{
		Name: "count_in_range",
		Params: []registry.Param{
			{Name: "lo", Kind: registry.ParamExpr},
			{Name: "hi", Kind: registry.ParamExpr},
			{Name: "indicator", Kind: registry.ParamExpr},
			{Name: "index_letter", Kind: registry.ParamRaw},
		},
		Call: func(args registry.Args) (texpr.Expr, error) {
			lo, hi, ind, letter, err := rangeArgs(args)
			if err != nil {
				return nil, err
			}
			return CountInRange(lo, hi, ind, letter), nil
		},
	},
	{
		Name: "all_in_range",
		Params: []registry.Param{
			{Name: "lo", Kind: registry.ParamExpr},
			{Name: "hi", Kind: registry.ParamExpr},
			{Name: "indicator", Kind: registry.ParamExpr},
			{Name: "index_letter", Kind: registry.ParamRaw},
		},
		Call: func(args registry.Args) (texpr.Expr, error) {
			lo, hi, ind, letter, err := rangeArgs(args)
			if err != nil {
				return nil, err
			}
			return AllInRange(lo, hi, ind, letter).Expr, nil
		},
	},
	{
		Name: "is_range_at_least_exp",
		Params: []registry.Param{
			{Name: "lo", Kind: registry.ParamExpr},
			{Name: "hi", Kind: registry.ParamExpr},
			{Name: "n", Kind: registry.ParamExpr},
			{Name: "indicator", Kind: registry.ParamExpr},
			{Name: "index_letter", Kind: registry.ParamRaw},
		},
		Call: func(args registry.Args) (texpr.Expr, error) {
			lo, hi, ind, letter, err := rangeArgs(args)
			if err != nil {
				return nil, err
			}
			n, err := args.Expr("n")
			if err != nil {
				return nil, err
			}
			return IsRangeAtLeastExp(lo, hi, n, ind, letter).Expr, nil
		},
	},
	{
		Name:   "compose",
		Params: []registry.Param{{Name: "a", Kind: registry.ParamExpr}, {Name: "b", Kind: registry.ParamExpr}},
		Call: func(args registry.Args) (texpr.Expr, error) {
			a, b, err := twoExprs(args)
			if err != nil {
				return nil, err
			}
			return Compose(a, b), nil
		},
	},
}

func rangeArgs(args registry.Args) (lo, hi texpr.Expr, ind Indicator, letter string, err error) {
	if lo, err = args.Expr("lo"); err != nil {
		return
	}
	if hi, err = args.Expr("hi"); err != nil {
		return
	}
	if ind, err = indicatorArg(args, "indicator"); err != nil {
		return
	}
	letter, err = args.String("index_letter", DefaultRangeIndex)
	return
}
