package texpr

import (
	"math/big"
	"strings"
)

// Expr is a single node of a LaTeX formula tree. The node method is
// unexported, which keeps the set of implementations closed to this package.
type Expr interface {
	render(b *strings.Builder)
}

// Lit is an atomic token: a number, a free variable such as "n", or a LaTeX
// constant such as `\pi`. Its text is emitted verbatim.
type Lit struct {
	Text string
}

// Add is the sum A+B.
type Add struct {
	A, B Expr
}

// Diff is the difference A-B.
type Diff struct {
	A, B Expr
}

// Mul is a product rendered as juxtaposition of delimited factors.
// Callers must supply at least one factor.
type Mul struct {
	Factors []Expr
}

// Frac is the fraction Num over Den.
type Frac struct {
	Num, Den Expr
}

// Pow is Base raised to Exp. The renderer always delimits the base.
type Pow struct {
	Base, Exp Expr
}

// Floor is the floor of X.
type Floor struct {
	X Expr
}

// Ceil is the ceiling of X.
type Ceil struct {
	X Expr
}

// Sqrt is the Deg-th root of X; a nil Deg means the square root.
type Sqrt struct {
	X   Expr
	Deg Expr
}

// Fn is the application of a named LaTeX function, e.g. `\cos`, to X.
type Fn struct {
	Name string
	X    Expr
}

// Fact is the factorial X!.
type Fact struct {
	X Expr
}

// Apply is functional composition F(X), with F rendered as the head.
type Apply struct {
	F, X Expr
}

// Sum is the summation of Body over integer Index from From to To.
type Sum struct {
	Index    string
	From, To Expr
	Body     Expr
}

// Prod is the product of Body over integer Index from From to To.
type Prod struct {
	Index    string
	From, To Expr
	Body     Expr
}

// Int returns a literal for the given integer.
func Int(n int) Lit {
	return Lit{Text: big.NewInt(int64(n)).String()}
}

// Number returns a literal for an arbitrary-precision number, formatted
// without an exponent and without trailing zeros ("3", "0.5", "-2.25").
func Number(f *big.Float) Lit {
	return Lit{Text: f.Text('f', -1)}
}

// Pi is the literal for the circle constant.
var Pi = Lit{Text: `\pi`}
