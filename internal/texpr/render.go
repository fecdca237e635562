package texpr

import "strings"

// Render serializes the tree to LaTeX. This is the only place grouping
// delimiters are decided, so the invariant "every embedded operand is
// delimited" cannot be broken by an individual formula builder.
func Render(e Expr) string {
	var b strings.Builder
	e.render(&b)
	return b.String()
}

// grouped writes e wrapped in \left( \right). Literals are self-delimiting
// and render bare, except when they carry a leading minus sign: embedding
// "-2" undelimited next to an operator would change the formula's reading.
func grouped(b *strings.Builder, e Expr) {
	if lit, ok := e.(Lit); ok && !strings.HasPrefix(lit.Text, "-") {
		b.WriteString(lit.Text)
		return
	}
	b.WriteString(`\left(`)
	e.render(b)
	b.WriteString(`\right)`)
}

// delimited always wraps, regardless of the node. Used where juxtaposition
// would otherwise merge adjacent tokens (products) and for exponent bases.
func delimited(b *strings.Builder, e Expr) {
	b.WriteString(`\left(`)
	e.render(b)
	b.WriteString(`\right)`)
}

func (l Lit) render(b *strings.Builder) {
	b.WriteString(l.Text)
}

func (a Add) render(b *strings.Builder) {
	grouped(b, a.A)
	b.WriteByte('+')
	grouped(b, a.B)
}

func (d Diff) render(b *strings.Builder) {
	grouped(b, d.A)
	b.WriteByte('-')
	grouped(b, d.B)
}

func (m Mul) render(b *strings.Builder) {
	for _, f := range m.Factors {
		delimited(b, f)
	}
}

func (f Frac) render(b *strings.Builder) {
	// The braces of \frac are themselves grouping delimiters.
	b.WriteString(`\frac{`)
	f.Num.render(b)
	b.WriteString(`}{`)
	f.Den.render(b)
	b.WriteByte('}')
}

func (p Pow) render(b *strings.Builder) {
	// The base is always delimited, even when atomic: "-2^{2}" and
	// "\left(-2\right)^{2}" are different numbers.
	delimited(b, p.Base)
	b.WriteString(`^{`)
	p.Exp.render(b)
	b.WriteByte('}')
}

func (f Floor) render(b *strings.Builder) {
	b.WriteString(`\left\lfloor `)
	f.X.render(b)
	b.WriteString(`\right\rfloor `)
}

func (c Ceil) render(b *strings.Builder) {
	b.WriteString(`\left\lceil `)
	c.X.render(b)
	b.WriteString(`\right\rceil `)
}

func (s Sqrt) render(b *strings.Builder) {
	b.WriteString(`\sqrt`)
	if s.Deg != nil {
		b.WriteString(`[{`)
		s.Deg.render(b)
		b.WriteString(`}]`)
	}
	b.WriteByte('{')
	s.X.render(b)
	b.WriteByte('}')
}

func (f Fn) render(b *strings.Builder) {
	b.WriteString(f.Name)
	delimited(b, f.X)
}

func (f Fact) render(b *strings.Builder) {
	grouped(b, f.X)
	b.WriteByte('!')
}

func (a Apply) render(b *strings.Builder) {
	// The head of a composition stays bare: "f\left(x\right)".
	a.F.render(b)
	delimited(b, a.X)
}

func (s Sum) render(b *strings.Builder) {
	b.WriteString(`\sum_{`)
	b.WriteString(s.Index)
	b.WriteByte('=')
	s.From.render(b)
	b.WriteString(`}^{`)
	s.To.render(b)
	b.WriteByte('}')
	delimited(b, s.Body)
}

func (p Prod) render(b *strings.Builder) {
	b.WriteString(`\prod_{`)
	b.WriteString(p.Index)
	b.WriteByte('=')
	p.From.render(b)
	b.WriteString(`}^{`)
	p.To.render(b)
	b.WriteByte('}')
	delimited(b, p.Body)
}
