package registry

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/prog2math/internal/texpr"
	"github.com/zclconf/go-cty/cty"
)

func dummyOp(name string) *Operation {
	return &Operation{
		Name:   name,
		Params: []Param{{Name: "a", Kind: ParamExpr}},
		Call: func(args Args) (texpr.Expr, error) {
			return args.Expr("a")
		},
	}
}

func TestRegister_DuplicateNameIsConfigurationError(t *testing.T) {
	t.Parallel()

	reg := New()
	require.NoError(t, reg.Register(dummyOp("op")))

	err := reg.Register(dummyOp("op"))
	require.ErrorIs(t, err, ErrDuplicateOperation)
	require.ErrorContains(t, err, `"op"`)
}

func TestRegister_IdenticalReRegistrationIsNoOp(t *testing.T) {
	t.Parallel()

	reg := New()
	op := dummyOp("op")
	require.NoError(t, reg.Register(op))
	require.NoError(t, reg.Register(op))

	got, ok := reg.Lookup("op")
	require.True(t, ok)
	require.Same(t, op, got)
	require.Equal(t, []string{"op"}, reg.Names())
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.MustRegister(dummyOp("op"))
	require.Panics(t, func() { reg.MustRegister(dummyOp("op")) })
}

func TestRegisterType_BindsConstructorUnderTypeName(t *testing.T) {
	t.Parallel()

	reg := New()
	typ := &Type{Name: "thing", New: dummyOp("thing")}
	require.NoError(t, reg.RegisterType(typ))
	require.NoError(t, reg.RegisterType(typ)) // identical re-registration

	gotType, ok := reg.LookupType("thing")
	require.True(t, ok)
	require.Same(t, typ, gotType)

	gotOp, ok := reg.Lookup("thing")
	require.True(t, ok)
	require.Same(t, typ.New, gotOp)

	err := reg.RegisterType(&Type{Name: "thing", New: dummyOp("thing")})
	require.ErrorIs(t, err, ErrDuplicateType)
}

func TestOperation_Param(t *testing.T) {
	t.Parallel()

	op := &Operation{Name: "op", Params: []Param{
		{Name: "a", Kind: ParamExpr},
		{Name: "flag", Kind: ParamRaw},
	}}

	p, ok := op.Param("flag")
	require.True(t, ok)
	require.Equal(t, ParamRaw, p.Kind)

	_, ok = op.Param("missing")
	require.False(t, ok)
}

func TestArgs_Accessors(t *testing.T) {
	t.Parallel()

	args := Args{
		"a":      texpr.Expr(texpr.Lit{Text: "x"}),
		"many":   []texpr.Expr{texpr.Int(1), texpr.Int(2)},
		"letter": cty.StringVal("q"),
		"flag":   cty.True,
	}

	e, err := args.Expr("a")
	require.NoError(t, err)
	require.Equal(t, "x", texpr.Render(e))

	es, err := args.ExprList("many")
	require.NoError(t, err)
	require.Len(t, es, 2)

	s, err := args.String("letter", "k")
	require.NoError(t, err)
	require.Equal(t, "q", s)

	s, err = args.String("absent", "k")
	require.NoError(t, err)
	require.Equal(t, "k", s)

	b, err := args.Bool("flag", false)
	require.NoError(t, err)
	require.True(t, b)

	b, err = args.Bool("absent", false)
	require.NoError(t, err)
	require.False(t, b)

	_, err = args.Expr("absent")
	require.ErrorIs(t, err, ErrMissingArgument)
	_, err = args.ExprList("absent")
	require.ErrorIs(t, err, ErrMissingArgument)
	_, err = args.Raw("absent")
	require.ErrorIs(t, err, ErrMissingArgument)
}

func TestLiftScalar(t *testing.T) {
	t.Parallel()

	e, err := LiftScalar(cty.StringVal("n"))
	require.NoError(t, err)
	require.Equal(t, "n", texpr.Render(e))

	e, err = LiftScalar(cty.NumberVal(big.NewFloat(0.5)))
	require.NoError(t, err)
	require.Equal(t, "0.5", texpr.Render(e))

	e, err = LiftScalar(cty.NumberIntVal(-3))
	require.NoError(t, err)
	require.Equal(t, "-3", texpr.Render(e))

	_, err = LiftScalar(cty.True)
	require.Error(t, err)
}
