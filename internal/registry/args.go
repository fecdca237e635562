package registry

import (
	"errors"
	"fmt"

	"github.com/vk/prog2math/internal/texpr"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ErrMissingArgument reports a required parameter the call graph did not
// supply.
var ErrMissingArgument = errors.New("missing argument")

// Args holds the materialized arguments for one operation call, keyed by
// parameter name. Expression parameters hold texpr.Expr, list parameters hold
// []texpr.Expr, raw parameters hold the verbatim cty.Value.
type Args map[string]any

// Expr returns the required expression argument name.
func (a Args) Expr(name string) (texpr.Expr, error) {
	v, ok := a[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingArgument, name)
	}
	e, ok := v.(texpr.Expr)
	if !ok {
		return nil, fmt.Errorf("argument %q is not an expression", name)
	}
	return e, nil
}

// ExprList returns the required expression-list argument name.
func (a Args) ExprList(name string) ([]texpr.Expr, error) {
	v, ok := a[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingArgument, name)
	}
	es, ok := v.([]texpr.Expr)
	if !ok {
		return nil, fmt.Errorf("argument %q is not an expression list", name)
	}
	return es, nil
}

// String returns the raw string argument name, or def when absent.
func (a Args) String(name, def string) (string, error) {
	v, ok := a[name]
	if !ok {
		return def, nil
	}
	cv, err := rawValue(name, v, cty.String)
	if err != nil {
		return "", err
	}
	return cv.AsString(), nil
}

// Bool returns the raw boolean argument name, or def when absent.
func (a Args) Bool(name string, def bool) (bool, error) {
	v, ok := a[name]
	if !ok {
		return def, nil
	}
	cv, err := rawValue(name, v, cty.Bool)
	if err != nil {
		return false, err
	}
	return cv.True(), nil
}

// Raw returns the required raw argument name as its verbatim cty.Value.
func (a Args) Raw(name string) (cty.Value, error) {
	v, ok := a[name]
	if !ok {
		return cty.NilVal, fmt.Errorf("%w: %q", ErrMissingArgument, name)
	}
	cv, ok := v.(cty.Value)
	if !ok {
		return cty.NilVal, fmt.Errorf("argument %q is not a raw value", name)
	}
	return cv, nil
}

// LiftScalar turns a scalar call-graph value into a literal leaf expression.
// Strings are taken verbatim (they name free variables or LaTeX tokens);
// numbers keep their full decimal form.
func LiftScalar(v cty.Value) (texpr.Expr, error) {
	if v.IsNull() {
		return nil, errors.New("cannot lift a null value into an expression")
	}
	switch v.Type() {
	case cty.String:
		return texpr.Lit{Text: v.AsString()}, nil
	case cty.Number:
		return texpr.Number(v.AsBigFloat()), nil
	default:
		return nil, fmt.Errorf("cannot lift %s value into an expression", v.Type().FriendlyName())
	}
}

func rawValue(name string, v any, want cty.Type) (cty.Value, error) {
	cv, ok := v.(cty.Value)
	if !ok {
		return cty.NilVal, fmt.Errorf("argument %q is not a raw value", name)
	}
	conv, err := convert.Convert(cv, want)
	if err != nil {
		return cty.NilVal, fmt.Errorf("argument %q: %w", name, err)
	}
	if conv.IsNull() {
		return cty.NilVal, fmt.Errorf("argument %q is null", name)
	}
	return conv, nil
}
