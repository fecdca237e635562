package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/prog2math/internal/ctxlog"
	"github.com/vk/prog2math/internal/registry"
	"github.com/vk/prog2math/internal/texpr"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrOperationNotFound reports a call-graph name absent from the registry.
	ErrOperationNotFound = errors.New("operation not found")

	// ErrUnknownArgument reports an argument that names no declared parameter
	// of the resolved operation.
	ErrUnknownArgument = errors.New("unknown argument")

	// ErrMalformedInput reports a root node that is not a single-entry mapping.
	ErrMalformedInput = errors.New("input must be a single-entry mapping")

	// ErrMalformedArgument reports a nested argument that is neither a scalar
	// nor a single-entry mapping.
	ErrMalformedArgument = errors.New("malformed argument")

	// ErrDepthExceeded reports call-graph nesting beyond the configured limit.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// DefaultMaxDepth bounds call-graph nesting when the caller does not choose a
// limit. Hand-written formulas stay far below it; only adversarial or broken
// input gets near.
const DefaultMaxDepth = 64

// Builder materializes call graphs against one immutable registry.
type Builder struct {
	reg      *registry.Registry
	maxDepth int
}

// New creates a Builder over reg with the default depth limit.
func New(reg *registry.Registry) *Builder {
	return &Builder{reg: reg, maxDepth: DefaultMaxDepth}
}

// WithMaxDepth returns a copy of the builder using the given nesting limit.
// Limits below 1 fall back to the default.
func (b *Builder) WithMaxDepth(limit int) *Builder {
	if limit < 1 {
		limit = DefaultMaxDepth
	}
	return &Builder{reg: b.reg, maxDepth: limit}
}

// Build turns the root call-graph node into an expression tree. The root
// must be a single-entry mapping {operationName: argumentsMapping}.
func (b *Builder) Build(ctx context.Context, root cty.Value) (texpr.Expr, error) {
	logger := ctxlog.FromContext(ctx)

	name, argsVal, err := singleEntry(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	logger.Debug("Build: starting call-graph materialization.", "operation", name)

	expr, err := b.call(ctx, name, argsVal, 0)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: call-graph materialization finished.", "operation", name)
	return expr, nil
}

// call resolves one operation invocation and materializes its arguments.
func (b *Builder) call(ctx context.Context, name string, argsVal cty.Value, depth int) (texpr.Expr, error) {
	if depth > b.maxDepth {
		return nil, fmt.Errorf("%w (%d)", ErrDepthExceeded, b.maxDepth)
	}

	op, ok := b.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperationNotFound, name)
	}

	if argsVal.IsNull() || !isMapping(argsVal.Type()) {
		return nil, fmt.Errorf("%w: arguments of %q must be a mapping", ErrMalformedArgument, name)
	}

	args := registry.Args{}
	for it := argsVal.ElementIterator(); it.Next(); {
		k, v := it.Element()
		argName := k.AsString()
		param, ok := op.Param(argName)
		if !ok {
			return nil, fmt.Errorf("%w: %q for operation %q", ErrUnknownArgument, argName, name)
		}

		switch param.Kind {
		case registry.ParamRaw:
			// Raw parameters take the value verbatim; no lifting, no recursion.
			args[argName] = v

		case registry.ParamExpr:
			expr, err := b.materialize(ctx, v, depth)
			if err != nil {
				return nil, fmt.Errorf("argument %q of operation %q: %w", argName, name, err)
			}
			args[argName] = expr

		case registry.ParamExprList:
			if !v.CanIterateElements() || isMapping(v.Type()) {
				return nil, fmt.Errorf("%w: %q of operation %q must be a list", ErrMalformedArgument, argName, name)
			}
			exprs := make([]texpr.Expr, 0, v.LengthInt())
			for elems := v.ElementIterator(); elems.Next(); {
				_, elem := elems.Element()
				expr, err := b.materialize(ctx, elem, depth)
				if err != nil {
					return nil, fmt.Errorf("argument %q of operation %q: %w", argName, name, err)
				}
				exprs = append(exprs, expr)
			}
			args[argName] = exprs
		}
	}

	expr, err := op.Call(args)
	if err != nil {
		return nil, fmt.Errorf("operation %q: %w", name, err)
	}
	return expr, nil
}

// materialize turns one expression-kind argument value into an expression:
// scalars lift into literal leaves, single-entry mappings recurse.
func (b *Builder) materialize(ctx context.Context, v cty.Value, depth int) (texpr.Expr, error) {
	if !v.IsNull() && isMapping(v.Type()) {
		name, argsVal, err := singleEntry(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedArgument, err)
		}
		return b.call(ctx, name, argsVal, depth+1)
	}
	expr, err := registry.LiftScalar(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArgument, err)
	}
	return expr, nil
}

// singleEntry unwraps a mapping that must hold exactly one entry.
func singleEntry(v cty.Value) (string, cty.Value, error) {
	if v.IsNull() || !isMapping(v.Type()) {
		return "", cty.NilVal, errors.New("not a mapping")
	}
	if n := v.LengthInt(); n != 1 {
		return "", cty.NilVal, fmt.Errorf("mapping has %d entries, want exactly 1", n)
	}
	it := v.ElementIterator()
	it.Next()
	k, inner := it.Element()
	return k.AsString(), inner, nil
}

func isMapping(t cty.Type) bool {
	return t.IsObjectType() || t.IsMapType()
}
