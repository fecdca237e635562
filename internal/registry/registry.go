package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/prog2math/internal/texpr"
)

var (
	// ErrDuplicateOperation reports two distinct operations registered under
	// one name. This is a defect in the catalog, not in user input.
	ErrDuplicateOperation = errors.New("operation name already registered")

	// ErrDuplicateType reports two distinct expression types registered
	// under one name.
	ErrDuplicateType = errors.New("type name already registered")
)

// ParamKind tags how the builder materializes an argument for a parameter.
type ParamKind int

const (
	// ParamExpr accepts a scalar literal or a nested call, producing one
	// expression.
	ParamExpr ParamKind = iota
	// ParamExprList accepts a list whose elements are each a scalar literal
	// or a nested call.
	ParamExprList
	// ParamRaw accepts a primitive value verbatim, with no recursion.
	ParamRaw
)

// Param is one declared parameter of an operation.
type Param struct {
	Name string
	Kind ParamKind
}

// Operation is a named, pure formula builder invocable by the graph builder.
type Operation struct {
	Name   string
	Params []Param
	Call   func(args Args) (texpr.Expr, error)
}

// Param returns the declared parameter with the given name.
func (op *Operation) Param(name string) (Param, bool) {
	for _, p := range op.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Type describes an expression type whose constructor participates in the
// flat operation namespace under the type's own name.
type Type struct {
	Name string
	New  *Operation
}

// Registry maps operation names to operations and type names to type
// descriptors. Populate it fully before sharing it; it is read-only after
// that and safe for concurrent lookups.
type Registry struct {
	ops   map[string]*Operation
	types map[string]*Type
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		ops:   make(map[string]*Operation),
		types: make(map[string]*Type),
	}
}

// Register adds an operation to the catalog. Registering the identical
// descriptor again is a no-op; a different operation under an existing name
// fails with ErrDuplicateOperation.
func (r *Registry) Register(op *Operation) error {
	if prev, ok := r.ops[op.Name]; ok {
		if prev == op {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrDuplicateOperation, op.Name)
	}
	r.ops[op.Name] = op
	return nil
}

// MustRegister registers an operation and panics on error. Use it for the
// static catalog built at startup, where a duplicate is unrecoverable.
func (r *Registry) MustRegister(op *Operation) {
	if err := r.Register(op); err != nil {
		panic(err)
	}
}

// RegisterType adds a type descriptor and registers its constructor under the
// type's name.
func (r *Registry) RegisterType(t *Type) error {
	if prev, ok := r.types[t.Name]; ok {
		if prev == t {
			return nil
		}
		return fmt.Errorf("%w: %q", ErrDuplicateType, t.Name)
	}
	if err := r.Register(t.New); err != nil {
		return err
	}
	r.types[t.Name] = t
	return nil
}

// Lookup resolves an operation by name.
func (r *Registry) Lookup(name string) (*Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// LookupType resolves a type descriptor by name.
func (r *Registry) LookupType(name string) (*Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Names returns every registered operation name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
