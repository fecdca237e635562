package grid

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// formulaBlock is one `formula "name" { expr = ... }` block. The expr
// attribute is captured unevaluated so it can be turned into a plain cty
// value with no variables in scope.
type formulaBlock struct {
	Name string         `hcl:"name,label"`
	Expr hcl.Expression `hcl:"expr"`
}

// gridFile is the top-level structure of a .hcl input file.
type gridFile struct {
	Formulas []*formulaBlock `hcl:"formula,block"`
}

// loadHCL decodes every formula block of a .hcl input file, in declaration
// order.
func loadHCL(path string) ([]Formula, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var cfg gridFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if len(cfg.Formulas) == 0 {
		return nil, fmt.Errorf("no formula blocks found in %s", path)
	}

	formulas := make([]Formula, 0, len(cfg.Formulas))
	seen := make(map[string]struct{}, len(cfg.Formulas))
	for _, block := range cfg.Formulas {
		if _, dup := seen[block.Name]; dup {
			return nil, fmt.Errorf("duplicate formula name %q in %s", block.Name, path)
		}
		seen[block.Name] = struct{}{}

		// Formula expressions are static data; no variables or functions are
		// in scope during evaluation.
		root, diags := block.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate formula %q in %s: %w", block.Name, path, diags)
		}
		formulas = append(formulas, Formula{Name: block.Name, Root: root})
	}
	return formulas, nil
}
