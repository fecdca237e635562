package grid

import (
	"fmt"
	"os"

	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// DefaultFormulaName names the single formula a raw JSON call graph holds.
const DefaultFormulaName = "main"

// loadJSON decodes a raw JSON call graph. Shape validation (single-entry
// root, argument cardinality) belongs to the builder, not here.
func loadJSON(path string) ([]Formula, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	implied, err := ctyjson.ImpliedType(data)
	if err != nil {
		return nil, fmt.Errorf("failed to type JSON input %s: %w", path, err)
	}
	root, err := ctyjson.Unmarshal(data, implied)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON input %s: %w", path, err)
	}

	return []Formula{{Name: DefaultFormulaName, Root: root}}, nil
}
