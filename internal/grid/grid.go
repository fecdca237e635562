package grid

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/prog2math/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Formula is one named call graph decoded from an input file.
type Formula struct {
	Name string
	Root cty.Value
}

// Load decodes the input file at path into its formulas, dispatching on the
// file extension.
func Load(ctx context.Context, path string) ([]Formula, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading input file.", "path", path)

	var (
		formulas []Formula
		err      error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		formulas, err = loadJSON(path)
	case ".hcl":
		formulas, err = loadHCL(path)
	default:
		return nil, fmt.Errorf("unsupported input extension %q (want .json or .hcl)", ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Input file loaded.", "path", path, "formulas", len(formulas))
	return formulas, nil
}
