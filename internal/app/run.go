package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/prog2math/internal/ctxlog"
	"github.com/vk/prog2math/internal/grid"
	"github.com/vk/prog2math/internal/texpr"
)

// Run executes the main application logic: decode the input file, build every
// formula, and write the rendered LaTeX. Errors abort before anything is
// written, so a partial formula never reaches the output.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	formulas, err := grid.Load(ctx, cfg.InputPath)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	rendered := make([]string, len(formulas))
	for i, f := range formulas {
		a.logger.Debug("Building formula.", "name", f.Name)
		expr, err := a.builder.Build(ctx, f.Root)
		if err != nil {
			return fmt.Errorf("failed to build formula %q: %w", f.Name, err)
		}
		rendered[i] = texpr.Render(expr)
	}
	a.logger.Info("All formulas built.", "count", len(rendered))

	out := a.outW
	if cfg.OutputPath != "" {
		file, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := writeFormulas(out, formulas, rendered); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeFormulas emits one formula per line. With more than one formula, each
// is preceded by a LaTeX comment naming it.
func writeFormulas(w io.Writer, formulas []grid.Formula, rendered []string) error {
	for i, tex := range rendered {
		if len(rendered) > 1 {
			if _, err := fmt.Fprintf(w, "%% %s\n", formulas[i].Name); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, tex); err != nil {
			return err
		}
	}
	return nil
}

// Banner writes the startup banner to w.
func Banner(w io.Writer) {
	fmt.Fprintln(w, banner)
}
