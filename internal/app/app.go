package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/prog2math/internal/algebra"
	"github.com/vk/prog2math/internal/builder"
	"github.com/vk/prog2math/internal/registry"
)

// banner is printed to the diagnostic stream unless quiet mode is on.
const banner = "prog2math - turns programs into mathematical formulae (LaTeX)"

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	reg     *registry.Registry
	builder *builder.Builder
}

// NewApp is the constructor for the main application. It builds the operation
// registry eagerly, so the catalog is immutable shared data before any
// formula is built. A catalog defect (duplicate operation name) is a
// programmer error and panics; main recovers it into a clean exit.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if err := algebra.Register(reg); err != nil {
		panic(fmt.Errorf("failed to build operation registry: %w", err))
	}
	logger.Debug("Operation registry built.", "operations", len(reg.Names()))

	return &App{
		outW:    outW,
		logger:  logger,
		reg:     reg,
		builder: builder.New(reg).WithMaxDepth(cfg.MaxDepth),
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.reg
}
