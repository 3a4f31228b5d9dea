package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/nodecalc/internal/config"
	"github.com/specialistvlad/nodecalc/internal/ctxlog"
	"github.com/specialistvlad/nodecalc/internal/registry"
	"github.com/specialistvlad/nodecalc/internal/session"
	"github.com/specialistvlad/nodecalc/modules"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	seed     *config.Seed
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Without modules, every compiled-in operator is registered.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, mods ...registry.Module) *App {
	logger := newLogger(appConfig, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	if len(mods) == 0 {
		mods = modules.Core()
	}
	reg := registry.New(mods...)
	logger.Debug("All Go modules registered.", "count", len(mods), "types", reg.Types())

	// Validate the integrity of the registry.
	if err := reg.Validate(ctx); err != nil {
		// A broken compiled-in operator is a programmer error, so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	var seed *config.Seed
	if appConfig.Demo {
		seed = &config.Seed{Graph: session.DemoGraph()}
		logger.Debug("Using the built-in demo graph.")
	} else {
		var err error
		seed, err = loader.Load(ctx, appConfig.GraphPath)
		if err != nil {
			// A failure to load the seed graph is a fatal startup error.
			panic(fmt.Errorf("failed to load graph: %w", err))
		}
	}
	logger.Debug("Seed graph loaded.", "graph", seed.Graph.ID, "files", len(seed.Files))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		seed:     seed,
		config:   appConfig,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
