package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/avrkit/partscope/internal/builddir"
	"github.com/avrkit/partscope/internal/config"
	"github.com/avrkit/partscope/internal/ctxlog"
	"github.com/avrkit/partscope/internal/fsutil"
	"github.com/avrkit/partscope/internal/registry"
)

// ConfigFileName is the configuration file looked for in each search
// location.
const ConfigFileName = "avrdude.conf"

// ErrNoConfig is returned when no search location contains a configuration
// file. It is fatal at startup.
var ErrNoConfig = errors.New("sorry, no " + ConfigFileName + " could be found")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	config   *Config
}

// NewApp is the constructor for the main application. It resolves the
// configuration file, loads it through the given loader, and returns a
// fully initialized App instance with its own isolated logger and
// registry.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	path, err := findConfigFile(ctx, appConfig.ConfigPath)
	if err != nil {
		return nil, err
	}

	model, err := loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded into unified model.", "parts", len(model.Parts))

	reg := registry.New()
	reg.PopulateFromModel(model)
	if err := reg.Validate(ctx); err != nil {
		return nil, err
	}
	logger.Debug("Registry populated and validated.", "parts", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		config:   appConfig,
	}, nil
}

// findConfigFile returns the path of the configuration file to load. An
// explicit path wins; otherwise the candidate directories are probed in
// order and the first hit is taken, with no merging of later candidates.
func findConfigFile(ctx context.Context, explicit string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if explicit != "" {
		logger.Debug("Using explicit configuration file.", "path", explicit)
		return explicit, nil
	}

	dirs := []string{builddir.Resolve(ctx), "/etc", "/usr/local/etc"}
	path, ok := fsutil.FindFirstFile(dirs, ConfigFileName)
	if !ok {
		return "", ErrNoConfig
	}

	logger.Info("Found "+ConfigFileName+".", "path", path)
	return path, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
