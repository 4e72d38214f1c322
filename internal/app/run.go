package app

import (
	"context"
	"io"

	"github.com/avrkit/partscope/internal/ctxlog"
	"github.com/avrkit/partscope/internal/inspect"
	"github.com/avrkit/partscope/internal/shell"
)

// Run executes the main application logic: describe the requested parts
// once each, or start the interactive shell when none were named.
func (a *App) Run(ctx context.Context, inR io.Reader) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.config.PartNames) > 0 {
		for _, name := range a.config.PartNames {
			inspect.Describe(a.outW, a.registry, name)
		}
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	sh := shell.New(a.registry, inR, a.outW)
	if err := sh.Run(ctx); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
