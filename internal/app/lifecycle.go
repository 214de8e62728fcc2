package app

import (
	"context"

	"go.uber.org/zap"

	"ppmdesk.io/ppmdesk/internal/pkg/logger"
)

// Shutdown gracefully shuts down all application components. In-flight
// pool tasks get the pool release timeout to finish.
func (a *Application) Shutdown() {
	shutdownCtx := context.Background()

	for _, mod := range a.Modules {
		if mod == nil {
			continue
		}
		if err := mod.Shutdown(shutdownCtx); err != nil {
			logger.Warn("module shutdown returned error",
				zap.String("module", mod.Name()),
				zap.Error(err),
			)
		}
	}

	if a.Pools != nil {
		a.Pools.Shutdown()
	}
}
