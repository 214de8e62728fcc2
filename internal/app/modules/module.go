// Package modules contains the domain-oriented dependency modules of the
// composition root. Each module builds the services and use cases of one
// screen family and hands them to the HTTP server deps.
package modules

import (
	"context"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
)

// Module represents a domain-specific dependency unit in the composition root.
type Module interface {
	// Name returns a stable module identifier for logging/debugging.
	Name() string

	// ContributeServerDeps injects module-owned dependencies into the HTTP server deps.
	ContributeServerDeps(*handlers.ServerDeps)

	// Shutdown performs module-local graceful cleanup.
	Shutdown(context.Context) error
}
