package testutil

import "ppmdesk.io/ppmdesk/internal/pkg/logger"

// Packages that import testutil get a quiet global logger.
func init() {
	_ = logger.Init("error", "json")
}
