package modules

import (
	"strings"

	"ppmdesk.io/ppmdesk/internal/api/handlers"
	"ppmdesk.io/ppmdesk/internal/api/middleware"
	"ppmdesk.io/ppmdesk/internal/config"
)

// NewJWTConfig builds the token settings. Empty rotation keys are skipped.
func NewJWTConfig(cfg *config.Config) middleware.JWTConfig {
	verificationKeys := make([][]byte, 0, len(cfg.Security.JWTVerificationKeys))
	for _, key := range cfg.Security.JWTVerificationKeys {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		verificationKeys = append(verificationKeys, []byte(key))
	}
	return middleware.JWTConfig{
		SigningKey:       []byte(cfg.Security.SessionSecret),
		VerificationKeys: verificationKeys,
		Issuer:           cfg.Security.Issuer,
		ExpiresIn:        cfg.Security.TokenLifetime,
	}
}

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		JWTCfg: NewJWTConfig(cfg),
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
