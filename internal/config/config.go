// Package config provides configuration management for PPM Desk.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (HASURA_ENDPOINT, HASURA_ADMIN_SECRET, SERVER_PORT, ...)
// 3. Default values
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the root configuration structure.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Hasura       HasuraConfig       `mapstructure:"hasura"`
	Log          LogConfig          `mapstructure:"log"`
	Security     SecurityConfig     `mapstructure:"security"`
	Worker       WorkerConfig       `mapstructure:"worker"`
	BulkRevision BulkRevisionConfig `mapstructure:"bulk_revision"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	AllowCredentials      bool     `mapstructure:"allow_credentials"`
	UnsafeAllowAllOrigins bool     `mapstructure:"unsafe_allow_all_origins"`
}

// HasuraConfig contains the upstream GraphQL endpoint settings.
// The admin secret is only ever sent from this process to Hasura.
type HasuraConfig struct {
	Endpoint    string        `mapstructure:"endpoint"`
	AdminSecret string        `mapstructure:"admin_secret"`
	Role        string        `mapstructure:"role"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// SecurityConfig contains operator authentication settings.
type SecurityConfig struct {
	SessionSecret string `mapstructure:"session_secret"`
	// JWTVerificationKeys lists previous signing secrets still accepted
	// during rotation.
	JWTVerificationKeys []string         `mapstructure:"jwt_verification_keys"`
	TokenLifetime       time.Duration    `mapstructure:"token_lifetime"`
	Issuer              string           `mapstructure:"issuer"`
	Operators           []OperatorConfig `mapstructure:"operators"`
}

// OperatorConfig is one console operator allowed to log in.
type OperatorConfig struct {
	Username     string   `mapstructure:"username"`
	PasswordHash string   `mapstructure:"password_hash"` // bcrypt
	Roles        []string `mapstructure:"roles"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	QueryPoolSize    int `mapstructure:"query_pool_size"`
	MutationPoolSize int `mapstructure:"mutation_pool_size"`
}

// BulkRevisionConfig controls how bulk edits reach Hasura.
type BulkRevisionConfig struct {
	// Atomic sends the row updates and the audit inserts as one mutation
	// document, which Hasura executes in a single transaction.
	Atomic bool `mapstructure:"atomic"`
}

var (
	bootstrapLoggerOnce sync.Once
	bootstrapLogger     *zap.Logger
)

// Load reads configuration from the default search paths and environment variables.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from path when non-empty, otherwise from the
// default search paths. Environment variables always take precedence.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/ppmdesk")
	}

	// Maps nested config: hasura.admin_secret → HASURA_ADMIN_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.ensureSecrets(); err != nil {
		return nil, fmt.Errorf("ensure secrets: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Security.SessionSecret == "" {
		return fmt.Errorf("security.session_secret must not be empty")
	}
	if len(c.Security.SessionSecret) < 32 {
		return fmt.Errorf("security.session_secret must be at least 32 characters")
	}
	if c.Security.TokenLifetime <= 0 {
		return fmt.Errorf("security.token_lifetime must be positive")
	}
	for i, op := range c.Security.Operators {
		if op.Username == "" {
			return fmt.Errorf("security.operators[%d].username must not be empty", i)
		}
		if !strings.HasPrefix(op.PasswordHash, "$2") {
			return fmt.Errorf("security.operators[%d].password_hash must be a bcrypt hash", i)
		}
	}

	u, err := url.Parse(c.Hasura.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("hasura.endpoint must be an absolute URL, got %q", c.Hasura.Endpoint)
	}
	if c.Hasura.Timeout <= 0 {
		return fmt.Errorf("hasura.timeout must be positive")
	}

	if c.Worker.QueryPoolSize <= 0 || c.Worker.MutationPoolSize <= 0 {
		return fmt.Errorf("worker pool sizes must be positive")
	}
	return nil
}

// ensureSecrets auto-generates a session secret when none is configured.
// Tokens signed with it do not survive a restart.
func (c *Config) ensureSecrets() error {
	if c.Security.SessionSecret == "" {
		secret, err := generateSecureRandomHex(32)
		if err != nil {
			return fmt.Errorf("auto-generate session secret: %w", err)
		}
		c.Security.SessionSecret = secret
		logBootstrapWarn(
			"auto-generated session_secret; set SECURITY_SESSION_SECRET env var for persistence",
			zap.Int("length", len(secret)),
		)
	}
	if c.Hasura.AdminSecret == "" {
		logBootstrapWarn("hasura.admin_secret is empty; requests rely on the unauthenticated role")
	}
	return nil
}

func logBootstrapWarn(msg string, fields ...zap.Field) {
	bootstrapLoggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)

		l, err := cfg.Build()
		if err != nil {
			bootstrapLogger = zap.NewNop()
			return
		}
		bootstrapLogger = l
	})

	bootstrapLogger.Warn(msg, fields...)
}

// generateSecureRandomHex produces a hex-encoded string of n random bytes.
func generateSecureRandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("crypto/rand: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.allow_credentials", true)
	v.SetDefault("server.unsafe_allow_all_origins", false)

	// Hasura
	v.SetDefault("hasura.endpoint", "http://localhost:8081/v1/graphql")
	v.SetDefault("hasura.admin_secret", "")
	v.SetDefault("hasura.role", "")
	v.SetDefault("hasura.timeout", "15s")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Security
	v.SetDefault("security.jwt_verification_keys", []string{})
	v.SetDefault("security.token_lifetime", "8h")
	v.SetDefault("security.issuer", "ppmdesk")

	// Worker pools
	v.SetDefault("worker.query_pool_size", 64)
	v.SetDefault("worker.mutation_pool_size", 16)

	// Bulk revision
	v.SetDefault("bulk_revision.atomic", false)
}
