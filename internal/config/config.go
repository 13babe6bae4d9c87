package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Environment switches development-only behavior such as stack traces in
	// 500 responses.
	Environment            string `mapstructure:"environment"              validate:"required,oneof=development production test"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	// AllowedOrigins feeds the CORS middleware. "*" allows any origin.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"min=1"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable it only behind a proxy that sets those headers, since
	// the address keys the per-IP login limit.
	TrustProxyHeaders bool `mapstructure:"trust_proxy_headers"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c ServerConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url"                       validate:"required,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gt=0"`
	AutoMigrate            bool   `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`

	// Both bootstrap fields must be set for an initial admin to be created.
	BootstrapAdminUsername string `mapstructure:"bootstrap_admin_username" validate:"omitempty,min=3,max=50"`
	BootstrapAdminPassword string `mapstructure:"bootstrap_admin_password" validate:"required_with=BootstrapAdminUsername,omitempty,min=6,max=72"`
}

// RateLimitConfig configures login throttling. Throttling is disabled when
// RedisURL is empty.
type RateLimitConfig struct {
	RedisURL             string `mapstructure:"redis_url"              validate:"omitempty,url"`
	MaxLoginAttempts     int    `mapstructure:"max_login_attempts"     validate:"gt=0"`
	LoginCooldownSeconds int    `mapstructure:"login_cooldown_seconds" validate:"gt=0"`
	ThrottleByIP         bool   `mapstructure:"throttle_by_ip"`
}

// Enabled reports whether login throttling should be wired.
func (c RateLimitConfig) Enabled() bool {
	return c.RedisURL != ""
}
