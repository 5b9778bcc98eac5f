package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Bot      BotConfig      `yaml:"bot"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds service-token settings for bot-to-API calls.
type AuthConfig struct {
	TokenSecret string        `yaml:"token_secret" env:"AUTH_TOKEN_SECRET" env-required:"true"`
	TokenIssuer string        `yaml:"token_issuer" env:"AUTH_TOKEN_ISSUER" env-default:"circleback"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"AUTH_TOKEN_TTL"    env-default:"5m"`
}

// BotConfig holds settings consumed by the bot-facing helper layer.
// MessageLimit is the hard per-message size budget of the messaging platform;
// the log windower never produces more than this many bytes when a fitting
// suffix exists.
type BotConfig struct {
	APIBaseURL       string  `yaml:"api_base_url"      env:"BOT_API_BASE_URL"      env-default:"http://localhost:8080/api/v1"`
	MessageLimit     int     `yaml:"message_limit"     env:"BOT_MESSAGE_LIMIT"     env-default:"4000"`
	SearchLimit      int     `yaml:"search_limit"      env:"BOT_SEARCH_LIMIT"      env-default:"3"`
	SimilarityCutoff float64 `yaml:"similarity_cutoff" env:"BOT_SIMILARITY_CUTOFF" env-default:"0.6"`
	DigestDays       int     `yaml:"digest_days"       env:"BOT_DIGEST_DAYS"       env-default:"7"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
