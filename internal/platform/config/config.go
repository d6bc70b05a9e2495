package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const minJWTKeyLength = 32

// Config is the process configuration, loaded once by the CLI and handed down
// to constructors. Nothing reads it globally.
type Config struct {
	Server     Server
	Database   DatabaseConfig
	Redis      RedisConfig
	Kafka      KafkaConfig
	Logging    LoggingConfig
	Auth       AuthConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig
	Federation FederationConfig
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	Environment     string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
	TrustProxy      bool
}

// DatabaseConfig selects Postgres when URL is set; in-memory stores otherwise.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	TxTimeout       time.Duration
}

// RedisConfig enables the planet cache when URL is set.
type RedisConfig struct {
	URL           string
	PoolSize      int
	MinIdleConns  int
	DialTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	RouteCacheTTL time.Duration
}

// KafkaConfig enables the Kafka event publisher when Brokers is non-empty.
type KafkaConfig struct {
	Brokers            []string
	Topic              string
	Partitions         int32
	ReplicationFactor  int16
	OutboxPollInterval time.Duration
	OutboxBatchSize    int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// AuthConfig enables bearer auth on write routes when SigningKey is set.
type AuthConfig struct {
	SigningKey string
	Issuer     string
	Audience   string
	TokenTTL   time.Duration
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
}

type CORSConfig struct {
	AllowedOrigins []string
	Debug          bool
}

// FederationConfig holds the simulation's tunable rules.
type FederationConfig struct {
	RefuelCostPerUnit int64
	UniverseFile      string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables without touching .env.
func FromEnv() (*Config, error) {
	var p parser
	cfg := &Config{
		Server: Server{
			Addr:            getEnv("SERVER_ADDR", ":8080"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ReadTimeout:     p.duration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    p.duration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     p.duration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: p.duration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			TrustProxy:      p.boolean("TRUST_PROXY", false),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    p.integer("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    p.integer("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			TxTimeout:       p.duration("DB_TX_TIMEOUT", 5*time.Second),
		},
		Redis: RedisConfig{
			URL:           getEnv("REDIS_URL", ""),
			PoolSize:      p.integer("REDIS_POOL_SIZE", 10),
			MinIdleConns:  p.integer("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:   p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:   p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:  p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			RouteCacheTTL: p.duration("ROUTE_CACHE_TTL", 10*time.Minute),
		},
		Kafka: KafkaConfig{
			Brokers:            splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:              getEnv("KAFKA_TOPIC", "federation.events"),
			Partitions:         int32(p.integer("KAFKA_TOPIC_PARTITIONS", 3)),
			ReplicationFactor:  int16(p.integer("KAFKA_TOPIC_REPLICATION", 1)),
			OutboxPollInterval: p.duration("OUTBOX_POLL_INTERVAL", time.Second),
			OutboxBatchSize:    p.integer("OUTBOX_BATCH_SIZE", 100),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			SigningKey: getEnv("JWT_SIGNING_KEY", ""),
			Issuer:     getEnv("JWT_ISSUER", "intergalactic-federation"),
			Audience:   getEnv("JWT_AUDIENCE", "federation-api"),
			TokenTTL:   p.duration("JWT_TOKEN_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			Enabled:           p.boolean("RATE_LIMIT_ENABLED", false),
			RequestsPerSecond: p.float("RATE_LIMIT_RPS", 10),
			BurstSize:         p.integer("RATE_LIMIT_BURST", 20),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
			Debug:          p.boolean("CORS_DEBUG", false),
		},
		Federation: FederationConfig{
			RefuelCostPerUnit: int64(p.integer("REFUEL_COST_PER_UNIT", 7)),
			UniverseFile:      getEnv("UNIVERSE_FILE", ""),
		},
	}
	if err := errors.Join(p.errs...); err != nil {
		return nil, fmt.Errorf("parse configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("SERVER_ADDR is required"))
	}
	if c.Auth.SigningKey != "" && len(c.Auth.SigningKey) < minJWTKeyLength {
		errs = append(errs, fmt.Errorf("JWT_SIGNING_KEY must be at least %d characters long", minJWTKeyLength))
	}
	if c.Federation.RefuelCostPerUnit <= 0 {
		errs = append(errs, errors.New("REFUEL_COST_PER_UNIT must be positive"))
	}
	if c.Kafka.OutboxBatchSize <= 0 {
		errs = append(errs, errors.New("OUTBOX_BATCH_SIZE must be positive"))
	}
	if c.Kafka.OutboxPollInterval <= 0 {
		errs = append(errs, errors.New("OUTBOX_POLL_INTERVAL must be positive"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.BurstSize <= 0) {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive when rate limiting is enabled"))
	}
	if c.Database.TxTimeout <= 0 {
		errs = append(errs, errors.New("DB_TX_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func (c *Config) PostgresEnabled() bool { return c.Database.URL != "" }
func (c *Config) RedisEnabled() bool    { return c.Redis.URL != "" }
func (c *Config) KafkaEnabled() bool    { return len(c.Kafka.Brokers) > 0 }
func (c *Config) AuthEnabled() bool     { return c.Auth.SigningKey != "" }

// LogValue keeps secrets out of structured logs.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", c.Server.Addr),
		slog.String("environment", c.Server.Environment),
		slog.Bool("postgres", c.PostgresEnabled()),
		slog.Bool("redis", c.RedisEnabled()),
		slog.Bool("kafka", c.KafkaEnabled()),
		slog.Bool("auth", c.AuthEnabled()),
		slog.Bool("rate_limit", c.RateLimit.Enabled),
		slog.Int64("refuel_cost_per_unit", c.Federation.RefuelCostPerUnit),
	)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser collects every malformed variable so a bad deploy reports them all at once.
type parser struct {
	errs []error
}

func (p *parser) integer(key string, fallback int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (p *parser) float(key string, fallback float64) float64 {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (p *parser) boolean(key string, fallback bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}
