package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Redis   RedisConfig
	Seed    SeedConfig
	Booking BookingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StorageConfig struct {
	Driver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"flights"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8501"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Idempotency-Replayed"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// An empty Addr disables idempotent replay.
type RedisConfig struct {
	Addr           string        `envconfig:"REDIS_ADDR"`
	Password       string        `envconfig:"REDIS_PASSWORD"`
	DB             int           `envconfig:"REDIS_DB" default:"0"`
	IdempotencyTTL time.Duration `envconfig:"IDEMPOTENCY_TTL" default:"24h"`
}

type SeedConfig struct {
	Flights int `envconfig:"SEED_FLIGHTS" default:"10"`
}

type BookingConfig struct {
	ConfirmationAttempts int `envconfig:"CONFIRMATION_ATTEMPTS" default:"32"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Booking.ConfirmationAttempts < 1 {
		return errors.New("CONFIRMATION_ATTEMPTS must be at least 1")
	}
	if c.Seed.Flights < 0 {
		return errors.New("SEED_FLIGHTS cannot be negative")
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Redis: RedisConfig{
			IdempotencyTTL: time.Hour,
		},
		Seed: SeedConfig{
			Flights: 0,
		},
		Booking: BookingConfig{
			ConfirmationAttempts: 32,
		},
	}
}
