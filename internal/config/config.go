package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvTest  = "test"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env       string `env:"APP_ENV" env-default:"local"`
	GinMode   string `env:"GIN_MODE" env-default:"debug"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	SeedUsers bool   `env:"SEED_USERS" env-default:"false"`
	HTTP      HTTPConfig
	DB        DBConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"3000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type DBConfig struct {
	Driver     string `env:"DB_DRIVER" env-default:"postgres"`
	Host       string `env:"DB_HOST" env-default:"localhost"`
	Port       string `env:"DB_PORT" env-default:"5432"`
	User       string `env:"DB_USER" env-default:"taskuser"`
	Password   string `env:"DB_PASSWORD" env-default:"taskpassword"`
	Name       string `env:"DB_NAME" env-default:"db_development"`
	SSLMode    string `env:"DB_SSL_MODE" env-default:"disable"`
	SQLitePath string `env:"DB_SQLITE_PATH" env-default:"tasks.db"`
	LogLevel   string `env:"DB_LOG_LEVEL" env-default:"warn"`
}

// Load reads .env.<APP_ENV> and .env when present, then the process environment.
// Variables already set in the environment always win over the files.
func Load() (*Config, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = EnvLocal
	}
	for _, file := range []string{".env." + env, ".env"} {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd, EnvTest:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}
	switch c.DB.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unknown database driver: %s", c.DB.Driver)
	}
	return nil
}

// Addr returns the listen address of the HTTP server.
func (c HTTPConfig) Addr() string {
	return c.Host + ":" + c.Port
}
