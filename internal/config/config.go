package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers understood by the server.
const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the server settings.
type Config struct {
	AppPort       string
	StorageDriver string
	UsersDBPath   string
	DatabaseDSN   string
	CORSOrigin    string
	RabbitMQURL   string
	LogLevel      string
	ItemsPerPage  int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":3000")
	v.SetDefault("STORAGE_DRIVER", DriverJSON)
	v.SetDefault("USERS_DB_PATH", "users.json")
	v.SetDefault("DATABASE_DSN", "users.db")
	v.SetDefault("CORS_ORIGIN", "http://localhost:5173")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ITEMS_PER_PAGE", 10)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the configuration from v, which should already have defaults
// and environment binding set up.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:       v.GetString("APP_PORT"),
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		UsersDBPath:   v.GetString("USERS_DB_PATH"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		CORSOrigin:    v.GetString("CORS_ORIGIN"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		ItemsPerPage:  v.GetInt("ITEMS_PER_PAGE"),
	}
	if cfg.AppPort != "" && !strings.Contains(cfg.AppPort, ":") {
		cfg.AppPort = ":" + cfg.AppPort
	}
	return cfg, cfg.Validate()
}

// New builds a viper instance with defaults and environment lookup and loads it.
func New() (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return Load(v)
}

// Validate checks that the settings are usable together.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverJSON:
		if c.UsersDBPath == "" {
			return errors.New("USERS_DB_PATH is required for the json storage driver")
		}
	case DriverSQLite, DriverPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for the %s storage driver", c.StorageDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	// The CORS middleware allows credentials, which cannot be combined with a wildcard origin.
	if strings.Contains(c.CORSOrigin, "*") {
		return fmt.Errorf("CORS_ORIGIN must name a single origin, got %q", c.CORSOrigin)
	}
	if c.ItemsPerPage < 1 {
		return fmt.Errorf("ITEMS_PER_PAGE must be positive, got %d", c.ItemsPerPage)
	}
	return nil
}
