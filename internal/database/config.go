package database

import (
	"fmt"
	"strings"

	"spendwise/internal/config"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds document store connection settings
type Config struct {
	Driver string
	URL    string
	DBName string
}

// NewConfig builds the store configuration from the application config.
// An empty URL falls back to a local SQLite file named after DBName.
func NewConfig(cfg *config.Config) (*Config, error) {
	dc := &Config{
		Driver: strings.ToLower(cfg.DBDriver),
		URL:    cfg.DatabaseURL,
		DBName: cfg.DBName,
	}
	switch dc.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if dc.URL == "" {
		if dc.Driver == DriverPostgres {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
		dc.URL = dc.DBName + ".db"
	}
	return dc, nil
}

// DSN returns the connection string handed to the driver
func (c *Config) DSN() string {
	return c.URL
}
