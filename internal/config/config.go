package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port            string
	Env             string
	ShutdownTimeout time.Duration

	// Document store
	DBDriver    string
	DatabaseURL string
	DBName      string

	// CORS
	CORSOrigins []string

	// Identity exchange
	IdentityBaseURL string
	IdentityTimeout time.Duration

	// Sessions
	SessionTTL time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		DBDriver:    strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL: getEnv("DATABASE_URL", getEnv("MONGO_URL", "")),
		DBName:      getEnv("DB_NAME", "finance"),

		CORSOrigins: ParseOrigins(getEnv("CORS_ORIGINS", "*")),

		IdentityBaseURL: getEnv("IDENTITY_BASE_URL", "https://demobackend.emergentagent.com"),
	}

	config.ShutdownTimeout = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	config.IdentityTimeout = getDuration("IDENTITY_TIMEOUT", 10*time.Second)
	config.SessionTTL = getDuration("SESSION_TTL", 7*24*time.Hour)

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ParseOrigins splits a comma-separated origin list. Blank entries are dropped;
// an empty list means "*".
func ParseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
