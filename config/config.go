package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	SupabaseURL    string        `envconfig:"SUPABASE_URL"`
	ServiceRoleKey string        `envconfig:"SUPABASE_SERVICE_ROLE_KEY"`
	SupabaseKey    string        `envconfig:"SUPABASE_KEY"`
	MemberID       string        `envconfig:"MEMBER_ID"`
	APIURL         string        `envconfig:"API_URL"`
	LogLevel       string        `envconfig:"LOG_LEVEL"       default:"info"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
}

// Load reads configuration from a .env file (when present) and the
// process environment. It is called once in main and the result is
// passed by parameter; nothing here is global.
func Load(logger *logrus.Logger) *Config {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatalf("Failed to process configuration from environment variables: %v", err)
	}
	return &cfg
}

// StoreKey returns the store credential, preferring the service-role
// key over the generic key when both are set.
func (c *Config) StoreKey() string {
	if c.ServiceRoleKey != "" {
		return c.ServiceRoleKey
	}
	return c.SupabaseKey
}

// StoreConfigured reports whether the store endpoint and credential are
// both present. The scraper skips the write step when they are not.
func (c *Config) StoreConfigured() bool {
	return c.SupabaseURL != "" && c.StoreKey() != ""
}

// RequireSync validates the variables the sync program cannot run
// without. The returned error names every missing variable.
func (c *Config) RequireSync() error {
	var missing []string
	if c.SupabaseURL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.StoreKey() == "" {
		missing = append(missing, "SUPABASE_KEY")
	}
	if c.MemberID == "" {
		missing = append(missing, "MEMBER_ID")
	}
	if c.APIURL == "" {
		missing = append(missing, "API_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
