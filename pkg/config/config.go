package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/learning-platform/authhooks/pkg/observability"
)

// Config holds all trigger configuration
type Config struct {
	// Server configuration (local trigger server)
	Server ServerConfig

	// Directory configuration
	Directory DirectoryConfig

	// Platform configuration
	Platform PlatformConfig

	// Provisioning configuration
	Provisioning ProvisioningConfig

	// Observability configuration
	Observability ObservabilityConfig
}

// ServerConfig holds HTTP server configuration for the local trigger server
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DirectoryConfig holds tenant directory database settings
type DirectoryConfig struct {
	PostgresURL      string
	MappingCacheSize int
	MappingCacheTTL  time.Duration
}

// PlatformConfig holds platform API settings
type PlatformConfig struct {
	GroupSyncURL     string
	GroupSyncTimeout time.Duration
}

// ProvisioningConfig holds just-in-time provisioning settings
type ProvisioningConfig struct {
	Enabled bool
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	LogLevel       observability.LogLevel
	MetricsEnabled bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("HOOKS_HOST", "0.0.0.0"),
			Port:            getEnv("HOOKS_PORT", "8080"),
			ReadTimeout:     getEnvDuration("HOOKS_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("HOOKS_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("HOOKS_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("HOOKS_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Directory: DirectoryConfig{
			PostgresURL:      getEnv("HOOKS_POSTGRES_URL", ""),
			MappingCacheSize: getEnvInt("HOOKS_MAPPING_CACHE_SIZE", 1024),
			MappingCacheTTL:  getEnvDuration("HOOKS_MAPPING_CACHE_TTL", 5*time.Minute),
		},
		Platform: PlatformConfig{
			GroupSyncURL:     getEnv("HOOKS_GROUP_SYNC_URL", ""),
			GroupSyncTimeout: getEnvDuration("HOOKS_GROUP_SYNC_TIMEOUT", 3*time.Second),
		},
		Provisioning: ProvisioningConfig{
			Enabled: getEnvBool("HOOKS_PROVISIONING_ENABLED", false),
		},
		Observability: ObservabilityConfig{
			LogLevel:       observability.ParseLevel(getEnv("HOOKS_LOG_LEVEL", "info")),
			MetricsEnabled: getEnvBool("HOOKS_METRICS_ENABLED", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Provisioning.Enabled && c.Directory.PostgresURL == "" {
		return fmt.Errorf("postgres URL is required when provisioning is enabled")
	}
	if c.Directory.MappingCacheSize < 0 {
		return fmt.Errorf("mapping cache size must not be negative")
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
