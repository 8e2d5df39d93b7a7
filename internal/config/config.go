package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the attendance tracker
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"AT_DB_DIR"`
	Filename       string        `env:"AT_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"AT_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `env:"AT_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"AT_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Placeholder string `env:"AT_DISPLAY_PLACEHOLDER"`
	DateOnly    bool   `env:"AT_DISPLAY_DATE_ONLY"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	NameMinLength int `env:"AT_VALIDATION_NAME_MIN"`
	NameMaxLength int `env:"AT_VALIDATION_NAME_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"AT_APP_TIMEOUT"`
	Verbose bool          `env:"AT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".at")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "at.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			Placeholder: "-",
			DateOnly:    false,
		},
		Validation: ValidationConfig{
			NameMinLength: 1,
			NameMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("AT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("AT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("AT_DB_QUERY_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid AT_DB_QUERY_TIMEOUT: %w", err)
		}
		c.Database.QueryTimeout = parsed
	}
	if timeout := os.Getenv("AT_DB_WRITE_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid AT_DB_WRITE_TIMEOUT: %w", err)
		}
		c.Database.WriteTimeout = parsed
	}
	if perms := os.Getenv("AT_DB_DIR_PERMISSIONS"); perms != "" {
		parsed, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return fmt.Errorf("invalid AT_DB_DIR_PERMISSIONS: %w", err)
		}
		c.Database.DirPermissions = uint32(parsed)
	}

	// Display configuration
	if placeholder := os.Getenv("AT_DISPLAY_PLACEHOLDER"); placeholder != "" {
		c.Display.Placeholder = placeholder
	}
	if dateOnly := os.Getenv("AT_DISPLAY_DATE_ONLY"); dateOnly != "" {
		parsed, err := strconv.ParseBool(dateOnly)
		if err != nil {
			return fmt.Errorf("invalid AT_DISPLAY_DATE_ONLY: %w", err)
		}
		c.Display.DateOnly = parsed
	}

	// Validation configuration
	if min := os.Getenv("AT_VALIDATION_NAME_MIN"); min != "" {
		parsed, err := strconv.Atoi(min)
		if err != nil {
			return fmt.Errorf("invalid AT_VALIDATION_NAME_MIN: %w", err)
		}
		c.Validation.NameMinLength = parsed
	}
	if max := os.Getenv("AT_VALIDATION_NAME_MAX"); max != "" {
		parsed, err := strconv.Atoi(max)
		if err != nil {
			return fmt.Errorf("invalid AT_VALIDATION_NAME_MAX: %w", err)
		}
		c.Validation.NameMaxLength = parsed
	}

	// Application configuration
	if timeout := os.Getenv("AT_APP_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return fmt.Errorf("invalid AT_APP_TIMEOUT: %w", err)
		}
		c.Application.Timeout = parsed
	}
	if verbose := os.Getenv("AT_APP_VERBOSE"); verbose != "" {
		parsed, err := strconv.ParseBool(verbose)
		if err != nil {
			return fmt.Errorf("invalid AT_APP_VERBOSE: %w", err)
		}
		c.Application.Verbose = parsed
	}

	return nil
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return fmt.Errorf("database directory must not be empty")
	}
	if c.Database.Filename == "" {
		return fmt.Errorf("database filename must not be empty")
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database query timeout must be positive")
	}
	if c.Database.WriteTimeout <= 0 {
		return fmt.Errorf("database write timeout must be positive")
	}
	if c.Validation.NameMinLength < 1 {
		return fmt.Errorf("minimum name length must be at least 1")
	}
	if c.Validation.NameMaxLength < c.Validation.NameMinLength {
		return fmt.Errorf("maximum name length must be >= minimum name length")
	}
	if c.Application.Timeout <= 0 {
		return fmt.Errorf("application timeout must be positive")
	}
	return nil
}
