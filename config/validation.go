package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable for the
// current environment. Development and test accept defaults for most
// fields; a JWT secret is always required because tokens signed with an
// empty secret would be forgeable.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT secret is not set")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "server port is not set")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errors = append(errors, "database password is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "database SSL must not be disabled in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errors, "\n  - "))
	}
	return nil
}
