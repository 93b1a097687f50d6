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

// ValidateConfig checks that the loaded configuration is usable in its environment.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, ValidationError{"SERVER_PORT", "is required"}.Error())
	}

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.DBPath == "" {
			errors = append(errors, ValidationError{"DB_PATH", "is required for sqlite"}.Error())
		}
	case "postgres":
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				errors = append(errors, ValidationError{field, "is required for postgres"}.Error())
			}
		}
	default:
		errors = append(errors, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)}.Error())
	}

	// Without a configured secret every restart invalidates issued tokens,
	// which is not acceptable in production.
	if cfg.Environment == Production && cfg.JWTSecret == "" {
		errors = append(errors, ValidationError{"JWT_SECRET", "is required in production"}.Error())
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		errors = append(errors, ValidationError{"LOG_FORMAT", "must be text or json"}.Error())
	}

	if cfg.RateLimitPerMinute < 0 {
		errors = append(errors, ValidationError{"RATE_LIMIT_PER_MINUTE", "must not be negative"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
