package config

import (
	"errors"
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

// ConfigRequirements defines required configuration for each environment
type ConfigRequirements struct {
	RequiredSettings []string
	RequiredSecrets  []string
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {
			RequiredSettings: []string{"SERVER_PORT", "CONTENT_DIR"},
		},
		Test: {
			RequiredSettings: []string{"SERVER_PORT", "CONTENT_DIR"},
		},
		CI: {
			RequiredSettings: []string{"SERVER_PORT", "CONTENT_DIR"},
			RequiredSecrets:  []string{"jwt_secret"},
		},
		Production: {
			RequiredSettings: []string{"SERVER_PORT", "CONTENT_DIR"},
			RequiredSecrets:  []string{"jwt_secret", "admin_password_hash"},
		},
	}
)

func (c *Config) setting(name string) string {
	switch name {
	case "SERVER_PORT":
		return c.ServerPort
	case "CONTENT_DIR":
		return c.ContentDir
	case "jwt_secret":
		return c.JWTSecret
	case "admin_password_hash":
		return c.AdminPasswordHash
	case "db_password":
		return c.DBPassword
	}
	return ""
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	reqs := requirements[cfg.Environment]

	var errs []error
	for _, name := range reqs.RequiredSettings {
		if cfg.setting(name) == "" {
			errs = append(errs, ValidationError{Field: name, Message: "required setting is not set"})
		}
	}
	for _, name := range reqs.RequiredSecrets {
		if cfg.setting(name) == "" {
			errs = append(errs, ValidationError{Field: name, Message: "required secret is not set"})
		}
	}

	switch cfg.DBDriver {
	case "postgres":
		if cfg.DBHost == "" || cfg.DBName == "" {
			errs = append(errs, ValidationError{Field: "DB_HOST", Message: "postgres needs DB_HOST and DB_NAME"})
		}
		if cfg.Environment == Production && cfg.DBPassword == "" {
			errs = append(errs, ValidationError{Field: "db_password", Message: "required secret is not set"})
		}
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, ValidationError{Field: "SQLITE_PATH", Message: "sqlite needs a database path"})
		}
	default:
		errs = append(errs, ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	for _, origin := range cfg.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, ValidationError{Field: "CORS_ORIGINS", Message: fmt.Sprintf("invalid origin %q", origin)})
		}
	}

	if cfg.ViewWindow <= 0 {
		errs = append(errs, ValidationError{Field: "VIEW_WINDOW", Message: "must be positive"})
	}

	return errors.Join(errs...)
}
