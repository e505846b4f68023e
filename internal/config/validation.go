// Package config provides configuration management for the match oracle.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("origins", validateOrigins)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateOrigins accepts "*" or absolute http(s) origins
func validateOrigins(fl validator.FieldLevel) bool {
	origins, ok := fl.Field().Interface().([]string)
	if !ok || len(origins) == 0 {
		return false
	}

	for _, origin := range origins {
		if origin == "*" {
			continue
		}
		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return false
		}
	}
	return true
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	if cfg.Prediction.MatchBandMin >= cfg.Prediction.MatchBandMax {
		return fmt.Errorf("prediction match_band_min must be below match_band_max")
	}
	if cfg.Prediction.SideBandMin >= cfg.Prediction.SideBandMax {
		return fmt.Errorf("prediction side_band_min must be below side_band_max")
	}

	if cfg.Server.Port == cfg.Server.HealthPort {
		return fmt.Errorf("server port and health_port must differ")
	}

	// Validate production environment requirements
	if cfg.IsProduction() {
		for _, origin := range cfg.Server.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf("production environment requires explicit allowed_origins")
			}
		}
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg strings.Builder
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			fmt.Fprintf(&errMsg, "- Field '%s' is required\n", field)
		case "min", "max":
			fmt.Fprintf(&errMsg, "- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			fmt.Fprintf(&errMsg, "- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			fmt.Fprintf(&errMsg, "- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			fmt.Fprintf(&errMsg, "- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "origins":
			fmt.Fprintf(&errMsg, "- Field '%s' must list '*' or http(s) origins, got '%v'\n", field, value)
		default:
			fmt.Fprintf(&errMsg, "- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg.String())
}
