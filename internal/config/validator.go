package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig wraps every configuration failure.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// envNames maps struct fields to the variables they are read from.
var envNames = map[string]string{
	"LogLevel":    EnvLogLevel,
	"LogFormat":   EnvLogFormat,
	"Environment": EnvEnvironment,
	"ServiceName": EnvServiceName,
	"Version":     EnvVersion,
}

// Validate checks cfg against its struct tags and reports failures by env var name.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		name := envNames[e.Field()]
		if name == "" {
			name = e.Field()
		}
		switch e.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", name))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of [%s], got %q", name, e.Param(), e.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s failed %s validation", name, e.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
