package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// configValidate is the validator instance for Config.
var configValidate *validator.Validate

func init() {
	configValidate = validator.New()

	// The key becomes part of a directory and a file name.
	_ = configValidate.RegisterValidation("runkey", func(fl validator.FieldLevel) bool {
		return !strings.ContainsAny(fl.Field().String(), `/\ `)
	})
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	File string `validate:"required"` // launch description, .yml/.yaml/.json or .hcl
	Key  string `validate:"required,runkey"`
	// Dir holds runs_<Key>/ and exps_<Key>.yml. Empty means the working
	// directory.
	Dir string

	NestAt    int `validate:"gte=-1"`
	Repeat    int `validate:"gte=0"`
	Overwrite bool

	Mock       bool
	MockNames  []string
	MockFormat string `validate:"oneof=yaml hcl"`

	// Overrides are `--path value` pairs applied after base_modify.
	Overrides []string

	LogFormat string `validate:"oneof=text json"`
	LogLevel  string `validate:"oneof=debug info warn error"`
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MockFormat == "" {
		cfg.MockFormat = "yaml"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if err := configValidate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		msgs := make([]string, len(verrs))
		for i, fe := range verrs {
			msgs[i] = describe(fe)
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
	}
	return &cfg, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is a required configuration field and cannot be empty", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "runkey":
		return fmt.Sprintf("%s must not contain slashes or spaces, got %q", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	}
}

// RunDirName is the run directory name for key.
func RunDirName(key string) string { return "runs_" + key }

// LogFileName is the planted-experiments log name for key.
func LogFileName(key string) string { return "exps_" + key + ".yml" }
