package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	FirstMover   string `yaml:"first-mover" env:"TTT_FIRST_MOVER" env-default:"X" validate:"oneof=X O"`
	RelaxedInput bool   `yaml:"relaxed-input" env:"TTT_RELAXED_INPUT"`
	InitialBoard string `yaml:"initial-board" env:"TTT_INITIAL_BOARD" env-default:"_________" validate:"len=9,board"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails for an empty tag or a nil func
	_ = v.RegisterValidation("board", func(fl validator.FieldLevel) bool {
		return strings.Trim(fl.Field().String(), "XO_") == ""
	})

	return v
}

// MustLoad - load all configurations in config.yml file, falling back to the environment.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
