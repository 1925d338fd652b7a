package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Inline   bool   `yaml:"inline" env:"TICTACTOE_INLINE"`
	NoMouse  bool   `yaml:"no-mouse" env:"TICTACTOE_NO_MOUSE"`
	Theme    Theme  `yaml:"theme"`
}

type Theme struct {
	XColor string `yaml:"x-color" env:"TICTACTOE_X_COLOR" env-default:"#FF5F87"`
	OColor string `yaml:"o-color" env:"TICTACTOE_O_COLOR" env-default:"#5FAFFF"`
}

// Load - reads the config file and environment. Without a file only the environment is used.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
