package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DefaultEmptySymbol = "*"
	DefaultDelimiter   = " | "
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	LogFile   string    `yaml:"log-file" env:"TICTACTOE_LOG_FILE"`
	Presenter Presenter `yaml:"presenter"`
}

type Presenter struct {
	EmptySymbol string `yaml:"empty-symbol" env:"TICTACTOE_EMPTY_SYMBOL" env-default:"*"`
	Delimiter   string `yaml:"delimiter" env:"TICTACTOE_DELIMITER" env-default:" | "`
}

// MustLoad - loads config.yml when it exists, otherwise only the environment.
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
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Presenter) GetEmptySymbol() string {
	if that.EmptySymbol == "" {
		return DefaultEmptySymbol
	}
	return that.EmptySymbol
}

func (that *Presenter) GetDelimiter() string {
	if that.Delimiter == "" {
		return DefaultDelimiter
	}
	return that.Delimiter
}
