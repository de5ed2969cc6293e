package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel     string `yaml:"log-level"     env:"GOBBLET_LOG_LEVEL"     env-default:"info"`
	LogFile      string `yaml:"log-file"      env:"GOBBLET_LOG_FILE"      env-default:""`
	DisableMouse bool   `yaml:"disable-mouse" env:"GOBBLET_DISABLE_MOUSE" env-default:"false"`
	Keys         Keys   `yaml:"keys"`
	Theme        Theme  `yaml:"theme"`
}

type Keys struct {
	Reset string `yaml:"reset" env:"GOBBLET_KEY_RESET" env-default:"r"`
	Quit  string `yaml:"quit"  env:"GOBBLET_KEY_QUIT"  env-default:"q"`
}

// Theme holds color names understood by tcell.GetColor.
type Theme struct {
	Red       string `yaml:"red"       env:"GOBBLET_THEME_RED"       env-default:"red"`
	Blue      string `yaml:"blue"      env:"GOBBLET_THEME_BLUE"      env-default:"dodgerblue"`
	Highlight string `yaml:"highlight" env:"GOBBLET_THEME_HIGHLIGHT" env-default:"green"`
	Selected  string `yaml:"selected"  env:"GOBBLET_THEME_SELECTED"  env-default:"yellow"`
	Grid      string `yaml:"grid"      env:"GOBBLET_THEME_GRID"      env-default:"gray"`
}

// Load - reads the yaml file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
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

// RuneOf returns the first rune of a key binding, 0 when it is empty.
func RuneOf(key string) rune {
	for _, r := range key {
		return r
	}
	return 0
}
