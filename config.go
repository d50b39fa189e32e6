package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultInputDir  = "inputs"
	defaultSumTarget = 2020
	defaultMaxTerms  = 3
	defaultLogLevel  = "info"
	configFileName   = "config.json"
	envHome          = "AOC_HOME"
)

var (
	defaultSlope  = slope{DX: 3, DY: 1}
	defaultSlopes = []slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}
)

// appConfig holds the application configuration.
type appConfig struct {
	InputDir  string  `json:"input_dir"`
	SumTarget int     `json:"sum_target"`
	MaxTerms  int     `json:"max_terms"`
	Slope     slope   `json:"slope"`
	Slopes    []slope `json:"slopes,omitempty"`
	LogLevel  string  `json:"log_level"`
}

// Slopes is left nil here and filled in after unmarshalling: decoding a
// shorter list over a longer default would keep the default's tail.
func defaultConfig() appConfig {
	return appConfig{
		InputDir:  defaultInputDir,
		SumTarget: defaultSumTarget,
		MaxTerms:  defaultMaxTerms,
		Slope:     defaultSlope,
		LogLevel:  defaultLogLevel,
	}
}

// configPath picks the config file: explicit flag, then $AOC_HOME, then cwd.
func configPath(flagPath string) string {
	if p := strings.TrimSpace(flagPath); p != "" {
		return p
	}
	if home := strings.TrimSpace(os.Getenv(envHome)); home != "" {
		return filepath.Join(home, configFileName)
	}
	return configFileName
}

// loadConfig loads configuration from the specified path. A missing file
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.normalize()
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg.normalize()
}

func (c appConfig) normalize() (appConfig, error) {
	c.InputDir = strings.TrimSpace(c.InputDir)
	if c.InputDir == "" {
		c.InputDir = defaultInputDir
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if len(c.Slopes) == 0 {
		c.Slopes = append([]slope(nil), defaultSlopes...)
	}

	if c.SumTarget <= 0 {
		return appConfig{}, fmt.Errorf("sum_target must be > 0, got %d", c.SumTarget)
	}
	if c.MaxTerms <= 0 {
		return appConfig{}, fmt.Errorf("max_terms must be > 0, got %d", c.MaxTerms)
	}
	if err := c.Slope.validate(); err != nil {
		return appConfig{}, fmt.Errorf("slope: %w", err)
	}
	for i, s := range c.Slopes {
		if err := s.validate(); err != nil {
			return appConfig{}, fmt.Errorf("slopes[%d]: %w", i, err)
		}
	}
	return c, nil
}
