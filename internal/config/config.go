package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v2"
)

type Target struct {
	Name     string `yaml:"name"`
	Path     string `yaml:"path"`
	Language string `yaml:"language,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

type SourceConfig struct {
	Targets []Target `yaml:"targets"`
}

type App struct {
	Port      int `yaml:"port"`
	Verbosity int `yaml:"verbosity,omitempty"`
}

type Config struct {
	Source SourceConfig `yaml:"source"`
	App    App          `yaml:"app"`
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) GetTarget(name string) (*Target, error) {
	for _, target := range c.Source.Targets {
		if target.Name == name {
			return &target, nil
		}
	}
	return nil, fmt.Errorf("target not found: %s", name)
}

func validateConfig(cfg *Config) error {
	if cfg.App.Verbosity < 0 {
		return fmt.Errorf("verbosity must be non-negative, got %d", cfg.App.Verbosity)
	}
	for _, target := range cfg.Source.Targets {
		if target.Path == "" {
			return fmt.Errorf("target '%s': path is required", target.Name)
		}
	}
	return nil
}

var (
	bracedVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)
	bareVarPattern   = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
)

// expandEnvVars substitutes ${VAR}, ${VAR:-default} and $VAR references.
// An unset ${VAR} expands to the default (or empty); an unset bare $VAR is
// left as written.
func expandEnvVars(input string) string {
	expanded := bracedVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := bracedVarPattern.FindStringSubmatch(match)
		name, hasDefault, fallback := groups[1], groups[2] != "", groups[3]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		if hasDefault {
			return fallback
		}
		return ""
	})

	return bareVarPattern.ReplaceAllStringFunc(expanded, func(match string) string {
		name := match[1:]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}
