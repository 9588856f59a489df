package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// HolidayRule defines a recurring holiday as an RFC 5545 recurrence
// rule, e.g. "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25".
type HolidayRule struct {
	RRule     string `yaml:"rrule" validate:"required"`
	Label     string `yaml:"label,omitempty"`
	IsSpecial bool   `yaml:"isSpecial,omitempty"`
}

// Config represents the application configuration.
type Config struct {
	DatabaseURL       string        `yaml:"databaseURL" validate:"required"`
	ServerPort        int           `yaml:"serverPort,omitempty" validate:"omitempty,min=1,max=65535"`
	Actor             string        `yaml:"actor,omitempty"`
	VacationLimitDays int           `yaml:"vacationLimitDays,omitempty" validate:"omitempty,min=1"`
	HolidayRules      []HolidayRule `yaml:"holidayRules,omitempty" validate:"dive"`
}

const configFileName = "guardia_config.yaml"

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from guardia_config.yaml.
// It looks for the config file in the current directory first, then in
// the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.HolidayRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == 0 {
		cfg.ServerPort = 8080
	}
	if cfg.Actor == "" {
		cfg.Actor = "cli"
	}
	if cfg.VacationLimitDays == 0 {
		cfg.VacationLimitDays = 15
	}
}

// findConfigFile looks for the config file in the current directory,
// then in the user's home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homePath := filepath.Join(home, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("config file %s not found in current or home directory", configFileName)
}
