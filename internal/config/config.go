package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/fieldworks/crew-recommender/pkg/core/recommender"
)

// EngineSettings mirrors the engine knobs in file form. Absent keys
// keep their defaults.
type EngineSettings struct {
	ExcludeWeekends                bool     `yaml:"excludeWeekends"`
	ExcludedWorkDates              []string `yaml:"excludedWorkDates,omitempty"`
	PermissibleCapacityDiscrepancy float64  `yaml:"permissibleCapacityDiscrepancy" validate:"min=0"`
	CrewRecommended                bool     `yaml:"crewRecommended"`
	ConsiderCrewLocation           bool     `yaml:"considerCrewLocation"`
	ConsiderScopes                 bool     `yaml:"considerScopes"`
	ConsiderCertifications         bool     `yaml:"considerCertifications"`
	ConsiderSkills                 bool     `yaml:"considerSkills"`
	CumulativeAllocation           bool     `yaml:"cumulativeAllocation"`
}

// Config represents the application configuration
type Config struct {
	Engine      EngineSettings `yaml:"engine"`
	PostgresDSN string         `yaml:"postgresDSN,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	engineDefaults := recommender.DefaultConfig()
	return &Config{
		Engine: EngineSettings{
			ExcludeWeekends:                engineDefaults.ExcludeWeekends,
			ExcludedWorkDates:              engineDefaults.ExcludedWorkDates,
			PermissibleCapacityDiscrepancy: engineDefaults.PermissibleCapacityDiscrepancy,
			CrewRecommended:                engineDefaults.CrewRecommended,
			ConsiderCrewLocation:           engineDefaults.ConsiderCrewLocation,
			ConsiderScopes:                 engineDefaults.ConsiderScopes,
			ConsiderCertifications:         engineDefaults.ConsiderCertifications,
			ConsiderSkills:                 engineDefaults.ConsiderSkills,
			CumulativeAllocation:           engineDefaults.CumulativeAllocation,
		},
	}
}

// Load loads and validates the configuration from recommender_config.yaml
// It looks for the config file in the current directory first, then in
// the user's home directory. A missing file yields the defaults.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and checks date syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, date := range cfg.Engine.ExcludedWorkDates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date in excludedWorkDates[%d]: %w", i, err)
		}
	}

	return nil
}

// EngineConfig converts the file settings into an engine configuration.
func (c *Config) EngineConfig() recommender.Config {
	return recommender.Config{
		ExcludeWeekends:                c.Engine.ExcludeWeekends,
		ExcludedWorkDates:              c.Engine.ExcludedWorkDates,
		PermissibleCapacityDiscrepancy: c.Engine.PermissibleCapacityDiscrepancy,
		CrewRecommended:                c.Engine.CrewRecommended,
		ConsiderCrewLocation:           c.Engine.ConsiderCrewLocation,
		ConsiderScopes:                 c.Engine.ConsiderScopes,
		ConsiderCertifications:         c.Engine.ConsiderCertifications,
		ConsiderSkills:                 c.Engine.ConsiderSkills,
		CumulativeAllocation:           c.Engine.CumulativeAllocation,
	}
}

// findConfigFile searches for recommender_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "recommender_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
