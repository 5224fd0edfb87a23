package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ClassicConfig holds the classical-cipher defaults the CLI applies
// when the user leaves the shift or rail_fence key blank.
type ClassicConfig struct {
	DefaultShift     int `yaml:"defaultShift"`
	DefaultRailFence int `yaml:"defaultRailFence"`
}

// GeneralConfig holds logging/debug settings.
type GeneralConfig struct {
	LogLevel string `yaml:"logLevel"`
	Debug    bool   `yaml:"debug"`
}

// Config represents the application configuration
type Config struct {
	// Classic cipher configuration
	Classic ClassicConfig `yaml:"classic"`

	// General settings
	General GeneralConfig `yaml:"general"`
}

// LoadConfig loads the configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// If no config path is provided, use default
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		configPath = filepath.Join(homeDir, ".classiclens", "config.yaml")
	}

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		// Create default config
		config := createDefaultConfig()
		if err := SaveConfig(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return config, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default configuration: a Shift key of
// 3 (the same value as Caesar's built-in default) and a Rail Fence
// rail count of 3.
func createDefaultConfig() *Config {
	config := &Config{}

	config.Classic.DefaultShift = 3
	config.Classic.DefaultRailFence = 3

	config.General.LogLevel = "info"
	config.General.Debug = false

	return config
}

// GetClassicConfig returns the classical-cipher defaults section.
func (c *Config) GetClassicConfig() ClassicConfig {
	return c.Classic
}

// GetGeneralConfig returns the general settings section.
func (c *Config) GetGeneralConfig() GeneralConfig {
	return c.General
}
