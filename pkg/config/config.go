package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed config.toml.sample
var configTemplate string

type Config struct {
	LogFile      string   `toml:"log_file"`
	TailLines    int      `toml:"tail_lines"`
	Color        string   `toml:"color"`
	Debug        bool     `toml:"debug"`
	PollInterval Duration `toml:"poll_interval"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func GetDefaultConfig() (*Config, error) {
	logFile, err := GetDefaultLogPath()
	if err != nil {
		return nil, fmt.Errorf("getting default log path: %w", err)
	}
	return &Config{
		LogFile:      logFile,
		TailLines:    50,
		Color:        "auto",
		PollInterval: Duration{2 * time.Second},
	}, nil
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// An explicitly empty log_file means "stderr only" and is left alone.
	if config.TailLines == 0 {
		config.TailLines = 50
	}

	if config.Color == "" {
		config.Color = "auto"
	}

	if config.PollInterval.Duration == 0 {
		config.PollInterval = Duration{2 * time.Second}
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	template, err := c.generateConfigTemplate()
	if err != nil {
		return fmt.Errorf("generating config template: %w", err)
	}
	return os.WriteFile(configPath, []byte(template), 0644)
}

func (c *Config) generateConfigTemplate() (string, error) {
	logFile := c.LogFile
	if logFile == "" {
		var err error
		logFile, err = GetDefaultLogPath()
		if err != nil {
			return "", fmt.Errorf("getting default log path: %w", err)
		}
	}

	// Replace the placeholder log_file with the actual path
	template := strings.Replace(configTemplate, "/home/user/.local/share/dlog/dlog.log", logFile, 1)
	return template, nil
}

// GetDefaultDataDir returns the default directory for log files
func GetDefaultDataDir() (string, error) {
	// Use XDG_DATA_HOME if set, otherwise use ~/.local/share
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	dlogDir := filepath.Join(dataDir, "dlog")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(dlogDir, 0755); err != nil {
		return "", fmt.Errorf("creating data directory %s: %w", dlogDir, err)
	}

	return dlogDir, nil
}

// GetDefaultLogPath returns the default log file path in the user's data directory
func GetDefaultLogPath() (string, error) {
	dataDir, err := GetDefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "dlog.log"), nil
}

// GetConfigDir returns the configuration directory for dlog
func GetConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if set, otherwise use ~/.config
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dlogConfigDir := filepath.Join(configDir, "dlog")

	// Create the directory if it doesn't exist
	if err := os.MkdirAll(dlogConfigDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dlogConfigDir, err)
	}

	return dlogConfigDir, nil
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
