package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Lock-state backends.
const (
	BackendCommand = "command"
	BackendDBus    = "dbus"
)

// Notifier kinds.
const (
	NotifierNotifySend = "notify-send"
	NotifierDBus       = "dbus"
	NotifierStdout     = "stdout"
)

// Config holds all configuration for break-timer
type Config struct {
	// Desktop selects <desktop>-screensaver-command
	Desktop string `yaml:"desktop" env:"BREAK_TIMER_DESKTOP"`

	// ActiveTime is the number of unlocked minutes before a break
	ActiveTime int `yaml:"active_time" env:"BREAK_TIMER_ACTIVE_TIME"`

	// GracePeriod is the number of seconds between the notification and the lock
	GracePeriod int `yaml:"grace_period" env:"BREAK_TIMER_GRACE_PERIOD"`

	// Collaborator selection
	Backend  string `yaml:"backend" env:"BREAK_TIMER_BACKEND"`
	Notifier string `yaml:"notifier" env:"BREAK_TIMER_NOTIFIER"`

	// Quiet suppresses the per-minute status lines
	Quiet bool `yaml:"quiet" env:"BREAK_TIMER_QUIET"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Desktop:     "gnome",
		ActiveTime:  30,
		GracePeriod: 10,
		Backend:     BackendCommand,
		Notifier:    NotifierNotifySend,
	}
}

// Load loads configuration from the default file location and environment
func Load() (*Config, error) {
	return load(getConfigPath(), false)
}

// LoadFrom loads configuration from a file the user named and the
// environment. Unlike Load, the file must exist.
func LoadFrom(configPath string) (*Config, error) {
	return load(configPath, true)
}

func load(configPath string, mustExist bool) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			if mustExist || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("BREAK_TIMER_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "break-timer", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "break-timer", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (flag, env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if desktop := os.Getenv("BREAK_TIMER_DESKTOP"); desktop != "" {
		cfg.Desktop = desktop
	}

	if activeTime := os.Getenv("BREAK_TIMER_ACTIVE_TIME"); activeTime != "" {
		n, err := strconv.Atoi(activeTime)
		if err != nil {
			return fmt.Errorf("invalid BREAK_TIMER_ACTIVE_TIME: %w", err)
		}
		cfg.ActiveTime = n
	}

	if grace := os.Getenv("BREAK_TIMER_GRACE_PERIOD"); grace != "" {
		n, err := strconv.Atoi(grace)
		if err != nil {
			return fmt.Errorf("invalid BREAK_TIMER_GRACE_PERIOD: %w", err)
		}
		cfg.GracePeriod = n
	}

	if backend := os.Getenv("BREAK_TIMER_BACKEND"); backend != "" {
		cfg.Backend = backend
	}

	if notifier := os.Getenv("BREAK_TIMER_NOTIFIER"); notifier != "" {
		cfg.Notifier = notifier
	}

	if quiet := os.Getenv("BREAK_TIMER_QUIET"); quiet != "" {
		switch quiet {
		case "true", "1", "yes":
			cfg.Quiet = true
		case "false", "0", "no":
			cfg.Quiet = false
		default:
			return fmt.Errorf("invalid BREAK_TIMER_QUIET value: %q (use true/false)", quiet)
		}
	}

	return nil
}

// Validate checks the configuration once all sources have been merged
func (c *Config) Validate() error {
	if c.Desktop == "" {
		return fmt.Errorf("desktop must not be empty")
	}

	if c.ActiveTime <= 0 {
		return fmt.Errorf("active_time must be positive, got %d", c.ActiveTime)
	}

	if c.GracePeriod < 0 {
		return fmt.Errorf("grace_period must be non-negative, got %d", c.GracePeriod)
	}

	switch c.Backend {
	case BackendCommand, BackendDBus:
	default:
		return fmt.Errorf("unknown backend %q (use %s or %s)", c.Backend, BackendCommand, BackendDBus)
	}

	switch c.Notifier {
	case NotifierNotifySend, NotifierDBus, NotifierStdout:
	default:
		return fmt.Errorf("unknown notifier %q (use %s, %s or %s)",
			c.Notifier, NotifierNotifySend, NotifierDBus, NotifierStdout)
	}

	return nil
}
