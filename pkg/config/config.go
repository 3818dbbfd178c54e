package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

const (
	DefaultMode     = "encode"
	DefaultLogLevel = "warn"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvConfig      = "MORSE_CONFIG"
	EnvMode        = "MORSE_MODE"
	EnvPlaceholder = "MORSE_PLACEHOLDER"
	EnvLogLevel    = "MORSE_LOG_LEVEL"
	EnvColor       = "MORSE_COLOR"
)

type Config struct {
	// Mode is the direction the interactive session starts in.
	Mode        string `yaml:"mode,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	LogLevel    string `yaml:"log-level,omitempty"`
	Color       *bool  `yaml:"color,omitempty"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// StartMode returns the configured mode or DefaultMode.
func (c *Config) StartMode() string {
	if c.Mode == "" {
		return DefaultMode
	}
	return c.Mode
}

// Level returns the configured log level or DefaultLogLevel.
func (c *Config) Level() string {
	if c.LogLevel == "" {
		return DefaultLogLevel
	}
	return c.LogLevel
}

// ColorEnabled defaults to true.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

func (c *Config) SetColor(enabled bool) {
	c.Color = &enabled
}

// Path returns the file this config was read from or will be written to.
func (c *Config) Path() string {
	return c.configPath
}

// ApplyEnv overrides fields from environment variables. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMode); ok && v != "" {
		c.Mode = v
	}
	if v, ok := lookup(EnvPlaceholder); ok && v != "" {
		c.Placeholder = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvColor, err)
		}
		c.SetColor(enabled)
	}
	return nil
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

// ReadConfig reads cfgPath, or the default location when cfgPath is empty.
// A missing default file yields an empty config; an explicit path must
// exist.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Config{}, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > 0 {
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(&c); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}
	c.configPath = resolvedPath
	return c, c.Validate()
}

// Validate checks fields that have a closed set of values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Mode) {
	case "", "encode", "decode":
	default:
		return fmt.Errorf("mode %q: must be one of: encode, decode", c.Mode)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		return fmt.Errorf("log-level %q is not a known level", c.LogLevel)
	}
	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".morse", "config"), nil
}
