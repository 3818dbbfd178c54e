package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/magiconair/properties"
	homedir "github.com/mitchellh/go-homedir"
)

// Keys read from a .properties file by ImportProperties.
const (
	PropMode        = "morse.mode"
	PropPlaceholder = "morse.placeholder"
	PropLogLevel    = "morse.log-level"
	PropColor       = "morse.color"
)

// Default properties file path, relative to the home directory.
var defaultPropertiesSubpath = filepath.Join(".morse", "morse.properties")

// TryFindPropertiesFile returns the default properties file if it exists.
func TryFindPropertiesFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	absoluteDefaultPath := filepath.Join(home, defaultPropertiesSubpath)

	_, err = os.Stat(absoluteDefaultPath)
	if err == nil {
		return absoluteDefaultPath, nil
	}
	return "", os.ErrNotExist
}

// ImportProperties merges the morse.* keys of a Java style properties file
// into c. Keys that are absent leave the field untouched.
func (c *Config) ImportProperties(path string) error {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return fmt.Errorf("load properties: %w", err)
	}

	imported := *c
	imported.Mode = p.GetString(PropMode, c.Mode)
	imported.Placeholder = p.GetString(PropPlaceholder, c.Placeholder)
	imported.LogLevel = p.GetString(PropLogLevel, c.LogLevel)
	if _, ok := p.Get(PropColor); ok {
		imported.SetColor(p.GetBool(PropColor, c.ColorEnabled()))
	}
	if err := imported.Validate(); err != nil {
		return fmt.Errorf("invalid properties in %s: %w", path, err)
	}
	*c = imported
	return nil
}

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// ReadDotEnv parses .env style files into a lookup function usable with
// ApplyEnv.
func ReadDotEnv(files ...string) (func(string) (string, bool), error) {
	env, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}, nil
}
