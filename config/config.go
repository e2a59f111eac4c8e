// Package config loads and writes the rotviz configuration file. Values
// resolve in the usual precedence order: command-line flags, environment
// variables (ROTVIZ_*), the config file, built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the scene defaults the CLI starts from. Geometry values are
// kept as "x,y,z" strings so the file, environment, and flags all share one
// format; the CLI parses them at its boundary.
type Config struct {
	Point     string  `mapstructure:"point" yaml:"point"`
	AxisStart string  `mapstructure:"axis-start" yaml:"axis-start"`
	AxisEnd   string  `mapstructure:"axis-end" yaml:"axis-end"`
	AngleDeg  float64 `mapstructure:"angle" yaml:"angle"`
	Method    string  `mapstructure:"method" yaml:"method"`
	Frames    int     `mapstructure:"frames" yaml:"frames"`
	Speed     int     `mapstructure:"speed" yaml:"speed"`
	Style     int     `mapstructure:"style" yaml:"style"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Point:     "2,1,1",
		AxisStart: "0,0,0",
		AxisEnd:   "0,1,0",
		AngleDeg:  45,
		Method:    "both",
		Frames:    30,
		Speed:     5,
		Style:     2,
	}
}

// defaults flattens Default into viper keys. Keys match the CLI flag names
// so BindPFlags lines up without aliasing.
func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"point":      d.Point,
		"axis-start": d.AxisStart,
		"axis-end":   d.AxisEnd,
		"angle":      d.AngleDeg,
		"method":     d.Method,
		"frames":     d.Frames,
		"speed":      d.Speed,
		"style":      d.Style,
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not get user config directory: %w", err)
	}
	return filepath.Join(dir, "rotviz", "rotviz.yaml"), nil
}

// Load reads the configuration. An explicit path takes precedence over the
// search locations (user config dir, then the current directory); a missing
// file in the search locations is not an error, a missing explicit file is.
// When flags is non-nil, set flags override everything else.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	for key, value := range defaults() {
		v.SetDefault(key, value)
	}

	v.SetConfigName("rotviz")
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if userPath, err := DefaultPath(); err == nil {
			v.AddConfigPath(filepath.Dir(userPath))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	v.SetEnvPrefix("rotviz")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Write marshals c to the given path, or to the default per-user location
// when path is empty, creating parent directories as needed.
func Write(c *Config, path string) (string, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return "", err
		}
		path = p
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
