// Package config loads xgxchain settings with viper.
//
// Precedence, highest first: XGXCHAIN_* environment variables, the config
// file, built-in defaults. A missing xgxchain.yaml in the search directory is
// not an error; a missing file named explicitly is.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	fileName  = "xgxchain"
	fileType  = "yaml"
	envPrefix = "XGXCHAIN"

	KeyLogFormat   = "log.format"
	KeyLogLevel    = "log.level"
	KeyRenderColor = "render.color"
)

// Log formats understood by the CLI.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatCharm   = "charm"
)

// ErrInvalid reports a setting outside its allowed values.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Log    Log    `mapstructure:"log"`
	Render Render `mapstructure:"render"`
}

type Log struct {
	Format string `mapstructure:"format"`
	Level  string `mapstructure:"level"`
}

type Render struct {
	Color bool `mapstructure:"color"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogFormat, FormatConsole)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyRenderColor, true)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads xgxchain.yaml from dir, or from nowhere when dir is empty.
func Load(dir string) (*Config, error) {
	v := newViper()
	if dir != "" {
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}
	return decode(v)
}

// LoadFile reads the config file at path. The file must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case FormatConsole, FormatJSON, FormatCharm:
	default:
		return fmt.Errorf("%w: %s %q: want console, json or charm", ErrInvalid, KeyLogFormat, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("%w: %s %q", ErrInvalid, KeyLogLevel, c.Log.Level)
	}
	return nil
}
