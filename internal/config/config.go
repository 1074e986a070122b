// Package config loads revise's settings from a YAML file and REVISE_
// environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/iw2rmb/revise/syntax"
)

// EnvPrefix is prepended to every environment override, e.g. REVISE_TAB_WIDTH.
const EnvPrefix = "REVISE"

// Config holds editor settings.
type Config struct {
	TabWidth        int    `mapstructure:"tab_width"`
	ShowLineNumbers bool   `mapstructure:"show_line_numbers"`
	Theme           string `mapstructure:"theme"`    // "default" or a chroma style name
	LogFile         string `mapstructure:"log_file"` // empty disables logging
	Debug           bool   `mapstructure:"debug"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TabWidth:        4,
		ShowLineNumbers: false,
		Theme:           syntax.DefaultThemeName,
	}
}

// SetDefaults registers Defaults on v so unset keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("tab_width", d.TabWidth)
	v.SetDefault("show_line_numbers", d.ShowLineNumbers)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("debug", d.Debug)
}

// NewViper returns a viper instance with defaults and environment overrides
// wired. path, when set, is used as the config file.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
	}
	return v
}

// Load reads path (YAML) on top of the defaults. An empty path loads defaults
// and environment overrides only.
func Load(path string) (Config, error) {
	v := NewViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrUnknownTheme is returned by Validate for a theme that is neither the
// default theme nor a registered chroma style.
var ErrUnknownTheme = errors.New("unknown theme")

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("tab_width must be between 1 and 16, got %d", c.TabWidth)
	}
	if !syntax.IsTheme(c.Theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, c.Theme)
	}
	return nil
}
