// Package config loads the hxui command's configuration from a YAML file
// and HXUI_ environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/lib/breakpoint"
)

// EnvPrefix prefixes environment overrides, e.g. HXUI_LOG_LEVEL.
const EnvPrefix = "HXUI"

// Config holds the command configuration.
type Config struct {
	Addr        string           `mapstructure:"addr" validate:"required"`
	Prefix      string           `mapstructure:"prefix" validate:"required,startswith=/"`
	StateKey    string           `mapstructure:"state_key"`
	Log         LogConfig        `mapstructure:"log"`
	Breakpoints breakpoint.Table `mapstructure:"breakpoints"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Key returns the state key, or nil when none is configured and a random
// per-process key should be used.
func (c Config) Key() []byte {
	if c.StateKey == "" {
		return nil
	}
	return []byte(c.StateKey)
}

// Load reads configuration from path (or $HXUI_CONFIG, or ./hxui.yaml if
// present) and the environment, then validates it. A missing default file
// is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8080")
	v.SetDefault("prefix", hxui.DefaultPrefix)
	v.SetDefault("state_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("breakpoints.xs", breakpoint.DefaultTable.XS)
	v.SetDefault("breakpoints.s", breakpoint.DefaultTable.S)
	v.SetDefault("breakpoints.m", breakpoint.DefaultTable.M)
	v.SetDefault("breakpoints.l", breakpoint.DefaultTable.L)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("hxui")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field constraints and the breakpoint table.
func Validate(c Config) error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return c.Breakpoints.Validate()
}
