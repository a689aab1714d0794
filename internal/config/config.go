// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: SIXFRAME_MIN_LENGTH=30.
const EnvPrefix = "SIXFRAME"

// DefaultName is looked up in the working directory when --config is not given.
const DefaultName = "sixframe"

// Config holds every setting, from flags, environment, or a config file.
// Keys are the long flag names.
type Config struct {
	// Input
	Sequences []string `mapstructure:"sequences"`

	// Translation
	MinLength   int  `mapstructure:"min-length"`
	ATGOnly     bool `mapstructure:"atg-only"`
	RequireInit bool `mapstructure:"require-init"`
	Watson      bool `mapstructure:"watson"`
	Crick       bool `mapstructure:"crick"`
	Table       int  `mapstructure:"table"`
	Window      int  `mapstructure:"window"`

	// Performance
	Threads int `mapstructure:"threads"`

	// Output
	Output          string `mapstructure:"output"`
	LineWidth       int    `mapstructure:"line-width"`
	NoHeader        bool   `mapstructure:"no-header"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`

	// Misc
	Quiet      bool   `mapstructure:"quiet"`
	LogLevel   string `mapstructure:"log-level"`
	ConfigFile string `mapstructure:"config"`
}

// Defaults mirrors the flag defaults.
func Defaults() Config {
	return Config{
		MinLength:       20,
		Table:           1,
		Window:          1000000,
		Output:          "fasta",
		LineWidth:       60,
		NoMatchExitCode: 1,
		LogLevel:        "info",
	}
}

// Forward reports whether frames 1-3 are translated.
func (c Config) Forward() bool { return !c.Crick }

// Reverse reports whether frames 4-6 are translated.
func (c Config) Reverse() bool { return !c.Watson }

// Load resolves settings with precedence flag > env > file > default.
// An explicit file that cannot be read is an error; a missing default file is not.
func Load(v *viper.Viper, fs *pflag.FlagSet, file string) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", file, err)
		}
	} else {
		v.SetConfigName(DefaultName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// Used is the config file that was read, if any.
func Used(v *viper.Viper) string { return v.ConfigFileUsed() }
