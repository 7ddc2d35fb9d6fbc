// Package config loads app-level defaults from the environment. The
// generation config itself (seed, locale, currency) is always passed
// explicitly into Generate; these are just the CLI's starting values.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Seed       int64
	Locale     string
	Currency   string
	ShapesDir  string
	LogLevel   string
	LogFormat  string
	Format     string
	PastWindow string
}

// Load reads FIXGEN_* environment variables over built-in defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("FIXGEN")
	v.AutomaticEnv()
	setDefaults(v)
	return FromViper(v)
}

// FromViper builds a Config from a prepared Viper instance. Tests use it
// to inject values without touching the process environment.
func FromViper(v *viper.Viper) *Config {
	setDefaults(v)
	return &Config{
		Seed:       v.GetInt64("seed"),
		Locale:     v.GetString("locale"),
		Currency:   v.GetString("currency"),
		ShapesDir:  v.GetString("shapes_dir"),
		LogLevel:   v.GetString("log_level"),
		LogFormat:  v.GetString("log_format"),
		Format:     v.GetString("format"),
		PastWindow: v.GetString("past_window"),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", int64(1))
	v.SetDefault("locale", "en")
	v.SetDefault("currency", "$")
	v.SetDefault("shapes_dir", "./shapes")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("format", "jsonl")
	v.SetDefault("past_window", "365d")
}
