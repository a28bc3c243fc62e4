package config

import (
	"github.com/spf13/viper"
	"github.com/zeebo/errs"
)

// Error is the error class of configuration failures
var Error = errs.Class("config")

// Config holds the settings of the command line tool.
// Every key can be overridden by an environment variable prefixed with TOLL_.
type Config struct {
	Input       string `mapstructure:"INPUT"`
	Output      string `mapstructure:"OUTPUT"`
	Concurrency int    `mapstructure:"CONCURRENCY"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
}

// Load reads the settings from the environment and, when path is not empty,
// from the given file (.env, yaml, json or toml)
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TOLL")
	v.AutomaticEnv()

	v.SetDefault("INPUT", "")
	v.SetDefault("OUTPUT", "fees.csv")
	v.SetDefault("CONCURRENCY", 4)
	v.SetDefault("LOG_LEVEL", "info")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, Error.Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, Error.Wrap(err)
	}
	return cfg, nil
}
