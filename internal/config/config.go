package config

import (
	"github.com/spf13/viper"
)

// InputCfg holds the sequence the harness compacts.
type InputCfg struct {
	Values     string `mapstructure:"values"`      // comma or space separated, sorted non-decreasing
	ShowPrefix bool   `mapstructure:"show_prefix"` // also print the deduplicated prefix
}

// LoggingCfg controls output formatting and level.
type LoggingCfg struct {
	Level  string `mapstructure:"level"`  // debug|info|warn|error
	Format string `mapstructure:"format"` // json|console
}

// Config is the root configuration.
type Config struct {
	Input   InputCfg   `mapstructure:"input"`
	Logging LoggingCfg `mapstructure:"logging"`
}

// DefaultValues is the sequence compacted when no input is configured.
const DefaultValues = "0,0,1,1,1,2,2,3,3,4"

// Load reads config from a file.
func Load(path string) (Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	var c Config
	if err := v.ReadInConfig(); err != nil { return c, err }
	if err := v.Unmarshal(&c); err != nil { return c, err }
	return c, nil
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	var c Config
	// Unmarshal on a fresh viper yields the SetDefault values.
	_ = newViper().Unmarshal(&c)
	return c
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SEQCOMPACT")
	v.AutomaticEnv()

	v.SetDefault("input.values", DefaultValues)
	v.SetDefault("input.show_prefix", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	return v
}
