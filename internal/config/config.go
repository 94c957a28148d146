// Package config handles configuration for the usermap binary,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the user map.
//
// Fields:
//   - InitialCapacity: slot count of a new table; a power of two.
//   - MaxLoadFactor: occupancy ratio at which the table doubles, in (0, 1].
//   - SaltLength: characters per generated salt.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	InitialCapacity int     `validate:"gte=1,pow2"`
	MaxLoadFactor   float64 `validate:"gt=0,lte=1"`
	SaltLength      int     `validate:"gte=1"`
	LogLevel        string  `validate:"oneof=debug info warn error"`
}

// LoadDefaults populates Config with the table's standard settings.
func (c *Config) LoadDefaults() {
	c.InitialCapacity = 8
	c.MaxLoadFactor = 0.75
	c.SaltLength = 5
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
