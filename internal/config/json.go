package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/usermap/internal/flagx"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish an
// absent key from a zero value, so a partial file only overrides what it names.
type JsonConfig struct {
	InitialCapacity *int     `json:"initial_capacity"`
	MaxLoadFactor   *float64 `json:"max_load_factor"`
	SaltLength      *int     `json:"salt_length"`
	LogLevel        *string  `json:"log_level"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path comes from the -c or -config command-line flags. If neither
// is set, no JSON file is loaded. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.ConfigFileFlag()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.InitialCapacity != nil {
		config.InitialCapacity = *c.InitialCapacity
	}
	if c.MaxLoadFactor != nil {
		config.MaxLoadFactor = *c.MaxLoadFactor
	}
	if c.SaltLength != nil {
		config.SaltLength = *c.SaltLength
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
