package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, 8, c.InitialCapacity)
	assert.Equal(t, 0.75, c.MaxLoadFactor)
	assert.Equal(t, 5, c.SaltLength)
	assert.Equal(t, "info", c.LogLevel)
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, 8, c.InitialCapacity)
	assert.Equal(t, 0.75, c.MaxLoadFactor)
	assert.Equal(t, 5, c.SaltLength)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"initial_capacity": 32,
		"log_level":        "warn",
	})
	os.Args = []string{"testbin", "-config", path, "-n", "64"}

	c := LoadConfig()

	assert.Equal(t, 64, c.InitialCapacity)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 0.75, c.MaxLoadFactor)
	assert.Equal(t, 5, c.SaltLength)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.LoadDefaults()
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "capacity 1", mutate: func(c *Config) { c.InitialCapacity = 1 }},
		{name: "load factor 1", mutate: func(c *Config) { c.MaxLoadFactor = 1 }},
		{name: "capacity zero", mutate: func(c *Config) { c.InitialCapacity = 0 }, wantErr: "InitialCapacity"},
		{name: "capacity not power of two", mutate: func(c *Config) { c.InitialCapacity = 12 }, wantErr: `"pow2"`},
		{name: "load factor zero", mutate: func(c *Config) { c.MaxLoadFactor = 0 }, wantErr: "MaxLoadFactor"},
		{name: "load factor above one", mutate: func(c *Config) { c.MaxLoadFactor = 1.2 }, wantErr: "MaxLoadFactor"},
		{name: "salt length zero", mutate: func(c *Config) { c.SaltLength = 0 }, wantErr: "SaltLength"},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "LogLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
