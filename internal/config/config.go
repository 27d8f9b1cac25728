package config

import (
	"time"
)

// Config represents the application configuration
type Config struct {
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	API     APIConfig     `mapstructure:"api" yaml:"api"`
	Menu    MenuConfig    `mapstructure:"menu" yaml:"menu"`
	Cache   CacheConfig   `mapstructure:"cache" yaml:"cache"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// APIConfig contains resource client settings
type APIConfig struct {
	Endpoint   string        `mapstructure:"endpoint" yaml:"endpoint"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries"`
	UserAgent  string        `mapstructure:"user_agent" yaml:"user_agent"`
}

// MenuConfig selects the retrieval strategy
type MenuConfig struct {
	Type string `mapstructure:"type" yaml:"type"`
	// Deprecated: set type to jsonapi_menu_items instead. Kept for
	// configurations written against the old boolean flag.
	JSONAPIMenuItems bool `mapstructure:"jsonapi_menu_items" yaml:"jsonapi_menu_items"`
}

// CacheConfig contains response cache settings
type CacheConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate normalizes invalid values back to defaults. Unknown menu types
// are left untouched; strategy selection falls back downstream.
func (c *Config) Validate() error {
	if c.API.Endpoint == "" {
		c.API.Endpoint = DefaultEndpoint
	}
	if c.API.Timeout < time.Second {
		c.API.Timeout = DefaultTimeout
	}
	if c.API.MaxRetries < 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.Cache.TTL < time.Minute {
		c.Cache.TTL = DefaultCacheTTL
	}
	if c.Menu.Type == "" {
		c.Menu.Type = DefaultMenuType
	}
	return nil
}
