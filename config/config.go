// Package config loads server configuration from YAML. Credentials
// never live in the file; they come from the environment.
package config

import (
	"time"

	"github.com/thordata/thordata-mcp/mcpserver"
	"github.com/thordata/thordata-mcp/thordata"
	"github.com/thordata/thordata-mcp/toolkit"
	"github.com/thordata/thordata-mcp/web"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server"`
	Log      LogConfig      `yaml:"log" json:"log"`
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`
	Thordata ThordataConfig `yaml:"thordata" json:"thordata"`
}

// ServerConfig identifies the MCP server to hosts.
type ServerConfig struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
}

// LogConfig controls logging. Level is one of debug, info, warn, error.
type LogConfig struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultsConfig sets the fallback values the tools apply when a call
// omits a parameter.
type DefaultsConfig struct {
	Engine         string `yaml:"engine" json:"engine"`
	SearchResults  int    `yaml:"search_results" json:"search_results"`
	MaxChars       int    `yaml:"max_chars" json:"max_chars"`
	MaxLinks       int    `yaml:"max_links" json:"max_links"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// ThordataConfig points the client at the Thordata APIs. MaxRetries is
// the total number of attempts made for transient failures.
type ThordataConfig struct {
	SERPURL      string `yaml:"serp_url" json:"serp_url"`
	UniversalURL string `yaml:"universal_url" json:"universal_url"`
	MaxRetries   int    `yaml:"max_retries" json:"max_retries"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:    mcpserver.DefaultName,
			Version: mcpserver.DefaultVersion,
		},
		Log: LogConfig{
			Level: "info",
		},
		Defaults: DefaultsConfig{
			Engine:         web.DefaultEngine.String(),
			SearchResults:  toolkit.DefaultSearchResults,
			MaxChars:       toolkit.DefaultReadPageMaxChars,
			MaxLinks:       toolkit.DefaultExtractMaxLinks,
			TimeoutSeconds: int(toolkit.DefaultToolTimeout / time.Second),
		},
		Thordata: ThordataConfig{
			SERPURL:      thordata.DefaultSERPBaseURL,
			UniversalURL: thordata.DefaultUniversalBaseURL,
			MaxRetries:   3,
		},
	}
}

// Timeout returns the tool timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Defaults.TimeoutSeconds) * time.Second
}
