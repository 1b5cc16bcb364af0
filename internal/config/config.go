// Package config loads the handcoach HCL configuration: server
// settings plus user-supplied rewrite rules fed to the text
// normalizer.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handcoach/handtext"
)

// Config represents the complete handcoach configuration. The server
// block is optional so a rewrites-only file works for the CLI.
type Config struct {
	Server   *ServerSettings `hcl:"server,block"`
	Rewrites []RewriteRule   `hcl:"rewrite,block"`
}

// ServerSettings contains settings for the parse API server
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// RewriteRule is a user-supplied normalizer rule. The label names the
// rule for error messages; the pattern is compiled case-insensitive.
type RewriteRule struct {
	Name    string `hcl:"name,label"`
	Pattern string `hcl:"pattern"`
	Replace string `hcl:"replace"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Server: &ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults, not an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server == nil {
		config.Server = &ServerSettings{}
	}
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server != nil && (c.Server.Port < 1 || c.Server.Port > 65535) {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	for _, r := range c.Rewrites {
		if r.Pattern == "" {
			return fmt.Errorf("rewrite %s: pattern must not be empty", r.Name)
		}
		if _, err := handtext.NewRule(r.Pattern, r.Replace); err != nil {
			return fmt.Errorf("rewrite %s: %w", r.Name, err)
		}
	}
	return nil
}

// ServerAddress returns the full listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Normalizer builds a text normalizer carrying the built-in tables
// plus the configured rewrite rules, in file order.
func (c *Config) Normalizer() (*handtext.Normalizer, error) {
	extra := make([]handtext.Rule, 0, len(c.Rewrites))
	for _, r := range c.Rewrites {
		rule, err := handtext.NewRule(r.Pattern, r.Replace)
		if err != nil {
			return nil, fmt.Errorf("rewrite %s: %w", r.Name, err)
		}
		extra = append(extra, rule)
	}
	return handtext.NewNormalizer(extra...), nil
}
