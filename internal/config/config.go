// Package config resolves converter settings from defaults, a config file,
// environment variables and command line flags.
package config

import (
	"fmt"
	"go/token"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/example/django2gorm/internal/core/tablename"
	"github.com/example/django2gorm/internal/logging"
	"github.com/example/django2gorm/internal/scaffold"
)

// File name (without extension) and env prefix.
const (
	FileName  = ".django2gorm"
	EnvPrefix = "DJ2GORM"
)

// Config is the resolved converter configuration.
type Config struct {
	Scaffolding bool   `mapstructure:"scaffolding"`
	AddUser     bool   `mapstructure:"add_user"`
	AddGroup    bool   `mapstructure:"add_group"`
	Package     string `mapstructure:"package"`
	Driver      string `mapstructure:"driver"`
	TablePrefix string `mapstructure:"table_prefix"`
	Pluralize   string `mapstructure:"pluralize"`
	Strict      bool   `mapstructure:"strict"`
	Gofmt       bool   `mapstructure:"gofmt"`
	DSN         string `mapstructure:"dsn"`
	Log         Log    `mapstructure:"log"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Namer returns the table namer described by the config.
func (c *Config) Namer() tablename.Namer {
	return tablename.Namer{Prefix: c.TablePrefix, Pluralize: c.Pluralize}
}

// Scaffold returns the assembler options described by the config.
func (c *Config) Scaffold() scaffold.Options {
	return scaffold.Options{
		IncludeScaffolding: c.Scaffolding,
		AutoAddUser:        c.AddUser,
		AutoAddGroup:       c.AddGroup,
		PackageName:        c.Package,
		Driver:             c.Driver,
		Gofmt:              c.Gofmt,
	}
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if !scaffold.IsDriver(c.Driver) {
		return fmt.Errorf("invalid driver %q (want one of %s)", c.Driver, strings.Join(scaffold.Drivers, ", "))
	}
	if c.Pluralize != tablename.PluralizeSuffix && c.Pluralize != tablename.PluralizeInflect {
		return fmt.Errorf("invalid pluralize mode %q (want %s or %s)", c.Pluralize, tablename.PluralizeSuffix, tablename.PluralizeInflect)
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("invalid package name %q", c.Package)
	}
	if !contains(logging.Levels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("invalid log level %q (want one of %s)", c.Log.Level, strings.Join(logging.Levels, ", "))
	}
	if !contains(logging.Formats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("invalid log format %q (want one of %s)", c.Log.Format, strings.Join(logging.Formats, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
