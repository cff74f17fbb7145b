package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/django2gorm/internal/core/tablename"
	"github.com/example/django2gorm/internal/scaffold"
)

// flagKeys maps flag names to config keys. Negated flags are inverted when
// bound.
var flagKeys = map[string]string{
	"no-scaffolding": "scaffolding",
	"no-user":        "add_user",
	"no-group":       "add_group",
	"package":        "package",
	"driver":         "driver",
	"table-prefix":   "table_prefix",
	"pluralize":      "pluralize",
	"strict":         "strict",
	"gofmt":          "gofmt",
	"dsn":            "dsn",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// RegisterFlags defines every configuration flag on fs. Defaults shown in
// help come from setDefaults; only flags the user sets are applied.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (default: ./"+FileName+".yaml or $HOME/"+FileName+".yaml)")
	fs.Bool("no-scaffolding", false, "Omit package clause, imports and the usage example")
	fs.Bool("no-user", false, "Do not add a default User model")
	fs.Bool("no-group", false, "Do not add a default Group model")
	fs.String("package", "main", "Package name of the generated file")
	fs.String("driver", scaffold.DriverPostgres, "GORM driver: "+strings.Join(scaffold.Drivers, ", "))
	fs.String("table-prefix", tablename.DefaultPrefix, "Prefix of default table names")
	fs.String("pluralize", tablename.PluralizeSuffix, "Default table pluralization: suffix or inflect")
	fs.Bool("strict", false, "Abort without writing when a line cannot be parsed")
	fs.Bool("gofmt", false, "Format the generated file with gofmt")
	fs.String("dsn", "", "Database connection string (check command)")
	fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	fs.String("log-format", "text", "Log format: text, json")
}

// Load loads configuration with the following precedence:
// 1. Command line flags
// 2. Environment variables (DJ2GORM_*)
// 3. Config file
// 4. Default values
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults (lowest priority)
	setDefaults(v)

	// --- Config file ---
	var cfgPath string
	if fs != nil {
		cfgPath, _ = fs.GetString("config")
	}
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// --- Environment variables ---
	// Keys: log.level -> DJ2GORM_LOG_LEVEL
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// --- Flags (highest priority) ---
	if fs != nil {
		bindChangedFlags(v, fs)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scaffolding", true)
	v.SetDefault("add_user", true)
	v.SetDefault("add_group", true)
	v.SetDefault("package", "main")
	v.SetDefault("driver", scaffold.DriverPostgres)
	v.SetDefault("table_prefix", tablename.DefaultPrefix)
	v.SetDefault("pluralize", tablename.PluralizeSuffix)
	v.SetDefault("strict", false)
	v.SetDefault("gofmt", false)
	v.SetDefault("dsn", "")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")
}

// bindChangedFlags copies only explicitly-set flags into Viper,
// preserving precedence: flags > env > file > defaults.
func bindChangedFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		switch f.Value.Type() {
		case "bool":
			val, _ := fs.GetBool(f.Name)
			if strings.HasPrefix(f.Name, "no-") {
				val = !val
			}
			v.Set(key, val)
		default:
			v.Set(key, f.Value.String())
		}
	})
}
