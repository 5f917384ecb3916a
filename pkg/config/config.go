package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	// Database settings
	DBDriver string `mapstructure:"db_driver"` // "sqlite", "mysql" or "postgres"
	DBDSN    string `mapstructure:"db_dsn"`

	// Profile name an account needs to pass authentication
	AdminRole string `mapstructure:"admin_role"`

	// Exit the process on storage errors from the CLI
	FailFast bool `mapstructure:"fail_fast"`

	// Optional API settings
	APIHost string `mapstructure:"api_host"`
	APIPort int    `mapstructure:"api_port"`

	// Optional CORS settings
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Optional logging settings
	LogFile       string `mapstructure:"log_file"`
	LogLevel      string `mapstructure:"log_level"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	LogMaxBackups int    `mapstructure:"log_max_backups"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days"`

	ConfigPath string
}

const (
	DefaultConfigPath    = "/etc/habilitations/config.yml"
	DefaultDBDriver      = "sqlite"
	DefaultDBDSN         = "/var/lib/habilitations/habilitations.sqlite3"
	DefaultAdminRole     = "admin"
	DefaultAPIHost       = "0.0.0.0"
	DefaultAPIPort       = 8340
	DefaultLogLevel      = "info"
	DefaultLogMaxSizeMB  = 50
	DefaultLogMaxBackups = 5
	DefaultLogMaxAgeDays = 30
)

// Load reads the YAML config file and HABILITATIONS_* environment overrides.
// A missing file is only an error when the path was given explicitly.
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultConfigPath
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	v.SetDefault("db_driver", DefaultDBDriver)
	v.SetDefault("db_dsn", DefaultDBDSN)
	v.SetDefault("admin_role", DefaultAdminRole)
	v.SetDefault("fail_fast", true)
	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("cors_origins", []string{})
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_max_size_mb", DefaultLogMaxSizeMB)
	v.SetDefault("log_max_backups", DefaultLogMaxBackups)
	v.SetDefault("log_max_age_days", DefaultLogMaxAgeDays)

	// Allow environment variable overrides
	v.SetEnvPrefix("HABILITATIONS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("db_driver must be 'sqlite', 'mysql' or 'postgres'")
	}

	if c.DBDSN == "" {
		return fmt.Errorf("db_dsn is required")
	}

	if c.AdminRole == "" {
		return fmt.Errorf("admin_role must not be empty")
	}

	if c.APIPort < 1 || c.APIPort > 65535 {
		return fmt.Errorf("api_port must be between 1 and 65535")
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("HABILITATIONS_DEV_MODE") == "1"
}
