// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/anmicius0/taskprogress/internal/settings"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the bootstrap configuration, validated eagerly when loaded, plus the
// settings sections that are validated on first use.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`

	Auth    *settings.Validated[AuthSettings]   `mapstructure:"-" validate:"-"`
	Reports *settings.Validated[ReportSettings] `mapstructure:"-" validate:"-"`
}

// ServerConfig contains HTTP server options.
type ServerConfig struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// DatabaseConfig points at the SQLite database file.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LoggingConfig contains logger preferences. An empty File disables file output.
type LoggingConfig struct {
	File string `mapstructure:"file"`
}

// Addr returns host:port for HTTP server binding.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads the YAML file at path (optional) and the environment, validates the
// bootstrap sections and binds the lazily validated ones.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindEnvs(v)

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var err error
	if cfg.Auth, err = settings.Bind[AuthSettings](v, ""); err != nil {
		return nil, err
	}
	if cfg.Reports, err = settings.Bind[ReportSettings](v, ""); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("logging.file", "")
	v.SetDefault("reportsettings.maxrows", DefaultMaxRows)
	v.SetDefault("reportsettings.serverurl", fmt.Sprintf("http://%s:%d", DefaultHost, DefaultPort))
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server.host",
		"server.port",
		"database.path",
		"logging.file",
		"authsettings.apitoken",
		"reportsettings.maxrows",
		"reportsettings.serverurl",
	}
	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
