package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ErrDatabaseNotConfigured is returned by RequireDatabase when no DSN is set.
var ErrDatabaseNotConfigured = errors.New("DATABASE_DSN is not set")

type Config struct {
	// WebServer Configuration
	WebServerPort int `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`

	// Database Configuration. The DSN is optional for the web service; the
	// catalogue is served from memory when it is empty.
	DatabaseDSN     string `mapstructure:"DATABASE_DSN"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES" validate:"min=1"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=text json"`
}

// LogValue keeps the DSN out of log output.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.Bool("database_configured", c.DatabaseDSN != ""),
		slog.Int("database_retries", c.DatabaseRetries),
		slog.String("log_level", c.LogLevel),
		slog.String("log_format", c.LogFormat),
	)
}

// RequireDatabase errors when the configuration has no database DSN.
func (c Config) RequireDatabase() error {
	if c.DatabaseDSN == "" {
		return ErrDatabaseNotConfigured
	}
	return nil
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	typ := reflect.TypeOf(c)
	for i := 0; i < typ.NumField(); i++ {
		if tag := typ.Field(i).Tag.Get("mapstructure"); tag != "" {
			_ = viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("DATABASE_RETRIES", 10)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	slog.DebugContext(ctx, "Loaded configuration", "config", cfg)

	return &cfg, nil
}
