package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"db"`
	Generate GenerateConfig `mapstructure:"generate"`
	Stream   StreamConfig   `mapstructure:"stream"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

// GenerateConfig holds the default batch sizes and seed. Command-line
// flags override these per invocation.
type GenerateConfig struct {
	Seed      uint64 `mapstructure:"seed"`
	Customers int    `mapstructure:"customers"`
	Products  int    `mapstructure:"products"`
	Orders    int    `mapstructure:"orders"`
	OutDir    string `mapstructure:"out_dir"`
}

type StreamConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// LoadConfig loads configuration from config.yaml and environment
// variables. A missing config file is fine: the generate and stream
// commands need no database, so everything has a usable default.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.fakemart/")
	v.AddConfigPath("/etc/fakemart/")

	// Enable environment variable override with FAKEMART_ prefix.
	// Nested keys map dots to underscores: db.dsn -> FAKEMART_DB_DSN.
	v.SetEnvPrefix("FAKEMART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.dsn", "root@tcp(127.0.0.1:3306)/fakemart?parseTime=true")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("generate.seed", 42)
	v.SetDefault("generate.customers", 100)
	v.SetDefault("generate.products", 50)
	v.SetDefault("generate.orders", 200)
	v.SetDefault("generate.out_dir", "./data")
	v.SetDefault("stream.interval", time.Second)

	// Read config file if one exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
