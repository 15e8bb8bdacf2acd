package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/confirmly/dashboard-api/internal/repository/memory"
	"github.com/confirmly/dashboard-api/internal/repository/postgres"
)

// StorageMode selects the data source at startup.
const (
	StorageModeMock = "mock"
	StorageModeDev  = "dev"
	StorageModeProd = "prod"
)

type Config struct {
	Server    ServerConfig           `mapstructure:"server"`
	Storage   StorageConfig          `mapstructure:"storage"`
	Database  DatabaseConfig         `mapstructure:"database"`
	Generator memory.GeneratorConfig `mapstructure:"generator"`
	Retention RetentionConfig        `mapstructure:"retention"`
	RateLimit RateLimitConfig        `mapstructure:"rate_limit"`
	Log       LogConfig              `mapstructure:"log"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type StorageConfig struct {
	Mode string `mapstructure:"mode" validate:"oneof=mock dev prod"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RetentionConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Days          int           `mapstructure:"days" validate:"min=0"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	// KeepStats preserves DailyStats past the batch retention window so
	// trend charts keep their history. Set false to sweep both.
	KeepStats bool `mapstructure:"keep_stats"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoadConfig reads config.yml (current directory or ./config), then
// overlays DASHBOARD_* environment variables, then validates the result.
// Mock mode must work with no config file at all, so a missing file is
// not an error.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("dashboard", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("storage.mode", StorageModeMock)
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("retention.enabled", false)
	viper.SetDefault("retention.days", 90)
	viper.SetDefault("retention.sweep_interval", 24*time.Hour)
	viper.SetDefault("retention.keep_stats", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 100)
	viper.SetDefault("rate_limit.burst", 200)
	viper.SetDefault("log.level", "info")

	gen := memory.DefaultGeneratorConfig()
	viper.SetDefault("generator.seed", gen.Seed)
	viper.SetDefault("generator.days_of_history", gen.DaysOfHistory)
	viper.SetDefault("generator.customers_per_day_min", gen.CustomersPerDayMin)
	viper.SetDefault("generator.customers_per_day_max", gen.CustomersPerDayMax)
	viper.SetDefault("generator.response_rate_min", gen.ResponseRateMin)
	viper.SetDefault("generator.response_rate_max", gen.ResponseRateMax)
	viper.SetDefault("generator.proportions.confirmed", gen.Proportions.Confirmed)
	viper.SetDefault("generator.proportions.not_confirmed", gen.Proportions.NotConfirmed)
	viper.SetDefault("generator.proportions.questions", gen.Proportions.Questions)
	viper.SetDefault("generator.proportions.other", gen.Proportions.Other)
}

// Validate checks structural constraints and the generator parameters.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Storage.Mode == StorageModeMock {
		if err := c.Generator.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ToPostgresConfig maps the database section to the postgres package's
// connection config.
func (c *DatabaseConfig) ToPostgresConfig() postgres.Config {
	return postgres.Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Name:     c.Name,
		SSLMode:  c.SSLMode,
	}
}
