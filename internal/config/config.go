package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvDBPassword переопределяет database.password
const EnvDBPassword = "SCHEDULE_DB_PASSWORD"

var (
	// ErrReadConfig возвращается, когда файл конфигурации не читается или не разбирается
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid config")
)

type Config struct {
	Server         ServerConfig         `toml:"server"`
	Database       DatabaseConfig       `toml:"database"`
	Logs           LogsConfig           `toml:"logs"`
	Metrics        MetricsConfig        `toml:"metrics"`
	ClinicRegistry ClinicRegistryConfig `toml:"clinic_registry"`
	Scheduling     SchedulingConfig     `toml:"scheduling"`
	RateLimit      RateLimitConfig      `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type ClinicRegistryConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type SchedulingConfig struct {
	YearSpan   int `toml:"year_span"`
	MinuteStep int `toml:"minute_step"`
}

type RateLimitConfig struct {
	Enabled        bool     `toml:"enabled"`
	RPS            float64  `toml:"rps"`
	Burst          int      `toml:"burst"`
	IdleTTL        int      `toml:"idle_ttl"`        // секунды
	TrustedProxies []string `toml:"trusted_proxies"` // адреса и CIDR прокси
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию
// и переменные окружения, затем проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if password, ok := os.LookupEnv(EnvDBPassword); ok {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default значения, которые используются для незаданных ключей
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "schedule-service",
		},
		ClinicRegistry: ClinicRegistryConfig{
			Timeout: 5,
		},
		Scheduling: SchedulingConfig{
			YearSpan:   5,
			MinuteStep: 5,
		},
		RateLimit: RateLimitConfig{
			RPS:     10,
			Burst:   20,
			IdleTTL: 600,
		},
	}
}

// Validate проверяет обязательные поля и диапазоны
func (c *Config) Validate() error {
	switch {
	case c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535:
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	case c.Database.User == "":
		return fmt.Errorf("%w: database.user is required", ErrInvalidConfig)
	case c.Database.DBName == "":
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	case c.ClinicRegistry.URL == "":
		return fmt.Errorf("%w: clinic_registry.url is required", ErrInvalidConfig)
	case c.ClinicRegistry.Timeout <= 0:
		return fmt.Errorf("%w: clinic_registry.timeout must be positive", ErrInvalidConfig)
	case c.Scheduling.YearSpan <= 0:
		return fmt.Errorf("%w: scheduling.year_span must be positive", ErrInvalidConfig)
	case c.Scheduling.MinuteStep <= 0 || 60%c.Scheduling.MinuteStep != 0:
		return fmt.Errorf("%w: scheduling.minute_step must divide 60", ErrInvalidConfig)
	case c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0):
		return fmt.Errorf("%w: rate_limit.rps and rate_limit.burst must be positive", ErrInvalidConfig)
	case c.RateLimit.Enabled && c.RateLimit.IdleTTL <= 0:
		return fmt.Errorf("%w: rate_limit.idle_ttl must be positive", ErrInvalidConfig)
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level must be one of debug, info, warn, error", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
