package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration, loaded from a TOML file.
type Config struct {
	Server       Server       `toml:"server"`
	Database     Database     `toml:"database"`
	Logs         Logs         `toml:"logs"`
	Metrics      Metrics      `toml:"metrics"`
	Mailer       Mailer       `toml:"mailer"`
	Sessions     Sessions     `toml:"sessions"`
	Housekeeping Housekeeping `toml:"housekeeping"`
}

// Server holds the HTTP server settings. Timeouts are in seconds.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the PostgreSQL connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs holds the logger settings. Empty file means stdout.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds the Prometheus settings.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Mailer holds the SendGrid settings. An empty API key disables sending.
type Mailer struct {
	APIKey    string `toml:"api_key"`
	FromEmail string `toml:"from_email"`
	FromName  string `toml:"from_name"`
}

// Sessions holds the booking session settings.
type Sessions struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// Housekeeping holds the maintenance job settings.
type Housekeeping struct {
	Schedule string `toml:"schedule"` // 5-field cron spec
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Sessions.TTLMinutes == 0 {
		cfg.Sessions.TTLMinutes = 30
	}
	if cfg.Housekeeping.Schedule == "" {
		cfg.Housekeeping.Schedule = "*/10 * * * *"
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	if cfg.Database.Host == "" {
		return nil, fmt.Errorf("config: database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database.dbname is required")
	}

	return &cfg, nil
}
