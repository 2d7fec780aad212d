package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"lightbnb/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	API        APIConfig        `yaml:"api"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

// DatabaseConfig selects the store: PostgreSQL when Postgres.Host is set,
// otherwise the SQLite file at Path.
type DatabaseConfig struct {
	Path     string         `yaml:"path"`
	Postgres PostgresConfig `yaml:"postgres"`
}

type PostgresConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	DBName         string `yaml:"dbname"`
	SSLMode        string `yaml:"sslmode"`
	MaxConnections int    `yaml:"max_connections"`
	MigrationTable string `yaml:"migration_table"`
}

// Enabled reports whether a PostgreSQL server is configured.
func (p PostgresConfig) Enabled() bool {
	return strings.TrimSpace(p.Host) != ""
}

// DSN builds a postgres:// URL. The password is escaped so special
// characters cannot break the URL.
func (p PostgresConfig) DSN() string {
	hostPort := net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(p.User),
		url.QueryEscape(p.Password),
		hostPort,
		p.DBName,
		p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type APIConfig struct {
	HTTP      APIHTTPConfig      `yaml:"http"`
	RateLimit APIRateLimitConfig `yaml:"rate_limit"`
}

type APIHTTPConfig struct {
	Port int `yaml:"port"`
}

type APIRateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	// Requests allowed per client within WindowSeconds.
	Requests      int `yaml:"requests"`
	WindowSeconds int `yaml:"window_seconds"`
}

type MonitoringConfig struct {
	PrometheusEnabled bool `yaml:"prometheus_enabled"`
	PrometheusPort    int  `yaml:"prometheus_port"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

func Load(configPath string) (*Config, error) {
	// .env is optional; values already in the environment win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	expandedData := []byte(os.ExpandEnv(string(data)))

	var config Config
	if err := yaml.Unmarshal(expandedData, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if !c.Database.Postgres.Enabled() && c.Database.Path == "" {
		return errors.New("database path or postgres host is required")
	}

	if c.Database.Postgres.Enabled() {
		if c.Database.Postgres.User == "" {
			return errors.New("postgres user is required")
		}
		if c.Database.Postgres.DBName == "" {
			return errors.New("postgres dbname is required")
		}
	}

	if c.API.RateLimit.Enabled && c.API.RateLimit.Requests < 0 {
		return fmt.Errorf("invalid rate limit requests: %d", c.API.RateLimit.Requests)
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "lightbnb"
	}
	if c.API.HTTP.Port == 0 {
		c.API.HTTP.Port = 8080
	}
	if c.Monitoring.PrometheusEnabled && c.Monitoring.PrometheusPort == 0 {
		c.Monitoring.PrometheusPort = 9090
	}

	if c.API.RateLimit.Requests == 0 {
		c.API.RateLimit.Requests = models.RateLimitRequests
	}
	if c.API.RateLimit.WindowSeconds == 0 {
		c.API.RateLimit.WindowSeconds = models.RateLimitWindow
	}

	pg := &c.Database.Postgres
	if pg.Enabled() {
		if pg.Port == 0 {
			pg.Port = 5432
		}
		if pg.SSLMode == "" {
			pg.SSLMode = "disable"
		}
		if pg.MaxConnections == 0 {
			pg.MaxConnections = 10
		}
		if pg.MigrationTable == "" {
			pg.MigrationTable = "schema_version"
		}
	}
}
