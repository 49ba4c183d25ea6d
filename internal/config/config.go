package config

import (
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

const (
	StorageDriverPostgres  = "postgres"
	StorageDriverFirestore = "firestore"
)

// Config конфигурация сервиса
// Собирается один раз при старте и дальше не изменяется
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Qwiky   QwikyConfig   `toml:"qwiky"`
	Storage StorageConfig `toml:"storage"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	PathPrefix      string `toml:"path_prefix"`
	ReadTimeout     int    `toml:"read_timeout"`     // секунды
	WriteTimeout    int    `toml:"write_timeout"`    // секунды
	IdleTimeout     int    `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int    `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// QwikyConfig настройки внешнего API бронирований
type QwikyConfig struct {
	BaseURL      string `toml:"base_url"`
	HoodID       string `toml:"hood_id"`
	DefaultToken string `toml:"default_token"`
	Timeout      int    `toml:"timeout"` // секунды
}

// StorageConfig настройки хранилища status check записей
type StorageConfig struct {
	Driver string `toml:"driver"`

	// postgres
	URL             string `toml:"url"`
	DBName          string `toml:"db_name"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды

	// firestore
	ProjectID  string `toml:"project_id"`
	DatabaseID string `toml:"database_id"`
	Collection string `toml:"collection"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8001,
			PathPrefix:      "/api",
			ReadTimeout:     15,
			WriteTimeout:    45,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "qwiky_admin_proxy",
		},
		Qwiky: QwikyConfig{
			BaseURL: "https://api.qwiky.in/qwiky-service/api/v1",
			HoodID:  "4dd4d3a6-c0b3-4042-8e01-5b9299273ee1",
			Timeout: 30,
		},
		Storage: StorageConfig{
			Driver:          StorageDriverPostgres,
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			Collection:      "status_checks",
		},
	}
}

// Load загружает конфигурацию
// Порядок: значения по умолчанию -> toml файл (если есть) -> .env рядом с файлом -> переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "failed to decode config file", goerr.V("path", path))
		}
	}

	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, goerr.Wrap(err, "failed to load env file", goerr.V("path", envFile))
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Qwiky.BaseURL, "QWIKY_BASE_URL")
	setString(&c.Qwiky.HoodID, "QWIKY_HOOD_ID")
	setString(&c.Qwiky.DefaultToken, "QWIKY_DEFAULT_TOKEN")
	setString(&c.Storage.Driver, "STORAGE_DRIVER")
	setString(&c.Storage.URL, "STORAGE_URL")
	setString(&c.Storage.DBName, "DB_NAME")
	setString(&c.Storage.ProjectID, "FIRESTORE_PROJECT_ID")
	setString(&c.Storage.DatabaseID, "FIRESTORE_DATABASE_ID")
	setString(&c.Logs.Level, "LOG_LEVEL")

	if err := setInt(&c.Server.HTTPPort, "HTTP_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Qwiky.Timeout, "QWIKY_TIMEOUT"); err != nil {
		return err
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return goerr.Wrap(ErrInvalidConfig, "server.http_port out of range", goerr.V("http_port", c.Server.HTTPPort))
	}

	u, err := url.Parse(c.Qwiky.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return goerr.Wrap(ErrInvalidConfig, "qwiky.base_url must be an absolute URL", goerr.V("base_url", c.Qwiky.BaseURL))
	}
	if c.Qwiky.HoodID == "" {
		return goerr.Wrap(ErrInvalidConfig, "qwiky.hood_id is required")
	}
	if c.Qwiky.Timeout <= 0 {
		return goerr.Wrap(ErrInvalidConfig, "qwiky.timeout must be positive", goerr.V("timeout", c.Qwiky.Timeout))
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Storage.URL == "" {
			return goerr.Wrap(ErrInvalidConfig, "storage.url is required for postgres driver")
		}
	case StorageDriverFirestore:
		if c.Storage.ProjectID == "" {
			return goerr.Wrap(ErrInvalidConfig, "storage.project_id is required for firestore driver")
		}
	default:
		return goerr.Wrap(ErrInvalidConfig, "unknown storage driver", goerr.V("driver", c.Storage.Driver))
	}

	return nil
}

// DSN возвращает строку подключения к PostgreSQL
// Если задан db_name, он подставляется вместо базы из URL
func (s StorageConfig) DSN() (string, error) {
	if s.DBName == "" {
		return s.URL, nil
	}

	u, err := url.Parse(s.URL)
	if err != nil {
		return "", goerr.Wrap(err, "failed to parse storage url")
	}
	u.Path = "/" + s.DBName
	return u.String(), nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return goerr.Wrap(ErrInvalidConfig, "environment variable must be an integer", goerr.V("key", key), goerr.V("value", v))
	}
	*dst = n
	return nil
}
