package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type (
	Config struct {
		Server  Server
		Storage Storage
		PG      PG
		SQLite  SQLite
		Log     Log
	}

	Server struct {
		Port                string   `env:"CHOCOLATIN_SERVER_PORT" envDefault:"8000"`
		ReadTimeoutSeconds  int      `env:"CHOCOLATIN_SERVER_READ_TIMEOUT_SECONDS" envDefault:"15"`
		WriteTimeoutSeconds int      `env:"CHOCOLATIN_SERVER_WRITE_TIMEOUT_SECONDS" envDefault:"15"`
		IdleTimeoutSeconds  int      `env:"CHOCOLATIN_SERVER_IDLE_TIMEOUT_SECONDS" envDefault:"60"`
		CORSOrigins         []string `env:"CHOCOLATIN_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000,http://localhost:8080"`
	}

	Storage struct {
		Driver string `env:"CHOCOLATIN_STORAGE_DRIVER" envDefault:"postgres"`
	}

	PG struct {
		User     string `env:"CHOCOLATIN_PG_USER"`
		Password string `env:"CHOCOLATIN_PG_PASSWORD"`
		Host     string `env:"CHOCOLATIN_PG_HOST"`
		Port     int    `env:"CHOCOLATIN_PG_PORT" envDefault:"5432"`
		DBName   string `env:"CHOCOLATIN_PG_DBNAME"`
		SSLMode  string `env:"CHOCOLATIN_PG_SSLMODE" envDefault:"disable"`
		PoolMax  int    `env:"CHOCOLATIN_PG_POOL_MAX" envDefault:"10"`
	}

	SQLite struct {
		Path       string `env:"CHOCOLATIN_SQLITE_PATH" envDefault:"chocolatin.db"`
		InitSchema bool   `env:"CHOCOLATIN_SQLITE_INIT_SCHEMA" envDefault:"false"`
	}

	Log struct {
		Level string `env:"CHOCOLATIN_LOG_LEVEL" envDefault:"info"`
	}
)

func NewConfig() (Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}

	return *cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.PG.Host == "" || c.PG.User == "" || c.PG.DBName == "" {
			return errors.New("CHOCOLATIN_PG_HOST, CHOCOLATIN_PG_USER and CHOCOLATIN_PG_DBNAME are required for the postgres driver")
		}
		if c.PG.PoolMax < 1 {
			return errors.New("CHOCOLATIN_PG_POOL_MAX must be >= 1")
		}
	case DriverSQLite:
		if c.SQLite.Path == "" {
			return errors.New("CHOCOLATIN_SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// DSN builds the postgres connection string. User and password are escaped.
func (pg PG) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.User, pg.Password),
		Host:     fmt.Sprintf("%s:%d", pg.Host, pg.Port),
		Path:     "/" + pg.DBName,
		RawQuery: url.Values{"sslmode": []string{pg.SSLMode}}.Encode(),
	}
	return u.String()
}
