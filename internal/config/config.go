package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string
		DSN    string
	}
	CORS struct {
		Origin string
	}
	Log struct {
		Level  string
		Format string
	}
}

// Load reads config from environment (WORDBOOK_ prefix) and optional wordbook.yaml.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("WORDBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("wordbook")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.addr", ":3000")
	v.SetDefault("cors.origin", "http://localhost:8000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	cfg := &Config{}
	cfg.HTTP.Addr = v.GetString("http.addr")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.CORS.Origin = v.GetString("cors.origin")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")

	if cfg.DB.Driver == "" {
		return nil, fmt.Errorf("WORDBOOK_DB_DRIVER is required (sqlite3, postgres, pgx, mysql, memory)")
	}
	if cfg.DB.DSN == "" && !cfg.InMemory() {
		return nil, fmt.Errorf("WORDBOOK_DB_DSN is required")
	}
	if cfg.CORS.Origin == "" {
		return nil, fmt.Errorf("WORDBOOK_CORS_ORIGIN must not be empty")
	}
	switch cfg.Log.Format {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid WORDBOOK_LOG_FORMAT %q: must be json or text", cfg.Log.Format)
	}

	return cfg, nil
}

// InMemory reports whether the process-local store was requested instead of a database.
func (c *Config) InMemory() bool { return c.DB.Driver == "memory" }
