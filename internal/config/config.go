package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is shared by every cloudio surface.
type Config struct {
	API         APIConfig     `mapstructure:"api"`
	APIURL      string        `mapstructure:"api_url"`
	Web         WebConfig     `mapstructure:"web"`
	DatabaseURL string        `mapstructure:"database_url"`
	Search      SearchConfig  `mapstructure:"search"`
	Redis       RedisConfig   `mapstructure:"redis"`
	Session     SessionConfig `mapstructure:"session"`
	HTTP        HTTPConfig    `mapstructure:"http"`
}

type APIConfig struct {
	Addr string `mapstructure:"addr"`
}

type WebConfig struct {
	Addr string `mapstructure:"addr"`
}

type SearchConfig struct {
	Engine string `mapstructure:"engine"`
}

// RedisConfig is optional; an empty Addr keeps web sessions in memory.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// HTTPConfig.Timeout of zero means the backend client never times out.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.addr", ":8000")
	v.SetDefault("api_url", "http://localhost:8000")
	v.SetDefault("web.addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("search.engine", "sample")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("http.timeout", "0s")
}

// Load reads defaults, then the optional file at path, then CLOUDIO_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CLOUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("cloudio")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// RequireDatabase is called by the surfaces that talk to Postgres.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("database_url is not set (CLOUDIO_DATABASE_URL)")
	}
	return nil
}
