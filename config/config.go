package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"` // probed by the HTTP service
	Check     CheckConfig     `mapstructure:"check"`    // probed by the dbcheck script
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig describes how to reach one MySQL instance.
type DatabaseConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	DBName         string        `mapstructure:"dbname"`
	Charset        string        `mapstructure:"charset"`
	RowShape       string        `mapstructure:"row_shape"`       // dict, tuple
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"` // 0 = driver default
}

// Addr returns the host:port pair of the database.
func (d DatabaseConfig) Addr() string {
	return net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
}

// CheckConfig is the standalone script's own connection, kept apart from the service's.
type CheckConfig struct {
	Database DatabaseConfig `mapstructure:"database"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Limit   int64         `mapstructure:"limit"`
	Window  time.Duration `mapstructure:"window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: DBPROBE_.
// Nested keys use underscore: DBPROBE_DATABASE_HOST, DBPROBE_CHECK_DATABASE_PASSWORD, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "release")

	setDatabaseDefaults(v, "database", "dict", 0)
	setDatabaseDefaults(v, "check.database", "tuple", 5*time.Second)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.limit", 60)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// DBPROBE_CHECK_DATABASE_HOST -> check.database.host
	v.SetEnvPrefix("DBPROBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Database.validate("database"); err != nil {
		return nil, err
	}
	if err := cfg.Check.Database.validate("check.database"); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper, prefix, shape string, timeout time.Duration) {
	v.SetDefault(prefix+".host", "localhost")
	v.SetDefault(prefix+".port", 3306)
	v.SetDefault(prefix+".user", "root")
	v.SetDefault(prefix+".password", "")
	v.SetDefault(prefix+".dbname", "")
	v.SetDefault(prefix+".charset", "utf8mb4")
	v.SetDefault(prefix+".row_shape", shape)
	v.SetDefault(prefix+".connect_timeout", timeout)
}

func (d DatabaseConfig) validate(key string) error {
	switch {
	case d.Host == "":
		return fmt.Errorf("%s.host is required", key)
	case d.Port <= 0 || d.Port > 65535:
		return fmt.Errorf("%s.port out of range: %d", key, d.Port)
	case d.RowShape != "dict" && d.RowShape != "tuple":
		return fmt.Errorf("%s.row_shape must be dict or tuple, got %q", key, d.RowShape)
	case d.ConnectTimeout < 0:
		return fmt.Errorf("%s.connect_timeout must not be negative", key)
	}
	return nil
}
