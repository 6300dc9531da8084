package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
	BackendGorm   = "gorm"

	NotificationsLog   = "log"
	NotificationsRedis = "redis"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Log           LogConfig           `mapstructure:"log"`
	Repository    RepositoryConfig    `mapstructure:"repository"`
	MySQL         MySQLConfig         `mapstructure:"mysql"`
	Gorm          GormConfig          `mapstructure:"gorm"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type RepositoryConfig struct {
	Backend  string `mapstructure:"backend"`
	SeedDemo bool   `mapstructure:"seed_demo_data"`
}

type MySQLConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type GormConfig struct {
	Dialect string `mapstructure:"dialect"`
	DSN     string `mapstructure:"dsn"`
}

type NotificationsConfig struct {
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// Load reads config.yaml when present, then lets environment variables override it
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("repository.backend", BackendMemory)
	v.SetDefault("repository.seed_demo_data", true)
	v.SetDefault("mysql.dsn", "auction_user:auction_pass@tcp(localhost:3306)/auction_db?parseTime=true")
	v.SetDefault("mysql.max_open_conns", 25)
	v.SetDefault("mysql.max_idle_conns", 10)
	v.SetDefault("mysql.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("gorm.dialect", "sqlite")
	v.SetDefault("gorm.dsn", "file:auctions.db?cache=shared")
	v.SetDefault("notifications.backend", NotificationsLog)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "auctions.winning")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	bindings := map[string]string{
		"server.port":               "SERVER_PORT",
		"log.level":                 "LOG_LEVEL",
		"repository.backend":        "REPOSITORY_BACKEND",
		"repository.seed_demo_data": "SEED_DEMO_DATA",
		"mysql.dsn":                 "MYSQL_DSN",
		"mysql.max_open_conns":      "MYSQL_MAX_OPEN_CONNS",
		"mysql.max_idle_conns":      "MYSQL_MAX_IDLE_CONNS",
		"mysql.conn_max_lifetime":   "MYSQL_CONN_MAX_LIFETIME",
		"gorm.dialect":              "GORM_DIALECT",
		"gorm.dsn":                  "GORM_DSN",
		"notifications.backend":     "NOTIFICATIONS_BACKEND",
		"redis.address":             "REDIS_ADDRESS",
		"redis.password":            "REDIS_PASSWORD",
		"redis.db":                  "REDIS_DB",
		"redis.channel":             "REDIS_CHANNEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	// config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects backends and dialects the binary cannot wire
func (c *Config) Validate() error {
	switch c.Repository.Backend {
	case BackendMemory, BackendSQL, BackendGorm:
	default:
		return fmt.Errorf("config: unknown repository backend %q", c.Repository.Backend)
	}
	if c.Repository.Backend == BackendGorm {
		switch c.Gorm.Dialect {
		case "mysql", "postgres", "sqlite":
		default:
			return fmt.Errorf("config: unknown gorm dialect %q", c.Gorm.Dialect)
		}
	}
	switch c.Notifications.Backend {
	case NotificationsLog, NotificationsRedis:
	default:
		return fmt.Errorf("config: unknown notifications backend %q", c.Notifications.Backend)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: invalid server port %d", c.Server.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// String summarizes the config without secrets
func (c *Config) String() string {
	return fmt.Sprintf(
		"Server: %s, Repository: %s, Notifications: %s, Redis: %s",
		c.Addr(),
		c.Repository.Backend,
		c.Notifications.Backend,
		c.Redis.Address,
	)
}
