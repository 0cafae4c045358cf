package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wager-tracker/internal/core/domain"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	JWT          JWTConfig          `mapstructure:"jwt"`
	Log          LogConfig          `mapstructure:"log"`
	Participants ParticipantsConfig `mapstructure:"participants"`
	Session      SessionConfig      `mapstructure:"session"`
	Telegram     TelegramConfig     `mapstructure:"telegram"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// ParticipantsConfig names the two handles allowed to use the tracker.
type ParticipantsConfig struct {
	A                  string `mapstructure:"a"`
	B                  string `mapstructure:"b"`
	PermissiveSelfPlay bool   `mapstructure:"permissive_self_play"`
}

// Roster builds the participant roster injected into the services.
func (p ParticipantsConfig) Roster() domain.Roster {
	return domain.Roster{
		ParticipantA:       strings.TrimSpace(p.A),
		ParticipantB:       strings.TrimSpace(p.B),
		PermissiveSelfPlay: p.PermissiveSelfPlay,
	}
}

// Validate rejects a roster that cannot pair two distinct participants.
func (p ParticipantsConfig) Validate() error {
	a, b := strings.TrimSpace(p.A), strings.TrimSpace(p.B)
	if a == "" || b == "" {
		return errors.New("participants.a and participants.b must both be set")
	}
	if strings.EqualFold(a, b) {
		return fmt.Errorf("participants must be distinct, got %q twice", a)
	}
	return nil
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type TelegramConfig struct {
	Token         string `mapstructure:"token"`
	UpdateTimeout int    `mapstructure:"update_timeout"` // long-poll seconds
	Debug         bool   `mapstructure:"debug"`
}

type RateLimitConfig struct {
	Limit  int64         `mapstructure:"limit"`
	Window time.Duration `mapstructure:"window"`
}

// MetricsConfig is the listen address of the standalone /metrics server
// used by the chat bot process.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WGR_.
// Nested keys use underscore: WGR_DATABASE_HOST, WGR_PARTICIPANTS_A, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wagers")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "720h")
	v.SetDefault("jwt.issuer", "wager-tracker")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("participants.a", "")
	v.SetDefault("participants.b", "")
	v.SetDefault("participants.permissive_self_play", false)
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.update_timeout", 60)
	v.SetDefault("telegram.debug", false)
	v.SetDefault("rate_limit.limit", 60)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("metrics.addr", ":9091")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: WGR_DATABASE_HOST -> database.host
	v.SetEnvPrefix("WGR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
