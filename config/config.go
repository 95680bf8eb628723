package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

// JWTConfig is handed to the token codec at startup. Tests build their own
// instance with a distinct secret.
type JWTConfig struct {
	SecretKey  string        `mapstructure:"secret_key"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
}

type GateConfig struct {
	ProtectedPrefixes []string `mapstructure:"protected_prefixes"`
	ExcludedPrefixes  []string `mapstructure:"excluded_prefixes"`
	PrivilegedRole    string   `mapstructure:"privileged_role"`
}

type LedgerConfig struct {
	PurgeInterval time.Duration `mapstructure:"purge_interval"`
	Retention     time.Duration `mapstructure:"retention"`
}

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Server   struct {
		Port            string        `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Gate   GateConfig   `mapstructure:"gate"`
	Ledger LedgerConfig `mapstructure:"ledger"`
	Cache  struct {
		TTL time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.enabled", true)
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("log.level", "info")
	// Registered so AutomaticEnv can fill it from JWT_SECRET_KEY.
	v.SetDefault("jwt.secret_key", "")
	v.SetDefault("jwt.access_ttl", 30*time.Minute)
	v.SetDefault("jwt.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("gate.protected_prefixes", []string{"/api/v1/dashboard"})
	v.SetDefault("gate.excluded_prefixes", []string{"/swagger/", "/admin/"})
	v.SetDefault("gate.privileged_role", "admin")
	v.SetDefault("ledger.purge_interval", time.Hour)
	v.SetDefault("ledger.retention", 24*time.Hour)
	v.SetDefault("cache.ttl", 10*time.Minute)
}

// Load reads config.yml from path, overlaid by environment variables
// (DATABASE_HOST, JWT_SECRET_KEY, ...). A .env file in path is loaded first
// when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path + "/.env")

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if cfg.JWT.SecretKey == "" {
		return nil, fmt.Errorf("jwt.secret_key must be set")
	}
	return &cfg, nil
}

func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error loading configuration, %s", err)
	}
	AppConfig = *cfg
}
