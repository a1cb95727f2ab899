package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port            string `koanf:"port" validate:"required"`
	DatabaseURL     string `koanf:"database_url" validate:"required"`
	Env             string `koanf:"app_env" validate:"required,oneof=local test production"`
	LogLevel        string `koanf:"log_level" validate:"required"`
	MigrateOnStart  bool   `koanf:"migrate_on_start"`
	ShutdownTimeout int    `koanf:"shutdown_timeout" validate:"min=1"`
	BcryptCost      int    `koanf:"bcrypt_cost" validate:"min=4,max=31"`
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func defaults() Config {
	return Config{
		Port:            "333",
		Env:             "local",
		LogLevel:        "info",
		MigrateOnStart:  true,
		ShutdownTimeout: 10,
		BcryptCost:      bcrypt.DefaultCost,
	}
}

// Load reads .env (if it exists) and the process environment, fills defaults and validates.
func Load() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (Config, error) {
	cfg := defaults()
	for _, key := range []string{"port", "database_url", "app_env", "log_level", "migrate_on_start", "shutdown_timeout", "bcrypt_cost"} {
		if k.String(key) == "" {
			k.Delete(key)
		}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
