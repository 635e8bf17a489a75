package config

import (
	"os"

	"go.uber.org/zap"
)

type Config struct {
	Addr      string
	Env       string
	StaticDir string
	DB        DB
}

type DB struct {
	Driver string // "sqlite" or "postgres"

	// sqlite
	Path string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads configuration from the environment. The defaults give a
// runnable server backed by a local sqlite file; postgres settings become
// mandatory only when DB_DRIVER=postgres.
func Load(log *zap.Logger) *Config {
	cfg := &Config{
		Addr:      getEnvDefault("APP_ADDR", ":8080"),
		Env:       getEnvDefault("ENV", "production"),
		StaticDir: getEnvDefault("STATIC_DIR", "web"),
		DB: DB{
			Driver: getEnvDefault("DB_DRIVER", "sqlite"),
			Path:   getEnvDefault("DB_PATH", "canCockOne.db"),
		},
	}

	if cfg.DB.Driver == "postgres" {
		cfg.DB.Host = getEnv("DB_HOST", log)
		cfg.DB.Port = getEnv("DB_PORT", log)
		cfg.DB.User = getEnv("DB_USER", log)
		cfg.DB.Password = getEnv("DB_PASSWORD", log)
		cfg.DB.Name = getEnv("DB_NAME", log)
		cfg.DB.SSLMode = getEnvDefault("DB_SSLMODE", "disable")
	}

	return cfg
}

func getEnv(key string, log *zap.Logger) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	log.Error("required environment variable is not set", zap.String("key", key))
	panic("missing required environment variable: " + key)
}

func getEnvDefault(key, def string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return def
}
