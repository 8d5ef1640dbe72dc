package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	ServerPort string
	CORSOrigin string
	Storage    string
	Mongo      MongoConfig
	Log        LogConfig
}

type MongoConfig struct {
	URI        string
	DBName     string
	Collection string
}

type LogConfig struct {
	Level      string
	File       string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// Load reads envFile when it exists and then the process environment.
// A missing file is not an error; variables already set win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "4000"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		Storage:    strings.ToLower(getEnv("STORAGE", StorageMongo)),
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			DBName:     getEnv("MONGO_DB_NAME", "task_tracker"),
			Collection: getEnv("MONGO_COLLECTION", "tasks"),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", "logs/tasks.log"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		},
	}

	if cfg.Storage != StorageMongo && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("unsupported STORAGE %q, expected %q or %q", cfg.Storage, StorageMongo, StorageMemory)
	}
	return cfg, nil
}

// Address is the listen address for the HTTP server.
func (c *Config) Address() string {
	return ":" + strings.TrimPrefix(c.ServerPort, ":")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
