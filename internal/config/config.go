package config

import "os"

// Config holds all service configuration loaded from environment variables.
type Config struct {
	Port         string
	DatabasePath string
	ClientDir    string
}

func Load() *Config {
	return &Config{
		Port:         getenv("PORT", "8080"),
		DatabasePath: getenv("DATABASE_PATH", "./database.sqlite"),
		ClientDir:    getenv("CLIENT_DIR", "./client"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
