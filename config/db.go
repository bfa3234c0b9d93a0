package config

import (
	"os"
)

// SurrealConfig holds the connection settings for the graph database.
type SurrealConfig struct {
	URL       string
	Namespace string
	Database  string
	Username  string
	Password  string
}

// LoadSurrealConfig reads the database settings from the environment,
// falling back to local development defaults.
func LoadSurrealConfig() SurrealConfig {
	return SurrealConfig{
		URL:       getEnv("SURREAL_DB_URL", "ws://127.0.0.1:8000/rpc"),
		Namespace: getEnv("SURREAL_NS", "main"),
		Database:  getEnv("SURREAL_DB", "main"),
		Username:  getEnv("SURREAL_USER", "root"),
		Password:  getEnv("SURREAL_PASS", "root"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
