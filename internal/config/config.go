// Package config holds the process-wide static configuration: environment
// settings plus the YAML dictionary and variables files. Everything here is
// loaded once at startup and treated as read-only afterwards.
package config

import "os"

// Config holds environment-derived application settings.
type Config struct {
	Port      string
	ServerURL string
	// UploadDir is the root for stored profile images (<UploadDir>/profile).
	UploadDir string
	// DataDir holds the static data files (dict.yml, variables.yml, the
	// default profile image).
	DataDir string
}

// FromEnv reads application configuration from environment variables.
func FromEnv() Config {
	return Config{
		Port:      getEnv("PORT", "8080"),
		ServerURL: getEnv("SERVER_URL", "http://localhost:8080"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		DataDir:   getEnv("DATA_DIR", "data"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
