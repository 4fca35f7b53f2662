package confs

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadConfig loads environment variables from a .env file if present.
func LoadConfig() error {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Addr returns the HTTP listen address.
func Addr() string {
	return getenv("HTTP_ADDR", "0.0.0.0:3536")
}

// JWTSecret returns the session signing secret.
func JWTSecret() string {
	return getenv("JWT_SECRET", "dev_secret_change_me")
}

// DataPath returns the root directory for server-managed files.
func DataPath() string {
	return getenv("DATA_PATH", "data")
}

// PicsPath returns the profile picture directory.
func PicsPath() string {
	return filepath.Join(DataPath(), "pics")
}

// RingsPath returns the ring artifact directory.
func RingsPath() string {
	return filepath.Join(DataPath(), "rings")
}
