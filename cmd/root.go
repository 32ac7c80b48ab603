package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	DBPath  string
	LogPath string
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags() (*Config, error) {
	config := &Config{}

	// .env files are optional; flags and real env still win.
	_ = godotenv.Load(".env.local", ".env")

	flag.StringVar(&config.DBPath, "db", os.Getenv("TAVOLO_DB"), "Path to SQLite database file (default: ~/.tavolo/tavolo.db)")
	flag.StringVar(&config.LogPath, "log", os.Getenv("TAVOLO_LOG"), "Path to log file (default: ~/.tavolo/tavolo.log)")
	flag.Parse()

	var dataDir string
	if config.DBPath == "" || config.LogPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		dataDir = filepath.Join(home, ".tavolo")
		if err := os.MkdirAll(dataDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if config.DBPath == "" {
		config.DBPath = filepath.Join(dataDir, "tavolo.db")
	}
	if config.LogPath == "" {
		config.LogPath = filepath.Join(dataDir, "tavolo.log")
	}

	return config, nil
}
