package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/feguide/internal/logfields"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads the first readable env file found in dir. godotenv.Load
// never overrides variables already present in the process environment.
func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", logfields.File(path), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment file", logfields.File(path))
		return
	}
}
