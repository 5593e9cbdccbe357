package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/modeldocs/internal/logfields"
)

// envFileNames are tried in every directory passed to LoadEnvFiles.
var envFileNames = []string{".env", ".env.local"}

// LoadEnvFiles loads .env and .env.local from each dir in order. Variables
// already present in the process environment are never overwritten, so the
// first definition wins. Missing files are ignored. It returns the files
// that were loaded.
func LoadEnvFiles(dirs ...string) ([]string, error) {
	var loaded []string
	seen := make(map[string]bool)
	for _, dir := range dirs {
		for _, name := range envFileNames {
			path := filepath.Join(dir, name)
			abs, err := filepath.Abs(path)
			if err == nil {
				if seen[abs] {
					continue
				}
				seen[abs] = true
			}
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err := godotenv.Load(path); err != nil {
				return loaded, err
			}
			slog.Debug("Loaded environment file", logfields.Path(path))
			loaded = append(loaded, path)
		}
	}
	return loaded, nil
}
