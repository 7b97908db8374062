package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultEnvFile is the per-user settings file, $XDG_CONFIG_HOME/gallery/.env.
func DefaultEnvFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gallery", ".env")
}

// CatalogPath is where the catalog for the images under root lives.
func (c Config) CatalogPath(root string) string {
	return filepath.Join(root, c.FileName)
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
