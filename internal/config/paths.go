package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mitchellh/go-homedir"
)

const configFileName = "nyoom.toml"

// DefaultPath returns the platform-specific location of nyoom.toml
func DefaultPath() (string, error) {
	dir, err := defaultDir(runtime.GOOS)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func defaultDir(goos string) (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "dev.ryanccn.nyoom"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Ryan Cao", "nyoom", "config"), nil
	default:
		base := os.Getenv("XDG_CONFIG_HOME")
		if base == "" || !filepath.IsAbs(base) {
			base = filepath.Join(home, ".config")
		}
		return filepath.Join(base, "nyoom"), nil
	}
}

// ExpandPath expands a leading ~ and makes the path absolute
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(expanded)
}
