// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/filesystem"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "VIDPLAY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory: VIDPLAY_CONFIG_PATH, or the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Cache is the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs is the directory of the daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Catalog is where "vidplay catalog init" writes a starter catalog.
func Catalog() string {
	return filepath.Join(Config(), "videos.txt")
}

// Queries is the remembered search terms file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}
