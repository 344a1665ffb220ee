// Package where resolves the directories and files marquee reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "MARQUEE_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory.
// It can be overridden with MARQUEE_CONFIG_PATH.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Marquee))
}

// Cache returns the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Marquee))
}

// Logs returns the directory log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Catalogs returns the directory local JSON catalogs are read from.
func Catalogs() string {
	return ensureDir(filepath.Join(Config(), "catalogs"))
}

// SyncedCatalog is the file the synced catalog is written to.
func SyncedCatalog() string {
	return filepath.Join(Catalogs(), "synced.json")
}

// Database is the default SQLite catalog.
func Database() string {
	return filepath.Join(Catalogs(), "catalog.db")
}

// RemoteCache is the directory remote catalog responses are cached in.
func RemoteCache() string {
	return filepath.Join(Cache(), "remote")
}

// VersionCache is the file the latest known version is cached in.
func VersionCache() string {
	return filepath.Join(Cache(), "version.json")
}
