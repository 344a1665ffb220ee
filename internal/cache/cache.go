// Package cache stores JSON documents on disk for a limited time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/log"
)

// Store is a directory of cached documents that expire after TTL.
type Store struct {
	Dir string
	TTL time.Duration
}

// Key derives a file name from the request parts.
func Key(parts ...string) string {
	normalized := strings.ToLower(strings.Join(parts, "\x00"))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// Read decodes the document stored under key into target. It reports
// false for missing, expired or unreadable entries.
func (s Store) Read(key string, target any) bool {
	fs := filesystem.API()
	path := filepath.Join(s.Dir, key)

	info, err := fs.Stat(path)
	if err != nil || time.Since(info.ModTime()) > s.TTL {
		return false
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data under key, replacing the previous entry atomically.
func (s Store) Write(key string, data any) error {
	fs := filesystem.API()
	if err := fs.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return err
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	path := filepath.Join(s.Dir, key)
	tmp := path + ".tmp"
	if err := fs.WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return fs.Rename(tmp, path)
}

// CollectGarbage removes expired entries and returns how many were removed.
func (s Store) CollectGarbage() int {
	fs := filesystem.API()
	removed := 0

	_ = fs.Walk(s.Dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > s.TTL {
			if err := fs.Remove(path); err != nil {
				log.Warnf("cache: remove %s: %s", path, err)
				return nil
			}
			removed++
		}
		return nil
	})

	return removed
}
