// Package provider lists the catalog backends and builds the configured one.
package provider

import (
	"time"

	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/network"
	"github.com/marquee-cli/marquee/provider/local"
	"github.com/marquee-cli/marquee/provider/remote"
	"github.com/marquee-cli/marquee/provider/sqlite"
	"github.com/marquee-cli/marquee/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Provider describes a catalog backend.
type Provider struct {
	ID           string
	Name         string
	Description  string
	CreateSource func() (catalog.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns every available backend.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:          local.ID,
			Name:        "Local",
			Description: "JSON catalog files",
			CreateSource: func() (catalog.Source, error) {
				return local.New(LocalPath())
			},
		},
		{
			ID:          remote.ID,
			Name:        "Remote",
			Description: "Catalog HTTP API",
			CreateSource: func() (catalog.Source, error) {
				token, err := auth.GetToken()
				if err != nil {
					log.Warnf("remote catalog: keyring: %s", err)
				}

				return remote.New(remote.Options{
					BaseURL:       viper.GetString(key.CatalogRemoteURL),
					Token:         token,
					CacheDir:      where.RemoteCache(),
					CacheLifetime: cacheLifetime(),
					Client:        network.Client,
				})
			},
		},
		{
			ID:          sqlite.ID,
			Name:        "SQLite",
			Description: "SQLite catalog database",
			CreateSource: func() (catalog.Source, error) {
				return sqlite.Open(SQLitePath(), viper.GetInt(key.SearchLimit))
			},
		},
	}
}

// Get finds a backend by id.
func Get(id string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.ID == id
	})
}

// LocalPath is the configured local catalog path.
func LocalPath() string {
	if path := viper.GetString(key.CatalogPath); path != "" {
		return path
	}
	return where.Catalogs()
}

// SQLitePath is the configured SQLite catalog path.
func SQLitePath() string {
	if path := viper.GetString(key.CatalogSQLitePath); path != "" {
		return path
	}
	return where.Database()
}

func cacheLifetime() time.Duration {
	return time.Duration(viper.GetInt(key.CatalogCacheHours)) * time.Hour
}

// CollectGarbage removes expired remote catalog responses.
func CollectGarbage() {
	if n := remote.CollectGarbage(where.RemoteCache(), cacheLifetime()); n > 0 {
		log.Infof("removed %d expired remote responses", n)
	}
}
