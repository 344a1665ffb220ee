package remote

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type searchData struct {
	Queries map[string][]json.RawMessage `json:"queries"`
}

// searchCacher remembers raw search responses per query.
type searchCacher struct {
	internal *gache.Cache[*searchData]
	mu       sync.RWMutex
}

func newSearchCacher(path string, lifetime time.Duration) *searchCacher {
	return &searchCacher{
		internal: gache.New[*searchData](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (c *searchCacher) Get(query string) mo.Option[[]json.RawMessage] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[[]json.RawMessage]()
	}

	if raws, ok := data.Queries[normalizeQuery(query)]; ok {
		return mo.Some(raws)
	}

	return mo.None[[]json.RawMessage]()
}

func (c *searchCacher) Set(query string, raws []json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &searchData{Queries: make(map[string][]json.RawMessage)}
	}

	data.Queries[normalizeQuery(query)] = raws
	return c.internal.Set(data)
}
