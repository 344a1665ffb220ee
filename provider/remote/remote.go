// Package remote reads titles from the marquee catalog HTTP API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/internal/cache"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
)

const ID = "remote"

// Options configure a remote Source.
type Options struct {
	// BaseURL of the API, e.g. https://catalog.example.com/api
	BaseURL string
	// Token is sent as a bearer token when set.
	Token string
	// CacheDir holds cached responses. Caching is off when empty.
	CacheDir string
	// CacheLifetime of cached responses.
	CacheLifetime time.Duration
	// Client defaults to http.DefaultClient.
	Client *http.Client
	// Timeout of a single request.
	Timeout time.Duration
}

func titlesStore(dir string, lifetime time.Duration) *cache.Store {
	return &cache.Store{Dir: filepath.Join(dir, "titles"), TTL: lifetime}
}

// CollectGarbage removes expired title documents cached under dir.
func CollectGarbage(dir string, lifetime time.Duration) int {
	return titlesStore(dir, lifetime).CollectGarbage()
}

// Source talks to
//
//	GET {base}/titles?q={query}
//	GET {base}/titles/{id}
type Source struct {
	base    *url.URL
	token   string
	client  *http.Client
	timeout time.Duration

	titles   *cache.Store
	searches *searchCacher
}

// New returns a remote source for options.
func New(options Options) (*Source, error) {
	if options.BaseURL == "" {
		return nil, fmt.Errorf("remote catalog: base url is not set")
	}

	base, err := url.Parse(strings.TrimSuffix(options.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("remote catalog: %w", err)
	}

	s := &Source{
		base:    base,
		token:   options.Token,
		client:  lo.Ternary(options.Client != nil, options.Client, http.DefaultClient),
		timeout: lo.Ternary(options.Timeout > 0, options.Timeout, 15*time.Second),
	}

	if options.CacheDir != "" {
		s.titles = titlesStore(options.CacheDir, options.CacheLifetime)
		s.searches = newSearchCacher(filepath.Join(options.CacheDir, "searches.json"), options.CacheLifetime)
	}

	return s, nil
}

func (s *Source) Name() string {
	return "Remote"
}

func (s *Source) ID() string {
	return ID
}

// Search asks the API for titles matching query.
func (s *Source) Search(query string) ([]*catalog.Title, error) {
	if s.searches != nil {
		if raws, ok := s.searches.Get(query).Get(); ok {
			return decodeAll(raws)
		}
	}

	endpoint := s.base.JoinPath("titles")
	endpoint.RawQuery = url.Values{"q": {query}}.Encode()

	body, err := s.get(endpoint.String())
	if err != nil {
		return nil, err
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, fmt.Errorf("remote catalog: decode search: %w", err)
	}

	if s.searches != nil {
		if err := s.searches.Set(query, raws); err != nil {
			log.Warnf("remote catalog: cache search %q: %s", query, err)
		}
	}

	return decodeAll(raws)
}

// TitleOf fetches a single title.
func (s *Source) TitleOf(id string) (*catalog.Title, error) {
	key := cache.Key(s.base.String(), id)

	var raw json.RawMessage
	if s.titles != nil && s.titles.Read(key, &raw) {
		return catalog.Decode(bytes.NewReader(raw))
	}

	body, err := s.get(s.base.JoinPath("titles", id).String())
	if err != nil {
		return nil, err
	}

	title, err := catalog.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	if s.titles != nil {
		if err := s.titles.Write(key, json.RawMessage(body)); err != nil {
			log.Warnf("remote catalog: cache title %s: %s", id, err)
		}
	}

	return title, nil
}

func (s *Source) get(endpoint string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	log.Debugf("remote catalog: GET %s", endpoint)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote catalog: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, catalog.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("remote catalog: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func decodeAll(raws []json.RawMessage) ([]*catalog.Title, error) {
	titles := make([]*catalog.Title, 0, len(raws))
	for _, raw := range raws {
		title, err := catalog.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, nil
}
