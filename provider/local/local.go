// Package local reads titles from JSON catalog files.
package local

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
)

const ID = "local"

// Source serves the titles of every JSON file found at a path.
type Source struct {
	path   string
	titles []*catalog.Title
	byID   map[string]*catalog.Title
}

// New loads the catalog at path, which is either a JSON file or a
// directory of them. Later files win on duplicate ids.
func New(path string) (*Source, error) {
	files, err := catalogFiles(path)
	if err != nil {
		return nil, err
	}

	s := &Source{path: path, byID: make(map[string]*catalog.Title)}
	for _, file := range files {
		if err := s.load(file); err != nil {
			return nil, err
		}
	}

	log.Infof("local catalog %s: %s", path, util.Quantify(len(s.titles), "title", "titles"))
	return s, nil
}

func catalogFiles(path string) ([]string, error) {
	fs := filesystem.API()

	isDir, err := fs.IsDir(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	if !isDir {
		return []string{path}, nil
	}

	entries, err := fs.ReadDir(path)
	if err != nil {
		return nil, err
	}

	files := lo.FilterMap(entries, func(e os.FileInfo, _ int) (string, bool) {
		return filepath.Join(path, e.Name()), !e.IsDir() && filepath.Ext(e.Name()) == ".json"
	})
	sort.Strings(files)
	return files, nil
}

func (s *Source) load(file string) error {
	f, err := filesystem.API().Open(file)
	if err != nil {
		return err
	}
	defer util.Ignore(f.Close)

	titles, err := catalog.DecodeList(f)
	if err != nil {
		return fmt.Errorf("%s: %w", util.FileStem(file), err)
	}

	for _, t := range titles {
		if t.ID == "" {
			log.Warnf("local catalog %s: skipping title without id %q", file, t.Name)
			continue
		}

		if _, ok := s.byID[t.ID]; ok {
			s.titles = lo.Reject(s.titles, func(other *catalog.Title, _ int) bool {
				return other.ID == t.ID
			})
		}

		s.byID[t.ID] = t
		s.titles = append(s.titles, t)
	}

	return nil
}

func (s *Source) Name() string {
	return "Local"
}

func (s *Source) ID() string {
	return ID
}

// Search matches the query fuzzily against title names. Closer matches come first.
func (s *Source) Search(query string) ([]*catalog.Title, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.titles, nil
	}

	names := lo.Map(s.titles, func(t *catalog.Title, _ int) string {
		return t.Name
	})

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) *catalog.Title {
		return s.titles[r.OriginalIndex]
	}), nil
}

// TitleOf returns the title with the given id.
func (s *Source) TitleOf(id string) (*catalog.Title, error) {
	t, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, catalog.ErrNotFound)
	}
	return t, nil
}
