// Package season groups the episodes of a title into ordered seasons.
package season

import (
	"cmp"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Seasons is the result of Organize: episodes grouped by season and
// ordered by episode number inside each group.
type Seasons struct {
	groups map[int][]catalog.Episode
	index  []int
}

// Organize groups episodes by season. Episodes without a season land in
// the first one. Episodes sharing a number keep their input order.
func Organize(episodes []catalog.Episode) Seasons {
	groups := lo.GroupBy(episodes, func(e catalog.Episode) int {
		return e.SeasonOrDefault()
	})

	for n, group := range groups {
		slices.SortStableFunc(group, func(a, b catalog.Episode) int {
			return cmp.Compare(a.Number, b.Number)
		})
		groups[n] = group
	}

	index := lo.Keys(groups)
	slices.Sort(index)

	return Seasons{groups: groups, index: index}
}

// Index returns the distinct season numbers in ascending order.
func (s Seasons) Index() []int {
	return slices.Clone(s.index)
}

// Len returns the number of seasons.
func (s Seasons) Len() int {
	return len(s.index)
}

// Has reports whether the season exists.
func (s Seasons) Has(n int) bool {
	_, ok := s.groups[n]
	return ok
}

// Episodes returns the ordered episodes of season n. An unknown season
// yields an empty list.
func (s Seasons) Episodes(n int) []catalog.Episode {
	group, ok := s.groups[n]
	if !ok {
		return []catalog.Episode{}
	}

	return slices.Clone(group)
}

// Find returns the episode with the given season and number.
func (s Seasons) Find(n, number int) (catalog.Episode, bool) {
	return lo.Find(s.groups[n], func(e catalog.Episode) bool {
		return e.Number == number
	})
}
