package catalog

import (
	"fmt"

	"github.com/samber/mo"
)

// DefaultSeason is assigned to episodes that carry no season number.
const DefaultSeason = 1

// Episode is one installment of a multi-episode title.
type Episode struct {
	Season int    `json:"season"`
	Number int    `json:"number"`
	Name   string `json:"title"`

	Thumbnail mo.Option[string] `json:"thumbnail" jsonschema:"type=string"`
	Duration  mo.Option[string] `json:"duration" jsonschema:"type=string"`
	Size      mo.Option[string] `json:"size" jsonschema:"type=string"`
	Quality   mo.Option[string] `json:"quality" jsonschema:"type=string"`

	// ComingSoon locks every control of the episode.
	ComingSoon  bool              `json:"isComingSoon"`
	ReleaseDate mo.Option[string] `json:"releaseDate" jsonschema:"type=string"`

	Actions Actions `json:"actions"`
}

func (e Episode) String() string {
	if e.Name == "" {
		return fmt.Sprintf("Episode %d", e.Number)
	}
	return e.Name
}

// ThumbnailOr returns the episode thumbnail or the given parent thumbnail.
func (e Episode) ThumbnailOr(parent string) string {
	return e.Thumbnail.OrElse(parent)
}

// SeasonOrDefault returns the season number, DefaultSeason when unset.
func (e Episode) SeasonOrDefault() int {
	if e.Season == 0 {
		return DefaultSeason
	}
	return e.Season
}
