package catalog

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Categories that always render as multi-episode titles.
const (
	CategorySeries      = "Series"
	CategoryKoreanDrama = "Korean Drama"
)

// MaxBadges is the number of custom badges shown for a title.
const MaxBadges = 3

// Title is a single catalog entry: a movie or a (multi-season) series.
type Title struct {
	ID       string `json:"id"`
	Name     string `json:"title"`
	Category string `json:"category"`

	Attributes Attributes `json:"attributes"`
	Media      Media      `json:"media"`
	Actions    Actions    `json:"actions"`

	Episodes []Episode `json:"episodes"`
}

// Attributes are the optional descriptive facts of a title.
type Attributes struct {
	Duration     mo.Option[string]  `json:"duration" jsonschema:"type=string"`
	Quality      mo.Option[string]  `json:"quality" jsonschema:"type=string"`
	Audio        mo.Option[string]  `json:"audio" jsonschema:"type=string"`
	Subtitle     mo.Option[string]  `json:"subtitle" jsonschema:"type=string"`
	FileSize     mo.Option[string]  `json:"fileSize" jsonschema:"type=string"`
	Year         mo.Option[int]     `json:"year" jsonschema:"type=integer"`
	Rating       mo.Option[float64] `json:"rating" jsonschema:"type=number"`
	Views        mo.Option[int64]   `json:"views" jsonschema:"type=integer"`
	Description  mo.Option[string]  `json:"description" jsonschema:"type=string"`
	EpisodeRange mo.Option[string]  `json:"episodeRange" jsonschema:"type=string"`
	Badges       []string           `json:"customBadges"`
}

// Media groups the image references of a title.
type Media struct {
	Thumbnail   string            `json:"thumbnail"`
	Banner      mo.Option[string] `json:"detailImage" jsonschema:"type=string"`
	Screenshots []string          `json:"screenshots"`
}

func (t *Title) String() string {
	return t.Name
}

// IsMultiEpisode reports whether the title renders as a series.
// Either a series category or a non-empty episode list is enough.
func (t *Title) IsMultiEpisode() bool {
	return t.Category == CategorySeries ||
		t.Category == CategoryKoreanDrama ||
		len(t.Episodes) > 0
}

// TopBadges returns at most MaxBadges custom badges, in their original order.
func (t *Title) TopBadges() []string {
	return lo.Subset(t.Attributes.Badges, 0, MaxBadges)
}

// Banner returns the detail image, or the thumbnail when there is none.
func (t *Title) Banner() string {
	return t.Media.Banner.OrElse(t.Media.Thumbnail)
}
