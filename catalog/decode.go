package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// RawTitle is a title as it arrives from upstream, before defaults are applied.
type RawTitle struct {
	ID           flexString   `json:"id"`
	Title        flexString   `json:"title"`
	Category     flexString   `json:"category"`
	Duration     flexString   `json:"duration"`
	Quality      flexString   `json:"quality"`
	Audio        flexString   `json:"audio"`
	Subtitle     flexString   `json:"subtitle"`
	FileSize     flexString   `json:"fileSize"`
	Year         flexNumber   `json:"year"`
	Rating       flexNumber   `json:"rating"`
	Views        flexNumber   `json:"views"`
	Description  flexString   `json:"description"`
	EpisodeRange flexString   `json:"episodeRange"`
	CustomBadges []flexString `json:"customBadges"`
	Thumbnail    flexString   `json:"thumbnail"`
	DetailImage  flexString   `json:"detailImage"`
	Screenshots  []flexString `json:"screenshots"`
	TelegramCode flexString   `json:"telegramCode"`
	DownloadCode flexString   `json:"downloadCode"`
	DownloadLink flexString   `json:"downloadLink"`
	Episodes     []RawEpisode `json:"episodes"`
}

// RawEpisode is an episode as it arrives from upstream.
type RawEpisode struct {
	Season       flexNumber `json:"season"`
	Number       flexNumber `json:"number"`
	Title        flexString `json:"title"`
	Thumbnail    flexString `json:"thumbnail"`
	Duration     flexString `json:"duration"`
	Size         flexString `json:"size"`
	Quality      flexString `json:"quality"`
	IsComingSoon flexString `json:"isComingSoon"`
	ReleaseDate  flexString `json:"releaseDate"`
	TelegramCode flexString `json:"telegramCode"`
	DownloadCode flexString `json:"downloadCode"`
	DownloadLink flexString `json:"downloadLink"`
}

// Decode reads a single title from r and normalizes it.
func Decode(r io.Reader) (*Title, error) {
	var raw RawTitle
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode title: %w", err)
	}

	title := Normalize(raw)
	return &title, nil
}

// DecodeList reads either a JSON array of titles or a single title object.
func DecodeList(r io.Reader) ([]*Title, error) {
	var payload json.RawMessage
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	trimmed := strings.TrimSpace(string(payload))
	if !strings.HasPrefix(trimmed, "[") {
		title, err := Decode(strings.NewReader(trimmed))
		if err != nil {
			return nil, err
		}
		return []*Title{title}, nil
	}

	var raws []RawTitle
	if err := json.Unmarshal(payload, &raws); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return lo.Map(raws, func(raw RawTitle, _ int) *Title {
		title := Normalize(raw)
		return &title
	}), nil
}

// Normalize applies the ingestion defaults: blank strings become absent,
// unparsable numbers become absent and a missing season becomes DefaultSeason.
func Normalize(raw RawTitle) Title {
	return Title{
		ID:       strings.TrimSpace(string(raw.ID)),
		Name:     string(raw.Title),
		Category: strings.TrimSpace(string(raw.Category)),
		Attributes: Attributes{
			Duration:     optional(raw.Duration),
			Quality:      optional(raw.Quality),
			Audio:        optional(raw.Audio),
			Subtitle:     optional(raw.Subtitle),
			FileSize:     optional(raw.FileSize),
			Year:         optionalNumber(raw.Year, func(n flexNumber) int { return n.Int() }),
			Rating:       optionalNumber(raw.Rating, func(n flexNumber) float64 { return n.value }),
			Views:        optionalNumber(raw.Views, func(n flexNumber) int64 { return int64(n.value) }),
			Description:  optional(raw.Description),
			EpisodeRange: optional(raw.EpisodeRange),
			Badges:       nonBlank(raw.CustomBadges),
		},
		Media: Media{
			Thumbnail:   string(raw.Thumbnail),
			Banner:      optional(raw.DetailImage),
			Screenshots: nonBlank(raw.Screenshots),
		},
		Actions: actions(raw.TelegramCode, raw.DownloadCode, raw.DownloadLink),
		Episodes: lo.Map(raw.Episodes, func(e RawEpisode, _ int) Episode {
			return normalizeEpisode(e)
		}),
	}
}

func normalizeEpisode(raw RawEpisode) Episode {
	season := DefaultSeason
	if raw.Season.set && raw.Season.Int() != 0 {
		season = raw.Season.Int()
	}

	return Episode{
		Season:      season,
		Number:      raw.Number.Int(),
		Name:        string(raw.Title),
		Thumbnail:   optional(raw.Thumbnail),
		Duration:    optional(raw.Duration),
		Size:        optional(raw.Size),
		Quality:     optional(raw.Quality),
		ComingSoon:  strings.EqualFold(string(raw.IsComingSoon), "true"),
		ReleaseDate: optional(raw.ReleaseDate),
		Actions:     actions(raw.TelegramCode, raw.DownloadCode, raw.DownloadLink),
	}
}

func actions(play, download, link flexString) Actions {
	return Actions{
		Play:     optional(play),
		Download: optional(download),
		Link:     optional(link),
	}
}

func optional(s flexString) mo.Option[string] {
	if strings.TrimSpace(string(s)) == "" {
		return mo.None[string]()
	}
	return mo.Some(string(s))
}

func optionalNumber[T any](n flexNumber, convert func(flexNumber) T) mo.Option[T] {
	if !n.set {
		return mo.None[T]()
	}
	return mo.Some(convert(n))
}

func nonBlank(values []flexString) []string {
	return lo.FilterMap(values, func(v flexString, _ int) (string, bool) {
		return string(v), strings.TrimSpace(string(v)) != ""
	})
}
