// Package detail decides which controls and facts the detail screen shows.
package detail

import (
	"fmt"
	"math"
	"strconv"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/mo"
)

// Offer lists the controls available for a title or an episode.
type Offer struct {
	Watch    bool `json:"watch"`
	Download bool `json:"download"`
	// Locked is set for coming soon episodes. No control is offered then.
	Locked      bool              `json:"locked"`
	ReleaseDate mo.Option[string] `json:"releaseDate" jsonschema:"type=string"`
}

// Any reports whether at least one control is offered.
func (o Offer) Any() bool {
	return o.Watch || o.Download
}

func offer(a catalog.Actions) Offer {
	return Offer{
		Watch:    a.Play.IsPresent(),
		Download: a.Link.IsPresent() || a.Download.IsPresent(),
	}
}

// ForTitle returns the title level controls. Multi-episode titles only
// offer controls on their episodes.
func ForTitle(t *catalog.Title) Offer {
	if t.IsMultiEpisode() {
		return Offer{}
	}
	return offer(t.Actions)
}

// ForEpisode returns the controls of an episode.
func ForEpisode(e catalog.Episode) Offer {
	if e.ComingSoon {
		return Offer{Locked: true, ReleaseDate: e.ReleaseDate}
	}
	return offer(e.Actions)
}

// Fact is a labelled descriptive attribute.
type Fact struct {
	Label string
	Value string
}

// Facts returns the present attributes of a title in display order.
func Facts(t *catalog.Title) []Fact {
	a := t.Attributes

	var facts []Fact
	add := func(label string, value mo.Option[string]) {
		if v, ok := value.Get(); ok {
			facts = append(facts, Fact{Label: label, Value: v})
		}
	}

	if t.Category != "" {
		add("Category", mo.Some(t.Category))
	}
	add("Year", format(a.Year, strconv.Itoa))
	add("Rating", format(a.Rating, func(r float64) string {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}))
	add("Views", format(a.Views, compact))
	add("Duration", a.Duration)
	add("Episodes", a.EpisodeRange)
	add("Quality", a.Quality)
	add("Audio", a.Audio)
	add("Subtitles", a.Subtitle)
	add("Size", a.FileSize)

	return facts
}

func format[T any](value mo.Option[T], f func(T) string) mo.Option[string] {
	if v, ok := value.Get(); ok {
		return mo.Some(f(v))
	}
	return mo.None[string]()
}

// compact formats view counts like 1.2K or 3.4M. The unit is picked
// after rounding, so 999960 reads 1.0M.
func compact(n int64) string {
	units := []string{"", "K", "M", "B"}

	round := func(v float64) float64 { return math.Round(v*10) / 10 }

	value, unit := float64(n), 0
	for unit < len(units)-1 && math.Abs(round(value)) >= 1000 {
		value /= 1000
		unit++
	}

	if unit == 0 {
		return strconv.FormatInt(n, 10)
	}
	return fmt.Sprintf("%.1f%s", round(value), units[unit])
}
