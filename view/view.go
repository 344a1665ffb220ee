// Package view holds the local state of the title detail screen and the
// transitions between its states.
package view

import (
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/season"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Tab is the visible section of the detail screen.
type Tab int

const (
	TabEpisodes Tab = iota
	TabInfo
)

func (t Tab) String() string {
	if t == TabInfo {
		return "Info"
	}
	return "Episodes"
}

// State of the detail screen.
type State struct {
	Tab    Tab
	Season int
	// Viewer holds the index of the screenshot being viewed, if any.
	Viewer mo.Option[int]
}

// Initial returns the state the detail screen starts in.
func Initial() State {
	return State{
		Tab:    TabEpisodes,
		Season: catalog.DefaultSeason,
		Viewer: mo.None[int](),
	}
}

// Event is a user interaction that changes the state.
type Event interface {
	apply(State) State
}

// SelectTab switches to Tab.
type SelectTab struct{ Tab Tab }

// SelectSeason switches to Season. The season is not validated.
type SelectSeason struct{ Season int }

// OpenScreenshot opens the viewer at Index.
type OpenScreenshot struct{ Index int }

// CloseViewer closes the screenshot viewer.
type CloseViewer struct{}

func (e SelectTab) apply(s State) State {
	s.Tab = e.Tab
	return s
}

func (e SelectSeason) apply(s State) State {
	s.Season = e.Season
	return s
}

func (e OpenScreenshot) apply(s State) State {
	s.Viewer = mo.Some(e.Index)
	return s
}

func (CloseViewer) apply(s State) State {
	s.Viewer = mo.None[int]()
	return s
}

// Reduce returns the state after event. A nil event changes nothing.
func Reduce(s State, event Event) State {
	if event == nil {
		return s
	}
	return event.apply(s)
}

// Displayed returns the episodes of the selected season, empty when the
// season does not exist.
func (s State) Displayed(seasons season.Seasons) []catalog.Episode {
	return seasons.Episodes(s.Season)
}

// ViewerOpen reports whether a screenshot is being viewed.
func (s State) ViewerOpen() bool {
	return s.Viewer.IsPresent()
}

// SeasonStep proposes the season delta positions away from the selected
// one in the index. It returns false when there is nowhere to go.
func (s State) SeasonStep(seasons season.Seasons, delta int) (SelectSeason, bool) {
	index := seasons.Index()
	if len(index) == 0 {
		return SelectSeason{}, false
	}

	current := lo.IndexOf(index, s.Season)
	if current == -1 {
		// the selected season is not in the index, restart from its edge
		if delta > 0 {
			return SelectSeason{Season: index[0]}, true
		}
		return SelectSeason{Season: index[len(index)-1]}, true
	}

	next := current + delta
	if next < 0 || next >= len(index) {
		return SelectSeason{}, false
	}

	return SelectSeason{Season: index[next]}, true
}
