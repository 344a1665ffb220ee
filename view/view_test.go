package view

import (
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/season"
	. "github.com/smartystreets/goconvey/convey"
)

func TestReduce(t *testing.T) {
	Convey("Given the initial state", t, func() {
		state := Initial()

		Convey("It shows the episodes of the first season with the viewer closed", func() {
			So(state.Tab, ShouldEqual, TabEpisodes)
			So(state.Season, ShouldEqual, 1)
			So(state.ViewerOpen(), ShouldBeFalse)
		})

		Convey("Selecting a tab sets it unconditionally", func() {
			state = Reduce(state, SelectTab{Tab: TabInfo})
			So(state.Tab, ShouldEqual, TabInfo)

			state = Reduce(state, SelectTab{Tab: TabInfo})
			So(state.Tab, ShouldEqual, TabInfo)
		})

		Convey("Selecting a season is not validated", func() {
			state = Reduce(state, SelectSeason{Season: 42})
			So(state.Season, ShouldEqual, 42)
		})

		Convey("The viewer opens at an index and closes again", func() {
			state = Reduce(state, OpenScreenshot{Index: 2})
			So(state.Viewer.MustGet(), ShouldEqual, 2)

			state = Reduce(state, CloseViewer{})
			So(state.ViewerOpen(), ShouldBeFalse)
		})

		Convey("A nil event keeps the state", func() {
			So(Reduce(state, nil), ShouldResemble, state)
		})

		Convey("Reducing does not modify the previous state", func() {
			next := Reduce(state, SelectTab{Tab: TabInfo})
			So(state.Tab, ShouldEqual, TabEpisodes)
			So(next.Tab, ShouldEqual, TabInfo)
		})
	})
}

func TestDisplayed(t *testing.T) {
	Convey("Given a title with a single season", t, func() {
		seasons := season.Organize([]catalog.Episode{{Number: 2}, {Number: 1}})
		state := Initial()

		Convey("The first season is displayed in order", func() {
			displayed := state.Displayed(seasons)
			So(displayed, ShouldHaveLength, 2)
			So(displayed[0].Number, ShouldEqual, 1)
		})

		Convey("Selecting a missing season displays nothing", func() {
			state = Reduce(state, SelectSeason{Season: 2})
			So(state.Displayed(seasons), ShouldBeEmpty)
		})
	})
}

func TestSeasonStep(t *testing.T) {
	Convey("Given seasons 1, 2 and 4", t, func() {
		seasons := season.Organize([]catalog.Episode{
			{Season: 1, Number: 1},
			{Season: 2, Number: 1},
			{Season: 4, Number: 1},
		})
		state := Initial()

		Convey("Next moves along the index", func() {
			event, ok := state.SeasonStep(seasons, 1)
			So(ok, ShouldBeTrue)
			So(event.Season, ShouldEqual, 2)

			state = Reduce(state, event)
			event, ok = state.SeasonStep(seasons, 1)
			So(ok, ShouldBeTrue)
			So(event.Season, ShouldEqual, 4)
		})

		Convey("Previous stops at the first season", func() {
			_, ok := state.SeasonStep(seasons, -1)
			So(ok, ShouldBeFalse)
		})

		Convey("A season outside the index restarts from the edge", func() {
			state = Reduce(state, SelectSeason{Season: 9})
			event, ok := state.SeasonStep(seasons, -1)
			So(ok, ShouldBeTrue)
			So(event.Season, ShouldEqual, 4)
		})
	})

	Convey("Without seasons there is nothing to step to", t, func() {
		_, ok := Initial().SeasonStep(season.Organize(nil), 1)
		So(ok, ShouldBeFalse)
	})
}
