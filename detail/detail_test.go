package detail

import (
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestForTitle(t *testing.T) {
	Convey("Given a movie with only a play code", t, func() {
		movie := &catalog.Title{
			Category: "Movie",
			Actions:  catalog.Actions{Play: mo.Some("P1")},
		}

		Convey("Watch is offered but download is not", func() {
			offer := ForTitle(movie)
			So(offer.Watch, ShouldBeTrue)
			So(offer.Download, ShouldBeFalse)
		})
	})

	Convey("Given a movie with a direct download link", t, func() {
		movie := &catalog.Title{Actions: catalog.Actions{Link: mo.Some("https://cdn/x")}}
		So(ForTitle(movie).Download, ShouldBeTrue)
		So(ForTitle(movie).Watch, ShouldBeFalse)
	})

	Convey("Given a series", t, func() {
		series := &catalog.Title{
			Category: catalog.CategorySeries,
			Actions:  catalog.Actions{Play: mo.Some("P1")},
		}

		Convey("Controls live on the episodes", func() {
			So(ForTitle(series).Any(), ShouldBeFalse)
		})
	})
}

func TestForEpisode(t *testing.T) {
	Convey("Given a coming soon episode with every code", t, func() {
		episode := catalog.Episode{
			ComingSoon:  true,
			ReleaseDate: mo.Some("June 1"),
			Actions: catalog.Actions{
				Play:     mo.Some("P1"),
				Download: mo.Some("D1"),
			},
		}

		Convey("It is locked and shows the release date", func() {
			offer := ForEpisode(episode)
			So(offer.Locked, ShouldBeTrue)
			So(offer.Any(), ShouldBeFalse)
			So(offer.ReleaseDate.MustGet(), ShouldEqual, "June 1")
		})
	})

	Convey("Given a released episode with only a play code", t, func() {
		episode := catalog.Episode{Actions: catalog.Actions{Play: mo.Some("P1")}}

		Convey("The download control is omitted", func() {
			offer := ForEpisode(episode)
			So(offer.Watch, ShouldBeTrue)
			So(offer.Download, ShouldBeFalse)
			So(offer.Locked, ShouldBeFalse)
		})
	})

	Convey("Given a released episode with a download code", t, func() {
		episode := catalog.Episode{Actions: catalog.Actions{Download: mo.Some("D1")}}
		So(ForEpisode(episode).Download, ShouldBeTrue)
	})
}

func TestFacts(t *testing.T) {
	Convey("Given a title with some attributes", t, func() {
		title := &catalog.Title{
			Category: "Movie",
			Attributes: catalog.Attributes{
				Year:    mo.Some(2020),
				Rating:  mo.Some(7.3),
				Views:   mo.Some(int64(1500)),
				Quality: mo.Some("1080p"),
			},
		}

		Convey("Only present ones are listed, in order", func() {
			So(Facts(title), ShouldResemble, []Fact{
				{Label: "Category", Value: "Movie"},
				{Label: "Year", Value: "2020"},
				{Label: "Rating", Value: "7.3"},
				{Label: "Views", Value: "1.5K"},
				{Label: "Quality", Value: "1080p"},
			})
		})
	})

	Convey("View counts are compacted", t, func() {
		So(compact(999), ShouldEqual, "999")
		So(compact(2_500_000), ShouldEqual, "2.5M")
		So(compact(1_200), ShouldEqual, "1.2K")
		So(compact(999_960), ShouldEqual, "1.0M")
		So(compact(999_940), ShouldEqual, "999.9K")
	})
}
