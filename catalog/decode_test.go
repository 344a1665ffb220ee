package catalog

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleSeries = `{
	"id": "tt-42",
	"title": "Night Train",
	"category": "Series",
	"year": "2021",
	"rating": 8.4,
	"views": "not a number",
	"description": "",
	"customBadges": ["4K", " ", "HDR"],
	"thumbnail": "thumb.jpg",
	"screenshots": ["a.jpg", "b.jpg"],
	"telegramCode": 1001,
	"episodes": [
		{"number": 3, "title": "Third", "telegramCode": "e3"},
		{"season": 0, "number": 1, "title": "First", "downloadCode": "d1"},
		{"season": "2", "number": 1, "isComingSoon": true, "releaseDate": "May 5"}
	]
}`

func TestDecode(t *testing.T) {
	Convey("Given an upstream series record", t, func() {
		title, err := Decode(strings.NewReader(sampleSeries))
		So(err, ShouldBeNil)

		Convey("Scalar fields are normalized", func() {
			So(title.ID, ShouldEqual, "tt-42")
			So(title.Name, ShouldEqual, "Night Train")
			So(title.Attributes.Year.MustGet(), ShouldEqual, 2021)
			So(title.Attributes.Rating.MustGet(), ShouldEqual, 8.4)
		})

		Convey("Malformed or blank values become absent", func() {
			So(title.Attributes.Views.IsPresent(), ShouldBeFalse)
			So(title.Attributes.Description.IsPresent(), ShouldBeFalse)
			So(title.Media.Banner.IsPresent(), ShouldBeFalse)
		})

		Convey("Blank badges are dropped and order is kept", func() {
			So(title.Attributes.Badges, ShouldResemble, []string{"4K", "HDR"})
		})

		Convey("Numeric codes are read as strings", func() {
			So(title.Actions.Play.MustGet(), ShouldEqual, "1001")
		})

		Convey("Missing and zero seasons default to the first one", func() {
			So(title.Episodes[0].Season, ShouldEqual, 1)
			So(title.Episodes[1].Season, ShouldEqual, 1)
			So(title.Episodes[2].Season, ShouldEqual, 2)
		})

		Convey("Episode flags and actions are carried over", func() {
			So(title.Episodes[2].ComingSoon, ShouldBeTrue)
			So(title.Episodes[2].ReleaseDate.MustGet(), ShouldEqual, "May 5")
			So(title.Episodes[1].Actions.Download.MustGet(), ShouldEqual, "d1")
			So(title.Episodes[1].Actions.Play.IsPresent(), ShouldBeFalse)
		})
	})

	Convey("Given seasons and numbers that are not finite integers", t, func() {
		title, err := Decode(strings.NewReader(`{"episodes": [
			{"season": "NaN", "number": 1},
			{"season": "1e30", "number": "Inf"},
			{"season": "-Inf", "number": 1e19}
		]}`))
		So(err, ShouldBeNil)
		So(title.Episodes, ShouldHaveLength, 3)

		Convey("The season falls back to the first one", func() {
			for _, e := range title.Episodes {
				So(e.Season, ShouldEqual, DefaultSeason)
			}
		})

		Convey("The number is left at zero", func() {
			So(title.Episodes[0].Number, ShouldEqual, 1)
			So(title.Episodes[1].Number, ShouldEqual, 0)
			So(title.Episodes[2].Number, ShouldEqual, 0)
		})
	})

	Convey("Given broken JSON", t, func() {
		_, err := Decode(strings.NewReader(`{"id": `))
		So(err, ShouldNotBeNil)
	})
}

func TestDecodeList(t *testing.T) {
	Convey("Given a JSON array of titles", t, func() {
		titles, err := DecodeList(strings.NewReader(`[{"id": "a"}, {"id": "b", "category": "Movie"}]`))
		So(err, ShouldBeNil)
		So(titles, ShouldHaveLength, 2)
		So(titles[1].Category, ShouldEqual, "Movie")
	})

	Convey("Given a single title object", t, func() {
		titles, err := DecodeList(strings.NewReader(`{"id": "solo"}`))
		So(err, ShouldBeNil)
		So(titles, ShouldHaveLength, 1)
		So(titles[0].ID, ShouldEqual, "solo")
	})
}
