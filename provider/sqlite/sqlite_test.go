package sqlite

import (
	"errors"
	"strings"
	"testing"

	"github.com/marquee-cli/marquee/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

const catalogJSON = `[
	{"id": "s1", "title": "Harbor Lights", "category": "Series", "episodes": [{"number": 1, "telegramCode": "H1"}]},
	{"id": "m1", "title": "Paper Moon", "category": "Movie", "downloadCode": "PM"},
	{"title": "No Id"}
]`

func TestSource(t *testing.T) {
	Convey("Given an in-memory database", t, func() {
		source, err := Open("file:"+t.Name()+"?mode=memory&cache=shared", 0)
		So(err, ShouldBeNil)
		defer source.Close()

		imported, err := source.Import(strings.NewReader(catalogJSON))
		So(err, ShouldBeNil)
		So(imported, ShouldEqual, 2)

		Convey("Titles are decoded on the way out", func() {
			title, err := source.TitleOf("s1")
			So(err, ShouldBeNil)
			So(title.IsMultiEpisode(), ShouldBeTrue)
			So(title.Episodes[0].Season, ShouldEqual, 1)
			So(title.Episodes[0].Actions.Play.MustGet(), ShouldEqual, "H1")
		})

		Convey("Search matches parts of the name", func() {
			titles, err := source.Search("moon")
			So(err, ShouldBeNil)
			So(titles, ShouldHaveLength, 1)
			So(titles[0].ID, ShouldEqual, "m1")
		})

		Convey("An empty search lists everything by name", func() {
			titles, err := source.Search("")
			So(err, ShouldBeNil)
			So(titles, ShouldHaveLength, 2)
			So(titles[0].Name, ShouldEqual, "Harbor Lights")
		})

		Convey("Importing again replaces titles", func() {
			imported, err := source.Import(strings.NewReader(`{"id": "m1", "title": "Paper Moon (Remastered)"}`))
			So(err, ShouldBeNil)
			So(imported, ShouldEqual, 1)

			title, err := source.TitleOf("m1")
			So(err, ShouldBeNil)
			So(title.Name, ShouldEqual, "Paper Moon (Remastered)")
		})

		Convey("Unknown ids are not found", func() {
			_, err := source.TitleOf("zzz")
			So(errors.Is(err, catalog.ErrNotFound), ShouldBeTrue)
		})
	})
}
