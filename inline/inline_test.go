package inline

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeSource struct {
	titles []*catalog.Title
}

func (f *fakeSource) Name() string { return "Fake" }
func (f *fakeSource) ID() string   { return "fake" }

func (f *fakeSource) Search(string) ([]*catalog.Title, error) {
	return f.titles, nil
}

func (f *fakeSource) TitleOf(id string) (*catalog.Title, error) {
	t, ok := lo.Find(f.titles, func(t *catalog.Title) bool { return t.ID == id })
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return t, nil
}

type recorder struct {
	opened []string
}

func (r *recorder) Open(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func fixtures() []*catalog.Title {
	return []*catalog.Title{
		{
			ID:       "m1",
			Name:     "Long Night",
			Category: "Movie",
			Actions: catalog.Actions{
				Play:     mo.Some("P1"),
				Download: mo.Some("D1"),
			},
		},
		{
			ID:       "s1",
			Name:     "Night Train",
			Category: catalog.CategorySeries,
			Episodes: []catalog.Episode{
				{Season: 2, Number: 1, Actions: catalog.Actions{Play: mo.Some("s2e1")}},
				{Season: 1, Number: 2, Actions: catalog.Actions{Link: mo.Some("https://cdn/s1e2")}},
				{Season: 1, Number: 1, Actions: catalog.Actions{Play: mo.Some("s1e1")}},
				{Season: 1, Number: 3, ComingSoon: true, Actions: catalog.Actions{Play: mo.Some("s1e3")}},
			},
		},
	}
}

func newOptions(out *bytes.Buffer) (*Options, *recorder) {
	navigator := &recorder{}
	return &Options{
		Out:        out,
		Source:     &fakeSource{titles: fixtures()},
		Resolver:   action.Resolver{Host: "t.me", Bot: "bot"},
		Dispatcher: action.NewDispatcher(nil, navigator),
		Query:      "night",
		Action:     ActionWatch,
	}, navigator
}

func TestRun(t *testing.T) {
	Convey("Given inline options", t, func() {
		var buf bytes.Buffer
		options, navigator := newOptions(&buf)

		Convey("JSON output lists every title with resolved destinations", func() {
			options.Json = true
			So(Run(options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Query, ShouldEqual, "night")
			So(output.Result, ShouldHaveLength, 2)

			movie, series := output.Result[0], output.Result[1]
			So(movie.Watch.URL, ShouldEqual, "https://t.me/bot?start=P1")
			So(movie.Download.URL, ShouldEqual, "https://t.me/bot?start=D1")
			So(series.Seasons, ShouldResemble, []int{1, 2})
			So(series.Offer.Any(), ShouldBeFalse)
			So(series.Episodes, ShouldHaveLength, 4)
			So(series.Episodes[2].Offer.Locked, ShouldBeTrue)
		})

		Convey("Plain output prints one URL per available destination", func() {
			picker, err := ParseTitlePicker("night train")
			So(err, ShouldBeNil)
			options.TitlePicker = mo.Some(picker)
			options.Season = mo.Some(1)
			options.Action = ActionDownload

			So(Run(options), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://t.me/bot?start=s1e1\nhttps://cdn/s1e2\n")
		})

		Convey("Open delivers a single destination", func() {
			options.TitleID = mo.Some("m1")
			options.Open = true

			So(Run(options), ShouldBeNil)
			So(navigator.opened, ShouldResemble, []string{"https://t.me/bot?start=P1"})
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Open refuses more than one destination", func() {
			options.TitleID = mo.Some("s1")
			options.Open = true

			So(errors.Is(Run(options), ErrAmbiguous), ShouldBeTrue)
			So(navigator.opened, ShouldBeEmpty)
		})

		Convey("Unknown titles are reported", func() {
			options.TitleID = mo.Some("missing")
			So(errors.Is(Run(options), catalog.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestParseEpisodesFilter(t *testing.T) {
	Convey("Given a season of episodes", t, func() {
		episodes := []catalog.Episode{
			{Number: 1, Name: "Pilot"},
			{Number: 2, Name: "Crossing"},
			{Number: 3, Name: "Last Stop"},
		}

		numbersOf := func(description string) []int {
			filter, err := ParseEpisodesFilter(description)
			So(err, ShouldBeNil)
			return lo.Map(filter(episodes), func(e catalog.Episode, _ int) int { return e.Number })
		}

		So(numbersOf("first"), ShouldResemble, []int{1})
		So(numbersOf("last"), ShouldResemble, []int{3})
		So(numbersOf("all"), ShouldResemble, []int{1, 2, 3})
		So(numbersOf("2-3"), ShouldResemble, []int{2, 3})
		So(numbersOf("2"), ShouldResemble, []int{2})
		So(numbersOf("@stop@"), ShouldResemble, []int{3})

		_, err := ParseEpisodesFilter("two")
		So(err, ShouldNotBeNil)
	})
}

func TestParseAction(t *testing.T) {
	Convey("Actions are parsed case insensitively", t, func() {
		a, err := ParseAction("Download")
		So(err, ShouldBeNil)
		So(a, ShouldEqual, ActionDownload)

		_, err = ParseAction("stream")
		So(err, ShouldNotBeNil)
	})
}
