package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/internal/ui"
	"github.com/marquee-cli/marquee/view"
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
	for _, t := range f.titles {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, catalog.ErrNotFound
}

type recorder struct {
	opened []string
}

func (r *recorder) Open(url string) error {
	r.opened = append(r.opened, url)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func series() *catalog.Title {
	return &catalog.Title{
		ID:       "s1",
		Name:     "Night Train",
		Category: catalog.CategorySeries,
		Media:    catalog.Media{Screenshots: []string{"a.jpg", "b.jpg"}},
		Episodes: []catalog.Episode{
			{Season: 3, Number: 2, Actions: catalog.Actions{Play: mo.Some("s3e2")}},
			{Season: 1, Number: 2, Actions: catalog.Actions{Play: mo.Some("s1e2")}},
			{Season: 1, Number: 1, Actions: catalog.Actions{Play: mo.Some("s1e1")}},
			{Season: 3, Number: 1, ComingSoon: true, ReleaseDate: mo.Some("May 5")},
		},
	}
}

func newTestBubble(titles ...*catalog.Title) (*statefulBubble, *recorder) {
	navigator := &recorder{}
	bubble := newBubble(&Options{
		Source:     &fakeSource{titles: titles},
		Resolver:   action.Resolver{Host: "t.me", Bot: "bot"},
		Dispatcher: action.NewDispatcher(nil, navigator),
		TitleID:    mo.Some("s1"),
	})
	return bubble, navigator
}

func TestDetail(t *testing.T) {
	Convey("Given a bubble opened on a series", t, func() {
		b, navigator := newTestBubble(series())
		b.Init()
		So(b.state, ShouldEqual, loadingState)

		msg := b.loadTitle("s1")()
		b.Update(msg)

		So(b.state, ShouldEqual, detailState)
		So(b.view.Season, ShouldEqual, 1)
		So(b.episodesC.Items(), ShouldHaveLength, 2)

		Convey("Watching the highlighted episode opens its deep link", func() {
			notify := b.act(false)()
			So(notify, ShouldHaveSameTypeAs, ui.NotifyMsg{})
			So(navigator.opened, ShouldResemble, []string{"https://t.me/bot?start=s1e1"})
		})

		Convey("Next season moves to the next season in the index", func() {
			b.Update(runes("]"))
			So(b.view.Season, ShouldEqual, 3)
			So(b.episodesC.Items(), ShouldHaveLength, 2)

			Convey("And the coming soon episode is locked", func() {
				episode, ok := b.currentEpisode()
				So(ok, ShouldBeTrue)
				So(episode.ComingSoon, ShouldBeTrue)

				b.act(false)()
				So(navigator.opened, ShouldBeEmpty)
			})

			Convey("And there is no season after the last one", func() {
				b.Update(runes("]"))
				So(b.view.Season, ShouldEqual, 3)
			})
		})

		Convey("Tab switches to the info tab and back", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(b.view.Tab, ShouldEqual, view.TabInfo)
			b.Update(tea.KeyMsg{Type: tea.KeyTab})
			So(b.view.Tab, ShouldEqual, view.TabEpisodes)
		})

		Convey("The screenshot viewer opens, cycles and closes", func() {
			b.Update(runes("s"))
			So(b.view.Viewer, ShouldResemble, mo.Some(0))

			b.Update(runes("n"))
			b.Update(runes("n"))
			So(b.view.Viewer, ShouldResemble, mo.Some(0))

			b.Update(tea.KeyMsg{Type: tea.KeyEsc})
			So(b.view.ViewerOpen(), ShouldBeFalse)
			So(b.state, ShouldEqual, detailState)
		})
	})
}

func TestSingleAssetTitle(t *testing.T) {
	Convey("Given a movie with only a direct link", t, func() {
		movie := &catalog.Title{
			ID:       "s1",
			Name:     "Long Night",
			Category: "Movie",
			Actions:  catalog.Actions{Link: mo.Some("https://cdn.example/movie.mkv")},
		}
		b, navigator := newTestBubble(movie)
		b.Init()
		b.Update(b.loadTitle("s1")())

		Convey("Download opens the direct link", func() {
			b.act(true)()
			So(navigator.opened, ShouldResemble, []string{"https://cdn.example/movie.mkv"})
		})

		Convey("Watch has nothing to open", func() {
			So(b.act(false)(), ShouldHaveSameTypeAs, ui.NotifyMsg{})
			So(navigator.opened, ShouldBeEmpty)
		})
	})
}

func TestMissingTitle(t *testing.T) {
	Convey("A missing title shows the error state", t, func() {
		b, _ := newTestBubble()
		b.Init()
		b.Update(b.loadTitle("s1")())
		So(b.state, ShouldEqual, errorState)
		So(b.lastError.Error(), ShouldContainSubstring, "not found")
	})
}
