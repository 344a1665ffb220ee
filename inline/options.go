package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type (
	TitlePicker    func([]*catalog.Title) *catalog.Title
	EpisodesFilter func([]catalog.Episode) []catalog.Episode
)

// Action selects which destination plain output prints.
type Action string

const (
	ActionWatch    Action = "watch"
	ActionDownload Action = "download"
)

// ParseAction accepts watch and download.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(s)); a {
	case ActionWatch, ActionDownload:
		return a, nil
	default:
		return "", fmt.Errorf("unknown action %q, expected watch or download", s)
	}
}

type Options struct {
	Out        io.Writer
	Source     catalog.Source
	Resolver   action.Resolver
	Dispatcher *action.Dispatcher

	Query   string
	TitleID mo.Option[string]

	TitlePicker    mo.Option[TitlePicker]
	Season         mo.Option[int]
	EpisodesFilter mo.Option[EpisodesFilter]

	Action Action
	Json   bool
	// Open delivers the resolved destination instead of printing it.
	Open bool
}

// ParseTitlePicker parses first, last, an index starting from 0 or an exact
// title name.
func ParseTitlePicker(description string) (TitlePicker, error) {
	if description == "" {
		return nil, fmt.Errorf("empty title selector")
	}

	switch description {
	case "first":
		return func(titles []*catalog.Title) *catalog.Title {
			if len(titles) == 0 {
				return nil
			}
			return titles[0]
		}, nil
	case "last":
		return func(titles []*catalog.Title) *catalog.Title {
			if len(titles) == 0 {
				return nil
			}
			return titles[len(titles)-1]
		}, nil
	}

	if idx, err := strconv.ParseUint(description, 10, 16); err == nil {
		return func(titles []*catalog.Title) *catalog.Title {
			if len(titles) == 0 {
				return nil
			}
			return titles[util.Min(idx, uint64(len(titles)-1))]
		}, nil
	}

	return func(titles []*catalog.Title) *catalog.Title {
		t, _ := lo.Find(titles, func(t *catalog.Title) bool {
			return strings.EqualFold(t.Name, description)
		})
		return t
	}, nil
}

// ParseEpisodesFilter parses first, last, all, an episode number, a range of
// episode numbers like 1-5, or a name substring like @pilot@.
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	switch description {
	case "first":
		return func(episodes []catalog.Episode) []catalog.Episode {
			if len(episodes) == 0 {
				return episodes
			}
			return episodes[:1]
		}, nil
	case "last":
		return func(episodes []catalog.Episode) []catalog.Episode {
			if len(episodes) == 0 {
				return episodes
			}
			return episodes[len(episodes)-1:]
		}, nil
	case "all":
		return func(episodes []catalog.Episode) []catalog.Episode {
			return episodes
		}, nil
	}

	if strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") && len(description) > 1 {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []catalog.Episode) []catalog.Episode {
			return lo.Filter(episodes, func(e catalog.Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Name), sub)
			})
		}, nil
	}

	if from, to, found := strings.Cut(description, "-"); found {
		start, err1 := strconv.Atoi(from)
		end, err2 := strconv.Atoi(to)
		if err1 == nil && err2 == nil {
			return numbers(func(n int) bool { return n >= start && n <= end }), nil
		}
	}

	if number, err := strconv.Atoi(description); err == nil {
		return numbers(func(n int) bool { return n == number }), nil
	}

	return nil, fmt.Errorf("invalid episode filter: %s", description)
}

func numbers(keep func(int) bool) EpisodesFilter {
	return func(episodes []catalog.Episode) []catalog.Episode {
		return lo.Filter(episodes, func(e catalog.Episode, _ int) bool {
			return keep(e.Number)
		})
	}
}
