// Package inline resolves titles without the TUI, for scripts and pipes.
package inline

import (
	"errors"
	"fmt"
	"os"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/detail"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/season"
	"github.com/samber/lo"
)

// ErrAmbiguous is returned when --open would open more than one destination.
var ErrAmbiguous = errors.New("more than one destination selected")

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	titles, err := selectTitles(options)
	if err != nil {
		return err
	}

	results := make([]*Result, len(titles))
	for i, title := range titles {
		results[i] = resolve(title, options)
	}

	if options.Json {
		return writeJson(options.Out, results, options)
	}

	destinations := lo.Filter(lo.FlatMap(results, func(r *Result, _ int) []action.Destination {
		return pick(r, options.Action)
	}), func(d action.Destination, _ int) bool {
		return d.Available()
	})

	if options.Open {
		switch len(destinations) {
		case 0:
			return fmt.Errorf("nothing to %s", options.Action)
		case 1:
			route := options.Dispatcher.Deliver(destinations[0])
			log.Infof("opened %s via %s", destinations[0].URL, route)
			return nil
		default:
			return fmt.Errorf("%w: %d, narrow the selection with --season and --episodes", ErrAmbiguous, len(destinations))
		}
	}

	for _, d := range destinations {
		if _, err := fmt.Fprintln(options.Out, d.URL); err != nil {
			return err
		}
	}

	return nil
}

func selectTitles(options *Options) ([]*catalog.Title, error) {
	if id, ok := options.TitleID.Get(); ok {
		title, err := options.Source.TitleOf(id)
		if err != nil {
			return nil, fmt.Errorf("title %s: %w", id, err)
		}
		return []*catalog.Title{title}, nil
	}

	found, err := options.Source.Search(options.Query)
	if err != nil {
		return nil, fmt.Errorf("search failed for %s: %w", options.Source.Name(), err)
	}

	if picker, ok := options.TitlePicker.Get(); ok {
		choice := picker(found)
		if choice == nil {
			return nil, nil
		}
		found = []*catalog.Title{choice}
	}

	// search results may be summaries, load the full records
	titles := make([]*catalog.Title, 0, len(found))
	for _, t := range found {
		title, err := options.Source.TitleOf(t.ID)
		if err != nil {
			return nil, fmt.Errorf("title %s: %w", t.ID, err)
		}
		titles = append(titles, title)
	}

	return titles, nil
}

func resolve(title *catalog.Title, options *Options) *Result {
	resolver := options.Resolver
	seasons := season.Organize(title.Episodes)

	result := &Result{
		Source:   options.Source.Name(),
		Title:    title,
		Offer:    detail.ForTitle(title),
		Watch:    action.None,
		Download: action.None,
		Seasons:  seasons.Index(),
		Episodes: []*Episode{},
	}

	if result.Offer.Watch {
		result.Watch = resolver.WatchTitle(title)
	}
	if result.Offer.Download {
		result.Download = resolver.DownloadTitle(title)
	}

	var episodes []catalog.Episode
	if n, ok := options.Season.Get(); ok {
		episodes = seasons.Episodes(n)
	} else {
		for _, n := range seasons.Index() {
			episodes = append(episodes, seasons.Episodes(n)...)
		}
	}

	if filter, ok := options.EpisodesFilter.Get(); ok {
		episodes = filter(episodes)
	}

	for _, e := range episodes {
		offer := detail.ForEpisode(e)
		entry := &Episode{
			Episode:  e,
			Offer:    offer,
			Watch:    action.None,
			Download: action.None,
		}
		if offer.Watch {
			entry.Watch = resolver.WatchEpisode(e)
		}
		if offer.Download {
			entry.Download = resolver.DownloadEpisode(e)
		}
		result.Episodes = append(result.Episodes, entry)
	}

	return result
}

// pick returns the destinations of the chosen action, title level first.
func pick(r *Result, a Action) []action.Destination {
	choose := func(watch, download action.Destination) action.Destination {
		if a == ActionDownload {
			return download
		}
		return watch
	}

	destinations := []action.Destination{choose(r.Watch, r.Download)}
	for _, e := range r.Episodes {
		destinations = append(destinations, choose(e.Watch, e.Download))
	}

	return destinations
}
