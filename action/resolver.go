package action

import (
	"fmt"

	"github.com/marquee-cli/marquee/catalog"
	"github.com/samber/mo"
)

// Resolver builds destinations for a messaging bot reachable at Host.
type Resolver struct {
	// Host of the messaging service, e.g. t.me
	Host string
	// Bot identifier the deep links point to.
	Bot string
}

// DeepLink returns https://<host>/<bot>?start=<code>. The code is used as is.
func (r Resolver) DeepLink(code string) string {
	return fmt.Sprintf("https://%s/%s?start=%s", r.Host, r.Bot, code)
}

func (r Resolver) deepLink(code string) Destination {
	return Destination{
		Kind: KindDeepLink,
		URL:  r.DeepLink(code),
		Code: code,
	}
}

// Watch resolves the play code to a deep link.
func (r Resolver) Watch(play mo.Option[string]) Destination {
	code, ok := play.Get()
	if !ok {
		return None
	}

	return r.deepLink(code)
}

// Download picks the first present of: direct link, download code, fallback code.
func (r Resolver) Download(link, code, fallback mo.Option[string]) Destination {
	if url, ok := link.Get(); ok {
		return Destination{Kind: KindDirectLink, URL: url}
	}

	if c, ok := code.Get(); ok {
		return r.deepLink(c)
	}

	if c, ok := fallback.Get(); ok {
		return r.deepLink(c)
	}

	return None
}

// WatchActions resolves the watch action of an actions triad.
func (r Resolver) WatchActions(a catalog.Actions) Destination {
	return r.Watch(a.Play)
}

// DownloadActions resolves the download action of an actions triad,
// falling back to the play code.
func (r Resolver) DownloadActions(a catalog.Actions) Destination {
	return r.Download(a.Link, a.Download, a.Play)
}

// WatchTitle resolves "watch" for a single asset title.
func (r Resolver) WatchTitle(t *catalog.Title) Destination {
	return r.WatchActions(t.Actions)
}

// DownloadTitle resolves "download" for a single asset title.
func (r Resolver) DownloadTitle(t *catalog.Title) Destination {
	return r.DownloadActions(t.Actions)
}

// WatchEpisode resolves "watch" for an episode.
func (r Resolver) WatchEpisode(e catalog.Episode) Destination {
	return r.WatchActions(e.Actions)
}

// DownloadEpisode resolves "download" for an episode.
func (r Resolver) DownloadEpisode(e catalog.Episode) Destination {
	return r.DownloadActions(e.Actions)
}
