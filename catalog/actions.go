package catalog

import "github.com/samber/mo"

// Actions holds the optional references used to resolve "watch" and
// "download" for a title or an episode.
type Actions struct {
	// Play is the messaging code of the playable asset.
	// It doubles as the last download tier.
	Play mo.Option[string] `json:"telegramCode" jsonschema:"type=string"`
	// Download is the messaging code of the downloadable asset.
	Download mo.Option[string] `json:"downloadCode" jsonschema:"type=string"`
	// Link is a fully qualified external download URL.
	Link mo.Option[string] `json:"downloadLink" jsonschema:"type=string"`
}

// Empty reports whether no reference is present at all.
func (a Actions) Empty() bool {
	return a.Play.IsAbsent() && a.Download.IsAbsent() && a.Link.IsAbsent()
}
