// Package catalog defines the title and episode records shown by marquee
// and the boundary that turns upstream JSON into them.
package catalog

import "errors"

// ErrNotFound is returned by a Source when no title matches the requested id.
var ErrNotFound = errors.New("title not found")

// Source defines the capabilities of a catalog backend.
type Source interface {
	// Name returns the human readable name of the backend.
	Name() string

	// ID returns the unique identifier of the backend.
	ID() string

	// Search returns the titles matching the query. An empty query lists everything.
	Search(query string) ([]*Title, error)

	// TitleOf returns the title with the given id or ErrNotFound.
	TitleOf(id string) (*Title, error)
}
