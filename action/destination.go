// Package action decides how "watch" and "download" are opened for a title
// or an episode, and hands the result to the messaging client or the
// system opener.
package action

import "fmt"

// Kind is the way a Destination is opened.
type Kind int

const (
	// KindNone means there is nothing to open.
	KindNone Kind = iota
	// KindDeepLink is a messaging deep link built from a code.
	KindDeepLink
	// KindDirectLink is an external download URL used verbatim.
	KindDirectLink
)

func (k Kind) String() string {
	switch k {
	case KindDeepLink:
		return "deep-link"
	case KindDirectLink:
		return "direct-link"
	default:
		return "none"
	}
}

// MarshalText makes kinds readable in JSON output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads kinds written by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "deep-link":
		*k = KindDeepLink
	case "direct-link":
		*k = KindDirectLink
	case "none":
		*k = KindNone
	default:
		return fmt.Errorf("unknown destination kind %q", text)
	}
	return nil
}

// Destination is the single resolved way to open an action.
type Destination struct {
	Kind Kind   `json:"kind" jsonschema:"type=string,enum=none,enum=deep-link,enum=direct-link"`
	URL  string `json:"url,omitempty"`
	// Code is the messaging code a deep link was built from.
	Code string `json:"code,omitempty"`
}

// None is the destination of an unavailable action.
var None = Destination{Kind: KindNone}

// Available reports whether there is something to open.
func (d Destination) Available() bool {
	return d.Kind != KindNone
}

func (d Destination) String() string {
	if !d.Available() {
		return d.Kind.String()
	}
	return fmt.Sprintf("%s %s", d.Kind, d.URL)
}
