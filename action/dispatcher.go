package action

import (
	"github.com/marquee-cli/marquee/log"
)

// Messenger is the messaging client capability.
type Messenger interface {
	// Available reports whether the client can take the link right now.
	Available() bool
	// Navigate hands a deep link to the client.
	Navigate(url string) error
}

// Navigator opens a URL in whatever the system uses for links.
type Navigator interface {
	Open(url string) error
}

// Route is the path a destination was handed to.
type Route int

const (
	RouteNone Route = iota
	RouteMessenger
	RouteExternal
)

func (r Route) String() string {
	switch r {
	case RouteMessenger:
		return "messenger"
	case RouteExternal:
		return "external"
	default:
		return "none"
	}
}

// Dispatcher delivers destinations. Delivery is fire and forget: failures
// are logged and never reported back.
type Dispatcher struct {
	messenger Messenger
	external  Navigator
}

// NewDispatcher returns a dispatcher that prefers messenger for deep links.
func NewDispatcher(messenger Messenger, external Navigator) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		external:  external,
	}
}

// Deliver opens the destination and returns the route it took.
// The messenger is asked for availability on every call.
func (d *Dispatcher) Deliver(dest Destination) Route {
	switch dest.Kind {
	case KindDirectLink:
		d.open(dest.URL)
		return RouteExternal
	case KindDeepLink:
		if d.messenger != nil && d.messenger.Available() {
			if err := d.messenger.Navigate(dest.URL); err != nil {
				log.Warnf("messenger failed to open %s: %s", dest.URL, err)
			}
			return RouteMessenger
		}

		d.open(dest.URL)
		return RouteExternal
	default:
		return RouteNone
	}
}

// JoinChannel opens the channel URL with the system opener.
func (d *Dispatcher) JoinChannel(url string) Route {
	if url == "" {
		return RouteNone
	}

	d.open(url)
	return RouteExternal
}

func (d *Dispatcher) open(url string) {
	if err := d.external.Open(url); err != nil {
		log.Warnf("failed to open %s: %s", url, err)
	}
}
