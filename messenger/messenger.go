// Package messenger provides the messaging client implementations used to
// deliver deep links.
package messenger

import (
	"errors"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/open"
	"github.com/spf13/viper"
)

// ErrUnavailable is returned when navigating without a messaging client.
var ErrUnavailable = errors.New("messaging client is not available")

// Desktop is the Telegram desktop application installed on this machine.
type Desktop struct {
	App string

	installed func(app string) bool
	start     func(url, app string) error
}

// NewDesktop returns a client launching app.
func NewDesktop(app string) *Desktop {
	return &Desktop{
		App:       app,
		installed: open.Installed,
		start:     open.StartWith,
	}
}

// Available looks the application up every time it is called,
// so installing it while marquee runs is picked up.
func (d *Desktop) Available() bool {
	return d.installed(d.App)
}

// Navigate launches the application with url without waiting for it.
func (d *Desktop) Navigate(url string) error {
	log.Infof("opening %s with %s", url, d.App)
	return d.start(url, d.App)
}

// Absent is used when no messaging client should be used.
type Absent struct{}

func (Absent) Available() bool { return false }

func (Absent) Navigate(string) error { return ErrUnavailable }

// FromConfig returns the configured messaging client.
func FromConfig() action.Messenger {
	if !viper.GetBool(key.TelegramPreferClient) {
		return Absent{}
	}

	return NewDesktop(viper.GetString(key.TelegramClient))
}
