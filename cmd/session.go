package cmd

import (
	"fmt"

	"github.com/marquee-cli/marquee/action"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/messenger"
	"github.com/marquee-cli/marquee/open"
	"github.com/marquee-cli/marquee/provider"
	"github.com/spf13/viper"
)

func newResolver() action.Resolver {
	return action.Resolver{
		Host: viper.GetString(key.TelegramHost),
		Bot:  viper.GetString(key.TelegramBot),
	}
}

func newDispatcher() *action.Dispatcher {
	return action.NewDispatcher(messenger.FromConfig(), open.Browser{})
}

func newSource() (catalog.Source, error) {
	id := viper.GetString(key.CatalogProvider)
	p, ok := provider.Get(id)
	if !ok {
		return nil, fmt.Errorf("catalog provider not found: %s", id)
	}

	return p.CreateSource()
}
