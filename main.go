package main

import (
	"github.com/marquee-cli/marquee/cmd"
	"github.com/marquee-cli/marquee/config"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/provider"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go provider.CollectGarbage()

	cmd.Execute()
}
