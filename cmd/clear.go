package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/util"
	"github.com/marquee-cli/marquee/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"remote catalog cache", "remote", mo.Some("r"), where.RemoteCache},
	{"synced catalog", "synced", mo.Some("s"), where.SyncedCatalog},
	{"logs", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and synced files",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		for _, target := range clearTargets {
			if doClear(target.argLong) {
				anyCleared = true
				location := target.location()
				if exists, _ := filesystem.API().Exists(location); !exists {
					fmt.Printf("%s %s is already clear\n", icon.Get(icon.Success), util.Capitalize(target.name))
					continue
				}

				size, _ := util.DirSize(location)
				e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
				err := util.Delete(location)
				e()
				handleErr(err)
				fmt.Printf("%s %s cleared, %s freed\n", icon.Get(icon.Success), util.Capitalize(target.name), humanize.Bytes(uint64(size)))
			}
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
