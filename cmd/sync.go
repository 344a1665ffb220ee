package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/network"
	"github.com/marquee-cli/marquee/provider"
	"github.com/marquee-cli/marquee/util"
	"github.com/marquee-cli/marquee/where"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().StringP("url", "u", "", "Catalog URL, defaults to "+key.CatalogSyncURL)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download the synced catalog now",
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		if url == "" {
			url = viper.GetString(key.CatalogSyncURL)
		}
		if url == "" {
			handleErr(errors.New(key.CatalogSyncURL + " is not set"))
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		eraser := util.PrintErasable(fmt.Sprintf("%s Syncing catalog...", icon.Get(icon.Progress)))
		updated, err := provider.Sync(ctx, network.Client, url, where.SyncedCatalog())
		eraser()
		handleErr(err)

		if updated {
			fmt.Printf("%s Catalog updated\n", icon.Get(icon.Success))
		} else {
			fmt.Printf("%s Catalog is up to date\n", icon.Get(icon.Success))
		}
	},
}
