package cmd

import (
	"fmt"

	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/provider"
	"github.com/marquee-cli/marquee/provider/sqlite"
	"github.com/marquee-cli/marquee/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:     "import [file...]",
	Short:   "Import JSON catalogs into the SQLite catalog",
	Args:    cobra.MinimumNArgs(1),
	Example: "  marquee import titles.json && marquee config set catalog.provider sqlite",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := sqlite.Open(provider.SQLitePath(), 0)
		handleErr(err)
		defer util.Ignore(db.Close)

		var total int
		for _, path := range args {
			file, err := filesystem.API().Open(path)
			handleErr(err)

			n, err := db.Import(file)
			_ = file.Close()
			handleErr(err)

			total += n
		}

		fmt.Printf(
			"%s Imported %s into %s\n",
			icon.Get(icon.Success),
			util.Quantify(total, "title", "titles"),
			provider.SQLitePath(),
		)
	},
}
