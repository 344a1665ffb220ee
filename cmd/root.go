// Package cmd implements the command-line interface for marquee.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/marquee-cli/marquee/catalog"
	"github.com/marquee-cli/marquee/color"
	"github.com/marquee-cli/marquee/constant"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/log"
	"github.com/marquee-cli/marquee/provider"
	"github.com/marquee-cli/marquee/provider/local"
	"github.com/marquee-cli/marquee/style"
	"github.com/marquee-cli/marquee/tui"
	"github.com/marquee-cli/marquee/util"
	"github.com/marquee-cli/marquee/version"
	"github.com/marquee-cli/marquee/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("provider", "P", "", "Catalog provider to use")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(provider.Builtins(), func(p *provider.Provider, _ int) string {
			return p.ID
		}), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.CatalogProvider, rootCmd.PersistentFlags().Lookup("provider")))

	rootCmd.Flags().StringP("id", "i", "", "Open the title with this id")
	rootCmd.Flags().BoolP("list", "l", false, "Browse search results in the TUI instead of picking one up front")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Marquee + " [query]",
	Short: "Browse a catalog and open titles in Telegram",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse a catalog and open titles in Telegram"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		source, err := newSource()
		handleErr(err)

		options := tui.Options{
			Source:     source,
			Resolver:   newResolver(),
			Dispatcher: newDispatcher(),
			Channel:    viper.GetString(key.LinksChannel),
			TitleID:    mo.None[string](),
		}

		if id := lo.Must(cmd.Flags().GetString("id")); id != "" {
			options.TitleID = mo.Some(id)
		} else if query := strings.Join(args, " "); query != "" {
			if lo.Must(cmd.Flags().GetBool("list")) || !util.IsTerminal() {
				options.Query = query
			} else {
				id, err := pickTitle(source, query)
				handleErr(err)
				options.TitleID = mo.Some(id)
			}
		}

		if url := viper.GetString(key.CatalogSyncURL); url != "" && source.ID() == local.ID {
			options.SyncURL = url
			options.SyncPath = where.SyncedCatalog()
		}

		handleErr(tui.Run(&options))
	},
}

// pickTitle searches query and lets the user choose when more than one title matches.
func pickTitle(source catalog.Source, query string) (string, error) {
	eraser := util.PrintErasable(fmt.Sprintf("%s Searching %q...", icon.Get(icon.Progress), query))
	titles, err := source.Search(query)
	eraser()
	if err != nil {
		return "", err
	}

	switch len(titles) {
	case 0:
		return "", fmt.Errorf("no titles match %q", query)
	case 1:
		return titles[0].ID, nil
	}

	labels := lo.Map(titles, func(t *catalog.Title, i int) string {
		label := fmt.Sprintf("%d. %s", i+1, t.Name)
		if year, ok := t.Attributes.Year.Get(); ok {
			label += fmt.Sprintf(" (%d)", year)
		}
		return label
	})

	var choice int
	err = survey.AskOne(&survey.Select{
		Message:  "Which title?",
		Options:  labels,
		PageSize: 15,
	}, &choice)
	if err != nil {
		return "", err
	}

	return titles[choice].ID, nil
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		if errors.Is(err, catalog.ErrNotFound) {
			err = fmt.Errorf("%w, check the id or the configured provider", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
