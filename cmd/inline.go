package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/marquee-cli/marquee/filesystem"
	"github.com/marquee-cli/marquee/inline"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search query")
	inlineCmd.Flags().String("id", "", "Resolve the title with this id, skipping the search")
	inlineCmd.Flags().StringP("title", "t", "", "Title selector")
	inlineCmd.Flags().IntP("season", "s", 0, "Only resolve episodes of this season")
	inlineCmd.Flags().StringP("episodes", "e", "", "Episodes selector")
	inlineCmd.Flags().StringP("action", "a", string(inline.ActionWatch), "Action to resolve, watch or download")
	inlineCmd.Flags().BoolP("json", "j", false, "Print the result as JSON")
	inlineCmd.Flags().Bool("open", false, "Open the resolved destination instead of printing it")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")

	inlineCmd.MarkFlagsMutuallyExclusive("query", "id")
	inlineCmd.MarkFlagsMutuallyExclusive("json", "open")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("action", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(inline.ActionWatch), string(inline.ActionDownload)}, cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Resolve watch and download links without the TUI",
	Long: `Resolve watch and download links without the TUI.

Title selectors:
  first - first title in the search results
  last - last title in the search results
  [number] - select title by index (starting from 0)
  [name] - select title by its exact name

Episode selectors:
  first - first episode
  last - last episode
  all - all episodes
  [number] - select episode by its number
  [from]-[to] - select episodes by a range of numbers
  @[substring]@ - select episodes by name substring

Without the json flag one link is printed per line.`,
	Example: "  marquee inline -q \"night train\" -t first -s 2 -e 1-3 -a download",
	PreRun: func(cmd *cobra.Command, args []string) {
		json := lo.Must(cmd.Flags().GetBool("json"))
		id := lo.Must(cmd.Flags().GetString("id"))

		if !json && id == "" {
			lo.Must0(cmd.MarkFlagRequired("title"))
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		source, err := newSource()
		handleErr(err)

		action, err := inline.ParseAction(lo.Must(cmd.Flags().GetString("action")))
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		} else {
			writer = os.Stdout
		}

		options := &inline.Options{
			Out:        writer,
			Source:     source,
			Resolver:   newResolver(),
			Dispatcher: newDispatcher(),
			Query:      lo.Must(cmd.Flags().GetString("query")),
			Action:     action,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			Open:       lo.Must(cmd.Flags().GetBool("open")),
		}

		if id := lo.Must(cmd.Flags().GetString("id")); id != "" {
			options.TitleID = mo.Some(id)
		}

		if title := lo.Must(cmd.Flags().GetString("title")); title != "" {
			picker, err := inline.ParseTitlePicker(title)
			handleErr(err)
			options.TitlePicker = mo.Some(picker)
		}

		if cmd.Flags().Changed("season") {
			options.Season = mo.Some(lo.Must(cmd.Flags().GetInt("season")))
		}

		if episodes := lo.Must(cmd.Flags().GetString("episodes")); episodes != "" {
			filter, err := inline.ParseEpisodesFilter(episodes)
			handleErr(err)
			options.EpisodesFilter = mo.Some(filter)
		}

		handleErr(inline.Run(options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline JSON output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "episode", "output", "result":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&inline.Output{})))
	},
}
