package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/marquee-cli/marquee/messenger"
	"github.com/marquee-cli/marquee/style"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the catalog provider and the Telegram client",
	Run: func(cmd *cobra.Command, args []string) {
		ok := func(format string, a ...any) string {
			return fmt.Sprintf("%s %s", icon.Get(icon.Success), fmt.Sprintf(format, a...))
		}
		fail := func(format string, a ...any) string {
			return fmt.Sprintf("%s %s", icon.Get(icon.Fail), fmt.Sprintf(format, a...))
		}

		var lines []string

		source, err := newSource()
		if err != nil {
			lines = append(lines, fail("Catalog provider %q: %s", viper.GetString(key.CatalogProvider), err))
		} else {
			lines = append(lines, ok("Catalog provider %s", source.Name()))
		}

		client := viper.GetString(key.TelegramClient)
		switch {
		case !viper.GetBool(key.TelegramPreferClient):
			lines = append(lines, ok("Telegram client disabled, links open in the browser"))
		case messenger.NewDesktop(client).Available():
			lines = append(lines, ok("Telegram client %s found", client))
		default:
			lines = append(lines, fail("Telegram client %s not found, links open in the browser", client))
		}

		lines = append(lines, ok("Deep links look like %s", newResolver().DeepLink("CODE")))

		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.AccentColor).
			Padding(1, 2).
			Margin(1, 0)

		cmd.Println(box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	},
}
