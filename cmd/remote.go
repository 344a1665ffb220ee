package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/marquee-cli/marquee/auth"
	"github.com/marquee-cli/marquee/icon"
	"github.com/marquee-cli/marquee/key"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(remoteCmd)
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Manage access to the remote catalog",
}

func init() {
	remoteCmd.AddCommand(remoteLoginCmd)
}

var remoteLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store the remote catalog API token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetString(key.CatalogRemoteURL) == "" {
			input := survey.Input{
				Message: "Remote catalog URL is not set. Please enter it:",
			}
			var response string
			handleErr(survey.AskOne(&input, &response))

			if response == "" {
				return
			}

			viper.Set(key.CatalogRemoteURL, response)
			handleErr(persist())
		}

		var token string
		handleErr(survey.AskOne(&survey.Password{
			Message: "API token:",
		}, &token))

		token = strings.TrimSpace(token)
		if token == "" {
			handleErr(errors.New("empty token"))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s Token saved\n", icon.Get(icon.Success))
	},
}

func init() {
	remoteCmd.AddCommand(remoteLogoutCmd)
}

var remoteLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the remote catalog API token from the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s Token removed\n", icon.Get(icon.Success))
	},
}
