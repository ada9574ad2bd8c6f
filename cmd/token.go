package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gitlab.com/begraf/trailpost/config"
	"gitlab.com/begraf/trailpost/filesystem"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Interactively store the locator API token",
	RunE:  runTokenCmd,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runTokenCmd(cmd *cobra.Command, args []string) error {
	token := ""
	prompt := survey.Password{
		Message: "Locator API token",
	}
	err := survey.AskOne(&prompt, &token, survey.WithValidator(survey.Required))
	if err != nil {
		return err
	}

	tokenFile := filesystem.Abs(config.TokenFile())
	if err := os.WriteFile(tokenFile, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("could not write token file: %w", err)
	}

	fmt.Printf("Token written to %s\n", tokenFile)

	return nil
}
