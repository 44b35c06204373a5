package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/core/services"
)

var langCmd = &cobra.Command{
	Use:   "lang [path] [language]",
	Short: "Rewrite a page path for another language",
	Long: `Prints the path of the same page in another language. The first
/<language>/ segment of a configured language (locale.languages) is
replaced; paths without one get the language appended to their directory.`,
	Args: cobra.ExactArgs(2),
	RunE: runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(services.SwitchLanguagePath(args[0], args[1], settings.Locale.Languages))
	return nil
}
