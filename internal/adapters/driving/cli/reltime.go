package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/core/services"
)

var (
	reltimeLang string
	reltimeNow  string
)

var reltimeCmd = &cobra.Command{
	Use:   "reltime [timestamp]",
	Short: "Describe a timestamp relative to now",
	Long: `Renders a Unix timestamp (seconds or milliseconds) the way the dashboard
shows last-watered and last-updated times, e.g. "about 3 days ago", plus
the exact tooltip text. English and German are supported.`,
	Args: cobra.ExactArgs(1),
	RunE: runReltime,
}

func init() {
	reltimeCmd.Flags().StringVar(&reltimeLang, "lang", "", "language (default locale.language)")
	reltimeCmd.Flags().StringVar(&reltimeNow, "now", "", "reference timestamp instead of the current time")
	rootCmd.AddCommand(reltimeCmd)
}

func runReltime(cmd *cobra.Command, args []string) error {
	now := time.Now()
	if reltimeNow != "" {
		t, err := services.ParseTimestamp(reltimeNow)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
		now = t
	}

	lang := reltimeLang
	if lang == "" && settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			lang = settings.Locale.Language
		}
	}

	rel, err := services.DescribeTimestamp(args[0], now, lang)
	if err != nil {
		return err
	}

	cmd.Println(rel.Text)
	cmd.Println(rel.Tooltip)
	return nil
}
