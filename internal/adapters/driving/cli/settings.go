package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change plantsearch settings.

Settings are stored in config.toml inside the configuration directory.
Use 'settings set' for a single key or 'settings wizard' to walk through
the common ones.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting. Lists are comma-separated.

Keys:
  dataset.location          dataset file or URL
  search.debounce_ms        TUI quiet period before searching
  search.min_query_length   shortest query searched interactively
  server.addr               listen address of 'serve'
  server.site_dir           static site directory ('' disables)
  server.rate_limit         /api requests per second
  server.exclude            site files never served (doublestar patterns)
  server.mdns               advertise 'serve' via mDNS (true/false)
  locale.language           default language
  locale.languages          languages the site is published in`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the common settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  Location: %s\n", settings.Dataset.Location)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Debounce: %dms\n", settings.Search.DebounceMS)
	cmd.Printf("  Min query length: %d\n", settings.Search.MinQueryLength)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address: %s\n", settings.Server.Addr)
	cmd.Printf("  Site directory: %s\n", orNotSet(settings.Server.SiteDir))
	cmd.Printf("  Rate limit: %d req/s\n", settings.Server.RateLimit)
	cmd.Printf("  Exclude: %s\n", orNotSet(strings.Join(settings.Server.Exclude, ", ")))
	cmd.Printf("  mDNS: %s\n", onOff(settings.Server.MDNS))
	cmd.Println()

	cmd.Println("[Locale]")
	cmd.Printf("  Language: %s\n", settings.Locale.Language)
	cmd.Printf("  Languages: %s\n", strings.Join(settings.Locale.Languages, ", "))

	if configStore != nil && configStore.Path() != "" {
		cmd.Println()
		cmd.Printf("Config file: %s\n", configStore.Path())
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrUnknownSetting) {
			return fmt.Errorf("%w (known keys: %s)", err, strings.Join(settingsService.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("%s updated.\n", key)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	cmd.Println("plantsearch setup")
	cmd.Println("Press Enter to keep the current value.")
	cmd.Println()

	steps := []struct {
		key     string
		prompt  string
		current string
	}{
		{"dataset.location", "Dataset file or URL", settings.Dataset.Location},
		{"server.site_dir", "Static site directory", settings.Server.SiteDir},
		{"locale.languages", "Site languages (comma-separated)", strings.Join(settings.Locale.Languages, ",")},
		{"locale.language", "Default language", settings.Locale.Language},
	}

	for _, step := range steps {
		cmd.Printf("%s [%s]: ", step.prompt, step.current)
		input, err := readLine(reader)
		if err != nil {
			return err
		}
		if input == "" {
			continue
		}
		if err := settingsService.Set(step.key, input); err != nil {
			return err
		}
	}

	cmd.Printf("Advertise the server via mDNS? [%s]: ", yesNoHint(settings.Server.MDNS))
	input, err := readLine(reader)
	if err != nil {
		return err
	}
	if mdns, ok := parseYesNo(input); ok {
		if err := settingsService.Set("server.mdns", strconv.FormatBool(mdns)); err != nil {
			return err
		}
	}

	cmd.Println()
	cmd.Println("Settings saved.")
	return nil
}

// readLine reads one trimmed line. End of input counts as an empty answer.
func readLine(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// parseYesNo interprets a y/n answer; ok is false for anything else.
func parseYesNo(input string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

func yesNoHint(current bool) string {
	if current {
		return "Y/n"
	}
	return "y/N"
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
