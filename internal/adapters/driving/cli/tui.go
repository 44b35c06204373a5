package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plantadash/plantsearch/internal/adapters/driving/tui"
)

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("the TUI needs an interactive terminal; use 'plantsearch search' instead")

// isTerminal reports whether stdout is a terminal. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var tuiCmd = &cobra.Command{
	Use:   "tui [query]",
	Short: "Launch the interactive search UI",
	Long: `Launch the interactive terminal UI. Results update as you type,
after a short pause (search.debounce_ms). Queries shorter than
search.min_query_length show nothing.

Controls:
  ↑/↓      Navigate results (wraps around)
  Enter    Open the selected result and print its URL
  Esc      Clear the search (on an empty search: quit)
  F1       Toggle help
  Ctrl+C   Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	if !isTerminal() {
		return errNotTerminal
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	opts := tui.Options{}
	if len(args) > 0 {
		opts.Query = strings.TrimSpace(args[0])
	}

	app, err := tui.NewApp(tui.NewPorts(searchService, settingsService), opts)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	selection, err := app.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	if selection != nil {
		cmd.Println(selection.URL)
	}
	return nil
}
