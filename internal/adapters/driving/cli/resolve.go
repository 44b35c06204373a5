package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/core/domain"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [id]",
	Short: "Resolve an item ID to its page",
	Long: `Looks up a plant or environment by full ID, ID tail, slug, or a part
of its ID (6 characters or more) and prints the page URL.
When several items match, all of them are listed.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output the resolution as JSON")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	if redirectService == nil {
		return errors.New("redirect service not configured")
	}

	res, err := redirectService.Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolve failed: %w", err)
	}

	if resolveJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resolution: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	switch res.Kind {
	case domain.ResolutionRedirect:
		cmd.Println(res.Target())
	case domain.ResolutionMultiple:
		cmd.Println("Multiple matches found:")
		for i := range res.Matches {
			m := &res.Matches[i]
			cmd.Printf("  %s  %s (%s)  %s\n", m.ID, m.Title, m.Type, m.URL)
		}
	default:
		return fmt.Errorf("no plants or environments found matching %q: %w", res.Query, domain.ErrNotFound)
	}
	return nil
}
