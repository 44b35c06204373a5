package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search plants and environments",
	Long: `Searches the dataset with the dashboard's fuzzy matcher.
Titles, custom names, scientific names, environment names and IDs are
scored by exact, prefix, substring, fuzzy and subsequence matches.
At most 12 results are shown, best first.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.MaxResults, "maximum number of results (at most 12)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}
	if searchLimit < 0 {
		return fmt.Errorf("limit must not be negative: %w", domain.ErrInvalidInput)
	}

	results, err := searchService.Search(cmd.Context(), args[0], domain.SearchOptions{Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.ScoredResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func plain(s string) string { return s }

func outputSearchTable(cmd *cobra.Command, results []domain.ScoredResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		title := r.Record.Title
		if title == "" {
			title = r.Record.DisplayID()
		}

		cmd.Printf("  [%d] %s (%s, %.2f)\n", i+1, title, r.Record.Type, r.Score)
		cmd.Printf("      %s\n", services.Snippet(r, plain))
		if r.Record.URL != "" {
			cmd.Printf("      %s\n", r.Record.URL)
		}
		cmd.Println()
	}
}
