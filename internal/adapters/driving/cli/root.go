// Package cli provides the plantsearch command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/adapters/driven/config/file"
	"github.com/plantadash/plantsearch/internal/adapters/driven/dataset"
	"github.com/plantadash/plantsearch/internal/core/ports/driven"
	"github.com/plantadash/plantsearch/internal/core/ports/driving"
	"github.com/plantadash/plantsearch/internal/core/services"
	"github.com/plantadash/plantsearch/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose         bool
	configDir       string
	datasetLocation string
)

// Services used by the commands. Execute builds them on first use;
// tests inject their own.
var (
	configStore     driven.ConfigStore
	settingsService driving.SettingsService
	datasetSource   driven.DatasetSource
	searchService   driving.SearchService
	redirectService driving.RedirectService
)

// skipServices marks commands that run without config or dataset.
const skipServices = "skip-services"

var rootCmd = &cobra.Command{
	Use:   "plantsearch",
	Short: "Search and navigate a plant dashboard",
	Long: `plantsearch searches the plants and environments of a static plant
dashboard site. It reads the site's search-data.json and offers fuzzy
search, ID redirects, a terminal UI, a companion HTTP server and an MCP
server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if _, ok := cmd.Annotations[skipServices]; ok {
			return nil
		}
		return initServices()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"configuration directory (default ~/"+file.DefaultDirName+")")
	rootCmd.PersistentFlags().StringVarP(&datasetLocation, "dataset", "d", "",
		"dataset file or URL (overrides dataset.location)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices builds whatever services have not been injected.
func initServices() error {
	if configStore == nil {
		store, err := file.NewConfigStore(configDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		configStore = store
	}
	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}

	if searchService != nil && datasetLocation == "" {
		return nil
	}

	location := datasetLocation
	if location == "" {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("reading settings: %w", err)
		}
		location = settings.Dataset.Location
	}
	openDataset(location)
	return nil
}

// openDataset starts a fresh session over location.
func openDataset(location string) {
	logger.Debug("Dataset: %s", location)
	datasetSource = dataset.Open(location, nil)
	session := services.NewSession(datasetSource)
	searchService = session
	redirectService = services.NewRedirectService(session)
}
