package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plantadash/plantsearch/internal/adapters/driven/config/memory"
	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/services"
)

func testRecords() []domain.Record {
	return []domain.Record{
		{
			ID: "PLANT-0001-ABCDEF", IDTail: "abcdef", Slug: "aloe", Title: "Aloe Vera",
			Type: domain.RecordTypePlant, URL: "plants/abcdef.html",
			ScientificName: "Aloe barbadensis", EnvironmentName: "Kitchen",
		},
		{
			ID: "PLANT-0002-XYZ123", IDTail: "xyz123", Title: "Monstera",
			Type: domain.RecordTypePlant, URL: "plants/xyz123.html",
		},
		{
			ID: "ENV-KITCHEN", IDTail: "kitchen", Title: "Kitchen",
			Type: domain.RecordTypeEnvironment, URL: "environments/kitchen.html",
		},
	}
}

// setupTestServices injects in-memory services and returns a cleanup
// that restores the package state.
func setupTestServices() func() {
	store := memory.NewConfigStore()
	configStore = store
	settingsService = services.NewSettingsService(store)

	session := services.NewSessionWithRecords(testRecords())
	searchService = session
	redirectService = services.NewRedirectService(session)
	datasetSource = nil

	return func() {
		configStore = nil
		settingsService = nil
		searchService = nil
		redirectService = nil
		datasetSource = nil
		resetFlags()
	}
}

// resetFlags restores flag variables, which outlive a single Execute.
func resetFlags() {
	verbose = false
	configDir = ""
	datasetLocation = ""
	searchLimit = domain.MaxResults
	searchJSON = false
	resolveJSON = false
	reltimeLang = ""
	reltimeNow = ""
	serveAddr = ""
	serveSite = ""
	serveWatch = false
	serveMDNS = false
	serveOpen = false
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
