package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantadash/plantsearch/internal/adapters/driven/dataset"
	"github.com/plantadash/plantsearch/internal/adapters/driving/browser"
	"github.com/plantadash/plantsearch/internal/adapters/driving/web"
	"github.com/plantadash/plantsearch/internal/core/ports/driven"
	"github.com/plantadash/plantsearch/internal/core/services"
	"github.com/plantadash/plantsearch/internal/logger"
)

var (
	serveAddr  string
	serveSite  string
	serveWatch bool
	serveMDNS  bool
	serveOpen  bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the companion HTTP server",
	Long: `Serves a JSON search API, ID redirects, relative times and language
switching for the static dashboard, and optionally the site itself.

Endpoints:
  GET /api/search?q=...      ranked results with highlighted HTML
  GET /api/resolve?id=...    ID resolution as JSON
  GET /api/reltime?ts=...    relative time text and tooltip
  GET /go/{id}               redirect to an item page
  GET /lang?to=..&path=..    redirect to a page in another language
  GET /healthz               liveness

With --watch, edits to a local dataset file are picked up without a
restart. With --mdns, the server announces itself on the local network.
With --open, the site is opened in the browser once the server listens.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default server.addr)")
	serveCmd.Flags().StringVar(&serveSite, "site", "", "static site directory to serve (default server.site_dir)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload the dataset when the file changes")
	serveCmd.Flags().BoolVar(&serveMDNS, "mdns", false, "advertise the server via mDNS (default server.mdns)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in the browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || searchService == nil || redirectService == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}
	if serveSite != "" {
		settings.Server.SiteDir = serveSite
	}
	if cmd.Flags().Changed("mdns") {
		settings.Server.MDNS = serveMDNS
	}

	opts := web.OptionsFromSettings(settings)
	if serveOpen {
		opts.OnReady = openInBrowser
	}
	server, err := web.NewServer(&web.Ports{Search: searchService, Redirect: redirectService}, opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := searchService.Records(ctx); err != nil {
		logger.Warn("dataset: %v", err)
	}

	if serveWatch {
		debounce := time.Duration(settings.Search.DebounceMS) * time.Millisecond
		if err := startWatcher(ctx, server, datasetSource, debounce); err != nil {
			return err
		}
	}

	if settings.Server.MDNS {
		shutdown, err := web.Advertise(settings.Server.Addr, version)
		if err != nil {
			logger.Warn("mDNS advertisement disabled: %v", err)
		} else {
			defer shutdown()
		}
	}

	cmd.Printf("Serving on %s\n", settings.Server.Addr)
	return server.Run(ctx, settings.Server.Addr)
}

// openInBrowser opens the server's root page. Failures are only logged.
func openInBrowser(addr net.Addr) {
	url := browser.LocalURL(addr)
	if err := browser.Open(url); err != nil {
		logger.Warn("open %s: %v", url, err)
	}
}

// startWatcher reloads the dataset into server whenever the file changes.
func startWatcher(ctx context.Context, server *web.Server, source driven.DatasetSource, delay time.Duration) error {
	if source == nil || dataset.IsRemote(source.Location()) {
		return errors.New("--watch needs a local dataset file")
	}

	w, err := dataset.NewWatcher(source.Location(), delay, reloadFunc(ctx, server, source))
	if err != nil {
		return fmt.Errorf("watching dataset: %w", err)
	}
	go func() {
		if err := w.Run(ctx); err != nil {
			logger.Warn("dataset watcher stopped: %v", err)
		}
	}()
	logger.Info("Watching %s for changes", source.Location())
	return nil
}

// reloadFunc returns a callback that loads source into a new session and
// swaps it into server. A failed load leaves the previous session in place.
func reloadFunc(ctx context.Context, server *web.Server, source driven.DatasetSource) func() {
	return func() {
		session := services.NewSession(source)
		if err := session.Load(ctx); err != nil {
			logger.Warn("reload %s: %v", source.Location(), err)
			return
		}

		records, _ := session.Records(ctx)
		if err := server.SetPorts(&web.Ports{
			Search:   session,
			Redirect: services.NewRedirectService(session),
		}); err != nil {
			logger.Warn("reload %s: %v", source.Location(), err)
			return
		}
		logger.Info("Reloaded %d records from %s", len(records), source.Location())
	}
}
