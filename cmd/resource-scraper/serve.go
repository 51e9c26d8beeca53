// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/history"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/scraper"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the resource API",
	Long: `Serve exposes GET /api/resource-types, POST /api/search, and GET /health.
Searches query the Serper web search API; set SERPER_API_KEY or write the key
to .secrets/serper-api-key. Without a key the server starts but searches fail
with "API key not configured".`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("addr", "", "listen address (default :8000)")
	f.Int("max-results", 0, "resources returned per search (default 5)")
	f.String("history-db", "", "SQLite file to record searches in (empty disables)")
	f.Bool("debug", false, "run gin in debug mode and log at debug level")

	_ = viper.BindPFlag("server.addr", f.Lookup("addr"))
	_ = viper.BindPFlag("server.max_results", f.Lookup("max-results"))
	_ = viper.BindPFlag("server.history_db", f.Lookup("history-db"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	debug, _ := cmd.Flags().GetBool("debug")
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	scfg := scraperConfig()
	if scfg.APIKey == "" {
		log.Warn("no serper API key configured; searches will fail")
	}
	sc := scraper.New(scraper.NewSerperBackend(scfg, os.Stderr), os.Stderr)

	cfg := serverConfig()
	var rec server.Recorder
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()
		rec = store
		log.Info("recording search history", "path", cfg.HistoryDB)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, sc, rec, log).Run(ctx)
}
