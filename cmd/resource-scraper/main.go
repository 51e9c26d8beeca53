// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resource-scraper CLI. The serve
// subcommand runs the resource API; types, search, tui, and history are
// clients of it.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/secrets"
	"github.com/Dnemni/Resource-Scraper-Tool/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ and .env at startup.
var loadedSecrets secrets.Set

// rootCmd is the base command for the resource-scraper CLI.
var rootCmd = &cobra.Command{
	Use:   "resource-scraper",
	Short: "Find educational resources for a topic",
	Long: `resource-scraper finds tutorials, courses, documentation, and practice
material for a topic. The serve subcommand runs the resource API backed by a
web search; the search, types, and tui subcommands talk to that API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", ".env", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if names := s.Names(); len(names) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", names)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./resource-scraper.yaml or ~/.config/resource-scraper/resource-scraper.yaml)")
	pf.String("api", "", "resource API base URL (default "+types.DefaultAPIBaseURL+")")
	pf.Duration("timeout", 0, "client request timeout (0 disables)")

	_ = viper.BindPFlag("api.base_url", pf.Lookup("api"))
	_ = viper.BindPFlag("api.timeout", pf.Lookup("timeout"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("resource-scraper")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "resource-scraper"))
		}
	}

	viper.SetDefault("api.base_url", types.DefaultAPIBaseURL)
	viper.SetDefault("server.addr", ":8000")
	viper.SetDefault("server.max_results", 5)
	viper.SetDefault("scraper.num_results", 20)
	viper.SetDefault("scraper.max_retries", 5)

	viper.SetEnvPrefix("RESOURCE_SCRAPER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func userAgent() string {
	return "resource-scraper/" + version
}

// clientConfig assembles the API client settings from viper.
func clientConfig() types.ClientConfig {
	return types.ClientConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("api.timeout"),
			UserAgent: userAgent(),
		},
		BaseURL: viper.GetString("api.base_url"),
	}
}

// scraperConfig assembles the web search settings. The API key comes from the
// loaded secrets, then the SERPER_API_KEY environment variable.
func scraperConfig() types.ScraperConfig {
	return types.ScraperConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: userAgent(),
		},
		APIKey:     loadedSecrets.Get(secrets.SerperAPIKey),
		Endpoint:   viper.GetString("scraper.endpoint"),
		NumResults: viper.GetInt("scraper.num_results"),
		MaxRetries: viper.GetInt("scraper.max_retries"),
	}
}

func serverConfig() types.ServerConfig {
	return types.ServerConfig{
		Addr:       viper.GetString("server.addr"),
		MaxResults: viper.GetInt("server.max_results"),
		HistoryDB:  viper.GetString("server.history_db"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
