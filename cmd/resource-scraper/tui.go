// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/catalog"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/client"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/session"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search interactively in the terminal",
	Long: `Tui opens a full-screen search form: type a topic, toggle resource-type
filters with space, and press enter to search. Tab moves between fields.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api := client.New(clientConfig())
		return tui.Run(cmd.Context(), session.New(api), catalog.NewLoader(api))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
