// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show searches recorded by the server",
	Long: `History reads the SQLite database written by serve --history-db and prints
the most recent searches, newest first.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("db", "", "history database (default server.history_db)")
	historyCmd.Flags().Int("limit", 20, "number of entries to show")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("db")
	if path == "" {
		path = viper.GetString("server.history_db")
	}
	if path == "" {
		return fmt.Errorf("no history database configured (use --db or server.history_db)")
	}
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	formatHistory(entries, out)
	return nil
}

func formatHistory(entries []history.Entry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No searches recorded.")
		return
	}
	fmt.Fprintf(w, "%-19s  %-30s  %-20s  %7s  %8s  %s\n", "Time", "Topic", "Types", "Results", "Elapsed", "Error")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, e := range entries {
		kinds := strings.Join(e.ResourceTypes, ",")
		if kinds == "" {
			kinds = "(all)"
		}
		fmt.Fprintf(w, "%-19s  %-30s  %-20s  %7d  %8s  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"), clip(e.Topic, 30), clip(kinds, 20),
			e.ResultCount, e.Elapsed.Round(time.Millisecond), e.Error)
	}
}

func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}
