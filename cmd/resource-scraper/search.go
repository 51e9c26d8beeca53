// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/catalog"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/client"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/session"
)

var searchCmd = &cobra.Command{
	Use:   "search [topic]",
	Short: "Search the resource API for a topic",
	Long: `Search sends a topic and optional resource-type filters to the resource API
and prints the ranked results. The topic is taken from --topic or from the
positional arguments. Filters must be values listed by the types subcommand.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("topic", "", "topic to search for")
	searchCmd.Flags().StringSlice("type", nil, "resource type filter (repeatable or comma-separated)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().Bool("yaml", false, "output results as YAML")
	searchCmd.Flags().Bool("details", false, "print an expanded block for the top results")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		topic = strings.Join(args, " ")
	}
	filters, _ := cmd.Flags().GetStringSlice("type")
	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	details, _ := cmd.Flags().GetBool("details")
	if asJSON && asYAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	ctx := cmd.Context()
	api := client.New(clientConfig())
	sess := session.New(api)
	sess.SetTopic(topic)

	if len(filters) > 0 {
		if err := selectFilters(cmd, sess, catalog.NewLoader(api), filters); err != nil {
			return err
		}
	}

	if err := sess.Submit(ctx); err != nil {
		if errors.Is(err, session.ErrEmptyTopic) {
			return fmt.Errorf("a topic is required")
		}
		if cause := errors.Unwrap(err); cause != nil {
			fmt.Fprintf(os.Stderr, "search: %v\n", cause)
		}
		return err
	}

	st := sess.Snapshot()
	out := cmd.OutOrStdout()
	switch {
	case asJSON:
		return session.FormatJSON(st, out)
	case asYAML:
		return session.FormatYAML(st, out)
	}
	session.FormatTable(st, out)
	if details {
		session.FormatDetails(st, out)
	}
	return nil
}

// selectFilters loads the catalog and toggles each requested filter. A catalog
// failure is reported and the search proceeds unfiltered.
func selectFilters(cmd *cobra.Command, sess *session.Session, loader *catalog.Loader, filters []string) error {
	if err := sess.LoadCatalog(cmd.Context(), loader); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v (%v); searching without filters\n", err, errors.Unwrap(err))
		return nil
	}
	st := sess.Snapshot()
	for _, f := range filters {
		f = strings.TrimSpace(f)
		if !offered(st, f) {
			return fmt.Errorf("unknown resource type %q (see resource-scraper types)", f)
		}
		if !st.IsSelected(f) {
			sess.Toggle(f)
			st = sess.Snapshot()
		}
	}
	return nil
}

func offered(st session.State, value string) bool {
	for _, t := range st.Catalog {
		if t.Value == value {
			return true
		}
	}
	return false
}
