// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/Dnemni/Resource-Scraper-Tool/internal/catalog"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/client"
	"github.com/Dnemni/Resource-Scraper-Tool/internal/session"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the resource types the API can filter on",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader := catalog.NewLoader(client.New(clientConfig()))
		rt, err := loader.Load(cmd.Context())
		if err != nil {
			return err
		}
		session.FormatCatalog(rt, cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
