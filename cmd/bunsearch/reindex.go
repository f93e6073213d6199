package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kartikbazzad/bunsearch/internal/config"
	"github.com/kartikbazzad/bunsearch/internal/search"
)

var reindexTenant string

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Close and reopen a single tenant's index to reconcile on-disk state",
	RunE: func(cmd *cobra.Command, args []string) error {
		if reindexTenant == "" {
			return fmt.Errorf("--tenant is required")
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		registry := search.NewRegistry(cfg.DataDir)
		if _, err := registry.GetOrCreate(reindexTenant); err != nil {
			return fmt.Errorf("open tenant %s: %w", reindexTenant, err)
		}
		if err := registry.Reopen(reindexTenant); err != nil {
			return fmt.Errorf("reopen tenant %s: %w", reindexTenant, err)
		}

		fmt.Printf("reindexed tenant %s\n", reindexTenant)
		return nil
	},
}

func init() {
	reindexCmd.Flags().StringVar(&reindexTenant, "tenant", "", "tenant id to reindex")
}
