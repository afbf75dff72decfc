package cmd

import (
	"context"
	"fmt"
	"log"

	"file-gateway/core/config"
	"file-gateway/core/storage"
	"file-gateway/feature/notes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lsSearch string

// lsCmd lists stored keys from the terminal, using the same listing engine
// as the HTTP API.
var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List keys stored in the bucket",
	Long:  `Lists every key in the configured bucket, optionally filtered by a case-insensitive substring search.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("create storage client: %w", err)
		}

		service := notes.NewService(store, cfg.Storage.Bucket, zap.NewNop(), cfg.Storage.ListPageSize)
		keys, err := service.List(context.Background(), lsSearch)
		if err != nil {
			return err
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}

func init() {
	lsCmd.Flags().StringVar(&lsSearch, "search", "", "case-insensitive substring filter")
	RootCmd.AddCommand(lsCmd)
}
