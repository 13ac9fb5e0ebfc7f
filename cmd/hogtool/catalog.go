package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jchantrell/hogtool/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Record the entries of the input archives in a SQLite catalog",
	Long: `Catalog writes the same listing as show into the SQLite database given by
--database (or the database config key), replacing any previous contents.
Use the query command to search it afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		idx, results, stats, err := loadIndex(ctx)
		if err != nil {
			return err
		}

		db, err := catalog.Open(catalog.DefaultOptions(cfg.Database))
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}

		rows := idx.List()
		if err := db.Replace(ctx, results, rows); err != nil {
			return fmt.Errorf("writing catalog: %w", err)
		}

		slog.Info("Catalog written", "path", db.Path(), "archives", len(results), "entries", len(rows))
		fmt.Println("Try running: hogtool query --entries")

		return stats.Err()
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	addInputFlags(catalogCmd)
}
