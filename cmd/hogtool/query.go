package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jchantrell/hogtool/internal/catalog"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query [SQL]",
	Short: "Query the SQLite catalog from the command line",
	Long: `Query runs SQL against a catalog written by the catalog command, or prints
the stored listing with --entries. The catalog has two tables:

  archives(name, kind, entry_count, data_offset)
  entries(lower_name, name, size, flags, timestamp, origin)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		listEntries, err := cmd.Flags().GetBool("entries")
		if err != nil {
			return fmt.Errorf("failed to get entries flag: %w", err)
		}

		slog.Debug("Query parameters",
			"database", cfg.Database,
			"entries", listEntries)

		db, err := catalog.Open(catalog.DefaultOptions(cfg.Database))
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			return err
		}

		if listEntries {
			rows, err := db.Entries(ctx)
			if err != nil {
				return err
			}
			printRows(os.Stdout, rows)
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("no query provided, use --entries to list the catalog")
		}

		query := args[0]
		slog.Debug("Executing SQL query", "query", query)

		rows, err := db.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("getting column names: %w", err)
		}

		fmt.Println(strings.Join(columns, "\t"))

		separators := make([]string, len(columns))
		for i, col := range columns {
			separators[i] = strings.Repeat("-", len(col))
		}
		fmt.Println(strings.Join(separators, "\t"))

		for rows.Next() {
			values := make([]interface{}, len(columns))
			valuePtrs := make([]interface{}, len(columns))
			for i := range values {
				valuePtrs[i] = &values[i]
			}

			if err := rows.Scan(valuePtrs...); err != nil {
				return fmt.Errorf("scanning row: %w", err)
			}

			cells := make([]string, len(values))
			for i, val := range values {
				switch v := val.(type) {
				case nil:
					cells[i] = "NULL"
				case []byte:
					cells[i] = string(v)
				default:
					cells[i] = fmt.Sprint(v)
				}
			}
			fmt.Println(strings.Join(cells, "\t"))
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterating rows: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().Bool("entries", false, "print the stored entry listing")
}
