package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the entries of the input archives into a directory",
	Long: `Extract writes every entry of the combined inputs into the output directory
under its lowercase name. The directory must already exist. When inputs share
an entry name, the one from the input listed last is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if output == "" {
			return fmt.Errorf("you must specify an output directory")
		}

		idx, _, stats, err := loadIndex(context.Background())
		if err != nil {
			return err
		}

		written, err := idx.ExtractAll(output)
		if err != nil {
			return fmt.Errorf("extracting: %w", err)
		}

		slog.Info("Extracted files", "count", written, "output", output)

		return stats.Err()
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	addInputFlags(extractCmd)
	extractCmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
}
