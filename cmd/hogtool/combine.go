package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jchantrell/hogtool/internal/utils"
	"github.com/spf13/cobra"
)

var combineCmd = &cobra.Command{
	Use:   "combine",
	Short: "Build a new HOG archive from archives and loose files",
	Long: `Combine merges the entries of every input, archive or not, into one new
archive. Entries are written sorted by name, so the same inputs always produce
the same file. When inputs share an entry name, the input listed last wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if output == "" {
			return fmt.Errorf("you must specify an output file")
		}

		idx, _, stats, err := loadIndex(context.Background())
		if err != nil {
			return err
		}

		data, err := idx.Encode()
		if err != nil {
			return fmt.Errorf("encoding archive: %w", err)
		}

		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}

		slog.Info("Wrote archive",
			"path", output,
			"entries", idx.Len(),
			"size", utils.FormatSize(int64(len(data))))

		return stats.Err()
	},
}

func init() {
	rootCmd.AddCommand(combineCmd)
	addInputFlags(combineCmd)
	combineCmd.Flags().StringVarP(&output, "output", "o", "", "output archive")
}
