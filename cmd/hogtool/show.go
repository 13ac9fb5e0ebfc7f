package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jchantrell/hogtool/internal/archive"
	"github.com/jchantrell/hogtool/internal/utils"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the entries of the input archives",
	Long: `Show prints every entry of the combined inputs sorted by name, with its
size, flags, timestamp and the file it came from. When --output is set the
table is written there instead of standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, _, stats, err := loadIndex(context.Background())
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		printRows(w, idx.List())

		return stats.Err()
	},
}

func printRows(w io.Writer, rows []archive.Row) {
	var total int64
	for _, r := range rows {
		total += int64(r.Size)
	}

	fmt.Fprintf(w, "Found %s entries (%s)\n", utils.Number(int64(len(rows))), utils.FormatSize(total))
	fmt.Fprintf(w, "%-36s%-12s%-10s%-12s%-10s\n", "Name", "Size", "Flags", "Timestamp", "From")
	for _, r := range rows {
		fmt.Fprintf(w, "%-36s%-12s%-10d%-12d%-10s\n", r.Name, r.HumanSize(), r.Flags, r.Timestamp, r.Origin)
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
	addInputFlags(showCmd)
	showCmd.Flags().StringVarP(&output, "output", "o", "", "write the listing to this file")
}
