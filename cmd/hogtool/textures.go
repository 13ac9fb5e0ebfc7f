package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jchantrell/hogtool/internal/batch"
	"github.com/jchantrell/hogtool/internal/export"
	"github.com/jchantrell/hogtool/internal/ogf"
	"github.com/jchantrell/hogtool/internal/source"
	"github.com/jchantrell/hogtool/internal/utils"
	"github.com/spf13/cobra"
)

var texturesCmd = &cobra.Command{
	Use:   "textures",
	Short: "Export OGF textures to PNG",
	Long: `Textures decodes OGF files, or every .ogf file directly inside a given
directory, and writes each mip level as <name>_<width>_<height>.png into the
output directory. A texture that fails to decode is reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		if len(inputs) == 0 {
			return fmt.Errorf("you must specify at least one --input file or directory")
		}
		if output == "" {
			return fmt.Errorf("you must specify the output directory")
		}

		exporter, err := export.NewExporter(output)
		if err != nil {
			return err
		}

		paths, err := source.ExpandTextures(inputs)
		if err != nil {
			return fmt.Errorf("finding textures: %w", err)
		}
		if len(paths) == 0 {
			slog.Info("No textures found")
			return nil
		}

		progress := utils.NewProgress(len(paths), progressEnabled())
		decoded, err := batch.DecodeTextures(context.Background(), paths, cfg.Workers, progress.Increment)
		progress.Finish()
		if err != nil {
			return fmt.Errorf("decoding textures: %w", err)
		}

		failed := 0
		textures := make([]*ogf.Texture, 0, len(decoded))
		for _, d := range decoded {
			if d.Err != nil {
				slog.Error("Could not read texture", "path", d.Path, "error", d.Err)
				failed++
				continue
			}
			slog.Debug("Read texture",
				"path", d.Path,
				"name", d.Texture.Name,
				"format", d.Texture.Format.String(),
				"levels", d.Texture.Levels)
			textures = append(textures, d.Texture)
		}

		slog.Info("Writing textures", "count", len(textures), "output", output)
		written, err := exporter.ExportTextures(textures, nil)
		if err != nil {
			return fmt.Errorf("exporting textures: %w", err)
		}

		fmt.Printf("Textures decoded: %d/%d\n", len(textures), len(paths))
		fmt.Printf("Images written: %s\n", utils.Number(int64(written)))
		fmt.Printf("Total duration: %s\n", utils.Duration(time.Since(start)))

		if failed > 0 {
			return fmt.Errorf("%d of %d textures could not be read", failed, len(paths))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(texturesCmd)
	texturesCmd.Flags().StringSliceVarP(&inputs, "input", "i", nil, "input OGF file or directory containing OGF files")
	texturesCmd.Flags().StringVarP(&output, "output", "o", "", "output directory")
}
