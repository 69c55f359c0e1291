package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newTableCmd(configPath *string) *cobra.Command {
	var (
		out      = "table.jpg"
		fontFile string
		sheet    string
		border   = 1
	)

	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Render a measurement table (.md, .html, .xlsx) as an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p, err := newProcessor(*configPath, logger)
			if err != nil {
				return err
			}
			spec, err := specFromFile(args[0], sheet, border)
			if err != nil {
				return err
			}
			font, err := readFont(fontFile)
			if err != nil {
				return err
			}
			data, err := p.RenderTable(ctx, spec, font)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("wrote table", "path", out, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", out, "output file")
	cmd.Flags().StringVar(&fontFile, "font", "", "font file for table text")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for .xlsx tables")
	cmd.Flags().IntVar(&border, "border", border, "table border thickness in pixels")
	return cmd
}
