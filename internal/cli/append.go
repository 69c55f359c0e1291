package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newAppendCmd(configPath *string) *cobra.Command {
	var (
		out       = "appended.jpg"
		tableFile string
		fontFile  string
		sheet     string
		border    = 1
	)

	cmd := &cobra.Command{
		Use:   "append [image]",
		Short: "Append a measurement table above an existing image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if tableFile == "" {
				return errors.New("--table is required")
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p, err := newProcessor(*configPath, logger)
			if err != nil {
				return err
			}
			imageData, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read image: %w", err)
			}
			spec, err := specFromFile(tableFile, sheet, border)
			if err != nil {
				return err
			}
			font, err := readFont(fontFile)
			if err != nil {
				return err
			}
			data, err := p.AppendTableAbove(ctx, imageData, spec, font)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("wrote image with table", "path", out, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", out, "output file")
	cmd.Flags().StringVar(&tableFile, "table", "", "table file (.md, .html, .xlsx)")
	cmd.Flags().StringVar(&fontFile, "font", "", "font file for table text")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for .xlsx tables")
	cmd.Flags().IntVar(&border, "border", border, "table border thickness in pixels")
	return cmd
}
