package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCaptionCmd(configPath *string) *cobra.Command {
	var (
		out      = "caption.jpg"
		fontFile string
	)

	cmd := &cobra.Command{
		Use:   "caption [text]",
		Short: "Render a caption string as an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p, err := newProcessor(*configPath, logger)
			if err != nil {
				return err
			}
			font, err := readFont(fontFile)
			if err != nil {
				return err
			}
			data, err := p.RenderCaption(ctx, args[0], font)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("wrote caption", "path", out, "bytes", len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", out, "output file")
	cmd.Flags().StringVar(&fontFile, "font", "", "font file for caption text")
	return cmd
}
