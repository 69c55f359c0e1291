package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wudi/gridkit/processor"
)

// bundleOpts holds the command-line flags for the bundle command.
type bundleOpts struct {
	out       string // output file path
	columns   int    // grid column count
	padding   int    // pixel gap per grid cell
	width     int    // explicit member width (0 = infer)
	height    int    // explicit member height (0 = infer)
	tableFile string // table source file drawn above the grid
	caption   string // caption string drawn above the grid
	fontFile  string // TTF/OTF font for table or caption text
	sheet     string // worksheet name for .xlsx table sources
	border    int    // table border thickness in pixels
}

func newBundleCmd(configPath *string) *cobra.Command {
	opts := bundleOpts{out: "bundle.jpg", columns: 1, padding: 20, border: 1}

	cmd := &cobra.Command{
		Use:   "bundle [images...]",
		Short: "Compose images into one bundled grid image",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd.Context(), *configPath, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "output file")
	cmd.Flags().IntVar(&opts.columns, "columns", opts.columns, "grid column count")
	cmd.Flags().IntVar(&opts.padding, "padding", opts.padding, "cell padding in pixels")
	cmd.Flags().IntVar(&opts.width, "width", 0, "member width (with --height; skips inference)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "member height (with --width; skips inference)")
	cmd.Flags().StringVar(&opts.tableFile, "table", "", "table file (.md, .html, .xlsx) drawn above the grid")
	cmd.Flags().StringVar(&opts.caption, "caption", "", "caption drawn above the grid")
	cmd.Flags().StringVar(&opts.fontFile, "font", "", "font file for table or caption text")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "worksheet name for .xlsx tables")
	cmd.Flags().IntVar(&opts.border, "border", opts.border, "table border thickness in pixels")
	return cmd
}

func runBundle(ctx context.Context, configPath string, opts bundleOpts, paths []string) error {
	if opts.tableFile != "" && opts.caption != "" {
		return errors.New("--table and --caption are mutually exclusive")
	}

	logger := loggerFromContext(ctx)
	p, err := newProcessor(configPath, logger)
	if err != nil {
		return err
	}

	buffers := make([][]byte, len(paths))
	for i, path := range paths {
		if buffers[i], err = os.ReadFile(path); err != nil {
			return fmt.Errorf("read image: %w", err)
		}
	}

	gridOpts := []processor.GridOption{
		processor.WithColumns(opts.columns),
		processor.WithPadding(opts.padding),
	}
	if opts.width > 0 && opts.height > 0 {
		gridOpts = append(gridOpts, processor.WithMemberDimension(opts.width, opts.height))
	}

	var out []byte
	switch {
	case opts.tableFile != "":
		spec, err := specFromFile(opts.tableFile, opts.sheet, opts.border)
		if err != nil {
			return err
		}
		font, err := readFont(opts.fontFile)
		if err != nil {
			return err
		}
		out, err = p.ComposeGridWithTable(ctx, buffers, spec, font, gridOpts...)
		if err != nil {
			return err
		}
	case opts.caption != "":
		font, err := readFont(opts.fontFile)
		if err != nil {
			return err
		}
		out, err = p.ComposeGridWithCaption(ctx, buffers, opts.caption, font, gridOpts...)
		if err != nil {
			return err
		}
	default:
		if out, err = p.ComposeGrid(ctx, buffers, gridOpts...); err != nil {
			return err
		}
	}

	if err := os.WriteFile(opts.out, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("wrote bundle", "path", opts.out, "images", len(paths), "bytes", len(out))
	return nil
}
