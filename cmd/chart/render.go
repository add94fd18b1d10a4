//go:build !wasm

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tinywasm/chart/env"
	"github.com/tinywasm/chart/errs"
	"github.com/tinywasm/chart/render/svgchart"
)

func newRenderCmd() *cobra.Command {
	var (
		kind, data, out, font, family string
		touch                         float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a data file to an SVG image",
		Example: `  chart render --data sales.yaml --out sales.svg
  chart render --type line --data sales.yaml --touch 120 --out -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := LoadDataFile(data)
			if err != nil {
				return err
			}
			if font != "" {
				f.Font = font
			}

			var at *float64
			if cmd.Flags().Changed("touch") {
				at = &touch
			}
			frame, err := snapshot(f, kind, at, env.Log)
			if err != nil {
				return err
			}
			img, err := svgchart.Bytes(frame, svgchart.FontFamily(family))
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(img)
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return errs.New("write", out, rune(':'), err)
			}
			env.Log("wrote", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "chart type: bar or line (default from the data file)")
	cmd.Flags().StringVar(&data, "data", "", "YAML data file")
	cmd.Flags().StringVar(&out, "out", "chart.svg", "output file, - for stdout")
	cmd.Flags().StringVar(&font, "font", "", "TrueType font used to measure labels")
	cmd.Flags().StringVar(&family, "font-family", string(svgchart.DefaultFontFamily), "CSS font family of the SVG text")
	cmd.Flags().Float64Var(&touch, "touch", 0, "x position to show the tooltip for")
	cmd.MarkFlagRequired("data")
	return cmd
}
