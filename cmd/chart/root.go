//go:build !wasm

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "chart",
		Short:        "Render bar and line charts to SVG",
		SilenceUsage: true,
	}
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newServeCmd())
	return cmd
}
