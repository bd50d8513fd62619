package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	index int
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <deck>",
		Short: "Print a single static frame of a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := flags.theme()
			if err != nil {
				return newCommandError("render deck", "selecting theme", err, "Use --theme light or --theme dark.")
			}

			deck, err := loadDeck("render deck", args[0])
			if err != nil {
				return err
			}

			index := deck.InitialIndex()
			if cmd.Flags().Changed("index") {
				index = opts.index
			}
			fmt.Fprintln(cmd.OutOrStdout(), staticFrame(deck, index, theme, opts.width))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.index, "index", 0, "Slide index to show; wraps or clamps like any navigation request")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Frame width in cells")

	return cmd
}
