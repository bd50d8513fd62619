package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <deck>",
		Short: "Parse and validate a deck without playing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd, "command.validate")
			if err != nil {
				return err
			}

			deck, err := loadDeck("validate deck", args[0])
			if err != nil {
				log.Error(err, "deck validation failed", "path", args[0])
				return err
			}

			cfg := deck.CarouselConfig()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid\n", args[0])
			fmt.Fprintf(out, "Name:     %s (v%s)\n", deck.Name, deck.Version)
			fmt.Fprintf(out, "Slides:   %d\n", len(deck.Slides))
			fmt.Fprintf(out, "Mode:     %s\n", mode(cfg.Infinite, cfg.Vertical))
			if cfg.Autoplay {
				fmt.Fprintf(out, "Autoplay: every %s\n", cfg.AutoplayInterval)
			} else {
				fmt.Fprintf(out, "Autoplay: off\n")
			}
			fmt.Fprintf(out, "Window:   show %d, scroll %d\n", cfg.SlidesToShow, cfg.SlidesToScroll)
			return nil
		},
	}

	return cmd
}

func mode(infinite, vertical bool) string {
	wrap := "finite"
	if infinite {
		wrap = "infinite"
	}
	if vertical {
		return wrap + ", vertical"
	}
	return wrap + ", horizontal"
}
