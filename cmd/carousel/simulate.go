package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/carousel/internal/simulate"
)

type simulateOptions struct {
	duration   time.Duration
	events     string
	start      int
	jsonOutput bool
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <deck>",
		Short: "Run a deck headless on a virtual clock and print its timeline",
		Example: `  carousel simulate deck.yaml --for 10s
  carousel simulate deck.yaml --for 8s --events "2s:next,4s:enter,6s:leave"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd, "command.simulate")
			if err != nil {
				return err
			}

			if opts.duration < 0 {
				return newCommandError("simulate deck", "reading --for", fmt.Errorf("duration %s is negative", opts.duration), "Pass a positive duration such as --for 10s.")
			}
			steps, err := simulate.ParseScript(opts.events)
			if err != nil {
				return newCommandError("simulate deck", "parsing --events", err, `Use entries like "2s:next,4s:enter,6s:leave".`)
			}

			deck, err := loadDeck("simulate deck", args[0])
			if err != nil {
				return err
			}

			start := deck.InitialIndex()
			if cmd.Flags().Changed("start") {
				start = opts.start
			}

			result := simulate.Run(simulate.Options{
				Slides:       deck.SlideSet(),
				Config:       deck.CarouselConfig(),
				InitialIndex: start,
				Steps:        steps,
				Duration:     opts.duration,
				Logger:       log,
			})

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			out := cmd.OutOrStdout()
			for _, entry := range result.Timeline {
				fmt.Fprintln(out, entry.String())
			}
			fmt.Fprintf(out, "\n%d changes in %s, ending on slide %d", result.Commits(), opts.duration, result.Final.CurrentIndex)
			if result.Final.IsTransitioning {
				fmt.Fprint(out, " (transitioning)")
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.duration, "for", 10*time.Second, "Virtual time to run for")
	cmd.Flags().StringVar(&opts.events, "events", "", `Scripted requests, for example "2s:next,4s:enter,6s:leave"`)
	cmd.Flags().IntVar(&opts.start, "start", 0, "Slide index to start on (defaults to the deck's initial_slide)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the timeline as JSON")

	return cmd
}
