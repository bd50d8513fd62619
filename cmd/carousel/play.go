package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/carousel/internal/config"
	"github.com/alexisbeaulieu97/carousel/internal/logger"
	"github.com/alexisbeaulieu97/carousel/internal/tui"
	"github.com/alexisbeaulieu97/carousel/internal/watch"
)

type playOptions struct {
	start int
	watch bool
	width int
}

func newPlayCmd(flags *rootFlags) *cobra.Command {
	opts := &playOptions{}

	cmd := &cobra.Command{
		Use:   "play <deck>",
		Short: "Play a deck in the interactive player",
		Long: `Play a deck in the interactive player.

Arrow keys navigate, home and end jump to the first and last slide, 1-9 jump
to a page and space pauses autoplay. Moving the mouse over the carousel
pauses it when pause_on_hover is set. When stdout is not a terminal a single
frame is printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := flags.logger(cmd, "command.play")
			if err != nil {
				return err
			}
			log = log.With("session", uuid.NewString())

			err = runPlay(cmd, flags, opts, args[0], log)
			if err != nil {
				log.Error(err, "play command failed", "path", args[0])
			}
			return err
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", 0, "Slide index to start on (defaults to the deck's initial_slide)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload the deck when the file changes")
	cmd.Flags().IntVar(&opts.width, "width", 80, "Frame width when printing a static frame")

	return cmd
}

func runPlay(cmd *cobra.Command, flags *rootFlags, opts *playOptions, path string, log *logger.Logger) error {
	theme, err := flags.theme()
	if err != nil {
		return newCommandError("play deck", "selecting theme", err, "Use --theme light or --theme dark.")
	}

	deck, err := loadDeck("play deck", path)
	if err != nil {
		return err
	}

	start := deck.InitialIndex()
	if cmd.Flags().Changed("start") {
		start = opts.start
	}

	if !isTerminal(cmd.OutOrStdout()) {
		log.Info("output is not a terminal, printing a static frame")
		fmt.Fprintln(cmd.OutOrStdout(), staticFrame(deck, start, theme, opts.width))
		return nil
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	options := tui.Options{
		Title:        deck.Name,
		Description:  deck.Description,
		Slides:       deck.SlideSet(),
		Config:       deck.CarouselConfig(),
		InitialIndex: start,
		Theme:        theme,
		Logger:       log,
	}

	if opts.watch {
		w, err := watch.New(path, watch.DefaultDebounce, log)
		if err != nil {
			return newCommandError("play deck", "watching deck", err, "Run without --watch or check directory permissions.")
		}
		defer w.Close()
		go w.Run(ctx)

		options.Changes = w.Events()
		options.Reload = reloadFunc(path)
		log.Info("watching deck for changes", "path", w.Path())
	}

	log.Info("starting player", "slides", len(deck.Slides), "start", start)
	return tui.Run(ctx, options, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
}

func reloadFunc(path string) tui.ReloadFunc {
	return func() (tui.DeckUpdate, error) {
		deck, err := config.ParseDeck(path)
		if err != nil {
			return tui.DeckUpdate{}, err
		}
		return tui.DeckUpdate{
			Title:  deck.Name,
			Config: deck.CarouselConfig(),
			Slides: deck.SlideSet(),
		}, nil
	}
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
