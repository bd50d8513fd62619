package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
	"github.com/alexisbeaulieu97/carousel/internal/logger"
	"github.com/alexisbeaulieu97/carousel/internal/ui/components"
	"github.com/alexisbeaulieu97/carousel/internal/watch"
)

// Options configures the player model.
type Options struct {
	Title        string
	Description  string
	Slides       carousel.SlideSet
	Config       carousel.Config
	InitialIndex int
	Theme        components.Theme
	Logger       *logger.Logger

	// Reload and Changes enable live reload; both must be set.
	Reload  ReloadFunc
	Changes <-chan watch.Event
}

// activity records navigator notifications for the footer.
type activity struct {
	changes   int
	completed int
	last      string
}

// Model hosts a Navigator on the bubbletea event loop.
type Model struct {
	nav   *carousel.Navigator
	sched *teaScheduler
	log   *logger.Logger

	title       string
	description string
	theme       components.Theme
	keys        keyMap
	help        help.Model
	activity    *activity

	reload  ReloadFunc
	changes <-chan watch.Event

	hovering   bool
	lastErr    string
	reloadNote string
	quitting   bool

	width  int
	height int
}

// NewModel mounts a navigator for opts. Autoplay timers start when the
// program runs Init.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	theme := opts.Theme
	if theme.Variants == nil {
		theme = components.DefaultTheme()
	}

	act := &activity{}
	sched := newTeaScheduler()
	nav := carousel.New(opts.Slides, opts.Config, sched,
		carousel.WithInitialIndex(opts.InitialIndex),
		carousel.WithLogger(log),
		carousel.WithBeforeChange(func(current, next int) {
			act.changes++
			act.last = fmt.Sprintf("%d → %d", current+1, next+1)
		}),
		carousel.WithAfterChange(func(int) {
			act.completed++
		}),
	)

	m := Model{
		nav:         nav,
		sched:       sched,
		log:         log,
		title:       opts.Title,
		description: opts.Description,
		theme:       theme,
		keys:        defaultKeyMap().forConfig(nav.Config()),
		help:        help.New(),
		activity:    act,
		width:       80,
		height:      24,
	}
	if opts.Reload != nil && opts.Changes != nil {
		m.reload = opts.Reload
		m.changes = opts.Changes
	}
	return m
}

// Init starts the armed timers and the deck watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.sched.flush(), waitForChange(m.changes))
}

// Navigator exposes the hosted navigator.
func (m Model) Navigator() *carousel.Navigator {
	return m.nav
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts an interactive program for opts and blocks until it exits.
func Run(ctx context.Context, opts Options, programOpts ...tea.ProgramOption) error {
	programOpts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}, programOpts...)

	final, err := tea.NewProgram(NewModel(opts), programOpts...).Run()
	if m, ok := final.(Model); ok {
		m.nav.Close()
	}
	if err != nil {
		return fmt.Errorf("run player: %w", err)
	}
	return nil
}
