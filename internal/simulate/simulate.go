// Package simulate drives a Navigator through a scripted sequence of
// requests on a virtual clock and records what it announced.
package simulate

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/carousel/internal/carousel"
	"github.com/alexisbeaulieu97/carousel/internal/logger"
	"github.com/alexisbeaulieu97/carousel/internal/schedule"
)

// Step is one scripted request.
type Step struct {
	At     time.Duration
	Action string
	Arg    int
}

var argActions = map[string]bool{
	"goto":    true,
	"page":    true,
	"control": true,
}

var plainActions = map[string]bool{
	"next":     true,
	"previous": true,
	"first":    true,
	"last":     true,
	"pause":    true,
	"resume":   true,
	"release":  true,
	"enter":    true,
	"leave":    true,
}

var aliases = map[string]string{
	"prev":          "previous",
	"pointer-enter": "enter",
	"pointer-leave": "leave",
}

// ParseScript reads a comma separated list of "<duration>:<action>"
// entries, for example "2s:next,4s:enter,6s:leave,7s:goto=3". Actions are
// next, previous, first, last, pause, resume, enter, leave, release, the
// router keys (left, right, up, down, home, end) and goto=N, page=N,
// control=N. Steps are returned in time order.
func ParseScript(script string) ([]Step, error) {
	var steps []Step
	for i, raw := range strings.Split(script, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		step, err := parseStep(raw)
		if err != nil {
			return nil, fmt.Errorf("event %d %q: %w", i+1, raw, err)
		}
		steps = append(steps, step)
	}
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].At < steps[j].At
	})
	return steps, nil
}

func parseStep(raw string) (Step, error) {
	at, action, ok := strings.Cut(raw, ":")
	if !ok {
		return Step{}, fmt.Errorf("expected <duration>:<action>")
	}
	d, err := time.ParseDuration(strings.TrimSpace(at))
	if err != nil {
		return Step{}, fmt.Errorf("parse time: %w", err)
	}
	if d < 0 {
		return Step{}, fmt.Errorf("time must not be negative")
	}

	action = strings.ToLower(strings.TrimSpace(action))
	name, value, hasArg := strings.Cut(action, "=")
	if alias, ok := aliases[name]; ok {
		name = alias
	}

	step := Step{At: d, Action: name}
	switch {
	case argActions[name]:
		if !hasArg {
			return Step{}, fmt.Errorf("%s needs a value, as in %s=2", name, name)
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			return Step{}, fmt.Errorf("parse %s value: %w", name, err)
		}
		step.Arg = n
	case hasArg:
		return Step{}, fmt.Errorf("%s takes no value", name)
	case plainActions[name]:
	default:
		if _, ok := carousel.ParseInput(name); !ok || name == carousel.InputNone.String() {
			return Step{}, fmt.Errorf("unknown action %q", name)
		}
	}
	return step, nil
}

// Kind classifies a timeline entry.
type Kind string

const (
	KindRequest Kind = "request"
	KindBefore  Kind = "before"
	KindAfter   Kind = "after"
)

// Entry is one line of the timeline. In JSON the time is written as
// "at_ms", in milliseconds like the deck settings.
type Entry struct {
	At     time.Duration `json:"-"`
	Kind   Kind          `json:"kind"`
	Action string        `json:"action,omitempty"`
	From   int           `json:"from"`
	To     int           `json:"to"`
}

type entryJSON struct {
	AtMS   int64  `json:"at_ms"`
	Kind   Kind   `json:"kind"`
	Action string `json:"action,omitempty"`
	From   int    `json:"from"`
	To     int    `json:"to"`
}

// MarshalJSON implements json.Marshaler.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{
		AtMS:   e.At.Milliseconds(),
		Kind:   e.Kind,
		Action: e.Action,
		From:   e.From,
		To:     e.To,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw entryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = Entry{
		At:     time.Duration(raw.AtMS) * time.Millisecond,
		Kind:   raw.Kind,
		Action: raw.Action,
		From:   raw.From,
		To:     raw.To,
	}
	return nil
}

func (e Entry) String() string {
	switch e.Kind {
	case KindBefore:
		return fmt.Sprintf("%9s  before   %d -> %d", e.At, e.From, e.To)
	case KindAfter:
		return fmt.Sprintf("%9s  after    %d", e.At, e.To)
	default:
		return fmt.Sprintf("%9s  request  %s", e.At, e.Action)
	}
}

// Result is the outcome of a run.
type Result struct {
	Timeline []Entry       `json:"timeline"`
	Final    carousel.State `json:"final"`
	Rendered int           `json:"rendered"`
}

// Commits counts the before-change notifications in the timeline.
func (r Result) Commits() int {
	n := 0
	for _, e := range r.Timeline {
		if e.Kind == KindBefore {
			n++
		}
	}
	return n
}

// Options describes a run.
type Options struct {
	Slides       carousel.SlideSet
	Config       carousel.Config
	InitialIndex int
	Steps        []Step
	// Duration is the total virtual time. Steps past it are not applied.
	Duration time.Duration
	Logger   *logger.Logger
}

var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Run plays opts on a fresh navigator and virtual clock. The same options
// always produce the same timeline.
func Run(opts Options) Result {
	clock := schedule.NewManual(epoch)
	elapsed := func() time.Duration { return clock.Now().Sub(epoch) }

	var timeline []Entry
	nav := carousel.New(opts.Slides, opts.Config, clock,
		carousel.WithInitialIndex(opts.InitialIndex),
		carousel.WithLogger(opts.Logger),
		carousel.WithBeforeChange(func(current, next int) {
			timeline = append(timeline, Entry{At: elapsed(), Kind: KindBefore, From: current, To: next})
		}),
		carousel.WithAfterChange(func(current int) {
			timeline = append(timeline, Entry{At: elapsed(), Kind: KindAfter, From: current, To: current})
		}),
	)

	for _, step := range opts.Steps {
		if step.At > opts.Duration {
			break
		}
		clock.AdvanceTo(epoch.Add(step.At))
		from := nav.State().CurrentIndex
		timeline = append(timeline, Entry{At: step.At, Kind: KindRequest, Action: describe(step), From: from, To: from})
		apply(nav, step)
	}
	clock.AdvanceTo(epoch.Add(opts.Duration))

	result := Result{
		Timeline: timeline,
		Final:    nav.State(),
		Rendered: nav.RenderedIndex(),
	}
	nav.Close()
	return result
}

func describe(step Step) string {
	if argActions[step.Action] {
		return fmt.Sprintf("%s=%d", step.Action, step.Arg)
	}
	return step.Action
}

func apply(nav *carousel.Navigator, step Step) {
	switch step.Action {
	case "next":
		nav.Next()
	case "previous":
		nav.Previous()
	case "first":
		nav.First()
	case "last":
		nav.Last()
	case "goto":
		nav.GoTo(step.Arg)
	case "page":
		nav.GoToPage(step.Arg)
	case "pause":
		nav.SetPaused(true)
	case "resume":
		nav.SetPaused(false)
	case "control":
		nav.Control(step.Arg)
	case "release":
		nav.Release()
	case "enter":
		nav.HandleInput(carousel.InputPointerEnter)
	case "leave":
		nav.HandleInput(carousel.InputPointerLeave)
	default:
		if in, ok := carousel.ParseInput(step.Action); ok {
			nav.HandleInput(in)
		}
	}
}
