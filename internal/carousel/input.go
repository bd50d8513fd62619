package carousel

// Input is a discrete key or pointer event addressed to the carousel.
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputUp
	InputDown
	InputHome
	InputEnd
	InputPointerEnter
	InputPointerLeave
)

var inputNames = map[Input]string{
	InputNone:         "none",
	InputLeft:         "left",
	InputRight:        "right",
	InputUp:           "up",
	InputDown:         "down",
	InputHome:         "home",
	InputEnd:          "end",
	InputPointerEnter: "pointer-enter",
	InputPointerLeave: "pointer-leave",
}

func (i Input) String() string {
	if name, ok := inputNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseInput maps a name produced by Input.String back to the Input.
func ParseInput(name string) (Input, bool) {
	for input, candidate := range inputNames {
		if candidate == name {
			return input, true
		}
	}
	return InputNone, false
}

// Action is what the input router decided to do with an Input.
type Action int

const (
	ActionIgnore Action = iota
	ActionPrevious
	ActionNext
	ActionFirst
	ActionLast
	ActionPause
	ActionResume
)

func (a Action) String() string {
	switch a {
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionFirst:
		return "first"
	case ActionLast:
		return "last"
	case ActionPause:
		return "pause"
	case ActionResume:
		return "resume"
	default:
		return "ignore"
	}
}

// Route maps in to an action under cfg. Horizontal arrows follow reading
// direction and are ignored on a vertical carousel; vertical arrows only
// apply to a vertical carousel. Pointer events only pause when PauseOnHover
// is set.
func Route(cfg Config, in Input) Action {
	switch in {
	case InputLeft:
		if cfg.Vertical {
			return ActionIgnore
		}
		if cfg.RightToLeft {
			return ActionNext
		}
		return ActionPrevious
	case InputRight:
		if cfg.Vertical {
			return ActionIgnore
		}
		if cfg.RightToLeft {
			return ActionPrevious
		}
		return ActionNext
	case InputUp:
		if cfg.Vertical {
			return ActionPrevious
		}
	case InputDown:
		if cfg.Vertical {
			return ActionNext
		}
	case InputHome:
		return ActionFirst
	case InputEnd:
		return ActionLast
	case InputPointerEnter:
		if cfg.PauseOnHover {
			return ActionPause
		}
	case InputPointerLeave:
		if cfg.PauseOnHover {
			return ActionResume
		}
	}
	return ActionIgnore
}

// HandleInput routes in and applies the resulting action.
func (n *Navigator) HandleInput(in Input) Action {
	action := Route(n.cfg, in)
	switch action {
	case ActionPrevious:
		n.Previous()
	case ActionNext:
		n.Next()
	case ActionFirst:
		n.First()
	case ActionLast:
		n.Last()
	case ActionPause:
		n.SetPaused(true)
	case ActionResume:
		n.SetPaused(false)
	}
	return action
}
