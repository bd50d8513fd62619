package carousel

// PageCount is the number of paging dots: one per SlidesToShow-sized page.
func (n *Navigator) PageCount() int {
	total := len(n.slides)
	if total == 0 {
		return 0
	}
	return (total + n.cfg.SlidesToShow - 1) / n.cfg.SlidesToShow
}

// ActivePage is the page containing the rendered index.
func (n *Navigator) ActivePage() int {
	if len(n.slides) == 0 {
		return 0
	}
	return n.RenderedIndex() / n.cfg.SlidesToShow
}

// GoToPage requests the first slide of page.
func (n *Navigator) GoToPage(page int) {
	n.GoTo(page * n.cfg.SlidesToShow)
}

// VisibleIndexes lists the slides in view, starting at the rendered index.
// An infinite carousel wraps around the end; a finite one stops at the last
// slide.
func (n *Navigator) VisibleIndexes() []int {
	total := len(n.slides)
	if total == 0 {
		return nil
	}
	start := n.RenderedIndex()
	count := n.cfg.SlidesToShow
	if count > total {
		count = total
	}

	visible := make([]int, 0, count)
	for i := 0; i < count; i++ {
		index := start + i
		if index >= total {
			if !n.cfg.Infinite {
				break
			}
			index %= total
		}
		visible = append(visible, index)
	}
	return visible
}

// ShouldRenderContent reports whether slide index should carry its content.
// With LazyLoad only the rendered slide and its immediate neighbours do.
func (n *Navigator) ShouldRenderContent(index int) bool {
	if !n.cfg.LazyLoad {
		return true
	}
	distance := index - n.RenderedIndex()
	if distance < 0 {
		distance = -distance
	}
	return distance <= 1
}

// Snapshot is everything the rendering layer needs for one frame.
type Snapshot struct {
	Index           int
	Total           int
	IsTransitioning bool
	IsPaused        bool
	Source          IndexSource
	Affordances     Affordances
	Autoplay        AutoplayState
	PageCount       int
	ActivePage      int
	Visible         []int
}

// View captures the current frame.
func (n *Navigator) View() Snapshot {
	return Snapshot{
		Index:           n.RenderedIndex(),
		Total:           len(n.slides),
		IsTransitioning: n.state.IsTransitioning,
		IsPaused:        n.state.IsPaused,
		Source:          n.source,
		Affordances:     n.affordancesAt(n.RenderedIndex()),
		Autoplay:        n.Autoplay(),
		PageCount:       n.PageCount(),
		ActivePage:      n.ActivePage(),
		Visible:         n.VisibleIndexes(),
	}
}

// Empty reports whether there is nothing to render.
func (s Snapshot) Empty() bool {
	return s.Total == 0
}
