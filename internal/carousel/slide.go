package carousel

// Slide is one entry of a SlideSet. Content is opaque to the navigator.
type Slide struct {
	ID      string
	Content any
	Alt     string
}

// SlideSet is the ordered sequence a navigator walks through.
type SlideSet []Slide

// Len returns the number of slides.
func (s SlideSet) Len() int {
	return len(s)
}

// IDs returns the slide identifiers in order.
func (s SlideSet) IDs() []string {
	ids := make([]string, len(s))
	for i, slide := range s {
		ids[i] = slide.ID
	}
	return ids
}

func (s SlideSet) clone() SlideSet {
	if s == nil {
		return nil
	}
	out := make(SlideSet, len(s))
	copy(out, s)
	return out
}
