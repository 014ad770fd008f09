package citation

// Highlight is the hover state shared by inline citations and the source
// list. The zero value highlights nothing.
type Highlight struct {
	index  int
	active bool
}

// NoHighlight returns a state with nothing highlighted.
func NoHighlight() Highlight {
	return Highlight{}
}

// HighlightAt highlights the source at index i. Negative indexes highlight nothing.
func HighlightAt(i int) Highlight {
	if i < 0 {
		return Highlight{}
	}
	return Highlight{index: i, active: true}
}

// HighlightFromPtr converts an optional index, as received over the wire.
func HighlightFromPtr(i *int) Highlight {
	if i == nil {
		return Highlight{}
	}
	return HighlightAt(*i)
}

// Enter replaces the state with a highlight on index i.
func (h Highlight) Enter(i int) Highlight {
	return HighlightAt(i)
}

// Leave clears the highlight.
func (h Highlight) Leave() Highlight {
	return Highlight{}
}

func (h Highlight) Index() (int, bool) {
	return h.index, h.active
}

func (h Highlight) Is(i int) bool {
	return h.active && h.index == i
}

// Within drops the highlight when it points past a list of n sources.
func (h Highlight) Within(n int) Highlight {
	if !h.active || h.index >= n {
		return Highlight{}
	}
	return h
}

// Ptr returns the highlighted index or nil.
func (h Highlight) Ptr() *int {
	if !h.active {
		return nil
	}
	i := h.index
	return &i
}
