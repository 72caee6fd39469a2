package ui

// Layout dimensions.
const (
	// MaxContentWidth caps the body width on wide terminals.
	MaxContentWidth = 96

	// LayoutCompactWidth is the threshold below which stat tiles stack vertically.
	LayoutCompactWidth = 72

	// TipsWrapWidth is the maximum word-wrap width for the tips panel.
	TipsWrapWidth = 80

	headerHeight = 1
	footerHeight = 2
)

// bodyHeight returns the rows left for the scrollable body.
func (m Model) bodyHeight() int {
	h := m.height - headerHeight - footerHeight
	if h < 1 {
		return 1
	}
	return h
}

// contentWidth returns the usable body width.
func (m Model) contentWidth() int {
	w := m.width - 2
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
