package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/five82/jester/internal/logging"
)

const tipsMarkdown = `## Why Humor at Work Matters

- **Reduces Stress**: Laughter releases endorphins and helps manage workplace stress effectively.
- **Builds Team Bonds**: Shared humor creates stronger connections between team members.
- **Boosts Creativity**: A positive mood enhances creative thinking and problem-solving.
- **Increases Productivity**: Happy employees are more engaged and productive at work.
`

// refreshTips re-renders the tips panel when the theme or width changed.
func (m *Model) refreshTips() {
	width := m.contentWidth()
	if width > TipsWrapWidth {
		width = TipsWrapWidth
	}
	cacheKey := m.theme.GlamourStyle + ":" + strconv.Itoa(width)
	if cacheKey == m.tipsKey {
		return
	}

	m.tips = renderMarkdown(tipsMarkdown, m.theme.GlamourStyle, width, m.logger)
	m.tipsKey = cacheKey
}

// renderMarkdown renders md with a glamour standard style, falling back to
// the raw text if the renderer cannot be built.
func renderMarkdown(md, style string, width int, logger *logging.Logger) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("markdown renderer unavailable", logging.F("error", err), logging.F("style", style))
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		logger.Warn("markdown render failed", logging.F("error", err))
		return md
	}
	return strings.Trim(out, "\n")
}
