package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	appTitle    = "Jokes Dashboard"
	appSubtitle = "For Working Professionals"
)

// renderMain renders the full UI: header, scrollable body, footer.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Render from a fresh snapshot so spinner frames and results show
	// without waiting for the next Update.
	body := m.body
	body.SetContent(m.renderBody(m.ctrl.Snapshot()))
	b.WriteString(body.View())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Render(b.String())
}

// renderHeader renders the title bar with the theme indicator on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Join([]string{
		bg.Render("☺", styles.Title),
		bg.Render(appTitle, styles.Title),
		bg.Render(appSubtitle, styles.MutedText),
	}, " ")

	right := bg.Render(m.themeIndicator(), styles.AccentText)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Too narrow for both; keep the title.
		return bg.FillLine(bg.Space()+left, m.width)
	}

	return bg.FillLine(bg.Space()+left+bg.Spaces(gap)+right+bg.Space(), m.width)
}

// themeIndicator shows the icon of the mode a toggle would switch to.
func (m Model) themeIndicator() string {
	if m.theme.Dark {
		return "☀ light (d)"
	}
	return "☾ dark (d)"
}

// renderFooter renders the attribution line and the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	credit := styles.MutedText.Render("Powered by ") +
		styles.AccentText.Bold(true).Render("JokeAPI") +
		styles.FaintText.Render("  ·  Made with ♥ for working professionals who need a laugh")

	line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, truncateStyled(credit, m.width))
	return line + "\n" + styles.Footer.Render(m.help.View(m.keys))
}
