package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/jester/internal/dashboard"
	"github.com/five82/jester/internal/jokeapi"
)

const (
	heroBadge   = "Professional Humor Hub"
	heroTagline = "Take a break from your busy workday with curated jokes for professionals. " +
		"Boost your mood, share with colleagues, and keep the workplace fun!"
	filterTitle    = "Choose Your Humor Style"
	loadingMessage = "Loading a fresh joke for you..."
	retryHint      = "Press r to try again"
)

// renderBody renders everything between header and footer. It reads only
// the snapshot and the theme.
func (m Model) renderBody(snap dashboard.Snapshot) string {
	width := m.contentWidth()

	sections := []string{
		m.renderHero(width),
		m.renderCategories(snap, width),
	}
	if m.notice != "" {
		sections = append(sections, m.theme.Styles().WarningText.Render(truncate(m.notice, width)))
	}
	if card := m.renderJokeCard(snap, width); card != "" {
		sections = append(sections, card)
	}
	sections = append(sections,
		m.renderAction(snap),
		m.renderStats(snap.Stats, width),
		m.tips,
	)

	block := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

func (m Model) renderHero(width int) string {
	styles := m.theme.Styles()

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Accent)).
		Bold(true).
		Render("✦ " + heroBadge)
	title := styles.Title.Render(strings.ToUpper(appTitle))
	tagline := styles.MutedText.
		Width(width).
		Align(lipgloss.Center).
		Render(heroTagline)

	return lipgloss.JoinVertical(lipgloss.Center, "", badge, title, tagline, "")
}

// renderCategories renders the filter strip; the selected chip is highlighted
// and each chip carries its 1-6 shortcut.
func (m Model) renderCategories(snap dashboard.Snapshot, width int) string {
	styles := m.theme.Styles()

	var rows []string
	var row []string
	rowWidth := 0
	for i, category := range jokeapi.Categories() {
		style := styles.Chip
		if category == snap.SelectedCategory {
			style = styles.ChipSelected
		}
		chip := style.Render(fmt.Sprintf("%d %s", i+1, category))
		w := lipgloss.Width(chip) + 1
		if rowWidth+w > width-4 && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Text.Bold(true).Render("▼ "+filterTitle),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return styles.Card.Width(width).Render(content)
}

// renderJokeCard renders the loading, error or success card. Idle renders
// nothing.
func (m Model) renderJokeCard(snap dashboard.Snapshot, width int) string {
	styles := m.theme.Styles()
	card := styles.Card.Width(width).Align(lipgloss.Center)
	inner := width - 6

	switch snap.Display() {
	case dashboard.DisplayLoading:
		return card.Render("\n" + m.spinner.View() + " " + styles.MutedText.Render(loadingMessage) + "\n")

	case dashboard.DisplayError:
		msg := styles.DangerText.Width(inner).Align(lipgloss.Center).Render("⚠ " + snap.Error)
		return card.
			BorderForeground(lipgloss.Color(m.theme.Danger)).
			Render(msg + "\n\n" + styles.MutedText.Render(retryHint))

	case dashboard.DisplaySuccess:
		return card.Align(lipgloss.Left).Render(m.renderJoke(*snap.Joke, inner))
	}
	return ""
}

func (m Model) renderJoke(joke jokeapi.Joke, width int) string {
	styles := m.theme.Styles()

	badge := styles.Badge.Render("◆ " + joke.Category)
	id := styles.FaintText.Render("ID: " + strconv.Itoa(joke.ID))
	gap := width - lipgloss.Width(badge) - lipgloss.Width(id)
	if gap < 1 {
		gap = 1
	}
	top := badge + strings.Repeat(" ", gap) + id

	var body string
	if joke.IsTwoPart() {
		setup := m.jokeBlock(joke.Setup, m.theme.Primary, false, width)
		delivery := m.jokeBlock(joke.Delivery, m.theme.Secondary, true, width)
		body = lipgloss.JoinVertical(lipgloss.Left, setup, "", delivery)
	} else {
		body = styles.Text.Width(width).Render(joke.Joke)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, "", body, "", m.renderReactions(width))
}

// jokeBlock renders one half of a two-part joke with a colored left rule.
func (m Model) jokeBlock(text, rule string, bold bool, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(rule)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Bold(bold).
		PaddingLeft(1).
		Width(width).
		Render(text)
}

var reactions = []string{"😂 Hilarious!", "😄 Good one!", "😊 Nice"}

// renderReactions renders the decorative reaction row under a joke.
func (m Model) renderReactions(width int) string {
	styles := m.theme.Styles()
	chips := make([]string, 0, len(reactions)*2)
	for i, r := range reactions {
		if i > 0 {
			chips = append(chips, "  ")
		}
		chips = append(chips, styles.Chip.Render(r))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	rule := styles.FaintText.Render(strings.Repeat("─", width))
	return lipgloss.JoinVertical(lipgloss.Center, rule, lipgloss.PlaceHorizontal(width, lipgloss.Center, row))
}

// renderAction renders the refresh hint, which reads like a disabled button
// while a fetch is in flight.
func (m Model) renderAction(snap dashboard.Snapshot) string {
	if snap.Loading {
		return "\n" + m.theme.Styles().FaintText.Render("↻ Loading...") + "\n"
	}
	return "\n" + m.theme.Styles().ChipSelected.Render("↻ Get New Joke (r)") + "\n"
}

// renderStats renders the three stat tiles, stacked on narrow terminals.
func (m Model) renderStats(stats dashboard.Stats, width int) string {
	tiles := []struct {
		icon, title, value string
	}{
		{"☺", "Jokes Viewed", strconv.Itoa(stats.JokesViewed)},
		{"▤", "Favorite Category", stats.FavoriteCategory},
		{"☕", "Laughs Today", strconv.Itoa(stats.LaughsToday)},
	}

	compact := width < LayoutCompactWidth
	tileWidth := (width - 2) / 3
	if compact {
		tileWidth = width
	}

	styles := m.theme.Styles()
	rendered := make([]string, 0, len(tiles))
	for i, t := range tiles {
		accent := lipgloss.Color(m.theme.TileColors[i])
		head := lipgloss.NewStyle().Foreground(accent).Render(t.icon) + " " + styles.MutedText.Render(t.title)
		value := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(t.value)
		rendered = append(rendered, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(tileWidth-2).
			Render(head+"\n"+value))
	}

	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, rendered...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], " ", rendered[1], " ", rendered[2])
}
