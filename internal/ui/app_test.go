package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/jester/internal/dashboard"
	"github.com/five82/jester/internal/jokeapi"
)

type stubFetcher struct {
	mu    sync.Mutex
	joke  jokeapi.Joke
	err   error
	calls []jokeapi.Category
}

func (s *stubFetcher) FetchJoke(_ context.Context, category jokeapi.Category) (jokeapi.Joke, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, category)
	return s.joke, s.err
}

func (s *stubFetcher) Calls() []jokeapi.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]jokeapi.Category(nil), s.calls...)
}

type stubPrefs struct{ saved []bool }

func (p *stubPrefs) SaveDarkMode(dark bool) error {
	p.saved = append(p.saved, dark)
	return nil
}

func singleJoke() jokeapi.Joke {
	return jokeapi.Joke{ID: 7, Category: "Programming", Type: jokeapi.TypeSingle, Joke: "There are 10 kinds of people."}
}

func newTestModel(t *testing.T, f *stubFetcher, p dashboard.PreferenceStore) Model {
	t.Helper()
	ctrl, err := dashboard.New(dashboard.Options{Fetcher: f, Prefs: p})
	require.NoError(t, err)

	m := New(Options{Controller: ctrl})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 200})
	return next.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, s string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(keyMsg(s))
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

// deliver runs a fetch command and feeds its result back into the model.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	res, ok := msg.(jokeResultMsg)
	require.True(t, ok, "expected jokeResultMsg, got %T", msg)
	next, _ := m.Update(res)
	return next.(Model)
}

func plain(m Model) string {
	return ansi.Strip(m.View())
}

func TestView_BeforeWindowSize(t *testing.T) {
	ctrl, err := dashboard.New(dashboard.Options{Fetcher: &stubFetcher{}})
	require.NoError(t, err)

	assert.Equal(t, "Loading...", New(Options{Controller: ctrl}).View())
}

func TestView_StaticChrome(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	view := plain(m)

	for _, want := range []string{
		"Jokes Dashboard",
		"For Working Professionals",
		"Professional Humor Hub",
		"Choose Your Humor Style",
		"Jokes Viewed",
		"Favorite Category",
		"Laughs Today",
		"Why Humor at Work Matters",
		"Powered by JokeAPI",
	} {
		assert.Contains(t, view, want)
	}
	for i, c := range jokeapi.Categories() {
		assert.Contains(t, view, string(rune('1'+i))+" "+c.String())
	}
}

func TestInit_FetchesSelectedCategory(t *testing.T) {
	f := &stubFetcher{joke: singleJoke()}
	m := newTestModel(t, f, nil)

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.True(t, m.ctrl.Snapshot().Loading)
	assert.Contains(t, plain(m), "Loading a fresh joke for you...")

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var delivered bool
	for _, c := range batch {
		if c == nil {
			continue
		}
		if res, ok := c().(jokeResultMsg); ok {
			next, _ := m.Update(res)
			m = next.(Model)
			delivered = true
		}
	}
	require.True(t, delivered)
	assert.Equal(t, []jokeapi.Category{jokeapi.CategoryAny}, f.Calls())

	view := plain(m)
	assert.Contains(t, view, "There are 10 kinds of people.")
	assert.Contains(t, view, "◆ Programming")
	assert.Contains(t, view, "ID: 7")
	assert.Contains(t, view, "Hilarious!")
	assert.NotContains(t, view, "Loading a fresh joke")
}

func TestView_TwoPartJoke(t *testing.T) {
	f := &stubFetcher{joke: jokeapi.Joke{
		ID: 12, Category: "Pun", Type: jokeapi.TypeTwoPart,
		Setup: "Why did the scarecrow win an award?", Delivery: "He was outstanding in his field.",
	}}
	m := newTestModel(t, f, nil)

	m, cmd := press(t, m, "r")
	m = deliver(t, m, cmd)

	view := plain(m)
	assert.Contains(t, view, "Why did the scarecrow win an award?")
	assert.Contains(t, view, "He was outstanding in his field.")
	assert.Contains(t, view, "ID: 12")
}

func TestView_ErrorShowsMessageAndRetryHint(t *testing.T) {
	f := &stubFetcher{err: &jokeapi.ProviderError{Message: "No matching joke found", Code: 106}}
	m := newTestModel(t, f, nil)

	m, cmd := press(t, m, "r")
	m = deliver(t, m, cmd)

	view := plain(m)
	assert.Contains(t, view, "No matching joke found")
	assert.Contains(t, view, "Press r to try again")

	f.mu.Lock()
	f.err = errors.New("dial tcp: refused")
	f.mu.Unlock()
	m, cmd = press(t, m, "r")
	m = deliver(t, m, cmd)
	assert.Contains(t, plain(m), jokeapi.GenericMessage)
}

func TestRefresh_IgnoredWhileLoading(t *testing.T) {
	f := &stubFetcher{joke: singleJoke()}
	m := newTestModel(t, f, nil)

	m, first := press(t, m, "r")
	require.NotNil(t, first)
	require.True(t, m.ctrl.Snapshot().Loading)

	for _, k := range []string{"r", " "} {
		var cmd tea.Cmd
		m, cmd = press(t, m, k)
		assert.Nil(t, cmd, "refresh %q must be ignored while loading", k)
	}

	m = deliver(t, m, first)
	assert.Equal(t, []jokeapi.Category{jokeapi.CategoryAny}, f.Calls())

	_, cmd := press(t, m, "r")
	assert.NotNil(t, cmd)
}

func TestCategoryKeys(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want jokeapi.Category
	}{
		{"pick third", []string{"3"}, jokeapi.CategoryMisc},
		{"pick last", []string{"6"}, jokeapi.CategoryChristmas},
		{"right", []string{"right"}, jokeapi.CategoryProgramming},
		{"l", []string{"l", "l"}, jokeapi.CategoryMisc},
		{"left wraps", []string{"left"}, jokeapi.CategoryChristmas},
		{"right wraps", []string{"6", "l"}, jokeapi.CategoryAny},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &stubFetcher{joke: singleJoke()}
			m := newTestModel(t, f, nil)

			for _, k := range tc.keys {
				var cmd tea.Cmd
				m, cmd = press(t, m, k)
				m = deliver(t, m, cmd)
			}

			assert.Equal(t, tc.want, m.ctrl.Snapshot().SelectedCategory)
			calls := f.Calls()
			require.Len(t, calls, len(tc.keys), "each selection fires exactly one fetch")
			assert.Equal(t, tc.want, calls[len(calls)-1])
		})
	}
}

func TestCategorySelect_FiresWhileLoading(t *testing.T) {
	f := &stubFetcher{joke: singleJoke()}
	m := newTestModel(t, f, nil)

	m, first := press(t, m, "r")
	m, second := press(t, m, "5")
	require.NotNil(t, second)

	m = deliver(t, m, first)
	m = deliver(t, m, second)
	assert.Equal(t, []jokeapi.Category{jokeapi.CategoryAny, jokeapi.CategorySpooky}, f.Calls())
	assert.False(t, m.ctrl.Snapshot().Loading)
}

func TestToggleTheme(t *testing.T) {
	p := &stubPrefs{}
	m := newTestModel(t, &stubFetcher{}, p)
	require.False(t, m.theme.Dark)
	assert.Contains(t, plain(m), "dark (d)")

	m, cmd := press(t, m, "d")
	assert.Nil(t, cmd)
	assert.True(t, m.theme.Dark)
	assert.True(t, m.ctrl.Snapshot().DarkMode)
	assert.Contains(t, plain(m), "light (d)")
	assert.Equal(t, "dark", m.theme.GlamourStyle)

	m, _ = press(t, m, "d")
	assert.False(t, m.theme.Dark)
	assert.Equal(t, []bool{true, false}, p.saved)
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)

	m, _ = press(t, m, "?")
	require.True(t, m.showHelp)
	view := plain(m)
	assert.Contains(t, view, "Keyboard Shortcuts")
	assert.Contains(t, view, "Dark/light mode")

	// Any key closes help without acting on it.
	m, cmd := press(t, m, "r")
	assert.False(t, m.showHelp)
	assert.Nil(t, cmd)
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, &stubFetcher{}, nil)
		_, cmd := press(t, m, k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestStatsTilesReflectSnapshot(t *testing.T) {
	f := &stubFetcher{joke: singleJoke()}
	m := newTestModel(t, f, nil)

	for i := 0; i < 3; i++ {
		var cmd tea.Cmd
		m, cmd = press(t, m, "r")
		m = deliver(t, m, cmd)
	}

	snap := m.ctrl.Snapshot()
	require.Equal(t, 3, snap.Stats.JokesViewed)
	body := ansi.Strip(m.renderStats(snap.Stats, 90))
	assert.Contains(t, body, "Jokes Viewed")
	assert.Contains(t, body, "3")
	assert.Contains(t, body, dashboard.DefaultFavoriteCategory)
}

func TestRenderJokeCard_IdleRendersNothing(t *testing.T) {
	m := newTestModel(t, &stubFetcher{}, nil)
	assert.Empty(t, m.renderJokeCard(m.ctrl.Snapshot(), 80))
}
