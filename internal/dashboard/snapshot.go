package dashboard

import "github.com/five82/jester/internal/jokeapi"

// Display is the single active view state derived from a Snapshot.
type Display int

const (
	DisplayIdle Display = iota
	DisplayLoading
	DisplaySuccess
	DisplayError
)

func (d Display) String() string {
	switch d {
	case DisplayLoading:
		return "loading"
	case DisplaySuccess:
		return "success"
	case DisplayError:
		return "error"
	default:
		return "idle"
	}
}

// Stats are per-session counters. They are never persisted.
type Stats struct {
	JokesViewed      int
	LaughsToday      int
	FavoriteCategory string
}

// Snapshot is everything a view needs to render.
type Snapshot struct {
	// Joke is the last successfully fetched joke, nil before the first
	// success. A failed fetch does not replace it.
	Joke             *jokeapi.Joke
	Loading          bool
	Error            string
	Stats            Stats
	SelectedCategory jokeapi.Category
	DarkMode         bool
}

// Display resolves which of loading, error and joke is active. Loading wins
// over error, and error wins over a stale joke.
func (s Snapshot) Display() Display {
	switch {
	case s.Loading:
		return DisplayLoading
	case s.Error != "":
		return DisplayError
	case s.Joke != nil:
		return DisplaySuccess
	default:
		return DisplayIdle
	}
}
