package dashboard

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/five82/jester/internal/jokeapi"
	"github.com/five82/jester/internal/logging"
)

// DefaultFavoriteCategory is the static label shown on the favorite tile.
const DefaultFavoriteCategory = "Programming"

// maxLaughsPerJoke bounds the random laughs increment; each success adds a
// value in [0, maxLaughsPerJoke].
const maxLaughsPerJoke = 2

// PreferenceStore persists the dark-mode flag.
type PreferenceStore interface {
	SaveDarkMode(dark bool) error
}

// Options configure a Controller.
type Options struct {
	Fetcher  jokeapi.Fetcher
	Prefs    PreferenceStore
	Logger   *logging.Logger
	Category jokeapi.Category
	DarkMode bool
	// Rand supplies the laughs increment. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// Controller owns the fetch lifecycle, session statistics, the selected
// category and the theme preference. Views read it only through Snapshot.
type Controller struct {
	fetcher jokeapi.Fetcher
	prefs   PreferenceStore
	log     *logging.Logger

	mu       sync.Mutex
	rng      *rand.Rand
	seq      uint64
	joke     *jokeapi.Joke
	loading  bool
	errMsg   string
	stats    Stats
	category jokeapi.Category
	darkMode bool
}

// New builds a Controller in the Idle state.
func New(opts Options) (*Controller, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("dashboard requires a joke fetcher")
	}
	category := opts.Category
	if category == "" {
		category = jokeapi.CategoryAny
	}
	if !category.Valid() {
		return nil, fmt.Errorf("dashboard: unknown category %q", category)
	}
	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}
	return &Controller{
		fetcher:  opts.Fetcher,
		prefs:    opts.Prefs,
		log:      opts.Logger,
		rng:      rng,
		category: category,
		darkMode: opts.DarkMode,
		stats:    Stats{FavoriteCategory: DefaultFavoriteCategory},
	}, nil
}

// Fetch is a request started by Begin. Run must be called exactly once.
type Fetch struct {
	c        *Controller
	category jokeapi.Category
	seq      uint64
	started  time.Time
}

// Category reports which category the fetch is scoped to.
func (f *Fetch) Category() jokeapi.Category { return f.category }

// Seq is the request sequence number, starting at 1.
func (f *Fetch) Seq() uint64 { return f.seq }

// Begin enters Loading for category: loading is set and any previous error
// is cleared before the request is issued.
func (c *Controller) Begin(category jokeapi.Category) *Fetch {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	c.log.Debug("joke fetch started", logging.F("category", category.String()), logging.F("seq", seq))
	return &Fetch{c: c, category: category, seq: seq, started: time.Now()}
}

// Run performs the request and resolves it. Loading is cleared on every path.
// The returned error is the raw provider error; the view sees only its
// collapsed message.
func (f *Fetch) Run(ctx context.Context) (err error) {
	c := f.c
	var joke jokeapi.Joke
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("joke fetch panicked")
		}
		c.resolve(f, joke, err)
	}()
	joke, err = c.fetcher.FetchJoke(ctx, f.category)
	return err
}

func (c *Controller) resolve(f *Fetch, joke jokeapi.Joke, err error) {
	took := time.Since(f.started)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.loading = false
	if err != nil {
		c.errMsg = jokeapi.UserMessage(err)
		c.log.Warn("joke fetch failed",
			logging.F("category", f.category.String()),
			logging.F("seq", f.seq),
			logging.F("took", took),
			logging.F("error", err))
		return
	}
	c.errMsg = ""
	stored := joke
	c.joke = &stored
	c.stats.JokesViewed++
	c.stats.LaughsToday += c.rng.IntN(maxLaughsPerJoke + 1)
	c.log.Debug("joke fetch finished",
		logging.F("category", f.category.String()),
		logging.F("seq", f.seq),
		logging.F("id", joke.ID),
		logging.F("took", took))
}

// FetchJoke fetches a joke for category and blocks until it resolves.
func (c *Controller) FetchJoke(ctx context.Context, category jokeapi.Category) error {
	return c.Begin(category).Run(ctx)
}

// SelectCategory records category as selected and begins exactly one fetch
// scoped to it.
func (c *Controller) SelectCategory(category jokeapi.Category) *Fetch {
	c.mu.Lock()
	c.category = category
	c.mu.Unlock()
	return c.Begin(category)
}

// Refresh begins a fetch for the currently selected category.
func (c *Controller) Refresh() *Fetch {
	c.mu.Lock()
	category := c.category
	c.mu.Unlock()
	return c.Begin(category)
}

// ToggleTheme flips dark mode and persists it. A failed write is returned but
// the in-memory value keeps the new setting.
func (c *Controller) ToggleTheme() (bool, error) {
	c.mu.Lock()
	c.darkMode = !c.darkMode
	dark := c.darkMode
	c.mu.Unlock()

	if c.prefs == nil {
		return dark, nil
	}
	if err := c.prefs.SaveDarkMode(dark); err != nil {
		c.log.Error(err, "persist theme preference", logging.F("dark_mode", dark))
		return dark, err
	}
	return dark, nil
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		Loading:          c.loading,
		Error:            c.errMsg,
		Stats:            c.stats,
		SelectedCategory: c.category,
		DarkMode:         c.darkMode,
	}
	if c.joke != nil {
		joke := *c.joke
		snap.Joke = &joke
	}
	return snap
}
