package jokeapi

import (
	"fmt"
	"strings"
)

// Category is a JokeAPI content classification.
type Category string

const (
	CategoryAny         Category = "Any"
	CategoryProgramming Category = "Programming"
	CategoryMisc        Category = "Misc"
	CategoryPun         Category = "Pun"
	CategorySpooky      Category = "Spooky"
	CategoryChristmas   Category = "Christmas"
)

var categoryOrder = []Category{
	CategoryAny,
	CategoryProgramming,
	CategoryMisc,
	CategoryPun,
	CategorySpooky,
	CategoryChristmas,
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a category name regardless of case.
func ParseCategory(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	for _, c := range categoryOrder {
		if strings.EqualFold(string(c), trimmed) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", raw)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Joke types reported by the provider.
const (
	TypeSingle  = "single"
	TypeTwoPart = "twopart"
)

// DefaultBlacklist is the content-exclusion filter sent with every request.
var DefaultBlacklist = []string{"nsfw", "religious", "political", "racist", "sexist", "explicit"}

// Joke is a single-line or two-part joke. Treat it as immutable once fetched.
type Joke struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Joke     string `json:"joke,omitempty"`
	Setup    string `json:"setup,omitempty"`
	Delivery string `json:"delivery,omitempty"`
	Flags    Flags  `json:"flags"`
	Safe     bool   `json:"safe"`
	Lang     string `json:"lang,omitempty"`
}

// Flags mirrors the provider's content flags for a joke.
type Flags struct {
	NSFW      bool `json:"nsfw"`
	Religious bool `json:"religious"`
	Political bool `json:"political"`
	Racist    bool `json:"racist"`
	Sexist    bool `json:"sexist"`
	Explicit  bool `json:"explicit"`
}

// IsTwoPart reports whether the joke has a setup/delivery split.
func (j Joke) IsTwoPart() bool {
	return j.Type == TypeTwoPart
}

// Text returns the joke as plain text.
func (j Joke) Text() string {
	if j.IsTwoPart() {
		return j.Setup + "\n" + j.Delivery
	}
	return j.Joke
}

// jokeResponse is the full /joke payload, success or failure.
type jokeResponse struct {
	Error    bool     `json:"error"`
	Message  string   `json:"message"`
	Code     int      `json:"code"`
	CausedBy []string `json:"causedBy"`
	Joke
}

func (r jokeResponse) validate() error {
	switch r.Type {
	case TypeSingle:
		if strings.TrimSpace(r.Joke.Joke) == "" {
			return fmt.Errorf("single joke %d has no text", r.ID)
		}
	case TypeTwoPart:
		if strings.TrimSpace(r.Setup) == "" || strings.TrimSpace(r.Delivery) == "" {
			return fmt.Errorf("two-part joke %d is missing setup or delivery", r.ID)
		}
	default:
		return fmt.Errorf("unknown joke type %q", r.Type)
	}
	return nil
}
