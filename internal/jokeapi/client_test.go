package jokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("url = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("jokes.example.com:8443/v2/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" || u.Host != "jokes.example.com:8443" {
		t.Fatalf("url = %q, want https://jokes.example.com:8443", u.String())
	}
	if u.Path != "/v2" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL without host returned nil error")
	}
}

func TestClient_FetchJokeBuildsRequest(t *testing.T) {
	t.Parallel()

	var gotPath, gotFlags, gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFlags = r.URL.Query().Get("blacklistFlags")
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":false,"category":"Programming","type":"single","joke":"It works on my machine.","flags":{"nsfw":false},"id":7,"safe":true,"lang":"en"}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	joke, err := c.FetchJoke(ctx, CategoryProgramming)
	if err != nil {
		t.Fatalf("FetchJoke returned error: %v", err)
	}
	if joke.ID != 7 || joke.Category != "Programming" || joke.Joke != "It works on my machine." {
		t.Fatalf("FetchJoke = %#v, want programming joke id=7", joke)
	}
	if joke.IsTwoPart() {
		t.Fatalf("IsTwoPart = true for single joke")
	}
	if gotPath != "/joke/Programming" {
		t.Fatalf("path = %q, want /joke/Programming", gotPath)
	}
	if gotFlags != "nsfw,religious,political,racist,sexist,explicit" {
		t.Fatalf("blacklistFlags = %q", gotFlags)
	}
	if !strings.HasPrefix(gotUserAgent, "jester/") {
		t.Fatalf("User-Agent = %q, want jester/*", gotUserAgent)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
}

func TestClient_FetchJokeTwoPart(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":false,"category":"Pun","type":"twopart","setup":"Why?","delivery":"Because.","id":12}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(ClientOptions{BaseURL: server.URL, Blacklist: []string{}})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	joke, err := c.FetchJoke(context.Background(), CategoryPun)
	if err != nil {
		t.Fatalf("FetchJoke returned error: %v", err)
	}
	if !joke.IsTwoPart() || joke.Text() != "Why?\nBecause." {
		t.Fatalf("FetchJoke = %#v, want two-part joke", joke)
	}
}

func TestClient_FetchJokeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/joke/Misc":
			_, _ = w.Write([]byte(`{"error":true,"internalError":false,"code":106,"message":"No matching joke found","causedBy":["No jokes were found that match your provided filter(s)."]}`))
		case "/joke/Spooky":
			http.Error(w, "nope", http.StatusTooManyRequests)
		case "/joke/Christmas":
			_, _ = w.Write([]byte("{not-json"))
		case "/joke/Pun":
			_, _ = w.Write([]byte(`{"error":false,"type":"limerick","id":3}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(ClientOptions{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	_, err = c.FetchJoke(ctx, CategoryMisc)
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Code != 106 || len(perr.Causes) != 1 {
		t.Fatalf("FetchJoke(Misc) error = %#v, want provider error code 106", err)
	}
	if got := UserMessage(err); got != "No matching joke found" {
		t.Fatalf("UserMessage = %q, want provider message", got)
	}

	_, err = c.FetchJoke(ctx, CategorySpooky)
	var serr *StatusError
	if !errors.As(err, &serr) || serr.Code != http.StatusTooManyRequests {
		t.Fatalf("FetchJoke(Spooky) error = %v, want status 429", err)
	}
	if got := UserMessage(err); got != GenericMessage {
		t.Fatalf("UserMessage = %q, want %q", got, GenericMessage)
	}

	_, err = c.FetchJoke(ctx, CategoryChristmas)
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchJoke(Christmas) error = %v, want decode error", err)
	}
	if got := UserMessage(err); got != GenericMessage {
		t.Fatalf("UserMessage = %q, want %q", got, GenericMessage)
	}

	_, err = c.FetchJoke(ctx, CategoryPun)
	if err == nil || !strings.Contains(err.Error(), "unknown joke type") {
		t.Fatalf("FetchJoke(Pun) error = %v, want unknown type error", err)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c, err := NewClient(ClientOptions{BaseURL: url})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchJoke(context.Background(), CategoryAny)
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("FetchJoke error = %v, want transport error", err)
	}
	if got := UserMessage(err); got != GenericMessage {
		t.Fatalf("UserMessage = %q, want %q", got, GenericMessage)
	}
}

func TestClient_RejectsUnknownCategory(t *testing.T) {
	c, err := NewClient(ClientOptions{BaseURL: "127.0.0.1:1"})
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchJoke(context.Background(), Category("Dad")); err == nil {
		t.Fatalf("FetchJoke returned nil error for unknown category")
	}
}

func TestUserMessage_Nil(t *testing.T) {
	if got := UserMessage(nil); got != "" {
		t.Fatalf("UserMessage(nil) = %q, want empty", got)
	}
	if got := UserMessage(&ProviderError{}); got != GenericMessage {
		t.Fatalf("UserMessage(empty provider error) = %q, want %q", got, GenericMessage)
	}
}
