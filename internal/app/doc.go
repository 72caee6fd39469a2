// Package app is the composition root for jester.
//
// # Overview
//
// Open wires configuration, logging, preferences, the JokeAPI client and the
// dashboard controller into a Session. Run hands that session to the
// Bubble Tea UI; PrintJoke uses it for a single non-interactive fetch. The
// MCP server command opens a Session the same way.
//
// # Startup Sequence
//
//	Open()
//	  ├─> config.Load()        file, JESTER_* env, validation
//	  ├─> logging.New()        log file, or LogWriter when set
//	  ├─> prefs.Load()         dark_mode, defaults on any read problem
//	  ├─> jokeapi.NewClient()  base URL, blacklist, timeout
//	  └─> dashboard.New()      Idle, selected category, theme
//
//	Run()       ──> ui.Run()        blocks until quit or ctx cancel
//	PrintJoke() ──> ctrl.FetchJoke() ──> WriteJoke()
//
// # Error Handling
//
// Configuration, logger and client failures are fatal and returned from
// Open. Preference read problems are not: the theme falls back to light.
// PrintJoke reports fetch failures with the dashboard's user-facing message
// rather than the transport detail, which is still written to the log.
package app
