// Package dashboard holds the view-state controller for jester.
//
// # Overview
//
// A Controller owns everything the views render: the current joke, the
// loading flag, the last error message, session statistics, the selected
// category and the dark-mode preference. Views never mutate it directly;
// they call one of the intents and re-read Snapshot.
//
// # Intents
//
//   - FetchJoke(ctx, category): blocking fetch
//   - SelectCategory(category): select and begin a fetch for it
//   - Refresh(): begin a fetch for the selected category
//   - ToggleTheme(): flip dark mode and persist it
//
// Begin and (*Fetch).Run split a fetch into its synchronous start and its
// blocking completion so an event loop can render Loading before the request
// goes out:
//
//	f := ctrl.SelectCategory(jokeapi.CategoryPun) // loading on, error cleared
//	go f.Run(ctx)                                 // request, then resolve
//
// # State Machine
//
//	Idle ──fetch──> Loading ──ok──────> Success ──fetch──┐
//	                   │                                 │
//	                   └──fail──> Error ──fetch──────────┴──> Loading
//
// Snapshot.Display derives the active state with the priority
// loading > error > joke > idle, so at most one is shown.
//
// # Concurrency
//
// The Controller is safe for concurrent use. A new fetch does not cancel one
// already in flight: each resolves independently, in arrival order, and the
// last to resolve wins. Every resolution clears loading.
package dashboard
