// Package ui renders the jester dashboard as a Bubble Tea program.
//
// # Architecture Overview
//
// Model holds a pointer to a dashboard.Controller and nothing else that
// carries domain state. Every frame is drawn from controller.Snapshot, so
// the views are pure functions of the snapshot plus the active Theme.
//
// # Package Structure
//
//   - app.go: Model, Update loop, fetch commands and Run
//   - keys.go: key bindings (bubbles/key) and help groups
//   - header.go: title bar, footer and the main frame
//   - body.go: hero, category strip, joke card, action line, stat tiles
//   - tips.go: the glamour-rendered "Why Humor at Work Matters" panel
//   - help.go: help overlay
//   - theme.go: Light and Dark palettes with Lipgloss styles
//   - style_helpers.go: BgStyle for gap-free background runs
//
// # Fetch Flow
//
// A key press calls the controller synchronously (Refresh or
// SelectCategory), which flips the snapshot to loading before the next
// frame. The returned *dashboard.Fetch runs inside a tea.Cmd and its
// completion comes back as jokeResultMsg:
//
//	key ──▶ ctrl.Refresh() ──▶ tea.Cmd{ fetch.Run(ctx) } ──▶ jokeResultMsg ──▶ redraw
//
// Refresh keys are ignored while a fetch is in flight. Category keys always
// fire, even if that overlaps an outstanding request.
//
// # Key Bindings
//
//   - r, space, enter: new joke
//   - ←/→ or h/l: previous/next category (wraps)
//   - 1-6: pick a category directly
//   - j/k, pgup/pgdown, g/G: scroll
//   - d: toggle dark/light mode (persisted)
//   - ?: help, q or ctrl+c: quit
package ui
