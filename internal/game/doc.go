// Package game drives one trivia board through its lifecycle.
//
// A Game is either Idle or Loading. Starting a game while one is loading is
// ignored, so a burst of start requests issues a single set of network
// calls. A start clears the display, shows the loading control, fetches the
// category pool, samples categories and clues, and only then swaps the new
// board in. Failures leave the game Idle with no board and a message on the
// display.
//
// Front ends implement Renderer. The terminal UI splits Start into
// Begin/Prepare, an async Load, and Finish so the Bubble Tea loop never
// blocks; the web front end calls Start from a goroutine per session.
package game
