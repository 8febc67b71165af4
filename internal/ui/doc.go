// Package ui provides the terminal front end for clueboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds a *game.Game and a display,
// the terminal implementation of game.Renderer. Key presses and mouse clicks
// are turned into game calls inside Update; the game pushes its changes to
// the display, and View draws the display. Nothing in this package talks to
// the network directly.
//
// # Screen Layout
//
//   - Header bar: title, the start control, the active theme name
//   - Message line: the last start failure, if any
//   - Grid: a band of category titles, then one row per clue
//   - Footer: short key help
//
// The start control reads "Start a New Game! (n)" while idle and shows a
// spinner with "Loading..." while a board is being fetched. Face-down clues
// show a "?" placeholder; answered clues are drawn in a faded style.
//
// # Starting a Game
//
// Pressing n (or clicking the start control) calls Game.Begin and
// Game.Prepare in Update, then returns a command that runs Game.Load off
// the event loop. The result comes back as a boardLoadedMsg and is handed to
// Game.Finish. Repeated starts during a load are dropped by Begin.
//
// # Mouse and Keyboard
//
// Left clicks are hit-tested against gridLayout, the same geometry used to
// draw the grid. The keyboard moves a selection with h/j/k/l or the arrow
// keys and reveals it with enter or space.
//
// # Themes
//
// Three palettes are built in (Nightfox, Kanagawa, Slate). T cycles them and
// persists the choice through the prefs package.
package ui
