// Package app is the composition root for clueboard.
//
// Run and Serve take a resolved config.Config and wire it into the rest of
// the program:
//
//	config.Config
//	   │
//	   ├─────> trivia.NewClient()  HTTP client with request timeout
//	   ├─────> game.New()          board lifecycle with load timeout
//	   │
//	   ├─ Run:   logging.OpenFile() then ui.Run()   (terminal, blocks)
//	   └─ Serve: logging.NewStderr() then web.Server.Run() (browser, blocks)
//
// Run logs to a file because Bubble Tea owns the terminal. Serve creates one
// game per websocket connection, so every browser tab has its own board.
//
// Both return a wrapped error when the config fails validation or the trivia
// client cannot be built. Failures while loading a board are never returned
// here; the front ends show them and stay up.
package app
