// Package config loads clueboard's TOML configuration file.
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/clueboard/config.toml
//  3. If the file doesn't exist, use the built-in defaults
//  4. If the file exists but a field is blank or zero, use its default
//
// Missing config files are not an error. clueboard runs out of the box
// against the public trivia service.
//
// # TOML Format
//
//	api_base = "https://rithm-jeopardy.herokuapp.com/api/"
//	category_count = 6
//	clues_per_category = 5
//	pool_size = 100
//	request_timeout = "10s"
//	load_timeout = "30s"
//	log_file = "~/.local/state/clueboard/clueboard.log"
//	listen = "127.0.0.1:8080"
//
// Every field is optional. Durations use Go syntax ("750ms", "1m").
// Tilde expansion is performed on the config path and log_file.
//
// # Validation
//
// Load only parses. Call Validate after command-line overrides are applied;
// it rejects non-positive counts and timeouts, and a pool smaller than the
// number of categories a board needs.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML or duration parsing errors, prefixed "parse config"
package config
