// Package logtail reads the tail of clueboard's JSON log file and renders
// it for people.
//
// # Reading
//
// Read returns the last N lines of a file using a ring buffer, so memory is
// bounded by N rather than the file size. A missing file is not an error:
// the terminal UI may simply not have run yet.
//
//	lines, err := logtail.Read(cfg.LogFile, 200)
//
// # Formatting
//
// The terminal UI logs with slog's JSON handler. Parse decodes one such line
// into a Record; Format prints it as
//
//	2025-10-08 21:01:05 INFO  game ready categories=6 clues=5
//
// with the level colored through lipgloss. FormatLines does both for a batch
// and drops records below a minimum level. Lines that are not JSON are
// passed through untouched.
package logtail
