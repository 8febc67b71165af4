// Package trivia provides an HTTP client for the remote trivia service.
//
// # Overview
//
// The service exposes two read-only JSON endpoints. clueboard uses the first
// to discover which categories exist and the second to load one category's
// clues:
//
//   - GET {base}/categories?count=N: array of {id, ...}; only id is consumed
//   - GET {base}/category?id=ID: {title, clues: [{question, answer, ...}]}
//
// # Client Usage
//
//	client, err := trivia.NewClient(trivia.DefaultBaseURL, trivia.WithTimeout(10*time.Second))
//	if err != nil {
//		return err
//	}
//	ids, err := client.FetchCategoryPool(ctx, 100)
//	if err != nil {
//		return err
//	}
//	cat, err := client.FetchCategory(ctx, ids[0])
//
// # Identifiers and Text
//
// Category identifiers are opaque. The service has served them both as JSON
// numbers and as strings, so CategoryID decodes either form and the client
// echoes it back verbatim in the id query parameter.
//
// Clue fields occasionally arrive as numbers (an answer of 4) and often carry
// inline HTML such as <i>...</i> or &amp;. Text decodes any scalar. The
// client runs each field through an HTML tokenizer, keeping text and
// dropping tags, so a bare "3 < 5" survives. Clues left without a question
// or an answer are dropped before a Category is returned.
//
// # Error Handling
//
// Failures are reported with two concrete types so callers can branch with
// errors.As:
//
//   - *NetworkError: transport failure, HTTP status >= 400, or a category
//     pool body that cannot be decoded
//   - *DataShapeError: a category body that is not an object or lacks the
//     title or clues fields
//
// Example error messages:
//   - "fetch category pool: execute request: dial tcp: connection refused"
//   - "fetch category: api https://host/api/category?id=3 returned status 404"
//   - "category 7: missing clues"
//
// # Design Rationale
//
// The client is intentionally minimal: no caching and no retries. A failed
// call surfaces immediately and the game layer decides what the user sees.
// Request time is bounded by the http.Client timeout (WithTimeout) and by the
// caller's context.
package trivia
