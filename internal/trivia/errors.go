package trivia

import "fmt"

// NetworkError reports a request that did not succeed: transport failure,
// an HTTP error status, or a pool response that could not be decoded.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: api %s returned status %d", e.Op, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DataShapeError reports a category response lacking the expected
// title/clues structure.
type DataShapeError struct {
	CategoryID CategoryID
	Reason     string
	Err        error
}

func (e *DataShapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("category %s: %s: %v", e.CategoryID, e.Reason, e.Err)
	}
	return fmt.Sprintf("category %s: %s", e.CategoryID, e.Reason)
}

func (e *DataShapeError) Unwrap() error { return e.Err }
