package web

// Client to server.
const (
	typeStart = "start"
	typeClick = "click"
)

// Server to client.
const (
	typeClear   = "clear"
	typeLoading = "loading"
	typeError   = "error"
	typeHeaders = "headers"
	typeGrid    = "grid"
	typeCell    = "cell"
)

type clientMessage struct {
	Type string `json:"type"`
	Cell string `json:"cell,omitempty"`
}

type clearMessage struct {
	Type string `json:"type"`
}

type loadingMessage struct {
	Type    string `json:"type"`
	Loading bool   `json:"loading"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type headersMessage struct {
	Type   string   `json:"type"`
	Titles []string `json:"titles"`
}

type gridMessage struct {
	Type       string `json:"type"`
	Categories int    `json:"categories"`
	Clues      int    `json:"clues"`
}

// cellMessage carries the text to show in one cell. Revealed is the clue's
// new state: "question" or "answer".
type cellMessage struct {
	Type     string `json:"type"`
	Cell     string `json:"cell"`
	Text     string `json:"text"`
	Revealed string `json:"revealed"`
}
