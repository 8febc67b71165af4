package trivia

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// CategoryID is an opaque identifier assigned by the trivia service. The
// service may encode it as a JSON number or string; both decode here.
type CategoryID string

// UnmarshalJSON accepts numeric and string identifiers.
func (id *CategoryID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("category id: %w", err)
		}
		*id = CategoryID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("category id: %w", err)
	}
	*id = CategoryID(n.String())
	return nil
}

// Category is one category as served by the service, with every clue it has.
type Category struct {
	ID    CategoryID
	Title string
	Clues []Clue
}

// Clue is a raw question/answer pair.
type Clue struct {
	Question string
	Answer   string
}

// Text decodes a clue field that may arrive as a string, number or bool.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*t = ""
		return nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	case bytes.Equal(trimmed, []byte("true")), bytes.Equal(trimmed, []byte("false")):
		*t = Text(trimmed)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*t = Text(n.String())
	return nil
}

// categoryRef mirrors one entry of GET /categories. Only id is consumed.
type categoryRef struct {
	ID *CategoryID `json:"id"`
}

// categoryPayload mirrors GET /category. Pointers distinguish absent fields
// from empty ones.
type categoryPayload struct {
	Title *string    `json:"title"`
	Clues *[]rawClue `json:"clues"`
}

type rawClue struct {
	Question Text `json:"question"`
	Answer   Text `json:"answer"`
}

// normalizeText keeps only the text content of the markup the service
// embeds in clue fields and collapses whitespace. The tokenizer unescapes
// entities in text, and a bare "<" that does not open a tag stays text, as
// it would in a browser.
func normalizeText(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" || string(name) == "p" {
				b.WriteByte(' ')
			}
		}
	}
}
