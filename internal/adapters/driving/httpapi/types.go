package httpapi

import (
	"encoding/json"
	"errors"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// answerRequest is the /api/answer request body. Contexts stays raw so
// "absent" and "null" can be told apart from an empty sequence.
type answerRequest struct {
	Question string          `json:"question"`
	Contexts json.RawMessage `json:"contexts"`
}

// contextItems decodes the contexts field, rejecting anything that is
// not a sequence.
func (r *answerRequest) contextItems() ([]domain.ContextItem, error) {
	if len(r.Contexts) == 0 {
		return nil, errors.New("contexts is required")
	}
	var items []domain.ContextItem
	if err := json.Unmarshal(r.Contexts, &items); err != nil {
		return nil, errors.New("contexts must be a sequence")
	}
	if items == nil {
		return nil, errors.New("contexts must be a sequence")
	}
	return items, nil
}

// askRequest is the /api/ask request body.
type askRequest struct {
	Question string `json:"question"`
}

// askResponse is the /api/ask response body.
type askResponse struct {
	Answer   string               `json:"answer"`
	Source   string               `json:"source"`
	Contexts []domain.ContextItem `json:"contexts"`
}

// feedRequest is the /api/feed request body.
type feedRequest struct {
	URL string `json:"url"`
}

// feedItem is the normalized wire shape of one feed entry.
type feedItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Content string `json:"content"`
	PubDate string `json:"pubDate"`
}

// feedResponse is the /api/feed response body. Items is always a
// sequence, empty rather than null for feeds with nothing in them.
type feedResponse struct {
	Items []feedItem `json:"items"`
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}
