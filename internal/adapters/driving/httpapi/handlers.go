package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/custodia-labs/ansa-cli/internal/core/domain"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnswer serves POST /api/answer: the {question, contexts} to
// {answer, used} contract. Field validation happens before any work;
// generation failures map to 502 so callers can tell them from their
// own bad requests.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.generator == nil {
		writeError(w, http.StatusServiceUnavailable, "generation backend not configured")
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}
	contexts, err := req.contextItems()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.generator.Answer(r.Context(), req.Question, contexts)
	if err != nil {
		s.log.Warn("generation failed", zap.Error(err))
		if errors.Is(err, domain.ErrGenerationUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "generation backend not configured")
			return
		}
		writeError(w, http.StatusBadGateway, "generation failed: "+err.Error())
		return
	}

	if result.Used == nil {
		result.Used = []domain.ContextItem{}
	}
	writeJSON(w, http.StatusOK, result)
}

// handleFeed serves POST /api/feed: fetch and normalize a feed. An
// empty or unparseable feed is a success with no items; only the
// fetch itself failing is an error, and it gets its own message so
// the caller can tell the two apart.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.fetcher == nil {
		writeError(w, http.StatusServiceUnavailable, "feed fetcher not configured")
		return
	}

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	items, err := s.fetcher.Fetch(r.Context(), req.URL)
	if err != nil {
		s.log.Warn("feed fetch failed", zap.String("url", req.URL), zap.Error(err))
		writeError(w, http.StatusBadGateway, "feed fetch failed: "+err.Error())
		return
	}

	resp := feedResponse{Items: make([]feedItem, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, feedItem{
			Title:   item.Title,
			Link:    item.Link,
			Content: item.Content,
			PubDate: item.Published,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleAsk serves POST /api/ask: the full local pipeline from
// question to answer. Degraded outcomes (extractive, none) are
// successes; the Source field tells the caller which path ran.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.ask == nil {
		writeError(w, http.StatusServiceUnavailable, "ask service not configured")
		return
	}

	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	answer, err := s.ask.Ask(r.Context(), req.Question, domain.AskOptions{})
	if err != nil {
		s.log.Error("ask failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "ask failed: "+err.Error())
		return
	}

	contexts := answer.Contexts
	if contexts == nil {
		contexts = []domain.ContextItem{}
	}
	writeJSON(w, http.StatusOK, askResponse{
		Answer:   answer.Text,
		Source:   string(answer.Source),
		Contexts: contexts,
	})
}
