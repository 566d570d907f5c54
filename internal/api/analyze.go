package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kgerlich/Function-Highlighter/internal/engine"
	"github.com/kgerlich/Function-Highlighter/internal/language"
	"github.com/kgerlich/Function-Highlighter/internal/palette"
)

// AnalyzeRequest is the request body for analyzing a document
type AnalyzeRequest struct {
	Language string `json:"language"`
	Source   string `json:"source"`
}

// AnalyzeResponse carries the function records and their decorations for one
// document version. Consumers must treat the records as read-only.
type AnalyzeResponse struct {
	ID          uuid.UUID             `json:"id"`
	Language    string                `json:"language"`
	Functions   []engine.FunctionInfo `json:"functions"`
	Decorations []palette.Decoration  `json:"decorations"`
}

// LanguageResponse describes one supported language
type LanguageResponse struct {
	LanguageID string `json:"language_id"`
	GrammarID  string `json:"grammar_id"`
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Language == "" {
		respondError(w, http.StatusBadRequest, "language is required")
		return
	}

	functions, err := s.engine.Analyze(r.Context(), req.Language, req.Source)
	if err != nil {
		if errors.Is(err, engine.ErrUnsupportedLanguage) {
			respondError(w, http.StatusUnprocessableEntity, "unsupported language: "+req.Language)
			return
		}
		log.Error().Err(err).Str("language", req.Language).Msg("analysis failed")
		respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		ID:          uuid.New(),
		Language:    req.Language,
		Functions:   functions,
		Decorations: palette.Assign(functions, nil),
	})
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	responses := make([]LanguageResponse, 0)
	for _, id := range language.IDs() {
		profile, ok := language.Lookup(id)
		if !ok {
			continue
		}
		responses = append(responses, LanguageResponse{
			LanguageID: profile.LanguageID,
			GrammarID:  profile.GrammarID,
		})
	}
	respondJSON(w, http.StatusOK, responses)
}
