package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kgerlich/Function-Highlighter/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err)

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestListLanguages(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var languages []LanguageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &languages))
	assert.Len(t, languages, 12)

	byID := make(map[string]string)
	for _, l := range languages {
		byID[l.LanguageID] = l.GrammarID
	}
	assert.Equal(t, "javascript", byID["javascriptreact"])
	assert.Equal(t, "tsx", byID["typescriptreact"])
}

func TestAnalyze_Go(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(AnalyzeRequest{
		Language: "go",
		Source:   "package p\n\nfunc Add(a, b int) int {\n\treturn a + b\n}\n",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, "go", resp.Language)
	require.Len(t, resp.Functions, 1)
	assert.Equal(t, "Add", resp.Functions[0].Name)
	assert.Equal(t, 2, resp.Functions[0].DeclarationLine)
	require.Len(t, resp.Decorations, 1)
	assert.NotEmpty(t, resp.Decorations[0].Color)
}

func TestAnalyze_UnsupportedLanguage(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{Language: "cobol", Source: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestAnalyze_BadRequest(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", "{not json"},
		{"missing language", `{"source":"func f() {}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()
			srv.Router().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

// A document that fails to resolve any functions still returns 200 with an
// empty list; resolution failure is never an API error.
func TestAnalyze_NoFunctions(t *testing.T) {
	srv := newTestServer(t)

	body, _ := json.Marshal(AnalyzeRequest{Language: "javascript", Source: "const x = () => 1;\n"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Empty(t, resp.Functions)
	assert.Empty(t, resp.Decorations)
}
