package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/middleware"
	"github.com/nyayasetu/backend/internal/service"
)

type RAGHandler struct {
	ragService *service.RAGService
	auth       func(http.Handler) http.Handler
	rateLimit  func(http.Handler) http.Handler
}

func NewRAGHandler(ragService *service.RAGService, auth, rateLimit func(http.Handler) http.Handler) *RAGHandler {
	return &RAGHandler{ragService: ragService, auth: auth, rateLimit: rateLimit}
}

func (h *RAGHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.auth)
	r.Use(h.rateLimit)

	r.Post("/query", h.Query)

	return r
}

func (h *RAGHandler) Query(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req struct {
		Question   string `json:"question"`
		CaseNumber string `json:"case_number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	response, err := h.ragService.Query(r.Context(), claims.LawyerID, req.CaseNumber, req.Question, middleware.GetBearer(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "RAG query processed successfully",
		"case_number": req.CaseNumber,
		"question":    req.Question,
		"response":    response,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}
