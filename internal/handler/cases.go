package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/middleware"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/service"
)

type CaseHandler struct {
	caseService *service.CaseService
	auth        func(http.Handler) http.Handler
}

func NewCaseHandler(caseService *service.CaseService, auth func(http.Handler) http.Handler) *CaseHandler {
	return &CaseHandler{caseService: caseService, auth: auth}
}

func (h *CaseHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.auth)

	r.Post("/", h.Add)
	r.Get("/", h.List)
	r.Get("/case-number/{caseNumber}", h.GetByNumber)
	r.Get("/title/{caseTitle}", h.SearchByTitle)
	r.Get("/court/{courtName}", h.SearchByCourt)
	r.Get("/type/{caseType}", h.SearchByType)
	r.Get("/client/{clientName}", h.SearchByClientName)
	r.Get("/{caseId}", h.GetByID)
	r.Put("/case-number/{caseNumber}", h.UpdateByNumber)
	r.Delete("/case-number/{caseNumber}", h.DeleteByNumber)

	return r
}

type caseRequest struct {
	ClientID    int64   `json:"client_id"`
	CaseNumber  string  `json:"case_number"`
	CaseTitle   string  `json:"case_title"`
	CourtName   string  `json:"court_name"`
	CaseType    string  `json:"case_type"`
	FilingDate  string  `json:"filing_date"`
	Status      string  `json:"status"`
	Description *string `json:"description"`
}

func (h *CaseHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req caseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	filingDate, err := parseDate(req.FilingDate)
	if err != nil {
		writeError(w, err)
		return
	}

	params := model.CreateCaseParams{
		LawyerID:    claims.LawyerID,
		ClientID:    req.ClientID,
		CaseNumber:  req.CaseNumber,
		CaseTitle:   req.CaseTitle,
		CourtName:   req.CourtName,
		CaseType:    req.CaseType,
		Status:      req.Status,
		Description: req.Description,
	}
	if filingDate != nil {
		params.FilingDate = *filingDate
	}

	c, err := h.caseService.Add(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Case added successfully",
		"case":    c,
	})
}

func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	cases, err := h.caseService.List(r.Context(), claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Cases retrieved successfully",
		"count":   len(cases),
		"cases":   cases,
	})
}

func (h *CaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "caseId")
	if err != nil {
		writeError(w, err)
		return
	}

	c, err := h.caseService.GetByID(r.Context(), id, claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Case retrieved successfully",
		"case":    c,
	})
}

func (h *CaseHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	c, err := h.caseService.GetByNumber(r.Context(), chi.URLParam(r, "caseNumber"), claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Case found successfully",
		"case":    c,
	})
}

func (h *CaseHandler) SearchByTitle(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	cases, err := h.caseService.SearchByTitle(r.Context(), claims.LawyerID, chi.URLParam(r, "caseTitle"))
	h.writeSearch(w, cases, err)
}

func (h *CaseHandler) SearchByCourt(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	cases, err := h.caseService.SearchByCourt(r.Context(), claims.LawyerID, chi.URLParam(r, "courtName"))
	h.writeSearch(w, cases, err)
}

func (h *CaseHandler) SearchByType(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	cases, err := h.caseService.SearchByType(r.Context(), claims.LawyerID, chi.URLParam(r, "caseType"))
	h.writeSearch(w, cases, err)
}

func (h *CaseHandler) SearchByClientName(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	cases, err := h.caseService.SearchByClientName(r.Context(), claims.LawyerID, chi.URLParam(r, "clientName"))
	h.writeSearch(w, cases, err)
}

func (h *CaseHandler) writeSearch(w http.ResponseWriter, cases []model.Case, err error) {
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Cases found successfully",
		"count":   len(cases),
		"cases":   cases,
	})
}

func (h *CaseHandler) UpdateByNumber(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	caseNumber := chi.URLParam(r, "caseNumber")

	var req struct {
		ClientID    *int64  `json:"client_id"`
		CaseTitle   *string `json:"case_title"`
		CourtName   *string `json:"court_name"`
		CaseType    *string `json:"case_type"`
		FilingDate  string  `json:"filing_date"`
		Status      *string `json:"status"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	filingDate, err := parseDate(req.FilingDate)
	if err != nil {
		writeError(w, err)
		return
	}

	params := model.UpdateCaseParams{
		ClientID:    req.ClientID,
		CaseTitle:   req.CaseTitle,
		CourtName:   req.CourtName,
		CaseType:    req.CaseType,
		FilingDate:  filingDate,
		Status:      req.Status,
		Description: req.Description,
	}
	if params == (model.UpdateCaseParams{}) {
		writeError(w, apperrors.ValidationError("No valid fields provided for update"))
		return
	}

	c, err := h.caseService.UpdateByNumber(r.Context(), caseNumber, claims.LawyerID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Case updated successfully",
		"case":    c,
	})
}

func (h *CaseHandler) DeleteByNumber(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	if err := h.caseService.DeleteByNumber(r.Context(), chi.URLParam(r, "caseNumber"), claims.LawyerID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Case deleted successfully",
	})
}
