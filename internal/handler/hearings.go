package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/nyayasetu/backend/internal/config"
	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/middleware"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/service"
)

// pdfMagic is the signature every PDF file starts with.
var pdfMagic = []byte("%PDF")

type HearingHandler struct {
	hearingService *service.HearingService
	auth           func(http.Handler) http.Handler
}

func NewHearingHandler(hearingService *service.HearingService, auth func(http.Handler) http.Handler) *HearingHandler {
	return &HearingHandler{hearingService: hearingService, auth: auth}
}

func (h *HearingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.auth)

	r.Post("/add", h.Add)
	r.Get("/", h.List)
	r.Get("/case/{caseNumber}", h.ListByCase)
	r.Get("/pdf/{hearingId}", h.ViewPDF)
	r.Get("/search/{hearingName}", h.Search)
	r.Get("/{hearingId}", h.Get)
	r.Delete("/delete/{hearingId}", h.Delete)
	r.Post("/send-client-email", h.SendClientEmail)

	return r
}

// Add accepts a multipart form with case_number, hearing_name and a
// hearing_pdf file part. Only PDFs up to the configured cap are accepted.
func (h *HearingHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxHearingPDFBytes+1<<20)
	if err := r.ParseMultipartForm(config.MaxHearingPDFBytes); err != nil {
		writeError(w, apperrors.ValidationError("File too large or invalid multipart form"))
		return
	}

	caseNumber := r.FormValue("case_number")
	hearingName := r.FormValue("hearing_name")
	if caseNumber == "" || hearingName == "" {
		writeError(w, apperrors.ValidationError("Case Number and hearing name are required"))
		return
	}

	file, header, err := r.FormFile("hearing_pdf")
	if err != nil {
		writeError(w, apperrors.ValidationError("PDF file is required"))
		return
	}
	defer file.Close()

	if header.Size > config.MaxHearingPDFBytes {
		writeError(w, apperrors.ValidationError("PDF file exceeds the 10MB limit"))
		return
	}

	pdf, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("reading uploaded hearing pdf")
		writeError(w, apperrors.Internal("Error adding hearing"))
		return
	}

	if !bytes.HasPrefix(pdf, pdfMagic) {
		writeError(w, apperrors.ValidationError("Only PDF files are allowed"))
		return
	}

	hearing, err := h.hearingService.Add(r.Context(), claims.LawyerID, model.CreateHearingParams{
		CaseNumber:  caseNumber,
		HearingName: hearingName,
		PDF:         pdf,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Hearing added successfully",
		"hearing": map[string]any{
			"hearing_id":   hearing.ID,
			"case_number":  hearing.CaseNumber,
			"hearing_name": hearing.HearingName,
		},
	})
}

func (h *HearingHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	hearings, err := h.hearingService.List(r.Context(), claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "All hearings retrieved successfully",
		"count":    len(hearings),
		"hearings": hearings,
	})
}

func (h *HearingHandler) ListByCase(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	hearings, err := h.hearingService.ListByCase(r.Context(), claims.LawyerID, chi.URLParam(r, "caseNumber"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Hearings retrieved successfully",
		"count":    len(hearings),
		"hearings": hearings,
	})
}

func (h *HearingHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	hearings, err := h.hearingService.SearchByName(r.Context(), claims.LawyerID, chi.URLParam(r, "hearingName"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "Hearings found successfully",
		"count":    len(hearings),
		"hearings": hearings,
	})
}

func (h *HearingHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "hearingId")
	if err != nil {
		writeError(w, err)
		return
	}

	hearing, err := h.hearingService.Get(r.Context(), id, claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Hearing retrieved successfully",
		"hearing": hearing,
	})
}

// ViewPDF streams the stored document inline.
func (h *HearingHandler) ViewPDF(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "hearingId")
	if err != nil {
		writeError(w, err)
		return
	}

	pdf, err := h.hearingService.PDF(r.Context(), id, claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", fmt.Sprintf("hearing_%d.pdf", id)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *HearingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "hearingId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.hearingService.Delete(r.Context(), id, claims.LawyerID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Hearing deleted successfully",
	})
}

func (h *HearingHandler) SendClientEmail(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req struct {
		CaseNumber string   `json:"case_number"`
		Points     []string `json:"points"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Case number and points array are required"))
		return
	}

	result, err := h.hearingService.SendClientEmail(r.Context(), claims.LawyerID, req.CaseNumber, req.Points)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Email sent successfully to client",
		"email_details": map[string]any{
			"recipient": map[string]any{
				"name":  result.ClientName,
				"email": result.ClientEmail,
			},
			"case": map[string]any{
				"case_number": result.CaseNumber,
				"case_title":  result.CaseTitle,
			},
			"points_sent": result.PointsSent,
		},
	})
}
