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

type LawyerHandler struct {
	lawyerService *service.LawyerService
	auth          func(http.Handler) http.Handler
}

func NewLawyerHandler(lawyerService *service.LawyerService, auth func(http.Handler) http.Handler) *LawyerHandler {
	return &LawyerHandler{lawyerService: lawyerService, auth: auth}
}

func (h *LawyerHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.auth)

	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)

	return r
}

func (h *LawyerHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	lawyer, err := h.lawyerService.GetProfile(r.Context(), claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile retrieved successfully",
		"lawyer":  lawyer,
	})
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Gender   *string `json:"gender"`
	Email    *string `json:"email"`
	MobileNo *string `json:"mobile_no"`
	DOB      string  `json:"dob"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
}

func (h *LawyerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		writeError(w, err)
		return
	}

	params := model.UpdateLawyerParams{
		Name:     req.Name,
		Gender:   req.Gender,
		Email:    req.Email,
		MobileNo: req.MobileNo,
		DOB:      dob,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
	}
	if params == (model.UpdateLawyerParams{}) {
		writeError(w, apperrors.ValidationError("No valid fields provided for update"))
		return
	}

	lawyer, err := h.lawyerService.UpdateProfile(r.Context(), claims.LawyerID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Profile updated successfully",
		"lawyer":  lawyer,
	})
}
