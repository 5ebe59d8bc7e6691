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

type ClientHandler struct {
	clientService *service.ClientService
	auth          func(http.Handler) http.Handler
}

func NewClientHandler(clientService *service.ClientService, auth func(http.Handler) http.Handler) *ClientHandler {
	return &ClientHandler{clientService: clientService, auth: auth}
}

func (h *ClientHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.auth)

	r.Post("/", h.Add)
	r.Get("/", h.List)
	r.Get("/search/{clientName}", h.Search)
	r.Get("/{clientId}", h.Get)
	r.Put("/{clientId}", h.Update)
	r.Delete("/{clientId}", h.Delete)

	return r
}

type clientRequest struct {
	Name     string  `json:"name"`
	Gender   *string `json:"gender"`
	Email    *string `json:"email"`
	MobileNo *string `json:"mobile_no"`
	DOB      string  `json:"dob"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
}

func (h *ClientHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		writeError(w, err)
		return
	}

	client, err := h.clientService.Add(r.Context(), model.CreateClientParams{
		LawyerID: claims.LawyerID,
		Name:     req.Name,
		Gender:   req.Gender,
		Email:    req.Email,
		MobileNo: req.MobileNo,
		DOB:      dob,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Client added successfully",
		"client":  client,
	})
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	clients, err := h.clientService.List(r.Context(), claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Clients retrieved successfully",
		"count":   len(clients),
		"clients": clients,
	})
}

func (h *ClientHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	name := chi.URLParam(r, "clientName")

	clients, err := h.clientService.SearchByName(r.Context(), claims.LawyerID, name)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Clients found successfully",
		"count":   len(clients),
		"clients": clients,
	})
}

func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "clientId")
	if err != nil {
		writeError(w, err)
		return
	}

	client, err := h.clientService.Get(r.Context(), id, claims.LawyerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Client retrieved successfully",
		"client":  client,
	})
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "clientId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Name     *string `json:"name"`
		Gender   *string `json:"gender"`
		Email    *string `json:"email"`
		MobileNo *string `json:"mobile_no"`
		DOB      string  `json:"dob"`
		Address  *string `json:"address"`
		City     *string `json:"city"`
		State    *string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		writeError(w, err)
		return
	}

	params := model.UpdateClientParams{
		Name:     req.Name,
		Gender:   req.Gender,
		Email:    req.Email,
		MobileNo: req.MobileNo,
		DOB:      dob,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
	}
	if params == (model.UpdateClientParams{}) {
		writeError(w, apperrors.ValidationError("No valid fields provided for update"))
		return
	}

	client, err := h.clientService.Update(r.Context(), id, claims.LawyerID, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Client updated successfully",
		"client":  client,
	})
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	id, err := idParam(r, "clientId")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.clientService.Delete(r.Context(), id, claims.LawyerID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Client deleted successfully",
	})
}
