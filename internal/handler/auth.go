package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/nyayasetu/backend/internal/errors"
	"github.com/nyayasetu/backend/internal/model"
	"github.com/nyayasetu/backend/internal/service"
)

// AuthHandler serves the public account endpoints under /admins. The path
// segment is historical; the accounts are lawyers.
type AuthHandler struct {
	authService      *service.AuthService
	loginRateLimiter func(http.Handler) http.Handler
	otpRateLimiter   func(http.Handler) http.Handler
}

func NewAuthHandler(
	authService *service.AuthService,
	loginRateLimiter func(http.Handler) http.Handler,
	otpRateLimiter func(http.Handler) http.Handler,
) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		loginRateLimiter: loginRateLimiter,
		otpRateLimiter:   otpRateLimiter,
	}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Signup)
	r.With(h.loginRateLimiter).Post("/login", h.Login)
	r.With(h.otpRateLimiter).Post("/forgotPassword", h.ForgotPassword)
	r.Post("/updatePassword", h.ResetPassword)

	return r
}

type signupRequest struct {
	Name       string  `json:"name"`
	Gender     *string `json:"gender"`
	Email      string  `json:"email"`
	AdvocateNo *string `json:"advocate_no"`
	Password   string  `json:"password"`
	MobileNo   *string `json:"mobile_no"`
	DOB        string  `json:"dob"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Invalid request body"))
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		writeError(w, err)
		return
	}

	lawyer, err := h.authService.Signup(r.Context(), model.CreateLawyerParams{
		Name:       req.Name,
		Gender:     req.Gender,
		Email:      req.Email,
		AdvocateNo: req.AdvocateNo,
		Password:   req.Password,
		MobileNo:   req.MobileNo,
		DOB:        dob,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Lawyer successfully created",
		"lawyerId": lawyer.ID,
		"insertedData": struct {
			*model.Lawyer
			Password string `json:"password"`
		}{lawyer, "[HIDDEN]"},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Email and Password is required"))
		return
	}
	if req.Email == "" {
		writeError(w, apperrors.MissingRequired("Email"))
		return
	}
	if req.Password == "" {
		writeError(w, apperrors.MissingRequired("Password"))
		return
	}

	accessToken, lawyer, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Logged in successfully",
		"accessToken": accessToken,
		"lawyer": map[string]any{
			"id":    lawyer.ID,
			"name":  lawyer.Name,
			"email": lawyer.Email,
		},
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, apperrors.MissingRequired("Email"))
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "OTP sent successfully to your email",
		"email":   req.Email,
	})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		OTP         string `json:"otp"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ValidationError("Email, OTP, and new password are required"))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Password reset successfully",
		"email":   req.Email,
	})
}
