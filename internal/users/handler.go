package users

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akramarev/userreg/internal/models"
)

// Handler exposes the registration and listing endpoints.
type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type registerResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	UserID  int64        `json:"userId,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Register handles POST /api/register.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, registerResponse{
			Errors: []FieldError{{Field: "body", Msg: "Request body must be valid JSON"}},
		})
		return
	}

	res, err := h.svc.Register(r.Context(), req)
	if err != nil {
		// Driver detail stays in the log, never in the response.
		h.log.Error("registration failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, registerResponse{
			Message: "Internal server error",
		})
		return
	}

	switch res.Status {
	case StatusInvalid:
		writeJSON(w, http.StatusBadRequest, registerResponse{Errors: res.Errors})
	case StatusDuplicate:
		writeJSON(w, http.StatusConflict, registerResponse{
			Message: "Username or email already exists",
		})
	default:
		writeJSON(w, http.StatusCreated, registerResponse{
			Success: true,
			Message: "User registered successfully",
			UserID:  res.UserID,
		})
	}
}

// ListUsers handles GET /api/users.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context())
	if err != nil {
		h.log.Error("listing users failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
