package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/orrya/backend/internal/logging"
	"github.com/orrya/backend/internal/service"
)

// AdminAuthHandler handles admin login.
type AdminAuthHandler struct {
	authService service.AuthService
}

func NewAdminAuthHandler(authService service.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	Message   string `json:"message"`
}

// Login handles POST /api/admin/login.
func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, &service.ValidationError{Message: "Username and password required"})
		return
	}

	res, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logging.FromContext(r.Context()).Warn("admin login failed", "remote_addr", r.RemoteAddr)
		}
		writeError(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Info("admin login", "username", req.Username)
	writeJSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
		Message:   "Login successful",
	})
}
