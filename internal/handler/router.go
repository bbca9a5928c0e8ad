package handler

import (
	"net/http"

	"github.com/orrya/backend/internal/ratelimit"
	"github.com/orrya/backend/internal/repository"
	"github.com/orrya/backend/internal/service"
	"github.com/orrya/backend/pkg/auth"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Contacts          service.ContactService
	Auth              service.AuthService
	DB                repository.DB
	Limiter           ratelimit.Limiter
	FrontendURL       string
	TrustedProxyCount int
}

// NewRouter builds the full HTTP handler with middleware applied.
func NewRouter(cfg RouterConfig) http.Handler {
	h := New(cfg.DB, cfg.FrontendURL)
	contactHandler := NewContactHandler(cfg.Contacts)
	adminAuthHandler := NewAdminAuthHandler(cfg.Auth)
	requireAdmin := auth.RequireAdmin(cfg.Auth)

	limit := func(scope string, next http.HandlerFunc) http.Handler {
		if cfg.Limiter == nil {
			return next
		}
		return NewRateLimiter(cfg.Limiter, cfg.TrustedProxyCount).Middleware(scope, next)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /health/ready", h.Ready)

	mux.Handle("POST /api/contact", limit("contact", contactHandler.Submit))
	mux.Handle("POST /api/admin/login", limit("login", adminAuthHandler.Login))

	// Admin routes (bearer token required)
	mux.Handle("GET /api/admin/submissions", requireAdmin(http.HandlerFunc(contactHandler.AdminList)))
	mux.Handle("PATCH /api/admin/submissions/{id}/status", requireAdmin(http.HandlerFunc(contactHandler.UpdateStatus)))
	mux.Handle("GET /api/admin/stats", requireAdmin(http.HandlerFunc(contactHandler.Stats)))

	mux.HandleFunc("/", h.NotFound)

	return RequestLogger(Recover(h.CORS(SecurityHeaders(mux))))
}
