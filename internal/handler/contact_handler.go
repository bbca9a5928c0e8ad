package handler

import (
	"net/http"
	"strconv"

	"github.com/orrya/backend/internal/logging"
	"github.com/orrya/backend/internal/model"
	"github.com/orrya/backend/internal/service"
	"github.com/orrya/backend/pkg/auth"
)

const submitThanks = "Thank you for your message! We'll get back to you soon."

// ContactHandler handles contact form submission and the admin submission views.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := decodeJSON(w, r, &fields); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body"})
		return
	}

	if _, err := h.contactService.Submit(r.Context(), fields); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Success: true, Message: submitThanks})
}

// adminListResponse is the JSON response for GET /api/admin/submissions.
type adminListResponse struct {
	Success bool                       `json:"success"`
	Data    []*model.ContactSubmission `json:"data"`
	Total   int                        `json:"total"`
	Limit   int                        `json:"limit"`
	Offset  int                        `json:"offset"`
}

// AdminList handles GET /api/admin/submissions.
// Supports query params: status, limit (default 50), offset (default 0).
// Unparseable limit/offset fall back to the defaults.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ContactListOptions{
		Status: model.SubmissionStatus(q.Get("status")),
		Limit:  service.DefaultListLimit,
		Offset: 0,
	}
	if l := q.Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= service.MaxListLimit {
			opts.Limit = n
		}
	}
	if o := q.Get("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	page, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adminListResponse{
		Success: true,
		Data:    page.Submissions,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/submissions/{id}/status.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, service.ErrNotFound)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, &service.ValidationError{Message: "Invalid status"})
		return
	}

	sub, err := h.contactService.UpdateStatus(r.Context(), id, model.SubmissionStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}

	admin, _ := auth.UsernameFromContext(r.Context())
	logging.FromContext(r.Context()).Info("submission status updated",
		"id", sub.ID,
		"status", sub.Status,
		"admin", admin,
	)

	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Status updated successfully"})
}

type statsResponse struct {
	Success bool               `json:"success"`
	Stats   model.ContactStats `json:"stats"`
}

// Stats handles GET /api/admin/stats.
func (h *ContactHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{Success: true, Stats: *stats})
}
