package service

import (
	"context"

	"github.com/orrya/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a public submission. A payload that breaks
	// any rule yields a *ValidationError carrying every message.
	Submit(ctx context.Context, fields map[string]any) (*model.ContactSubmission, error)

	// List returns one page of submissions, newest first, with the total
	// number of submissions regardless of the status filter.
	List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error)

	// UpdateStatus moves a submission to a new status. Returns ErrNotFound
	// when the id does not exist.
	UpdateStatus(ctx context.Context, id int64, status model.SubmissionStatus) (*model.ContactSubmission, error)

	// Stats summarizes submissions for the admin dashboard.
	Stats(ctx context.Context) (*model.ContactStats, error)
}
