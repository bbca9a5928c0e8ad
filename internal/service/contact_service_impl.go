package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/orrya/backend/internal/model"
	"github.com/orrya/backend/internal/repository"
)

const (
	// DefaultListLimit is used when the caller gives no usable limit.
	DefaultListLimit = 50
	// MaxListLimit caps a single page.
	MaxListLimit = 100

	recentWindow = 7 * 24 * time.Hour
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return NewContactServiceWithClock(repo, time.Now)
}

// NewContactServiceWithClock is NewContactService with an injectable clock.
func NewContactServiceWithClock(repo repository.ContactRepository, now func() time.Time) ContactService {
	if now == nil {
		now = time.Now
	}
	return &contactServiceImpl{repo: repo, now: now}
}

// Submit validates fields, normalizes them and inserts the submission with
// status "new" and submitted_at set to the current UTC time.
func (s *contactServiceImpl) Submit(ctx context.Context, fields map[string]any) (*model.ContactSubmission, error) {
	if errs := ValidateContact(fields); len(errs) > 0 {
		return nil, &ValidationError{Message: "Validation failed", Details: errs}
	}
	sub := NormalizeContact(fields)
	sub.Status = model.StatusNew
	sub.SubmittedAt = s.now().UTC()
	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	return sub, nil
}

// List returns a page of submissions. The total is the unfiltered count.
func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) (*model.ContactPage, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, &ValidationError{Message: "Invalid status"}
	}
	if opts.Limit <= 0 || opts.Limit > MaxListLimit {
		opts.Limit = DefaultListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}

	subs, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	total, err := s.repo.Count(ctx, model.ContactCountFilter{})
	if err != nil {
		return nil, fmt.Errorf("count submissions: %w", err)
	}
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	return &model.ContactPage{
		Submissions: subs,
		Total:       total,
		Limit:       opts.Limit,
		Offset:      opts.Offset,
	}, nil
}

// UpdateStatus changes the status of a submission and stamps updated_at.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id int64, status model.SubmissionStatus) (*model.ContactSubmission, error) {
	if !status.Valid() {
		return nil, &ValidationError{Message: "Invalid status"}
	}
	sub, err := s.repo.UpdateStatus(ctx, id, status, s.now().UTC())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update submission %d: %w", id, err)
	}
	return sub, nil
}

// Stats counts all submissions, each status, and those submitted in the
// last seven days.
func (s *contactServiceImpl) Stats(ctx context.Context) (*model.ContactStats, error) {
	now := s.now().UTC()
	count := func(f model.ContactCountFilter) (int, error) {
		n, err := s.repo.Count(ctx, f)
		if err != nil {
			return 0, fmt.Errorf("count submissions: %w", err)
		}
		return n, nil
	}

	var stats model.ContactStats
	var err error
	if stats.TotalSubmissions, err = count(model.ContactCountFilter{}); err != nil {
		return nil, err
	}
	perStatus := map[model.SubmissionStatus]*int{
		model.StatusNew:        &stats.NewSubmissions,
		model.StatusInProgress: &stats.InProgressSubmissions,
		model.StatusResolved:   &stats.ResolvedSubmissions,
		model.StatusArchived:   &stats.ArchivedSubmissions,
	}
	for _, st := range model.SubmissionStatuses {
		if *perStatus[st], err = count(model.ContactCountFilter{Status: st}); err != nil {
			return nil, err
		}
	}
	if stats.RecentSubmissions, err = count(model.ContactCountFilter{SubmittedSince: now.Add(-recentWindow)}); err != nil {
		return nil, err
	}
	return &stats, nil
}
