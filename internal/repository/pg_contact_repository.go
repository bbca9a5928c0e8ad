package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orrya/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact submissions.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Insert(ctx context.Context, sub *model.ContactSubmission) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
	Count(ctx context.Context, filter model.ContactCountFilter) (int, error)
	// UpdateStatus returns ErrNotFound when no row has the given id.
	UpdateStatus(ctx context.Context, id int64, status model.SubmissionStatus, at time.Time) (*model.ContactSubmission, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const contactColumns = `id, name, email, company, phone, message, status, submitted_at, updated_at`

// Insert adds a contact_submissions row and populates sub.ID from the
// RETURNING clause. SubmittedAt and Status must already be set.
func (r *PgContactRepository) Insert(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, company, phone, message, status, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		sub.Name, sub.Email, sub.Company, sub.Phone, sub.Message, string(sub.Status), sub.SubmittedAt,
	).Scan(&sub.ID)
}

// List returns submissions newest first, optionally filtered by status.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	where, args := contactWhere(model.ContactCountFilter{Status: opts.Status})

	limitArg := len(args) + 1
	offsetArg := len(args) + 2
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT ` + contactColumns + ` FROM contact_submissions ` + where +
		` ORDER BY submitted_at DESC, id DESC` +
		` LIMIT $` + strconv.Itoa(limitArg) + ` OFFSET $` + strconv.Itoa(offsetArg)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.ContactSubmission
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// Count returns the number of submissions matching filter.
func (r *PgContactRepository) Count(ctx context.Context, filter model.ContactCountFilter) (int, error) {
	where, args := contactWhere(filter)
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions `+where, args...).Scan(&n)
	return n, err
}

// UpdateStatus sets status and updated_at on one row.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id int64, status model.SubmissionStatus, at time.Time) (*model.ContactSubmission, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE contact_submissions SET status = $2, updated_at = $3
		 WHERE id = $1
		 RETURNING `+contactColumns,
		id, string(status), at,
	)
	s, err := scanContact(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func contactWhere(filter model.ContactCountFilter) (string, []any) {
	var conditions []string
	var args []any
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if !filter.SubmittedSince.IsZero() {
		args = append(args, filter.SubmittedSince)
		conditions = append(conditions, "submitted_at >= $"+strconv.Itoa(len(args)))
	}
	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanContact(row pgx.Row) (*model.ContactSubmission, error) {
	var s model.ContactSubmission
	var status string
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Company, &s.Phone, &s.Message, &status, &s.SubmittedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Status = model.SubmissionStatus(status)
	s.SubmittedAt = s.SubmittedAt.UTC()
	if s.UpdatedAt != nil {
		u := s.UpdatedAt.UTC()
		s.UpdatedAt = &u
	}
	return &s, nil
}
