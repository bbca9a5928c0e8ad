package model

import "time"

// SubmissionStatus is the lifecycle state of a contact submission.
type SubmissionStatus string

const (
	StatusNew        SubmissionStatus = "new"
	StatusInProgress SubmissionStatus = "in_progress"
	StatusResolved   SubmissionStatus = "resolved"
	StatusArchived   SubmissionStatus = "archived"
)

// SubmissionStatuses lists every status in display order.
var SubmissionStatuses = []SubmissionStatus{StatusNew, StatusInProgress, StatusResolved, StatusArchived}

// Valid reports whether s is one of the four known statuses.
func (s SubmissionStatus) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved, StatusArchived:
		return true
	}
	return false
}

// ContactSubmission is a message received through the public contact form.
// Company and Phone are nil when the sender left them blank.
type ContactSubmission struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Company     *string          `json:"company"`
	Phone       *string          `json:"phone"`
	Message     string           `json:"message"`
	Status      SubmissionStatus `json:"status"`
	SubmittedAt time.Time        `json:"submitted_at"`
	UpdatedAt   *time.Time       `json:"updated_at"`
}

// ContactListOptions carries filter and pagination parameters for listing submissions.
type ContactListOptions struct {
	// Status restricts the page to one status. Empty means all.
	Status SubmissionStatus
	Limit  int
	Offset int
}

// ContactCountFilter restricts a count. Zero values mean "no restriction".
type ContactCountFilter struct {
	Status         SubmissionStatus
	SubmittedSince time.Time
}

// ContactPage is one page of submissions plus the total row count.
type ContactPage struct {
	Submissions []*ContactSubmission
	Total       int
	Limit       int
	Offset      int
}

// ContactStats is the admin dashboard summary.
type ContactStats struct {
	TotalSubmissions      int `json:"total_submissions"`
	NewSubmissions        int `json:"new_submissions"`
	InProgressSubmissions int `json:"in_progress_submissions"`
	ResolvedSubmissions   int `json:"resolved_submissions"`
	ArchivedSubmissions   int `json:"archived_submissions"`
	RecentSubmissions     int `json:"recent_submissions"`
}
