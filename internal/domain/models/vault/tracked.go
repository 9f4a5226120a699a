package vault

import "time"

// ApprovalStatus is the review state of a document in the approval workflow.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// TrackedDocument is the simpler, status-oriented document model used by the
// approval-workflow view. It lives alongside the vault Document rather than
// replacing it; uploads here are form-validated against a property reference.
type TrackedDocument struct {
	ID            string
	Name          string
	Type          string
	PropertyID    string
	PropertyTitle string
	UploadDate    time.Time
	Status        ApprovalStatus
	FileSize      int64
	FileName      string
	Description   string
	Tags          []string
}
