package vault

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"propvault/internal/config"
	"propvault/internal/domain"
	models "propvault/internal/domain/models/vault"
)

// PropertyDirectory resolves a property id to its display title. It is a
// weak-reference lookup into the listings the UI already holds.
type PropertyDirectory interface {
	PropertyTitle(id string) (string, bool)
}

// TrackerService manages the approval-workflow document list. Unlike the
// vault store it appends uploads and tracks a Pending/Approved/Rejected
// status per record.
type TrackerService struct {
	props  PropertyDirectory
	logger *slog.Logger
	now    func() time.Time

	mu   sync.RWMutex
	docs []models.TrackedDocument
}

func NewTrackerService(props PropertyDirectory, logger *slog.Logger, now func() time.Time) *TrackerService {
	if now == nil {
		now = time.Now
	}
	return &TrackerService{props: props, logger: logger, now: now}
}

// TrackedUploadRequest is the stricter, form-validated upload: the document
// type and property reference are required, and the batch cannot be empty.
type TrackedUploadRequest struct {
	Files        []UploadFile
	DocumentType string
	PropertyID   string
	Description  string
	// Tags is the raw comma-separated form field.
	Tags string
}

func (s *TrackerService) validateUploadRequest(req *TrackedUploadRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Files,
			validation.Required.Error("select at least one file"),
			validation.Length(1, config.MaxUploadBatch),
		),
		validation.Field(&req.DocumentType, validation.Required.Error("document type is required")),
		validation.Field(&req.PropertyID, validation.Required.Error("property is required")),
		validation.Field(&req.Description, validation.Length(0, config.MaxDescriptionLength)),
	)
}

// Upload appends one Pending record per file. The record name is the file
// name without its extension; the property title is resolved through the
// directory, falling back to "Unknown Property" for dangling references.
func (s *TrackerService) Upload(ctx context.Context, req *TrackedUploadRequest) ([]models.TrackedDocument, error) {
	if err := s.validateUploadRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid upload: %v", err)}
	}

	title, ok := s.props.PropertyTitle(req.PropertyID)
	if !ok {
		title = "Unknown Property"
	}

	now := s.now()
	created := make([]models.TrackedDocument, 0, len(req.Files))
	for _, f := range req.Files {
		created = append(created, models.TrackedDocument{
			ID:            uuid.NewString(),
			Name:          baseName(f.Name),
			Type:          req.DocumentType,
			PropertyID:    req.PropertyID,
			PropertyTitle: title,
			UploadDate:    now.Truncate(24 * time.Hour),
			Status:        models.StatusPending,
			FileSize:      f.Size,
			FileName:      f.Name,
			Description:   req.Description,
			Tags:          splitTags(req.Tags),
		})
	}

	s.mu.Lock()
	s.docs = append(s.docs, created...)
	s.mu.Unlock()

	s.logger.Info("tracked documents uploaded",
		"count", len(created),
		"property_id", req.PropertyID,
		"type", req.DocumentType,
	)
	return created, nil
}

// SetStatus moves a tracked document to the given review status.
func (s *TrackerService) SetStatus(ctx context.Context, id string, status models.ApprovalStatus) (*models.TrackedDocument, error) {
	if !status.Valid() {
		return nil, &domain.InvalidStateError{Message: fmt.Sprintf("unknown approval status %q", status)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if s.docs[i].ID == id {
			s.docs[i].Status = status
			out := s.docs[i]
			out.Tags = append([]string(nil), out.Tags...)
			s.logger.Info("tracked document reviewed", "id", id, "status", status)
			return &out, nil
		}
	}
	return nil, &domain.NotFoundError{Message: fmt.Sprintf("tracked document %s not found", id)}
}

// TrackedPredicate filters the tracker list. Nil fields mean "All".
type TrackedPredicate struct {
	Status *models.ApprovalStatus
	Type   *string
}

// Filter returns matching tracked documents in upload order.
func (s *TrackerService) Filter(p TrackedPredicate) []models.TrackedDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TrackedDocument, 0, len(s.docs))
	for _, doc := range s.docs {
		if p.Status != nil && doc.Status != *p.Status {
			continue
		}
		if p.Type != nil && doc.Type != *p.Type {
			continue
		}
		doc.Tags = append([]string(nil), doc.Tags...)
		out = append(out, doc)
	}
	return out
}

// List returns all tracked documents in upload order.
func (s *TrackerService) List() []models.TrackedDocument {
	return s.Filter(TrackedPredicate{})
}

// baseName strips everything from the first dot, matching how the upload
// form derives a display name from a filename.
func baseName(filename string) string {
	if i := strings.Index(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
