package vault

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"propvault/internal/config"
	"propvault/internal/domain"
	models "propvault/internal/domain/models/vault"
	"propvault/internal/domain/repositories"
)

// EventKind identifies a change published to UI observers.
type EventKind string

const (
	EventCreated EventKind = "created"
	EventUpdated EventKind = "updated"
	EventSigned  EventKind = "signed"
	EventShared  EventKind = "shared"
	EventDeleted EventKind = "deleted"
)

// Event describes one store change. Document is nil for deletions; observers
// holding the deleted document as a current selection must drop it.
type Event struct {
	Kind     EventKind
	ID       string
	Document *models.Document
}

// DocumentService implements the vault lifecycle operations: batch upload,
// sign, share, delete, and partial update. All operations are synchronous
// and either apply fully or leave the store unchanged.
type DocumentService struct {
	repo   repositories.DocumentRepository
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time

	mu        sync.Mutex
	observers []func(Event)
}

// NewDocumentService creates a new vault document service. now is the
// reference clock for upload dates and derived expiry status.
func NewDocumentService(
	repo repositories.DocumentRepository,
	cfg *config.Config,
	logger *slog.Logger,
	now func() time.Time,
) *DocumentService {
	if now == nil {
		now = time.Now
	}
	return &DocumentService{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		now:    now,
	}
}

// Subscribe registers an observer for store change events. The UI layer is
// an external caller; it learns about mutations only through these events.
func (s *DocumentService) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *DocumentService) publish(ev Event) {
	s.mu.Lock()
	observers := append(([]func(Event))(nil), s.observers...)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(ev)
	}
}

// UploadFile is one file-like input of an upload batch.
type UploadFile struct {
	Name string
	Size int64
}

// UploadRequest carries a batch of files to store as vault documents.
type UploadRequest struct {
	Files []UploadFile
}

func (s *DocumentService) validateUploadRequest(req *UploadRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Files,
			validation.Required.Error("upload batch cannot be empty"),
			validation.Length(1, config.MaxUploadBatch),
		),
	)
}

// Upload stores one document per input file with vault defaults: type
// "other", category "property", access level "agent", encrypted, unsigned,
// version 1, upload date set to today. New documents are prepended to the
// store.
func (s *DocumentService) Upload(ctx context.Context, req *UploadRequest) ([]models.Document, error) {
	if err := s.validateUploadRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid upload: %v", err)}
	}
	for _, f := range req.Files {
		if f.Size < 0 {
			return nil, &domain.ValidationError{Message: fmt.Sprintf("file %q has negative size", f.Name)}
		}
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)
	docs := make([]models.Document, 0, len(req.Files))
	for _, f := range req.Files {
		docs = append(docs, models.Document{
			Name:        f.Name,
			Description: fmt.Sprintf("Uploaded on %s", now.Format("2006-01-02")),
			Tags:        []string{},
			Type:        models.TypeOther,
			Category:    models.CategoryProperty,
			Size:        f.Size,
			Version:     1,
			UploadDate:  today,
			IsEncrypted: true,
			AccessLevel: models.AccessAgent,
			CloudSync:   models.CloudNone,
			SharedWith:  []string{},
		})
	}

	created, err := s.repo.Create(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("create documents: %w", err)
	}

	s.logger.Info("documents uploaded", "count", len(created))
	for i := range created {
		doc := created[i]
		s.publish(Event{Kind: EventCreated, ID: doc.ID, Document: &doc})
	}
	return created, nil
}

// Update merges a partial update into a document.
func (s *DocumentService) Update(ctx context.Context, id string, upd models.DocumentUpdate) (*models.Document, error) {
	doc, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.publish(Event{Kind: EventUpdated, ID: doc.ID, Document: doc})
	return doc, nil
}

// Sign marks a document as signed. Signing an already-signed document is a
// no-op, not an error.
func (s *DocumentService) Sign(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.IsSigned {
		return doc, nil
	}

	signed := true
	doc, err = s.repo.Update(ctx, id, models.DocumentUpdate{IsSigned: &signed})
	if err != nil {
		return nil, fmt.Errorf("sign document: %w", err)
	}
	s.logger.Info("document signed", "id", id, "name", doc.Name)
	s.publish(Event{Kind: EventSigned, ID: doc.ID, Document: doc})
	return doc, nil
}

// ShareMode selects how a document is shared.
type ShareMode string

const (
	ShareByEmail ShareMode = "email"
	ShareByLink  ShareMode = "link"
)

// emailPattern is deliberately loose: one @ with something on both sides.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ShareRequest shares a document with a recipient email or generates a
// share link. Password optionally protects a generated link; it is recorded
// on the result but never verified here.
type ShareRequest struct {
	DocumentID string
	Mode       ShareMode
	Email      string
	Password   string
}

func (s *DocumentService) validateShareRequest(req *ShareRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DocumentID, validation.Required),
		validation.Field(&req.Mode,
			validation.Required,
			validation.In(ShareByEmail, ShareByLink),
		),
		validation.Field(&req.Email,
			validation.When(req.Mode == ShareByEmail,
				validation.Required.Error("recipient email is required"),
				validation.Match(emailPattern),
			),
		),
	)
}

// ShareResult is the outcome of a share operation.
type ShareResult struct {
	Document *models.Document
	// Link is set in link mode: <base>/share/<id>.
	Link string
	// Password echoes the optional link password. Declared, not enforced.
	Password string
}

// Share records a recipient on the document (email mode, deduplicated) or
// produces a deterministic share link (link mode).
func (s *DocumentService) Share(ctx context.Context, req *ShareRequest) (*ShareResult, error) {
	if err := s.validateShareRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: fmt.Sprintf("invalid share: %v", err)}
	}

	doc, err := s.repo.GetByID(ctx, req.DocumentID)
	if err != nil {
		return nil, err
	}

	switch req.Mode {
	case ShareByLink:
		link := fmt.Sprintf("%s/share/%s", s.cfg.ShareBaseURL, doc.ID)
		s.logger.Info("share link generated", "id", doc.ID, "protected", req.Password != "")
		s.publish(Event{Kind: EventShared, ID: doc.ID, Document: doc})
		return &ShareResult{Document: doc, Link: link, Password: req.Password}, nil

	case ShareByEmail:
		recipients := mergeRecipient(doc.SharedWith, req.Email)
		doc, err = s.repo.Update(ctx, doc.ID, models.DocumentUpdate{SharedWith: &recipients})
		if err != nil {
			return nil, fmt.Errorf("record share recipient: %w", err)
		}
		s.logger.Info("document shared", "id", doc.ID, "recipients", len(doc.SharedWith))
		s.publish(Event{Kind: EventShared, ID: doc.ID, Document: doc})
		return &ShareResult{Document: doc}, nil
	}
	return nil, &domain.ValidationError{Message: fmt.Sprintf("unknown share mode %q", req.Mode)}
}

// mergeRecipient appends email to the recipient set, deduplicated, keeping
// existing order.
func mergeRecipient(existing []string, email string) []string {
	for _, r := range existing {
		if r == email {
			return append([]string(nil), existing...)
		}
	}
	out := append(append([]string(nil), existing...), email)
	return out
}

// DeleteRequest removes a document. Confirmed models the UI's yes/no gate;
// an unconfirmed delete changes nothing.
type DeleteRequest struct {
	ID        string
	Confirmed bool
}

// Delete removes the document irreversibly once confirmed. Observers are
// told so any current selection of the document can be cleared.
func (s *DocumentService) Delete(ctx context.Context, req *DeleteRequest) error {
	if req.ID == "" {
		return &domain.ValidationError{Message: "document id is required"}
	}
	if !req.Confirmed {
		return &domain.ValidationError{Message: "delete requires confirmation"}
	}
	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return err
	}
	s.logger.Info("document deleted", "id", req.ID)
	s.publish(Event{Kind: EventDeleted, ID: req.ID})
	return nil
}

// Get retrieves a single document.
func (s *DocumentService) Get(ctx context.Context, id string) (*models.Document, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a snapshot of all documents, newest first.
func (s *DocumentService) List(ctx context.Context) ([]models.Document, error) {
	return s.repo.List(ctx)
}

// ExpiringSoon returns documents inside the expiry warning window, soonest
// first.
func (s *DocumentService) ExpiringSoon(ctx context.Context) ([]models.Document, error) {
	docs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]models.Document, 0)
	for _, doc := range docs {
		if doc.IsExpiringSoon(now) {
			out = append(out, doc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpiryDate.Before(*out[j].ExpiryDate)
	})
	return out, nil
}
