package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"propvault/internal/domain"
	"propvault/internal/domain/models/vault"
	"propvault/internal/domain/repositories"
)

// DocumentStore is the in-process document record store. All state lives in
// this struct for the lifetime of the session; there is no backing storage.
type DocumentStore struct {
	mu     sync.RWMutex
	docs   []*vault.Document // newest first
	byID   map[string]*vault.Document
	logger *slog.Logger
}

// NewDocumentStore creates an empty session-scoped store.
func NewDocumentStore(logger *slog.Logger) *DocumentStore {
	return &DocumentStore{
		byID:   make(map[string]*vault.Document),
		logger: logger,
	}
}

var _ repositories.DocumentRepository = (*DocumentStore)(nil)

// Create assigns ids and prepends the batch, preserving in-batch order.
// UUIDv7 ids are time-ordered and collision-free within a session.
func (s *DocumentStore) Create(ctx context.Context, docs []vault.Document) ([]vault.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]vault.Document, 0, len(docs))
	inserted := make([]*vault.Document, 0, len(docs))
	for i := range docs {
		doc := docs[i].Clone()
		if err := checkInvariants(&doc); err != nil {
			return nil, err
		}
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate document id: %w", err)
		}
		doc.ID = id.String()
		if doc.Version == 0 {
			doc.Version = 1
		}
		stored := doc
		inserted = append(inserted, &stored)
		created = append(created, stored.Clone())
	}

	for _, doc := range inserted {
		s.byID[doc.ID] = doc
	}
	s.docs = append(inserted, s.docs...)

	s.logger.Debug("documents created", "count", len(created), "total", len(s.docs))
	return created, nil
}

// GetByID retrieves a copy of the record.
func (s *DocumentStore) GetByID(ctx context.Context, id string) (*vault.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("document %s not found", id)}
	}
	out := doc.Clone()
	return &out, nil
}

// Update merges upd into the stored record. A version decrease, a negative
// size, or an unknown enum value is rejected with InvalidState and the
// record is left unchanged.
func (s *DocumentStore) Update(ctx context.Context, id string, upd vault.DocumentUpdate) (*vault.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Message: fmt.Sprintf("document %s not found", id)}
	}

	merged := doc.Clone()
	applyUpdate(&merged, upd)
	if upd.Version != nil && *upd.Version < doc.Version {
		return nil, &domain.InvalidStateError{
			Message: fmt.Sprintf("document %s: version cannot decrease (%d -> %d)", id, doc.Version, *upd.Version),
		}
	}
	if err := checkInvariants(&merged); err != nil {
		return nil, err
	}

	*doc = merged
	out := doc.Clone()
	s.logger.Debug("document updated", "id", id, "version", out.Version)
	return &out, nil
}

// Delete removes the record. Irreversible and atomic.
func (s *DocumentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return &domain.NotFoundError{Message: fmt.Sprintf("document %s not found", id)}
	}
	delete(s.byID, id)
	for i, doc := range s.docs {
		if doc.ID == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			break
		}
	}
	s.logger.Debug("document deleted", "id", id, "remaining", len(s.docs))
	return nil
}

// List returns a snapshot of all documents, newest first. The snapshot is a
// deep copy so a filtering pass that follows is unaffected by concurrent
// mutation.
func (s *DocumentStore) List(ctx context.Context) ([]vault.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]vault.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, doc.Clone())
	}
	return out, nil
}

// Len reports the current record count.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func applyUpdate(doc *vault.Document, upd vault.DocumentUpdate) {
	if upd.Name != nil {
		doc.Name = *upd.Name
	}
	if upd.Description != nil {
		doc.Description = *upd.Description
	}
	if upd.Tags != nil {
		doc.Tags = append([]string(nil), (*upd.Tags)...)
	}
	if upd.Type != nil {
		doc.Type = *upd.Type
	}
	if upd.Category != nil {
		doc.Category = *upd.Category
	}
	if upd.AccessLevel != nil {
		doc.AccessLevel = *upd.AccessLevel
	}
	if upd.CloudSync != nil {
		doc.CloudSync = *upd.CloudSync
	}
	if upd.ExpiryDate != nil {
		exp := *upd.ExpiryDate
		doc.ExpiryDate = &exp
	}
	if upd.Size != nil {
		doc.Size = *upd.Size
	}
	if upd.Version != nil {
		doc.Version = *upd.Version
	}
	if upd.IsSigned != nil {
		doc.IsSigned = *upd.IsSigned
	}
	if upd.IsEncrypted != nil {
		doc.IsEncrypted = *upd.IsEncrypted
	}
	if upd.SharedWith != nil {
		doc.SharedWith = append([]string(nil), (*upd.SharedWith)...)
	}
}

func checkInvariants(doc *vault.Document) error {
	if doc.Size < 0 {
		return &domain.InvalidStateError{Message: fmt.Sprintf("document size cannot be negative: %d", doc.Size)}
	}
	if doc.Version < 0 || (doc.ID != "" && doc.Version < 1) {
		return &domain.InvalidStateError{Message: fmt.Sprintf("document version must be >= 1: %d", doc.Version)}
	}
	if !doc.Type.Valid() {
		return &domain.InvalidStateError{Message: fmt.Sprintf("unknown document type %q", doc.Type)}
	}
	if !doc.Category.Valid() {
		return &domain.InvalidStateError{Message: fmt.Sprintf("unknown category %q", doc.Category)}
	}
	if !doc.AccessLevel.Valid() {
		return &domain.InvalidStateError{Message: fmt.Sprintf("unknown access level %q", doc.AccessLevel)}
	}
	if !doc.CloudSync.Valid() {
		return &domain.InvalidStateError{Message: fmt.Sprintf("unknown cloud sync target %q", doc.CloudSync)}
	}
	return nil
}
