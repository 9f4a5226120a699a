package repositories

import (
	"context"

	"propvault/internal/domain/models/vault"
)

// DocumentRepository defines the record store for vault documents. The store
// is session-scoped: constructed once, torn down with the session, never
// persisted.
type DocumentRepository interface {
	// Create appends one record per input document, assigning each a fresh
	// id and returning the stored records in batch order.
	Create(ctx context.Context, docs []vault.Document) ([]vault.Document, error)

	// GetByID retrieves a document by id.
	GetByID(ctx context.Context, id string) (*vault.Document, error)

	// Update merges the non-nil fields of upd into the stored record,
	// preserving invariants, and returns the updated record.
	Update(ctx context.Context, id string, upd vault.DocumentUpdate) (*vault.Document, error)

	// Delete removes a record. Irreversible.
	Delete(ctx context.Context, id string) error

	// List returns a stable snapshot of every current document, newest
	// first. Mutation after the call does not affect the returned slice.
	List(ctx context.Context) ([]vault.Document, error)
}
