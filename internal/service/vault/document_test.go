package vault

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"propvault/internal/config"
	"propvault/internal/domain"
	models "propvault/internal/domain/models/vault"
	"propvault/internal/repository/memory"
)

func newService(t *testing.T) (*DocumentService, *memory.DocumentStore) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewDocumentStore(logger)
	cfg := &config.Config{ShareBaseURL: "https://vault.example.com"}
	now := func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return NewDocumentService(store, cfg, logger, now), store
}

func TestUploadDefaults(t *testing.T) {
	svc, _ := newService(t)
	created, err := svc.Upload(context.Background(), &UploadRequest{
		Files: []UploadFile{{Name: "deed.pdf", Size: 2048}, {Name: "photo.jpg", Size: 1024}},
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("Upload() created %d documents, want 2", len(created))
	}

	doc := created[0]
	if doc.ID == "" {
		t.Error("expected assigned id")
	}
	if doc.Type != models.TypeOther || doc.Category != models.CategoryProperty || doc.AccessLevel != models.AccessAgent {
		t.Errorf("unexpected defaults: type=%s category=%s access=%s", doc.Type, doc.Category, doc.AccessLevel)
	}
	if !doc.IsEncrypted {
		t.Error("new uploads default to encrypted")
	}
	if doc.IsSigned {
		t.Error("new uploads start unsigned")
	}
	if doc.Version != 1 {
		t.Errorf("Version = %d, want 1", doc.Version)
	}
	if doc.CloudSync != models.CloudNone {
		t.Errorf("CloudSync = %s, want none", doc.CloudSync)
	}
	if want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC); !doc.UploadDate.Equal(want) {
		t.Errorf("UploadDate = %v, want %v", doc.UploadDate, want)
	}
	if !strings.Contains(doc.Description, "2024-06-01") {
		t.Errorf("Description = %q, want upload date mention", doc.Description)
	}
}

func TestUploadEmptyBatch(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Upload(context.Background(), &UploadRequest{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Upload(empty) error = %v, want ErrValidation", err)
	}
}

func TestSignIdempotent(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, err := svc.Upload(ctx, &UploadRequest{Files: []UploadFile{{Name: "deed.pdf", Size: 10}}})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	id := created[0].ID

	once, err := svc.Sign(ctx, id)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if !once.IsSigned {
		t.Fatal("Sign() did not mark the document signed")
	}

	twice, err := svc.Sign(ctx, id)
	if err != nil {
		t.Fatalf("Sign() second call error = %v", err)
	}
	if !twice.IsSigned || twice.Version != once.Version {
		t.Errorf("second Sign() changed observable state: %+v vs %+v", twice, once)
	}
}

func TestSignNotFound(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Sign(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Sign(missing) error = %v, want ErrNotFound", err)
	}
}

func TestShareByEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, _ := svc.Upload(ctx, &UploadRequest{Files: []UploadFile{{Name: "deed.pdf", Size: 10}}})
	id := created[0].ID

	res, err := svc.Share(ctx, &ShareRequest{DocumentID: id, Mode: ShareByEmail, Email: "client@email.com"})
	if err != nil {
		t.Fatalf("Share() error = %v", err)
	}
	if len(res.Document.SharedWith) != 1 || res.Document.SharedWith[0] != "client@email.com" {
		t.Errorf("SharedWith = %v", res.Document.SharedWith)
	}

	// Sharing with the same recipient again does not duplicate
	res, err = svc.Share(ctx, &ShareRequest{DocumentID: id, Mode: ShareByEmail, Email: "client@email.com"})
	if err != nil {
		t.Fatalf("Share() repeat error = %v", err)
	}
	if len(res.Document.SharedWith) != 1 {
		t.Errorf("SharedWith after duplicate share = %v", res.Document.SharedWith)
	}
}

func TestShareByLink(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, _ := svc.Upload(ctx, &UploadRequest{Files: []UploadFile{{Name: "deed.pdf", Size: 10}}})
	id := created[0].ID

	res, err := svc.Share(ctx, &ShareRequest{DocumentID: id, Mode: ShareByLink, Password: "hunter2"})
	if err != nil {
		t.Fatalf("Share() error = %v", err)
	}
	if want := "https://vault.example.com/share/" + id; res.Link != want {
		t.Errorf("Link = %q, want %q", res.Link, want)
	}
	if res.Password != "hunter2" {
		t.Errorf("Password = %q, want it echoed", res.Password)
	}
}

func TestShareValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, _ := svc.Upload(ctx, &UploadRequest{Files: []UploadFile{{Name: "deed.pdf", Size: 10}}})
	id := created[0].ID

	tests := []struct {
		name string
		req  ShareRequest
	}{
		{"missing mode", ShareRequest{DocumentID: id}},
		{"email mode without email", ShareRequest{DocumentID: id, Mode: ShareByEmail}},
		{"malformed email", ShareRequest{DocumentID: id, Mode: ShareByEmail, Email: "not-an-email"}},
		{"unknown mode", ShareRequest{DocumentID: id, Mode: ShareMode("carrier-pigeon")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Share(ctx, &tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Share() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	created, _ := svc.Upload(ctx, &UploadRequest{Files: []UploadFile{{Name: "deed.pdf", Size: 10}}})
	id := created[0].ID

	err := svc.Delete(ctx, &DeleteRequest{ID: id, Confirmed: false})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unconfirmed Delete() error = %v, want ErrValidation", err)
	}
	if store.Len() != 1 {
		t.Fatal("unconfirmed delete changed the store")
	}

	if err := svc.Delete(ctx, &DeleteRequest{ID: id, Confirmed: true}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Len() != 0 {
		t.Error("confirmed delete left the record in place")
	}
	if err := svc.Delete(ctx, &DeleteRequest{ID: id, Confirmed: true}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("repeat Delete() error = %v, want ErrNotFound", err)
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	created, _ := svc.Upload(ctx, &UploadRequest{Files: []UploadFile{{Name: "deed.pdf", Size: 10}}})
	id := created[0].ID

	// The UI keeps a currently-selected document and drops it on deletion
	selected := id
	svc.Subscribe(func(ev Event) {
		if ev.Kind == EventDeleted && ev.ID == selected {
			selected = ""
		}
	})

	if err := svc.Delete(ctx, &DeleteRequest{ID: id, Confirmed: true}); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if selected != "" {
		t.Error("deletion did not clear the current selection")
	}
}

func TestExpiringSoonList(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	soon := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	far := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mk := func(name string, exp *time.Time) models.Document {
		return models.Document{
			Name: name, Type: models.TypeOther, Category: models.CategoryProperty,
			AccessLevel: models.AccessAgent, CloudSync: models.CloudNone,
			Version: 1, ExpiryDate: exp,
		}
	}
	if _, err := store.Create(ctx, []models.Document{mk("later", &later), mk("soon", &soon), mk("far", &far), mk("never", nil)}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.ExpiringSoon(ctx)
	if err != nil {
		t.Fatalf("ExpiringSoon() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "soon" || got[1].Name != "later" {
		names := make([]string, len(got))
		for i, d := range got {
			names[i] = d.Name
		}
		t.Errorf("ExpiringSoon() = %v, want [soon later]", names)
	}
}
