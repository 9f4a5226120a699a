package seed

import (
	"testing"

	"propvault/internal/domain/models/vault"
)

func TestLoad(t *testing.T) {
	data, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(data.Documents) != 3 {
		t.Fatalf("loaded %d documents, want 3", len(data.Documents))
	}
	if len(data.Properties) == 0 {
		t.Fatal("no properties loaded")
	}

	deed := data.Documents[0]
	if deed.Type != vault.TypeDeed || deed.Category != vault.CategoryProperty {
		t.Errorf("deed decoded as %s/%s", deed.Type, deed.Category)
	}
	if deed.ExpiryDate == nil {
		t.Error("deed expiry date missing")
	}
	if deed.UploadDate.Format("2006-01-02") != "2024-01-15" {
		t.Errorf("deed upload date = %v", deed.UploadDate)
	}
	if len(deed.SharedWith) != 1 {
		t.Errorf("deed shared with %v", deed.SharedWith)
	}

	if data.Analytics.Visits.TotalScheduled != 89 {
		t.Errorf("visit stats = %+v", data.Analytics.Visits)
	}
	if got := len(data.Analytics.LeadSources); got != 5 {
		t.Errorf("lead sources = %d, want 5", got)
	}
}

func TestDirectory(t *testing.T) {
	dir := NewDirectory([]Property{{ID: "1", Title: "Villa"}})
	if title, ok := dir.PropertyTitle("1"); !ok || title != "Villa" {
		t.Errorf("PropertyTitle(1) = %q, %v", title, ok)
	}
	if _, ok := dir.PropertyTitle("99"); ok {
		t.Error("unexpected hit for unknown property")
	}
}
