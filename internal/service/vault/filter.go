package vault

import (
	"strings"
	"time"

	models "propvault/internal/domain/models/vault"
)

// Predicate narrows a document list. Nil enum fields (and an empty Text)
// mean "no constraint"; the UI's "All" options map to nil. Non-text fields
// combine with AND; Text matches name, description, or any tag.
type Predicate struct {
	Text        string
	Type        *models.DocumentType
	Category    *models.Category
	AccessLevel *models.AccessLevel
}

// Matches reports whether a single document satisfies the predicate. Text
// matching is case-insensitive substring search.
func (p Predicate) Matches(doc *models.Document) bool {
	if p.Text != "" {
		q := strings.ToLower(p.Text)
		matched := strings.Contains(strings.ToLower(doc.Name), q) ||
			strings.Contains(strings.ToLower(doc.Description), q)
		if !matched {
			for _, tag := range doc.Tags {
				if strings.Contains(strings.ToLower(tag), q) {
					matched = true
					break
				}
			}
		}
		if !matched {
			return false
		}
	}
	if p.Type != nil && doc.Type != *p.Type {
		return false
	}
	if p.Category != nil && doc.Category != *p.Category {
		return false
	}
	if p.AccessLevel != nil && doc.AccessLevel != *p.AccessLevel {
		return false
	}
	return true
}

// Filter returns the matching subset of docs in their original relative
// order.
func Filter(docs []models.Document, p Predicate) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for i := range docs {
		if p.Matches(&docs[i]) {
			out = append(out, docs[i])
		}
	}
	return out
}

// TemporalStatus is the derived expiry state of a document at a reference
// time. Computed at display time, never stored.
type TemporalStatus struct {
	ExpiringSoon bool
	Expired      bool
}

// DeriveStatus computes a document's temporal status relative to now.
func DeriveStatus(doc *models.Document, now time.Time) TemporalStatus {
	return TemporalStatus{
		ExpiringSoon: doc.IsExpiringSoon(now),
		Expired:      doc.IsExpired(now),
	}
}

// GroupByCategory buckets documents by category, preserving relative order
// within each bucket (the vault's folder view).
func GroupByCategory(docs []models.Document) map[models.Category][]models.Document {
	out := make(map[models.Category][]models.Document)
	for _, doc := range docs {
		out[doc.Category] = append(out[doc.Category], doc)
	}
	return out
}
