package vault

import (
	"fmt"
	"math"
	"time"
)

// DocumentType classifies what kind of file a document is.
type DocumentType string

const (
	TypeContract  DocumentType = "contract"
	TypeDeed      DocumentType = "deed"
	TypeAgreement DocumentType = "agreement"
	TypeNOC       DocumentType = "noc"
	TypeID        DocumentType = "id"
	TypeProperty  DocumentType = "property"
	TypeOther     DocumentType = "other"
)

// Category groups documents by what they relate to.
type Category string

const (
	CategoryProperty    Category = "property"
	CategoryClient      Category = "client"
	CategoryTransaction Category = "transaction"
)

// AccessLevel names which consumer role may view a document. It is
// display/filter data, not an enforcement boundary.
type AccessLevel string

const (
	AccessAgent  AccessLevel = "agent"
	AccessClient AccessLevel = "client"
	AccessAdmin  AccessLevel = "admin"
)

// CloudSyncTarget names the external provider a document is mirrored to.
// Descriptive only; no sync is performed.
type CloudSyncTarget string

const (
	CloudNone     CloudSyncTarget = "none"
	CloudGoogle   CloudSyncTarget = "google"
	CloudOneDrive CloudSyncTarget = "onedrive"
	CloudDropbox  CloudSyncTarget = "dropbox"
)

func (t DocumentType) Valid() bool {
	switch t {
	case TypeContract, TypeDeed, TypeAgreement, TypeNOC, TypeID, TypeProperty, TypeOther:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	switch c {
	case CategoryProperty, CategoryClient, CategoryTransaction:
		return true
	}
	return false
}

func (a AccessLevel) Valid() bool {
	switch a {
	case AccessAgent, AccessClient, AccessAdmin:
		return true
	}
	return false
}

func (c CloudSyncTarget) Valid() bool {
	switch c {
	case CloudNone, CloudGoogle, CloudOneDrive, CloudDropbox:
		return true
	}
	return false
}

func ParseDocumentType(s string) (DocumentType, error) {
	t := DocumentType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown document type %q", s)
	}
	return t, nil
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

func ParseAccessLevel(s string) (AccessLevel, error) {
	a := AccessLevel(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown access level %q", s)
	}
	return a, nil
}

func ParseCloudSyncTarget(s string) (CloudSyncTarget, error) {
	c := CloudSyncTarget(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown cloud sync target %q", s)
	}
	return c, nil
}

// ExpiryWarningDays is the window within which a document counts as
// expiring soon.
const ExpiryWarningDays = 30

// Linkage is a weak reference to the property and/or client a document
// belongs to. Lookup only, no ownership.
type Linkage struct {
	PropertyID    string `yaml:"property_id"`
	PropertyTitle string `yaml:"property_title"`
	ClientID      string `yaml:"client_id"`
	ClientName    string `yaml:"client_name"`
}

// Document is a tracked file-like entity with access and lifecycle metadata.
type Document struct {
	ID          string
	Name        string
	Description string
	Tags        []string
	Type        DocumentType
	Category    Category
	Linkage     Linkage
	Size        int64
	Version     int
	UploadDate  time.Time
	ExpiryDate  *time.Time
	IsEncrypted bool
	AccessLevel AccessLevel
	IsSigned    bool
	CloudSync   CloudSyncTarget
	SharedWith  []string
}

// IsExpiringSoon reports whether the document expires within the warning
// window relative to now. Computed on read, never stored.
func (d *Document) IsExpiringSoon(now time.Time) bool {
	if d.ExpiryDate == nil {
		return false
	}
	days := int(math.Ceil(d.ExpiryDate.Sub(now).Hours() / 24))
	return days > 0 && days <= ExpiryWarningDays
}

// IsExpired reports whether the document's expiry date is in the past.
func (d *Document) IsExpired(now time.Time) bool {
	if d.ExpiryDate == nil {
		return false
	}
	return d.ExpiryDate.Before(now)
}

// Clone returns a deep copy so store snapshots are unaffected by later
// mutation of slice fields.
func (d *Document) Clone() Document {
	out := *d
	out.Tags = append([]string(nil), d.Tags...)
	out.SharedWith = append([]string(nil), d.SharedWith...)
	if d.ExpiryDate != nil {
		exp := *d.ExpiryDate
		out.ExpiryDate = &exp
	}
	return out
}
