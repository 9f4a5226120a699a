package vault

import "time"

// DocumentUpdate is a partial update; nil fields are left untouched.
type DocumentUpdate struct {
	Name        *string
	Description *string
	Tags        *[]string
	Type        *DocumentType
	Category    *Category
	AccessLevel *AccessLevel
	CloudSync   *CloudSyncTarget
	ExpiryDate  *time.Time
	Size        *int64
	Version     *int
	IsSigned    *bool
	IsEncrypted *bool
	SharedWith  *[]string
}
