// Package seed carries the mock session dataset: the demo vault documents,
// the property directory, and the analytics input collections.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"propvault/internal/domain/models/report"
	"propvault/internal/domain/models/vault"
)

//go:embed data.yaml
var rawData []byte

// Property is one entry of the weak-reference property directory.
type Property struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Data is the decoded session dataset.
type Data struct {
	Properties []Property
	Documents  []vault.Document
	Analytics  report.Inputs
}

type fileDocument struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Type          string   `yaml:"type"`
	Category      string   `yaml:"category"`
	PropertyID    string   `yaml:"property_id"`
	PropertyTitle string   `yaml:"property_title"`
	ClientID      string   `yaml:"client_id"`
	ClientName    string   `yaml:"client_name"`
	Size          int64    `yaml:"size"`
	UploadDate    string   `yaml:"upload_date"`
	ExpiryDate    string   `yaml:"expiry_date"`
	IsEncrypted   bool     `yaml:"is_encrypted"`
	AccessLevel   string   `yaml:"access_level"`
	Tags          []string `yaml:"tags"`
	IsSigned      bool     `yaml:"is_signed"`
	CloudSync     string   `yaml:"cloud_sync"`
	SharedWith    []string `yaml:"shared_with"`
}

type file struct {
	Properties []Property     `yaml:"properties"`
	Documents  []fileDocument `yaml:"documents"`
	Analytics  report.Inputs  `yaml:"analytics"`
}

// Load decodes the embedded dataset.
func Load() (*Data, error) {
	var f file
	if err := yaml.Unmarshal(rawData, &f); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}

	data := &Data{
		Properties: f.Properties,
		Analytics:  f.Analytics,
	}
	for _, fd := range f.Documents {
		doc, err := fd.toDocument()
		if err != nil {
			return nil, fmt.Errorf("seed document %q: %w", fd.Name, err)
		}
		data.Documents = append(data.Documents, doc)
	}
	return data, nil
}

func (fd fileDocument) toDocument() (vault.Document, error) {
	docType, err := vault.ParseDocumentType(fd.Type)
	if err != nil {
		return vault.Document{}, err
	}
	category, err := vault.ParseCategory(fd.Category)
	if err != nil {
		return vault.Document{}, err
	}
	access, err := vault.ParseAccessLevel(fd.AccessLevel)
	if err != nil {
		return vault.Document{}, err
	}
	cloud := vault.CloudNone
	if fd.CloudSync != "" {
		if cloud, err = vault.ParseCloudSyncTarget(fd.CloudSync); err != nil {
			return vault.Document{}, err
		}
	}
	uploaded, err := parseDate(fd.UploadDate)
	if err != nil {
		return vault.Document{}, fmt.Errorf("upload_date: %w", err)
	}

	doc := vault.Document{
		Name:        fd.Name,
		Description: fd.Description,
		Tags:        append([]string{}, fd.Tags...),
		Type:        docType,
		Category:    category,
		Linkage: vault.Linkage{
			PropertyID:    fd.PropertyID,
			PropertyTitle: fd.PropertyTitle,
			ClientID:      fd.ClientID,
			ClientName:    fd.ClientName,
		},
		Size:        fd.Size,
		Version:     1,
		UploadDate:  uploaded,
		IsEncrypted: fd.IsEncrypted,
		AccessLevel: access,
		IsSigned:    fd.IsSigned,
		CloudSync:   cloud,
		SharedWith:  append([]string{}, fd.SharedWith...),
	}
	if fd.ExpiryDate != "" {
		expiry, err := parseDate(fd.ExpiryDate)
		if err != nil {
			return vault.Document{}, fmt.Errorf("expiry_date: %w", err)
		}
		doc.ExpiryDate = &expiry
	}
	return doc, nil
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// Directory adapts the property list to the tracker's lookup interface.
type Directory struct {
	byID map[string]string
}

func NewDirectory(props []Property) *Directory {
	byID := make(map[string]string, len(props))
	for _, p := range props {
		byID[p.ID] = p.Title
	}
	return &Directory{byID: byID}
}

func (d *Directory) PropertyTitle(id string) (string, bool) {
	title, ok := d.byID[id]
	return title, ok
}
