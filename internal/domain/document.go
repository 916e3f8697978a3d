package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DocumentVersion is the current .flower envelope version.
	DocumentVersion = 1
	// BackupVersion is the current .bouquet backup version.
	BackupVersion = 1

	FlowerFileExtension = ".flower"
	BackupFileExtension = ".bouquet"
)

// FlowerDocument is the envelope exchanged when gifting a flower.
type FlowerDocument struct {
	Flower           Flower           `json:"flower"`
	TransferMetadata TransferMetadata `json:"transferMetadata"`
	Version          int              `json:"version"`
}

// NewFlowerDocument wraps a prepared flower snapshot for export.
func NewFlowerDocument(f Flower, meta TransferMetadata) FlowerDocument {
	return FlowerDocument{
		Flower:           f.Clone(),
		TransferMetadata: meta,
		Version:          DocumentVersion,
	}
}

// Validate checks that the document can be imported.
func (d *FlowerDocument) Validate() error {
	if d.Version < 1 || d.Version > DocumentVersion {
		return fmt.Errorf("flower document version %d: %w", d.Version, ErrUnsupportedVersion)
	}
	var errs []FieldError
	if d.Flower.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "flower.id", Message: "required"})
	}
	if strings.TrimSpace(d.Flower.Name) == "" {
		errs = append(errs, FieldError{Field: "flower.name", Message: "required"})
	}
	if d.TransferMetadata.TransferID == uuid.Nil {
		errs = append(errs, FieldError{Field: "transferMetadata.transferID", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	if !d.Flower.IsTransferPending() {
		return ErrDuplicateTransfer
	}
	return nil
}

// FileName returns a file-system safe name for the exported document.
func (d *FlowerDocument) FileName() string {
	return SanitizeFileName(d.Flower.Name) + FlowerFileExtension
}

// BackupFileName is the file name of a backup taken at t.
func BackupFileName(t time.Time) string {
	return "Flowers_Backup_" + t.UTC().Format("2006-01-02_150405") + BackupFileExtension
}

// SanitizeFileName replaces characters that are invalid in file names.
func SanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "flower"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '<', '>', ':', '|', '?', '*', '"':
			return '_'
		}
		return r
	}, name)
}

// BackupMetadata describes a .bouquet backup file.
type BackupMetadata struct {
	ExportDate       time.Time `json:"exportDate"`
	DeviceID         string    `json:"deviceID"`
	DeviceName       string    `json:"deviceName"`
	AppVersion       string    `json:"appVersion"`
	TotalFlowers     int       `json:"totalFlowers"`
	ExporterName     string    `json:"exporterName,omitempty"`
	ExporterLocation string    `json:"exporterLocation,omitempty"`
	Checksum         string    `json:"checksum"`
}

// BackupDocument is a full collection export.
type BackupDocument struct {
	Flowers  []Flower       `json:"flowers"`
	Metadata BackupMetadata `json:"metadata"`
	Version  int            `json:"version"`
}

// MergeStats counts the outcome of merging an incoming collection.
type MergeStats struct {
	New          int `json:"new"`
	Updated      int `json:"updated"`
	KeptExisting int `json:"keptExisting"`
}
