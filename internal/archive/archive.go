// Package archive encodes and validates the .flower gift documents and the
// .bouquet backup documents exchanged between devices.
package archive

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// EncodeFlowerDocument renders a gift document as indented JSON.
func EncodeFlowerDocument(doc domain.FlowerDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode flower document: %w", err)
	}
	return data, nil
}

// DecodeFlowerDocument parses and validates a gift document. Documents whose
// transfer was already completed are rejected with ErrDuplicateTransfer.
func DecodeFlowerDocument(data []byte) (domain.FlowerDocument, error) {
	var doc domain.FlowerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.FlowerDocument{}, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return domain.FlowerDocument{}, err
	}
	return doc, nil
}

// Checksum is the BLAKE2b-256 digest of the sorted flower ids.
func Checksum(flowers []domain.Flower) string {
	ids := make([]string, len(flowers))
	for i := range flowers {
		ids[i] = flowers[i].ID.String()
	}
	slices.Sort(ids)
	sum := blake2b.Sum256([]byte(strings.Join(ids, ",")))
	return hex.EncodeToString(sum[:])
}

// NewBackup builds a version 1 backup document. TotalFlowers and Checksum
// in meta are overwritten.
func NewBackup(flowers []domain.Flower, meta domain.BackupMetadata) domain.BackupDocument {
	meta.TotalFlowers = len(flowers)
	meta.Checksum = Checksum(flowers)
	if meta.ExportDate.IsZero() {
		meta.ExportDate = time.Now()
	}
	return domain.BackupDocument{
		Flowers:  domain.CloneFlowers(flowers),
		Metadata: meta,
		Version:  domain.BackupVersion,
	}
}

// EncodeBackup renders a backup document as indented JSON.
func EncodeBackup(doc domain.BackupDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// DecodeBackup parses a backup document and verifies it.
func DecodeBackup(data []byte) (domain.BackupDocument, error) {
	var doc domain.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.BackupDocument{}, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	if err := VerifyBackup(doc); err != nil {
		return domain.BackupDocument{}, err
	}
	return doc, nil
}

// VerifyBackup checks version, flower count and checksum.
func VerifyBackup(doc domain.BackupDocument) error {
	if doc.Version < 1 || doc.Version > domain.BackupVersion {
		return fmt.Errorf("backup version %d: %w", doc.Version, domain.ErrUnsupportedVersion)
	}
	if doc.Metadata.TotalFlowers != len(doc.Flowers) {
		return fmt.Errorf("%w: metadata lists %d flowers, document has %d",
			domain.ErrInvalidDocument, doc.Metadata.TotalFlowers, len(doc.Flowers))
	}
	if got := Checksum(doc.Flowers); got != doc.Metadata.Checksum {
		return domain.ErrChecksumMismatch
	}
	return nil
}
