package domain

import (
	"time"

	"github.com/google/uuid"
)

// Owner is one historical holder of a flower. Values are never mutated
// after construction.
type Owner struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DeviceID     string    `json:"deviceID"`
	TransferDate time.Time `json:"transferDate"`
	Location     string    `json:"location,omitempty"`
}

// NewOwner creates an Owner with a generated identifier.
func NewOwner(name, deviceID, location string, at time.Time) Owner {
	return Owner{
		ID:           uuid.New(),
		Name:         name,
		DeviceID:     deviceID,
		TransferDate: at,
		Location:     location,
	}
}

// TransferMetadata describes one hand-off of a flower between devices.
type TransferMetadata struct {
	TransferID   uuid.UUID `json:"transferID"`
	TransferDate time.Time `json:"transferDate"`
	SenderInfo   Owner     `json:"senderInfo"`
}

// HasOwnershipHistory reports whether the flower has ever changed hands.
func (f *Flower) HasOwnershipHistory() bool {
	return f.OriginalOwner != nil || len(f.OwnershipHistory) > 0
}

// CurrentOwnerCount counts every holder including the implicit current one.
func (f *Flower) CurrentOwnerCount() int {
	n := len(f.OwnershipHistory) + 1
	if f.OriginalOwner != nil {
		n++
	}
	return n
}

// IsTransferPending reports whether a transfer was prepared but neither
// completed nor cancelled.
func (f *Flower) IsTransferPending() bool { return f.TransferToken != "" }

// PrepareForTransfer records from as a holder of the flower and arms a
// one-time transfer token. The first holder ever becomes OriginalOwner,
// later holders are appended to OwnershipHistory. The caller persists f.
func (f *Flower) PrepareForTransfer(from Owner) TransferMetadata {
	if f.OriginalOwner == nil && len(f.OwnershipHistory) == 0 {
		owner := from
		f.OriginalOwner = &owner
		f.TransferSetsOriginal = true
	} else {
		f.OwnershipHistory = append(f.OwnershipHistory, from)
		f.TransferSetsOriginal = false
	}
	f.TransferToken = uuid.NewString()

	at := from.TransferDate
	if at.IsZero() {
		at = time.Now()
	}
	return TransferMetadata{
		TransferID:   uuid.New(),
		TransferDate: at,
		SenderInfo:   from,
	}
}

// CompleteTransfer clears the transfer token. Safe to call repeatedly.
func (f *Flower) CompleteTransfer() {
	f.TransferToken = ""
	f.TransferSetsOriginal = false
}

// CancelTransfer rolls back the holder recorded by PrepareForTransfer and
// clears the token. It is a no-op when no transfer is pending.
func (f *Flower) CancelTransfer() {
	if f.TransferToken == "" {
		return
	}
	switch {
	case f.TransferSetsOriginal:
		f.OriginalOwner = nil
	case len(f.OwnershipHistory) > 0:
		f.OwnershipHistory = f.OwnershipHistory[:len(f.OwnershipHistory)-1]
	}
	f.TransferToken = ""
	f.TransferSetsOriginal = false
}

// OwnershipTimeline returns every holder in chronological order, ending
// with current, which is otherwise never stored.
func (f *Flower) OwnershipTimeline(current Owner) []Owner {
	timeline := make([]Owner, 0, f.CurrentOwnerCount())
	if f.OriginalOwner != nil {
		timeline = append(timeline, *f.OriginalOwner)
	}
	timeline = append(timeline, f.OwnershipHistory...)
	return append(timeline, current)
}
