package garden

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/archive"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

// GiftInput identifies the flower and the sender of a gift.
type GiftInput struct {
	FlowerID   uuid.UUID
	SenderName string
	DeviceID   string
}

// Validate checks all fields and collects all errors.
func (i GiftInput) Validate() error {
	var errs []domain.FieldError
	if i.FlowerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "flower_id", Message: "required"})
	}
	if strings.TrimSpace(i.SenderName) == "" {
		errs = append(errs, domain.FieldError{Field: "sender_name", Message: "required"})
	}
	if len(i.SenderName) > 100 {
		errs = append(errs, domain.FieldError{Field: "sender_name", Message: "max 100 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PrepareGift arms a transfer and returns the document to send. The flower
// stays in the collection until ConfirmGift or CancelGift.
func (s *Service) PrepareGift(ctx context.Context, in GiftInput) (domain.FlowerDocument, error) {
	if err := in.Validate(); err != nil {
		return domain.FlowerDocument{}, err
	}

	location := ""
	if dc := s.env.Snapshot(); dc.Placemark != nil {
		location = dc.Placemark.DisplayName()
	}

	var doc domain.FlowerDocument
	err := s.do(ctx, func() error {
		f, ok := s.findDiscovered(in.FlowerID)
		if !ok {
			return domain.ErrNotFound
		}
		if !f.IsGiftable {
			return domain.NewValidationError("flower", "this flower cannot be gifted")
		}
		if f.IsTransferPending() {
			return fmt.Errorf("gift already prepared: %w", domain.ErrConflict)
		}

		deviceID := in.DeviceID
		if deviceID == "" {
			deviceID = s.cfg.DeviceID
		}
		sender := domain.NewOwner(strings.TrimSpace(in.SenderName), deviceID, location, s.clock.Now())

		var meta domain.TransferMetadata
		updated, err := s.mutate(in.FlowerID, func(f *domain.Flower) { meta = f.PrepareForTransfer(sender) })
		if err != nil {
			return err
		}
		s.saveCollections(ctx)

		doc = domain.NewFlowerDocument(updated, meta)
		s.publish(events.GiftPrepared, &updated, "", nil)
		return nil
	})
	if err != nil {
		return domain.FlowerDocument{}, err
	}

	s.log.InfoContext(ctx, "gift prepared",
		slog.String("flower_id", in.FlowerID.String()),
		slog.String("transfer_id", doc.TransferMetadata.TransferID.String()),
	)
	return doc, nil
}

// ConfirmGift removes a flower whose gift was delivered.
func (s *Service) ConfirmGift(ctx context.Context, id uuid.UUID) error {
	return s.do(ctx, func() error {
		f, ok := s.findDiscovered(id)
		if !ok {
			return domain.ErrNotFound
		}
		if !f.IsTransferPending() {
			return fmt.Errorf("no gift prepared for this flower: %w", domain.ErrConflict)
		}
		removed, _ := s.remove(ctx, id)
		s.saveCollections(ctx)
		s.publish(events.GiftConfirmed, &removed, "", nil)
		s.syncWidget(ctx)
		s.log.InfoContext(ctx, "gift confirmed", slog.String("flower_id", id.String()))
		return nil
	})
}

// CancelGift rolls back a prepared gift. It is a no-op when no gift is
// pending.
func (s *Service) CancelGift(ctx context.Context, id uuid.UUID) (domain.Flower, error) {
	var out domain.Flower
	err := s.do(ctx, func() error {
		f, ok := s.findDiscovered(id)
		if !ok {
			return domain.ErrNotFound
		}
		if !f.IsTransferPending() {
			out = f.Clone()
			return nil
		}
		updated, err := s.mutate(id, func(f *domain.Flower) { f.CancelTransfer() })
		if err != nil {
			return err
		}
		out = updated
		s.saveCollections(ctx)
		s.publish(events.GiftCancelled, &updated, "", nil)
		s.log.InfoContext(ctx, "gift cancelled", slog.String("flower_id", id.String()))
		return nil
	})
	return out, err
}

// ImportGift accepts a received .flower document. Completed transfers and
// transfers seen before are rejected with ErrDuplicateTransfer.
func (s *Service) ImportGift(ctx context.Context, data []byte) (domain.Flower, error) {
	doc, err := archive.DecodeFlowerDocument(data)
	if err != nil {
		return domain.Flower{}, err
	}

	var (
		out       domain.Flower
		milestone int
	)
	err = s.do(ctx, func() error {
		if _, seen := s.st.seenTransfers[doc.TransferMetadata.TransferID]; seen {
			return domain.ErrDuplicateTransfer
		}
		if _, exists := s.findDiscovered(doc.Flower.ID); exists {
			return domain.ErrDuplicateTransfer
		}

		f := doc.Flower.Clone()
		f.CompleteTransfer()
		f.IsFavorite = false
		if f.Discovery.Date == nil {
			f.MarkDiscovered(s.clock.Now())
		}
		f = s.addToDiscovered(ctx, f)

		s.st.seenTransfers[doc.TransferMetadata.TransferID] = struct{}{}
		s.saveSeenTransfers(ctx)
		s.saveCollections(ctx)
		milestone = s.checkMilestone(ctx)

		out = f.Clone()
		s.publish(events.GiftImported, &f, doc.TransferMetadata.SenderInfo.Name, nil)
		s.syncWidget(ctx)
		return nil
	})
	if err != nil {
		return domain.Flower{}, err
	}
	s.startMilestone(milestone)

	s.log.InfoContext(ctx, "gift imported",
		slog.String("flower_id", out.ID.String()),
		slog.String("sender", doc.TransferMetadata.SenderInfo.Name),
	)
	return out, nil
}
