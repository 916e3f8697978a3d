package cloudsync

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

type syncRepo interface {
	ListFlowers(ctx context.Context, account string) ([]domain.Flower, error)
	UpsertFlowers(ctx context.Context, account string, flowers []domain.Flower) error
	DeleteFlowersExcept(ctx context.Context, account string, keep []uuid.UUID) (int, error)
	GetMetadata(ctx context.Context, account string) (domain.SyncMetadata, error)
	PutMetadata(ctx context.Context, account string, m domain.SyncMetadata) error
	DeleteAccount(ctx context.Context, account string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service mirrors a garden's collection into the cloud store.
type Service struct {
	repo     syncRepo
	tx       txManager
	account  string
	deviceID string
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a cloud sync Service for one account.
func NewService(log *slog.Logger, repo syncRepo, tx txManager, account, deviceID string) *Service {
	return &Service{
		repo:     repo,
		tx:       tx,
		account:  account,
		deviceID: deviceID,
		now:      time.Now,
		log:      log.With("service", "cloudsync"),
	}
}

// MergeRemoteIntoLocal fetches the remote collection and merges it with local.
func (s *Service) MergeRemoteIntoLocal(ctx context.Context, local []domain.Flower) ([]domain.Flower, error) {
	var remote []domain.Flower
	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		remote, err = s.repo.ListFlowers(txCtx, s.account)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("fetch remote flowers: %w", err)
	}

	merged := Merge(local, remote)

	s.log.InfoContext(ctx, "merged remote collection",
		slog.Int("local", len(local)),
		slog.Int("remote", len(remote)),
		slog.Int("merged", len(merged)),
	)
	return merged, nil
}

// PushLocalToRemote replaces the remote collection with flowers.
func (s *Service) PushLocalToRemote(ctx context.Context, flowers []domain.Flower) error {
	ids := make([]uuid.UUID, len(flowers))
	for i := range flowers {
		ids[i] = flowers[i].ID
	}

	var removed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.UpsertFlowers(txCtx, s.account, flowers); err != nil {
			return fmt.Errorf("upsert flowers: %w", err)
		}
		var err error
		if removed, err = s.repo.DeleteFlowersExcept(txCtx, s.account, ids); err != nil {
			return fmt.Errorf("delete stale flowers: %w", err)
		}
		if err := s.repo.PutMetadata(txCtx, s.account, domain.SyncMetadata{
			LastModified: s.now(),
			DeviceID:     s.deviceID,
			FlowerCount:  len(flowers),
		}); err != nil {
			return fmt.Errorf("put metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "pushed collection",
		slog.Int("flowers", len(flowers)),
		slog.Int("removed", removed),
	)
	return nil
}

// Metadata returns the remote sync metadata, or nil if nothing was pushed yet.
func (s *Service) Metadata(ctx context.Context) (*domain.SyncMetadata, error) {
	m, err := s.repo.GetMetadata(ctx, s.account)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get metadata: %w", err)
	}
	return &m, nil
}

// DeleteRemote removes every remote flower and the metadata.
func (s *Service) DeleteRemote(ctx context.Context) error {
	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteAccount(txCtx, s.account)
	}); err != nil {
		return fmt.Errorf("delete remote: %w", err)
	}
	s.log.InfoContext(ctx, "remote collection deleted")
	return nil
}

// Merge unions local and remote by id. On conflict the copy with the newer
// GeneratedDate wins, local on a tie. The result is ordered by discovery
// date (or generation date), newest first.
func Merge(local, remote []domain.Flower) []domain.Flower {
	byID := make(map[uuid.UUID]domain.Flower, len(local)+len(remote))
	for _, f := range local {
		byID[f.ID] = f
	}
	for _, r := range remote {
		l, ok := byID[r.ID]
		if !ok || r.GeneratedDate.After(l.GeneratedDate) {
			byID[r.ID] = r
		}
	}

	out := make([]domain.Flower, 0, len(byID))
	for _, f := range byID {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b domain.Flower) int {
		if c := b.DisplayDate().Compare(a.DisplayDate()); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return out
}
