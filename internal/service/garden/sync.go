package garden

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

var errSyncDisabled = domain.NewValidationError("sync", "cloud sync is not configured")

// SyncResult reports one sync round.
type SyncResult struct {
	Local  int `json:"local"`
	Merged int `json:"merged"`
	Added  int `json:"added"`
}

// SyncNow merges the remote collection into the local one and pushes the
// result back.
func (s *Service) SyncNow(ctx context.Context) (SyncResult, error) {
	if s.sync == nil {
		return SyncResult{}, errSyncDisabled
	}

	var local []domain.Flower
	if err := s.do(ctx, func() error {
		local = domain.CloneFlowers(s.st.discovered)
		return nil
	}); err != nil {
		return SyncResult{}, err
	}

	merged, err := s.sync.MergeRemoteIntoLocal(ctx, local)
	if err != nil {
		return SyncResult{}, fmt.Errorf("merge remote: %w", err)
	}

	res := SyncResult{Local: len(local)}
	var final []domain.Flower
	err = s.do(ctx, func() error {
		before := idSet(local)
		mergedIDs := idSet(merged)
		next := reconcile(s.st.discovered, before, merged)
		for _, f := range s.st.discovered {
			if _, ok := mergedIDs[f.ID]; !ok {
				next = append(next, f.Clone())
			}
		}

		for i := range next {
			if _, ok := before[next[i].ID]; !ok {
				res.Added++
			}
			if name := next[i].ScientificName; name != "" {
				if !s.inHerbarium(name) {
					s.st.herbarium[name] = struct{}{}
				}
				next[i].IsInHerbarium = true
			}
		}
		slices.SortStableFunc(next, func(a, b domain.Flower) int {
			return b.DisplayDate().Compare(a.DisplayDate())
		})

		s.st.discovered = next
		s.st.favorites = favoritesOf(next)
		res.Merged = len(next)
		s.saveHerbarium(ctx)
		s.saveCollections(ctx)
		s.syncWidget(ctx)

		final = domain.CloneFlowers(next)
		return nil
	})
	if err != nil {
		return SyncResult{}, err
	}

	if err := s.sync.PushLocalToRemote(ctx, final); err != nil {
		return res, fmt.Errorf("push local: %w", err)
	}

	err = s.do(context.WithoutCancel(ctx), func() error {
		now := s.clock.Now()
		s.st.lastCloudSync = &now
		s.setPref(ctx, keyLastCloudSync, now)
		s.publish(events.SyncCompleted, nil, "", res)
		return nil
	})

	s.log.InfoContext(ctx, "cloud sync completed",
		slog.Int("local", res.Local),
		slog.Int("merged", res.Merged),
		slog.Int("added", res.Added),
	)
	return res, err
}

// SyncStatus reports whether sync is enabled, when it last ran and what
// the remote holds.
func (s *Service) SyncStatus(ctx context.Context) (domain.SyncStatus, error) {
	var status domain.SyncStatus
	if err := s.do(ctx, func() error {
		status.Enabled = s.sync != nil
		if s.st.lastCloudSync != nil {
			t := *s.st.lastCloudSync
			status.LastSync = &t
		}
		return nil
	}); err != nil {
		return status, err
	}
	if s.sync == nil {
		return status, nil
	}

	remote, err := s.sync.Metadata(ctx)
	if err != nil {
		return status, fmt.Errorf("remote metadata: %w", err)
	}
	status.Remote = remote
	return status, nil
}

// DeleteRemoteData removes everything stored in the cloud for this garden.
func (s *Service) DeleteRemoteData(ctx context.Context) error {
	if s.sync == nil {
		return errSyncDisabled
	}
	if err := s.sync.DeleteRemote(ctx); err != nil {
		return err
	}
	return s.do(context.WithoutCancel(ctx), func() error {
		s.st.lastCloudSync = nil
		s.deletePref(ctx, keyLastCloudSync)
		return nil
	})
}

// reconcile resolves the merge result against the live collection. Local
// flowers keep their live copy, so edits made while the merge ran survive,
// unless the remote copy is newer. Flowers removed locally in the meantime
// stay removed.
func reconcile(live []domain.Flower, before map[uuid.UUID]struct{}, merged []domain.Flower) []domain.Flower {
	byID := make(map[uuid.UUID]int, len(live))
	for i := range live {
		byID[live[i].ID] = i
	}

	next := make([]domain.Flower, 0, len(merged))
	for _, f := range merged {
		i, isLive := byID[f.ID]
		_, wasLocal := before[f.ID]
		switch {
		case isLive && !f.GeneratedDate.After(live[i].GeneratedDate):
			next = append(next, live[i].Clone())
		case isLive, !wasLocal:
			next = append(next, f)
		}
	}
	return next
}

func idSet(flowers []domain.Flower) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(flowers))
	for i := range flowers {
		ids[flowers[i].ID] = struct{}{}
	}
	return ids
}

func favoritesOf(flowers []domain.Flower) []domain.Flower {
	var out []domain.Flower
	for i := range flowers {
		if flowers[i].IsFavorite {
			out = append(out, flowers[i].Clone())
		}
	}
	return out
}
