package garden

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/florarium-backend/internal/archive"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

// ExportBackup snapshots the discovered collection as a backup document.
func (s *Service) ExportBackup(ctx context.Context) (domain.BackupDocument, error) {
	location := ""
	if dc := s.env.Snapshot(); dc.Placemark != nil {
		location = dc.Placemark.DisplayName()
	}

	var doc domain.BackupDocument
	err := s.do(ctx, func() error {
		doc = archive.NewBackup(s.st.discovered, domain.BackupMetadata{
			ExportDate:       s.clock.Now(),
			DeviceID:         s.cfg.DeviceID,
			DeviceName:       s.cfg.DeviceName,
			AppVersion:       s.cfg.AppVersion,
			ExporterName:     s.cfg.OwnerName,
			ExporterLocation: location,
		})
		return nil
	})
	return doc, err
}

// ImportBackup verifies a .bouquet document and merges it into the
// collection. On conflict the copy with the newer display date wins.
func (s *Service) ImportBackup(ctx context.Context, data []byte) (domain.MergeStats, error) {
	doc, err := archive.DecodeBackup(data)
	if err != nil {
		return domain.MergeStats{}, err
	}

	var (
		stats     domain.MergeStats
		milestone int
	)
	err = s.do(ctx, func() error {
		stats = s.mergeFlowers(ctx, doc.Flowers)
		s.saveCollections(ctx)
		milestone = s.checkMilestone(ctx)

		s.publish(events.CollectionChanged, nil, "backup restored", stats)
		s.syncWidget(ctx)
		return nil
	})
	if err != nil {
		return domain.MergeStats{}, err
	}
	s.startMilestone(milestone)

	s.log.InfoContext(ctx, "backup imported",
		slog.Int("new", stats.New),
		slog.Int("updated", stats.Updated),
		slog.Int("kept", stats.KeptExisting),
	)
	return stats, nil
}

// mergeFlowers runs on the loop.
func (s *Service) mergeFlowers(ctx context.Context, incoming []domain.Flower) domain.MergeStats {
	var stats domain.MergeStats
	for _, in := range incoming {
		i := s.indexOf(s.st.discovered, in.ID)
		if i < 0 {
			s.addToDiscovered(ctx, in.Clone())
			stats.New++
			continue
		}
		existing := &s.st.discovered[i]
		if !in.DisplayDate().After(existing.DisplayDate()) {
			stats.KeptExisting++
			continue
		}
		replacement := in.Clone()
		replacement.IsInHerbarium = replacement.ScientificName != "" && s.inHerbarium(replacement.ScientificName)
		if _, err := s.mutate(in.ID, func(f *domain.Flower) { *f = replacement }); err == nil {
			delete(s.st.thumbnails, in.ID)
			stats.Updated++
		}
	}
	return stats
}

func (s *Service) inHerbarium(name string) bool {
	_, ok := s.st.herbarium[name]
	return ok
}

// AutoBackup writes one backup per day into the backup directory and
// prunes old ones. It returns the written path, or "" when skipped.
func (s *Service) AutoBackup(ctx context.Context) (string, error) {
	if s.backups == nil {
		return "", nil
	}

	var skip bool
	if err := s.do(ctx, func() error {
		skip = s.st.lastAutoBackup != nil && sameDay(*s.st.lastAutoBackup, s.clock.Now(), s.cfg.Location)
		return nil
	}); err != nil {
		return "", err
	}
	if skip {
		return "", nil
	}

	doc, err := s.ExportBackup(ctx)
	if err != nil {
		return "", err
	}
	if len(doc.Flowers) == 0 {
		return "", nil
	}
	data, err := archive.EncodeBackup(doc)
	if err != nil {
		return "", err
	}

	path, err := s.backups.Write(doc.Metadata.ExportDate, data)
	if err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	removed, err := s.backups.Prune(s.cfg.BackupKeep)
	if err != nil {
		s.log.WarnContext(ctx, "prune backups failed", slog.String("error", err.Error()))
	}

	if err := s.do(context.WithoutCancel(ctx), func() error {
		at := doc.Metadata.ExportDate
		s.st.lastAutoBackup = &at
		s.setPref(ctx, keyLastAutoBackupDate, at)
		return nil
	}); err != nil {
		return path, err
	}

	s.log.InfoContext(ctx, "automatic backup written",
		slog.String("path", path),
		slog.Int("flowers", len(doc.Flowers)),
		slog.Int("pruned", removed),
	)
	return path, nil
}
