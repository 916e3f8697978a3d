package garden

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// Preference keys.
const (
	keyLastScheduledDate   = "lastScheduledFlowerDate"
	keyNextFlowerTime      = "nextFlowerTime"
	keyHasUnrevealedFlower = "hasUnrevealedFlower"
	keyPendingFlower       = "pendingFlower"
	keyCurrentFlowerID     = "currentFlowerID"
	keyLastMilestone       = "lastMilestone"
	keyHerbariumSpecies    = "herbariumSpecies"
	keySeenTransfers       = "seenTransfers"
	keyLastAutoBackupDate  = "lastAutoBackupDate"
	keyLastCloudSync       = "lastCloudSync"
)

var allKeys = []string{
	keyLastScheduledDate, keyNextFlowerTime, keyHasUnrevealedFlower, keyPendingFlower,
	keyCurrentFlowerID, keyLastMilestone, keyHerbariumSpecies, keySeenTransfers,
	keyLastAutoBackupDate, keyLastCloudSync,
}

// Load hydrates the garden from the stores. Read failures are logged and
// leave the affected value empty.
func (s *Service) Load(ctx context.Context) error {
	return s.do(ctx, func() error {
		st := newState()

		st.discovered = s.loadCollection(ctx, domain.CollectionDiscovered)
		st.favorites = s.loadCollection(ctx, domain.CollectionFavorites)

		var pending domain.Flower
		if s.getPref(ctx, keyPendingFlower, &pending) {
			st.pending = &pending
		}
		s.getPref(ctx, keyHasUnrevealedFlower, &st.hasUnrevealed)

		var t time.Time
		if s.getPref(ctx, keyNextFlowerTime, &t) {
			next := t
			st.nextFlowerTime = &next
		}
		if s.getPref(ctx, keyLastScheduledDate, &t) {
			last := t
			st.lastScheduled = &last
		}
		if s.getPref(ctx, keyLastAutoBackupDate, &t) {
			last := t
			st.lastAutoBackup = &last
		}
		if s.getPref(ctx, keyLastCloudSync, &t) {
			last := t
			st.lastCloudSync = &last
		}

		var current uuid.UUID
		if s.getPref(ctx, keyCurrentFlowerID, &current) {
			st.currentID = &current
		}
		s.getPref(ctx, keyLastMilestone, &st.lastMilestone)

		var species []string
		if s.getPref(ctx, keyHerbariumSpecies, &species) {
			for _, name := range species {
				st.herbarium[name] = struct{}{}
			}
		}
		var seen []uuid.UUID
		if s.getPref(ctx, keySeenTransfers, &seen) {
			for _, id := range seen {
				st.seenTransfers[id] = struct{}{}
			}
		}

		s.st = st
		s.validateAndFixState(ctx)
		s.syncWidget(ctx)

		s.log.InfoContext(ctx, "garden loaded",
			slog.Int("discovered", len(st.discovered)),
			slog.Int("favorites", len(st.favorites)),
			slog.Bool("pending", st.pending != nil),
			slog.Int("herbarium", len(st.herbarium)),
		)
		return nil
	})
}

func (s *Service) loadCollection(ctx context.Context, c domain.Collection) []domain.Flower {
	flowers, err := s.collection.Load(ctx, c)
	if err != nil {
		s.log.ErrorContext(ctx, "load collection failed, treating as empty",
			slog.String("collection", string(c)),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return flowers
}

func (s *Service) getPref(ctx context.Context, key string, dst any) bool {
	ok, err := s.prefs.Get(ctx, key, dst)
	if err != nil {
		s.log.WarnContext(ctx, "read preference failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return ok
}

func (s *Service) setPref(ctx context.Context, key string, v any) {
	if err := s.prefs.Set(ctx, key, v); err != nil {
		s.log.WarnContext(ctx, "write preference failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *Service) deletePref(ctx context.Context, keys ...string) {
	if err := s.prefs.Delete(ctx, keys...); err != nil {
		s.log.WarnContext(ctx, "delete preference failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}

// setOptionalTime stores t under key, or deletes the key when t is nil.
func (s *Service) setOptionalTime(ctx context.Context, key string, t *time.Time) {
	if t == nil {
		s.deletePref(ctx, key)
		return
	}
	s.setPref(ctx, key, *t)
}

func (s *Service) saveCollections(ctx context.Context) {
	for _, c := range []struct {
		name    domain.Collection
		flowers []domain.Flower
	}{
		{domain.CollectionDiscovered, s.st.discovered},
		{domain.CollectionFavorites, s.st.favorites},
	} {
		if err := s.collection.Save(ctx, c.name, c.flowers); err != nil {
			s.log.ErrorContext(ctx, "save collection failed",
				slog.String("collection", string(c.name)),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *Service) savePending(ctx context.Context) {
	if s.st.pending == nil {
		s.deletePref(ctx, keyPendingFlower)
	} else {
		s.setPref(ctx, keyPendingFlower, s.st.pending)
	}
	s.setPref(ctx, keyHasUnrevealedFlower, s.st.hasUnrevealed)
}

func (s *Service) saveHerbarium(ctx context.Context) {
	names := make([]string, 0, len(s.st.herbarium))
	for name := range s.st.herbarium {
		names = append(names, name)
	}
	slices.Sort(names)
	s.setPref(ctx, keyHerbariumSpecies, names)
}

func (s *Service) saveSeenTransfers(ctx context.Context) {
	ids := make([]uuid.UUID, 0, len(s.st.seenTransfers))
	for id := range s.st.seenTransfers {
		ids = append(ids, id)
	}
	s.setPref(ctx, keySeenTransfers, ids)
}

// validateAndFixState repairs contradictory scheduling state left by a
// crash or an older build.
func (s *Service) validateAndFixState(ctx context.Context) {
	if s.st.pending != nil && s.st.nextFlowerTime != nil {
		s.log.WarnContext(ctx, "pending flower with active countdown, clearing countdown")
		s.st.nextFlowerTime = nil
		s.deletePref(ctx, keyNextFlowerTime)
	}
	if s.st.hasUnrevealed != (s.st.pending != nil) {
		s.log.WarnContext(ctx, "unrevealed flag out of sync with pending flower, repairing",
			slog.Bool("flag", s.st.hasUnrevealed),
			slog.Bool("pending", s.st.pending != nil),
		)
		s.st.hasUnrevealed = s.st.pending != nil
		s.setPref(ctx, keyHasUnrevealedFlower, s.st.hasUnrevealed)
	}
}

func (s *Service) indexOf(list []domain.Flower, id uuid.UUID) int {
	return slices.IndexFunc(list, func(f domain.Flower) bool { return f.ID == id })
}

func (s *Service) findDiscovered(id uuid.UUID) (*domain.Flower, bool) {
	i := s.indexOf(s.st.discovered, id)
	if i < 0 {
		return nil, false
	}
	return &s.st.discovered[i], true
}

// addToDiscovered records herbarium species and prepends f to discovered,
// mirroring favorites.
func (s *Service) addToDiscovered(ctx context.Context, f domain.Flower) domain.Flower {
	if f.ScientificName != "" {
		if _, ok := s.st.herbarium[f.ScientificName]; !ok {
			s.st.herbarium[f.ScientificName] = struct{}{}
			s.saveHerbarium(ctx)
			s.log.InfoContext(ctx, "species added to herbarium", slog.String("species", f.ScientificName))
		}
		f.IsInHerbarium = true
	}
	s.st.discovered = slices.Insert(s.st.discovered, 0, f)
	if f.IsFavorite {
		s.st.favorites = slices.Insert(s.st.favorites, 0, f)
	}
	return f
}

// mutate applies fn to the flower in discovered and its favorites mirror.
// The favorites membership follows IsFavorite afterwards.
func (s *Service) mutate(id uuid.UUID, fn func(f *domain.Flower)) (domain.Flower, error) {
	i := s.indexOf(s.st.discovered, id)
	if i < 0 {
		return domain.Flower{}, domain.ErrNotFound
	}
	fn(&s.st.discovered[i])
	updated := s.st.discovered[i]

	j := s.indexOf(s.st.favorites, id)
	switch {
	case updated.IsFavorite && j >= 0:
		s.st.favorites[j] = updated.Clone()
	case updated.IsFavorite:
		s.st.favorites = slices.Insert(s.st.favorites, 0, updated.Clone())
	case j >= 0:
		s.st.favorites = slices.Delete(s.st.favorites, j, j+1)
	}
	return updated.Clone(), nil
}

// remove drops the flower from every list and clears it as current.
func (s *Service) remove(ctx context.Context, id uuid.UUID) (domain.Flower, bool) {
	i := s.indexOf(s.st.discovered, id)
	if i < 0 {
		return domain.Flower{}, false
	}
	removed := s.st.discovered[i]
	s.st.discovered = slices.Delete(s.st.discovered, i, i+1)
	if j := s.indexOf(s.st.favorites, id); j >= 0 {
		s.st.favorites = slices.Delete(s.st.favorites, j, j+1)
	}
	delete(s.st.thumbnails, id)
	if s.st.currentID != nil && *s.st.currentID == id {
		s.st.currentID = nil
		s.deletePref(ctx, keyCurrentFlowerID)
	}
	return removed, true
}

func (s *Service) setCurrent(ctx context.Context, id uuid.UUID) {
	s.st.currentID = &id
	s.setPref(ctx, keyCurrentFlowerID, id)
}

func (s *Service) current() *domain.Flower {
	if s.st.currentID == nil {
		return nil
	}
	f, ok := s.findDiscovered(*s.st.currentID)
	if !ok {
		return nil
	}
	return f
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
