package garden

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/botanical"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

// Flowers returns the discovered collection, newest first.
func (s *Service) Flowers(ctx context.Context) ([]domain.Flower, error) {
	var out []domain.Flower
	err := s.do(ctx, func() error {
		out = domain.CloneFlowers(s.st.discovered)
		return nil
	})
	return out, err
}

// Favorites returns the favorite flowers.
func (s *Service) Favorites(ctx context.Context) ([]domain.Flower, error) {
	var out []domain.Flower
	err := s.do(ctx, func() error {
		out = domain.CloneFlowers(s.st.favorites)
		return nil
	})
	return out, err
}

// Flower returns one discovered flower.
func (s *Service) Flower(ctx context.Context, id uuid.UUID) (domain.Flower, error) {
	var out domain.Flower
	err := s.do(ctx, func() error {
		f, ok := s.findDiscovered(id)
		if !ok {
			return domain.ErrNotFound
		}
		out = f.Clone()
		return nil
	})
	return out, err
}

// ToggleFavorite flips IsFavorite and keeps favorites mirrored.
func (s *Service) ToggleFavorite(ctx context.Context, id uuid.UUID) (domain.Flower, error) {
	return s.update(ctx, id, func(f *domain.Flower) { f.IsFavorite = !f.IsFavorite })
}

// DeleteFavorite unfavorites a flower. It stays in the collection.
func (s *Service) DeleteFavorite(ctx context.Context, id uuid.UUID) error {
	_, err := s.update(ctx, id, func(f *domain.Flower) { f.IsFavorite = false })
	return err
}

// UpdateDetails replaces the generated details of a flower.
func (s *Service) UpdateDetails(ctx context.Context, id uuid.UUID, details domain.FlowerDetails) (domain.Flower, error) {
	if details.Continent != "" && !details.Continent.IsValid() {
		return domain.Flower{}, domain.NewValidationError("continent", "unknown continent")
	}
	return s.update(ctx, id, func(f *domain.Flower) {
		d := details
		f.Details = &d
	})
}

func (s *Service) update(ctx context.Context, id uuid.UUID, fn func(f *domain.Flower)) (domain.Flower, error) {
	var out domain.Flower
	err := s.do(ctx, func() error {
		f, err := s.mutate(id, fn)
		if err != nil {
			return err
		}
		out = f
		s.saveCollections(ctx)
		s.publish(events.FlowerUpdated, &f, "", nil)
		s.syncWidget(ctx)
		return nil
	})
	return out, err
}

// DiscardFlower removes a flower from the collection. Its species stays in
// the herbarium.
func (s *Service) DiscardFlower(ctx context.Context, id uuid.UUID) error {
	return s.do(ctx, func() error {
		f, ok := s.remove(ctx, id)
		if !ok {
			return domain.ErrNotFound
		}
		s.saveCollections(ctx)
		s.publish(events.FlowerRemoved, &f, "discarded", nil)
		s.syncWidget(ctx)
		s.log.InfoContext(ctx, "flower discarded", slog.String("flower_id", id.String()))
		return nil
	})
}

// GenerateDetails fills the details of an existing flower using the text
// generator, falling back to templates.
func (s *Service) GenerateDetails(ctx context.Context, id uuid.UUID) (domain.Flower, error) {
	var snapshot domain.Flower
	if err := s.do(ctx, func() error {
		f, ok := s.findDiscovered(id)
		if !ok {
			return domain.ErrNotFound
		}
		snapshot = f.Clone()
		return nil
	}); err != nil {
		return domain.Flower{}, err
	}

	var species *domain.Species
	if sp, ok := s.catalog.ByScientificName(snapshot.ScientificName); ok {
		species = &sp
	}
	season := botanical.SeasonAt(snapshot.DisplayDate(), latitudeOf(&snapshot))
	continent, ok := snapshot.Continent()
	if !ok {
		continent = botanical.RandomContinent(s.rnd)
	}

	details := botanical.TemplateDetails(snapshot.Name, snapshot.Descriptor, species, season, continent)
	if s.text != nil {
		d, err := s.text.FlowerDetails(ctx, provider.DetailsRequest{
			Name:           snapshot.Name,
			Descriptor:     snapshot.Descriptor,
			ScientificName: snapshot.ScientificName,
			Season:         season,
			Location:       snapshot.Discovery.LocationName,
			Context:        snapshot.GenerationContext,
			IsBouquet:      snapshot.IsBouquet,
			HolidayName:    snapshot.HolidayName,
		})
		switch {
		case err == nil:
			if d.Continent == "" {
				d.Continent = continent
			}
			details = d
		case ctx.Err() != nil:
			return domain.Flower{}, ctx.Err()
		case !errors.Is(err, domain.ErrMissingAPIKey):
			s.log.WarnContext(ctx, "details generation failed, using templates",
				slog.String("flower_id", id.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return s.UpdateDetails(ctx, id, details)
}

func latitudeOf(f *domain.Flower) float64 {
	if f.Discovery.Latitude != nil {
		return *f.Discovery.Latitude
	}
	return 0
}

// ResetProfile erases the collection, herbarium and schedule. Remote sync
// data is kept.
func (s *Service) ResetProfile(ctx context.Context) error {
	s.notifier.CancelAll()
	return s.do(ctx, func() error {
		if err := s.collection.Reset(ctx); err != nil {
			s.log.ErrorContext(ctx, "reset collection files failed", slog.String("error", err.Error()))
		}
		s.deletePref(ctx, allKeys...)

		generating := s.st.generating
		s.st = newState()
		s.st.generating = generating

		s.publish(events.ProfileReset, nil, "", nil)
		s.syncWidget(ctx)
		s.log.InfoContext(ctx, "profile reset")
		return nil
	})
}
