package garden

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

// checkMilestone advances the watermark past the first threshold the
// collection has reached and returns it, or 0. A threshold whose bouquet
// already exists advances the watermark without generating. Runs on the loop.
func (s *Service) checkMilestone(ctx context.Context) int {
	threshold, ok := domain.NextMilestone(len(s.st.discovered), s.st.lastMilestone)
	if !ok {
		return 0
	}
	s.st.lastMilestone = threshold
	s.setPref(ctx, keyLastMilestone, threshold)

	name := domain.MilestoneBouquetName(threshold)
	for i := range s.st.discovered {
		if s.st.discovered[i].Name == name {
			return 0
		}
	}
	return threshold
}

// CheckMilestones runs one milestone check and generates the celebration
// bouquet in the background. It returns the threshold that fired, or 0.
func (s *Service) CheckMilestones(ctx context.Context) (int, error) {
	var threshold int
	if err := s.do(ctx, func() error {
		threshold = s.checkMilestone(ctx)
		return nil
	}); err != nil {
		return 0, err
	}
	s.startMilestone(threshold)
	return threshold, nil
}

func (s *Service) startMilestone(threshold int) {
	if threshold <= 0 {
		return
	}
	s.spawn("milestone", func(ctx context.Context) {
		s.generateMilestone(ctx, threshold)
	})
}

func (s *Service) generateMilestone(ctx context.Context, threshold int) {
	var p plan
	if err := s.do(ctx, func() error {
		p = s.choosePlan(nil, s.clock.Now())
		p.species = nil
		p.bouquet = false
		p.holidayName = ""
		p.milestone = threshold
		p.bouquetFlowers = []string{"Rose", "Peony", "Lily", "Sunflower"}
		p.descriptor = "celebration bouquet of roses, peonies, lilies and sunflowers"
		p.message = "reaching " + domain.MilestoneBouquetName(threshold)
		return nil
	}); err != nil {
		return
	}

	f, errMsg := s.produce(ctx, p)
	if errMsg != "" {
		s.log.WarnContext(ctx, "milestone bouquet uses placeholder art",
			slog.Int("threshold", threshold),
			slog.String("error", errMsg),
		)
	}

	err := s.do(context.WithoutCancel(ctx), func() error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		f.MarkDiscovered(s.clock.Now())
		f.IsFavorite = false
		f.IsGiftable = false
		f = s.addToDiscovered(ctx, f)
		s.saveCollections(ctx)

		s.publish(events.MilestoneReached, &f, f.Name, map[string]int{"threshold": threshold})
		s.syncWidget(ctx)
		return nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "milestone bouquet failed",
			slog.Int("threshold", threshold),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.InfoContext(ctx, "milestone bouquet added",
		slog.Int("threshold", threshold),
		slog.String("flower_id", f.ID.String()),
	)
}
