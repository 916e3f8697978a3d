package garden

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

// syncWidget rewrites the shared widget projection. Runs on the loop.
func (s *Service) syncWidget(ctx context.Context) {
	n := min(len(s.st.discovered), domain.MaxWidgetFlowers)
	recent := make([]domain.WidgetFlower, 0, n)
	for i := range n {
		f := &s.st.discovered[i]
		recent = append(recent, domain.NewWidgetFlower(f, s.thumbnail(ctx, f)))
	}

	p := domain.WidgetProjection{
		Snapshot: domain.WidgetSnapshot{
			RecentFlowers:  recent,
			TotalCount:     len(s.st.discovered),
			FavoritesCount: len(s.st.favorites),
			LastUpdated:    s.clock.Now(),
		},
		HasUnrevealedFlower: s.st.hasUnrevealed,
		NextFlowerTime:      s.st.nextFlowerTime,
	}
	if s.st.pending != nil {
		wf := domain.NewWidgetFlower(s.st.pending, s.thumbnail(ctx, s.st.pending))
		p.PendingFlower = &wf
	}

	if err := s.widget.Publish(ctx, p); err != nil {
		s.log.WarnContext(ctx, "widget publish failed", slog.String("error", err.Error()))
		return
	}
	s.publish(events.WidgetReload, nil, "", nil)
}

// thumbnail is cached per flower id.
func (s *Service) thumbnail(ctx context.Context, f *domain.Flower) []byte {
	if len(f.ImageData) == 0 {
		return nil
	}
	if t, ok := s.st.thumbnails[f.ID]; ok {
		return t
	}
	t, err := s.renderer.Thumbnail(f.ImageData)
	if err != nil {
		s.log.WarnContext(ctx, "thumbnail failed", slog.String("flower_id", f.ID.String()), slog.String("error", err.Error()))
		return nil
	}
	s.st.thumbnails[f.ID] = t
	return t
}
