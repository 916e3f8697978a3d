// Package notify delivers local notifications at their fire time by
// publishing them on the event bus.
package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

type publisher interface {
	Publish(e events.Event)
}

type entry struct {
	n     domain.Notification
	timer *time.Timer
}

// Scheduler keeps at most one pending notification per id.
type Scheduler struct {
	mu      sync.Mutex
	pending map[string]*entry
	pub     publisher
	now     func() time.Time
	log     *slog.Logger
}

// NewScheduler creates a Scheduler that publishes to pub.
func NewScheduler(pub publisher, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pending: make(map[string]*entry),
		pub:     pub,
		now:     time.Now,
		log:     logger.With("component", "notify"),
	}
}

// Schedule arms n, replacing any notification with the same id. A fire
// time in the past fires immediately.
func (s *Scheduler) Schedule(ctx context.Context, n domain.Notification) error {
	delay := n.FireAt.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.pending[n.ID]; ok {
		old.timer.Stop()
	}
	e := &entry{n: n}
	e.timer = time.AfterFunc(delay, func() { s.fire(e) })
	s.pending[n.ID] = e

	s.log.DebugContext(ctx, "notification scheduled",
		slog.String("id", n.ID),
		slog.String("kind", string(n.Kind)),
		slog.Time("fire_at", n.FireAt),
	)
	return nil
}

// Cancel removes the notification with id, if pending.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.pending[id]; ok {
		e.timer.Stop()
		delete(s.pending, id)
	}
}

// CancelAll removes every pending notification.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.pending {
		e.timer.Stop()
		delete(s.pending, id)
	}
}

// Pending lists the armed notifications ordered by fire time.
func (s *Scheduler) Pending() []domain.Notification {
	s.mu.Lock()
	out := make([]domain.Notification, 0, len(s.pending))
	for _, e := range s.pending {
		out = append(out, e.n)
	}
	s.mu.Unlock()

	slices.SortFunc(out, func(a, b domain.Notification) int { return a.FireAt.Compare(b.FireAt) })
	return out
}

func (s *Scheduler) fire(e *entry) {
	s.mu.Lock()
	// A replaced or cancelled entry must not fire.
	if s.pending[e.n.ID] != e {
		s.mu.Unlock()
		return
	}
	delete(s.pending, e.n.ID)
	s.mu.Unlock()

	s.pub.Publish(events.Event{
		Type:    events.Notification,
		Message: e.n.Title,
		Data:    e.n,
	})
	s.log.Info("notification delivered", slog.String("id", e.n.ID), slog.String("kind", string(e.n.Kind)))
}
