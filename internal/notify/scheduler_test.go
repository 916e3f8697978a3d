package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

func newTestScheduler(t *testing.T) (*Scheduler, <-chan events.Event) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bus := events.NewBus(logger)
	ch, cancel := bus.Subscribe(8)
	t.Cleanup(cancel)
	return NewScheduler(bus, logger), ch
}

func TestScheduler_PastFireTimeFiresImmediately(t *testing.T) {
	t.Parallel()
	s, ch := newTestScheduler(t)

	n := domain.Notification{ID: "daily-reveal", Kind: domain.NotificationDailyReveal, Title: "Your flower", FireAt: time.Now().Add(-time.Minute)}
	if err := s.Schedule(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case e := <-ch:
		if e.Type != events.Notification || e.Message != "Your flower" {
			t.Errorf("event = %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification did not fire")
	}
	if len(s.Pending()) != 0 {
		t.Error("fired notification should not stay pending")
	}
}

func TestScheduler_ReplaceAndCancel(t *testing.T) {
	t.Parallel()
	s, ch := newTestScheduler(t)
	ctx := context.Background()
	later := time.Now().Add(time.Hour)

	_ = s.Schedule(ctx, domain.Notification{ID: "reminder", FireAt: later})
	_ = s.Schedule(ctx, domain.Notification{ID: "reminder", Title: "second", FireAt: later.Add(time.Minute)})
	_ = s.Schedule(ctx, domain.Notification{ID: "daily", FireAt: later.Add(-time.Minute)})

	pending := s.Pending()
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].ID != "daily" || pending[1].Title != "second" {
		t.Errorf("pending = %+v", pending)
	}

	s.Cancel("reminder")
	if len(s.Pending()) != 1 {
		t.Errorf("pending after cancel = %d, want 1", len(s.Pending()))
	}
	s.CancelAll()
	if len(s.Pending()) != 0 {
		t.Error("CancelAll left notifications")
	}

	select {
	case e := <-ch:
		t.Errorf("unexpected event %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}
