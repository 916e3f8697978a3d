package garden

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/metrics"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

// ScheduleOutcome reports what ScheduleIfNeeded did.
type ScheduleOutcome string

const (
	OutcomePending      ScheduleOutcome = "pending"
	OutcomeBusy         ScheduleOutcome = "busy"
	OutcomeAlreadyShown ScheduleOutcome = "already_shown"
	OutcomeScheduled    ScheduleOutcome = "scheduled"
	OutcomeGenerated    ScheduleOutcome = "generated"
)

// Notification ids. At most one of each is armed.
const (
	notificationDaily    = "daily-reveal"
	notificationReminder = "reveal-reminder"
)

// ScheduleResult is the outcome plus the countdown target, if any.
type ScheduleResult struct {
	Outcome        ScheduleOutcome `json:"outcome"`
	NextFlowerTime *time.Time      `json:"nextFlowerTime,omitempty"`
	Flower         *domain.Flower  `json:"flower,omitempty"`
}

// slotFor returns the reveal time on day's calendar date.
func (s *Service) slotFor(day time.Time) time.Time {
	local := day.In(s.cfg.Location)
	y, m, d := local.Date()
	slot := time.Date(y, m, d, 0, 0, 0, 0, s.cfg.Location).Add(s.cfg.RevealAt)
	if secs := uint64(s.cfg.Jitter / time.Second); secs > 0 {
		sum := blake2b.Sum256([]byte(slot.Format(time.DateOnly)))
		offset := binary.BigEndian.Uint64(sum[:8]) % secs
		slot = slot.Add(time.Duration(offset) * time.Second)
	}
	return slot
}

func (s *Service) nextSlot(now time.Time) time.Time {
	return s.slotFor(now.In(s.cfg.Location).AddDate(0, 0, 1))
}

// shownToday reports whether a flower was already produced for now's day.
func (s *Service) shownToday(now time.Time) bool {
	loc := s.cfg.Location
	if cur := s.current(); cur != nil && cur.Discovery.Date != nil && sameDay(*cur.Discovery.Date, now, loc) {
		return true
	}
	if s.st.pending != nil && sameDay(s.st.pending.GeneratedDate, now, loc) {
		return true
	}
	return s.st.lastScheduled != nil && sameDay(*s.st.lastScheduled, now, loc)
}

func (s *Service) slotChanged(t time.Time) bool {
	return s.st.nextFlowerTime == nil || !s.st.nextFlowerTime.Equal(t)
}

// armDaily returns t when the daily notification is not yet armed for it.
func (s *Service) armDaily(t time.Time) *time.Time {
	if s.st.dailyArmed != nil && s.st.dailyArmed.Equal(t) {
		return nil
	}
	s.st.dailyArmed = &t
	return &t
}

func (s *Service) setNextFlowerTime(ctx context.Context, t *time.Time) {
	s.st.nextFlowerTime = t
	s.setOptionalTime(ctx, keyNextFlowerTime, t)
}

// ScheduleIfNeeded advances the daily schedule: it either points the
// countdown at the next slot or generates today's flower as pending.
func (s *Service) ScheduleIfNeeded(ctx context.Context) (ScheduleResult, error) {
	s.refreshEnvironment(ctx)

	var (
		res  ScheduleResult
		p    *plan
		next *time.Time
	)
	err := s.do(ctx, func() error {
		s.validateAndFixState(ctx)
		now := s.clock.Now()

		switch {
		case s.st.pending != nil:
			res.Outcome = OutcomePending
			return nil
		case s.st.generating:
			res.Outcome = OutcomeBusy
			return nil
		case s.shownToday(now):
			t := s.nextSlot(now)
			res.Outcome, res.NextFlowerTime = OutcomeAlreadyShown, &t
			if s.slotChanged(t) {
				s.setNextFlowerTime(ctx, &t)
				s.syncWidget(ctx)
			}
			next = s.armDaily(t)
			return nil
		}

		if slot := s.slotFor(now); slot.After(now) {
			res.Outcome, res.NextFlowerTime = OutcomeScheduled, &slot
			if s.slotChanged(slot) {
				s.setNextFlowerTime(ctx, &slot)
				s.publish(events.ScheduleUpdated, nil, "", res)
				s.syncWidget(ctx)
			}
			next = s.armDaily(slot)
			return nil
		}

		s.st.generating = true
		planned := s.choosePlan(nil, now)
		p = &planned
		return nil
	})
	if err != nil {
		return res, err
	}
	if next != nil {
		s.scheduleNotification(ctx, domain.NotificationDailyReveal, *next, "")
	}
	if p == nil {
		return res, nil
	}

	f, errMsg := s.produce(ctx, *p)
	metrics.FlowerGenerated(string(ModeScheduled), errMsg != "")

	err = s.do(context.WithoutCancel(ctx), func() error {
		s.st.generating = false
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.storePending(ctx, f, errMsg)
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("store pending flower: %w", err)
	}

	s.notifier.Cancel(notificationDaily)
	s.scheduleNotification(ctx, domain.NotificationReminder, f.GeneratedDate.Add(s.cfg.ReminderDelay), f.Name)

	res.Outcome = OutcomeGenerated
	res.Flower = &f
	return res, nil
}

// storePending must run on the loop.
func (s *Service) storePending(ctx context.Context, f domain.Flower, errMsg string) {
	now := s.clock.Now()
	s.st.pending = &f
	s.st.hasUnrevealed = true
	s.st.errorMessage = errMsg
	s.st.lastScheduled = &now
	s.st.dailyArmed = nil
	s.savePending(ctx)
	s.setPref(ctx, keyLastScheduledDate, now)
	s.setNextFlowerTime(ctx, nil)

	s.publish(events.FlowerPending, &f, errMsg, nil)
	s.syncWidget(ctx)

	s.log.InfoContext(ctx, "flower pending reveal",
		slog.String("flower_id", f.ID.String()),
		slog.String("name", f.Name),
	)
}

// RevealPendingFlower moves the pending flower into the collection as the
// current flower and schedules the next slot.
func (s *Service) RevealPendingFlower(ctx context.Context) (domain.Flower, error) {
	var (
		revealed  domain.Flower
		next      *time.Time
		milestone int
	)
	err := s.do(ctx, func() error {
		if s.st.pending == nil {
			return domain.ErrNotFound
		}
		now := s.clock.Now()

		f := s.st.pending.Clone()
		f.MarkDiscovered(now)
		f = s.addToDiscovered(ctx, f)
		s.setCurrent(ctx, f.ID)

		s.st.pending = nil
		s.st.hasUnrevealed = false
		s.st.errorMessage = ""
		s.savePending(ctx)
		s.saveCollections(ctx)

		milestone = s.checkMilestone(ctx)

		slot := s.nextSlot(now)
		s.setNextFlowerTime(ctx, &slot)
		next = s.armDaily(slot)

		revealed = f.Clone()
		s.publish(events.FlowerRevealed, &f, "", nil)
		s.syncWidget(ctx)
		return nil
	})
	if err != nil {
		return domain.Flower{}, err
	}

	s.notifier.Cancel(notificationReminder)
	if next != nil {
		s.scheduleNotification(ctx, domain.NotificationDailyReveal, *next, "")
	}
	s.startMilestone(milestone)

	s.log.InfoContext(ctx, "flower revealed",
		slog.String("flower_id", revealed.ID.String()),
		slog.String("name", revealed.Name),
	)
	return revealed, nil
}

// scheduleNotification arms a notification with AI copy when available,
// local copy otherwise. Runs off the loop.
func (s *Service) scheduleNotification(ctx context.Context, kind domain.NotificationKind, at time.Time, flowerName string) {
	c := localCopy(kind, flowerName)
	if s.text != nil {
		dc := s.env.Snapshot()
		req := provider.CopyRequest{Kind: kind, FlowerName: flowerName}
		if dc.Placemark != nil {
			req.Location = dc.Placemark.DisplayName()
		}
		generated, err := s.text.NotificationCopy(ctx, req)
		switch {
		case err == nil:
			c = generated
		case !errors.Is(err, domain.ErrMissingAPIKey):
			s.log.WarnContext(ctx, "notification copy failed, using local copy", slog.String("error", err.Error()))
		}
	}

	id := notificationDaily
	if kind == domain.NotificationReminder {
		id = notificationReminder
	}
	if err := s.notifier.Schedule(ctx, domain.Notification{
		ID:     id,
		Kind:   kind,
		Title:  c.Title,
		Body:   c.Body,
		FireAt: at,
	}); err != nil {
		s.log.WarnContext(ctx, "schedule notification failed", slog.String("error", err.Error()))
	}
}

func localCopy(kind domain.NotificationKind, flowerName string) provider.Copy {
	if kind == domain.NotificationReminder {
		if flowerName == "" {
			flowerName = "Your flower"
		}
		return provider.Copy{
			Title: "Your flower is waiting",
			Body:  flowerName + " is still waiting to be revealed.",
		}
	}
	return provider.Copy{
		Title: "A new flower has bloomed",
		Body:  "Today's flower is ready to be discovered in your garden.",
	}
}
