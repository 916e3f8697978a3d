// Package events fans garden state changes out to subscribers such as the
// WebSocket stream and the widget projector.
package events

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type classifies a garden event.
type Type string

const (
	FlowerPending     Type = "flower.pending"
	FlowerRevealed    Type = "flower.revealed"
	FlowerGenerated   Type = "flower.generated"
	FlowerUpdated     Type = "flower.updated"
	FlowerRemoved     Type = "flower.removed"
	ScheduleUpdated   Type = "schedule.updated"
	MilestoneReached  Type = "milestone.reached"
	GiftPrepared      Type = "gift.prepared"
	GiftConfirmed     Type = "gift.confirmed"
	GiftCancelled     Type = "gift.cancelled"
	GiftImported      Type = "gift.imported"
	HerbariumChanged  Type = "herbarium.changed"
	CollectionChanged Type = "collection.changed"
	SyncCompleted     Type = "sync.completed"
	WidgetReload      Type = "widget.reload"
	Notification      Type = "notification"
	ProfileReset      Type = "profile.reset"
)

// Event is one state change. Data is JSON-encodable.
type Event struct {
	Type     Type       `json:"type"`
	At       time.Time  `json:"at"`
	FlowerID *uuid.UUID `json:"flowerId,omitempty"`
	Message  string     `json:"message,omitempty"`
	Data     any        `json:"data,omitempty"`
}

// Bus is an in-process publish/subscribe hub. Publish never blocks: a
// subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]chan Event
	nextID int
	log    *slog.Logger
}

// NewBus creates an empty Bus.
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subs: make(map[int]chan Event),
		log:  logger.With("component", "events"),
	}
}

// Subscribe registers a subscriber with the given buffer size. The returned
// cancel func unregisters it and closes the channel.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
}

// Publish delivers e to every subscriber. A zero At is stamped with now.
func (b *Bus) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			b.log.Warn("subscriber lagging, event dropped",
				slog.Int("subscriber", id),
				slog.String("type", string(e.Type)),
			)
		}
	}
}

// Subscribers returns the number of active subscribers.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
