// Package garden owns the flower collection. All mutable state lives in a
// single goroutine; public methods submit closures to it and wait.
package garden

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/botanical"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

type imageGenerator interface {
	GenerateImage(ctx context.Context, req provider.ImageRequest) (provider.ImageResult, error)
}

type textGenerator interface {
	FlowerName(ctx context.Context, descriptor string) (string, error)
	FlowerDetails(ctx context.Context, req provider.DetailsRequest) (domain.FlowerDetails, error)
	NotificationCopy(ctx context.Context, req provider.CopyRequest) (provider.Copy, error)
}

type environment interface {
	EnsureFresh(ctx context.Context) error
	Snapshot() domain.DiscoveryContext
}

type cloudSync interface {
	MergeRemoteIntoLocal(ctx context.Context, local []domain.Flower) ([]domain.Flower, error)
	PushLocalToRemote(ctx context.Context, flowers []domain.Flower) error
	Metadata(ctx context.Context) (*domain.SyncMetadata, error)
	DeleteRemote(ctx context.Context) error
}

type notifier interface {
	Schedule(ctx context.Context, n domain.Notification) error
	Cancel(id string)
	CancelAll()
}

type widgetStore interface {
	Publish(ctx context.Context, p domain.WidgetProjection) error
}

type preferences interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, keys ...string) error
}

type collectionStore interface {
	Load(ctx context.Context, c domain.Collection) ([]domain.Flower, error)
	Save(ctx context.Context, c domain.Collection, flowers []domain.Flower) error
	Reset(ctx context.Context) error
}

type catalog interface {
	Len() int
	ByScientificName(name string) (domain.Species, bool)
	Random(exclude map[string]struct{}) (domain.Species, bool)
	Contextual(continent domain.Continent, season domain.Season, exclude map[string]struct{}) (domain.Species, bool)
	Search(query string) []domain.Species
}

type renderer interface {
	Render() ([]byte, error)
	Thumbnail(data []byte) ([]byte, error)
}

type backupWriter interface {
	Write(t time.Time, data []byte) (string, error)
	Prune(keep int) (int, error)
}

type publisher interface {
	Publish(e events.Event)
}

type clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config tunes scheduling and identifies this device in exported documents.
type Config struct {
	// RevealAt is the daily slot as an offset from local midnight. Zero
	// means midnight.
	RevealAt time.Duration
	// Jitter spreads the slot over a window after RevealAt. The offset is
	// stable for a given day.
	Jitter        time.Duration
	Location      *time.Location
	ReminderDelay time.Duration
	BackupKeep    int

	DeviceID   string
	DeviceName string
	OwnerName  string
	AppVersion string
}

func (c Config) withDefaults() Config {
	if c.Location == nil {
		c.Location = time.Local
	}
	if c.ReminderDelay <= 0 {
		c.ReminderDelay = 4 * time.Hour
	}
	if c.BackupKeep <= 0 {
		c.BackupKeep = 5
	}
	return c
}

// state is only touched from the loop goroutine.
type state struct {
	discovered []domain.Flower
	favorites  []domain.Flower

	pending        *domain.Flower
	hasUnrevealed  bool
	nextFlowerTime *time.Time
	lastScheduled  *time.Time
	currentID      *uuid.UUID

	generating   bool
	errorMessage string

	// dailyArmed is the slot the daily notification is armed for in this
	// process. Not persisted, so a restart re-arms it.
	dailyArmed *time.Time

	lastMilestone  int
	herbarium      map[string]struct{}
	seenTransfers  map[uuid.UUID]struct{}
	lastAutoBackup *time.Time
	lastCloudSync  *time.Time

	thumbnails map[uuid.UUID][]byte
}

func newState() state {
	return state{
		herbarium:     make(map[string]struct{}),
		seenTransfers: make(map[uuid.UUID]struct{}),
		thumbnails:    make(map[uuid.UUID][]byte),
	}
}

// Service is the garden actor.
type Service struct {
	collection collectionStore
	prefs      preferences
	widget     widgetStore
	images     imageGenerator
	text       textGenerator
	env        environment
	catalog    catalog
	renderer   renderer
	notifier   notifier
	bus        publisher
	sync       cloudSync
	backups    backupWriter
	cfg        Config

	clock clock
	rnd   botanical.Rand
	log   *slog.Logger

	st state

	cmds      chan func()
	done      chan struct{}
	closeOnce sync.Once

	bgCtx    context.Context
	bgCancel context.CancelFunc
	bg       sync.WaitGroup
}

// NewService creates the garden and starts its loop. text, sync and backups
// may be nil: names and details then come from templates, cloud sync is
// disabled and automatic backups are skipped. Call Load before serving.
func NewService(
	log *slog.Logger,
	collection collectionStore,
	prefs preferences,
	widget widgetStore,
	images imageGenerator,
	text textGenerator,
	env environment,
	species catalog,
	renderer renderer,
	notifier notifier,
	bus publisher,
	cloud cloudSync,
	backups backupWriter,
	cfg Config,
) *Service {
	s := &Service{
		collection: collection,
		prefs:      prefs,
		widget:     widget,
		images:     images,
		text:       text,
		env:        env,
		catalog:    species,
		renderer:   renderer,
		notifier:   notifier,
		bus:        bus,
		sync:       cloud,
		backups:    backups,
		cfg:        cfg.withDefaults(),
		clock:      systemClock{},
		rnd:        botanical.DefaultRand,
		log:        log.With("service", "garden"),
		st:         newState(),
		cmds:       make(chan func()),
		done:       make(chan struct{}),
	}
	s.bgCtx, s.bgCancel = context.WithCancel(context.Background())
	go s.loop()
	return s
}

func (s *Service) loop() {
	for {
		select {
		case fn := <-s.cmds:
			fn()
		case <-s.done:
			return
		}
	}
}

// do runs fn on the loop goroutine and returns its error.
func (s *Service) do(ctx context.Context, fn func() error) error {
	errc := make(chan error, 1)
	select {
	case s.cmds <- func() { errc <- fn() }:
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		return domain.ErrClosed
	}

	select {
	case err := <-errc:
		return err
	case <-s.done:
		return domain.ErrClosed
	}
}

// spawn runs fn in the background until Close.
func (s *Service) spawn(name string, fn func(ctx context.Context)) {
	select {
	case <-s.done:
		return
	default:
	}
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("background task panicked", slog.String("task", name), slog.Any("panic", r))
			}
		}()
		fn(s.bgCtx)
	}()
}

// Wait blocks until background work started so far has finished.
func (s *Service) Wait() {
	s.bg.Wait()
}

// Ping reports whether the loop is serving commands.
func (s *Service) Ping(ctx context.Context) error {
	return s.do(ctx, func() error { return nil })
}

// Close cancels background work and stops the loop.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		s.bgCancel()
		s.bg.Wait()
		close(s.done)
	})
}

func (s *Service) publish(t events.Type, f *domain.Flower, msg string, data any) {
	e := events.Event{Type: t, At: s.clock.Now(), Message: msg, Data: data}
	if f != nil {
		id := f.ID
		e.FlowerID = &id
	}
	s.bus.Publish(e)
}
