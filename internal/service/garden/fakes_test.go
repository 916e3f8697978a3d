package garden

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

// ---------------------------------------------------------------------------
// In-memory collaborators
// ---------------------------------------------------------------------------

type memPrefs struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemPrefs() *memPrefs { return &memPrefs{values: make(map[string][]byte)} }

func (p *memPrefs) Get(_ context.Context, key string, dst any) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	raw, ok := p.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (p *memPrefs) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[key] = raw
	return nil
}

func (p *memPrefs) Delete(_ context.Context, keys ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, k := range keys {
		delete(p.values, k)
	}
	return nil
}

func (p *memPrefs) has(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.values[key]
	return ok
}

type memCollection struct {
	mu    sync.Mutex
	lists map[domain.Collection][]domain.Flower
	saves int
}

func newMemCollection() *memCollection {
	return &memCollection{lists: make(map[domain.Collection][]domain.Flower)}
}

func (c *memCollection) Load(_ context.Context, name domain.Collection) ([]domain.Flower, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.CloneFlowers(c.lists[name]), nil
}

func (c *memCollection) Save(_ context.Context, name domain.Collection, flowers []domain.Flower) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[name] = domain.CloneFlowers(flowers)
	c.saves++
	return nil
}

func (c *memCollection) Reset(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists = make(map[domain.Collection][]domain.Flower)
	return nil
}

func (c *memCollection) stored(name domain.Collection) []domain.Flower {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lists[name]
}

type fakeWidget struct {
	mu   sync.Mutex
	last domain.WidgetProjection
	n    int
}

func (w *fakeWidget) Publish(_ context.Context, p domain.WidgetProjection) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.last = p
	w.n++
	return nil
}

func (w *fakeWidget) latest() domain.WidgetProjection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

type fakeEnvironment struct{}

func (fakeEnvironment) EnsureFresh(context.Context) error { return nil }

func (fakeEnvironment) Snapshot() domain.DiscoveryContext {
	return domain.DiscoveryContext{
		Location:  &domain.Location{Latitude: 38.72, Longitude: -9.14},
		Placemark: &domain.Placemark{Locality: "Lisbon", Country: "Portugal", ISOCountryCode: "PT", Continent: domain.ContinentEurope},
		Weather:   &domain.WeatherSnapshot{Condition: "Sunny", Temperature: 24, Unit: domain.Celsius},
	}
}

type fakeCatalog struct {
	species []domain.Species
}

func (c *fakeCatalog) Len() int { return len(c.species) }

func (c *fakeCatalog) ByScientificName(name string) (domain.Species, bool) {
	for _, s := range c.species {
		if s.ScientificName == name {
			return s, true
		}
	}
	return domain.Species{}, false
}

func (c *fakeCatalog) Random(exclude map[string]struct{}) (domain.Species, bool) {
	for _, s := range c.species {
		if _, skip := exclude[s.ScientificName]; !skip {
			return s, true
		}
	}
	return domain.Species{}, false
}

func (c *fakeCatalog) Contextual(continent domain.Continent, _ domain.Season, exclude map[string]struct{}) (domain.Species, bool) {
	for _, s := range c.species {
		if _, skip := exclude[s.ScientificName]; !skip && s.GrowsOn(continent) {
			return s, true
		}
	}
	return domain.Species{}, false
}

func (c *fakeCatalog) Search(query string) []domain.Species {
	var out []domain.Species
	for _, s := range c.species {
		if strings.Contains(strings.ToLower(s.ScientificName), strings.ToLower(query)) {
			out = append(out, s)
		}
	}
	return out
}

type fakeRenderer struct{}

func (fakeRenderer) Render() ([]byte, error)               { return []byte("placeholder"), nil }
func (fakeRenderer) Thumbnail(data []byte) ([]byte, error) { return append([]byte("thumb:"), data...), nil }

type fakeNotifier struct {
	mu        sync.Mutex
	scheduled map[string]domain.Notification
	cancelled []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{scheduled: make(map[string]domain.Notification)}
}

func (n *fakeNotifier) Schedule(_ context.Context, note domain.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scheduled[note.ID] = note
	return nil
}

func (n *fakeNotifier) Cancel(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.scheduled, id)
	n.cancelled = append(n.cancelled, id)
}

func (n *fakeNotifier) CancelAll() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scheduled = make(map[string]domain.Notification)
}

func (n *fakeNotifier) get(id string) (domain.Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	note, ok := n.scheduled[id]
	return note, ok
}

type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(e events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) count(t events.Type) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, e := range b.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// fixedRand always draws 1 (or 0 for single-choice draws), so contextual
// flavour is never added.
type fixedRand struct{}

func (fixedRand) IntN(n int) int   { return 1 % n }
func (fixedRand) Float64() float64 { return 0.5 }

type fakeBackups struct {
	mu      sync.Mutex
	written [][]byte
	pruned  []int
}

func (b *fakeBackups) Write(_ time.Time, data []byte) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.written = append(b.written, data)
	return "backup.bouquet", nil
}

func (b *fakeBackups) Prune(keep int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pruned = append(b.pruned, keep)
	return 0, nil
}

type fakeCloud struct {
	mu      sync.Mutex
	remote  []domain.Flower
	pushed  []domain.Flower
	deleted bool

	// When set, a merge signals entered and waits for release before returning.
	entered chan struct{}
	release chan struct{}
}

func (c *fakeCloud) MergeRemoteIntoLocal(_ context.Context, local []domain.Flower) ([]domain.Flower, error) {
	c.mu.Lock()
	out := domain.CloneFlowers(local)
	seen := idSet(local)
	for _, r := range c.remote {
		if _, ok := seen[r.ID]; !ok {
			out = append(out, r.Clone())
		}
	}
	entered, release := c.entered, c.release
	c.mu.Unlock()

	if entered != nil {
		close(entered)
		<-release
	}
	return out, nil
}

func (c *fakeCloud) PushLocalToRemote(_ context.Context, flowers []domain.Flower) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pushed = domain.CloneFlowers(flowers)
	return nil
}

func (c *fakeCloud) Metadata(context.Context) (*domain.SyncMetadata, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &domain.SyncMetadata{FlowerCount: len(c.pushed), DeviceID: "device-test"}, nil
}

func (c *fakeCloud) DeleteRemote(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = true
	return nil
}

// ---------------------------------------------------------------------------
// Harness
// ---------------------------------------------------------------------------

var (
	errProvider = errors.New("provider unavailable")

	// day is a Tuesday with no holiday.
	day = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	roseSpecies = domain.Species{
		ScientificName: "Rosa gallica",
		CommonNames:    []string{"French Rose"},
		Family:         "Rosaceae",
		Continents:     []domain.Continent{domain.ContinentEurope},
		BloomingSeason: "Summer",
		Rarity:         domain.RarityCommon,
		ImagePrompt:    "deep pink gallica rose",
	}
	lilySpecies = domain.Species{
		ScientificName: "Lilium candidum",
		CommonNames:    []string{"Madonna Lily"},
		Family:         "Liliaceae",
		Continents:     []domain.Continent{domain.ContinentAsia},
		Rarity:         domain.RarityUncommon,
		ImagePrompt:    "white madonna lily",
	}
)

type harness struct {
	svc        *Service
	prefs      *memPrefs
	collection *memCollection
	widget     *fakeWidget
	images     *imageGeneratorMock
	text       *textGeneratorMock
	catalog    *fakeCatalog
	notifier   *fakeNotifier
	bus        *recordingBus
	clock      *fakeClock
	cloud      *fakeCloud
	backups    *fakeBackups
	revealAt   time.Duration
	logs       io.Writer
}

type harnessOption func(h *harness)

func withoutText() harnessOption { return func(h *harness) { h.text = nil } }

func withoutCloud() harnessOption { return func(h *harness) { h.cloud = nil } }

func withCatalog(species ...domain.Species) harnessOption {
	return func(h *harness) { h.catalog = &fakeCatalog{species: species} }
}

func withPrefs(p *memPrefs) harnessOption { return func(h *harness) { h.prefs = p } }

func withCollection(c *memCollection) harnessOption { return func(h *harness) { h.collection = c } }

func withRevealAt(d time.Duration) harnessOption { return func(h *harness) { h.revealAt = d } }

func withImages(m *imageGeneratorMock) harnessOption { return func(h *harness) { h.images = m } }

func withLogs(w io.Writer) harnessOption { return func(h *harness) { h.logs = w } }

// syncBuffer is a log sink shared with the loop goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func okImages() *imageGeneratorMock {
	return &imageGeneratorMock{
		GenerateImageFunc: func(ctx context.Context, req provider.ImageRequest) (provider.ImageResult, error) {
			return provider.ImageResult{Data: []byte("image:" + req.Descriptor), Prompt: req.Descriptor}, nil
		},
	}
}

func okText() *textGeneratorMock {
	return &textGeneratorMock{
		FlowerNameFunc: func(ctx context.Context, descriptor string) (string, error) {
			return "Invented Bloom", nil
		},
		FlowerDetailsFunc: func(ctx context.Context, req provider.DetailsRequest) (domain.FlowerDetails, error) {
			return domain.FlowerDetails{Meaning: "Joy", Description: "A bloom named " + req.Name}, nil
		},
		NotificationCopyFunc: func(ctx context.Context, req provider.CopyRequest) (provider.Copy, error) {
			return provider.Copy{Title: "AI title", Body: "AI body"}, nil
		},
	}
}

// newHarness builds and loads a garden at 10:00 on day, after the 08:00 slot.
func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()

	h := &harness{
		prefs:      newMemPrefs(),
		collection: newMemCollection(),
		widget:     &fakeWidget{},
		images:     okImages(),
		text:       okText(),
		catalog:    &fakeCatalog{species: []domain.Species{roseSpecies, lilySpecies}},
		notifier:   newFakeNotifier(),
		bus:        &recordingBus{},
		clock:      &fakeClock{now: day.Add(10 * time.Hour)},
		cloud:      &fakeCloud{},
		backups:    &fakeBackups{},
		revealAt:   8 * time.Hour,
		logs:       io.Discard,
	}
	for _, opt := range opts {
		opt(h)
	}

	var (
		text  textGenerator
		cloud cloudSync
	)
	if h.text != nil {
		text = h.text
	}
	if h.cloud != nil {
		cloud = h.cloud
	}

	logger := slog.New(slog.NewTextHandler(h.logs, nil))
	h.svc = NewService(logger, h.collection, h.prefs, h.widget, h.images, text, fakeEnvironment{},
		h.catalog, fakeRenderer{}, h.notifier, h.bus, cloud, h.backups, Config{
			RevealAt:      h.revealAt,
			Location:      time.UTC,
			ReminderDelay: 4 * time.Hour,
			DeviceID:      "device-test",
			DeviceName:    "Test Phone",
			OwnerName:     "Tester",
			AppVersion:    "test",
		})
	h.svc.clock = h.clock
	h.svc.rnd = fixedRand{}
	t.Cleanup(h.svc.Close)

	if err := h.svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return h
}

func seedFlowers(n int, at time.Time) []domain.Flower {
	out := make([]domain.Flower, n)
	for i := range out {
		out[i] = domain.NewFlower("Seed Flower", "seed", at.Add(-time.Duration(i+1)*time.Hour))
		out[i].MarkDiscovered(out[i].GeneratedDate)
	}
	return out
}
