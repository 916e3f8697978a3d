package garden

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/botanical"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/metrics"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

// Mode decides where a generated flower goes.
type Mode string

const (
	// ModeScheduled stores the flower as pending reveal.
	ModeScheduled Mode = "scheduled"
	// ModeManual reveals the flower immediately.
	ModeManual Mode = "manual"
)

// GenerateRequest asks for one flower. A nil Descriptor lets the garden
// pick one from the calendar, the catalog or the stock list.
type GenerateRequest struct {
	Descriptor *string
	Mode       Mode
}

// Validate checks all fields and collects all errors.
func (r GenerateRequest) Validate() error {
	var errs []domain.FieldError
	if r.Mode != ModeScheduled && r.Mode != ModeManual {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be scheduled or manual"})
	}
	if r.Descriptor != nil && len(*r.Descriptor) > 500 {
		errs = append(errs, domain.FieldError{Field: "descriptor", Message: "max 500 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GenerateResult is the produced flower. ErrorMessage is set when a
// provider failed and placeholder content was used.
type GenerateResult struct {
	Flower       domain.Flower `json:"flower"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}

// plan is everything the pipeline needs, captured on the loop.
type plan struct {
	now        time.Time
	descriptor string
	species    *domain.Species
	dc         domain.DiscoveryContext
	bctx       botanical.Context

	contextual  bool
	contextText string

	bouquet        bool
	bouquetName    string
	bouquetFlowers []string
	holidayName    string
	message        string
	milestone      int
}

// refreshEnvironment updates cached weather outside the loop.
func (s *Service) refreshEnvironment(ctx context.Context) {
	if err := s.env.EnsureFresh(ctx); err != nil {
		s.log.WarnContext(ctx, "environment refresh failed", slog.String("error", err.Error()))
	}
}

// choosePlan picks what to generate. Priority: explicit descriptor, holiday
// bouquet, contextual species, random species, stock descriptor. Runs on
// the loop.
func (s *Service) choosePlan(descriptor *string, now time.Time) plan {
	dc := s.env.Snapshot()
	latitude := 0.0
	if dc.Location != nil {
		latitude = dc.Location.Latitude
	}
	p := plan{
		now:  now,
		dc:   dc,
		bctx: botanical.BuildContext(now, dc.Placemark, latitude, s.rnd),
	}

	if descriptor != nil {
		if d := strings.TrimSpace(*descriptor); d != "" {
			p.descriptor = d
			return p
		}
	}

	if h := p.bctx.Holiday; h != nil && h.BouquetWorthy && !s.hasHolidayBouquet(h.Name, now.Year()) {
		p.descriptor = h.BouquetTheme
		p.bouquet = true
		p.bouquetName = h.Name + " Bouquet"
		p.bouquetFlowers = h.BouquetFlowers
		p.holidayName = h.Name
		p.contextText = p.bctx.Meaning()
		return p
	}

	if s.catalog.Len() > 0 {
		if sp, ok := s.pickSpecies(p.bctx); ok {
			p.species = &sp
			p.descriptor = sp.ImagePrompt
			if p.descriptor == "" {
				p.descriptor = sp.PrimaryName()
			}
			if botanical.ShouldUseContext(s.rnd) {
				if d, ok := p.bctx.Decorate(p.descriptor, s.rnd); ok {
					p.descriptor, p.contextual, p.contextText = d, true, p.bctx.Meaning()
				}
			}
			return p
		}
	}

	p.descriptor = botanical.RandomDescriptor(s.rnd)
	if botanical.ShouldUseContext(s.rnd) {
		if d, ok := p.bctx.Descriptor(s.rnd); ok {
			p.descriptor, p.contextual, p.contextText = d, true, p.bctx.Meaning()
		}
	}
	return p
}

// pickSpecies prefers species not yet in the herbarium.
func (s *Service) pickSpecies(bctx botanical.Context) (domain.Species, bool) {
	exclude := make(map[string]struct{}, len(s.st.herbarium))
	for name := range s.st.herbarium {
		exclude[name] = struct{}{}
	}
	if bctx.Continent != "" {
		if sp, ok := s.catalog.Contextual(bctx.Continent, bctx.Season, exclude); ok {
			return sp, true
		}
	}
	if sp, ok := s.catalog.Random(exclude); ok {
		return sp, true
	}
	return s.catalog.Random(nil)
}

func (s *Service) hasHolidayBouquet(holiday string, year int) bool {
	match := func(f *domain.Flower) bool {
		return f.IsBouquet && f.HolidayName == holiday && f.GeneratedDate.Year() == year
	}
	if s.st.pending != nil && match(s.st.pending) {
		return true
	}
	for i := range s.st.discovered {
		if match(&s.st.discovered[i]) {
			return true
		}
	}
	return false
}

// produce runs the provider pipeline off the loop. It never fails: provider
// errors fall back to placeholder content and are reported in the message.
func (s *Service) produce(ctx context.Context, p plan) (domain.Flower, string) {
	var (
		errMsg   string
		data     []byte
		name     string
		imageOK  bool
		bouquet  = p.bouquet || p.milestone > 0
		imageReq = provider.ImageRequest{
			Descriptor:      p.descriptor,
			IsBouquet:       bouquet,
			BouquetFlowers:  p.bouquetFlowers,
			PersonalMessage: p.message,
		}
	)

	img, err := s.images.GenerateImage(ctx, imageReq)
	switch {
	case err == nil:
		data, imageOK = img.Data, true
	case errors.Is(err, domain.ErrMissingAPIKey):
		s.log.InfoContext(ctx, "image provider not configured, using placeholder")
	default:
		errMsg = fmt.Sprintf("Failed to generate flower: %v", err)
		s.log.WarnContext(ctx, "image generation failed, using placeholder", slog.String("error", err.Error()))
	}
	if !imageOK {
		if data, err = s.renderer.Render(); err != nil {
			s.log.ErrorContext(ctx, "placeholder render failed", slog.String("error", err.Error()))
		}
	}

	switch {
	case p.milestone > 0:
		name = domain.MilestoneBouquetName(p.milestone)
	case p.bouquet:
		name = p.bouquetName
	case !imageOK:
		name = botanical.RandomName(s.rnd)
	case p.species != nil:
		name = p.species.PrimaryName()
	default:
		name = s.inventName(ctx, p.descriptor)
	}

	f := domain.NewFlower(name, p.descriptor, p.now)
	f.ImageData = data
	if p.species != nil {
		f.ScientificName = p.species.ScientificName
		f.Botanical = p.species.BotanicalInfo()
	}
	f.IsBouquet = bouquet
	f.BouquetFlowers = p.bouquetFlowers
	f.HolidayName = p.holidayName
	f.ContextualGeneration = p.contextual
	f.GenerationContext = p.contextText
	if p.milestone > 0 {
		f.IsGiftable = false
	}
	f.StampDiscovery(p.now, p.dc)

	details := s.details(ctx, &f, p, imageOK)
	f.Details = &details
	return f, errMsg
}

func (s *Service) inventName(ctx context.Context, descriptor string) string {
	if s.text != nil {
		name, err := s.text.FlowerName(ctx, descriptor)
		if err == nil && name != "" {
			return name
		}
		if err != nil && !errors.Is(err, domain.ErrMissingAPIKey) {
			s.log.WarnContext(ctx, "name generation failed, deriving from descriptor", slog.String("error", err.Error()))
		}
	}
	if name := botanical.NameFromDescriptor(descriptor); name != "" {
		return name
	}
	return botanical.RandomName(s.rnd)
}

// details asks the text generator and falls back to templates. Providers
// are skipped entirely when the image already failed.
func (s *Service) details(ctx context.Context, f *domain.Flower, p plan, useProvider bool) domain.FlowerDetails {
	continent := p.bctx.Continent
	if continent == "" {
		continent = botanical.RandomContinent(s.rnd)
	}

	if useProvider && s.text != nil {
		req := provider.DetailsRequest{
			Name:           f.Name,
			Descriptor:     f.Descriptor,
			ScientificName: f.ScientificName,
			Season:         p.bctx.Season,
			Location:       f.Discovery.LocationName,
			Context:        p.contextText,
			IsBouquet:      f.IsBouquet,
			HolidayName:    f.HolidayName,
		}
		d, err := s.text.FlowerDetails(ctx, req)
		if err == nil {
			if d.Continent == "" {
				d.Continent = continent
			}
			return d
		}
		if !errors.Is(err, domain.ErrMissingAPIKey) {
			s.log.WarnContext(ctx, "details generation failed, using templates",
				slog.String("flower", f.Name),
				slog.String("error", err.Error()),
			)
		}
	}
	return botanical.TemplateDetails(f.Name, f.Descriptor, p.species, p.bctx.Season, continent)
}

// GenerateFlower produces one flower now. In manual mode it is revealed and
// added to the collection, in scheduled mode it becomes the pending flower.
func (s *Service) GenerateFlower(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return GenerateResult{}, err
	}
	s.refreshEnvironment(ctx)

	var p plan
	err := s.do(ctx, func() error {
		if s.st.generating {
			return fmt.Errorf("generation in progress: %w", domain.ErrConflict)
		}
		if req.Mode == ModeScheduled && s.st.pending != nil {
			return fmt.Errorf("a flower is already pending reveal: %w", domain.ErrConflict)
		}
		s.st.generating = true
		p = s.choosePlan(req.Descriptor, s.clock.Now())
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}

	f, errMsg := s.produce(ctx, p)
	metrics.FlowerGenerated(string(req.Mode), errMsg != "")

	var milestone int
	err = s.do(context.WithoutCancel(ctx), func() error {
		s.st.generating = false
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if req.Mode == ModeScheduled {
			s.storePending(ctx, f, errMsg)
			return nil
		}

		f.MarkDiscovered(s.clock.Now())
		f = s.addToDiscovered(ctx, f)
		s.setCurrent(ctx, f.ID)
		s.st.errorMessage = errMsg
		s.saveCollections(ctx)
		milestone = s.checkMilestone(ctx)

		s.publish(events.FlowerGenerated, &f, errMsg, nil)
		s.syncWidget(ctx)
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}

	if req.Mode == ModeScheduled {
		s.notifier.Cancel(notificationDaily)
		s.scheduleNotification(ctx, domain.NotificationReminder, f.GeneratedDate.Add(s.cfg.ReminderDelay), f.Name)
	}
	s.startMilestone(milestone)

	s.log.InfoContext(ctx, "flower generated",
		slog.String("flower_id", f.ID.String()),
		slog.String("name", f.Name),
		slog.String("mode", string(req.Mode)),
		slog.Bool("placeholder", errMsg != ""),
	)
	return GenerateResult{Flower: f.Clone(), ErrorMessage: errMsg}, nil
}
