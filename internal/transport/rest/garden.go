package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/florarium-backend/internal/archive"
	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/service/garden"
	"github.com/heartmarshall/florarium-backend/pkg/ctxutil"
)

type gardenService interface {
	State(ctx context.Context) (garden.State, error)
	ScheduleIfNeeded(ctx context.Context) (garden.ScheduleResult, error)
	RevealPendingFlower(ctx context.Context) (domain.Flower, error)
	GenerateFlower(ctx context.Context, req garden.GenerateRequest) (garden.GenerateResult, error)

	Flowers(ctx context.Context) ([]domain.Flower, error)
	Flower(ctx context.Context, id uuid.UUID) (domain.Flower, error)
	DiscardFlower(ctx context.Context, id uuid.UUID) error
	ToggleFavorite(ctx context.Context, id uuid.UUID) (domain.Flower, error)
	UpdateDetails(ctx context.Context, id uuid.UUID, details domain.FlowerDetails) (domain.Flower, error)
	GenerateDetails(ctx context.Context, id uuid.UUID) (domain.Flower, error)
	Favorites(ctx context.Context) ([]domain.Flower, error)
	DeleteFavorite(ctx context.Context, id uuid.UUID) error

	PrepareGift(ctx context.Context, in garden.GiftInput) (domain.FlowerDocument, error)
	ConfirmGift(ctx context.Context, id uuid.UUID) error
	CancelGift(ctx context.Context, id uuid.UUID) (domain.Flower, error)
	ImportGift(ctx context.Context, data []byte) (domain.Flower, error)

	Herbarium(ctx context.Context) ([]garden.HerbariumEntry, error)
	AddToHerbarium(ctx context.Context, name string) error
	RemoveFromHerbarium(ctx context.Context, name string) error
	SearchSpecies(query string) []domain.Species

	Stats(ctx context.Context) (garden.Stats, error)
	ExportBackup(ctx context.Context) (domain.BackupDocument, error)
	ImportBackup(ctx context.Context, data []byte) (domain.MergeStats, error)
	SyncNow(ctx context.Context) (garden.SyncResult, error)
	SyncStatus(ctx context.Context) (domain.SyncStatus, error)
	DeleteRemoteData(ctx context.Context) error
	ResetProfile(ctx context.Context) error
}

// GardenHandler serves the garden REST endpoints.
type GardenHandler struct {
	svc       gardenService
	maxUpload int64
	log       *slog.Logger
}

// NewGardenHandler creates a GardenHandler. maxUpload bounds .flower and
// .bouquet uploads.
func NewGardenHandler(svc gardenService, maxUpload int64, logger *slog.Logger) *GardenHandler {
	if maxUpload <= 0 {
		maxUpload = 32 << 20
	}
	return &GardenHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "garden")}
}

type generateRequest struct {
	Descriptor *string `json:"descriptor" validate:"omitempty,max=500"`
	Mode       string  `json:"mode" validate:"omitempty,oneof=scheduled manual"`
}

type detailsRequest struct {
	Meaning          string `json:"meaning" validate:"required,max=2000"`
	Properties       string `json:"properties" validate:"max=2000"`
	Origins          string `json:"origins" validate:"max=2000"`
	Description      string `json:"description" validate:"required,max=5000"`
	ShortDescription string `json:"shortDescription" validate:"max=500"`
	Continent        string `json:"continent"`
}

type giftRequest struct {
	SenderName string `json:"senderName" validate:"max=100"`
}

// flowerView omits image bytes from list responses; clients fetch them
// from /flowers/{id}/image.
type flowerView struct {
	domain.Flower
	ImageData []byte `json:"imageData,omitempty"`
	HasImage  bool   `json:"hasImage"`
}

func viewOf(f domain.Flower, withImage bool) flowerView {
	v := flowerView{Flower: f, HasImage: len(f.ImageData) > 0}
	if withImage {
		v.ImageData = f.ImageData
	}
	return v
}

func viewsOf(flowers []domain.Flower) []flowerView {
	out := make([]flowerView, len(flowers))
	for i := range flowers {
		out[i] = viewOf(flowers[i], false)
	}
	return out
}

// State handles GET /api/v1/garden.
func (h *GardenHandler) State(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.State(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// CheckSchedule handles POST /api/v1/schedule/check.
func (h *GardenHandler) CheckSchedule(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ScheduleIfNeeded(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Reveal handles POST /api/v1/flowers/reveal.
func (h *GardenHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.RevealPendingFlower(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(f, true))
}

// Generate handles POST /api/v1/flowers/generate.
func (h *GardenHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	mode := garden.ModeManual
	if req.Mode != "" {
		mode = garden.Mode(req.Mode)
	}

	res, err := h.svc.GenerateFlower(r.Context(), garden.GenerateRequest{Descriptor: req.Descriptor, Mode: mode})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		Flower       flowerView `json:"flower"`
		ErrorMessage string     `json:"errorMessage,omitempty"`
	}{viewOf(res.Flower, mode == garden.ModeManual), res.ErrorMessage})
}

// ListFlowers handles GET /api/v1/flowers.
func (h *GardenHandler) ListFlowers(w http.ResponseWriter, r *http.Request) {
	flowers, err := h.svc.Flowers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsOf(flowers))
}

// GetFlower handles GET /api/v1/flowers/{id}.
func (h *GardenHandler) GetFlower(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	f, err := h.svc.Flower(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(f, r.URL.Query().Get("include") == "image"))
}

// FlowerImage handles GET /api/v1/flowers/{id}/image.
func (h *GardenHandler) FlowerImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	f, err := h.svc.Flower(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if len(f.ImageData) == 0 {
		handleError(w, r, h.log, domain.ErrNotFound)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(f.ImageData))
	w.Header().Set("Cache-Control", "private, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(f.ImageData) //nolint:errcheck
}

// DiscardFlower handles DELETE /api/v1/flowers/{id}.
func (h *GardenHandler) DiscardFlower(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		return nil, h.svc.DiscardFlower(ctx, id)
	})
}

// ToggleFavorite handles POST /api/v1/flowers/{id}/favorite.
func (h *GardenHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		f, err := h.svc.ToggleFavorite(ctx, id)
		return viewOf(f, false), err
	})
}

// GenerateDetails handles POST /api/v1/flowers/{id}/details.
func (h *GardenHandler) GenerateDetails(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		f, err := h.svc.GenerateDetails(ctx, id)
		return viewOf(f, false), err
	})
}

// UpdateDetails handles PUT /api/v1/flowers/{id}/details.
func (h *GardenHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req detailsRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		f, err := h.svc.UpdateDetails(ctx, id, domain.FlowerDetails{
			Meaning:          req.Meaning,
			Properties:       req.Properties,
			Origins:          req.Origins,
			Description:      req.Description,
			ShortDescription: req.ShortDescription,
			Continent:        domain.Continent(req.Continent),
		})
		return viewOf(f, false), err
	})
}

// ListFavorites handles GET /api/v1/favorites.
func (h *GardenHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	flowers, err := h.svc.Favorites(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsOf(flowers))
}

// DeleteFavorite handles DELETE /api/v1/favorites/{id}.
func (h *GardenHandler) DeleteFavorite(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		return nil, h.svc.DeleteFavorite(ctx, id)
	})
}

// PrepareGift handles POST /api/v1/flowers/{id}/gift. The response is the
// .flower document as an attachment.
func (h *GardenHandler) PrepareGift(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req giftRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ctx := r.Context()
	in := garden.GiftInput{FlowerID: id, SenderName: strings.TrimSpace(req.SenderName)}
	if device, ok := ctxutil.DeviceFromCtx(ctx); ok {
		if in.SenderName == "" {
			in.SenderName = device.Name
		}
		in.DeviceID = device.ID.String()
	}

	doc, err := h.svc.PrepareGift(ctx, in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	data, err := archive.EncodeFlowerDocument(doc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeAttachment(w, http.StatusCreated, doc.FileName(), data)
}

// ConfirmGift handles POST /api/v1/gifts/{id}/confirm.
func (h *GardenHandler) ConfirmGift(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		return nil, h.svc.ConfirmGift(ctx, id)
	})
}

// CancelGift handles POST /api/v1/gifts/{id}/cancel.
func (h *GardenHandler) CancelGift(w http.ResponseWriter, r *http.Request) {
	h.withID(w, r, func(ctx context.Context, id uuid.UUID) (any, error) {
		f, err := h.svc.CancelGift(ctx, id)
		return viewOf(f, false), err
	})
}

// ImportGift handles POST /api/v1/gifts/import with a raw .flower body.
func (h *GardenHandler) ImportGift(w http.ResponseWriter, r *http.Request) {
	data, err := h.readUpload(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	f, err := h.svc.ImportGift(r.Context(), data)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(f, false))
}

// Herbarium handles GET /api/v1/herbarium.
func (h *GardenHandler) Herbarium(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Herbarium(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// AddToHerbarium handles PUT /api/v1/herbarium/{name}.
func (h *GardenHandler) AddToHerbarium(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.AddToHerbarium(r.Context(), r.PathValue("name")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFromHerbarium handles DELETE /api/v1/herbarium/{name}.
func (h *GardenHandler) RemoveFromHerbarium(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveFromHerbarium(r.Context(), r.PathValue("name")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SearchSpecies handles GET /api/v1/species?q=.
func (h *GardenHandler) SearchSpecies(w http.ResponseWriter, r *http.Request) {
	found := h.svc.SearchSpecies(r.URL.Query().Get("q"))
	if found == nil {
		found = []domain.Species{}
	}
	writeJSON(w, http.StatusOK, found)
}

// Stats handles GET /api/v1/stats.
func (h *GardenHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// ExportBackup handles GET /api/v1/backup.
func (h *GardenHandler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.ExportBackup(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	data, err := archive.EncodeBackup(doc)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeAttachment(w, http.StatusOK, domain.BackupFileName(time.Now()), data)
}

// RestoreBackup handles POST /api/v1/backup/restore with a raw .bouquet body.
func (h *GardenHandler) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	data, err := h.readUpload(w, r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	stats, err := h.svc.ImportBackup(r.Context(), data)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// SyncStatus handles GET /api/v1/sync.
func (h *GardenHandler) SyncStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.SyncStatus(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// SyncNow handles POST /api/v1/sync.
func (h *GardenHandler) SyncNow(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.SyncNow(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// DeleteRemote handles DELETE /api/v1/sync.
func (h *GardenHandler) DeleteRemote(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteRemoteData(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetProfile handles POST /api/v1/profile/reset.
func (h *GardenHandler) ResetProfile(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetProfile(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.log.WarnContext(r.Context(), "profile reset requested")
	w.WriteHeader(http.StatusNoContent)
}

// withID parses {id}, runs fn and writes its result, or 204 when it
// returns nil.
func (h *GardenHandler) withID(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (any, error)) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	out, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if out == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *GardenHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUpload))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewValidationError("body", "document too large")
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("body", "required")
	}
	return data, nil
}

func writeAttachment(w http.ResponseWriter, status int, name string, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck
}
