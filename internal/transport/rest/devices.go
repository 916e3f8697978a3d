package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/auth"
)

type deviceRegistrar interface {
	RegisterDevice(name string) (auth.Device, string, time.Time, error)
}

// DeviceHandler issues device tokens.
type DeviceHandler struct {
	tokens deviceRegistrar
	log    *slog.Logger
}

// NewDeviceHandler creates a DeviceHandler.
func NewDeviceHandler(tokens deviceRegistrar, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{tokens: tokens, log: logger.With("handler", "devices")}
}

type registerDeviceRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type deviceResponse struct {
	DeviceID  string    `json:"deviceId"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Register handles POST /api/v1/devices.
func (h *DeviceHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerDeviceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	device, token, expiresAt, err := h.tokens.RegisterDevice(req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "device registered",
		slog.String("device_id", device.ID.String()),
		slog.String("name", device.Name),
	)
	writeJSON(w, http.StatusCreated, deviceResponse{
		DeviceID:  device.ID.String(),
		Name:      device.Name,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
