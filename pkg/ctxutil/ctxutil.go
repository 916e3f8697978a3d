// Package ctxutil carries per-request identity through a context: the
// request id assigned at the edge and the device that authenticated.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type ctxKey int

const (
	deviceKey ctxKey = iota
	requestIDKey
)

// Device is the authenticated caller of a request.
type Device struct {
	ID   uuid.UUID
	Name string
}

// WithDevice stores the authenticated device in the context.
func WithDevice(ctx context.Context, d Device) context.Context {
	return context.WithValue(ctx, deviceKey, d)
}

// DeviceFromCtx returns the device stored by WithDevice. A device with a nil
// id counts as absent.
func DeviceFromCtx(ctx context.Context) (Device, bool) {
	d, ok := ctx.Value(deviceKey).(Device)
	if !ok || d.ID == uuid.Nil {
		return Device{}, false
	}
	return d, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LogAttrs returns request_id and, for authenticated requests, device_id.
func LogAttrs(ctx context.Context) []slog.Attr {
	attrs := []slog.Attr{slog.String("request_id", RequestIDFromCtx(ctx))}
	if d, ok := DeviceFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("device_id", d.ID.String()))
	}
	return attrs
}
