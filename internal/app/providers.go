package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/florarium-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/florarium-backend/internal/adapter/provider/fal"
	"github.com/heartmarshall/florarium-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/florarium-backend/internal/adapter/provider/openmeteo"
	"github.com/heartmarshall/florarium-backend/internal/adapter/provider/placeholder"
	"github.com/heartmarshall/florarium-backend/internal/config"
	"github.com/heartmarshall/florarium-backend/internal/domain"
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

// newImageGenerator picks the image backend. A missing key falls back to
// the placeholder renderer so the garden keeps producing flowers offline.
func newImageGenerator(cfg config.GenerationConfig, renderer *placeholder.Renderer, logger *slog.Logger) imageGenerator {
	switch strings.ToLower(cfg.ImageProvider) {
	case "fal":
		if cfg.FALKey == "" {
			logger.Warn("fal key missing, using placeholder images")
			return renderer
		}
		return fal.NewProvider(cfg.FALKey, cfg.FALRequestsPerMinute, cfg.Timeout, logger)
	case "openai":
		if cfg.OpenAIKey == "" {
			logger.Warn("openai key missing, using placeholder images")
			return renderer
		}
		return openai.NewProvider(cfg.OpenAIKey, cfg.OpenAIModel, logger)
	default:
		return renderer
	}
}

// newTextGenerator returns nil when names and details should come from
// the built-in templates.
func newTextGenerator(cfg config.GenerationConfig, logger *slog.Logger) textGenerator {
	switch strings.ToLower(cfg.TextProvider) {
	case "openai":
		if cfg.OpenAIKey == "" {
			logger.Warn("openai key missing, using name templates")
			return nil
		}
		return openai.NewProvider(cfg.OpenAIKey, cfg.OpenAIModel, logger)
	case "anthropic":
		if cfg.AnthropicKey == "" {
			logger.Warn("anthropic key missing, using name templates")
			return nil
		}
		return anthropic.NewProvider(cfg.AnthropicKey, cfg.AnthropicModel, logger)
	default:
		return nil
	}
}

// newEnvironment reports discoveries from the configured place. With
// weather disabled, flowers carry no location or weather.
func newEnvironment(cfg config.WeatherConfig, logger *slog.Logger) *openmeteo.Environment {
	unit := domain.TemperatureUnit(strings.ToUpper(cfg.Unit))
	if !cfg.Enabled {
		return openmeteo.NewEnvironment(nil, unit, logger)
	}
	return openmeteo.NewEnvironment(&openmeteo.Place{
		Latitude:       cfg.Latitude,
		Longitude:      cfg.Longitude,
		Locality:       cfg.Locality,
		Country:        cfg.Country,
		ISOCountryCode: cfg.ISOCountryCode,
		Continent:      domain.Continent(cfg.Continent),
	}, unit, logger)
}

func describeProviders(img imageGenerator, text textGenerator) []any {
	return []any{
		slog.String("image_provider", fmt.Sprintf("%T", img)),
		slog.String("text_provider", fmt.Sprintf("%T", text)),
	}
}
