package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

const (
	defaultEndpoint = "https://fal.run/fal-ai/flux/schnell"
	maxImageBytes   = 20 << 20
	maxRetries      = 2
)

// Provider renders flower images with the FAL flux/schnell model.
type Provider struct {
	apiKey       string
	endpoint     string
	httpClient   *http.Client
	limiter      *rate.Limiter
	retryBackoff time.Duration
	log          *slog.Logger
}

// NewProvider creates a Provider with the default FAL endpoint.
// requestsPerMinute <= 0 disables client-side rate limiting.
func NewProvider(apiKey string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Provider {
	return newProvider(apiKey, defaultEndpoint, requestsPerMinute, timeout, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint (for testing).
func NewProviderWithURL(apiKey, endpoint string, logger *slog.Logger) *Provider {
	p := newProvider(apiKey, endpoint, 0, 10*time.Second, logger)
	p.retryBackoff = 10 * time.Millisecond
	return p
}

func newProvider(apiKey, endpoint string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Provider {
	limit := rate.Inf
	if requestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(requestsPerMinute))
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Provider{
		apiKey:       apiKey,
		endpoint:     endpoint,
		httpClient:   &http.Client{Timeout: timeout},
		limiter:      rate.NewLimiter(limit, 1),
		retryBackoff: 500 * time.Millisecond,
		log:          logger.With("adapter", "fal"),
	}
}

type generateRequest struct {
	Prompt              string  `json:"prompt"`
	ImageSize           string  `json:"image_size"`
	NumImages           int     `json:"num_images"`
	NumInferenceSteps   int     `json:"num_inference_steps"`
	GuidanceScale       float64 `json:"guidance_scale"`
	EnableSafetyChecker bool    `json:"enable_safety_checker"`
}

// GenerateImage requests one image and downloads it.
func (p *Provider) GenerateImage(ctx context.Context, req provider.ImageRequest) (provider.ImageResult, error) {
	if p.apiKey == "" {
		return provider.ImageResult{}, domain.ErrMissingAPIKey
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return provider.ImageResult{}, fmt.Errorf("fal: rate limit: %w", err)
	}

	prompt := provider.ImagePrompt(req)
	body, err := json.Marshal(generateRequest{
		Prompt:              prompt,
		ImageSize:           "square_hd",
		NumImages:           1,
		NumInferenceSteps:   4,
		GuidanceScale:       3.5,
		EnableSafetyChecker: true,
	})
	if err != nil {
		return provider.ImageResult{}, fmt.Errorf("fal: marshal request: %w", err)
	}

	p.log.DebugContext(ctx, "fal request", slog.String("descriptor", req.Descriptor), slog.Bool("bouquet", req.IsBouquet))

	respBody, err := p.doWithRetry(ctx, "generate", func() (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		r.Header.Set("Authorization", "Key "+p.apiKey)
		r.Header.Set("Content-Type", "application/json")
		return r, nil
	})
	if err != nil {
		p.log.ErrorContext(ctx, "fal request failed", slog.String("error", err.Error()))
		return provider.ImageResult{}, fmt.Errorf("fal: generate: %w", err)
	}

	imageURL := gjson.GetBytes(respBody, "images.0.url").String()
	if imageURL == "" {
		return provider.ImageResult{}, errors.New("fal: no image url in response")
	}

	data, err := p.doWithRetry(ctx, "download", func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	})
	if err != nil {
		return provider.ImageResult{}, fmt.Errorf("fal: download image: %w", err)
	}
	if len(data) == 0 {
		return provider.ImageResult{}, errors.New("fal: empty image")
	}

	p.log.DebugContext(ctx, "fal response", slog.Int("bytes", len(data)))
	return provider.ImageResult{Data: data, Prompt: prompt}, nil
}

// doWithRetry retries network errors and 5xx responses with exponential
// backoff. Any other non-200 status is permanent.
func (p *Provider) doWithRetry(ctx context.Context, op string, newReq func() (*http.Request, error)) ([]byte, error) {
	var out []byte

	attempt := func() error {
		req, err := newReq()
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := p.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			msg := gjson.GetBytes(readLimited(resp.Body, 4096), "detail").String()
			return backoff.Permanent(fmt.Errorf("status %d: %s", resp.StatusCode, msg))
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
		if err != nil {
			return err
		}
		out = data
		return nil
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.retryBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, maxRetries), ctx)

	notify := func(err error, wait time.Duration) {
		p.log.WarnContext(ctx, "fal retry",
			slog.String("op", op),
			slog.String("reason", err.Error()),
			slog.Duration("wait", wait),
		)
	}
	if err := backoff.RetryNotify(attempt, policy, notify); err != nil {
		return nil, err
	}
	return out, nil
}

func readLimited(r io.Reader, n int64) []byte {
	b, _ := io.ReadAll(io.LimitReader(r, n))
	return b
}
