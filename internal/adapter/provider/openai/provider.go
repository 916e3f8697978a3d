package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

const (
	defaultModel      = "gpt-4o-mini"
	nameTemperature   = 0.9
	detailTemperature = 0.8
	copyTemperature   = 0.7
)

// Provider generates flower names, details, notification copy and
// (optionally) DALL·E images through the OpenAI API.
type Provider struct {
	client *goopenai.Client
	model  string
	hasKey bool
	log    *slog.Logger
}

// NewProvider creates a Provider against the public OpenAI API.
// An empty apiKey yields a provider whose calls fail with domain.ErrMissingAPIKey.
func NewProvider(apiKey, model string, logger *slog.Logger) *Provider {
	return newProvider(goopenai.DefaultConfig(apiKey), apiKey != "", model, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(apiKey, model, baseURL string, logger *slog.Logger) *Provider {
	cfg := goopenai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return newProvider(cfg, apiKey != "", model, logger)
}

func newProvider(cfg goopenai.ClientConfig, hasKey bool, model string, logger *slog.Logger) *Provider {
	if model == "" {
		model = defaultModel
	}
	return &Provider{
		client: goopenai.NewClientWithConfig(cfg),
		model:  model,
		hasKey: hasKey,
		log:    logger.With("adapter", "openai"),
	}
}

// FlowerName asks for a short evocative name for descriptor.
func (p *Provider) FlowerName(ctx context.Context, descriptor string) (string, error) {
	text, err := p.chat(ctx, provider.NamePrompt(descriptor), nameTemperature, false)
	if err != nil {
		return "", err
	}
	name := provider.CleanName(text)
	if name == "" {
		return "", fmt.Errorf("openai: empty name")
	}
	return name, nil
}

// FlowerDetails generates the narrative detail fields.
func (p *Provider) FlowerDetails(ctx context.Context, req provider.DetailsRequest) (domain.FlowerDetails, error) {
	text, err := p.chat(ctx, provider.DetailsPrompt(req), detailTemperature, true)
	if err != nil {
		return domain.FlowerDetails{}, err
	}
	details, err := provider.ParseDetails(text)
	if err != nil {
		return domain.FlowerDetails{}, fmt.Errorf("openai: %w", err)
	}
	return details, nil
}

// NotificationCopy writes a notification title and body.
func (p *Provider) NotificationCopy(ctx context.Context, req provider.CopyRequest) (provider.Copy, error) {
	text, err := p.chat(ctx, provider.CopyPrompt(req), copyTemperature, true)
	if err != nil {
		return provider.Copy{}, err
	}
	c, err := provider.ParseCopy(text)
	if err != nil {
		return provider.Copy{}, fmt.Errorf("openai: %w", err)
	}
	return c, nil
}

// GenerateImage renders one image with dall-e-3.
func (p *Provider) GenerateImage(ctx context.Context, req provider.ImageRequest) (provider.ImageResult, error) {
	if !p.hasKey {
		return provider.ImageResult{}, domain.ErrMissingAPIKey
	}

	prompt := provider.ImagePrompt(req)
	p.log.DebugContext(ctx, "openai image request", slog.String("descriptor", req.Descriptor))

	resp, err := p.client.CreateImage(ctx, goopenai.ImageRequest{
		Prompt:         prompt,
		Model:          goopenai.CreateImageModelDallE3,
		N:              1,
		Size:           goopenai.CreateImageSize1024x1024,
		ResponseFormat: goopenai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return provider.ImageResult{}, fmt.Errorf("openai: create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return provider.ImageResult{}, errors.New("openai: no image in response")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return provider.ImageResult{}, fmt.Errorf("openai: decode image: %w", err)
	}
	return provider.ImageResult{Data: data, Prompt: prompt}, nil
}

func (p *Provider) chat(ctx context.Context, prompt string, temperature float32, jsonMode bool) (string, error) {
	if !p.hasKey {
		return "", domain.ErrMissingAPIKey
	}

	req := goopenai.ChatCompletionRequest{
		Model: p.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: provider.BotanistPersona},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	}
	if jsonMode {
		req.ResponseFormat = &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		p.log.ErrorContext(ctx, "openai request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: no choices in response")
	}

	p.log.DebugContext(ctx, "openai response",
		slog.String("model", p.model),
		slog.String("finish_reason", string(resp.Choices[0].FinishReason)),
	)
	return resp.Choices[0].Message.Content, nil
}
