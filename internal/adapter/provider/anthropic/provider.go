package anthropic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/provider"
)

const defaultMaxTokens = 1024

// Provider generates flower text through Claude. It does not render images.
type Provider struct {
	client anthropic.Client
	model  string
	hasKey bool
	log    *slog.Logger
}

// NewProvider creates a Provider. Extra options (base URL, retries) are
// passed through to the SDK client.
func NewProvider(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) *Provider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Provider{
		client: anthropic.NewClient(opts...),
		model:  model,
		hasKey: apiKey != "",
		log:    logger.With("adapter", "anthropic"),
	}
}

// FlowerName asks for a short evocative name for descriptor.
func (p *Provider) FlowerName(ctx context.Context, descriptor string) (string, error) {
	text, err := p.complete(ctx, provider.NamePrompt(descriptor), 0.9)
	if err != nil {
		return "", err
	}
	name := provider.CleanName(text)
	if name == "" {
		return "", errors.New("anthropic: empty name")
	}
	return name, nil
}

// FlowerDetails generates the narrative detail fields.
func (p *Provider) FlowerDetails(ctx context.Context, req provider.DetailsRequest) (domain.FlowerDetails, error) {
	text, err := p.complete(ctx, provider.DetailsPrompt(req), 0.8)
	if err != nil {
		return domain.FlowerDetails{}, err
	}
	details, err := provider.ParseDetails(text)
	if err != nil {
		return domain.FlowerDetails{}, fmt.Errorf("anthropic: %w", err)
	}
	return details, nil
}

// NotificationCopy writes a notification title and body.
func (p *Provider) NotificationCopy(ctx context.Context, req provider.CopyRequest) (provider.Copy, error) {
	text, err := p.complete(ctx, provider.CopyPrompt(req), 0.7)
	if err != nil {
		return provider.Copy{}, err
	}
	c, err := provider.ParseCopy(text)
	if err != nil {
		return provider.Copy{}, fmt.Errorf("anthropic: %w", err)
	}
	return c, nil
}

func (p *Provider) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	if !p.hasKey {
		return "", domain.ErrMissingAPIKey
	}

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.model),
		MaxTokens:   defaultMaxTokens,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: provider.BotanistPersona},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "anthropic request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("anthropic: messages: %w", err)
	}
	if len(msg.Content) == 0 {
		return "", errors.New("anthropic: empty response")
	}

	p.log.DebugContext(ctx, "anthropic response",
		slog.String("model", p.model),
		slog.String("stop_reason", string(msg.StopReason)),
	)
	return msg.Content[0].Text, nil
}
