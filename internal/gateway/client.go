// Package gateway is the single integration point with the Gemini API.
// It owns the prompts, the response schemas, and the repair and
// validation steps that turn raw model output into domain records.
// Nothing else in verdant talks to the model.
package gateway

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"verdant/internal/logging"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// generator is the narrow slice of the Gemini client the gateway needs.
// Tests substitute a canned implementation.
type generator interface {
	generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error)
}

// genaiGenerator backs generator with the real SDK client.
type genaiGenerator struct {
	client *genai.Client
}

func (g *genaiGenerator) generate(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Gateway performs all model-backed analyses. Safe for concurrent use.
type Gateway struct {
	gen   generator
	model string
	log   *zap.Logger
}

// New builds a Gateway talking to the Gemini API. The API key is
// required; model falls back to DefaultModel when empty.
func New(ctx context.Context, apiKey, model string) (*Gateway, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway: create client: %w", err)
	}

	return &Gateway{
		gen:   &genaiGenerator{client: client},
		model: model,
		log:   logging.Named(logging.CategoryGateway),
	}, nil
}

// noThinking disables the thinking budget. Every verdant call is a
// single-shot structured analysis where latency matters more than
// deliberation.
func noThinking() *genai.ThinkingConfig {
	return &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)}
}
