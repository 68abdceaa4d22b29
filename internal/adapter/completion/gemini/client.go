// Package gemini adapts the Google Gemini API to the domain CompletionService
// contract. It is the only package that knows about genai types; everything
// above it speaks CompletionRequest/CompletionResult.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// DefaultTemperature balances variety in itineraries against schema discipline.
const DefaultTemperature float32 = 0.7

// DefaultMaxOutputTokens bounds a single day-plan or flight response.
const DefaultMaxOutputTokens int32 = 16384

// Config contains configuration options for the Gemini client.
type Config struct {
	// APIKey authenticates against the Gemini API (required)
	APIKey string

	// Model is the model name (default: DefaultModel)
	Model string

	// Temperature overrides the sampling temperature when > 0
	Temperature float32

	// MaxOutputTokens overrides the response token cap when > 0
	MaxOutputTokens int32

	// Logger receives request/response diagnostics
	Logger *zerolog.Logger
}

// Client implements domain.CompletionService against the Gemini API.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
	log         zerolog.Logger
}

// NewClient creates a Gemini-backed completion service.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	temperature := cfg.Temperature
	if temperature <= 0 {
		temperature = DefaultTemperature
	}
	maxTokens := cfg.MaxOutputTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxOutputTokens
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &Client{
		client:      client,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		log:         log,
	}, nil
}

// Complete implements domain.CompletionService.Complete.
//
// When a response schema is supplied the call runs in JSON mode; search
// grounding is only attached for schemaless calls because the API rejects
// structured output combined with tools.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](c.temperature),
		MaxOutputTokens: c.maxTokens,
	}

	structured := req.Schema != nil
	if structured {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = toSchema(req.Schema)
	} else if req.WebContext {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	c.log.Debug().
		Str("model", c.model).
		Bool("structured", structured).
		Int("prompt_len", len(req.Prompt)).
		Msg("Sending completion request")

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return domain.CompletionResult{}, domain.NewRetryableCompletionError("generate_content", err)
	}

	return shapeResult(result.Text(), structured)
}

// shapeResult converts the raw response text into the domain result form.
// JSON-mode responses that are not valid JSON degrade to raw text so the
// caller's tolerant extraction still gets a chance at them.
func shapeResult(text string, structured bool) (domain.CompletionResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.CompletionResult{},
			domain.NewRetryableCompletionError("generate_content", domain.ErrCompletionUnavailable)
	}

	if structured && json.Valid([]byte(trimmed)) {
		return domain.StructuredResult(json.RawMessage(trimmed)), nil
	}
	return domain.TextResult(text), nil
}

// Ensure Client implements CompletionService at compile time.
var _ domain.CompletionService = (*Client)(nil)
