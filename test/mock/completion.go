// Package mock provides test doubles for the itinerary planning system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, scripted responses).
package mock

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// Completion is a configurable mock implementation of domain.CompletionService.
// Responses are consumed in order, one per call; when the script runs out the
// last response repeats. It supports configurable delays and errors for
// testing timeouts and per-day failure handling.
type Completion struct {
	responses []scriptedResponse
	delay     time.Duration
	prompts   []string
	callCount int
	mu        sync.Mutex
}

type scriptedResponse struct {
	result domain.CompletionResult
	err    error
}

// NewCompletion creates a new mock completion service.
// The service is configured using the builder pattern methods.
func NewCompletion() *Completion {
	return &Completion{}
}

// WithStructured appends a structured JSON response to the script.
func (c *Completion) WithStructured(payload string) *Completion {
	c.responses = append(c.responses, scriptedResponse{
		result: domain.StructuredResult(json.RawMessage(payload)),
	})
	return c
}

// WithText appends a raw text response to the script.
func (c *Completion) WithText(text string) *Completion {
	c.responses = append(c.responses, scriptedResponse{
		result: domain.TextResult(text),
	})
	return c
}

// WithError appends an error response to the script.
func (c *Completion) WithError(err error) *Completion {
	c.responses = append(c.responses, scriptedResponse{err: err})
	return c
}

// WithDelay configures the service to wait before each response.
// This is useful for testing timeout behavior.
func (c *Completion) WithDelay(d time.Duration) *Completion {
	c.delay = d
	return c
}

// Complete implements domain.CompletionService.Complete.
// It respects context cancellation, applies the configured delay,
// and returns the next scripted response.
func (c *Completion) Complete(ctx context.Context, req domain.CompletionRequest) (domain.CompletionResult, error) {
	c.mu.Lock()
	index := c.callCount
	c.callCount++
	c.prompts = append(c.prompts, req.Prompt)
	c.mu.Unlock()

	// Apply delay if configured
	if c.delay > 0 {
		select {
		case <-ctx.Done():
			return domain.CompletionResult{}, ctx.Err()
		case <-time.After(c.delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return domain.CompletionResult{}, ctx.Err()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.responses) == 0 {
		return domain.TextResult(""), nil
	}
	if index >= len(c.responses) {
		index = len(c.responses) - 1
	}

	resp := c.responses[index]
	if resp.err != nil {
		return domain.CompletionResult{}, resp.err
	}
	return resp.result, nil
}

// CallCount returns the number of times Complete was called.
func (c *Completion) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// Prompts returns a copy of every prompt received, in call order.
// This is useful for verifying digest and constraint wiring.
func (c *Completion) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.prompts))
	copy(out, c.prompts)
	return out
}

// Reset clears the call count and recorded prompts.
func (c *Completion) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callCount = 0
	c.prompts = nil
}

// Ensure Completion implements domain.CompletionService at compile time.
var _ domain.CompletionService = (*Completion)(nil)
