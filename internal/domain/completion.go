package domain

import (
	"context"
	"encoding/json"
)

// CompletionService is the external language-model boundary used for both
// flight discovery and day generation. Implementations live in the adapter
// layer; the orchestrator only sees this contract.
type CompletionService interface {
	// Complete sends a prompt to the completion service and returns its
	// response. When a response schema is supplied, the service is asked to
	// honor it, but callers must still tolerate raw text responses.
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// CompletionRequest describes one completion call.
type CompletionRequest struct {
	// Prompt is the full natural-language prompt
	Prompt string

	// Schema constrains the response shape when non-nil
	Schema *ResponseSchema

	// WebContext asks the service to ground the response in current web data
	WebContext bool
}

// CompletionResult is the tagged union of the two shapes a completion service
// can return: a schema-conformant JSON payload, or raw text that may contain
// explanatory prose around an embedded JSON blob. Never trust an untyped blob
// past this boundary; extraction turns raw text into structured JSON or an
// explicit parse failure.
type CompletionResult struct {
	structured json.RawMessage
	text       string
}

// StructuredResult wraps a schema-conformant JSON payload.
func StructuredResult(payload json.RawMessage) CompletionResult {
	return CompletionResult{structured: payload}
}

// TextResult wraps a raw text response.
func TextResult(text string) CompletionResult {
	return CompletionResult{text: text}
}

// IsStructured reports whether the result carries a structured JSON payload.
func (r CompletionResult) IsStructured() bool {
	return len(r.structured) > 0
}

// JSON returns the structured payload. Nil for raw text results.
func (r CompletionResult) JSON() json.RawMessage {
	return r.structured
}

// Text returns the raw text. Empty for structured results.
func (r CompletionResult) Text() string {
	return r.text
}

// Schema type names for ResponseSchema.
const (
	SchemaObject  = "object"
	SchemaArray   = "array"
	SchemaString  = "string"
	SchemaNumber  = "number"
	SchemaInteger = "integer"
	SchemaBoolean = "boolean"
)

// ResponseSchema is a minimal JSON-schema subtree used to constrain completion
// responses. Adapters translate it to their provider-native schema form.
type ResponseSchema struct {
	// Type is one of the Schema* constants
	Type string

	// Description hints the semantics of the value to the model
	Description string

	// Properties defines child schemas for object types
	Properties map[string]*ResponseSchema

	// Items defines the element schema for array types
	Items *ResponseSchema

	// Required lists mandatory property names for object types
	Required []string

	// Enum restricts string values to a fixed set
	Enum []string
}
