package gemini

import (
	"google.golang.org/genai"

	"github.com/tripwise/itinerary-orchestration-service/internal/domain"
)

// toSchema translates the domain response-schema subtree into genai form.
func toSchema(s *domain.ResponseSchema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:        toSchemaType(s.Type),
		Description: s.Description,
		Required:    s.Required,
		Enum:        s.Enum,
		Items:       toSchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}

	return out
}

// toSchemaType maps the domain schema type names onto genai types.
// Unknown names map to string, the least constraining scalar.
func toSchemaType(t string) genai.Type {
	switch t {
	case domain.SchemaObject:
		return genai.TypeObject
	case domain.SchemaArray:
		return genai.TypeArray
	case domain.SchemaString:
		return genai.TypeString
	case domain.SchemaNumber:
		return genai.TypeNumber
	case domain.SchemaInteger:
		return genai.TypeInteger
	case domain.SchemaBoolean:
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
