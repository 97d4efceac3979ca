// Package validation checks structured request payloads against JSON
// schemas before any prompt building or document synthesis happens.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const apiDefinitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "endpoints"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "baseURL": {"type": "string"},
    "auth": {"type": "string"},
    "endpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "method": {"type": "string"},
          "path": {"type": "string"},
          "description": {"type": "string"},
          "auth": {"type": "string"},
          "parameters": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "required": {"type": "boolean"},
                "description": {"type": "string"}
              }
            }
          },
          "response": {"type": "object"}
        }
      }
    }
  }
}`

type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

// New compiles the embedded schemas. Compilation failure means a
// programming error, so callers treat it as fatal at startup.
func New() (*SchemaValidator, error) {
	sources := map[string]string{
		"api-definition": apiDefinitionSchema,
	}

	sv := &SchemaValidator{schemas: make(map[string]*gojsonschema.Schema, len(sources))}
	for name, source := range sources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		sv.schemas[name] = schema
	}

	return sv, nil
}

// ValidateAPIDefinition validates a decoded API-definition payload and
// returns one combined error for every violation found.
func (sv *SchemaValidator) ValidateAPIDefinition(payload any) error {
	result, err := sv.schemas["api-definition"].Validate(gojsonschema.NewGoLoader(payload))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	return fmt.Errorf("invalid API definition: %s", strings.Join(messages, "; "))
}
