package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtools-pro/backend/pkg/models"
)

func TestValidateAPIDefinition(t *testing.T) {
	sv, err := New()
	require.NoError(t, err)

	tests := []struct {
		name          string
		payload       any
		expectedError string
	}{
		{
			name: "valid definition",
			payload: models.APIDefinition{
				Name: "Orders API",
				Endpoints: []models.EndpointDef{
					{Method: "GET", Path: "/orders"},
				},
			},
		},
		{
			name: "empty endpoints list is allowed",
			payload: models.APIDefinition{
				Name:      "Orders API",
				Endpoints: []models.EndpointDef{},
			},
		},
		{
			name:          "missing name",
			payload:       map[string]any{"endpoints": []any{}},
			expectedError: "invalid API definition",
		},
		{
			name:          "empty name",
			payload:       map[string]any{"name": "", "endpoints": []any{}},
			expectedError: "invalid API definition",
		},
		{
			name:          "missing endpoints",
			payload:       map[string]any{"name": "Orders API"},
			expectedError: "invalid API definition",
		},
		{
			name: "endpoints with wrong type",
			payload: map[string]any{
				"name":      "Orders API",
				"endpoints": "not-a-list",
			},
			expectedError: "invalid API definition",
		},
		{
			name: "parameter without a name",
			payload: map[string]any{
				"name": "Orders API",
				"endpoints": []any{
					map[string]any{
						"method":     "GET",
						"path":       "/orders",
						"parameters": []any{map[string]any{"type": "string"}},
					},
				},
			},
			expectedError: "invalid API definition",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sv.ValidateAPIDefinition(tt.payload)

			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}
