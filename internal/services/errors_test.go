package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"validation", ValidationError("field %s is bad", "x"), KindValidation},
		{"auth", AuthError("Invalid token"), KindAuth},
		{"not found", NotFoundError("Template not found"), KindNotFound},
		{"conflict", ConflictError("Email already exists"), KindConflict},
		{"quota", QuotaError("limit reached"), KindQuota},
		{"upstream", UpstreamError("Failed to generate code", errors.New("502")), KindUpstream},
		{"internal", InternalError("boom", errors.New("db down")), KindInternal},
		{"plain error defaults to internal", errors.New("plain"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
		})
	}
}

func TestPublicMessage_HidesCauses(t *testing.T) {
	cause := errors.New("pq: connection refused on 10.0.0.3")
	err := InternalError("Failed to register user", cause)

	assert.Equal(t, "Failed to register user", PublicMessage(err))
	assert.NotContains(t, PublicMessage(err), "10.0.0.3")
	// The cause stays reachable for logs.
	assert.ErrorIs(t, err, cause)
}

func TestPublicMessage_UnclassifiedError(t *testing.T) {
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("raw failure")))
}

func TestValidationError_Formats(t *testing.T) {
	err := ValidationError("%s is required", "language")
	assert.EqualError(t, err, "language is required")
}

func TestQuotaLimitFor(t *testing.T) {
	svc := &QuotaService{limits: map[string]int{"free": 3, "pro": 0}}

	assert.Equal(t, 3, svc.limitFor("free"))
	assert.Equal(t, 0, svc.limitFor("pro"))
	// Unknown plans fall back to the free limit
	assert.Equal(t, 3, svc.limitFor("platinum"))
}
