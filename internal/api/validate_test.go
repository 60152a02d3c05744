package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrenko/contentgen/internal/common"
)

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"},
		},
		{
			name:    "missing username",
			req:     RegisterRequest{Email: "alice@example.com", Password: "secret1"},
			wantErr: "username is required",
		},
		{
			name:    "bad email",
			req:     RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"},
			wantErr: "email must be a valid email address",
		},
		{
			name:    "short password",
			req:     RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "abc"},
			wantErr: "password must be at least 6 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_GenerateRequest_EmptyPrompt(t *testing.T) {
	err := Validate(GenerateRequest{Language: "en", Tone: "creative"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "prompt is required")
}

func TestValidate_UpdateContentRequest_Status(t *testing.T) {
	err := Validate(UpdateContentRequest{Title: "t", Body: "b", Status: "archived"})
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "status must be one of")

	require.NoError(t, Validate(UpdateContentRequest{Title: "t", Body: "b", Status: StatusDraft}))
}

func TestValidate_BulkDeleteRequest(t *testing.T) {
	require.ErrorIs(t, Validate(BulkDeleteRequest{}), common.ErrValidation)
	require.NoError(t, Validate(BulkDeleteRequest{IDs: []int64{1, 2}}))
}
