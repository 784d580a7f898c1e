package service

import (
	"testing"

	"github.com/Kitan-Dara06/flashcard-generator-public/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthS_VerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		configured string
		candidate  string
		wantErr    error
	}{
		{
			name:       "clear text match",
			configured: "s3cret",
			candidate:  "s3cret",
		},
		{
			name:       "clear text mismatch",
			configured: "s3cret",
			candidate:  "guess",
			wantErr:    ErrWrongPassword,
		},
		{
			name:       "empty candidate against clear text",
			configured: "s3cret",
			candidate:  "",
			wantErr:    ErrWrongPassword,
		},
		{
			name:       "bcrypt hash match",
			configured: string(hash),
			candidate:  "s3cret",
		},
		{
			name:       "bcrypt hash mismatch",
			configured: string(hash),
			candidate:  "guess",
			wantErr:    ErrWrongPassword,
		},
		{
			name:      "not configured",
			candidate: "anything",
			wantErr:   ErrPasswordNotConfigured,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := NewAuthService(config.AuthConfig{Password: tt.configured}, zap.NewNop())

			err := a.VerifyPassword(tt.candidate)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
