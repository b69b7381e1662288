package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("test-signing-key")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(key, "session-1", "desk/1.0", time.Now(), time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token, "desk/1.0")
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.Subject)
}

func TestParseToken(t *testing.T) {
	valid, err := GenerateToken(key, "session-1", "desk/1.0", time.Now(), time.Hour)
	require.NoError(t, err)
	expired, err := GenerateToken(key, "session-1", "desk/1.0", time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name      string
		key       []byte
		token     string
		userAgent string
		wantErr   error
	}{
		{name: "wrong key", key: []byte("other"), token: valid, userAgent: "desk/1.0", wantErr: ErrInvalidToken},
		{name: "expired", key: key, token: expired, userAgent: "desk/1.0", wantErr: ErrInvalidToken},
		{name: "garbage", key: key, token: "not.a.token", userAgent: "desk/1.0", wantErr: ErrInvalidToken},
		{name: "other client", key: key, token: valid, userAgent: "curl/8.0", wantErr: ErrUserAgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.key, tt.token, tt.userAgent)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
