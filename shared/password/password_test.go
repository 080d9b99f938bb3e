package password_test

import (
	"petcare/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	hashed, err := password.Hash("admin123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)

	assert.Equal(t, password.Cost, cost)
	assert.True(t, strings.HasPrefix(hashed, "$2a$"))
	assert.NoError(t, password.Verify("admin123", hashed))

	again, err := password.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again)
}

func TestHash_Empty(t *testing.T) {
	_, err := password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestHash_TooLong(t *testing.T) {
	_, err := password.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("admin123")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "admin123", hash: hashed},
		{name: "mismatch", plain: "admin124", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "case matters", plain: "ADMIN123", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "no configured hash", plain: "admin123", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "plain text in config", plain: "admin123", hash: "admin123", wantErr: password.ErrMalformedHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
