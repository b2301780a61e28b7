package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSanitize(t *testing.T) {
	user := &User{
		Fullname: "  Ada Lovelace ",
		Username: " ada ",
		Email:    "  Ada@Example.COM ",
	}
	user.Sanitize()

	assert.Equal(t, "Ada Lovelace", user.Fullname)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "abc12", true},
		{"minimum length", "abc123", false},
		{"typical", "correct-horse-battery", false},
		{"too long", string(make([]byte, 65)), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user := &User{Password: tc.password}
			err := user.ValidatePassword()
			if tc.wantErr {
				require.NotNil(t, err)
				assert.NotZero(t, err.Status)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &User{HashedPassword: string(hash)}
	assert.NoError(t, user.VerifyPassword("s3cret!"))
	assert.Error(t, user.VerifyPassword("wrong"))
}
