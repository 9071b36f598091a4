package auth

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestSessions_IssueVerifyRoundTrip(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)
	userID := uuid.Must(uuid.NewV4())

	token, err := sessions.Issue(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	verified, err := sessions.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, verified)
}

func TestSessions_VerifyRejectsGarbage(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	_, err := sessions.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessions_VerifyRejectsWrongSecret(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	token, err := NewSessions("secret-a", time.Hour).Issue(userID)
	assert.NoError(t, err)

	_, err = NewSessions("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessions_VerifyRejectsExpired(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	sessions := NewSessions("test-secret", -time.Minute)

	token, err := sessions.Issue(userID)
	assert.NoError(t, err)

	_, err = sessions.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, VerifyPassword("hunter2", hash))
	assert.False(t, VerifyPassword("hunter3", hash))
}

func TestSessionCookie(t *testing.T) {
	cookie := SessionCookie("tok", 3600)
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)

	cleared := ClearSessionCookie()
	assert.Equal(t, -1, cleared.MaxAge)
	assert.Empty(t, cleared.Value)
}
