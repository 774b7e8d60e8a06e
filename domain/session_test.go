package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	user := &User{
		ID:         7,
		Login:      "hamilton",
		Role:       RoleDriver,
		OriginalID: 44,
		Active:     true,
	}

	session := NewSession(user)
	require.NotNil(t, session)
	assert.True(t, session.Authenticated)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, user.OriginalID, session.OriginalID)

	assert.Nil(t, NewSession(nil))
}

func TestIsAuthenticatedNilSafe(t *testing.T) {
	var session *Session
	assert.False(t, session.IsAuthenticated())
	assert.False(t, (&Session{}).IsAuthenticated())
	assert.True(t, (&Session{Authenticated: true}).IsAuthenticated())
}
