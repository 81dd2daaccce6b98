package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oualidazemray/Bellavista1.0-sub002/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:    "u-123",
		Email: "guest@example.com",
		Name:  "Guest User",
		Role:  entity.RoleClient,
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	u := testUser()

	token, exp, err := m.GenerateSessionToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Role, claims.Role)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.Name, claims.Name)
}

func TestParseSessionTokenExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)
	token, _, err := m.GenerateSessionToken(testUser())
	require.NoError(t, err)

	_, err = m.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	m := NewJWTManager("secret-a", time.Hour)
	token, _, err := m.GenerateSessionToken(testUser())
	require.NoError(t, err)

	other := NewJWTManager("secret-b", time.Hour)
	_, err = other.ParseSessionToken(token)
	assert.Error(t, err)
}

func TestParseSessionTokenGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "aaaa.bbbb.cccc"} {
		_, err := m.ParseSessionToken(tok)
		assert.Error(t, err, "token %q should be rejected", tok)
	}
}
