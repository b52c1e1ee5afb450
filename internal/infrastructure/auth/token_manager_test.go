package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameclub/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:    "user-1",
		Name:  "Arman",
		Email: "arman@example.com",
		Role:  "user",
	}
}

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	manager := NewTokenManager("secret", 3600)

	token, err := manager.Issue(testUser())
	require.NoError(t, err)

	claims, err := manager.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "arman@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", 3600).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 3600).Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("secret", -1)

	token, err := manager.Issue(testUser())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("secret", 3600)

	_, err := manager.Verify("not-a-token")
	assert.Error(t, err)
}
