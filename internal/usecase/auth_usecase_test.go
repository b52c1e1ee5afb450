package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameclub/internal/infrastructure/auth"
	"gameclub/pkg/errors"
)

func newAuthFixture() (*AuthUseCase, *memUserRepo) {
	userRepo := newMemUserRepo()
	tokens := auth.NewTokenManager("test-secret", 3600)
	return NewAuthUseCase(userRepo, tokens), userRepo
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	uc, userRepo := newAuthFixture()

	result, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Negar",
		Email:    "  Negar@Example.COM ",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "negar@example.com", result.User.Email)
	assert.Equal(t, "user", result.User.Role)
	assert.NotEqual(t, "correct-horse", result.User.Password)
	assert.NotEmpty(t, result.Token)

	stored, err := userRepo.GetByEmail(context.Background(), "negar@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", stored.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	uc, _ := newAuthFixture()

	ctx := context.Background()
	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, RegisterInput{Name: "B", Email: "A@EXAMPLE.com", Password: "password2"})
	assert.True(t, errors.Is(err, "CONFLICT"), "email uniqueness is case-insensitive")
}

func TestLoginRoundTrip(t *testing.T) {
	uc, _ := newAuthFixture()

	ctx := context.Background()
	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	result, err := uc.Login(ctx, "a@example.com", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	uc, _ := newAuthFixture()

	ctx := context.Background()
	_, err := uc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, wrongPassword := uc.Login(ctx, "a@example.com", "nope")
	_, unknownUser := uc.Login(ctx, "b@example.com", "password1")

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
}
