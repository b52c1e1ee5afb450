package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/internal/infrastructure/auth"
	"gameclub/pkg/errors"
)

type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Telegram string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := sanitizeEmail(input.Email)

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.Conflict("A user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:      input.Name,
		Email:     email,
		Password:  string(hashed),
		Phone:     input.Phone,
		Telegram:  input.Telegram,
		Role:      "user",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, sanitizeEmail(email))
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
