package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/reviewpulse/sentiment-api/internal/domain/entity"
	"github.com/reviewpulse/sentiment-api/internal/domain/repository"
	"github.com/reviewpulse/sentiment-api/internal/domain/service"
)

// Error definitions for auth usecase
var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown username and password
	// mismatch so login failures do not leak which check failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrMissingToken       = errors.New("missing bearer token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrUnknownSubject     = errors.New("token subject no longer exists")
)

// RegisterInput represents the input for user registration
type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UserOutput represents a user in API responses. It never carries the
// password hash.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

// TokenOutput represents an issued bearer token
type TokenOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the interface for registration, login and token
// validation
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*UserOutput, error)
	Login(ctx context.Context, username, password string) (*TokenOutput, error)
	// Authenticate validates a raw bearer token and resolves its subject
	// to a stored user
	Authenticate(ctx context.Context, rawToken string) (*UserOutput, error)
}

type authUsecase struct {
	users  repository.UserRepository
	tokens service.TokenManager
	hasher service.PasswordHasher
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(users repository.UserRepository, tokens service.TokenManager, hasher service.PasswordHasher) AuthUsecase {
	return &authUsecase{
		users:  users,
		tokens: tokens,
		hasher: hasher,
	}
}

func (u *authUsecase) Register(ctx context.Context, input *RegisterInput) (*UserOutput, error) {
	existing, err := u.users.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	existing, err = u.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := entity.NewUser(input.Username, input.Email, hash)
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserOutput(user), nil
}

func (u *authUsecase) Login(ctx context.Context, username, password string) (*TokenOutput, error) {
	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	token, err := u.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}

	return &TokenOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, rawToken string) (*UserOutput, error) {
	if rawToken == "" {
		return nil, ErrMissingToken
	}

	subject, err := u.tokens.Parse(rawToken)
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	user, err := u.users.GetByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnknownSubject
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return toUserOutput(user), nil
}

func toUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
