package usecase

import (
	"context"
	"time"

	"million/internal/domain/entity"
)

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Photo    string
	Role     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput returns the issued token and the account it identifies.
type AuthOutput struct {
	Token     string       `json:"token"`
	User      *entity.User `json:"user"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// AuthUsecase defines the interface for registration and login.
type AuthUsecase interface {
	// Register creates the account, provisions an Owner profile when the role
	// is Owner, and issues a token. Fails with ErrEmailAlreadyRegistered when
	// the email is taken.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password both fail with ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
