package ports

import (
	"context"
	"errors"
)

// Sentinel errors the identity adapter translates provider-specific failures
// into, so services can branch without knowing the provider.
var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// User is the identity attached to a verified access token.
type User struct {
	Email string `json:"email"`
	Sub   string `json:"sub"`
}

// IdentityProvider delegates all credential handling to a managed user
// directory. No tokens are minted or validated locally.
type IdentityProvider interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register signs up a new user. Returns ErrUserAlreadyExists when the
	// email is already registered.
	Register(ctx context.Context, email, password string) error

	// ConfirmSignUp confirms a registration with the emailed code.
	ConfirmSignUp(ctx context.Context, email, code string) error

	// ResendConfirmationCode re-sends the registration confirmation code.
	ResendConfirmationCode(ctx context.Context, email string) error

	// GetUser resolves an access token to the user it belongs to. Returns
	// ErrInvalidToken when the token does not verify.
	GetUser(ctx context.Context, accessToken string) (User, error)
}
