package service

import (
	"errors"

	"agritrust/entities"
	"agritrust/pkg/form"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Session is what a successful sign-in/sign-up hands to the client: the
// profile plus the bearer token.
type Session struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"`
}

// Mailer delivers the password-reset link. The default implementation only
// logs it; real delivery is a deployment concern.
type Mailer interface {
	SendReset(email, token string) error
}

type AuthService interface {
	SignUp(values form.Values) (*Session, form.Errors, error)
	SignIn(values form.Values) (*Session, form.Errors, error)
	// ForgotPassword always succeeds for well-formed email addresses so the
	// endpoint doesn't leak which accounts exist.
	ForgotPassword(values form.Values) (form.Errors, error)
	UserByID(id string) (*entities.User, error)
}
