package services

import (
	"context"
	"strings"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/common"
	"github.com/plateful/plateful/internal/models"
	"github.com/plateful/plateful/internal/session"
)

const minPasswordLength = 8

// Subject and body of the reset mail the backend sends on our behalf.
const (
	resetMailSubject = "Plateful password reset"
	resetMailBody    = "We received a request to reset your Plateful password. " +
		"Follow the link below to choose a new one. " +
		"If you did not request this, you can ignore this message."
)

// AuthAPI is the slice of the API client the auth flows need.
type AuthAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (models.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, recipient, subject, msgBody string) error
	VerifyPasswordReset(ctx context.Context, token string) error
	ConfirmPasswordReset(ctx context.Context, token, password string) error
}

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Save(token string) error
	Clear() error
	Token() string
	Claims() session.Claims
}

// AuthService drives registration, login and the password-reset flow, and
// keeps the token store in sync. Password rules are checked locally before
// any request goes out.
type AuthService struct {
	api   AuthAPI
	store TokenStore
}

func NewAuthService(api AuthAPI, store TokenStore) *AuthService {
	return &AuthService{api: api, store: store}
}

func validatePassword(password, confirm string) error {
	if len([]rune(password)) < minPasswordLength {
		return common.ErrPasswordTooShort
	}
	if password != confirm {
		return common.ErrPasswordMismatch
	}
	return nil
}

// Register creates an account and stores the issued token, logging the new
// user in.
func (a *AuthService) Register(ctx context.Context, username, email, password, confirm string) error {
	if err := validatePassword(password, confirm); err != nil {
		return err
	}
	resp, err := a.api.Register(ctx, api.RegisterRequest{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return err
	}
	return a.store.Save(resp.Token)
}

// Login authenticates and stores the issued token.
func (a *AuthService) Login(ctx context.Context, email, password string) error {
	resp, err := a.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return err
	}
	return a.store.Save(resp.Token)
}

// Logout discards the stored token. It never talks to the backend.
func (a *AuthService) Logout() error {
	return a.store.Clear()
}

// LoggedIn reports whether a usable token is stored.
func (a *AuthService) LoggedIn() bool {
	return a.store.Token() != ""
}

// CurrentUser returns the display name and email from the stored token, or
// common.ErrNotLoggedIn when no usable token exists.
func (a *AuthService) CurrentUser() (name, email string, err error) {
	claims := a.store.Claims()
	if claims == nil {
		return "", "", common.ErrNotLoggedIn
	}
	return session.DisplayName(claims), session.Email(claims), nil
}

// RequestPasswordReset asks the backend to mail a reset link to email.
func (a *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	return a.api.RequestPasswordReset(ctx, strings.TrimSpace(email), resetMailSubject, resetMailBody)
}

// VerifyReset checks that a reset token from the mail is still usable.
func (a *AuthService) VerifyReset(ctx context.Context, token string) error {
	return a.api.VerifyPasswordReset(ctx, strings.TrimSpace(token))
}

// ConfirmReset sets the new password using a verified reset token.
func (a *AuthService) ConfirmReset(ctx context.Context, token, password, confirm string) error {
	if err := validatePassword(password, confirm); err != nil {
		return err
	}
	return a.api.ConfirmPasswordReset(ctx, strings.TrimSpace(token), password)
}
