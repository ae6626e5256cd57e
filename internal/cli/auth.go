package cli

import (
	"context"
	"strings"

	"github.com/plateful/plateful/internal/common"
)

// getPassword is an indirection used to facilitate testing. It points to the
// interactive password helper and can be swapped in tests.
var getPassword = GetPassword

// readNewPassword asks for a password and its confirmation. The raw buffers
// are wiped before returning.
func (a *App) readNewPassword() (password, confirm string, err error) {
	pw, err := getPassword(a.out, "Password (min 8 characters): ")
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)

	pw2, err := getPassword(a.out, "Repeat password: ")
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw2)

	return string(pw), string(pw2), nil
}

// Register prompts for the account details and creates the account. On
// success the issued token is stored and the user is logged in.
func (a *App) Register(ctx context.Context) error {
	username, err := a.input.Prompt("Username: ")
	if err != nil {
		return err
	}
	email, err := a.input.Prompt("Email: ")
	if err != nil {
		return err
	}
	password, confirm, err := a.readNewPassword()
	if err != nil {
		return err
	}

	octx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.auth.Register(octx, username, email, password, confirm); err != nil {
		return err
	}

	printlnFn("Welcome to plateful,", strings.TrimSpace(username)+"!")
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := a.input.Prompt("Email: ")
	if err != nil {
		return err
	}
	pw, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	octx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.auth.Login(octx, email, string(pw)); err != nil {
		return err
	}

	name, mail, err := a.auth.CurrentUser()
	if err == nil {
		if name == "" {
			name = mail
		}
		printlnFn("Logged in as", name)
	}
	return nil
}

// Logout discards the stored token and the active conversation.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	a.chat.Reset()
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the identity from the stored token.
func (a *App) WhoAmI(ctx context.Context) error {
	name, email, err := a.auth.CurrentUser()
	if err != nil {
		printlnFn("Not logged in.")
		return nil
	}
	if name != "" {
		printlnFn("Name: ", name)
	}
	if email != "" {
		printlnFn("Email:", email)
	}
	return nil
}

// Reset walks the password-reset flow: request a mail, verify the token the
// user received, and set the new password.
func (a *App) Reset(ctx context.Context) error {
	email, err := a.input.Prompt("Email: ")
	if err != nil {
		return err
	}

	octx, cancel := a.opCtx(ctx)
	if err := a.auth.RequestPasswordReset(octx, email); err != nil {
		cancel()
		return err
	}
	cancel()
	printlnFn("If that address is registered, a reset link is on its way.")

	token, err := a.input.Prompt("Paste the token from the mail (empty to stop): ")
	if err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	octx, cancel = a.opCtx(ctx)
	err = a.auth.VerifyReset(octx, token)
	cancel()
	if err != nil {
		return err
	}

	password, confirm, err := a.readNewPassword()
	if err != nil {
		return err
	}

	octx, cancel = a.opCtx(ctx)
	defer cancel()
	if err := a.auth.ConfirmReset(octx, token, password, confirm); err != nil {
		return err
	}
	printlnFn("Password changed. You can log in now.")
	return nil
}
