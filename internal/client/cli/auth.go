package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/instabids/internal/client/client"
	"github.com/dmitrijs2005/instabids/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for email, username and password and creates an account.
// The account is not signed in; the authority may require the address to be
// verified first.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.store.Signup(ctx, email, string(password), username); err != nil {
		return err
	}

	a.printf("Account created. Check your email for a confirmation code, then run 'verify'.\n")
	return nil
}

// Verify confirms an email address with the code sent at sign-up.
func (a *App) Verify(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	code, err := getSimpleText(a.reader, "Enter confirmation code", a.out)
	if err != nil {
		return err
	}

	if _, err := a.account.VerifyEmail(ctx, email, code); err != nil {
		return err
	}
	a.printf("Email confirmed, you can log in now.\n")
	return nil
}

// Login prompts for credentials and signs in through the session store.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	err = a.store.Login(ctx, email, string(password))
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		return err
	case err != nil:
		return err
	}

	a.setMode(ModeOnline)
	a.printf("Welcome, %s!\n", displayName(a.store.State()))
	return nil
}

// Logout signs out remotely and clears the local session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}
