package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shopauth/internal/client/models"
)

// getSimpleText, getPassword and getOptionalText are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getOptionalText = GetOptionalText

// Register prompts for the account details and creates the account. The new
// user is signed in on success.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword("Enter password", a.out); err != nil {
		return err
	}
	if req.PasswordConfirm, err = getPassword("Repeat password", a.out); err != nil {
		return err
	}

	resp, err := a.authService.Register(ctx, req)
	a.track(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", resp.Session().DisplayName())
	return nil
}

// Login prompts for credentials and signs the user in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	resp, err := a.authService.Login(ctx, email, password)
	a.track(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", resp.Session().DisplayName())
	return nil
}

// Logout signs out. The local session is dropped even if the server cannot
// be reached.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Deactivate asks for confirmation and the password, then deactivates the
// account and signs out.
func (a *App) Deactivate(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	answer, err := getSimpleText(a.reader, "Type 'yes' to deactivate your account", a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "yes") {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	resp, err := a.authService.DeactivateAccount(ctx, password)
	a.track(err)
	if err != nil {
		return err
	}

	msg := resp.Detail
	if msg == "" {
		msg = "Account deactivated."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
