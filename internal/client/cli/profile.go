package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/shopauth/internal/client/models"
)

// WhoAmI prints the cached session without contacting the server.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.authService.CurrentUser(ctx)
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.DisplayName(), u.Email, u.UserID)
	return nil
}

// Profile fetches the profile from the server and refreshes the cache.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	p, err := a.authService.GetProfile(ctx)
	a.track(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "User ID:    %s\n", p.UserID)
	fmt.Fprintf(a.out, "Email:      %s\n", p.Email)
	fmt.Fprintf(a.out, "First name: %s\n", p.FirstName)
	fmt.Fprintf(a.out, "Last name:  %s\n", p.LastName)
	if p.CreatedAt != "" {
		fmt.Fprintf(a.out, "Joined:     %s\n", p.CreatedAt)
	}
	if p.LastLogin != "" {
		fmt.Fprintf(a.out, "Last login: %s\n", p.LastLogin)
	}
	return nil
}

// UpdateProfile prompts for a new first and last name. Empty answers keep
// the current value.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var req models.ProfileUpdateRequest
	var err error

	if req.FirstName, err = getOptionalText(a.reader, "Enter first name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getOptionalText(a.reader, "Enter last name", a.out); err != nil {
		return err
	}

	p, err := a.authService.UpdateProfile(ctx, req)
	a.track(err)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Profile updated: %s\n", p.Session().DisplayName())
	return nil
}

// ChangePassword prompts for the current and new password.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	var req models.ChangePasswordRequest
	var err error

	if req.OldPassword, err = getPassword("Enter current password", a.out); err != nil {
		return err
	}
	if req.NewPassword, err = getPassword("Enter new password", a.out); err != nil {
		return err
	}
	if req.NewPasswordConfirm, err = getPassword("Repeat new password", a.out); err != nil {
		return err
	}

	resp, err := a.authService.ChangePassword(ctx, req)
	a.track(err)
	if err != nil {
		return err
	}

	msg := resp.Detail
	if msg == "" {
		msg = "Password changed."
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
