package models

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const maxNameLength = 150

// RegisterRequest is the body of POST /auth/register/.
type RegisterRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.FirstName, validation.Length(0, maxNameLength)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLength)),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.PasswordConfirm, validation.Required, validation.By(equalTo(r.Password, "passwords don't match"))),
	)
}

// LoginRequest is the body of POST /auth/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// ProfileUpdateRequest is the partial body of PATCH /users/profile/.
// Nil fields are omitted from the payload and left unchanged by the server.
type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

func (r ProfileUpdateRequest) Validate() error {
	if r.FirstName == nil && r.LastName == nil {
		return errors.New("nothing to update")
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(0, maxNameLength)),
		validation.Field(&r.LastName, validation.Length(0, maxNameLength)),
	)
}

// ChangePasswordRequest is the body of POST /users/change-password/.
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password"`
	NewPassword        string `json:"new_password"`
	NewPasswordConfirm string `json:"new_password_confirm"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword, validation.Required),
		validation.Field(&r.NewPasswordConfirm, validation.Required, validation.By(equalTo(r.NewPassword, "new passwords don't match"))),
	)
}

// DeactivateRequest is the body of POST /users/deactivate/.
type DeactivateRequest struct {
	Password string `json:"password"`
}

func (r DeactivateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r AuthResponse) Session() Session {
	return Session{
		Token:     r.Token,
		UserID:    r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// ProfileResponse is returned by GET and PATCH /users/profile/. It carries
// no token.
type ProfileResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	CreatedAt string `json:"created_at,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
}

func (r ProfileResponse) Session() Session {
	return Session{
		UserID:    r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// ChangePasswordResponse may carry a rotated token.
type ChangePasswordResponse struct {
	Detail string `json:"detail,omitempty"`
	Token  string `json:"token,omitempty"`
}

// DetailResponse is the {"detail": "..."} acknowledgement body.
type DetailResponse struct {
	Detail string `json:"detail"`
}

func equalTo(other, msg string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != other {
			return errors.New(msg)
		}
		return nil
	}
}
