package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/shopauth/internal/client/api"
	"github.com/dmitrijs2005/shopauth/internal/client/models"
	"github.com/dmitrijs2005/shopauth/internal/logging"
)

// Endpoints relative to the API base URL.
const (
	EndpointRegister       = "/auth/register/"
	EndpointLogin          = "/auth/login/"
	EndpointLogout         = "/auth/logout/"
	EndpointProfile        = "/users/profile/"
	EndpointChangePassword = "/users/change-password/"
	EndpointDeactivate     = "/users/deactivate/"
)

// ErrInvalidRequest wraps client-side validation failures. No request is
// sent when it is returned.
var ErrInvalidRequest = errors.New("invalid request")

// SessionStore is the part of session.Store the service depends on.
type SessionStore interface {
	Save(ctx context.Context, sess models.Session) error
	SaveProfile(ctx context.Context, sess models.Session) error
	SaveToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) *models.Session
}

// AuthService defines the account and session operations of the client.
//
// API failures come back as *api.APIError, *api.NetworkError or
// *api.ParseError and leave the session untouched.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	GetProfile(ctx context.Context) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.ProfileResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.ChangePasswordResponse, error)
	DeactivateAccount(ctx context.Context, password string) (*models.DetailResponse, error)
	VerifySession(ctx context.Context) (bool, error)
	IsAuthenticated(ctx context.Context) bool
	CurrentUser(ctx context.Context) *models.Session
}

type authService struct {
	api    api.Caller
	store  SessionStore
	logger logging.Logger
}

// NewAuthService binds the service to an API caller and a session store.
func NewAuthService(caller api.Caller, store SessionStore, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{api: caller, store: store, logger: logger.With("component", "auth")}
}

type validatable interface {
	Validate() error
}

func validate(v validatable) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (a *authService) save(ctx context.Context, sess models.Session) error {
	if err := a.store.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (a *authService) saveProfile(ctx context.Context, sess models.Session) error {
	if err := a.store.SaveProfile(ctx, sess); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (a *authService) clear(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Register creates the account and signs the new user in.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	resp, err := api.Do[models.AuthResponse](ctx, a.api, EndpointRegister, http.MethodPost, req)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, resp.Session()); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	if err := validate(req); err != nil {
		return nil, err
	}
	resp, err := api.Do[models.AuthResponse](ctx, a.api, EndpointLogin, http.MethodPost, req)
	if err != nil {
		return nil, err
	}
	if err := a.save(ctx, resp.Session()); err != nil {
		return nil, err
	}
	return resp, nil
}

// Logout invalidates the token on the server and always clears the local
// session. A failed server call is logged and not returned; the only error
// is a failure to clear local storage.
func (a *authService) Logout(ctx context.Context) error {
	if _, err := a.api.Call(ctx, EndpointLogout, http.MethodPost, nil); err != nil {
		a.logger.Warn(ctx, "logout request failed, clearing local session anyway", "err", err)
	}
	return a.clear(ctx)
}

func (a *authService) GetProfile(ctx context.Context) (*models.ProfileResponse, error) {
	resp, err := api.Do[models.ProfileResponse](ctx, a.api, EndpointProfile, http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	if err := a.saveProfile(ctx, resp.Session()); err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *authService) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.ProfileResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	resp, err := api.Do[models.ProfileResponse](ctx, a.api, EndpointProfile, http.MethodPatch, req)
	if err != nil {
		return nil, err
	}
	if err := a.saveProfile(ctx, resp.Session()); err != nil {
		return nil, err
	}
	return resp, nil
}

// ChangePassword stores the rotated token when the server returns one and
// keeps the current token otherwise.
func (a *authService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (*models.ChangePasswordResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	resp, err := api.Do[models.ChangePasswordResponse](ctx, a.api, EndpointChangePassword, http.MethodPost, req)
	if err != nil {
		return nil, err
	}
	if resp.Token != "" {
		if err := a.store.SaveToken(ctx, resp.Token); err != nil {
			return nil, fmt.Errorf("failed to save token: %w", err)
		}
	}
	return resp, nil
}

func (a *authService) DeactivateAccount(ctx context.Context, password string) (*models.DetailResponse, error) {
	req := models.DeactivateRequest{Password: password}
	if err := validate(req); err != nil {
		return nil, err
	}
	resp, err := api.Do[models.DetailResponse](ctx, a.api, EndpointDeactivate, http.MethodPost, req)
	if err != nil {
		return nil, err
	}
	if err := a.clear(ctx); err != nil {
		return nil, err
	}
	return resp, nil
}

// VerifySession checks a stored session against the server. Any failure of
// the profile call drops the local session and reports false. The returned
// error is only ever a local storage failure.
func (a *authService) VerifySession(ctx context.Context) (bool, error) {
	if !a.store.IsAuthenticated(ctx) {
		return false, nil
	}
	if _, err := a.GetProfile(ctx); err != nil {
		a.logger.Info(ctx, "stored session rejected, signing out", "err", err)
		if cerr := a.clear(ctx); cerr != nil {
			return false, cerr
		}
		return false, nil
	}
	return true, nil
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.store.IsAuthenticated(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) *models.Session {
	return a.store.CurrentUser(ctx)
}
