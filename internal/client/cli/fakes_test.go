package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/shopauth/internal/client/models"
	"github.com/dmitrijs2005/shopauth/internal/logging"
)

type fakeAuth struct {
	session *models.Session

	regReq  models.RegisterRequest
	regResp *models.AuthResponse
	regErr  error

	loginEmail, loginPass string
	loginResp             *models.AuthResponse
	loginErr              error

	logoutCalled bool
	logoutErr    error

	profileResp *models.ProfileResponse
	profileErr  error

	updateReq  models.ProfileUpdateRequest
	updateResp *models.ProfileResponse
	updateErr  error

	passwdReq  models.ChangePasswordRequest
	passwdResp *models.ChangePasswordResponse
	passwdErr  error

	deactivatePass string
	deactivateResp *models.DetailResponse
	deactivateErr  error

	verifyOK  bool
	verifyErr error
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	f.regReq = req
	return f.regResp, f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.AuthResponse, error) {
	f.loginEmail, f.loginPass = email, password
	if f.loginErr == nil && f.loginResp != nil {
		s := f.loginResp.Session()
		f.session = &s
	}
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	f.session = nil
	return f.logoutErr
}

func (f *fakeAuth) GetProfile(context.Context) (*models.ProfileResponse, error) {
	return f.profileResp, f.profileErr
}

func (f *fakeAuth) UpdateProfile(_ context.Context, req models.ProfileUpdateRequest) (*models.ProfileResponse, error) {
	f.updateReq = req
	return f.updateResp, f.updateErr
}

func (f *fakeAuth) ChangePassword(_ context.Context, req models.ChangePasswordRequest) (*models.ChangePasswordResponse, error) {
	f.passwdReq = req
	return f.passwdResp, f.passwdErr
}

func (f *fakeAuth) DeactivateAccount(_ context.Context, password string) (*models.DetailResponse, error) {
	f.deactivatePass = password
	if f.deactivateErr == nil {
		f.session = nil
	}
	return f.deactivateResp, f.deactivateErr
}

func (f *fakeAuth) VerifySession(context.Context) (bool, error) {
	if !f.verifyOK {
		f.session = nil
	}
	return f.verifyOK, f.verifyErr
}

func (f *fakeAuth) IsAuthenticated(context.Context) bool { return f.session != nil }

func (f *fakeAuth) CurrentUser(context.Context) *models.Session { return f.session }

var ann = &models.Session{Token: "tok", UserID: "7", Email: "ann@example.com", FirstName: "Ann", LastName: "Lee"}

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		authService: f,
		logger:      logging.Nop(),
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         &out,
	}, &out
}

// stubText answers successive getSimpleText prompts from answers.
func stubText(t *testing.T, answers ...string) *[]string {
	t.Helper()
	var prompts []string
	orig := getSimpleText
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
	return &prompts
}

// stubPasswords answers successive getPassword prompts from answers.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(string, io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func stubOptional(t *testing.T, answers ...*string) {
	t.Helper()
	orig := getOptionalText
	getOptionalText = func(*bufio.Reader, string, io.Writer) (*string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	t.Cleanup(func() { getOptionalText = orig })
}

func ptr(s string) *string { return &s }
