package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/shopauth/internal/client/config"
	"github.com/dmitrijs2005/shopauth/internal/client/metrics"
	"github.com/dmitrijs2005/shopauth/internal/client/storage"
	"github.com/dmitrijs2005/shopauth/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{})
	assert.False(t, a.isLoggedIn())

	a, _ = newTestApp(&fakeAuth{session: ann})
	assert.True(t, a.isLoggedIn())
}

func TestSetMode_ChangesOnce(t *testing.T) {
	app := &App{logger: logging.Nop()}

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode)

	app.setMode(ModeOnline)
	assert.Equal(t, ModeOnline, app.Mode)

	app.setMode(ModeOffline)
	assert.Equal(t, ModeOffline, app.Mode)
}

func TestGetStatus(t *testing.T) {
	a, _ := newTestApp(&fakeAuth{})
	assert.Equal(t, "", a.getStatus())

	a.Mode = ModeOffline
	assert.Equal(t, "(offline)", a.getStatus())

	a, _ = newTestApp(&fakeAuth{session: ann})
	assert.Equal(t, "(ann@example.com)", a.getStatus())

	a.Mode = ModeOnline
	assert.Equal(t, "(ann@example.com online)", a.getStatus())
}

func TestVerify(t *testing.T) {
	t.Run("valid session greets", func(t *testing.T) {
		a, out := newTestApp(&fakeAuth{session: ann, verifyOK: true})
		require.NoError(t, a.verify(context.Background()))
		assert.Contains(t, out.String(), "Welcome back, Ann Lee!")
		assert.Equal(t, ModeOnline, a.Mode)
	})

	t.Run("rejected session", func(t *testing.T) {
		f := &fakeAuth{session: ann}
		a, out := newTestApp(f)
		require.NoError(t, a.verify(context.Background()))
		assert.Contains(t, out.String(), "Your session has expired")
		assert.False(t, a.isLoggedIn())
	})

	t.Run("no session is silent", func(t *testing.T) {
		a, out := newTestApp(&fakeAuth{})
		require.NoError(t, a.verify(context.Background()))
		assert.Empty(t, out.String())
	})

	t.Run("storage failure", func(t *testing.T) {
		a, _ := newTestApp(&fakeAuth{session: ann, verifyErr: errors.New("disk full")})
		assert.Error(t, a.verify(context.Background()))
	})
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveRequest("/auth/login/", http.MethodPost, http.StatusOK, 0)

	a := &App{registry: reg, logger: logging.Nop()}
	srv := httptest.NewServer(a.metricsHandler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "shopauth_api_requests_total")
}

func TestNewApp_RunEndToEnd(t *testing.T) {
	capturePrints(t)

	r := chi.NewRouter()
	r.Get("/api/users/profile/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"detail":"Invalid token."}`)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL + "/api"
	cfg.StorageBackend = storage.BackendMemory
	cfg.LogLevel = "error"

	ctx := context.Background()
	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)

	require.NoError(t, a.storage.SetMany(ctx, map[string]string{"token": "stale", "email": "ann@example.com"}))

	var out bytes.Buffer
	a.out = &out
	a.reader = bufio.NewReader(strings.NewReader("whoami\nexit\n"))

	require.NoError(t, a.Run(ctx))
	assert.Contains(t, out.String(), "Your session has expired")
	assert.Contains(t, out.String(), "Not logged in.")
}

func TestNewApp_BadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	cfg.LogLevel = "chatty"
	_, err := NewApp(context.Background(), cfg)
	assert.Error(t, err)

	cfg.LoadDefaults()
	cfg.StorageBackend = "floppy"
	_, err = NewApp(context.Background(), cfg)
	assert.Error(t, err)
}
