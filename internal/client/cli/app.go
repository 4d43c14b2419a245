package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/shopauth/internal/client/api"
	"github.com/dmitrijs2005/shopauth/internal/client/config"
	"github.com/dmitrijs2005/shopauth/internal/client/metrics"
	"github.com/dmitrijs2005/shopauth/internal/client/services"
	"github.com/dmitrijs2005/shopauth/internal/client/session"
	"github.com/dmitrijs2005/shopauth/internal/client/storage"
	"github.com/dmitrijs2005/shopauth/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService services.AuthService
	storage     storage.Storage
	registry    *prometheus.Registry
	Mode        Mode
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp builds the logger, session storage, metrics and services from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	st, err := storage.Open(ctx, storage.Options{
		Backend:   c.StorageBackend,
		DSN:       c.StorageDSN,
		RedisURL:  c.RedisURL,
		Namespace: storage.NamespaceFor(c.APIBaseURL),
	})
	if err != nil {
		logger.Error(ctx, "error opening session storage", "backend", c.StorageBackend, "err", err)
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	store := session.NewStore(st, logger)
	apiClient, err := api.New(c.APIBaseURL, store,
		api.WithLogger(logger),
		api.WithRecorder(m),
		api.WithCSRFToken(c.CSRFToken),
	)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &App{
		config:      c,
		logger:      logger,
		authService: services.NewAuthService(apiClient, store, logger),
		storage:     st,
		registry:    reg,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Debug(context.Background(), "connectivity changed", "mode", mode)
	}
}

// track updates Mode from the outcome of an API call.
func (a *App) track(err error) {
	var netErr *api.NetworkError
	switch {
	case errors.As(err, &netErr):
		a.setMode(ModeOffline)
	case errors.Is(err, services.ErrInvalidRequest):
	default:
		a.setMode(ModeOnline)
	}
}

// Run verifies the stored session, then runs the REPL until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	if a.config != nil && a.config.MetricsAddr != "" {
		stop := a.serveMetrics(a.config.MetricsAddr)
		defer stop()
	}

	fmt.Fprintln(a.out, "Welcome to the shop CLI (type 'help' for commands)")
	if err := a.verify(ctx); err != nil {
		return err
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) verify(ctx context.Context) error {
	wasSignedIn := a.authService.IsAuthenticated(ctx)

	ok, err := a.authService.VerifySession(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify session: %w", err)
	}

	switch {
	case ok:
		a.setMode(ModeOnline)
		if u := a.authService.CurrentUser(ctx); u != nil {
			fmt.Fprintf(a.out, "Welcome back, %s!\n", u.DisplayName())
		}
	case wasSignedIn:
		fmt.Fprintln(a.out, "Your session has expired. Please log in again.")
	}
	return nil
}

func (a *App) close() {
	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			a.logger.Error(context.Background(), "error closing session storage", "err", err)
		}
	}
	if s, ok := a.logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.IsAuthenticated(context.Background())
}

func (a *App) getStatus() string {
	s := ""
	if u := a.authService.CurrentUser(context.Background()); u != nil {
		s = u.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s = strings.TrimSpace(s); s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
