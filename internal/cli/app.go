package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-admin/internal/api"
	"portfolio-admin/internal/config"
	"portfolio-admin/internal/dashboard"
	"portfolio-admin/internal/logger"
	"portfolio-admin/internal/screens"
	"portfolio-admin/internal/session"
	"portfolio-admin/internal/store"
	"portfolio-admin/internal/upload"
)

var errNotLoggedIn = errors.New("not logged in, run `portfolio-admin login` first")

// app holds everything a command needs. It is built once per invocation.
type app struct {
	yes bool

	cfg      *config.Config
	logger   *zap.Logger
	sess     *session.Session
	closers  []func() error
	dash     *dashboard.Dashboard
	previews *upload.Previews

	in  *bufio.Reader
	out io.Writer
}

// setup loads configuration and builds the session, client and controller
func (a *app) setup(cmd *cobra.Command) error {
	a.in = bufio.NewReader(cmd.InOrStdin())
	a.out = cmd.OutOrStdout()

	if err := a.loadConfig(); err != nil {
		return err
	}

	sessionStore, closeStore, err := newSessionStore(a.cfg.Session)
	if err != nil {
		return err
	}
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}

	a.sess, err = session.New(cmd.Context(), sessionStore)
	if err != nil {
		return err
	}

	client, err := api.NewClient(a.cfg.APIBaseURL, a.sess, api.WithLogger(a.logger))
	if err != nil {
		return err
	}

	a.previews = upload.NewPreviews()
	a.dash = dashboard.NewDashboard(client, a.sess, store.New(client, a.cfg.URLPageSize), a.logger)
	return nil
}

func (a *app) loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(logger.WithLevel(cfg.LogLevel), logger.WithEncoding(cfg.LogEncoding))
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = log
	a.closers = append(a.closers, func() error {
		_ = log.Sync()
		return nil
	})
	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.logger != nil {
			a.logger.Warn("failed to release resource", zap.Error(err))
		}
	}
	a.closers = nil
}

// run prepares the app, loads every list when load is set and the
// operator is logged in, and then calls fn
func (a *app) run(cmd *cobra.Command, load bool, fn func(ctx context.Context) error) error {
	if err := a.setup(cmd); err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if load {
		if err := a.dash.Start(ctx); err != nil {
			return err
		}
	}
	return fn(ctx)
}

// authed is run for commands that need a logged in operator
func (a *app) authed(cmd *cobra.Command, fn func(ctx context.Context) error) error {
	return a.run(cmd, true, func(ctx context.Context) error {
		if !a.dash.IsAuthenticated() {
			return errNotLoggedIn
		}
		return fn(ctx)
	})
}

// confirmer prompts on stdin unless --yes was given
func (a *app) confirmer() screens.Confirmer {
	if a.yes {
		return screens.AlwaysConfirm
	}
	return screens.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(a.out, "%s [y/N] ", prompt)
		answer, _ := a.in.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})
}

// prompt reads one line from stdin
func (a *app) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}

func newSessionStore(cfg config.SessionConfig) (session.Store, func() error, error) {
	switch cfg.Backend {
	case config.SessionBackendRedis:
		rs, err := session.NewRedisStore(cfg.RedisURL, cfg.RedisKey)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil
	case config.SessionBackendMemory:
		return session.NewMemoryStore(session.State{}), nil, nil
	default:
		return session.NewFileStore(cfg.FilePath), nil, nil
	}
}
