package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	desk "github.com/goliatone/go-desk"
	"github.com/goliatone/go-desk/repository"
	"github.com/goliatone/go-desk/terminal"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
)

type app struct {
	opts    *desk.Options
	logger  *glog.BaseLogger
	console *terminal.Console
	stderr  io.Writer
	store   desk.CredentialStore
	session *desk.SessionManager
	login   *desk.LoginController
	tickets *desk.TicketController
	closers []func() error
}

func newApp(ctx context.Context, g globalFlags, stdout, stderr io.Writer) (*app, error) {
	// a memory store does not outlive a single command, so the CLI
	// defaults to the file store unless the config names one
	opts := desk.DefaultOptions()
	opts.Store = desk.StoreFile
	if err := desk.LoadOptionsInto(opts, g.config); err != nil {
		return nil, err
	}
	if g.baseURL != "" {
		opts.BaseURL = g.baseURL
	}
	if g.store != "" {
		opts.Store = g.store
	}
	if g.storePath != "" {
		opts.StorePath = g.storePath
	}
	if g.debug {
		opts.Debug = true
	}

	a := &app{
		opts:    opts,
		stderr:  stderr,
		logger:  newLogger(opts.Debug),
		console: terminal.NewConsole(stdout, terminal.WithQuietLoading(!opts.Debug)),
	}

	if err := a.openStore(ctx); err != nil {
		return nil, err
	}

	api := desk.NewAPIClient(opts, desk.WithAPILogger(a.GetLogger("desk:api")))

	a.session = desk.NewSessionManager(api, a.store, opts,
		desk.WithSessionLogger(a.GetLogger("desk:session")),
		desk.WithActivitySink(activityLogger(a.GetLogger("desk:activity"))),
	)

	a.login = desk.NewLoginController(a.session, opts,
		desk.WithLoginNavigator(a.console),
		desk.WithLoginNotifier(a.console),
		desk.WithLoginLogger(a.GetLogger("desk:login")),
	)

	a.tickets = desk.NewTicketController(a.session, api, opts,
		desk.WithTicketNavigator(a.console),
		desk.WithTicketNotifier(a.console),
		desk.WithTicketView(a.console),
		desk.WithTicketForm(a.console),
		desk.WithTicketLogger(a.GetLogger("desk:tickets")),
	)

	return a, nil
}

func newLogger(debug bool) *glog.BaseLogger {
	if debug {
		return glog.NewLogger(
			glog.WithLoggerTypePretty(),
			glog.WithLevel(glog.Trace),
			glog.WithName("deskctl"),
			glog.WithAddSource(false),
			glog.WithRichErrorHandler(errors.ToSlogAttributes),
		)
	}
	return glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithName("deskctl"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)
}

func (a *app) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func (a *app) openStore(ctx context.Context) error {
	switch a.opts.Store {
	case "", desk.StoreMemory:
		a.store = desk.NewMemoryStore()
	case desk.StoreFile:
		path := a.opts.StorePath
		if path == "" {
			path = desk.DefaultFileStorePath()
		}
		a.store = desk.NewFileStore(path)
	case desk.StoreSQLite:
		path := a.opts.StorePath
		if path == "" {
			path = filepath.Join(filepath.Dir(desk.DefaultFileStorePath()), "desk.db")
		}
		repo, closeDB, err := repository.OpenSQLite(ctx, path)
		if err != nil {
			return err
		}
		a.store = repo
		a.closers = append(a.closers, closeDB)
	default:
		return usageError{err: fmt.Errorf("unknown store %q", a.opts.Store)}
	}
	return nil
}

func (a *app) Close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.GetLogger("deskctl").Warn("close failed", "error", err)
		}
	}
}

func activityLogger(logger glog.Logger) desk.ActivitySink {
	return desk.ActivitySinkFunc(func(_ context.Context, event desk.ActivityEvent) error {
		args := []any{"event", event.EventType, "at", event.OccurredAt}
		if event.Role != "" {
			args = append(args, "role", event.Role)
		}
		if event.TicketID != "" {
			args = append(args, "ticket_id", event.TicketID)
		}
		if event.Reason != "" {
			args = append(args, "reason", event.Reason)
		}
		logger.Debug("activity", args...)
		return nil
	})
}
