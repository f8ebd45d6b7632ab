package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/devprofiler/internal/client/config"
	"github.com/dmitrijs2005/devprofiler/internal/client/controller"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/devices"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/kv"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/session"
	"github.com/dmitrijs2005/devprofiler/internal/client/services"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
)

// App binds the controller to a terminal: it owns the store, reads prompts
// from in and writes everything the user sees to out.
type App struct {
	config *config.Config
	log    logging.Logger
	store  kv.Store
	ctl    *controller.Controller
	reader *bufio.Reader
	fd     int
	out    io.Writer
	notify *Notifier
}

// NewApp opens the configured store and restores the saved session.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	store, err := kv.Open(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "error initializing store", "error", err)
		return nil, err
	}

	a, err := newApp(ctx, store, log, in, out)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}
	a.config = cfg
	return a, nil
}

func newApp(ctx context.Context, store kv.Store, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	accountsRepo := accounts.NewKVRepository(store)

	ctl := controller.New(
		services.NewAccountService(accountsRepo, log),
		services.NewSessionService(session.NewKVRepository(store), accountsRepo, log),
		services.NewDeviceService(devices.NewKVRepository(store), log),
		log,
	)
	if err := ctl.Start(ctx); err != nil {
		return nil, err
	}

	return &App{
		log:    log,
		store:  store,
		ctl:    ctl,
		reader: bufio.NewReader(in),
		fd:     stdinFd(in),
		out:    out,
		notify: NewNotifier(out),
	}, nil
}

func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.ctl.Authenticated()
}

func (a *App) status() string {
	if acc := a.ctl.State().Account; acc != nil {
		return fmt.Sprintf("(%s)", acc.Email)
	}
	return "(signed out)"
}
