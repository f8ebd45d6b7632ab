// Package controller holds the application state machine that sits between
// the presentation adapters (CLI, local API) and the services.
//
// The machine has two screens. Unauthenticated accepts Login and Register;
// Authenticated accepts the device operations and Logout. Every operation
// returns a Result instead of an error so adapters only have to render it.
// A Controller is not safe for concurrent use.
package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/services"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
)

// today is a test seam for the default last-active date of new devices.
var today = time.Now

type Screen int

const (
	ScreenUnauthenticated Screen = iota
	ScreenAuthenticated
)

func (s Screen) String() string {
	if s == ScreenAuthenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// State is the full UI state. EditingID and PendingDeleteID stage the
// device selected by BeginEdit and RequestDelete respectively.
type State struct {
	Screen          Screen
	Account         *models.Account
	EditingID       string
	PendingDeleteID string
}

type Controller struct {
	accounts services.AccountService
	sessions services.SessionService
	devices  services.DeviceService
	log      logging.Logger

	state State
}

func New(accounts services.AccountService, sessions services.SessionService, devices services.DeviceService, log logging.Logger) *Controller {
	return &Controller{
		accounts: accounts,
		sessions: sessions,
		devices:  devices,
		log:      log.With("component", "controller"),
	}
}

// Start restores the persisted session, entering Authenticated when one
// exists.
func (c *Controller) Start(ctx context.Context) error {
	cur, err := c.sessions.Current(ctx)
	if err != nil {
		return fmt.Errorf("restore session error: %w", err)
	}

	c.state = State{Screen: ScreenUnauthenticated}
	if cur != nil {
		c.enter(cur)
		c.log.Debug(ctx, "session restored", "account_id", cur.ID)
	}
	return nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	s.Account = c.state.Account.Clone()
	return s
}

func (c *Controller) Authenticated() bool {
	return c.state.Screen == ScreenAuthenticated
}

func (c *Controller) enter(a *models.Account) {
	c.state = State{Screen: ScreenAuthenticated, Account: a.Clone()}
}

func (c *Controller) fail(ctx context.Context, op string, err error) Result {
	r := resultFromError(err)
	if r.Kind == KindInternal {
		c.log.Error(ctx, op+" failed", "error", err)
	}
	return r
}

func (c *Controller) Login(ctx context.Context, email, password string) Result {
	if c.Authenticated() {
		return Result{Kind: KindState, Message: MsgAlreadySignedIn}
	}

	a, err := c.accounts.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.log.Info(ctx, "login rejected", "email", email)
		}
		return c.fail(ctx, "login", err)
	}

	if err := c.sessions.SetCurrent(ctx, a); err != nil {
		return c.fail(ctx, "login", err)
	}

	c.enter(a)
	c.log.Info(ctx, "logged in", "account_id", a.ID)
	return ok(MsgWelcomeBack)
}

func (c *Controller) Register(ctx context.Context, email, password, confirm string) Result {
	if c.Authenticated() {
		return Result{Kind: KindState, Message: MsgAlreadySignedIn}
	}

	a, err := c.accounts.Register(ctx, email, password, confirm)
	if err != nil {
		return c.fail(ctx, "register", err)
	}

	if err := c.sessions.SetCurrent(ctx, a); err != nil {
		return c.fail(ctx, "register", err)
	}

	c.enter(a)
	return ok(MsgAccountCreated)
}

func (c *Controller) Logout(ctx context.Context) Result {
	if !c.Authenticated() {
		return Result{Kind: KindState, Message: MsgNotSignedIn}
	}

	if err := c.sessions.ClearCurrent(ctx); err != nil {
		return c.fail(ctx, "logout", err)
	}

	c.log.Info(ctx, "logged out", "account_id", c.state.Account.ID)
	c.state = State{Screen: ScreenUnauthenticated}
	return ok(MsgLoggedOut)
}
