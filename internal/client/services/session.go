package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/session"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
)

// SessionService tracks which account is signed in. The persisted value is
// a snapshot of the account taken at sign-in.
type SessionService interface {
	// Current returns the signed-in account or nil. A snapshot that cannot
	// be decoded, or whose account no longer exists in the directory, is
	// discarded and reported as nil.
	Current(ctx context.Context) (*models.Account, error)
	SetCurrent(ctx context.Context, a *models.Account) error
	ClearCurrent(ctx context.Context) error
}

type sessionService struct {
	repo     session.Repository
	accounts accounts.Repository
	log      logging.Logger
}

func NewSessionService(repo session.Repository, accounts accounts.Repository, log logging.Logger) SessionService {
	return &sessionService{repo: repo, accounts: accounts, log: log.With("component", "session")}
}

func (s *sessionService) Current(ctx context.Context) (*models.Account, error) {
	a, err := s.repo.Get(ctx)
	if errors.Is(err, session.ErrCorrupt) {
		s.log.Warn(ctx, "discarding unreadable session", "error", err)
		return nil, s.ClearCurrent(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("get session error: %w", err)
	}
	if a == nil {
		return nil, nil
	}

	if _, err := s.accounts.GetByID(ctx, a.ID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.log.Warn(ctx, "discarding session of unknown account", "account_id", a.ID)
			return nil, s.ClearCurrent(ctx)
		}
		return nil, fmt.Errorf("validate session error: %w", err)
	}

	return a, nil
}

func (s *sessionService) SetCurrent(ctx context.Context, a *models.Account) error {
	if err := s.repo.Set(ctx, a.Clone()); err != nil {
		return fmt.Errorf("set session error: %w", err)
	}
	s.log.Debug(ctx, "session started", "account_id", a.ID)
	return nil
}

func (s *sessionService) ClearCurrent(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session error: %w", err)
	}
	return nil
}
