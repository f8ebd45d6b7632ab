package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
)

// Registration failures. All of them match common.ErrorValidation.
var (
	ErrEmailRequired    = fmt.Errorf("%w: email is required", common.ErrorValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords don't match", common.ErrorValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, common.MinPasswordLength)
)

// AccountService is the account directory.
//
// Contract:
//   - ListAccounts: every registered account, empty when none.
//   - Register: validate, reject a taken email, then append and persist.
//   - Authenticate: return the account whose email and password both match.
type AccountService interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	Register(ctx context.Context, email, password, confirm string) (*models.Account, error)
	Authenticate(ctx context.Context, email, password string) (*models.Account, error)
}

type accountService struct {
	repo accounts.Repository
	log  logging.Logger
}

func NewAccountService(repo accounts.Repository, log logging.Logger) AccountService {
	return &accountService{repo: repo, log: log.With("component", "accounts")}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts error: %w", err)
	}
	return list, nil
}

// Register checks, in order: email present, passwords equal, password
// length, email free. The first failing check decides the error.
func (s *accountService) Register(ctx context.Context, email, password, confirm string) (*models.Account, error) {
	email = strings.TrimSpace(email)

	switch {
	case email == "":
		return nil, ErrEmailRequired
	case password != confirm:
		return nil, ErrPasswordMismatch
	case utf8.RuneCountInString(password) < common.MinPasswordLength:
		return nil, ErrPasswordTooShort
	}

	a := &models.Account{
		ID:        newID(),
		Email:     email,
		Password:  password,
		CreatedAt: now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			s.log.Info(ctx, "registration rejected, email taken", "email", email)
		}
		return nil, fmt.Errorf("register error: %w", err)
	}

	s.log.Info(ctx, "account registered", "account_id", a.ID, "email", a.Email)
	return a, nil
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*models.Account, error) {
	a, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("authenticate error: %w", err)
	}

	if a.Password != password {
		return nil, common.ErrorUnauthorized
	}
	return a, nil
}
