package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
)

// ErrCorrupt is returned by Get when the stored snapshot cannot be decoded.
var ErrCorrupt = errors.New("session snapshot is corrupt")

// Repository holds at most one account snapshot: the signed-in account.
type Repository interface {
	// Get returns the snapshot, or nil when nobody is signed in.
	Get(ctx context.Context) (*models.Account, error)
	Set(ctx context.Context, a *models.Account) error
	Clear(ctx context.Context) error
}
