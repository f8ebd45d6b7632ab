package accounts

import (
	"context"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
)

// Repository stores registered accounts as one ordered collection.
type Repository interface {
	// List returns every account in registration order; empty when none.
	List(ctx context.Context) ([]models.Account, error)

	// GetByEmail returns the account with exactly this email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID returns the account with id or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// Create appends a. The uniqueness check and the append happen in one
	// atomic step; a taken email yields common.ErrorConflict.
	Create(ctx context.Context, a *models.Account) error
}
