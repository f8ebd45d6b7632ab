package devices

import (
	"context"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
)

// Repository stores every device of every account in one global collection,
// in insertion order.
//
// Update and Delete take an owner. When owner is non-empty, a device that
// belongs to a different account is indistinguishable from a missing one:
// both yield common.ErrorNotFound and nothing is written.
type Repository interface {
	List(ctx context.Context) ([]models.Device, error)
	ListByUser(ctx context.Context, userID string) ([]models.Device, error)
	GetByID(ctx context.Context, id string) (*models.Device, error)
	Insert(ctx context.Context, d *models.Device) error
	Update(ctx context.Context, owner, id string, patch models.DevicePatch) (*models.Device, error)
	Delete(ctx context.Context, owner, id string) error
}
