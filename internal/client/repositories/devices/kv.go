package devices

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/kv"
	"github.com/dmitrijs2005/devprofiler/internal/common"
)

type KVRepository struct {
	store kv.Store
}

func NewKVRepository(store kv.Store) *KVRepository {
	return &KVRepository{store: store}
}

func (r *KVRepository) List(ctx context.Context) ([]models.Device, error) {
	var list []models.Device
	if _, err := kv.ReadJSON(ctx, r.store, common.DevicesKey, &list); err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	if list == nil {
		list = []models.Device{}
	}
	return list, nil
}

func (r *KVRepository) ListByUser(ctx context.Context, userID string) ([]models.Device, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Device, 0, len(all))
	for _, d := range all {
		if d.UserID == userID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (*models.Device, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	i := slices.IndexFunc(all, func(d models.Device) bool { return d.ID == id })
	if i < 0 {
		return nil, common.ErrorNotFound
	}
	return &all[i], nil
}

func (r *KVRepository) Insert(ctx context.Context, d *models.Device) error {
	err := kv.UpdateJSON(ctx, r.store, common.DevicesKey, func(list []models.Device) ([]models.Device, error) {
		return append(list, *d), nil
	})
	if err != nil {
		return fmt.Errorf("failed to insert device[%s]: %w", d.ID, err)
	}
	return nil
}

func (r *KVRepository) Update(ctx context.Context, owner, id string, patch models.DevicePatch) (*models.Device, error) {
	var updated models.Device
	err := kv.UpdateJSON(ctx, r.store, common.DevicesKey, func(list []models.Device) ([]models.Device, error) {
		i := index(list, owner, id)
		if i < 0 {
			return nil, common.ErrorNotFound
		}
		patch.Apply(&list[i])
		updated = list[i]
		return list, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update device[%s]: %w", id, err)
	}
	return &updated, nil
}

func (r *KVRepository) Delete(ctx context.Context, owner, id string) error {
	err := kv.UpdateJSON(ctx, r.store, common.DevicesKey, func(list []models.Device) ([]models.Device, error) {
		i := index(list, owner, id)
		if i < 0 {
			return nil, common.ErrorNotFound
		}
		return slices.Delete(list, i, i+1), nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete device[%s]: %w", id, err)
	}
	return nil
}

func index(list []models.Device, owner, id string) int {
	return slices.IndexFunc(list, func(d models.Device) bool {
		return d.ID == id && (owner == "" || d.UserID == owner)
	})
}
