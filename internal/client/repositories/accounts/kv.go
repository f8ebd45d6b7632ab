package accounts

import (
	"context"
	"fmt"

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

func (r *KVRepository) List(ctx context.Context) ([]models.Account, error) {
	var list []models.Account
	if _, err := kv.ReadJSON(ctx, r.store, common.AccountsKey, &list); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if list == nil {
		list = []models.Account{}
	}
	return list, nil
}

func (r *KVRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.find(ctx, func(a models.Account) bool { return a.Email == email })
}

func (r *KVRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.find(ctx, func(a models.Account) bool { return a.ID == id })
}

func (r *KVRepository) find(ctx context.Context, match func(models.Account) bool) (*models.Account, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if match(list[i]) {
			return &list[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *KVRepository) Create(ctx context.Context, a *models.Account) error {
	err := kv.UpdateJSON(ctx, r.store, common.AccountsKey, func(list []models.Account) ([]models.Account, error) {
		for _, existing := range list {
			if existing.Email == a.Email {
				return nil, common.ErrorConflict
			}
		}
		return append(list, *a), nil
	})
	if err != nil {
		return fmt.Errorf("failed to create account[%s]: %w", a.Email, err)
	}
	return nil
}
