// Package session persists the current-account snapshot.
package session

import (
	"context"
	"errors"
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

func (r *KVRepository) Get(ctx context.Context) (*models.Account, error) {
	var a models.Account
	found, err := kv.ReadJSON(ctx, r.store, common.SessionKey, &a)
	if err != nil {
		if found {
			return nil, errors.Join(ErrCorrupt, err)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !found || a.ID == "" {
		return nil, nil
	}
	return &a, nil
}

func (r *KVRepository) Set(ctx context.Context, a *models.Account) error {
	if err := kv.WriteJSON(ctx, r.store, common.SessionKey, a); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

func (r *KVRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
