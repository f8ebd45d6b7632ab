package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/devices"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
)

// DeviceService manages device records.
//
// Update and Remove of an id that does not exist are silent no-ops. The
// *Owned variants additionally treat a device of another account as absent.
type DeviceService interface {
	ListAll(ctx context.Context) ([]models.Device, error)
	ListForAccount(ctx context.Context, accountID string) ([]models.Device, error)
	Get(ctx context.Context, id string) (*models.Device, error)
	Add(ctx context.Context, accountID string, f models.DeviceFields) (*models.Device, error)
	Update(ctx context.Context, id string, patch models.DevicePatch) error
	Remove(ctx context.Context, id string) error
	UpdateOwned(ctx context.Context, accountID, id string, patch models.DevicePatch) error
	RemoveOwned(ctx context.Context, accountID, id string) error
}

type deviceService struct {
	repo devices.Repository
	log  logging.Logger
}

func NewDeviceService(repo devices.Repository, log logging.Logger) DeviceService {
	return &deviceService{repo: repo, log: log.With("component", "devices")}
}

func (s *deviceService) ListAll(ctx context.Context) ([]models.Device, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list devices error: %w", err)
	}
	return list, nil
}

func (s *deviceService) ListForAccount(ctx context.Context, accountID string) ([]models.Device, error) {
	list, err := s.repo.ListByUser(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list devices error: %w", err)
	}
	return list, nil
}

func (s *deviceService) Get(ctx context.Context, id string) (*models.Device, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get device error: %w", err)
	}
	return d, nil
}

func (s *deviceService) Add(ctx context.Context, accountID string, f models.DeviceFields) (*models.Device, error) {
	d := &models.Device{
		ID:             newID(),
		Name:           f.Name,
		Type:           f.Type,
		Status:         f.Status,
		AssignedUser:   f.AssignedUser,
		LastActiveDate: f.LastActiveDate,
		UserID:         accountID,
	}

	if err := s.repo.Insert(ctx, d); err != nil {
		return nil, fmt.Errorf("add device error: %w", err)
	}

	s.log.Info(ctx, "device added", "device_id", d.ID, "account_id", accountID)
	return d, nil
}

func (s *deviceService) Update(ctx context.Context, id string, patch models.DevicePatch) error {
	return s.update(ctx, "", id, patch)
}

func (s *deviceService) UpdateOwned(ctx context.Context, accountID, id string, patch models.DevicePatch) error {
	return s.update(ctx, accountID, id, patch)
}

func (s *deviceService) update(ctx context.Context, owner, id string, patch models.DevicePatch) error {
	_, err := s.repo.Update(ctx, owner, id, patch)
	if errors.Is(err, common.ErrorNotFound) {
		s.log.Warn(ctx, "update ignored, no such device", "device_id", id, "account_id", owner)
		return nil
	}
	if err != nil {
		return fmt.Errorf("update device error: %w", err)
	}

	s.log.Info(ctx, "device updated", "device_id", id)
	return nil
}

func (s *deviceService) Remove(ctx context.Context, id string) error {
	return s.remove(ctx, "", id)
}

func (s *deviceService) RemoveOwned(ctx context.Context, accountID, id string) error {
	return s.remove(ctx, accountID, id)
}

func (s *deviceService) remove(ctx context.Context, owner, id string) error {
	err := s.repo.Delete(ctx, owner, id)
	if errors.Is(err, common.ErrorNotFound) {
		s.log.Warn(ctx, "remove ignored, no such device", "device_id", id, "account_id", owner)
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove device error: %w", err)
	}

	s.log.Info(ctx, "device removed", "device_id", id)
	return nil
}
