package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
	"github.com/stretchr/testify/require"
)

func laptop(name string) models.DeviceFields {
	return models.DeviceFields{
		Name:           name,
		Type:           models.DeviceTypeLaptop,
		Status:         models.StatusActive,
		AssignedUser:   "bob",
		LastActiveDate: "2024-05-01",
	}
}

func TestAdd_ThenListForAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.devices.Add(ctx, "acc-1", laptop("Laptop1"))
	require.NoError(t, err)

	list, err := f.devices.ListForAccount(ctx, "acc-1")
	require.NoError(t, err)
	require.Equal(t, []models.Device{{
		ID:             d.ID,
		Name:           "Laptop1",
		Type:           models.DeviceTypeLaptop,
		Status:         models.StatusActive,
		AssignedUser:   "bob",
		LastActiveDate: "2024-05-01",
		UserID:         "acc-1",
	}}, list)
	require.NotEmpty(t, d.ID)
}

func TestAdd_FreshIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.devices.Add(ctx, "acc-1", laptop("a"))
	require.NoError(t, err)
	b, err := f.devices.Add(ctx, "acc-1", laptop("a"))
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestListForAccount_NeverLeaksOtherAccounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, owner := range []string{"x", "y", "x", "z", "y"} {
		_, err := f.devices.Add(ctx, owner, laptop("d-"+owner))
		require.NoError(t, err)
	}

	for _, owner := range []string{"x", "y", "z", "nobody"} {
		list, err := f.devices.ListForAccount(ctx, owner)
		require.NoError(t, err)
		for _, d := range list {
			require.Equal(t, owner, d.UserID)
		}
	}

	all, err := f.devices.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestUpdate_StatusOnlyPreservesOtherFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.devices.Add(ctx, "acc-1", laptop("Laptop1"))
	require.NoError(t, err)

	inactive := models.StatusInactive
	require.NoError(t, f.devices.Update(ctx, d.ID, models.DevicePatch{Status: &inactive}))

	got, err := f.devices.Get(ctx, d.ID)
	require.NoError(t, err)

	want := *d
	want.Status = models.StatusInactive
	require.Equal(t, want, *got)
}

func TestUpdateAndRemove_AbsentIDsAreSilent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	name := "x"

	require.NoError(t, f.devices.Update(ctx, "missing", models.DevicePatch{Name: &name}))
	require.NoError(t, f.devices.Remove(ctx, "missing"))

	all, err := f.devices.ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestRemove_IsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.devices.Add(ctx, "acc-1", laptop("a"))
	require.NoError(t, err)
	keep, err := f.devices.Add(ctx, "acc-1", laptop("b"))
	require.NoError(t, err)

	require.NoError(t, f.devices.Remove(ctx, d.ID))
	all, err := f.devices.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Device{*keep}, all)

	require.NoError(t, f.devices.Remove(ctx, d.ID))
	again, err := f.devices.ListAll(ctx)
	require.NoError(t, err)
	require.Equal(t, all, again)
}

func TestOwnedVariants_IgnoreForeignDevices(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d, err := f.devices.Add(ctx, "owner", laptop("mine"))
	require.NoError(t, err)

	name := "stolen"
	require.NoError(t, f.devices.UpdateOwned(ctx, "intruder", d.ID, models.DevicePatch{Name: &name}))
	require.NoError(t, f.devices.RemoveOwned(ctx, "intruder", d.ID))

	got, err := f.devices.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "mine", got.Name)

	require.NoError(t, f.devices.UpdateOwned(ctx, "owner", d.ID, models.DevicePatch{Name: &name}))
	got, err = f.devices.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "stolen", got.Name)

	require.NoError(t, f.devices.RemoveOwned(ctx, "owner", d.ID))
	_, err = f.devices.Get(ctx, d.ID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

type failingDevices struct{ err error }

func (f failingDevices) List(context.Context) ([]models.Device, error) { return nil, f.err }
func (f failingDevices) ListByUser(context.Context, string) ([]models.Device, error) {
	return nil, f.err
}
func (f failingDevices) GetByID(context.Context, string) (*models.Device, error) { return nil, f.err }
func (f failingDevices) Insert(context.Context, *models.Device) error           { return f.err }
func (f failingDevices) Update(context.Context, string, string, models.DevicePatch) (*models.Device, error) {
	return nil, f.err
}
func (f failingDevices) Delete(context.Context, string, string) error { return f.err }

func TestDeviceService_StorageErrorsPropagate(t *testing.T) {
	boom := errors.New("io")
	svc := NewDeviceService(failingDevices{err: boom}, logging.Discard())
	ctx := context.Background()

	_, err := svc.ListAll(ctx)
	require.ErrorIs(t, err, boom)
	_, err = svc.ListForAccount(ctx, "a")
	require.ErrorIs(t, err, boom)
	_, err = svc.Get(ctx, "1")
	require.ErrorIs(t, err, boom)
	_, err = svc.Add(ctx, "a", laptop("x"))
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, svc.Update(ctx, "1", models.DevicePatch{}), boom)
	require.ErrorIs(t, svc.Remove(ctx, "1"), boom)
}
