package devices

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/kv"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/dmitrijs2005/devprofiler/internal/dbx"
	"github.com/dmitrijs2005/devprofiler/internal/logging"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) *KVRepository {
	t.Helper()
	ctx := context.Background()
	db, err := dbx.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	require.NoError(t, kv.RunMigrations(ctx, db, logging.Discard()))
	s := kv.NewSQLiteStore(db)
	t.Cleanup(func() { _ = s.Close() })
	return NewKVRepository(s)
}

func dev(id, owner, name string) *models.Device {
	return &models.Device{
		ID: id, Name: name, Type: models.DeviceTypeLaptop, Status: models.StatusActive,
		AssignedUser: "bob", LastActiveDate: "2024-05-01", UserID: owner,
	}
}

func seed(t *testing.T, r *KVRepository, ds ...*models.Device) {
	t.Helper()
	for _, d := range ds {
		require.NoError(t, r.Insert(context.Background(), d))
	}
}

func ids(ds []models.Device) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ID)
	}
	return out
}

func TestList_EmptyWhenNothingStored(t *testing.T) {
	r := newRepo(t)
	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestListByUser_FiltersAndKeepsOrder(t *testing.T) {
	r := newRepo(t)
	seed(t, r, dev("1", "u1", "a"), dev("2", "u2", "b"), dev("3", "u1", "c"), dev("4", "u1", "d"))

	got, err := r.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3", "4"}, ids(got))
	for _, d := range got {
		require.Equal(t, "u1", d.UserID)
	}

	all, err := r.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(all))
}

func TestGetByID(t *testing.T) {
	r := newRepo(t)
	seed(t, r, dev("1", "u1", "a"))

	got, err := r.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, *dev("1", "u1", "a"), *got)

	_, err = r.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_ShallowMergeKeepsOtherFields(t *testing.T) {
	r := newRepo(t)
	seed(t, r, dev("1", "u1", "Laptop1"), dev("2", "u1", "other"))
	ctx := context.Background()

	inactive := models.StatusInactive
	updated, err := r.Update(ctx, "", "1", models.DevicePatch{Status: &inactive})
	require.NoError(t, err)

	want := *dev("1", "u1", "Laptop1")
	want.Status = models.StatusInactive
	require.Equal(t, want, *updated)

	got, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, want, *got)

	other, err := r.GetByID(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, *dev("2", "u1", "other"), *other)
}

func TestUpdate_MissingOrForeignIsNotFound(t *testing.T) {
	r := newRepo(t)
	seed(t, r, dev("1", "u1", "a"))
	ctx := context.Background()
	name := "hijacked"

	_, err := r.Update(ctx, "", "nope", models.DevicePatch{Name: &name})
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.Update(ctx, "u2", "1", models.DevicePatch{Name: &name})
	require.ErrorIs(t, err, common.ErrorNotFound)

	got, err := r.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "a", got.Name)
}

func TestDelete(t *testing.T) {
	r := newRepo(t)
	seed(t, r, dev("1", "u1", "a"), dev("2", "u1", "b"), dev("3", "u2", "c"))
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "u1", "2"))
	require.ErrorIs(t, r.Delete(ctx, "u1", "2"), common.ErrorNotFound)
	require.ErrorIs(t, r.Delete(ctx, "u1", "3"), common.ErrorNotFound, "foreign device")

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3"}, ids(all))

	require.NoError(t, r.Delete(ctx, "", "3"))
	all, err = r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, ids(all))
}
