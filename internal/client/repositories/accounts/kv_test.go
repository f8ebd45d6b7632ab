package accounts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/devprofiler/internal/client/models"
	"github.com/dmitrijs2005/devprofiler/internal/client/repositories/kv"
	"github.com/dmitrijs2005/devprofiler/internal/common"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*KVRepository, kv.Store) {
	t.Helper()
	s, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return NewKVRepository(s), s
}

func acc(id, email string) *models.Account {
	return &models.Account{ID: id, Email: email, Password: "password1", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestList_EmptyWhenNothingStored(t *testing.T) {
	r, _ := newRepo(t)

	list, err := r.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestCreate_AppendsInOrder(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, acc("1", "a@x.io")))
	require.NoError(t, r.Create(ctx, acc("2", "b@x.io")))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []models.Account{*acc("1", "a@x.io"), *acc("2", "b@x.io")}, list)
}

func TestCreate_DuplicateEmailConflicts(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, acc("1", "a@x.io")))
	err := r.Create(ctx, acc("2", "a@x.io"))
	require.ErrorIs(t, err, common.ErrorConflict)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestCreate_EmailsAreCaseSensitive(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, acc("1", "a@x.io")))
	require.NoError(t, r.Create(ctx, acc("2", "A@x.io")))
}

func TestCreate_ConcurrentSameEmailOnlyOneWins(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- r.Create(ctx, acc(string(rune('a'+i)), "same@x.io"))
		}()
	}
	wg.Wait()
	close(errs)

	ok := 0
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		require.ErrorIs(t, err, common.ErrorConflict)
	}
	require.Equal(t, 1, ok)
}

func TestGetByEmailAndID(t *testing.T) {
	r, _ := newRepo(t)
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, acc("1", "a@x.io")))

	got, err := r.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	require.Equal(t, "1", got.ID)

	got, err = r.GetByID(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, "a@x.io", got.Email)

	_, err = r.GetByEmail(ctx, "nobody@x.io")
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = r.GetByID(ctx, "404")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestList_ReadsLegacyTimestamps(t *testing.T) {
	r, s := newRepo(t)
	ctx := context.Background()

	raw := `[{"id":"1718000000000","email":"a@x.io","password":"password1","createdAt":"2024-06-10T06:13:20.000Z"}]`
	require.NoError(t, s.Set(ctx, common.AccountsKey, []byte(raw)))

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 2024, list[0].CreatedAt.Year())
}

func TestList_CorruptCollectionIsAnError(t *testing.T) {
	r, s := newRepo(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, common.AccountsKey, []byte("{oops")))

	_, err := r.List(ctx)
	require.ErrorContains(t, err, "failed to list accounts")
}
